package main

import (
	"fmt"
	"os"

	"github.com/fleetci/fleetci/internal/helpers"
	"github.com/fleetci/fleetci/pkg/command"
	"github.com/fleetci/fleetci/pkg/commands"
	"github.com/fleetci/fleetci/pkg/logger"
	"github.com/fleetci/fleetci/pkg/manager"
	"github.com/fleetci/fleetci/pkg/platforms/docker"
	"github.com/fleetci/fleetci/pkg/registration"
	"github.com/fleetci/fleetci/pkg/startup"
	"github.com/fleetci/fleetci/pkg/static"
	"github.com/fleetci/fleetci/pkg/version"
	"github.com/joho/godotenv"
)

var VERSION = "dev"

func main() {
	_ = godotenv.Load(static.DEFAULT_ENV_FILE)

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = static.DEFAULT_LOG_LEVEL
	}

	logger.Log = logger.NewLogger(logLevel, []string{"stdout"}, []string{"stderr"})

	if logLevel == "debug" {
		fmt.Println(fmt.Sprintf("logging level set to %s (override with LOG_LEVEL env variable)", logLevel))
	}

	platform, err := docker.New()

	if err != nil {
		helpers.PrintAndExit(err, 1)
	}

	defer platform.Close()

	client := registration.New(static.GITHUB_API, os.Getenv(static.ENV_GITHUB_TOKEN))
	store := startup.NewFile(static.DEFAULT_CONFIG_FILE)

	mgr := manager.New(store, platform, client)
	mgr.Version = version.New(VERSION)

	cmd := command.New()
	commands.SetupGlobalFlags(cmd)
	commands.PreloadCommands()
	commands.Run(mgr, cmd)
}
