package commands

import (
	"context"

	"github.com/fleetci/fleetci/internal/helpers"
	"github.com/fleetci/fleetci/pkg/configuration"
	"github.com/fleetci/fleetci/pkg/manager"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// load reads the desired state and exits on failure: a broken configuration
// file is the one error no operation can work around.
func load(mgr *manager.Manager) *configuration.Configuration {
	mgr.Store.SetPath(viper.GetString("config"))

	config, err := mgr.Load()

	if err != nil {
		helpers.PrintAndExit(err, 1)
	}

	return config
}

// requireRuntime aborts before a pass ever starts when the container runtime
// is unreachable. Mid-pass faults degrade to per-member errors instead.
func requireRuntime(mgr *manager.Manager, args []string) {
	if !mgr.Platform.IsDaemonRunning(context.Background()) {
		helpers.PrintAndExit(errors.New("cannot connect to the container runtime"), 1)
	}
}
