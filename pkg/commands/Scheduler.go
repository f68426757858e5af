package commands

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fleetci/fleetci/internal/helpers"
	"github.com/fleetci/fleetci/pkg/command"
	"github.com/fleetci/fleetci/pkg/logger"
	"github.com/fleetci/fleetci/pkg/manager"
	"github.com/fleetci/fleetci/pkg/scheduler"
	"github.com/fleetci/fleetci/pkg/static"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func Scheduler() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent(static.PROJECT).
			Name("scheduler").
			Short("Run the automated check/build/deploy loop").
			Args(cobra.NoArgs).
			DependsOn(requireRuntime).
			Function(cmdScheduler).
			BuildWithValidation(),
	)
}

func cmdScheduler(mgr *manager.Manager, args []string) {
	config := load(mgr)

	if config.Scheduler == nil || !config.Scheduler.Enabled {
		helpers.PrintAndExit(errors.New("scheduler is not enabled in the configuration"), 1)
	}

	sched, err := scheduler.New(config.Scheduler, mgr.Store, mgr.Reconciler, mgr.Checker, mgr.Dispatcher)

	if err != nil {
		helpers.PrintAndExit(err, 1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var server *http.Server

	if config.Scheduler.ListenAddr != "" {
		server = scheduler.NewServer(config.Scheduler.ListenAddr)

		go func() {
			err := server.ListenAndServe()

			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Log.Error("scheduler http server failed", zap.String("error", err.Error()))
			}
		}()
	}

	err = sched.Run(ctx)

	if server != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		_ = server.Shutdown(shutdownCtx)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		helpers.PrintAndExit(err, 1)
	}

	logger.Log.Info("scheduler stopped")
}
