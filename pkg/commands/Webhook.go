package commands

import (
	"fmt"

	"github.com/fleetci/fleetci/internal/helpers"
	"github.com/fleetci/fleetci/pkg/command"
	"github.com/fleetci/fleetci/pkg/configuration"
	"github.com/fleetci/fleetci/pkg/events"
	"github.com/fleetci/fleetci/pkg/formaters"
	"github.com/fleetci/fleetci/pkg/manager"
	"github.com/fleetci/fleetci/pkg/static"
	"github.com/fleetci/fleetci/pkg/webhooks"
	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// mockData holds plausible event payloads for exercising webhook templates
// without touching any container.
var mockData = map[string]map[string]string{
	events.EVENT_RUNNER_STARTED:   {"name": "ci-php-1", "group": "php", "image": "php:8.3-2.321.0"},
	events.EVENT_RUNNER_STOPPED:   {"name": "ci-php-1", "group": "php"},
	events.EVENT_RUNNER_REMOVED:   {"name": "ci-php-3", "group": "php"},
	events.EVENT_RUNNER_ERROR:     {"name": "ci-php-1", "group": "php", "operation": "start", "error": "runner could not register: invalid token"},
	events.EVENT_RUNNER_SKIPPED:   {"name": "ci-php-1", "group": "php", "operation": "stop", "reason": "not running"},
	events.EVENT_BUILD_COMPLETED:  {"name": "php", "image": "php:8.3-2.321.0", "dockerfile": "images/php/Dockerfile"},
	events.EVENT_BUILD_FAILED:     {"name": "php", "image": "php:8.3-2.321.0", "error": "step 4/9 failed"},
	events.EVENT_IMAGE_UPDATED:    {"name": "base", "from_version": "2.320.0", "to_version": "2.321.0", "image": "ghcr.io/actions/actions-runner:2.321.0"},
	events.EVENT_UPDATE_AVAILABLE: {"name": "base", "current_version": "2.320.0", "latest_version": "2.321.0"},
	events.EVENT_UPDATE_ERROR:     {"name": "base", "error": "could not reach the GitHub API"},
}

var mockOrder = []string{
	events.EVENT_RUNNER_STARTED,
	events.EVENT_RUNNER_STOPPED,
	events.EVENT_RUNNER_REMOVED,
	events.EVENT_RUNNER_ERROR,
	events.EVENT_RUNNER_SKIPPED,
	events.EVENT_BUILD_COMPLETED,
	events.EVENT_BUILD_FAILED,
	events.EVENT_IMAGE_UPDATED,
	events.EVENT_UPDATE_AVAILABLE,
	events.EVENT_UPDATE_ERROR,
}

func Webhook() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent(static.PROJECT).
			Name("webhook").
			Short("Test and debug webhook notifications").
			Args(cobra.NoArgs).
			BuildWithValidation(),
		command.NewBuilder().
			Parent("webhook").
			Name("test").
			Short("Send one simulated event to the configured providers").
			Args(cobra.NoArgs).
			Flags(func(cmd *cobra.Command) {
				cmd.Flags().StringP("event", "e", "", "Event type to simulate")
				cmd.Flags().StringP("provider", "p", "", "Address a single provider")
			}).
			Function(cmdWebhookTest).
			BuildWithValidation(),
		command.NewBuilder().
			Parent("webhook").
			Name("test-all").
			Short("Send a simulated event for every subscribed event type").
			Args(cobra.NoArgs).
			Flags(func(cmd *cobra.Command) {
				cmd.Flags().StringP("provider", "p", "", "Address a single provider")
			}).
			Function(cmdWebhookTestAll).
			BuildWithValidation(),
	)
}

func cmdWebhookTest(mgr *manager.Manager, args []string) {
	load(mgr)

	if !mgr.Notifier.Enabled() {
		helpers.PrintAndExit(errors.New("webhooks are not enabled in the configuration"), 1)
	}

	eventType := viper.GetString("event")

	if eventType == "" {
		prompt := promptui.Select{
			Label: "Event type to simulate",
			Items: mockOrder,
		}

		_, selected, err := prompt.Run()

		if err != nil {
			helpers.PrintAndExit(err, 1)
		}

		eventType = selected
	}

	data, ok := mockData[eventType]

	if !ok {
		helpers.PrintAndExit(errors.Errorf("unknown event type: %s", eventType), 1)
	}

	results := mgr.Notifier.Notify(eventType, data, viper.GetString("provider"))
	formaters.Deliveries(results)
}

func cmdWebhookTestAll(mgr *manager.Manager, args []string) {
	config := load(mgr)

	if !mgr.Notifier.Enabled() {
		helpers.PrintAndExit(errors.New("webhooks are not enabled in the configuration"), 1)
	}

	only := viper.GetString("provider")

	for name, provider := range providersOf(config.Webhooks) {
		if only != "" && name != only {
			continue
		}

		if provider == nil || !provider.Enabled {
			continue
		}

		for _, eventType := range provider.Events {
			data, ok := mockData[eventType]

			if !ok {
				fmt.Printf("skipping unknown event type %s\n", eventType)
				continue
			}

			results := mgr.Notifier.Notify(eventType, data, name)
			formaters.Deliveries(results)
		}
	}
}

func providersOf(config *configuration.Webhooks) map[string]*configuration.Provider {
	if config == nil {
		return nil
	}

	return map[string]*configuration.Provider{
		webhooks.PROVIDER_SLACK:   config.Slack,
		webhooks.PROVIDER_DISCORD: config.Discord,
		webhooks.PROVIDER_TEAMS:   config.Teams,
	}
}
