package webhooks

import (
	"net/http"

	"github.com/fleetci/fleetci/pkg/configuration"
)

const PROVIDER_SLACK = "slack"
const PROVIDER_DISCORD = "discord"
const PROVIDER_TEAMS = "teams"

// Notifier fans lifecycle events out to the configured webhook providers.
// It satisfies events.Channel so it can be registered on a dispatcher.
type Notifier struct {
	config *configuration.Webhooks
	http   *http.Client
}

type provider struct {
	name   string
	config *configuration.Provider
	build  func(event string, data map[string]string, config *configuration.Provider) interface{}
}
