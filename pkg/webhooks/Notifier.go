package webhooks

import (
	"bytes"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fleetci/fleetci/pkg/configuration"
	"github.com/fleetci/fleetci/pkg/events"
	"github.com/fleetci/fleetci/pkg/logger"
	"github.com/fleetci/fleetci/pkg/metrics"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func New(config *configuration.Webhooks) *Notifier {
	return &Notifier{
		config: config,
		http:   &http.Client{},
	}
}

func (notifier *Notifier) Enabled() bool {
	return notifier.config != nil && notifier.config.Enabled
}

func (notifier *Notifier) providers() []provider {
	if notifier.config == nil {
		return nil
	}

	var out []provider

	if notifier.config.Slack != nil && notifier.config.Slack.Enabled {
		out = append(out, provider{name: PROVIDER_SLACK, config: notifier.config.Slack, build: SlackMessage})
	}

	if notifier.config.Discord != nil && notifier.config.Discord.Enabled {
		out = append(out, provider{name: PROVIDER_DISCORD, config: notifier.config.Discord, build: DiscordMessage})
	}

	if notifier.config.Teams != nil && notifier.config.Teams.Enabled {
		out = append(out, provider{name: PROVIDER_TEAMS, config: notifier.config.Teams, build: TeamsMessage})
	}

	return out
}

// Notify delivers one event to every enabled provider subscribed to its type.
// The returned map holds the delivery outcome per provider name. The only
// filter is the optional provider name: pass "" to address all of them.
func (notifier *Notifier) Notify(eventType string, data map[string]string, only string) map[string]bool {
	results := map[string]bool{}

	if !notifier.Enabled() {
		logger.Log.Debug("webhook notifications disabled, event dropped", zap.String("event", eventType))
		return results
	}

	for _, prov := range notifier.providers() {
		if only != "" && prov.name != only {
			continue
		}

		if only == "" && !subscribed(prov.config, eventType) {
			continue
		}

		err := notifier.send(prov, eventType, data)

		if err != nil {
			logger.Log.Warn("webhook delivery failed",
				zap.String("provider", prov.name),
				zap.String("event", eventType),
				zap.String("error", err.Error()),
			)

			metrics.WebhookDeliveries.Increment(prov.name, "failure")
			results[prov.name] = false
			continue
		}

		logger.Log.Info("webhook delivered", zap.String("provider", prov.name), zap.String("event", eventType))

		metrics.WebhookDeliveries.Increment(prov.name, "success")
		results[prov.name] = true
	}

	return results
}

// Supports and Send implement events.Channel so the notifier can be
// registered on an event dispatcher.
func (notifier *Notifier) Supports(event events.Event) bool {
	if !notifier.Enabled() {
		return false
	}

	for _, prov := range notifier.providers() {
		if subscribed(prov.config, event.Type) {
			return true
		}
	}

	return false
}

func (notifier *Notifier) Send(event events.Event) {
	notifier.Notify(event.Type, event.Data, "")
}

func (notifier *Notifier) send(prov provider, eventType string, data map[string]string) error {
	if prov.config.WebhookURL == "" {
		return errors.Errorf("missing webhook_url for provider %s", prov.name)
	}

	payload, err := jsoniter.Marshal(prov.build(eventType, data, prov.config))

	if err != nil {
		return err
	}

	timeout := prov.config.Timeout

	if timeout == 0 {
		timeout = notifier.config.Timeout
	}

	return notifier.deliver(prov.config.WebhookURL, payload, time.Duration(timeout)*time.Second)
}

func (notifier *Notifier) deliver(url string, payload []byte, timeout time.Duration) error {
	attempt := func() error {
		client := notifier.http
		client.Timeout = timeout

		response, err := client.Post(url, "application/json", bytes.NewReader(payload))

		if err != nil {
			return err
		}

		defer response.Body.Close()

		if response.StatusCode < 200 || response.StatusCode >= 300 {
			return errors.Errorf("unexpected status %d", response.StatusCode)
		}

		return nil
	}

	policy := backoff.WithMaxRetries(
		backoff.NewConstantBackOff(time.Duration(notifier.config.RetryDelay)*time.Second),
		uint64(notifier.config.RetryCount),
	)

	return backoff.Retry(attempt, policy)
}

func subscribed(config *configuration.Provider, eventType string) bool {
	for _, event := range config.Events {
		if event == eventType {
			return true
		}
	}

	return false
}
