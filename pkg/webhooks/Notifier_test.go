package webhooks

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fleetci/fleetci/pkg/configuration"
	"github.com/fleetci/fleetci/pkg/events"
	"github.com/go-playground/assert/v2"
	jsoniter "github.com/json-iterator/go"
)

func webhookConfig(slack *configuration.Provider, discord *configuration.Provider) *configuration.Webhooks {
	return &configuration.Webhooks{
		Enabled:    true,
		Timeout:    5,
		RetryCount: 2,
		RetryDelay: 0,
		Slack:      slack,
		Discord:    discord,
	}
}

func TestNotifyDisabled(t *testing.T) {
	notifier := New(&configuration.Webhooks{Enabled: false})

	results := notifier.Notify("runner_started", nil, "")

	assert.Equal(t, len(results), 0)
}

func TestNotifyDeliversToSubscribedProvider(t *testing.T) {
	var body []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	slack := &configuration.Provider{
		Enabled:    true,
		WebhookURL: server.URL,
		Events:     []string{"runner_started"},
	}

	notifier := New(webhookConfig(slack, nil))

	results := notifier.Notify("runner_started", map[string]string{"name": "ci-php-1", "group": "php"}, "")

	assert.Equal(t, results, map[string]bool{"slack": true})

	var payload SlackPayload

	err := jsoniter.Unmarshal(body, &payload)

	assert.Equal(t, err, nil)
	assert.Equal(t, payload.Username, "fleetci")
	assert.Equal(t, payload.Attachments[0].Title, "Runner Started")
}

func TestNotifySkipsUnsubscribedEvent(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	slack := &configuration.Provider{
		Enabled:    true,
		WebhookURL: server.URL,
		Events:     []string{"runner_started"},
	}

	notifier := New(webhookConfig(slack, nil))

	results := notifier.Notify("runner_stopped", nil, "")

	assert.Equal(t, len(results), 0)
	assert.Equal(t, requests, 0)
}

func TestNotifyProviderFilterBypassesSubscription(t *testing.T) {
	slackRequests := 0
	discordRequests := 0

	slackServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slackRequests++
		w.WriteHeader(http.StatusOK)
	}))
	defer slackServer.Close()

	discordServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		discordRequests++
		w.WriteHeader(http.StatusOK)
	}))
	defer discordServer.Close()

	slack := &configuration.Provider{Enabled: true, WebhookURL: slackServer.URL}
	discord := &configuration.Provider{Enabled: true, WebhookURL: discordServer.URL, Events: []string{"runner_started"}}

	notifier := New(webhookConfig(slack, discord))

	results := notifier.Notify("runner_started", nil, PROVIDER_SLACK)

	assert.Equal(t, results, map[string]bool{"slack": true})
	assert.Equal(t, slackRequests, 1)
	assert.Equal(t, discordRequests, 0)
}

func TestNotifyRetriesFailedDelivery(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		if requests == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	slack := &configuration.Provider{
		Enabled:    true,
		WebhookURL: server.URL,
		Events:     []string{"runner_started"},
	}

	notifier := New(webhookConfig(slack, nil))

	results := notifier.Notify("runner_started", nil, "")

	assert.Equal(t, results, map[string]bool{"slack": true})
	assert.Equal(t, requests, 2)
}

func TestNotifyExhaustsRetries(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	slack := &configuration.Provider{
		Enabled:    true,
		WebhookURL: server.URL,
		Events:     []string{"runner_started"},
	}

	notifier := New(webhookConfig(slack, nil))

	results := notifier.Notify("runner_started", nil, "")

	assert.Equal(t, results, map[string]bool{"slack": false})
	assert.Equal(t, requests, 3)
}

func TestNotifyMissingWebhookURL(t *testing.T) {
	slack := &configuration.Provider{
		Enabled: true,
		Events:  []string{"runner_started"},
	}

	notifier := New(webhookConfig(slack, nil))

	results := notifier.Notify("runner_started", nil, "")

	assert.Equal(t, results, map[string]bool{"slack": false})
}

func TestSupports(t *testing.T) {
	slack := &configuration.Provider{
		Enabled: true,
		Events:  []string{"runner_started"},
	}

	notifier := New(webhookConfig(slack, nil))

	assert.Equal(t, notifier.Supports(eventOf("runner_started")), true)
	assert.Equal(t, notifier.Supports(eventOf("runner_stopped")), false)

	disabled := New(&configuration.Webhooks{Enabled: false, Slack: slack})

	assert.Equal(t, disabled.Supports(eventOf("runner_started")), false)
}

func eventOf(eventType string) events.Event {
	return events.New(eventType, "ci-php-1", "", nil)
}
