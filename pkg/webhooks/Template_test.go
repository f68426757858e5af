package webhooks

import (
	"testing"

	"github.com/fleetci/fleetci/pkg/configuration"
	"github.com/fleetci/fleetci/pkg/logger"
	"github.com/go-playground/assert/v2"
)

func TestMain(m *testing.M) {
	logger.Log = logger.NewLogger("error", []string{"stdout"}, []string{"stderr"})
	m.Run()
}

func TestRender(t *testing.T) {
	type Wanted struct {
		rendered string
	}

	type Parameters struct {
		template string
		data     map[string]string
	}

	testCases := []struct {
		name       string
		wanted     Wanted
		parameters Parameters
	}{
		{
			"Substitutes known keys",
			Wanted{rendered: "Runner ci-php-1 started in group php"},
			Parameters{
				template: "Runner {name} started in group {group}",
				data:     map[string]string{"name": "ci-php-1", "group": "php"},
			},
		},
		{
			"Missing key returns template untouched",
			Wanted{rendered: "Runner {name} failed: {error}"},
			Parameters{
				template: "Runner {name} failed: {error}",
				data:     map[string]string{"name": "ci-php-1"},
			},
		},
		{
			"No placeholders",
			Wanted{rendered: "plain text"},
			Parameters{
				template: "plain text",
				data:     map[string]string{"name": "ci-php-1"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, render(tc.parameters.template, tc.parameters.data), tc.wanted.rendered)
		})
	}
}

func TestEventTitle(t *testing.T) {
	assert.Equal(t, eventTitle("runner_started"), "Runner Started")
	assert.Equal(t, eventTitle("update_available"), "Update Available")
	assert.Equal(t, eventTitle("build_failed"), "Build Failed")
}

func TestTemplateFor(t *testing.T) {
	config := &configuration.Provider{
		Templates: map[string]configuration.Template{
			"runner_started": {Title: "Started"},
			"default":        {Title: "Fallback"},
		},
	}

	assert.Equal(t, templateFor("runner_started", config).Title, "Started")
	assert.Equal(t, templateFor("runner_stopped", config).Title, "Fallback")
	assert.Equal(t, templateFor("anything", &configuration.Provider{}), (*configuration.Template)(nil))
}

func TestSlackMessage(t *testing.T) {
	data := map[string]string{"name": "ci-php-1", "group": "php"}

	t.Run("Default template", func(t *testing.T) {
		payload := SlackMessage("runner_started", data, &configuration.Provider{}).(SlackPayload)

		assert.Equal(t, payload.Username, "fleetci")
		assert.Equal(t, len(payload.Attachments), 1)
		assert.Equal(t, payload.Attachments[0].Title, "Runner Started")
		assert.Equal(t, payload.Attachments[0].Color, "#36a64f")
		assert.Equal(t, payload.Attachments[0].MrkdwnIn, []string{"text", "fields"})
	})

	t.Run("Configured template with fields", func(t *testing.T) {
		config := &configuration.Provider{
			Username: "ci-bot",
			Channel:  "#ci",
			Templates: map[string]configuration.Template{
				"runner_started": {
					Title: "Runner up",
					Text:  "{name} joined the fleet",
					Color: "#ff0000",
					Fields: []configuration.Field{
						{Name: "Group", Value: "{group}", Short: true},
					},
				},
			},
		}

		payload := SlackMessage("runner_started", data, config).(SlackPayload)

		assert.Equal(t, payload.Username, "ci-bot")
		assert.Equal(t, payload.Channel, "#ci")
		assert.Equal(t, payload.Attachments[0].Text, "ci-php-1 joined the fleet")
		assert.Equal(t, payload.Attachments[0].Color, "#ff0000")
		assert.Equal(t, payload.Attachments[0].Fields[0].Value, "php")
		assert.Equal(t, payload.Attachments[0].Fields[0].Short, true)
	})

	t.Run("Plain text when attachment disabled", func(t *testing.T) {
		useAttachment := false

		config := &configuration.Provider{
			Templates: map[string]configuration.Template{
				"runner_started": {
					Text:          "{name} started",
					UseAttachment: &useAttachment,
				},
			},
		}

		payload := SlackMessage("runner_started", data, config).(SlackPayload)

		assert.Equal(t, payload.Text, "ci-php-1 started")
		assert.Equal(t, len(payload.Attachments), 0)
	})
}

func TestDiscordMessage(t *testing.T) {
	data := map[string]string{"name": "ci-php-1", "group": "php"}

	t.Run("Default template", func(t *testing.T) {
		payload := DiscordMessage("runner_stopped", data, &configuration.Provider{}).(DiscordPayload)

		assert.Equal(t, payload.Username, "fleetci")
		assert.Equal(t, len(payload.Embeds), 1)
		assert.Equal(t, payload.Embeds[0].Title, "Runner Stopped")
		assert.Equal(t, payload.Embeds[0].Color, 3066993)
		assert.NotEqual(t, payload.Embeds[0].Timestamp, "")
	})

	t.Run("Configured template", func(t *testing.T) {
		config := &configuration.Provider{
			AvatarURL: "https://example.com/avatar.png",
			Templates: map[string]configuration.Template{
				"default": {
					Title:        "Fleet event",
					Description:  "{name} in {group}",
					ColorDecimal: 15158332,
					Fields: []configuration.Field{
						{Name: "Runner", Value: "{name}", Inline: true},
					},
				},
			},
		}

		payload := DiscordMessage("runner_stopped", data, config).(DiscordPayload)

		assert.Equal(t, payload.AvatarURL, "https://example.com/avatar.png")
		assert.Equal(t, payload.Embeds[0].Description, "ci-php-1 in php")
		assert.Equal(t, payload.Embeds[0].Color, 15158332)
		assert.Equal(t, payload.Embeds[0].Fields[0].Value, "ci-php-1")
		assert.Equal(t, payload.Embeds[0].Fields[0].Inline, true)
	})
}

func TestTeamsMessage(t *testing.T) {
	data := map[string]string{"name": "ci-php-1", "error": "pull failed"}

	t.Run("Default template", func(t *testing.T) {
		payload := TeamsMessage("runner_error", data, &configuration.Provider{}).(TeamsPayload)

		assert.Equal(t, payload.Type, "MessageCard")
		assert.Equal(t, payload.Context, "http://schema.org/extensions")
		assert.Equal(t, payload.Title, "Runner Error")
		assert.Equal(t, payload.ThemeColor, "0076D7")
		assert.Equal(t, len(payload.Sections), 1)
	})

	t.Run("Configured template with facts", func(t *testing.T) {
		config := &configuration.Provider{
			Templates: map[string]configuration.Template{
				"runner_error": {
					Title:      "Runner failure",
					ThemeColor: "FF0000",
					Sections: []configuration.Section{
						{
							ActivityTitle: "{name} errored",
							Facts: []configuration.Field{
								{Name: "Error", Value: "{error}"},
							},
						},
					},
				},
			},
		}

		payload := TeamsMessage("runner_error", data, config).(TeamsPayload)

		assert.Equal(t, payload.ThemeColor, "FF0000")
		assert.Equal(t, payload.Summary, "Runner failure")
		assert.Equal(t, payload.Sections[0].ActivityTitle, "ci-php-1 errored")
		assert.Equal(t, payload.Sections[0].Facts[0].Value, "pull failed")
	})
}
