package webhooks

import (
	"fmt"
	"time"

	"github.com/fleetci/fleetci/pkg/configuration"
	"github.com/fleetci/fleetci/pkg/static"
)

type DiscordPayload struct {
	Username  string         `json:"username"`
	AvatarURL string         `json:"avatar_url,omitempty"`
	Embeds    []DiscordEmbed `json:"embeds"`
}

type DiscordEmbed struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Color       int            `json:"color"`
	Fields      []DiscordField `json:"fields"`
	Timestamp   string         `json:"timestamp"`
}

type DiscordField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

func DiscordMessage(event string, data map[string]string, config *configuration.Provider) interface{} {
	template := templateFor(event, config)

	if template == nil {
		template = &configuration.Template{
			Title:        eventTitle(event),
			Description:  fmt.Sprintf("Event %s", event),
			ColorDecimal: 3066993,
		}
	}

	color := template.ColorDecimal

	if color == 0 {
		color = 3066993
	}

	embed := DiscordEmbed{
		Title:       render(template.Title, data),
		Description: render(template.Description, data),
		Color:       color,
		Fields:      []DiscordField{},
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	for _, field := range template.Fields {
		embed.Fields = append(embed.Fields, DiscordField{
			Name:   render(field.Name, data),
			Value:  render(field.Value, data),
			Inline: field.Inline,
		})
	}

	username := config.Username

	if username == "" {
		username = static.PROJECT
	}

	return DiscordPayload{
		Username:  username,
		AvatarURL: config.AvatarURL,
		Embeds:    []DiscordEmbed{embed},
	}
}
