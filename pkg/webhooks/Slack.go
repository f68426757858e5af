package webhooks

import (
	"fmt"
	"time"

	"github.com/fleetci/fleetci/pkg/configuration"
	"github.com/fleetci/fleetci/pkg/static"
)

type SlackPayload struct {
	Username    string            `json:"username"`
	Channel     string            `json:"channel,omitempty"`
	Text        string            `json:"text"`
	Attachments []SlackAttachment `json:"attachments"`
}

type SlackAttachment struct {
	Color    string       `json:"color"`
	Title    string       `json:"title"`
	Text     string       `json:"text"`
	Fields   []SlackField `json:"fields"`
	Footer   string       `json:"footer"`
	MrkdwnIn []string     `json:"mrkdwn_in"`
}

type SlackField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

func SlackMessage(event string, data map[string]string, config *configuration.Provider) interface{} {
	template := templateFor(event, config)

	if template == nil {
		template = &configuration.Template{
			Title: eventTitle(event),
			Text:  fmt.Sprintf("Event %s", event),
			Color: "#36a64f",
		}
	}

	color := template.Color

	if color == "" {
		color = "#36a64f"
	}

	text := render(template.Text, data)

	attachment := SlackAttachment{
		Color:    color,
		Title:    render(template.Title, data),
		Text:     text,
		Fields:   []SlackField{},
		Footer:   fmt.Sprintf("%s • %s", static.PROJECT, time.Now().Format("2006-01-02 15:04:05")),
		MrkdwnIn: []string{"text", "fields"},
	}

	for _, field := range template.Fields {
		attachment.Fields = append(attachment.Fields, SlackField{
			Title: render(field.Name, data),
			Value: render(field.Value, data),
			Short: field.Short,
		})
	}

	useAttachment := template.UseAttachment == nil || *template.UseAttachment

	username := config.Username

	if username == "" {
		username = static.PROJECT
	}

	payload := SlackPayload{
		Username:    username,
		Channel:     config.Channel,
		Attachments: []SlackAttachment{},
	}

	if useAttachment {
		payload.Attachments = append(payload.Attachments, attachment)
	} else {
		payload.Text = text
	}

	return payload
}
