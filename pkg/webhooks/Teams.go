package webhooks

import (
	"fmt"

	"github.com/fleetci/fleetci/pkg/configuration"
)

type TeamsPayload struct {
	Type       string         `json:"@type"`
	Context    string         `json:"@context"`
	Summary    string         `json:"summary"`
	ThemeColor string         `json:"themeColor"`
	Title      string         `json:"title"`
	Sections   []TeamsSection `json:"sections"`
}

type TeamsSection struct {
	ActivityTitle string      `json:"activityTitle,omitempty"`
	Facts         []TeamsFact `json:"facts,omitempty"`
}

type TeamsFact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func TeamsMessage(event string, data map[string]string, config *configuration.Provider) interface{} {
	template := templateFor(event, config)

	if template == nil {
		template = &configuration.Template{
			Title:      eventTitle(event),
			ThemeColor: "0076D7",
			Sections: []configuration.Section{
				{ActivityTitle: fmt.Sprintf("Event %s", event)},
			},
		}
	}

	themeColor := template.ThemeColor

	if themeColor == "" {
		themeColor = "0076D7"
	}

	title := render(template.Title, data)

	sections := make([]TeamsSection, 0, len(template.Sections))

	for _, section := range template.Sections {
		rendered := TeamsSection{
			ActivityTitle: render(section.ActivityTitle, data),
		}

		for _, fact := range section.Facts {
			rendered.Facts = append(rendered.Facts, TeamsFact{
				Name:  render(fact.Name, data),
				Value: render(fact.Value, data),
			})
		}

		sections = append(sections, rendered)
	}

	return TeamsPayload{
		Type:       "MessageCard",
		Context:    "http://schema.org/extensions",
		Summary:    title,
		ThemeColor: themeColor,
		Title:      title,
		Sections:   sections,
	}
}
