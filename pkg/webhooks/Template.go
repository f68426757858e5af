package webhooks

import (
	"regexp"
	"strings"

	"github.com/fleetci/fleetci/pkg/configuration"
	"github.com/fleetci/fleetci/pkg/logger"
	"go.uber.org/zap"
)

var placeholder = regexp.MustCompile(`\{[a-z_]+\}`)

// templateFor returns the template configured for the event type, falling back
// to the "default" template and finally to nil.
func templateFor(event string, config *configuration.Provider) *configuration.Template {
	if template, ok := config.Templates[event]; ok {
		return &template
	}

	if template, ok := config.Templates["default"]; ok {
		return &template
	}

	return nil
}

// render substitutes {key} placeholders with event data. A template that
// references a key the event does not carry is returned untouched, so a
// half-filled message never reaches a provider.
func render(template string, data map[string]string) string {
	rendered := template

	for key, value := range data {
		rendered = strings.ReplaceAll(rendered, "{"+key+"}", value)
	}

	if missing := placeholder.FindString(rendered); missing != "" {
		logger.Log.Warn("webhook template references unknown key", zap.String("placeholder", missing))
		return template
	}

	return rendered
}

// eventTitle derives a human-readable title from an event type, used when no
// template is configured ("runner_started" becomes "Runner Started").
func eventTitle(event string) string {
	words := strings.Split(event, "_")

	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}

	return strings.Join(words, " ")
}
