package events

import (
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

func New(eventType string, name string, reason string, data map[string]string) Event {
	if data == nil {
		data = map[string]string{}
	}

	data["name"] = name

	if reason != "" {
		data["reason"] = reason
	}

	return Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Name:      name,
		Reason:    reason,
		Data:      data,
		Timestamp: time.Now(),
	}
}

func (event Event) ToJSON() ([]byte, error) {
	return jsoniter.Marshal(event)
}
