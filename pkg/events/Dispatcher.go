package events

// Channel is a delivery sink for lifecycle events. Channels decide themselves
// which event types they accept.
type Channel interface {
	Supports(event Event) bool
	Send(event Event)
}

type Dispatcher struct {
	channels []Channel
}

func NewDispatcher(channels ...Channel) *Dispatcher {
	return &Dispatcher{channels: channels}
}

func (dispatcher *Dispatcher) Register(channel Channel) {
	dispatcher.channels = append(dispatcher.channels, channel)
}

func (dispatcher *Dispatcher) Dispatch(event Event) {
	for _, channel := range dispatcher.channels {
		if channel.Supports(event) {
			channel.Send(event)
		}
	}
}

func (dispatcher *Dispatcher) DispatchMany(events []Event) {
	for _, event := range events {
		dispatcher.Dispatch(event)
	}
}
