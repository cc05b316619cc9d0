package bus

import "time"

// EventBus is a thread-safe, in-process pub/sub bus.
//
// - Handlers subscribe by Event.Type() and are invoked synchronously, in
//   subscription order, on the publisher's goroutine.
// - Handler errors are joined and returned from Publish.
// - Metrics are collected only while at least one observer is registered.
type EventBus interface {
	// Publish delivers the event to all active subscribers of event.Type().
	Publish(event Event) error

	// Subscribe registers a handler for an event type.
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	// Unsubscribe cancels the given Subscription. Nil is ignored.
	Unsubscribe(Subscription) error

	AddObserver(obs EventBusObserver)
	RemoveObserver(obs EventBusObserver)
	GetMetrics() EventBusMetrics
}

// Event is an immutable message transported by the EventBus.
type Event interface {
	ID() string
	Type() string
	Source() string
	Timestamp() time.Time
	Data() any
}

// EventHandler is invoked per delivered event.
type EventHandler func(event Event) error

// Subscription represents a registered handler bound to an event type.
type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	// Cancel de-registers the handler. Multiple calls are safe.
	Cancel() error
}

// EventBusObserver is notified about deliveries. Observers should return quickly.
type EventBusObserver interface {
	OnPublish(eventType string, event Event)
	OnDelivered(eventType string, handlers int, err error, duration time.Duration)
}

// EventBusMetrics is updated only when at least one observer is registered.
type EventBusMetrics struct {
	Published         uint64
	DeliveredHandlers uint64
	Errors            uint64
	SubscribersActive uint64
}
