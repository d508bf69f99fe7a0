package domain

// EventListener reacts to an editor event for the given file.
type EventListener interface {
	Update(eventType string, filename string) error
}

type EventSubscriber interface {
	Subscribe(eventType string, listener EventListener)
	Unsubscribe(eventType string, listener EventListener)
}

type EventDispatcher interface {
	EventSubscriber
	Notify(eventType string, filename string) error
}
