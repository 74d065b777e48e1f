package events

import (
	"fmt"
)

// Bus is a simple event bus for picker services.
// Handlers run synchronously, in subscription order, on the publisher's goroutine.
type Bus struct {
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// SubscribeTo registers a listener for the type of the given sample event
func (b *Bus) SubscribeTo(sample interface{}, handler func(interface{})) {
	b.Subscribe(TypeOf(sample), handler)
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	for _, handler := range b.listeners[TypeOf(event)] {
		handler(event)
	}
}

// TypeOf returns the event type key used for subscriptions.
func TypeOf(event interface{}) string {
	// Use the full type name as the event type
	return fmt.Sprintf("%T", event)
}
