package service

import (
	"go-hardware-demo/internal/ws"
)

// Broadcaster receives an event after every successful store mutation.
type Broadcaster interface {
	Publish(event ws.Event)
}

func storeEvent(action, message string, data interface{}) ws.Event {
	return ws.Event{Type: ws.EventStoreUpdate, Action: action, Data: data, Message: message}
}
