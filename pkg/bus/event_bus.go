package bus

import (
	"reflect"
	"sync"

	"github.com/elseano/nspin/pkg/util"
)

type Event interface{}
type Handler interface {
	ReceiveEvent(event Event)
}

// HandlerFunc adapts a plain function into a Handler. Use a pointer to it
// when subscribing, so it can be unsubscribed again.
type HandlerFunc func(event Event)

func (f *HandlerFunc) ReceiveEvent(event Event) {
	(*f)(event)
}

var (
	mu            sync.RWMutex
	subscriptions = make(map[Handler]Handler)
)

func Subscribe(subscriber Handler) {
	util.Logger.Trace().Msg("Adding subscriber")

	mu.Lock()
	defer mu.Unlock()
	subscriptions[subscriber] = subscriber
}

func Unsubscribe(subscriber Handler) {
	util.Logger.Trace().Msg("Removing subscriber")

	mu.Lock()
	defer mu.Unlock()
	delete(subscriptions, subscriber)
}

// Emit delivers event synchronously to every subscriber. Handlers run on the
// emitting goroutine and must not block.
func Emit(event Event) {
	if reflect.ValueOf(event).Kind() != reflect.Ptr {
		panic("Must pass pointer.")
	}

	mu.RLock()
	handlers := make([]Handler, 0, len(subscriptions))
	for _, subscriber := range subscriptions {
		handlers = append(handlers, subscriber)
	}
	mu.RUnlock()

	util.Logger.Trace().Msgf("Sending message %#v to %d subscribers", event, len(handlers))

	for _, subscriber := range handlers {
		subscriber.ReceiveEvent(event)
	}
}
