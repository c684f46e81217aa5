package event

// Handler receives published events.
type Handler func(Event)

// Dispatcher fans events out to registered handlers, synchronously and in
// registration order. The zero value is ready to use. A nil *Dispatcher is
// also valid: it drops every event.
type Dispatcher struct {
	handlers []Handler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers a handler. Handlers run in the order they were added.
// Subscribe on a nil dispatcher is a no-op.
func (d *Dispatcher) Subscribe(h Handler) {
	if d == nil || h == nil {
		return
	}
	d.handlers = append(d.handlers, h)
}

// Publish builds an event and delivers it to every handler before returning.
func (d *Dispatcher) Publish(topic Topic, payload any, source string) {
	if d == nil || len(d.handlers) == 0 {
		return
	}
	ev := New(topic, payload, source)
	for _, h := range d.handlers {
		h(ev)
	}
}
