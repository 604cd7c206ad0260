// Package hooks provides a small event notifier used to signal page
// lifecycle events to registered listeners. It replaces global trigger
// calls: the notifier is injected into whatever owns the lifecycle.
package hooks

import "sync"

// Page lifecycle events.
const (
	PostInit   = "post_init"
	PostRender = "post_render"
	PostWrite  = "post_write"
)

// Notifier forwards an event and its payload to interested listeners.
// Notify is fire-and-forget: the caller does not await a result.
type Notifier interface {
	Notify(event string, payload any)
}

// ListenerFunc is a hook callback.
type ListenerFunc func(payload any)

// Registry is a Notifier with listener registration. The zero value is
// ready to use.
type Registry struct {
	mu        sync.RWMutex
	listeners map[string][]ListenerFunc
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// On registers fn for the given event.
func (r *Registry) On(event string, fn ListenerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listeners == nil {
		r.listeners = make(map[string][]ListenerFunc)
	}
	r.listeners[event] = append(r.listeners[event], fn)
}

// Notify invokes every listener registered for event, in registration order.
func (r *Registry) Notify(event string, payload any) {
	r.mu.RLock()
	fns := r.listeners[event]
	r.mu.RUnlock()

	for _, fn := range fns {
		fn(payload)
	}
}

// Nop is a Notifier that does nothing.
var Nop Notifier = nopNotifier{}

type nopNotifier struct{}

func (nopNotifier) Notify(string, any) {}
