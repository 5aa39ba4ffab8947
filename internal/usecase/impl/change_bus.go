// Package impl contains the concrete use case implementations.
package impl

import (
	"log/slog"
	"sync"

	"outreach/internal/domain/service"
)

// changeBus implements service.ChangeNotifier with synchronous, in-order
// delivery. A panicking listener is isolated so it cannot rob later listeners
// of their notification.
type changeBus struct {
	mu        sync.Mutex
	listeners []service.ChangeListener
	logger    *slog.Logger
}

// NewChangeBus creates the change notification bus
func NewChangeBus(logger *slog.Logger) service.ChangeNotifier {
	return &changeBus{logger: logger}
}

// Register adds a listener; registering the same listener twice has no effect
func (b *changeBus) Register(listener service.ChangeListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, existing := range b.listeners {
		if existing == listener {
			return
		}
	}
	b.listeners = append(b.listeners, listener)
}

// Unregister removes a listener; unknown listeners are ignored
func (b *changeBus) Unregister(listener service.ChangeListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, existing := range b.listeners {
		if existing == listener {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)

			return
		}
	}
}

// NotifyUsersChanged delivers OnUsersChanged to every listener in order
func (b *changeBus) NotifyUsersChanged() {
	b.broadcast(func(listener service.ChangeListener) {
		listener.OnUsersChanged()
	})
}

// NotifyPatientsChanged delivers OnPatientsChanged to every listener in order
func (b *changeBus) NotifyPatientsChanged() {
	b.broadcast(func(listener service.ChangeListener) {
		listener.OnPatientsChanged()
	})
}

func (b *changeBus) broadcast(deliver func(service.ChangeListener)) {
	b.mu.Lock()
	snapshot := make([]service.ChangeListener, len(b.listeners))
	copy(snapshot, b.listeners)
	b.mu.Unlock()

	for _, listener := range snapshot {
		b.deliverSafely(listener, deliver)
	}
}

// deliverSafely invokes one listener, recovering and logging if it panics
func (b *changeBus) deliverSafely(listener service.ChangeListener, deliver func(service.ChangeListener)) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Change listener panicked",
				slog.Any("panic", r),
			)
		}
	}()

	deliver(listener)
}
