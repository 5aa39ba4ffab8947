package service

// ChangeListener is implemented by consumers that want to refresh when the
// users or patients collection changes under them, typically after a remote
// merge.
type ChangeListener interface {
	// OnUsersChanged is invoked after the users collection was replaced or merged.
	OnUsersChanged()

	// OnPatientsChanged is invoked after the patients collection was replaced or merged.
	OnPatientsChanged()
}

// ChangeNotifier is the registry decoupling the reconciler from its consumers.
//
// Registration and de-registration are idempotent. Delivery is synchronous and
// in registration order, on whatever goroutine the merge ran on; a listener
// that panics must not prevent delivery to subsequent listeners.
type ChangeNotifier interface {
	// Register adds a listener; registering the same listener twice has no
	// additional effect.
	Register(listener ChangeListener)

	// Unregister removes a listener; removing an unregistered listener is a
	// no-op.
	Unregister(listener ChangeListener)

	// NotifyUsersChanged delivers OnUsersChanged to every listener.
	NotifyUsersChanged()

	// NotifyPatientsChanged delivers OnPatientsChanged to every listener.
	NotifyPatientsChanged()
}
