// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is a serving surface started by the application root.
type Delivery interface {
	// Serve blocks serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
