// Package delivery defines the contract every transport entry point fulfills.
package delivery

import "context"

// Delivery is a serving surface of the application, started by the runtime
// and stopped through its lifecycle hooks.
type Delivery interface {
	// Serve blocks until the underlying server stops.
	Serve(ctx context.Context) error
}
