// Package delivery defines the contract of the inbound servers run by the application.
package delivery

import "context"

// Delivery is a long-running server started once the fx app is up.
type Delivery interface {
	// Serve blocks until the server stops. A clean shutdown returns nil.
	Serve(ctx context.Context) error
}
