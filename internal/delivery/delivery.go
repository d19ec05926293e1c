// Package delivery defines the contract for the entry points of the application.
package delivery

import "context"

// Delivery is a long-running server started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
