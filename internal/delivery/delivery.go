// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application
// runner. Serve blocks until the server stops; shutdown is driven by the
// fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
