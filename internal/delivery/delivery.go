// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running transport started by the application runner and
// stopped through an Fx lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
