// Package delivery holds the entry points that drive the use cases.
package delivery

import "context"

// Delivery is a long-running server started by main. Serve blocks until the
// delivery stops; shutdown is driven through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
