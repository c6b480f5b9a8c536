// Package delivery defines the contract every transport entrypoint
// (HTTP server, worker, scheduler) implements so main can start them
// uniformly.
package delivery

import "context"

// Delivery is a long-running entrypoint. Serve blocks until the
// delivery stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
