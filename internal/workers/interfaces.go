// Package workers runs background jobs next to the inbound servers.
//
// A [Worker] blocks in Run until its context is cancelled. [Workers]
// starts every registered worker in its own goroutine and waits for all of
// them to return.
package workers

import "context"

// Worker is a long-running background job.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
