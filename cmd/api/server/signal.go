package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WithSignal derives a context that ends on SIGINT or SIGTERM, so operator
// interrupts and orchestrator stops share one cancellation path into the app
// loop. The returned stop function releases the signal registration.
func WithSignal(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
