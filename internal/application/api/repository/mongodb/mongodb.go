package mongodb

import (
	"context"
	"time"
)

type decoder interface {
	Decode(v interface{}) error
}

// timeout returns the lowest value between the parameter and context deadline.
func timeout(ctx context.Context, duration time.Duration) time.Duration {
	ms := duration

	deadline, ok := ctx.Deadline()
	if ok && time.Now().Add(duration).After(deadline) {
		ms = time.Until(deadline)
	}

	return ms
}

// withTimeout bounds the context by the duration. A zero duration keeps the context as it is.
func withTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout(ctx, duration))
}
