package upgrade

import "context"

type liveKey struct{}

// ContextWithLive attaches the live view a purchase was made against, so
// OnPurchased hooks can consult it.
func ContextWithLive(ctx context.Context, l Live) context.Context {
	return context.WithValue(ctx, liveKey{}, l)
}

// LiveFromContext returns the live view attached by ContextWithLive.
func LiveFromContext(ctx context.Context) (Live, bool) {
	l, ok := ctx.Value(liveKey{}).(Live)
	return l, ok
}
