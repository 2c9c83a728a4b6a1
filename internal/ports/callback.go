package ports

import "context"

// PlayerCallback pushes a server event to one connected player.
type PlayerCallback interface {
	// Deliver sends a single event. Implementations should honor ctx
	// cancellation so a stalled connection cannot hold up a match.
	Deliver(ctx context.Context, kind string, payload any) error
}

// CallbackFunc adapts a plain function to PlayerCallback.
type CallbackFunc func(ctx context.Context, kind string, payload any) error

// Deliver calls f.
func (f CallbackFunc) Deliver(ctx context.Context, kind string, payload any) error {
	return f(ctx, kind, payload)
}
