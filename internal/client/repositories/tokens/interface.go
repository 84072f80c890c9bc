// Package tokens persists the session's credential pair. The access and
// refresh tokens are the only durable client-side state; they survive
// restarts so a session can be re-established without logging in again.
package tokens

import "context"

// Repository is the durable store for the token pair. The session store is
// the only writer of the pair as a whole; the HTTP transport additionally
// overwrites the access token after a successful renewal.
type Repository interface {
	Access(ctx context.Context) (string, error)
	Refresh(ctx context.Context) (string, error)

	// SetPair replaces both tokens atomically.
	SetPair(ctx context.Context, access, refresh string) error

	// SetAccess replaces only the access token, keeping the refresh token.
	SetAccess(ctx context.Context, access string) error

	// Clear removes both tokens. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
