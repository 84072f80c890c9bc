package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// renewalSafety is how long before the access token's expiry a renewal is
// scheduled.
const renewalSafety = 30 * time.Second

const minRenewalDelay = 10 * time.Second

// StartRenewalLoop keeps the access token fresh in the background. It
// blocks until ctx is cancelled, so run it in its own goroutine.
//
// The delay until the next renewal comes from the access token's exp claim
// when the token is a decodable JWT, and falls back to the given interval
// otherwise. A renewal failure, or a missing refresh token, degrades the
// session to logged out.
func (s *Store) StartRenewalLoop(ctx context.Context, fallback time.Duration) {
	timer := time.NewTimer(s.renewalDelay(ctx, fallback))
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			s.renewOnce(ctx)
			timer.Reset(s.renewalDelay(ctx, fallback))
		case <-ctx.Done():
			return
		}
	}
}

func (s *Store) renewOnce(ctx context.Context) {
	if !s.IsAuthenticated() {
		return
	}

	refresh, err := s.tokens.Refresh(ctx)
	if err != nil || refresh == "" {
		// Without a refresh token the session cannot be silently renewed.
		s.log.Warn(ctx, "no refresh token available, logging out", "error", err)
		_ = s.Logout(ctx)
		return
	}

	access, err := s.api.RefreshToken(ctx, refresh)
	if err != nil {
		s.log.Warn(ctx, "scheduled token renewal failed, logging out", "error", err)
		_ = s.Logout(ctx)
		return
	}
	if err := s.tokens.SetAccess(ctx, access); err != nil {
		s.log.Error(ctx, "persisting renewed access token", "error", err)
		return
	}

	// Keep the profile in step with the renewed credential.
	_ = s.FetchCurrentUser(ctx)
}

// renewalDelay computes how long to wait before the next renewal attempt.
func (s *Store) renewalDelay(ctx context.Context, fallback time.Duration) time.Duration {
	access, err := s.tokens.Access(ctx)
	if err != nil || access == "" {
		return fallback
	}

	claims := &jwt.RegisteredClaims{}
	// The token is the server's to verify; here it is only inspected for
	// its expiry time.
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return fallback
	}
	if claims.ExpiresAt == nil {
		return fallback
	}

	delay := time.Until(claims.ExpiresAt.Time) - renewalSafety
	if delay < minRenewalDelay {
		return minRenewalDelay
	}
	if delay > fallback {
		return fallback
	}
	return delay
}
