// Package session is the single source of truth for "who is logged in".
// The store owns the persisted token pair and the in-memory user profile;
// every other component reads session state through it.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/sportradar/sportradar-cli/internal/client/api"
	"github.com/sportradar/sportradar-cli/internal/client/repositories/tokens"
	"github.com/sportradar/sportradar-cli/internal/logging"
)

// API is the slice of the gateway the session store needs.
type API interface {
	Login(ctx context.Context, email, password string) (api.TokenPair, error)
	RefreshToken(ctx context.Context, refresh string) (string, error)
	Me(ctx context.Context) (*api.User, error)
	UpdateMe(ctx context.Context, fields map[string]any) (json.RawMessage, error)
	UploadAvatar(ctx context.Context, filename string, data io.Reader) (json.RawMessage, error)
}

// Store holds the current session. It is safe for concurrent use: the REPL
// and the background renewal loop both touch it.
//
// Invariant: CurrentUser is non-nil exactly when the session counts as
// authenticated. A persisted access token without a fetched profile is not
// an authenticated session.
type Store struct {
	api    API
	tokens tokens.Repository
	log    logging.Logger

	mu   sync.RWMutex
	user *api.User
}

func NewStore(client API, tokens tokens.Repository, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop{}
	}
	return &Store{api: client, tokens: tokens, log: log}
}

// CurrentUser returns a copy of the authenticated user, or nil.
func (s *Store) CurrentUser() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUser(s.user)
}

// IsAuthenticated is derived directly from the user field; there is no
// separate flag to drift out of sync.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Login exchanges credentials for a token pair, persists it, then fetches
// the profile. On any failure the session stays unauthenticated and the
// error is returned for the login form to display.
func (s *Store) Login(ctx context.Context, email, password string) error {
	pair, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := s.tokens.SetPair(ctx, pair.Access, pair.Refresh); err != nil {
		return fmt.Errorf("persisting tokens: %w", err)
	}
	return s.FetchCurrentUser(ctx)
}

// Logout clears both persisted tokens and the in-memory user. It is
// idempotent and safe to call when already logged out.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clearing tokens: %w", err)
	}
	return nil
}

// FetchCurrentUser replaces the profile wholesale from GET me/. Any failure
// — including a renewal failure surfacing through the gateway — degrades to
// a clean logged-out state rather than a partially authenticated one.
func (s *Store) FetchCurrentUser(ctx context.Context) error {
	u, err := s.api.Me(ctx)
	if err != nil {
		s.log.Warn(ctx, "profile fetch failed, logging out", "error", err)
		if lerr := s.Logout(ctx); lerr != nil {
			s.log.Error(ctx, "logout after failed profile fetch", "error", lerr)
		}
		return err
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	return nil
}

// UpdateUser submits a partial profile update and shallow-merges the
// returned fields into the current user: returned fields win, everything
// else is preserved. On failure the user is left untouched, unless the
// session itself turned out to be expired.
func (s *Store) UpdateUser(ctx context.Context, fields map[string]any) (*api.User, error) {
	updated, err := s.api.UpdateMe(ctx, fields)
	if err != nil {
		s.expireIfUnauthorized(ctx, err)
		return nil, err
	}
	return s.merge(updated)
}

// UploadAvatar sends an avatar image through the profile endpoint and
// merges the response like UpdateUser.
func (s *Store) UploadAvatar(ctx context.Context, filename string, data io.Reader) (*api.User, error) {
	updated, err := s.api.UploadAvatar(ctx, filename, data)
	if err != nil {
		s.expireIfUnauthorized(ctx, err)
		return nil, err
	}
	return s.merge(updated)
}

// expireIfUnauthorized demotes the session to logged-out when a call failed
// with a 401 the gateway could not recover from. A 401 reaching this layer
// means the renew-once path has already been spent.
func (s *Store) expireIfUnauthorized(ctx context.Context, err error) {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		return
	}
	if !s.IsAuthenticated() {
		return
	}
	s.log.Warn(ctx, "session expired, logging out", "error", err)
	if lerr := s.Logout(ctx); lerr != nil {
		s.log.Error(ctx, "logout after expired session", "error", lerr)
	}
}

// merge overlays raw JSON fields onto a copy of the current user and swaps
// it in atomically.
func (s *Store) merge(fields json.RawMessage) (*api.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, fmt.Errorf("no authenticated user to update")
	}

	merged := cloneUser(s.user)
	if len(fields) > 0 {
		if err := json.Unmarshal(fields, merged); err != nil {
			return nil, fmt.Errorf("merging updated fields: %w", err)
		}
	}
	s.user = merged
	return cloneUser(merged), nil
}

// Restore hydrates the session at startup: if a persisted access token
// exists, fetch the profile once. Without a token this is a no-op and the
// session simply starts unauthenticated.
func (s *Store) Restore(ctx context.Context) error {
	access, err := s.tokens.Access(ctx)
	if err != nil {
		return fmt.Errorf("reading persisted token: %w", err)
	}
	if access == "" {
		return nil
	}
	return s.FetchCurrentUser(ctx)
}

func cloneUser(u *api.User) *api.User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Preferences != nil {
		p := *u.Preferences
		p.Activities = append([]string(nil), u.Preferences.Activities...)
		p.Objectives = append([]string(nil), u.Preferences.Objectives...)
		c.Preferences = &p
	}
	if u.Company != nil {
		co := *u.Company
		c.Company = &co
	}
	return &c
}
