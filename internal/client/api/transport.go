package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/sportradar/sportradar-cli/internal/logging"
)

// TokenStore is the persisted credential pair. The transport reads both
// tokens and writes a renewed access token; the session store is the only
// other writer.
type TokenStore interface {
	Access(ctx context.Context) (string, error)
	Refresh(ctx context.Context) (string, error)
	SetAccess(ctx context.Context, access string) error
}

// authTransport decorates every outbound request with the current access
// token and transparently recovers from its expiry: on a 401 it submits the
// stored refresh token to the renewal endpoint and replays the original
// request exactly once with the new credential.
//
// Requests to the registration, token-issuance and token-renewal endpoints
// are sent without credentials; they establish or replace the very token the
// transport would attach.
type authTransport struct {
	base    http.RoundTripper
	baseURL *url.URL
	tokens  TokenStore
	log     logging.Logger
}

func newAuthTransport(base http.RoundTripper, baseURL *url.URL, tokens TokenStore, log logging.Logger) *authTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &authTransport{base: base, baseURL: baseURL, tokens: tokens, log: log}
}

// skipAuth reports whether the request path targets one of the endpoints
// that must remain unauthenticated.
func skipAuth(path string) bool {
	return strings.HasSuffix(path, "/register/") ||
		strings.HasSuffix(path, "/token/") ||
		strings.HasSuffix(path, "/token/refresh/")
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	out := req.Clone(ctx)
	requestID := uuid.NewString()
	out.Header.Set("X-Request-Id", requestID)

	authed := !skipAuth(out.URL.Path)
	if authed {
		access, err := t.tokens.Access(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading access token: %w", err)
		}
		if access != "" {
			out.Header.Set("Authorization", "Bearer "+access)
		}
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized || !authed {
		return resp, nil
	}

	// One renewal attempt per original request. Everything below runs at
	// most once: the replayed request's response is returned as-is, even
	// if it is another 401.
	refresh, err := t.tokens.Refresh(ctx)
	if err != nil || refresh == "" {
		return resp, nil
	}

	access, err := t.renew(ctx, refresh)
	if err != nil {
		t.log.Warn(ctx, "token renewal failed", "request_id", requestID, "error", err)
		drain(resp)
		return nil, err
	}
	drain(resp)

	retry := req.Clone(ctx)
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("replaying request body: %w", err)
		}
		retry.Body = body
	}
	retry.Header.Set("X-Request-Id", requestID)
	retry.Header.Set("Authorization", "Bearer "+access)

	return t.base.RoundTrip(retry)
}

// renew submits the refresh token to the renewal endpoint, persists the new
// access token and returns it. The call goes through the base transport
// directly: renewal itself must never trigger another renewal.
func (t *authTransport) renew(ctx context.Context, refresh string) (string, error) {
	payload, err := json.Marshal(map[string]string{"refresh": refresh})
	if err != nil {
		return "", err
	}

	u := t.baseURL.JoinPath("token", "refresh")
	u.Path += "/"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return "", err
	}
	defer drain(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &Error{Status: resp.StatusCode, Body: body}
	}

	var renewed struct {
		Access string `json:"access"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&renewed); err != nil {
		return "", fmt.Errorf("decoding renewal response: %w", err)
	}
	if renewed.Access == "" {
		return "", fmt.Errorf("renewal response contained no access token")
	}

	if err := t.tokens.SetAccess(ctx, renewed.Access); err != nil {
		return "", fmt.Errorf("persisting renewed access token: %w", err)
	}
	return renewed.Access, nil
}

// drain discards any unread response body and closes it so the underlying
// connection can be reused.
func drain(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
}
