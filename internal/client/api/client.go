package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/sportradar/sportradar-cli/internal/logging"
)

// maxErrorBody caps how much of an error response is read and retained.
const maxErrorBody = 64 << 10

const requestTimeout = 15 * time.Second

// Client is the full REST surface of the SportRadar API as consumed by the
// application. Every method goes through the same authenticated transport.
type Client interface {
	Login(ctx context.Context, email, password string) (TokenPair, error)
	RefreshToken(ctx context.Context, refresh string) (string, error)
	Register(ctx context.Context, form RegistrationForm) error
	Me(ctx context.Context) (*User, error)
	UpdateMe(ctx context.Context, fields map[string]any) (json.RawMessage, error)
	UploadAvatar(ctx context.Context, filename string, data io.Reader) (json.RawMessage, error)
	Activities(ctx context.Context) ([]Activity, error)
	MyActivities(ctx context.Context) ([]Activity, error)
	CreateActivity(ctx context.Context, form ActivityForm) error
	Plans(ctx context.Context) ([]Plan, error)
	Subscribe(ctx context.Context, req SubscriptionRequest) error
	CompanySignup(ctx context.Context, form CompanySignupForm) error
	InviteEmployee(ctx context.Context, email string) error
	AcceptInvite(ctx context.Context, token, username, password string) error
}

// HTTPClient implements Client against a JSON-over-HTTP backend.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// New builds an HTTPClient for the API rooted at rawBaseURL
// (e.g. "http://localhost:8000/api"). All requests pass through an
// authenticating transport backed by the given token store.
func New(rawBaseURL string, tokens TokenStore, log logging.Logger) (*HTTPClient, error) {
	base, err := url.Parse(rawBaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing API base URL: %w", err)
	}

	transport := newAuthTransport(nil, base, tokens, log)

	return &HTTPClient{
		baseURL: base,
		http:    &http.Client{Transport: transport, Timeout: requestTimeout},
	}, nil
}

// endpoint joins path segments onto the base URL, keeping the API's
// trailing-slash convention.
func (c *HTTPClient) endpoint(parts ...string) string {
	u := c.baseURL.JoinPath(parts...)
	u.Path += "/"
	return u.String()
}

// doJSON sends a request with an optional JSON body and decodes the
// response into out when non-nil. Non-2xx responses come back as *Error
// with status and body intact.
func (c *HTTPClient) doJSON(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *HTTPClient) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer drain(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &Error{Status: resp.StatusCode, Body: b}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// Login exchanges credentials for a token pair. The endpoint is excluded
// from credential attachment by the transport.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (TokenPair, error) {
	var pair TokenPair
	in := map[string]string{"email": email, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, c.endpoint("token"), in, &pair); err != nil {
		return TokenPair{}, err
	}
	return pair, nil
}

// RefreshToken mints a new access token from a refresh token. Exposed for
// the session store's proactive renewal loop; the transport performs the
// same exchange itself when recovering from a 401.
func (c *HTTPClient) RefreshToken(ctx context.Context, refresh string) (string, error) {
	var renewed struct {
		Access string `json:"access"`
	}
	in := map[string]string{"refresh": refresh}
	if err := c.doJSON(ctx, http.MethodPost, c.endpoint("token", "refresh"), in, &renewed); err != nil {
		return "", err
	}
	return renewed.Access, nil
}

func (c *HTTPClient) Register(ctx context.Context, form RegistrationForm) error {
	return c.doJSON(ctx, http.MethodPost, c.endpoint("register"), form, nil)
}

func (c *HTTPClient) Me(ctx context.Context) (*User, error) {
	var u User
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint("me"), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateMe submits a partial profile update and returns the raw updated
// fields so the caller can merge them over the current user.
func (c *HTTPClient) UpdateMe(ctx context.Context, fields map[string]any) (json.RawMessage, error) {
	var updated json.RawMessage
	if err := c.doJSON(ctx, http.MethodPatch, c.endpoint("me"), fields, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// UploadAvatar sends an avatar image as a multipart PATCH to the profile
// endpoint and returns the raw updated fields.
func (c *HTTPClient) UploadAvatar(ctx context.Context, filename string, data io.Reader) (json.RawMessage, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("avatar", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, data); err != nil {
		return nil, fmt.Errorf("reading avatar data: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.endpoint("me"), bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var updated json.RawMessage
	if err := c.send(req, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *HTTPClient) Activities(ctx context.Context) ([]Activity, error) {
	var list []Activity
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint("activities"), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) MyActivities(ctx context.Context) ([]Activity, error) {
	var list []Activity
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint("activities", "my-activities"), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) CreateActivity(ctx context.Context, form ActivityForm) error {
	return c.doJSON(ctx, http.MethodPost, c.endpoint("activities"), form, nil)
}

func (c *HTTPClient) Plans(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint("plans"), nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (c *HTTPClient) Subscribe(ctx context.Context, req SubscriptionRequest) error {
	return c.doJSON(ctx, http.MethodPost, c.endpoint("subscriptions"), req, nil)
}

func (c *HTTPClient) CompanySignup(ctx context.Context, form CompanySignupForm) error {
	return c.doJSON(ctx, http.MethodPost, c.endpoint("companies", "signup"), form, nil)
}

func (c *HTTPClient) InviteEmployee(ctx context.Context, email string) error {
	in := map[string]string{"email": email}
	return c.doJSON(ctx, http.MethodPost, c.endpoint("invitations"), in, nil)
}

func (c *HTTPClient) AcceptInvite(ctx context.Context, token, username, password string) error {
	in := map[string]string{"token": token, "username": username, "password": password}
	return c.doJSON(ctx, http.MethodPost, c.endpoint("accept-invite"), in, nil)
}
