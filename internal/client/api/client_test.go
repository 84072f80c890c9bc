package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_SendsCredentialsAndReturnsPair(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"access":"A","refresh":"R"}`))
	}), &fakeTokens{})

	pair, err := c.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, "/api/token/", gotPath)
	assert.Equal(t, map[string]string{"email": "a@b.com", "password": "secret"}, gotBody)
	assert.Equal(t, TokenPair{Access: "A", Refresh: "R"}, pair)
}

func TestUpdateMe_PatchesAndReturnsRawFields(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/me/", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"avatar":"tiger"}`))
	}), &fakeTokens{access: "A1"})

	raw, err := c.UpdateMe(context.Background(), map[string]any{"avatar": "tiger"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"avatar":"tiger"}`, string(raw))
}

func TestUploadAvatar_SendsMultipartForm(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/me/", r.URL.Path)
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("avatar")
		require.NoError(t, err)
		defer file.Close()

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "cat.png", header.Filename)
		assert.Equal(t, "fake image bytes", string(data))

		_, _ = w.Write([]byte(`{"avatar":"cat.png"}`))
	}), &fakeTokens{access: "A1"})

	raw, err := c.UploadAvatar(context.Background(), "cat.png", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"avatar":"cat.png"}`, string(raw))
}

func TestEndpointPaths(t *testing.T) {
	var paths []string

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	}), &fakeTokens{access: "A1"})

	ctx := context.Background()
	_, err := c.Activities(ctx)
	require.NoError(t, err)
	_, err = c.MyActivities(ctx)
	require.NoError(t, err)
	_, err = c.Plans(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"GET /api/activities/",
		"GET /api/activities/my-activities/",
		"GET /api/plans/",
	}, paths)
}

func TestCompanyEndpoints(t *testing.T) {
	bodies := map[string]string{}

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		bodies[r.URL.Path] = string(b)
		w.WriteHeader(http.StatusCreated)
	}), &fakeTokens{access: "A1"})

	ctx := context.Background()
	require.NoError(t, c.InviteEmployee(ctx, "emp@corp.fr"))
	require.NoError(t, c.AcceptInvite(ctx, "tok123", "emp", "pw"))
	require.NoError(t, c.Subscribe(ctx, SubscriptionRequest{Plan: "basic", CompanyName: "Corp"}))
	require.NoError(t, c.CompanySignup(ctx, CompanySignupForm{Plan: "Professional", CompanyName: "Corp"}))

	assert.JSONEq(t, `{"email":"emp@corp.fr"}`, bodies["/api/invitations/"])
	assert.JSONEq(t, `{"token":"tok123","username":"emp","password":"pw"}`, bodies["/api/accept-invite/"])
	assert.Contains(t, bodies["/api/subscriptions/"], `"company_name":"Corp"`)
	assert.Contains(t, bodies["/api/companies/signup/"], `"companyName":"Corp"`)
}

func TestApplicationErrorsKeepStatusAndBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"date invalide"}`))
	}), &fakeTokens{access: "A1"})

	err := c.CreateActivity(context.Background(), ActivityForm{})
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.JSONEq(t, `{"detail":"date invalide"}`, string(apiErr.Body))
	assert.False(t, errors.Is(err, ErrUnauthorized))
	assert.False(t, errors.Is(err, ErrUnavailable))
}

func TestErrorSentinelMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		target error
	}{
		{"forbidden is unauthorized", http.StatusForbidden, ErrUnauthorized},
		{"bad gateway is unavailable", http.StatusBadGateway, ErrUnavailable},
		{"service unavailable is unavailable", http.StatusServiceUnavailable, ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := error(&Error{Status: tt.status})
			assert.True(t, errors.Is(err, tt.target))
		})
	}
}
