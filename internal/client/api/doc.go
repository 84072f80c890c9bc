// Package api is the HTTP gateway to the SportRadar backend: a typed client
// over the platform's JSON REST endpoints, with a single outbound transport
// that attaches the current access token and transparently renews it once
// when it expires.
package api
