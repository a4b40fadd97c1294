// Package common contains shared constants and sentinel errors used across
// the portal client.
package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer token
// on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName is the HTTP header used to correlate a request with
// server-side logs.
const RequestIDHeaderName = "X-Request-Id"

// BearerPrefix is prepended to the token in the Authorization header.
const BearerPrefix = "Bearer "
