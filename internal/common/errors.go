// Package common defines shared constants and sentinel errors used across
// the portal client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// ErrorNotFound marks a fetched entity that does not exist.
	ErrorNotFound = errors.New("not found")

	// ErrorUnauthorized marks a rejected or missing credential.
	ErrorUnauthorized = errors.New("unauthorized")
)
