package token

import (
	"errors"
	"strings"
)

var (
	ErrMissingAuthorization   = errors.New("authorization header is missing")
	ErrMalformedAuthorization = errors.New("authorization header is malformed")
)

// ExtractBearer parses an Authorization header value into a bearer token.
// The accepted shape is exactly "Bearer <token>": two whitespace-separated
// fields, the first being the literal scheme. Pure parsing, no I/O.
func ExtractBearer(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", ErrMissingAuthorization
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrMalformedAuthorization
	}
	return parts[1], nil
}
