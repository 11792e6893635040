// Package sessionstore keeps login sessions keyed by opaque bearer tokens, in
// Redis for deployments and in memory for tests and single-node runs.
package sessionstore

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const tokenBytes = 32

// newToken returns a URL-safe random token.
func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
