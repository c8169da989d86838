package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// KeySize is the length in bytes of generated signing keys.
const KeySize = 32

// GenerateKey returns KeySize random bytes encoded as base64.
// The result is suitable as the HS256 signing key in private.yaml (jwt_key).
func GenerateKey() (string, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}
