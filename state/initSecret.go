package state

import (
	"fmt"

	"github.com/viettl/skipli/config"
)

// InitSecret loads the HMAC key used to sign session tokens.
func InitSecret() ([]byte, error) {
	secret := config.Conf.AUTH.JWTSecret
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is empty")
	}

	if len(secret) < 16 {
		return nil, fmt.Errorf("jwt secret must be at least 16 bytes, got %d", len(secret))
	}

	return []byte(secret), nil
}
