package utils

import (
	"crypto/rand"
	"fmt"
	"html"
	"strings"
)

// GenerateAccessCode produces a 6-digit one-time login code.
func GenerateAccessCode() string {
	b := make([]byte, 3)
	_, err := rand.Read(b)
	if err != nil {
		return "000000"
	}

	num := int(b[0])<<16 | int(b[1])<<8 | int(b[2])
	return fmt.Sprintf("%06d", num%1000000)
}

// NormalizeEmail lowercases an address; all lookups and storage key off the
// normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeString(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
