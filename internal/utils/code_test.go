package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAccessCode_SixDigits(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := GenerateAccessCode()
		assert.Len(t, code, 6)
		assert.Regexp(t, `^\d{6}$`, code)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "teacher@example.com", NormalizeEmail("  Teacher@Example.COM "))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;Alice&lt;/b&gt;", SanitizeString(" <b>Alice</b> "))
}
