package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestGenerateAndParseSign(t *testing.T) {
	token, err := GenerateSign("teacher@example.com", "teacher@example.com", "instructor", testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAndVerifySign(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "teacher@example.com", claims.Sub)
	assert.Equal(t, "teacher@example.com", claims.Email)
	assert.Equal(t, "instructor", claims.Role)
}

func TestParseAndVerifySign_WrongSecret(t *testing.T) {
	token, err := GenerateSign("teacher@example.com", "teacher@example.com", "instructor", testSecret)
	require.NoError(t, err)

	_, err = ParseAndVerifySign(token, []byte("another-secret-another-secret-00"))
	require.Error(t, err)
}

func TestParseAndVerifySign_Garbage(t *testing.T) {
	_, err := ParseAndVerifySign("not.a.token", testSecret)
	require.Error(t, err)
}
