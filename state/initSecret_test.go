package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viettl/skipli/config"
)

func TestInitSecret_Success(t *testing.T) {
	config.Conf = &config.AppConfig{}
	config.Conf.AUTH.JWTSecret = "a-sufficiently-long-test-secret"

	secret, err := InitSecret()

	require.NoError(t, err)
	assert.Equal(t, []byte("a-sufficiently-long-test-secret"), secret)
}

func TestInitSecret_Empty(t *testing.T) {
	config.Conf = &config.AppConfig{}

	secret, err := InitSecret()

	assert.Error(t, err, "InitSecret should reject an empty secret")
	assert.Nil(t, secret)
}

func TestInitSecret_TooShort(t *testing.T) {
	config.Conf = &config.AppConfig{}
	config.Conf.AUTH.JWTSecret = "short"

	secret, err := InitSecret()

	assert.Error(t, err, "InitSecret should reject a short secret")
	assert.Nil(t, secret)
	assert.Contains(t, err.Error(), "at least 16 bytes")
}
