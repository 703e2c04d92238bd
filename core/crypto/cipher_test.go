package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncryptDecryptRoundtrip(t *testing.T) {
	c, err := New("sync-secret")
	assert.NoError(t, err)

	blob, err := c.Encrypt("bearer-token-value")
	assert.NoError(t, err)
	assert.NotContains(t, string(blob), "bearer-token-value")

	got, err := c.Decrypt(blob)
	assert.NoError(t, err)
	assert.Equal(t, "bearer-token-value", got)
}

func TestDecryptWrongKey(t *testing.T) {
	a, _ := New("key-a")
	b, _ := New("key-b")

	blob, err := a.Encrypt("token")
	assert.NoError(t, err)

	_, err = b.Decrypt(blob)
	assert.Error(t, err)
}

func TestDecryptTruncatedBlob(t *testing.T) {
	c, _ := New("sync-secret")
	_, err := c.Decrypt([]byte("short"))
	assert.Error(t, err)
}

func TestNewEmptySecret(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}
