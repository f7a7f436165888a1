package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAcceptKey(t *testing.T) {
	t.Run("derives the RFC 6455 sample accept key", func(t *testing.T) {
		// Given: the handshake key from the RFC 6455 opening example.
		key := "dGhlIHNhbXBsZSBub25jZQ=="

		// When: the accept key is derived.
		acceptKey := GenerateAcceptKey(key)

		// Then: it matches the value the RFC prescribes.
		assert.Equal(t, "s3pPLMBiTxaQ9kYGzzhZRbK+xOo=", acceptKey)
	})
}

func TestGenerateNewSessionID(t *testing.T) {
	t.Run("mints distinct ids", func(t *testing.T) {
		// When: two session ids are generated.
		first := GenerateNewSessionID()
		second := GenerateNewSessionID()

		// Then: both are non-empty and they differ.
		require.NotEmpty(t, first)
		require.NotEmpty(t, second)
		assert.NotEqual(t, first, second)
	})
}
