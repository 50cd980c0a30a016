package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	t.Run("roundtrip", func(t *testing.T) {
		token, exp, err := m.Generate("user-1")
		require.NoError(t, err)
		assert.True(t, exp.After(time.Now()))

		claims, err := m.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := m.Generate("user-1")
		require.NoError(t, err)

		_, err = NewJWTManager("other", time.Hour).Parse(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, _, err := NewJWTManager("test-secret", -time.Minute).Generate("user-1")
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.Error(t, err)
	})

	t.Run("tampered", func(t *testing.T) {
		token, _, err := m.Generate("user-1")
		require.NoError(t, err)

		_, err = m.Parse(token + "x")
		assert.Error(t, err)
	})
}
