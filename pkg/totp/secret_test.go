package totp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/otpkit/pkg/totp"
)

func TestGenerateSecretKey(t *testing.T) {
	t.Parallel()
	secret, err := totp.GenerateSecretKey()
	require.NoError(t, err)
	assert.Len(t, secret, totp.DefaultSecretLength)
	assert.Regexp(t, totp.ValidateSecretKeyRegex, secret)
}

func TestGenerateSecret(t *testing.T) {
	t.Parallel()

	t.Run("invalid length", func(t *testing.T) {
		t.Parallel()
		for _, n := range []int{0, -1} {
			_, err := totp.GenerateSecret(n)
			assert.ErrorIs(t, err, totp.ErrInvalidSecretLength)
		}
	})

	t.Run("secrets differ", func(t *testing.T) {
		t.Parallel()
		seen := make(map[string]struct{})
		for range 100 {
			s, err := totp.GenerateSecret(32)
			require.NoError(t, err)
			_, dup := seen[s]
			require.False(t, dup)
			seen[s] = struct{}{}
		}
	})

	t.Run("uses the whole alphabet", func(t *testing.T) {
		t.Parallel()
		s, err := totp.GenerateSecret(4096)
		require.NoError(t, err)
		for _, c := range totp.Base32Alphabet {
			assert.Contains(t, s, string(c))
		}
	})
}
