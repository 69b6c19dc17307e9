package totp_test

import (
	"testing"
	"time"

	"github.com/pquerna/otp"
	pquernatotp "github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/otpkit/pkg/totp"
)

func TestBase32RoundTrip(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		b := rapid.SliceOf(rapid.Byte()).Draw(t, "bytes")
		assert.Equal(t, b, totp.DecodeBase32(totp.EncodeBase32(b)))
	})
}

func TestGenerateSecretIsValid(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 128).Draw(t, "length")
		secret, err := totp.GenerateSecret(n)
		require.NoError(t, err)
		assert.Len(t, secret, n)
		assert.True(t, totp.IsValidBase32(secret))
	})
}

func TestVerifyWindowProperty(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		windowRange := rapid.IntRange(0, 3).Draw(t, "windowRange")
		window := rapid.IntRange(-windowRange, windowRange).Draw(t, "window")
		at := time.Unix(rapid.Int64Range(1_000, 4_000_000_000).Draw(t, "unix"), 0)

		s, err := totp.New("", totp.WithWindowRange(windowRange))
		require.NoError(t, err)
		code, err := s.Code(totp.CodeRequest{Time: at, Window: window})
		require.NoError(t, err)

		w, ok := s.Match(code, at)
		require.True(t, ok)
		// An earlier window may collide with the same code; it is never outside the range.
		assert.LessOrEqual(t, w, window)
		assert.GreaterOrEqual(t, w, -windowRange)
	})
}

func TestDigitContract(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		digits := rapid.IntRange(1, 10).Draw(t, "digits")
		counter := rapid.Uint64().Draw(t, "counter")
		alg := rapid.SampledFrom([]totp.Algorithm{totp.SHA1, totp.SHA256, totp.SHA384, totp.SHA512}).Draw(t, "alg")
		key := rapid.SliceOfN(rapid.Byte(), 1, 64).Draw(t, "key")

		padded := totp.GenerateHOTP(key, counter, alg, digits, true)
		assert.Len(t, padded, digits)

		legacy := totp.GenerateHOTP(key, counter, alg, digits, false)
		assert.LessOrEqual(t, len(legacy), digits)
		assert.True(t, len(padded) >= len(legacy) && padded[len(padded)-len(legacy):] == legacy,
			"legacy code %q is a suffix of %q", legacy, padded)
	})
}

// TestMatchesPquernaOTP cross-checks padded codes against an independent implementation.
func TestMatchesPquernaOTP(t *testing.T) {
	t.Parallel()
	algorithms := map[totp.Algorithm]otp.Algorithm{
		totp.SHA1:   otp.AlgorithmSHA1,
		totp.SHA256: otp.AlgorithmSHA256,
		totp.SHA512: otp.AlgorithmSHA512,
	}
	rapid.Check(t, func(t *rapid.T) {
		alg := rapid.SampledFrom([]totp.Algorithm{totp.SHA1, totp.SHA256, totp.SHA512}).Draw(t, "alg")
		digits := rapid.SampledFrom([]int{6, 8}).Draw(t, "digits")
		period := rapid.SampledFrom([]int{15, 30, 60}).Draw(t, "period")
		// Multiples of 8 symbols decode without trailing bits in both implementations.
		length := rapid.SampledFrom([]int{16, 32, 64}).Draw(t, "length")
		at := time.Unix(rapid.Int64Range(0, 4_000_000_000).Draw(t, "unix"), 0).UTC()

		secret, err := totp.GenerateSecret(length)
		require.NoError(t, err)

		s, err := totp.New(secret,
			totp.WithAlgorithm(alg.String()),
			totp.WithDigits(digits),
			totp.WithPeriod(period),
			totp.WithZeroPadding(true),
		)
		require.NoError(t, err)
		got, err := s.Code(totp.CodeRequest{Time: at})
		require.NoError(t, err)

		want, err := pquernatotp.GenerateCodeCustom(secret, at, pquernatotp.ValidateOpts{
			Period:    uint(period),
			Digits:    otp.Digits(digits),
			Algorithm: algorithms[alg],
		})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
