package totp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/otpkit/pkg/totp"
)

func TestFormatURI(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		key     totp.Key
		want    string
		wantErr error
	}{
		{
			name: "Basic URI",
			key: totp.Key{
				Secret:      "ABCDEFGHIJKLMNOP",
				AccountName: "test@example.com",
				Issuer:      "TestApp",
			},
			want: "otpauth://totp/TestApp:test@example.com?algorithm=SHA1&digits=6&issuer=TestApp&period=30&secret=ABCDEFGHIJKLMNOP",
		},
		{
			name: "URI with special characters",
			key: totp.Key{
				Secret:      "abcdefghijklmnop",
				AccountName: "test+user@example.com",
				Issuer:      "Test & App",
				Config:      totp.Config{Algorithm: "sha256", Digits: 8, Period: 60},
			},
			want: "otpauth://totp/Test%20&%20App:test+user@example.com?algorithm=SHA256&digits=8&issuer=Test+%26+App&period=60&secret=ABCDEFGHIJKLMNOP",
		},
		{
			name:    "Missing secret",
			key:     totp.Key{AccountName: "a", Issuer: "b"},
			wantErr: totp.ErrMissingSecret,
		},
		{
			name:    "Invalid secret",
			key:     totp.Key{Secret: "not-base32!", AccountName: "a", Issuer: "b"},
			wantErr: totp.ErrInvalidSecretFormat,
		},
		{
			name:    "Missing account name",
			key:     totp.Key{Secret: "ABCDEFGHIJKLMNOP", Issuer: "b"},
			wantErr: totp.ErrMissingAccountName,
		},
		{
			name:    "Missing issuer",
			key:     totp.Key{Secret: "ABCDEFGHIJKLMNOP", AccountName: "a"},
			wantErr: totp.ErrMissingIssuer,
		},
		{
			name:    "Unsupported algorithm",
			key:     totp.Key{Secret: "ABCDEFGHIJKLMNOP", AccountName: "a", Issuer: "b", Config: totp.Config{Algorithm: "MD5"}},
			wantErr: totp.ErrUnsupportedAlgorithm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := totp.FormatURI(tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseURI(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		key := totp.Key{
			Issuer:      "Test & App",
			AccountName: "test+user@example.com",
			Secret:      helloSecret,
			Config:      totp.Config{Algorithm: totp.SHA512, Digits: 8, Period: 60, WindowRange: 1},
		}
		uri, err := totp.FormatURI(key)
		require.NoError(t, err)

		got, err := totp.ParseURI(uri)
		require.NoError(t, err)
		assert.Equal(t, key, got)
	})

	t.Run("defaults and label issuer", func(t *testing.T) {
		t.Parallel()
		got, err := totp.ParseURI("otpauth://totp/Example:alice@google.com?secret=jbswy3dpehpk3pxp")
		require.NoError(t, err)
		assert.Equal(t, totp.Key{
			Issuer:      "Example",
			AccountName: "alice@google.com",
			Secret:      helloSecret,
			Config:      totp.DefaultConfig(),
		}, got)
	})

	t.Run("label issuer wins over parameter", func(t *testing.T) {
		t.Parallel()
		got, err := totp.ParseURI("otpauth://totp/Label:alice?secret=JBSWY3DPEHPK3PXP&issuer=Param")
		require.NoError(t, err)
		assert.Equal(t, "Label", got.Issuer)
		assert.Equal(t, "alice", got.AccountName)
	})

	t.Run("issuer parameter fills a bare label", func(t *testing.T) {
		t.Parallel()
		got, err := totp.ParseURI("otpauth://totp/alice?secret=JBSWY3DPEHPK3PXP&issuer=Param")
		require.NoError(t, err)
		assert.Equal(t, "Param", got.Issuer)
		assert.Equal(t, "alice", got.AccountName)
	})

	t.Run("label without issuer", func(t *testing.T) {
		t.Parallel()
		got, err := totp.ParseURI("otpauth://totp/alice?secret=JBSWY3DPEHPK3PXP")
		require.NoError(t, err)
		assert.Empty(t, got.Issuer)
		assert.Equal(t, "alice", got.AccountName)
	})

	t.Run("session from key without config uses defaults", func(t *testing.T) {
		t.Parallel()
		s, err := totp.Key{Issuer: "Acme", AccountName: "a", Secret: helloSecret}.Session()
		require.NoError(t, err)
		assert.Equal(t, totp.DefaultConfig(), s.Config())
		assert.True(t, s.VerifyAt(helloWindows[-1], helloTime), "previous period accepted")
		assert.True(t, s.VerifyAt(helloWindows[1], helloTime), "next period accepted")
	})

	t.Run("session keeps an explicit zero window range", func(t *testing.T) {
		t.Parallel()
		key := totp.Key{Issuer: "Acme", AccountName: "a", Secret: helloSecret, Config: totp.Config{Digits: 6}}
		s, err := key.Session()
		require.NoError(t, err)
		assert.Equal(t, 0, s.Config().WindowRange)
		assert.False(t, s.VerifyAt(helloWindows[-1], helloTime))
	})

	t.Run("session from parsed key", func(t *testing.T) {
		t.Parallel()
		key, err := totp.ParseURI("otpauth://totp/ACME:a?secret=" + seedSHA1 + "&digits=8")
		require.NoError(t, err)
		s, err := key.Session()
		require.NoError(t, err)
		assert.True(t, s.VerifyAt("94287082", time.Unix(59, 0)))
	})

	errorCases := []struct {
		name    string
		uri     string
		wantErr error
	}{
		{"wrong scheme", "https://totp/a?secret=JBSWY3DPEHPK3PXP", totp.ErrInvalidURI},
		{"hotp type", "otpauth://hotp/a?secret=JBSWY3DPEHPK3PXP&counter=1", totp.ErrInvalidURI},
		{"missing secret", "otpauth://totp/a", totp.ErrMissingSecret},
		{"invalid secret", "otpauth://totp/a?secret=not-base32", totp.ErrInvalidSecretFormat},
		{"bad digits", "otpauth://totp/a?secret=JBSWY3DPEHPK3PXP&digits=six", totp.ErrInvalidURI},
		{"bad period", "otpauth://totp/a?secret=JBSWY3DPEHPK3PXP&period=-30", totp.ErrInvalidPeriod},
		{"bad algorithm", "otpauth://totp/a?secret=JBSWY3DPEHPK3PXP&algorithm=MD5", totp.ErrUnsupportedAlgorithm},
		{"unparsable", "otpauth://%zz", totp.ErrInvalidURI},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := totp.ParseURI(tt.uri)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
