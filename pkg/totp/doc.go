// Package totp implements Time-based One-Time Passwords (RFC 6238) on top of
// the HMAC-based One-Time Password algorithm (RFC 4226).
//
// The package turns a shared Base32 secret into a short numeric code that
// changes every period, verifies submitted codes against a window of adjacent
// periods to tolerate clock drift, and generates new secrets from a
// cryptographically secure random source. It performs no I/O besides the
// hash primitive, the random source and an injectable clock.
//
// # Architecture
//
//   - base32.go – lenient DecodeBase32, strict IsValidBase32 and EncodeBase32.
//     Decoding skips characters outside the alphabet so that secrets typed by
//     hand still work; validation rejects them.
//
//   - counter.go, otp.go, algorithm.go – counter encoding, HMAC and dynamic
//     truncation (GenerateHOTP) for SHA1, SHA256, SHA384 and SHA512.
//
//   - session.go, refresh.go – Session binds a secret to a Config and exposes
//     Code, Verify, Match, ScheduleRefresh and Watch.
//
//   - config.go, options.go – Config with defaults {SHA1, 6, 30, 1},
//     normalization, functional options and environment loading.
//
//   - uri.go, record.go – otpauth:// URI formatting and parsing, and the
//     persistable Record shape.
//
// # Code Format
//
// By default a code is the last Digits characters of the decimal value left
// by dynamic truncation. When that value has fewer decimal digits than
// Digits, the code is shorter too. This keeps codes compatible with
// deployments that relied on it. Enable Config.ZeroPad (WithZeroPadding) to
// get RFC 4226 left-zero-padded codes that always have exactly Digits
// characters.
//
// # Usage
//
//	secret, _ := totp.GenerateSecretKey()
//
//	s, err := totp.New(secret, totp.WithDigits(8), totp.WithZeroPadding(true))
//	if err != nil {
//	    return err
//	}
//
//	code, _ := s.CurrentCode()
//	ok := s.Verify(code)
//
//	uri, _ := totp.FormatURI(s.Key("Acme", "alice@example.com"))
//
// Process-wide defaults can be read from TOTP_ALGORITHM, TOTP_DIGITS,
// TOTP_PERIOD, TOTP_WINDOW_RANGE and TOTP_ZERO_PAD with LoadConfig and passed
// to sessions with WithConfig.
//
// # Error Handling
//
// Operations return package level sentinels such as ErrInvalidSecretFormat,
// ErrUnsupportedAlgorithm and ErrInvalidCallback, possibly joined with the
// underlying cause. Inspect them with errors.Is.
//
// # See Also
//
//   - RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   - RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
package totp
