package totp

import "errors"

var (
	ErrInvalidSecretFormat       = errors.New("invalid secret: only Base32 characters A-Z and 2-7 are allowed")
	ErrInvalidSecretLength       = errors.New("invalid secret length, must be greater than 0")
	ErrFailedToGenerateSecretKey = errors.New("failed to generate TOTP secret key")
	ErrUnsupportedAlgorithm      = errors.New("unsupported algorithm")
	ErrInvalidDigits             = errors.New("invalid digits, must be between 1 and 10")
	ErrInvalidPeriod             = errors.New("invalid period, must be greater than 0")
	ErrInvalidWindowRange        = errors.New("invalid window range, must not be negative")
	ErrInvalidCallback           = errors.New("callback must be a non-nil function")
	ErrFailedToLoadConfig        = errors.New("failed to load TOTP config")
	ErrInvalidURI                = errors.New("invalid otpauth URI")
	ErrMissingSecret             = errors.New("missing secret")
	ErrMissingAccountName        = errors.New("missing account name")
	ErrMissingIssuer             = errors.New("missing issuer")
)
