package totp

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultAlgorithm   = SHA1 // HMAC-SHA1 (RFC 6238 default)
	DefaultDigits      = 6    // Standard 6-digit codes
	DefaultPeriod      = 30   // 30-second time step (RFC 6238 default)
	DefaultWindowRange = 1    // Accept the previous and the next period
)

// Config controls code generation and verification for a Session.
type Config struct {
	Algorithm Algorithm `env:"TOTP_ALGORITHM" envDefault:"SHA1"`
	Digits    int       `env:"TOTP_DIGITS" envDefault:"6"`
	// Period is the time step in seconds.
	Period int `env:"TOTP_PERIOD" envDefault:"30"`
	// WindowRange is the number of adjacent periods tolerated on each side.
	WindowRange int `env:"TOTP_WINDOW_RANGE" envDefault:"1"`
	// ZeroPad selects RFC 4226 left-padding instead of right-truncation.
	ZeroPad bool `env:"TOTP_ZERO_PAD" envDefault:"false"`
}

// DefaultConfig returns the RFC 6238 defaults: SHA1, 6 digits, 30 seconds and a
// window range of 1. Each call returns a fresh value.
func DefaultConfig() Config {
	return Config{
		Algorithm:   DefaultAlgorithm,
		Digits:      DefaultDigits,
		Period:      DefaultPeriod,
		WindowRange: DefaultWindowRange,
	}
}

// Normalize returns a copy with zero Algorithm, Digits and Period replaced by
// their defaults and the algorithm name canonicalized. WindowRange is kept as
// is since zero is a meaningful value. Out of range values are rejected.
func (c Config) Normalize() (Config, error) {
	if c.Algorithm == "" {
		c.Algorithm = DefaultAlgorithm
	}
	alg, err := ParseAlgorithm(string(c.Algorithm))
	if err != nil {
		return Config{}, err
	}
	c.Algorithm = alg

	if c.Digits == 0 {
		c.Digits = DefaultDigits
	}
	if c.Digits < 1 || c.Digits > maxDigits {
		return Config{}, ErrInvalidDigits
	}

	if c.Period == 0 {
		c.Period = DefaultPeriod
	}
	if c.Period < 0 {
		return Config{}, ErrInvalidPeriod
	}

	if c.WindowRange < 0 {
		return Config{}, ErrInvalidWindowRange
	}
	return c, nil
}

// LoadConfig reads process-wide defaults from TOTP_* environment variables.
// The result is a validated value; callers load it once and pass it around
// with WithConfig.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrFailedToLoadConfig, err)
	}
	cfg, err = cfg.Normalize()
	if err != nil {
		return Config{}, errors.Join(ErrFailedToLoadConfig, err)
	}
	return cfg, nil
}
