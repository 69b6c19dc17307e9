package totp

import (
	"log/slog"

	"github.com/benbjohnson/clock"
)

// Option configures a Session.
type Option func(*options)

type options struct {
	cfg   Config
	clock clock.Clock
	log   *slog.Logger
}

func defaultOptions() *options {
	return &options{
		cfg:   DefaultConfig(),
		clock: clock.New(),
		log:   slog.New(slog.DiscardHandler),
	}
}

// WithConfig replaces the whole configuration. Options applied after it
// override individual fields.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithAlgorithm sets the HMAC algorithm by name. The name is validated when
// the session is created.
func WithAlgorithm(name string) Option {
	return func(o *options) { o.cfg.Algorithm = Algorithm(name) }
}

func WithDigits(digits int) Option {
	return func(o *options) { o.cfg.Digits = digits }
}

// WithPeriod sets the time step in seconds.
func WithPeriod(period int) Option {
	return func(o *options) { o.cfg.Period = period }
}

// WithWindowRange sets how many adjacent periods on each side Verify accepts.
func WithWindowRange(n int) Option {
	return func(o *options) { o.cfg.WindowRange = n }
}

// WithZeroPadding switches code formatting to RFC 4226 left-zero-padding.
func WithZeroPadding(enabled bool) Option {
	return func(o *options) { o.cfg.ZeroPad = enabled }
}

// WithClock sets the time source used for the current time and refresh timers.
// Nil clocks are ignored.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLogger sets the logger for debug events. Secrets and codes are never logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
