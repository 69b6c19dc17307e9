package totp

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/atomic"

	"github.com/dmitrymomot/otpkit/pkg/logger"
)

// Session binds one secret to one configuration and generates and verifies
// codes for it. A Session is safe for concurrent use.
type Session struct {
	secret string
	key    []byte
	cfg    *atomic.Pointer[Config]
	clock  clock.Clock
	log    *slog.Logger
}

// CodeRequest selects the period a code is generated for.
type CodeRequest struct {
	Time   time.Time // zero means the session clock's current time
	Period int       // zero means the configured period
	Window int       // offset in periods from the one containing Time
}

// New creates a session for a Base32 secret. An empty secret is replaced by
// a freshly generated one. The secret is checked strictly with IsValidBase32;
// options are merged over DefaultConfig and validated.
func New(secret string, opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	cfg, err := o.cfg.Normalize()
	if err != nil {
		return nil, err
	}

	secret = strings.TrimSpace(secret)
	if secret == "" {
		if secret, err = GenerateSecretKey(); err != nil {
			return nil, err
		}
	}
	if !IsValidBase32(secret) {
		return nil, ErrInvalidSecretFormat
	}

	return &Session{
		secret: secret,
		key:    DecodeBase32(secret),
		cfg:    atomic.NewPointer(&cfg),
		clock:  o.clock,
		log:    o.log.With(logger.Component("totp")),
	}, nil
}

// Secret returns the Base32 secret bound to the session.
func (s *Session) Secret() string {
	return s.secret
}

// Config returns a snapshot of the current configuration.
func (s *Session) Config() Config {
	return *s.cfg.Load()
}

// SetConfig replaces the whole configuration; fields are not merged with the
// current one. Zero Algorithm, Digits and Period fall back to their defaults,
// but a zero WindowRange is taken literally and disables drift tolerance.
// In-flight calls keep using the configuration they started with.
func (s *Session) SetConfig(cfg Config) error {
	cfg, err := cfg.Normalize()
	if err != nil {
		return err
	}
	s.cfg.Store(&cfg)
	return nil
}

// Code returns the code for the period selected by req.
func (s *Session) Code(req CodeRequest) (string, error) {
	cfg := s.Config()
	period := cfg.Period
	if req.Period < 0 {
		return "", ErrInvalidPeriod
	}
	if req.Period > 0 {
		period = req.Period
	}
	at := req.Time
	if at.IsZero() {
		at = s.clock.Now()
	}
	return s.code(cfg, CounterAt(at, period, req.Window)), nil
}

// CurrentCode returns the code for the current period.
func (s *Session) CurrentCode() (string, error) {
	return s.Code(CodeRequest{})
}

// Verify reports whether code matches the current period or any period within
// the configured window range.
func (s *Session) Verify(code string) bool {
	return s.VerifyAt(code, s.clock.Now())
}

// VerifyAt is like Verify but checks against the periods around t.
func (s *Session) VerifyAt(code string, t time.Time) bool {
	_, ok := s.Match(code, t)
	return ok
}

// Match returns the window offset, from -WindowRange to +WindowRange, of the
// first period around t whose code equals code. Comparison is constant time
// per candidate.
func (s *Session) Match(code string, t time.Time) (int, bool) {
	cfg := s.Config()
	candidate := []byte(strings.TrimSpace(code))
	for w := -cfg.WindowRange; w <= cfg.WindowRange; w++ {
		expected := s.code(cfg, CounterAt(t, cfg.Period, w))
		if subtle.ConstantTimeCompare([]byte(expected), candidate) == 1 {
			s.log.Debug("code matched", logger.Window(w))
			return w, true
		}
	}
	s.log.Debug("code did not match", logger.Window(cfg.WindowRange))
	return 0, false
}

// Record returns the persistable form of the session.
func (s *Session) Record() Record {
	cfg := s.Config()
	return Record{
		Algorithm: cfg.Algorithm.String(),
		Digits:    cfg.Digits,
		Period:    cfg.Period,
		Secret:    s.secret,
		ZeroPad:   cfg.ZeroPad,
	}
}

// Key returns the provisioning key for the session, ready for FormatURI.
func (s *Session) Key(issuer, accountName string) Key {
	return Key{
		Issuer:      issuer,
		AccountName: accountName,
		Secret:      s.secret,
		Config:      s.Config(),
	}
}

// MarshalJSON encodes the session as its Record.
func (s *Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Record())
}

func (s *Session) code(cfg Config, counter uint64) string {
	return GenerateHOTP(s.key, counter, cfg.Algorithm, cfg.Digits, cfg.ZeroPad)
}
