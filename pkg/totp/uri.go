package totp

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Key describes an account as exchanged with authenticator apps through an
// otpauth:// URI.
type Key struct {
	Issuer      string // Service name displayed in authenticator apps (required)
	AccountName string // User identifier like email (required)
	Secret      string // Base32-encoded secret (required)
	Config      Config // Zero value means DefaultConfig; otherwise used as is
}

// Validate ensures all required fields are present and valid.
func (k Key) Validate() error {
	if k.Secret == "" {
		return ErrMissingSecret
	}
	if !IsValidBase32(k.Secret) {
		return ErrInvalidSecretFormat
	}
	if k.AccountName == "" {
		return ErrMissingAccountName
	}
	if k.Issuer == "" {
		return ErrMissingIssuer
	}
	return nil
}

// Session creates a session for the key. Options override the key's config.
func (k Key) Session(opts ...Option) (*Session, error) {
	cfg := k.Config
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	return New(k.Secret, append([]Option{WithConfig(cfg)}, opts...)...)
}

// FormatURI creates a properly encoded TOTP URI for use with authenticator apps.
// The URI format follows the Key Uri Format specification:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
func FormatURI(k Key) (string, error) {
	if err := k.Validate(); err != nil {
		return "", err
	}
	cfg, err := k.Config.Normalize()
	if err != nil {
		return "", err
	}

	label := fmt.Sprintf("%s:%s",
		url.PathEscape(k.Issuer),
		url.PathEscape(k.AccountName),
	)

	query := url.Values{}
	query.Set("secret", strings.ToUpper(k.Secret))
	query.Set("issuer", k.Issuer)
	query.Set("algorithm", cfg.Algorithm.String())
	query.Set("digits", strconv.Itoa(cfg.Digits))
	query.Set("period", strconv.Itoa(cfg.Period))

	return fmt.Sprintf("otpauth://totp/%s?%s", label, query.Encode()), nil
}

// ParseURI parses an otpauth://totp/ URI, typically the payload of an
// enrollment QR code. Missing algorithm, digits and period fall back to the
// defaults. The issuer in the label prefix takes precedence; the issuer query
// parameter is used only when the label has none.
func ParseURI(raw string) (Key, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Key{}, errors.Join(ErrInvalidURI, err)
	}
	if !strings.EqualFold(u.Scheme, "otpauth") {
		return Key{}, errors.Join(ErrInvalidURI, fmt.Errorf("unexpected scheme %q", u.Scheme))
	}
	if !strings.EqualFold(u.Host, "totp") {
		return Key{}, errors.Join(ErrInvalidURI, fmt.Errorf("unsupported OTP type %q", u.Host))
	}

	var k Key
	label := strings.TrimPrefix(u.Path, "/")
	if issuer, account, ok := strings.Cut(label, ":"); ok {
		k.Issuer = strings.TrimSpace(issuer)
		k.AccountName = strings.TrimSpace(account)
	} else {
		k.AccountName = strings.TrimSpace(label)
	}

	q := u.Query()
	if k.Issuer == "" {
		k.Issuer = strings.TrimSpace(q.Get("issuer"))
	}
	k.Secret = strings.ToUpper(strings.TrimSpace(q.Get("secret")))
	if k.Secret == "" {
		return Key{}, ErrMissingSecret
	}
	if !IsValidBase32(k.Secret) {
		return Key{}, ErrInvalidSecretFormat
	}

	cfg := DefaultConfig()
	if alg := q.Get("algorithm"); alg != "" {
		cfg.Algorithm = Algorithm(alg)
	}
	if cfg.Digits, err = intParam(q, "digits", cfg.Digits); err != nil {
		return Key{}, err
	}
	if cfg.Period, err = intParam(q, "period", cfg.Period); err != nil {
		return Key{}, err
	}
	if k.Config, err = cfg.Normalize(); err != nil {
		return Key{}, err
	}
	return k, nil
}

func intParam(q url.Values, name string, fallback int) (int, error) {
	v := q.Get(name)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Join(ErrInvalidURI, fmt.Errorf("invalid %s %q", name, v))
	}
	return n, nil
}
