package totp

import "math"

// Record is the normalized, persistable description of an account's TOTP
// settings. Storage itself is up to the caller.
type Record struct {
	Issuer      string `json:"issuer,omitempty" yaml:"issuer,omitempty"`
	AccountName string `json:"account,omitempty" yaml:"account,omitempty"`
	Algorithm   string `json:"algorithm" yaml:"algorithm"`
	Digits      int    `json:"digits" yaml:"digits"`
	Period      int    `json:"period" yaml:"period"`
	Secret      string `json:"secret" yaml:"secret"`
	ZeroPad     bool   `json:"zeroPad,omitempty" yaml:"zero_pad,omitempty"`
}

// FormatRecord fills zero fields of r with defaults and generates a secret when
// none is set. Values are not validated; Session does that.
func FormatRecord(r Record) (Record, error) {
	if r.Algorithm == "" {
		r.Algorithm = DefaultAlgorithm.String()
	}
	if r.Digits == 0 {
		r.Digits = DefaultDigits
	}
	if r.Period == 0 {
		r.Period = DefaultPeriod
	}
	if r.Secret == "" {
		secret, err := GenerateSecretKey()
		if err != nil {
			return Record{}, err
		}
		r.Secret = secret
	}
	return r, nil
}

// Session creates a session from the record. Options override the record's
// settings.
func (r Record) Session(opts ...Option) (*Session, error) {
	base := []Option{
		WithAlgorithm(r.Algorithm),
		WithDigits(r.Digits),
		WithPeriod(r.Period),
		WithZeroPadding(r.ZeroPad),
	}
	return New(r.Secret, append(base, opts...)...)
}

// NewFromMap creates a session from a loosely typed options object such as a
// decoded JSON document. Recognized keys are secret, algorithm, digits,
// period, windowRange and zeroPad. A value of an unexpected kind, e.g. digits
// given as the string "8", is ignored and the default stays in effect.
// Options passed explicitly are applied after the map.
func NewFromMap(m map[string]any, opts ...Option) (*Session, error) {
	var secret string
	var base []Option
	for k, v := range m {
		switch k {
		case "secret":
			if s, ok := v.(string); ok {
				secret = s
			}
		case "algorithm":
			if s, ok := v.(string); ok {
				base = append(base, WithAlgorithm(s))
			}
		case "digits":
			if n, ok := asInt(v); ok {
				base = append(base, WithDigits(n))
			}
		case "period":
			if n, ok := asInt(v); ok {
				base = append(base, WithPeriod(n))
			}
		case "windowRange":
			if n, ok := asInt(v); ok {
				base = append(base, WithWindowRange(n))
			}
		case "zeroPad":
			if b, ok := v.(bool); ok {
				base = append(base, WithZeroPadding(b))
			}
		}
	}
	return New(secret, append(base, opts...)...)
}

// asInt accepts Go integers and integral float64 values (JSON numbers).
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}
