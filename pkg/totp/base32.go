package totp

import (
	"encoding/base32"
	"regexp"
	"strings"
)

// Base32Alphabet is the RFC 4648 alphabet used for TOTP secrets.
const Base32Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// ValidateSecretKeyRegex matches uppercase Base32 text with optional trailing padding.
var ValidateSecretKeyRegex = regexp.MustCompile("^[A-Z2-7]+=*$")

var base32NoPadding = base32.StdEncoding.WithPadding(base32.NoPadding)

// IsValidBase32 reports whether text, once uppercased, contains only Base32
// symbols followed by optional "=" padding.
func IsValidBase32(text string) bool {
	return ValidateSecretKeyRegex.MatchString(strings.ToUpper(text))
}

// DecodeBase32 decodes a secret leniently. Trailing padding is stripped,
// letters are matched case-insensitively and characters outside the alphabet
// (typos like 0, 1, 8 or 9, spaces, dashes) are skipped instead of rejected.
// A final group shorter than 8 bits is dropped.
//
// Use IsValidBase32 when strict input checking is required.
func DecodeBase32(text string) []byte {
	text = strings.TrimRight(text, "=")
	out := make([]byte, 0, len(text)*5/8)

	var buf uint32
	var bits uint
	for i := 0; i < len(text); i++ {
		val := strings.IndexByte(Base32Alphabet, upper(text[i]))
		if val < 0 {
			continue
		}
		buf = buf<<5 | uint32(val)
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(buf>>bits))
			buf &= 1<<bits - 1
		}
	}
	return out
}

// EncodeBase32 returns the unpadded Base32 encoding of b.
func EncodeBase32(b []byte) string {
	return base32NoPadding.EncodeToString(b)
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
