package totp

import (
	"crypto/hmac"
	"encoding/binary"
	"fmt"
	"strconv"
)

const maxDigits = 10 // a 31-bit truncated value has at most 10 decimal digits

// GenerateHOTP implements the RFC 4226 HMAC-based One-Time Password algorithm
// for an already decoded key.
//
// Without zeroPad the code is the last digits characters of the decimal form
// of the truncated value, so it comes out shorter than digits when that value
// has fewer decimal digits. This matches codes produced by existing
// deployments. With zeroPad the result is left-padded to exactly digits
// characters as RFC 4226 prescribes.
func GenerateHOTP(key []byte, counter uint64, alg Algorithm, digits int, zeroPad bool) string {
	msg := EncodeCounter(counter)

	mac := hmac.New(alg.Hash(), key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	return formatCode(truncate(sum), digits, zeroPad)
}

// truncate performs RFC 4226 dynamic truncation: the low nibble of the last
// byte selects 4 bytes whose big-endian value is taken without the sign bit.
func truncate(sum []byte) uint32 {
	offset := sum[len(sum)-1] & 0x0f
	return binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff
}

func formatCode(code uint32, digits int, zeroPad bool) string {
	if zeroPad {
		s := fmt.Sprintf("%0*d", digits, code)
		return s[len(s)-digits:]
	}
	s := strconv.FormatUint(uint64(code), 10)
	if len(s) > digits {
		s = s[len(s)-digits:]
	}
	return s
}
