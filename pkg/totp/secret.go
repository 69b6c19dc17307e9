package totp

import (
	"crypto/rand"
	"errors"
)

// DefaultSecretLength is the number of Base32 symbols in a generated secret (80 bits).
const DefaultSecretLength = 16

// GenerateSecret returns length Base32 symbols drawn uniformly at random from
// a cryptographically secure source.
func GenerateSecret(length int) (string, error) {
	if length < 1 {
		return "", ErrInvalidSecretLength
	}
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Join(ErrFailedToGenerateSecretKey, err)
	}
	// 32 divides 256, so masking keeps the distribution uniform.
	for i, b := range buf {
		buf[i] = Base32Alphabet[b&0x1f]
	}
	return string(buf), nil
}

// GenerateSecretKey generates a new secret of DefaultSecretLength symbols.
func GenerateSecretKey() (string, error) {
	return GenerateSecret(DefaultSecretLength)
}
