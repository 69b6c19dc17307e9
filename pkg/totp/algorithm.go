package totp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"strings"
)

// Algorithm names the hash function used by the HMAC step.
type Algorithm string

const (
	SHA1   Algorithm = "SHA1"
	SHA256 Algorithm = "SHA256"
	SHA384 Algorithm = "SHA384"
	SHA512 Algorithm = "SHA512"
)

// ParseAlgorithm maps a case-insensitive name such as "sha1", "SHA-256" or
// "Sha512" onto one of the supported algorithms.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(name)), "-", "") {
	case "SHA1":
		return SHA1, nil
	case "SHA256":
		return SHA256, nil
	case "SHA384":
		return SHA384, nil
	case "SHA512":
		return SHA512, nil
	}
	return "", errors.Join(ErrUnsupportedAlgorithm, fmt.Errorf("algorithm %q", name))
}

// Hash returns the hash constructor for the algorithm.
// Unknown values fall back to SHA-1; configs are validated before reaching here.
func (a Algorithm) Hash() func() hash.Hash {
	switch a {
	case SHA256:
		return sha256.New
	case SHA384:
		return sha512.New384
	case SHA512:
		return sha512.New
	default:
		return sha1.New
	}
}

func (a Algorithm) String() string {
	return string(a)
}

// UnmarshalText implements encoding.TextUnmarshaler so that environment and
// YAML loaders reject unsupported names early.
func (a *Algorithm) UnmarshalText(text []byte) error {
	alg, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = alg
	return nil
}
