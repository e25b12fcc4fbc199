// Package password generates random passwords from configurable
// character sets. It is stateless and shares nothing with the task engine.
package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	MinLength = 8
	MaxLength = 64

	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	specialChars   = "!@#$%^&*()-_=+[]{};:,.<>?"
)

var (
	ErrInvalidLength   = errors.New("password length must be between 8 and 64")
	ErrNoCharacterSets = errors.New("at least one character set must be enabled")
)

// Options configures password generation. Zero value is not useful; start
// from DefaultOptions.
type Options struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Digits    bool
	Special   bool
}

// DefaultOptions returns the default generation settings: 16 characters
// drawn from lowercase, uppercase, and digits.
func DefaultOptions() Options {
	return Options{
		Length:    16,
		Lowercase: true,
		Uppercase: true,
		Digits:    true,
		Special:   false,
	}
}

// Generate produces a random password according to opts using a
// cryptographically secure source.
func Generate(opts Options) (string, error) {
	if opts.Length < MinLength || opts.Length > MaxLength {
		return "", ErrInvalidLength
	}

	charset := ""
	if opts.Lowercase {
		charset += lowercaseChars
	}
	if opts.Uppercase {
		charset += uppercaseChars
	}
	if opts.Digits {
		charset += digitChars
	}
	if opts.Special {
		charset += specialChars
	}
	if charset == "" {
		return "", ErrNoCharacterSets
	}

	setSize := big.NewInt(int64(len(charset)))
	out := make([]byte, opts.Length)
	for i := range out {
		n, err := rand.Int(rand.Reader, setSize)
		if err != nil {
			return "", fmt.Errorf("failed to sample character: %w", err)
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}
