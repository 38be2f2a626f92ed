package crypto

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"strings"
)

const (
	letterChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "~`!@#$%^&*()_+=[]{}"

	DefaultLength = 8
	// DefaultMaxLength is the cap callers apply to requested lengths when none
	// is configured. Generate itself accepts any length of at least 1.
	DefaultMaxLength = 4096
)

var ErrInvalidConfig = errors.New("invalid config: password length must be at least 1")

// GenerationConfig configures the password generator. Letters are always included.
type GenerationConfig struct {
	Length         int
	IncludeDigits  bool
	IncludeSymbols bool
}

// DefaultConfig returns the widget's initial state: 8 letters, no digits, no symbols.
func DefaultConfig() GenerationConfig {
	return GenerationConfig{Length: DefaultLength}
}

// Validate reports ErrInvalidConfig for non-positive lengths.
func (c GenerationConfig) Validate() error {
	if c.Length < 1 {
		return ErrInvalidConfig
	}
	return nil
}

// Alphabet returns the ordered character set implied by cfg: letters, then digits,
// then symbols.
func Alphabet(cfg GenerationConfig) string {
	var sb strings.Builder
	sb.Grow(len(letterChars) + len(digitChars) + len(symbolChars))

	sb.WriteString(letterChars)
	if cfg.IncludeDigits {
		sb.WriteString(digitChars)
	}
	if cfg.IncludeSymbols {
		sb.WriteString(symbolChars)
	}
	return sb.String()
}

// Generate creates a random password from crypto/rand.
func Generate(cfg GenerationConfig) (string, error) {
	return GenerateWith(rand.Reader, cfg)
}

// GenerateWith creates a password of exactly cfg.Length characters, each drawn
// independently and uniformly from Alphabet(cfg) using bytes read from src.
func GenerateWith(src io.Reader, cfg GenerationConfig) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	alphabet := Alphabet(cfg)
	size := big.NewInt(int64(len(alphabet)))

	result := make([]byte, cfg.Length)
	for i := range result {
		n, err := rand.Int(src, size)
		if err != nil {
			return "", err
		}
		result[i] = alphabet[n.Int64()]
	}

	return string(result), nil
}
