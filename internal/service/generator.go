package service

import (
	"errors"
	"fmt"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/metrics"
	"github.com/passgen/passgen-go/internal/model"
)

var ErrLengthTooLong = errors.New("password length exceeds the maximum")

// GeneratorService handles stateless password generation requests.
type GeneratorService struct {
	defaultLength int
	maxLength     int
	generate      func(crypto.GenerationConfig) (string, error)
}

// NewGeneratorService creates a new GeneratorService. Requests without a length
// use defaultLength; longer than maxLength are rejected. A maxLength below 1
// falls back to crypto.DefaultMaxLength.
func NewGeneratorService(defaultLength, maxLength int) *GeneratorService {
	if maxLength < 1 {
		maxLength = crypto.DefaultMaxLength
	}
	return &GeneratorService{
		defaultLength: defaultLength,
		maxLength:     maxLength,
		generate:      crypto.Generate,
	}
}

// Generate produces a password based on the given request. An explicit length is
// passed to the generator as is, so zero or negative values fail with
// crypto.ErrInvalidConfig.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg := crypto.GenerationConfig{
		Length:         intOrDefault(req.Length, s.defaultLength),
		IncludeDigits:  boolOrDefault(req.Numbers, false),
		IncludeSymbols: boolOrDefault(req.Symbols, false),
	}

	if cfg.Length > s.maxLength {
		metrics.ObserveError("too_long")
		return model.GenerateResponse{}, fmt.Errorf("%w (%d)", ErrLengthTooLong, s.maxLength)
	}

	password, err := s.generate(cfg)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidConfig) {
			metrics.ObserveError("invalid_config")
		} else {
			metrics.ObserveError("internal")
		}
		return model.GenerateResponse{}, err
	}
	metrics.ObserveGenerated("http", cfg)

	return model.GenerateResponse{
		Password:     password,
		Length:       len(password),
		AlphabetSize: len(crypto.Alphabet(cfg)),
	}, nil
}

// Alphabet describes the character set for the given toggles.
func (s *GeneratorService) Alphabet(numbers, symbols bool) model.AlphabetResponse {
	alphabet := crypto.Alphabet(crypto.GenerationConfig{IncludeDigits: numbers, IncludeSymbols: symbols})
	return model.AlphabetResponse{
		Alphabet: alphabet,
		Size:     len(alphabet),
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
