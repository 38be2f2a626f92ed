// Package widget models the password generator widget: a length slider, digit and
// symbol toggles, the displayed password and a copy button. Every parameter
// change is an explicit event that regenerates the password.
package widget

import (
	"errors"
	"fmt"

	"github.com/passgen/passgen-go/internal/crypto"
)

const (
	LabelCopy   = "Copy"
	LabelCopied = "Copied"

	DefaultMinLength = 6
	DefaultMaxLength = 101
)

var (
	ErrNothingToCopy = errors.New("no password to copy")
	ErrInvalidBounds = errors.New("invalid length bounds")
	ErrUnknownEvent  = errors.New("unknown widget event")
)

// Clipboard receives copied passwords.
type Clipboard interface {
	WriteAll(text string) error
}

// GenerateFunc produces a password for a config.
type GenerateFunc func(crypto.GenerationConfig) (string, error)

// EventKind identifies a widget event.
type EventKind int

const (
	EventSetLength EventKind = iota
	EventToggleDigits
	EventToggleSymbols
	EventSetDigits
	EventSetSymbols
	EventRegenerate
	EventCopy
)

func (k EventKind) String() string {
	switch k {
	case EventSetLength:
		return "length"
	case EventToggleDigits:
		return "toggle-digits"
	case EventToggleSymbols:
		return "toggle-symbols"
	case EventSetDigits:
		return "digits"
	case EventSetSymbols:
		return "symbols"
	case EventRegenerate:
		return "regenerate"
	case EventCopy:
		return "copy"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is a single user interaction. Length is read by EventSetLength, Enabled by
// EventSetDigits and EventSetSymbols.
type Event struct {
	Kind    EventKind
	Length  int
	Enabled bool
}

func SetLength(n int) Event { return Event{Kind: EventSetLength, Length: n} }
func ToggleDigits() Event { return Event{Kind: EventToggleDigits} }
func ToggleSymbols() Event { return Event{Kind: EventToggleSymbols} }
func SetDigits(on bool) Event { return Event{Kind: EventSetDigits, Enabled: on} }
func SetSymbols(on bool) Event { return Event{Kind: EventSetSymbols, Enabled: on} }
func Regenerate() Event { return Event{Kind: EventRegenerate} }
func Copy() Event { return Event{Kind: EventCopy} }

// State is a snapshot of what the widget displays.
type State struct {
	Config    crypto.GenerationConfig
	Password  string
	CopyLabel string
}

// Widget holds the shell state around the stateless generator.
// It is not safe for concurrent use.
type Widget struct {
	cfg       crypto.GenerationConfig
	password  string
	copyLabel string

	minLength int
	maxLength int
	generate  GenerateFunc
	clipboard Clipboard
}

// Option configures a Widget.
type Option func(*Widget)

// WithBounds sets the slider range. Lengths outside it are clamped.
func WithBounds(min, max int) Option {
	return func(w *Widget) {
		w.minLength = min
		w.maxLength = max
	}
}

// WithGenerator replaces crypto.Generate.
func WithGenerator(fn GenerateFunc) Option {
	return func(w *Widget) {
		w.generate = fn
	}
}

// WithClipboard sets where Copy writes the password.
func WithClipboard(c Clipboard) Option {
	return func(w *Widget) {
		w.clipboard = c
	}
}

// New creates a widget for cfg and generates its first password.
func New(cfg crypto.GenerationConfig, opts ...Option) (*Widget, error) {
	w, err := Restore(cfg, opts...)
	if err != nil {
		return nil, err
	}
	if err := w.regenerate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Restore rebuilds a widget for cfg without generating a password.
func Restore(cfg crypto.GenerationConfig, opts ...Option) (*Widget, error) {
	w := &Widget{
		minLength: DefaultMinLength,
		maxLength: DefaultMaxLength,
		generate:  crypto.Generate,
		copyLabel: LabelCopy,
	}
	for _, opt := range opts {
		opt(w)
	}

	if w.minLength < 1 || w.maxLength < w.minLength {
		return nil, fmt.Errorf("%w: %d..%d", ErrInvalidBounds, w.minLength, w.maxLength)
	}

	w.cfg = cfg
	w.cfg.Length = w.clamp(cfg.Length)
	return w, nil
}

// Apply handles one event. Parameter events and EventRegenerate produce a new
// password; EventCopy copies the current one.
func (w *Widget) Apply(ev Event) error {
	switch ev.Kind {
	case EventSetLength:
		w.cfg.Length = w.clamp(ev.Length)
	case EventToggleDigits:
		w.cfg.IncludeDigits = !w.cfg.IncludeDigits
	case EventToggleSymbols:
		w.cfg.IncludeSymbols = !w.cfg.IncludeSymbols
	case EventSetDigits:
		w.cfg.IncludeDigits = ev.Enabled
	case EventSetSymbols:
		w.cfg.IncludeSymbols = ev.Enabled
	case EventRegenerate:
	case EventCopy:
		return w.copyPassword()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownEvent, ev.Kind)
	}

	return w.regenerate()
}

// State returns the current display state.
func (w *Widget) State() State {
	return State{
		Config:    w.cfg,
		Password:  w.password,
		CopyLabel: w.copyLabel,
	}
}

// Config returns the current generation settings.
func (w *Widget) Config() crypto.GenerationConfig { return w.cfg }

// Password returns the most recently generated password.
func (w *Widget) Password() string { return w.password }

// Bounds returns the slider range.
func (w *Widget) Bounds() (min, max int) { return w.minLength, w.maxLength }

func (w *Widget) regenerate() error {
	password, err := w.generate(w.cfg)
	if err != nil {
		return err
	}
	w.password = password
	w.copyLabel = LabelCopy
	return nil
}

func (w *Widget) copyPassword() error {
	if w.password == "" {
		return ErrNothingToCopy
	}
	if w.clipboard != nil {
		if err := w.clipboard.WriteAll(w.password); err != nil {
			return fmt.Errorf("copying password: %w", err)
		}
	}
	w.copyLabel = LabelCopied
	return nil
}

func (w *Widget) clamp(n int) int {
	return min(max(n, w.minLength), w.maxLength)
}
