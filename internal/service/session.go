package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/metrics"
	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/widget"
)

var (
	ErrUnsupportedEvent = errors.New("unsupported session event")
)

// SessionSettings configures widget sessions.
type SessionSettings struct {
	Secret        string
	Expiry        time.Duration
	MinLength     int
	MaxLength     int
	DefaultLength int
}

// SessionService drives a widget over HTTP. The server keeps no session state: the
// widget's settings travel in a signed token and are restored on every event.
type SessionService struct {
	settings SessionSettings
}

// NewSessionService creates a new SessionService.
func NewSessionService(settings SessionSettings) *SessionService {
	return &SessionService{settings: settings}
}

// Start opens a session and generates its first password.
func (s *SessionService) Start(req model.SessionStartRequest) (model.SessionResponse, error) {
	cfg := crypto.GenerationConfig{
		Length:         intOrDefault(req.Length, s.settings.DefaultLength),
		IncludeDigits:  boolOrDefault(req.Numbers, false),
		IncludeSymbols: boolOrDefault(req.Symbols, false),
	}

	w, err := widget.New(cfg, s.widgetOptions()...)
	if err != nil {
		return model.SessionResponse{}, err
	}
	metrics.ObserveGenerated("session", w.Config())

	return s.respond("", w)
}

// Apply handles one parameter-change event for the session described by claims and
// returns the regenerated password with a refreshed token.
func (s *SessionService) Apply(claims *crypto.SessionClaims, req model.SessionEventRequest) (model.SessionResponse, error) {
	ev, err := sessionEvent(req)
	if err != nil {
		return model.SessionResponse{}, err
	}

	w, err := widget.Restore(claims.Config(), s.widgetOptions()...)
	if err != nil {
		return model.SessionResponse{}, err
	}
	if err := w.Apply(ev); err != nil {
		return model.SessionResponse{}, err
	}
	metrics.ObserveGenerated("session", w.Config())

	slog.Debug("session event applied", "session_id", claims.ID, "event", ev.Kind.String())

	return s.respond(claims.ID, w)
}

func (s *SessionService) respond(sessionID string, w *widget.Widget) (model.SessionResponse, error) {
	state := w.State()

	token, err := crypto.GenerateToken(sessionID, state.Config, s.settings.Secret, s.settings.Expiry)
	if err != nil {
		return model.SessionResponse{}, err
	}

	return model.SessionResponse{
		Token:     token,
		Password:  state.Password,
		Length:    state.Config.Length,
		Numbers:   state.Config.IncludeDigits,
		Symbols:   state.Config.IncludeSymbols,
		CopyLabel: state.CopyLabel,
	}, nil
}

func (s *SessionService) widgetOptions() []widget.Option {
	return []widget.Option{widget.WithBounds(s.settings.MinLength, s.settings.MaxLength)}
}

// sessionEvent maps a request onto a widget event. Copying happens client-side, so
// only parameter changes and regeneration are accepted.
func sessionEvent(req model.SessionEventRequest) (widget.Event, error) {
	switch req.Type {
	case model.EventLength:
		return widget.SetLength(req.Length), nil
	case model.EventNumbers:
		if req.Enabled == nil {
			return widget.ToggleDigits(), nil
		}
		return widget.SetDigits(*req.Enabled), nil
	case model.EventSymbols:
		if req.Enabled == nil {
			return widget.ToggleSymbols(), nil
		}
		return widget.SetSymbols(*req.Enabled), nil
	case model.EventRegenerate:
		return widget.Regenerate(), nil
	default:
		return widget.Event{}, ErrUnsupportedEvent
	}
}
