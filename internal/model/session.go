package model

// Session event types accepted by the widget session endpoint.
const (
	EventLength     = "length"
	EventNumbers    = "numbers"
	EventSymbols    = "symbols"
	EventRegenerate = "regenerate"
)

// SessionStartRequest opens a widget session. Missing fields use the widget defaults.
type SessionStartRequest struct {
	Length  *int  `json:"length"`
	Numbers *bool `json:"numbers"`
	Symbols *bool `json:"symbols"`
}

// SessionEventRequest is one parameter change in a widget session.
// Length is read for "length" events; Enabled for "numbers" and "symbols".
// A missing Enabled toggles the current value.
type SessionEventRequest struct {
	Type    string `json:"type"`
	Length  int    `json:"length"`
	Enabled *bool  `json:"enabled"`
}

// SessionResponse carries the refreshed session token and the newly displayed password.
type SessionResponse struct {
	Token     string `json:"token"`
	Password  string `json:"password"`
	Length    int    `json:"length"`
	Numbers   bool   `json:"numbers"`
	Symbols   bool   `json:"symbols"`
	CopyLabel string `json:"copy_label"`
}
