package model

// GenerateRequest represents a password generation request.
// Pointers distinguish a missing field (nil -> default) from an explicit value.
type GenerateRequest struct {
	Length  *int  `json:"length"`
	Numbers *bool `json:"numbers"`
	Symbols *bool `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password     string `json:"password"`
	Length       int    `json:"length"`
	AlphabetSize int    `json:"alphabet_size"`
}

// AlphabetResponse describes the character set for a pair of toggles.
type AlphabetResponse struct {
	Alphabet string `json:"alphabet"`
	Size     int    `json:"size"`
}
