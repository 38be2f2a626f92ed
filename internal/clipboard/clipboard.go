package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

var ErrUnavailable = errors.New("system clipboard not available")

// System writes to the operating system clipboard.
type System struct{}

// Available reports whether the system clipboard can be used on this host.
func Available() bool {
	return !clipboard.Unsupported
}

// WriteAll copies text to the system clipboard.
func (System) WriteAll(text string) error {
	if !Available() {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// Memory is an in-process clipboard for tests and embedders.
type Memory struct {
	mu   sync.Mutex
	text string
}

func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// Text returns the last copied value.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
