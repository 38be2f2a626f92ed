// Package terminal runs the password widget as an interactive single-line
// terminal UI.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/passgen/passgen-go/internal/widget"
)

const (
	keyCtrlC = 3
	keyCtrlD = 4

	clearLine = "\r\x1b[2K"
)

const help = "keys: +/- length  [/] length by 10  d numbers  s characters  r regenerate  c copy  q quit"

// KeyEvent maps a key press onto a widget event. ok is false for keys without an action.
func KeyEvent(key byte, current int) (ev widget.Event, ok bool) {
	switch key {
	case '+', '=', 'l':
		return widget.SetLength(current + 1), true
	case '-', '_', 'h':
		return widget.SetLength(current - 1), true
	case ']':
		return widget.SetLength(current + 10), true
	case '[':
		return widget.SetLength(current - 10), true
	case 'd', 'n':
		return widget.ToggleDigits(), true
	case 's':
		return widget.ToggleSymbols(), true
	case 'r', ' ':
		return widget.Regenerate(), true
	case 'c', 'y':
		return widget.Copy(), true
	default:
		return widget.Event{}, false
	}
}

func isQuit(key byte) bool {
	return key == 'q' || key == keyCtrlC || key == keyCtrlD
}

// Render formats the widget state as one status line.
func Render(state widget.State) string {
	return fmt.Sprintf("%s  [%s]  Length(%d)  Numbers[%s]  Characters[%s]",
		state.Password,
		state.CopyLabel,
		state.Config.Length,
		checkbox(state.Config.IncludeDigits),
		checkbox(state.Config.IncludeSymbols),
	)
}

func checkbox(on bool) string {
	if on {
		return "x"
	}
	return " "
}

// Run reads key presses from in and redraws the widget on out until the user quits,
// input ends or ctx is cancelled. When in is a terminal it is switched to raw mode
// for the duration of the call.
func Run(ctx context.Context, in io.Reader, out io.Writer, w *widget.Widget) error {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		oldState, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			return fmt.Errorf("entering raw mode: %w", err)
		}
		defer term.Restore(int(f.Fd()), oldState)
	}

	fmt.Fprint(out, help+"\r\n")
	draw(out, w.State(), nil)

	reader := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			fmt.Fprint(out, "\r\n")
			return err
		}

		key, err := reader.ReadByte()
		if errors.Is(err, io.EOF) || (err == nil && isQuit(key)) {
			fmt.Fprint(out, "\r\n")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}

		ev, ok := KeyEvent(key, w.Config().Length)
		if !ok {
			continue
		}
		applyErr := w.Apply(ev)
		draw(out, w.State(), applyErr)
	}
}

func draw(out io.Writer, state widget.State, applyErr error) {
	line := Render(state)
	if applyErr != nil {
		line += "  ! " + applyErr.Error()
	}
	fmt.Fprint(out, clearLine+line)
}
