package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	atotto "github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passgen/passgen-go/internal/clipboard"
	"github.com/passgen/passgen-go/internal/config"
	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/service"
)

func testConfig() config.Config {
	return config.Config{
		Port:            "8080",
		SessionSecret:   "test-secret",
		SessionExpiry:   time.Hour,
		DefaultLength:   8,
		MaxLength:       4096,
		WidgetMinLength: 6,
		WidgetMaxLength: 101,
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(testConfig())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	out, err := execute(t, "", "generate", "-l", "20", "-n", "-s", "-c", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	alphabet := crypto.Alphabet(crypto.GenerationConfig{IncludeDigits: true, IncludeSymbols: true})
	for _, line := range lines {
		assert.Len(t, line, 20)
		for _, c := range line {
			assert.Contains(t, alphabet, string(c))
		}
	}
}

func TestGenerateCommandDefaults(t *testing.T) {
	out, err := execute(t, "", "generate")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 8)
}

func TestGenerateCommandSeedIsReproducible(t *testing.T) {
	first, err := execute(t, "", "generate", "--seed", "fixture", "-c", "2")
	require.NoError(t, err)
	second, err := execute(t, "", "generate", "--seed", "fixture", "-c", "2")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	lines := strings.Split(strings.TrimSpace(first), "\n")
	require.Len(t, lines, 2)
	assert.NotEqual(t, lines[0], lines[1])
}

func TestGenerateCommandInvalidLength(t *testing.T) {
	_, err := execute(t, "", "generate", "-l", "0")
	assert.ErrorIs(t, err, crypto.ErrInvalidConfig)

	_, err = execute(t, "", "generate", "-l", "4.5")
	assert.Error(t, err)
}

func TestGenerateCommandRejectsOversizedLength(t *testing.T) {
	out, err := execute(t, "", "generate", "-l", "4611686018427387904")
	assert.ErrorIs(t, err, service.ErrLengthTooLong)
	assert.Empty(t, out)

	_, err = execute(t, "", "generate", "-l", "4097")
	assert.ErrorIs(t, err, service.ErrLengthTooLong)
}

func TestGenerateUnsetMaxLengthStillCaps(t *testing.T) {
	var out bytes.Buffer
	err := runGenerate(&out, generateOptions{length: 1 << 62, count: 1}, &clipboard.Memory{})
	assert.ErrorIs(t, err, service.ErrLengthTooLong)
	assert.Empty(t, out.String())
}

func TestGenerateCopiesLastPassword(t *testing.T) {
	clip := &clipboard.Memory{}
	var out bytes.Buffer

	err := runGenerate(&out, generateOptions{length: 12, count: 2, copy: true}, clip)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, lines[1], clip.Text())
}

func TestGenerateCopyFailure(t *testing.T) {
	err := runGenerate(&bytes.Buffer{}, generateOptions{length: 12, count: 1, copy: true}, brokenClipboard{})
	assert.ErrorContains(t, err, "copying password")
}

func TestGenerateRejectsZeroCount(t *testing.T) {
	err := runGenerate(&bytes.Buffer{}, generateOptions{length: 12, count: 0}, &clipboard.Memory{})
	assert.Error(t, err)
}

func TestAlphabetCommand(t *testing.T) {
	out, err := execute(t, "", "alphabet", "-n")
	require.NoError(t, err)
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789 (62)\n", out)
}

func TestInteractiveCommand(t *testing.T) {
	out, err := execute(t, "+s", "interactive", "-l", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Length(11)")
	assert.Contains(t, out, "Characters[x]")
}

func TestInteractiveCopyWithoutSystemClipboard(t *testing.T) {
	unsupported := atotto.Unsupported
	atotto.Unsupported = true
	t.Cleanup(func() { atotto.Unsupported = unsupported })

	out, err := execute(t, "c", "interactive")
	require.NoError(t, err)
	assert.NotContains(t, out, "[Copied]")
	assert.Contains(t, out, clipboard.ErrUnavailable.Error())
}

func TestInteractiveCommandInvalidBounds(t *testing.T) {
	_, err := execute(t, "", "interactive", "--min", "20", "--max", "10")
	assert.Error(t, err)
}

type brokenClipboard struct{}

func (brokenClipboard) WriteAll(string) error { return errors.New("no display") }
