package cli

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/passgen/passgen-go/internal/clipboard"
	"github.com/passgen/passgen-go/internal/config"
	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/service"
	"github.com/passgen/passgen-go/internal/widget"
)

type generateOptions struct {
	length    int
	maxLength int
	numbers   bool
	symbols   bool
	count     int
	seed      string
	copy      bool
}

func registerGenerate(cfg config.Config) *cobra.Command {
	opts := generateOptions{maxLength: cfg.MaxLength}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "print one or more passwords",
		Long:  "print passwords of exactly --length characters; lengths above MAX_LENGTH are rejected, never clamped",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), opts, clipboard.System{})
		},
	}

	cmd.Flags().IntVarP(&opts.length, "length", "l", cfg.DefaultLength, "password length")
	cmd.Flags().BoolVarP(&opts.numbers, "numbers", "n", false, "include digits (0-9)")
	cmd.Flags().BoolVarP(&opts.symbols, "symbols", "s", false, "include symbols")
	cmd.Flags().IntVarP(&opts.count, "count", "c", 1, "number of passwords")
	cmd.Flags().StringVar(&opts.seed, "seed", "", "deterministic seed for reproducible output (not for real passwords)")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the last password to the clipboard")

	return cmd
}

func runGenerate(out io.Writer, opts generateOptions, clip widget.Clipboard) error {
	if opts.count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", opts.count)
	}

	maxLength := opts.maxLength
	if maxLength < 1 {
		maxLength = crypto.DefaultMaxLength
	}
	if opts.length > maxLength {
		return fmt.Errorf("%w (%d)", service.ErrLengthTooLong, maxLength)
	}

	var src io.Reader = rand.Reader
	if opts.seed != "" {
		src = crypto.NewSeededSource(opts.seed)
	}

	cfg := crypto.GenerationConfig{
		Length:         opts.length,
		IncludeDigits:  opts.numbers,
		IncludeSymbols: opts.symbols,
	}

	var last string
	for i := 0; i < opts.count; i++ {
		password, err := crypto.GenerateWith(src, cfg)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, password)
		last = password
	}

	if opts.copy {
		if err := clip.WriteAll(last); err != nil {
			return fmt.Errorf("copying password: %w", err)
		}
	}
	return nil
}
