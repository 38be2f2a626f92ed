package cli

import (
	"github.com/spf13/cobra"

	"github.com/passgen/passgen-go/internal/clipboard"
	"github.com/passgen/passgen-go/internal/config"
	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/terminal"
	"github.com/passgen/passgen-go/internal/widget"
)

func registerInteractive(cfg config.Config) *cobra.Command {
	var (
		length    int
		numbers   bool
		symbols   bool
		minLength int
		maxLength int
	)

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "run the password widget in the terminal",
		Long:  "run the password widget in the terminal; every change regenerates the password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := widget.New(
				crypto.GenerationConfig{Length: length, IncludeDigits: numbers, IncludeSymbols: symbols},
				widget.WithBounds(minLength, maxLength),
				widget.WithClipboard(clipboard.System{}),
			)
			if err != nil {
				return err
			}
			return terminal.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), w)
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", cfg.DefaultLength, "initial password length")
	cmd.Flags().BoolVarP(&numbers, "numbers", "n", false, "start with digits enabled")
	cmd.Flags().BoolVarP(&symbols, "symbols", "s", false, "start with symbols enabled")
	cmd.Flags().IntVar(&minLength, "min", cfg.WidgetMinLength, "minimum length")
	cmd.Flags().IntVar(&maxLength, "max", cfg.WidgetMaxLength, "maximum length")

	return cmd
}
