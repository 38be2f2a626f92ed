package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passgen/passgen-go/internal/crypto"
)

func registerAlphabet() *cobra.Command {
	var numbers, symbols bool

	cmd := &cobra.Command{
		Use:   "alphabet",
		Short: "print the character set passwords are drawn from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			alphabet := crypto.Alphabet(crypto.GenerationConfig{IncludeDigits: numbers, IncludeSymbols: symbols})
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", alphabet, len(alphabet))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&numbers, "numbers", "n", false, "include digits (0-9)")
	cmd.Flags().BoolVarP(&symbols, "symbols", "s", false, "include symbols")

	return cmd
}
