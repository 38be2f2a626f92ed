package cli

import (
	"github.com/spf13/cobra"

	"github.com/passgen/passgen-go/internal/config"
)

const description = "Generate random passwords from letters, digits and symbols"

// NewRootCommand builds the passgen command tree.
func NewRootCommand(cfg config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "passgen",
		Short:         description,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(registerGenerate(cfg))
	rootCmd.AddCommand(registerInteractive(cfg))
	rootCmd.AddCommand(registerAlphabet())
	rootCmd.AddCommand(registerServe(cfg))

	return rootCmd
}
