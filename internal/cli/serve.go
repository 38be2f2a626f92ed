package cli

import (
	"github.com/spf13/cobra"

	"github.com/passgen/passgen-go/internal/config"
	"github.com/passgen/passgen-go/internal/server"
)

func registerServe(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.Port, "port", "p", cfg.Port, "listen port")

	return cmd
}
