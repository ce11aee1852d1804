package cli

import (
	"github.com/spf13/cobra"

	"github.com/piwi3910/LoadPack/internal/model"
	"github.com/piwi3910/LoadPack/internal/server"
)

func newServeCmd(root *rootOpts) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the packing API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			inv, err := root.loadInventory()
			if err != nil {
				return err
			}

			settings := model.DefaultPackSettings()
			cfg.ApplyToSettings(&settings)

			return server.New(inv, settings, logger).Run(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
