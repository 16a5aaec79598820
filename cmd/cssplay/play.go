package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/cssplay/internal/tui"
	"github.com/yacobolo/cssplay/internal/web"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start the terminal playground",
		Long: `Browse the catalog, preview entries and apply your own declarations to a
preview box. Logs go to --log-file (default: cssplay.log in the temp
directory), never to the terminal.`,
		Args: cobra.NoArgs,
		RunE: runPlay,
	}
	cmd.Flags().Int("cell-width", 8, "Pixels per terminal column")
	cmd.Flags().Int("cell-height", 16, "Pixels per terminal row")
	return cmd
}

func runPlay(cmd *cobra.Command, _ []string) error {
	a, err := setupWith(buildPlayLogConfig())
	if err != nil {
		return err
	}
	defer a.close()

	return tui.Run(cmd.Context(), a.cat, tui.Options{
		Logger:  a.logger,
		Preview: buildPreviewOptions(),
	})
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the playground over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.close()

			addr := getString("serve.addr", "127.0.0.1:8080")
			return web.ListenAndServe(cmd.Context(), addr, web.NewServer(a.cat, a.logger), a.logger)
		},
	}
	cmd.Flags().String("addr", "127.0.0.1:8080", "Listen address")
	return cmd
}
