package cli

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/blockmail/core/config"
	"github.com/dmitrymomot/blockmail/core/logger"
	"github.com/dmitrymomot/blockmail/core/server"
	"github.com/dmitrymomot/blockmail/internal/httpapi"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render, preview and send HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var srvCfg server.Config
			if err := config.Load(&srvCfg); err != nil {
				return err
			}
			if addr != "" {
				srvCfg.Addr = addr
			}

			m, err := c.newMailer(ctx)
			if err != nil {
				return err
			}
			previews, err := c.newPreviewStore(ctx)
			if err != nil {
				return err
			}
			defer previews.Close()

			log := c.Logger.With(logger.Component("http"))
			api := httpapi.New(m, previews,
				httpapi.WithLogger(log),
				httpapi.WithBaseURL(c.cfg.PublicBaseURL),
				httpapi.WithReadinessChecks(previews.checks...),
			)

			srv, err := server.NewFromConfig(srvCfg, server.WithLogger(log))
			if err != nil {
				return err
			}

			g, ctx := errgroup.WithContext(ctx)
			g.Go(srv.Run(ctx, api.Router()))
			if previews.run != nil {
				g.Go(func() error {
					err := previews.run(ctx)
					if ctx.Err() != nil {
						return nil
					}
					return err
				})
			}
			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides SERVER_ADDR")

	return cmd
}
