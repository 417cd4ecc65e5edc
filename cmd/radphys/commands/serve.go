package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"radphys/app"
	"radphys/config"
	"radphys/entity/concept"
)

// serve [concept]: serve all pages, or a single concept's page.
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve [concept]",
		Short: "Start the web server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				c, err := concept.UnmarshalText(args[0])
				if err != nil {
					return err
				}
				cfg.Concepts = []string{c.String()}
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving on http://localhost:%s/ (Ctrl+C to stop)\n", cfg.HTTPPort)
	return app.New(cfg).Run(ctx)
}
