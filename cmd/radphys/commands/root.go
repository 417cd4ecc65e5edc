package commands

import (
	"os"

	"github.com/spf13/cobra"

	"radphys/config"
)

var (
	configPath string
	port       string
)

func Execute() error {
	root := &cobra.Command{
		Use:   "radphys",
		Short: "Interactive radiation physics education pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.Context(), os.Stdin)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file (default: built-in defaults)")
	root.PersistentFlags().StringVar(&port, "port", "", "HTTP port (overrides config)")

	root.AddCommand(serveCmd(), listCmd(), menuCmd())
	return root.Execute()
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if port != "" {
		cfg.HTTPPort = port
	}
	return cfg, nil
}
