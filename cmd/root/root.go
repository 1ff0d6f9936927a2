package root

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dinerozz/product-map-backend/cmd/build"
	"github.com/dinerozz/product-map-backend/config"
	"github.com/dinerozz/product-map-backend/server"
)

func GetRootCmd(config *config.Config, logger *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "product-map",
		Short: "Product map backend",
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			server.RunServer(config, logger)
		},
	})

	rootCmd.AddCommand(build.GetBuildCmd(config, logger))

	return rootCmd
}
