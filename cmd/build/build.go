package build

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dinerozz/product-map-backend/config"
	"github.com/dinerozz/product-map-backend/internal/service/product_map"
)

func GetBuildCmd(config *config.Config, logger *slog.Logger) *cobra.Command {
	var (
		metadataPath string
		funnelsPath  string
		outPath      string
		compact      bool
	)

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build the product map from files and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			source := product_map.NewFileSource(metadataPath, funnelsPath)

			raw, err := source.ReadMetadata(cmd.Context())
			if err != nil {
				return err
			}

			funnels, err := source.ReadFunnels(cmd.Context())
			if err != nil {
				return err
			}

			srv := product_map.NewProductMapService(source, nil, 0, logger)
			productMap, err := srv.Analyze(cmd.Context(), raw, funnels)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			return writeJSON(out, productMap, !compact)
		},
	}

	buildCmd.Flags().StringVarP(&metadataPath, "metadata", "m", config.Data.MetadataPath, "Path to the screenshot metadata log")
	buildCmd.Flags().StringVarP(&funnelsPath, "funnels", "f", config.Data.FunnelsPath, "Path to funnel definitions (.json, .yaml)")
	buildCmd.Flags().StringVarP(&outPath, "out", "o", "", "Write JSON to this file instead of stdout")
	buildCmd.Flags().BoolVar(&compact, "compact", false, "Do not indent JSON output")

	return buildCmd
}

func writeJSON(w io.Writer, v interface{}, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
