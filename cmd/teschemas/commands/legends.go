package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ConservationInternational/trends.earth-schemas/internal/classification"
)

func legendsCmd() *cobra.Command {
	var exportDir string

	cmd := &cobra.Command{
		Use:   "legends [dimension]",
		Short: "Print or export the built-in classification legends",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dims := classification.RegisteredDimensions()
			if len(args) == 1 {
				dims = []classification.Dimension{classification.Dimension(args[0])}
			}

			for _, dim := range dims {
				legend, err := classification.Scheme(dim)
				if err != nil {
					return err
				}

				if exportDir != "" {
					path := filepath.Join(exportDir, string(dim)+".yaml")
					if err := classification.SaveLegend(path, legend); err != nil {
						return err
					}
					fmt.Printf("wrote %s\n", path)
					continue
				}

				fmt.Printf("%s: %s (%d classes)\n", dim, legend.Name, len(legend.Key))
				for _, c := range legend.Key {
					fmt.Printf("  %6d  %s\n", c.Code, c.Name())
				}
				if legend.NoData != nil {
					fmt.Printf("  %6d  %s (no data)\n", legend.NoData.Code, legend.NoData.Name())
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&exportDir, "export", "", "write legends as YAML files into this directory")
	return cmd
}
