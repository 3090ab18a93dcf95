package commands

import (
	"github.com/spf13/cobra"

	"github.com/ConservationInternational/trends.earth-schemas/internal/codec"
	"github.com/ConservationInternational/trends.earth-schemas/internal/reporting"
)

func convertCmd() *cobra.Command {
	var (
		target string
		output string
	)

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Re-encode a report document in the current or legacy format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tgt, err := codec.ParseTarget(target)
			if err != nil {
				return err
			}

			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}

			summary, err := codec.DecodeLandCondition(doc)
			if err != nil {
				return err
			}

			if tgt == codec.TargetLegacy {
				view, err := reporting.LegacyView(summary)
				if err != nil {
					return err
				}
				return writeJSON(output, view)
			}

			out, err := codec.EncodeLandCondition(summary)
			if err != nil {
				return err
			}
			return writeJSON(output, out)
		},
	}

	cmd.Flags().StringVar(&target, "target", "current", "output format: current or legacy")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
