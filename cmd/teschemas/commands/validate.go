package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ConservationInternational/trends.earth-schemas/internal/codec"
)

func validateCmd() *cobra.Command {
	var drought bool

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a report document against the data contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}

			if drought {
				s, err := codec.DecodeDrought(doc)
				if err != nil {
					return err
				}
				fmt.Printf("OK: %q (version %s)\n",
					s.Metadata.Title, s.Metadata.Version.Version)
				return nil
			}

			s, err := codec.DecodeLandCondition(doc)
			if err != nil {
				return err
			}
			fmt.Printf("OK: %q (version %s, %d periods)\n",
				s.Metadata.Title, s.Metadata.Version.Version, s.LandCondition.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&drought, "drought", false, "treat the input as a drought summary")
	return cmd
}
