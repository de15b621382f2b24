package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newNearestCmd(opts *rootOptions) *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "nearest LAT LON",
		Short: "Find the stations closest to a coordinate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("latitude %q: %w", args[0], err)
			}
			lon, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("longitude %q: %w", args[1], err)
			}
			if k < 1 {
				return fmt.Errorf("-k must be at least 1, got %d", k)
			}

			idx, err := opts.loadIndex(cmd.Context())
			if err != nil {
				return err
			}
			for _, h := range idx.Nearest(lat, lon, k) {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %8.0f m\n", h.Name, h.Meters)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&k, "k", "k", 3, "number of stations")

	return cmd
}
