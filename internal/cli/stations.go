package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newStationsCmd(opts *rootOptions) *cobra.Command {
	var line int

	cmd := &cobra.Command{
		Use:   "stations",
		Short: "List stations of the network",
		Long:  `List stations in insertion order with the lines serving them. Transfer stations are marked with *.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, v := range g.Vertices() {
				if v.Removed || (line > 0 && !v.OnLine(line)) {
					continue
				}
				mark := " "
				if v.IsTransfer() {
					mark = "*"
				}
				fmt.Fprintf(w, "%3d %s %-20s lines %s\n", i, mark, v.Name, joinInts(v.Lines))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&line, "line", 0, "only stations served by this line")

	return cmd
}

func newLinesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lines",
		Short: "List the lines of the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d lines: %s\n", g.TotalLines(), joinInts(g.Lines()))
			return nil
		},
	}
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}
