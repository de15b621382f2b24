package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmetro/planner"
)

func newRouteCmd(opts *rootOptions) *cobra.Command {
	var minStations bool

	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Find the best route and its transfers between two stations",
		Long: `Find the cheapest route between two stations and the line plan with the fewest transfers along it.

With --min-stations the route minimizes the number of stations passed instead of the travel cost.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.loadPlanner(cmd.Context())
			if err != nil {
				return err
			}
			it, err := p.Query(args[0], args[1], !minStations)
			if err != nil {
				return err
			}
			printItinerary(cmd.OutOrStdout(), p, it)
			return nil
		},
	}

	cmd.Flags().BoolVar(&minStations, "min-stations", false, "minimize stations passed instead of travel cost")

	return cmd
}

func printItinerary(w io.Writer, p *planner.Planner, it *planner.Itinerary) {
	fmt.Fprintln(w, strings.Join(it.Stations, " → "))
	fmt.Fprintf(w, "stations: %d  cost: %d\n", it.Route.Len(), it.Route.Cost)

	if it.Route.Len() < 2 {
		fmt.Fprintln(w, "already there")
		return
	}
	fmt.Fprintf(w, "board line %d at %s\n", it.Plan.Boarding.Line, stationName(p, it.Plan.Boarding.Vertex))
	for _, t := range it.Plan.Transfers {
		fmt.Fprintf(w, "change to line %d at %s\n", t.Line, stationName(p, t.Vertex))
	}
	fmt.Fprintf(w, "transfers: %d\n", it.Plan.Count)
}

func stationName(p *planner.Planner, i int) string {
	v, err := p.Graph().VertexAt(i)
	if err != nil {
		return fmt.Sprintf("#%d", i)
	}
	return v.Name
}
