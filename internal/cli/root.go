package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmetro/nearby"
	"github.com/katalvlaran/lvmetro/planner"
	"github.com/katalvlaran/lvmetro/seed"
	"github.com/katalvlaran/lvmetro/subway"
)

// NetworkEnv names the environment variable consulted when --network is unset.
const NetworkEnv = "LVMETRO_NETWORK"

// ErrNoNetwork is returned when neither --network nor NetworkEnv is set.
var ErrNoNetwork = errors.New("no network file: pass --network or set " + NetworkEnv)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) { version = v }

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	verbose bool
	network string
}

// Execute runs the lvmetro CLI.
//
// Logging:
//   - Default: info level on stderr
//   - With --verbose (-v): debug level
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "lvmetro",
		Short:        "lvmetro plans routes on a subway network",
		Long:         `lvmetro loads a subway network description and answers route, transfer and station queries against it.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.network, "network", "n", "", "network file (.yaml, .yml or .toml); defaults to $"+NetworkEnv)

	root.AddCommand(newRouteCmd(opts))
	root.AddCommand(newStationsCmd(opts))
	root.AddCommand(newLinesCmd(opts))
	root.AddCommand(newNearestCmd(opts))

	return root
}

// loadGraph reads the configured network file and builds its graph.
func (o *rootOptions) loadGraph(ctx context.Context) (*subway.Graph, error) {
	path := o.network
	if path == "" {
		path = os.Getenv(NetworkEnv)
	}
	if path == "" {
		return nil, ErrNoNetwork
	}

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	n, err := seed.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}
	g, err := n.Build()
	if err != nil {
		return nil, fmt.Errorf("build network %s: %w", path, err)
	}
	prog.done("network loaded", "path", path, "stations", g.Size(), "lines", g.TotalLines())

	return g, nil
}

func (o *rootOptions) loadPlanner(ctx context.Context) (*planner.Planner, error) {
	g, err := o.loadGraph(ctx)
	if err != nil {
		return nil, err
	}
	return planner.New(g, planner.WithLogger(loggerFromContext(ctx))), nil
}

func (o *rootOptions) loadIndex(ctx context.Context) (*nearby.Index, error) {
	g, err := o.loadGraph(ctx)
	if err != nil {
		return nil, err
	}
	return nearby.NewIndex(g), nil
}
