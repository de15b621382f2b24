// Package seed loads a subway network description and builds the graph.
//
// A network file lists stations in insertion order. Every link names a
// station listed earlier, which is exactly the order subway.Graph.Insert
// requires:
//
//	stations:
//	  - name: Harbor
//	    lines: [1]
//	    lat: 31.2
//	    lon: 121.4
//	  - name: Market
//	    lines: [1, 2]
//	    links:
//	      - {to: Harbor, cost: 3}
//
// YAML and TOML are accepted; Load picks the format from the file extension.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmetro/subway"
)

// Sentinel errors.
var (
	ErrUnknownFormat = errors.New("seed: unknown network format")
	ErrUnknownLink   = errors.New("seed: link to unknown or later station")
	ErrUnknownField  = errors.New("seed: unknown field")
)

// Format selects the decoder.
type Format int

const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath maps .yaml/.yml and .toml to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Network is a decoded network description.
type Network struct {
	Stations []Station `yaml:"stations" toml:"stations"`
}

// Station is one entry of the stations list.
type Station struct {
	Name  string  `yaml:"name" toml:"name"`
	Lines []int   `yaml:"lines" toml:"lines"`
	Lat   float64 `yaml:"lat" toml:"lat"`
	Lon   float64 `yaml:"lon" toml:"lon"`
	Links []Link  `yaml:"links" toml:"links"`
}

// Link connects a station to an earlier one.
type Link struct {
	To   string `yaml:"to" toml:"to"`
	Cost int64  `yaml:"cost" toml:"cost"`
}

// Decode reads a network in the given format. Unknown fields are rejected.
// An empty YAML document decodes to an empty network.
func Decode(r io.Reader, format Format) (*Network, error) {
	var n Network
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&n); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("seed: decode yaml: %w", err)
		}
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&n)
		if err != nil {
			return nil, fmt.Errorf("seed: decode toml: %w", err)
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, extra[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	return &n, nil
}

// Load opens path and decodes it according to its extension.
func Load(path string) (*Network, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return n, nil
}

// Build inserts every station in order into a fresh graph.
// Errors name the offending station and wrap the subway error.
func (n *Network) Build() (*subway.Graph, error) {
	g := subway.NewGraph()
	for _, st := range n.Stations {
		adjacent := make([]int, len(st.Links))
		costs := make([]int64, len(st.Links))
		for i, l := range st.Links {
			idx, ok := g.IndexOf(l.To)
			if !ok {
				return nil, fmt.Errorf("station %q: %w: %q", st.Name, ErrUnknownLink, l.To)
			}
			adjacent[i] = idx
			costs[i] = l.Cost
		}
		if _, err := g.Insert(st.Name, st.Lines, st.Lat, st.Lon, adjacent, costs); err != nil {
			return nil, fmt.Errorf("station %q: %w", st.Name, err)
		}
	}

	return g, nil
}
