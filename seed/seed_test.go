package seed_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmetro/seed"
	"github.com/katalvlaran/lvmetro/subway"
)

func TestLoad_FormatsAgree(t *testing.T) {
	y, err := seed.Load("testdata/loop.yaml")
	require.NoError(t, err)
	tm, err := seed.Load("testdata/loop.toml")
	require.NoError(t, err)
	require.Equal(t, y, tm)
	require.Len(t, y.Stations, 5)
	assert.Equal(t, []seed.Link{{To: "Market", Cost: 2}, {To: "Airport", Cost: 2}}, y.Stations[4].Links)
}

func TestBuild_Graph(t *testing.T) {
	n, err := seed.Load("testdata/loop.yaml")
	require.NoError(t, err)
	g, err := n.Build()
	require.NoError(t, err)

	require.Equal(t, 5, g.Size())
	require.Equal(t, 3, g.TotalLines())

	central, ok := g.IndexOf("Central")
	require.True(t, ok)
	transfer, err := g.IsTransfer(central)
	require.NoError(t, err)
	assert.True(t, transfer)

	market, _ := g.IndexOf("Market")
	shuttle, _ := g.IndexOf("Shuttle")
	a, ok := g.ArcBetween(shuttle, market)
	require.True(t, ok)
	assert.Equal(t, int64(2), a.Cost)
	assert.Equal(t, []int{3}, a.Lines)

	v, err := g.VertexAt(central)
	require.NoError(t, err)
	assert.InDelta(t, 31.22, v.Latitude, 1e-9)
	assert.InDelta(t, 121.41, v.Longitude, 1e-9)
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"forward link", `
stations:
  - {name: A, lines: [1], links: [{to: B, cost: 1}]}
  - {name: B, lines: [1]}
`, seed.ErrUnknownLink},
		{"duplicate name", `
stations:
  - {name: A, lines: [1]}
  - {name: A, lines: [2]}
`, subway.ErrDuplicateName},
		{"bad cost", `
stations:
  - {name: A, lines: [1]}
  - {name: B, lines: [1], links: [{to: A, cost: 0}]}
`, subway.ErrBadCost},
		{"no lines", `
stations:
  - {name: A}
`, subway.ErrNoLines},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := seed.Decode(strings.NewReader(tc.doc), seed.YAML)
			require.NoError(t, err)
			_, err = n.Build()
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecode_Strict(t *testing.T) {
	_, err := seed.Decode(strings.NewReader("stations:\n  - {name: A, colour: red}\n"), seed.YAML)
	require.Error(t, err)

	_, err = seed.Decode(strings.NewReader("[[stations]]\nname = \"A\"\ncolour = \"red\"\n"), seed.TOML)
	require.ErrorIs(t, err, seed.ErrUnknownField)

	_, err = seed.Decode(strings.NewReader(""), seed.Format(7))
	require.ErrorIs(t, err, seed.ErrUnknownFormat)
}

func TestDecode_EmptyYAML(t *testing.T) {
	n, err := seed.Decode(strings.NewReader(""), seed.YAML)
	require.NoError(t, err)
	g, err := n.Build()
	require.NoError(t, err)
	assert.Zero(t, g.Size())
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]seed.Format{
		"net.yaml":   seed.YAML,
		"NET.YML":    seed.YAML,
		"a/b/c.toml": seed.TOML,
	} {
		got, err := seed.FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := seed.FormatFromPath("net.json")
	assert.ErrorIs(t, err, seed.ErrUnknownFormat)

	_, err = seed.Load("testdata/missing.yaml")
	assert.Error(t, err)
}
