// Package netdef loads flow networks and matching graphs from their YAML
// descriptions and ships the hard-coded example instances used by the CLI,
// the examples, and the test suites.
//
// Network schema:
//
//	source: 0
//	sink: 7
//	arcs:
//	  - {from: 0, to: 1, cap: 7}
//	  - {from: 0, to: 2, cap: 8}
//
// Graph schema (undirected, for matching):
//
//	edges:
//	  - {a: 0, b: 4}
//	  - {a: 1, b: 5}
package netdef

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/flowmatch/edgemap"
	"github.com/katalvlaran/flowmatch/flow"
	"github.com/katalvlaran/flowmatch/graph"
)

// ArcDef is one capacitated arc of a network definition.
type ArcDef struct {
	From int64 `yaml:"from"`
	To   int64 `yaml:"to"`
	Cap  int64 `yaml:"cap"`
}

// NetworkDef mirrors the YAML network schema.
type NetworkDef struct {
	Source int64    `yaml:"source"`
	Sink   int64    `yaml:"sink"`
	Arcs   []ArcDef `yaml:"arcs"`
}

// EdgeDef is one undirected edge of a graph definition.
type EdgeDef struct {
	A int64 `yaml:"a"`
	B int64 `yaml:"b"`
}

// GraphDef mirrors the YAML graph schema.
type GraphDef struct {
	Edges []EdgeDef `yaml:"edges"`
}

// ParseNetwork decodes a YAML network definition and validates it through
// flow.NewNetwork; invalid definitions (symmetric pairs, negative
// capacities, missing endpoints) fail here, never later in the solver.
func ParseNetwork(data []byte) (*flow.Network, error) {
	var def NetworkDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.Wrap(err, "netdef: decode network definition")
	}

	return def.Build()
}

// LoadNetworkFile reads and parses a YAML network definition from path.
func LoadNetworkFile(path string) (*flow.Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "netdef: read network definition %s", path)
	}

	return ParseNetwork(data)
}

// Build assembles the definition into a validated flow.Network.
func (d NetworkDef) Build() (*flow.Network, error) {
	g := graph.New()
	caps := edgemap.New()
	for _, a := range d.Arcs {
		from, to := graph.Vertex(a.From), graph.Vertex(a.To)
		g = g.AddEdge(from, to)
		caps[edgemap.Edge{From: from, To: to}] += a.Cap
	}
	// endpoints may be isolated in a degenerate definition
	g = g.AddVertex(graph.Vertex(d.Source)).AddVertex(graph.Vertex(d.Sink))

	net, err := flow.NewNetwork(g, graph.Vertex(d.Source), graph.Vertex(d.Sink), caps)
	if err != nil {
		return nil, errors.Wrap(err, "netdef: build network")
	}

	return net, nil
}

// ParseGraph decodes a YAML graph definition into a symmetric graph.
func ParseGraph(data []byte) (*graph.Graph, error) {
	var def GraphDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.Wrap(err, "netdef: decode graph definition")
	}

	g := graph.New()
	for _, e := range def.Edges {
		g = g.AddBiEdge(graph.Vertex(e.A), graph.Vertex(e.B))
	}

	return g, nil
}

// LoadGraphFile reads and parses a YAML graph definition from path.
func LoadGraphFile(path string) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "netdef: read graph definition %s", path)
	}

	return ParseGraph(data)
}
