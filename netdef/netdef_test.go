package netdef_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flowmatch/edgemap"
	"github.com/katalvlaran/flowmatch/flow"
	"github.com/katalvlaran/flowmatch/graph"
	"github.com/katalvlaran/flowmatch/netdef"
)

// NetDefSuite exercises YAML decoding and the built-in instances.
type NetDefSuite struct {
	suite.Suite
}

// TestParseNetwork verifies decoding of a well-formed network definition.
func (s *NetDefSuite) TestParseNetwork() {
	data := []byte(`
source: 0
sink: 2
arcs:
  - {from: 0, to: 1, cap: 4}
  - {from: 1, to: 2, cap: 3}
`)
	net, err := netdef.ParseNetwork(data)
	require.NoError(s.T(), err)
	require.Equal(s.T(), graph.Vertex(0), net.Source())
	require.Equal(s.T(), graph.Vertex(2), net.Sink())
	require.Equal(s.T(), int64(4), net.Capacity(edgemap.Edge{From: 0, To: 1}))
	require.Equal(s.T(), int64(3), net.Capacity(edgemap.Edge{From: 1, To: 2}))
}

// TestParseNetworkRepeatedArcs verifies that repeated arcs aggregate their
// capacities.
func (s *NetDefSuite) TestParseNetworkRepeatedArcs() {
	data := []byte(`
source: 0
sink: 1
arcs:
  - {from: 0, to: 1, cap: 2}
  - {from: 0, to: 1, cap: 3}
`)
	net, err := netdef.ParseNetwork(data)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), net.Capacity(edgemap.Edge{From: 0, To: 1}))
}

// TestParseNetworkRejectsSymmetricPair verifies that validation failures
// surface the flow construction taxonomy.
func (s *NetDefSuite) TestParseNetworkRejectsSymmetricPair() {
	data := []byte(`
source: 0
sink: 1
arcs:
  - {from: 0, to: 1, cap: 2}
  - {from: 1, to: 0, cap: 2}
`)
	_, err := netdef.ParseNetwork(data)
	require.ErrorIs(s.T(), err, flow.ErrSymmetricPair)
}

// TestParseNetworkBadYAML verifies decode errors are wrapped with context.
func (s *NetDefSuite) TestParseNetworkBadYAML() {
	_, err := netdef.ParseNetwork([]byte("arcs: {not: a list"))
	require.Error(s.T(), err)
	require.Contains(s.T(), err.Error(), "netdef: decode network definition")
}

// TestLoadNetworkFile verifies the file path entry point.
func (s *NetDefSuite) TestLoadNetworkFile() {
	path := filepath.Join(s.T().TempDir(), "net.yaml")
	require.NoError(s.T(), os.WriteFile(path, []byte("source: 0\nsink: 1\narcs:\n  - {from: 0, to: 1, cap: 1}\n"), 0o600))

	net, err := netdef.LoadNetworkFile(path)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(1), net.Capacity(edgemap.Edge{From: 0, To: 1}))

	_, err = netdef.LoadNetworkFile(filepath.Join(s.T().TempDir(), "absent.yaml"))
	require.Error(s.T(), err)
}

// TestParseGraph verifies undirected graph decoding.
func (s *NetDefSuite) TestParseGraph() {
	g, err := netdef.ParseGraph([]byte("edges:\n  - {a: 0, b: 1}\n  - {a: 1, b: 2}\n"))
	require.NoError(s.T(), err)
	require.True(s.T(), g.HasEdge(0, 1))
	require.True(s.T(), g.HasEdge(1, 0))
	require.True(s.T(), g.HasEdge(2, 1))
}

// TestClassicNetwork verifies the shipped instance's shape.
func (s *NetDefSuite) TestClassicNetwork() {
	net := netdef.ClassicNetwork()
	require.Equal(s.T(), graph.Vertex(0), net.Source())
	require.Equal(s.T(), graph.Vertex(7), net.Sink())
	require.Equal(s.T(), 8, net.Graph().Order())
	require.Equal(s.T(), int64(10), net.Capacity(edgemap.Edge{From: 6, To: 7}))
}

// TestEvenCycle verifies the cycle builder's shape.
func (s *NetDefSuite) TestEvenCycle() {
	g := netdef.EvenCycle(4)
	require.Equal(s.T(), 4, g.Order())
	require.True(s.T(), g.HasEdge(3, 0))
	require.True(s.T(), g.HasEdge(0, 3))
	require.False(s.T(), g.HasEdge(0, 2))
}

// TestCompleteBipartite verifies K(m,n) shape.
func (s *NetDefSuite) TestCompleteBipartite() {
	g := netdef.CompleteBipartite(2, 3)
	require.Equal(s.T(), 5, g.Order())
	require.True(s.T(), g.HasEdge(0, 3))
	require.True(s.T(), g.HasEdge(3, 0))
	require.False(s.T(), g.HasEdge(0, 1))
}

// TestPathNetwork verifies the chain builder.
func (s *NetDefSuite) TestPathNetwork() {
	net := netdef.PathNetwork(3, 5)
	require.Equal(s.T(), graph.Vertex(0), net.Source())
	require.Equal(s.T(), graph.Vertex(3), net.Sink())
	require.Equal(s.T(), int64(5), net.Capacity(edgemap.Edge{From: 1, To: 2}))
}

// Entry point for running the suite.
func TestNetDefSuite(t *testing.T) {
	suite.Run(t, new(NetDefSuite))
}
