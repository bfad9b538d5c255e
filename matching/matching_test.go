package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flowmatch/graph"
	"github.com/katalvlaran/flowmatch/matching"
	"github.com/katalvlaran/flowmatch/netdef"
	"github.com/katalvlaran/flowmatch/search"
)

// MatchingSuite exercises the augmenting-path solver on bipartite inputs
// (the domain its maximum-cardinality guarantee covers).
type MatchingSuite struct {
	suite.Suite
}

// TestSingleEdge verifies the smallest non-trivial matching.
func (s *MatchingSuite) TestSingleEdge() {
	res, err := matching.Maximum(graph.New().AddBiEdge(0, 1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, res.Augmentations)
	require.Equal(s.T(), [][2]graph.Vertex{{0, 1}}, res.Pairs())
}

// TestCompleteBipartite verifies |M| = min(m, n) on K(m,n) under both
// strategies.
func (s *MatchingSuite) TestCompleteBipartite() {
	for _, strat := range []search.Strategy{search.DepthFirst, search.BreadthFirst} {
		res, err := matching.Maximum(netdef.CompleteBipartite(3, 4), matching.WithStrategy(strat))
		require.NoError(s.T(), err)
		require.Equal(s.T(), 3, res.Augmentations, strat.String())
		require.Len(s.T(), res.Pairs(), 3)
		assertValidMatching(s.T(), res.Matching)
	}
}

// TestEvenCycle verifies a perfect matching on an even cycle.
func (s *MatchingSuite) TestEvenCycle() {
	res, err := matching.Maximum(netdef.EvenCycle(6))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, res.Augmentations)
	assertValidMatching(s.T(), res.Matching)
	// perfect: no vertex left free
	require.Zero(s.T(), res.Matching.Terminals().Len())
}

// TestAugmentationRequired builds a path graph whose labeling makes the
// solver match the middle edge first (the depth-first walker prefers the
// larger neighbor of vertex 0), so the second augmentation can only
// succeed through a length-3 alternating path that toggles the middle
// edge back out.
func (s *MatchingSuite) TestAugmentationRequired() {
	// chain 1–0–2–3: the first match is the middle edge 0–2, then the
	// witness 1→0→2→3 rebuilds the matching as {0–1, 2–3}
	g := graph.New().AddBiEdge(1, 0).AddBiEdge(0, 2).AddBiEdge(2, 3)
	res, err := matching.Maximum(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, res.Augmentations)
	require.Equal(s.T(), [][2]graph.Vertex{{0, 1}, {2, 3}}, res.Pairs())
}

// TestDirectedInputSymmetrised verifies that a one-directional encoding of
// an undirected graph is accepted.
func (s *MatchingSuite) TestDirectedInputSymmetrised() {
	g := graph.New().AddEdge(0, 1).AddEdge(2, 3)
	res, err := matching.Maximum(g)
	require.NoError(s.T(), err)
	require.Len(s.T(), res.Pairs(), 2)
	assertValidMatching(s.T(), res.Matching)
}

// TestIsolatedVerticesStayFree verifies that vertices without edges never
// block termination.
func (s *MatchingSuite) TestIsolatedVerticesStayFree() {
	g := graph.New().AddBiEdge(0, 1).AddVertex(7)
	res, err := matching.Maximum(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, res.Augmentations)
	require.True(s.T(), res.Matching.Terminals().Has(7))
}

// TestEmptyGraph verifies the trivial result.
func (s *MatchingSuite) TestEmptyGraph() {
	res, err := matching.Maximum(graph.New())
	require.NoError(s.T(), err)
	require.Zero(s.T(), res.Augmentations)
	require.Empty(s.T(), res.Pairs())
}

// TestAugmentationLimit verifies the safety valve.
func (s *MatchingSuite) TestAugmentationLimit() {
	_, err := matching.Maximum(netdef.CompleteBipartite(2, 2), matching.WithMaxAugmentations(1))
	require.ErrorIs(s.T(), err, matching.ErrAugmentationLimit)
}

// TestNilGraph verifies the input check.
func (s *MatchingSuite) TestNilGraph() {
	_, err := matching.Maximum(nil)
	require.ErrorIs(s.T(), err, matching.ErrGraphNil)
}

// Entry point for running the suite.
func TestMatchingSuite(t *testing.T) {
	suite.Run(t, new(MatchingSuite))
}

//
// Helpers
// // // // // // // // // //

// assertValidMatching checks the matching invariant: symmetric edges and
// degree at most one everywhere.
func assertValidMatching(t *testing.T, m *graph.Graph) {
	t.Helper()

	for _, v := range m.Vertices() {
		succs := m.Successors(v)
		require.LessOrEqual(t, len(succs), 1, "vertex %d matched twice", v)
		for _, w := range succs {
			require.True(t, m.HasEdge(w, v), "asymmetric matched edge %d–%d", v, w)
		}
	}
}
