package hypergraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hypart/hypergraph"
	"github.com/katalvlaran/hypart/metrics"
)

// newSample builds the 7-node, 4-edge hypergraph used across the suite:
//
//	e0 = {0, 2}
//	e1 = {0, 1, 3, 4}
//	e2 = {3, 4, 6}
//	e3 = {2, 5, 6}
func newSample(t *testing.T) *hypergraph.Hypergraph {
	t.Helper()
	hg, err := hypergraph.New(7, [][]hypergraph.NodeID{
		{0, 2},
		{0, 1, 3, 4},
		{3, 4, 6},
		{2, 5, 6},
	})
	require.NoError(t, err)
	return hg
}

type HypergraphSuite struct {
	suite.Suite
	hg *hypergraph.Hypergraph
}

func (s *HypergraphSuite) SetupTest() {
	s.hg = newSample(s.T())
}

func (s *HypergraphSuite) TestConstruction() {
	require := require.New(s.T())
	require.Equal(7, s.hg.CurrentNumNodes())
	require.Equal(4, s.hg.CurrentNumEdges())
	require.Equal(12, s.hg.CurrentNumPins())
	require.Equal(int64(7), s.hg.TotalWeight())
	require.ElementsMatch([]hypergraph.EdgeID{1, 2}, s.hg.IncidentEdges(3))
	require.Equal(2, s.hg.K())
}

func (s *HypergraphSuite) TestContractSharedAndRelinked() {
	require := require.New(s.T())

	m, err := s.hg.Contract(3, 4)
	require.NoError(err)
	require.Equal([]hypergraph.EdgeID{1, 2}, m.Shared)
	require.Empty(m.Relinked)
	require.False(s.hg.NodeIsEnabled(4))
	require.Equal(int64(2), s.hg.NodeWeight(3))
	require.Equal(3, s.hg.EdgeSize(1))

	m2, err := s.hg.Contract(0, 2)
	require.NoError(err)
	require.Equal([]hypergraph.EdgeID{0}, m2.Shared)
	require.Equal([]hypergraph.EdgeID{3}, m2.Relinked)
	require.ElementsMatch([]hypergraph.NodeID{0, 5, 6}, s.hg.Pins(3))
	require.Equal(5, s.hg.CurrentNumNodes())
}

func (s *HypergraphSuite) TestUncontractRestoresTopology() {
	require := require.New(s.T())
	before := s.hg.Snapshot()

	m1, err := s.hg.Contract(3, 4)
	require.NoError(err)
	m2, err := s.hg.Contract(0, 2)
	require.NoError(err)
	m3, err := s.hg.Contract(0, 3)
	require.NoError(err)

	require.NoError(s.hg.Uncontract(m3, nil))
	require.NoError(s.hg.Uncontract(m2, nil))
	require.NoError(s.hg.Uncontract(m1, nil))
	require.Equal(before, s.hg.Snapshot())
}

func (s *HypergraphSuite) TestUncontractOutOfOrder() {
	require := require.New(s.T())
	m1, err := s.hg.Contract(3, 4)
	require.NoError(err)
	require.NoError(s.hg.Uncontract(m1, nil))

	err = s.hg.Uncontract(m1, nil)
	require.ErrorIs(err, hypergraph.ErrStructure)
}

func (s *HypergraphSuite) TestContractErrors() {
	require := require.New(s.T())
	_, err := s.hg.Contract(1, 1)
	require.ErrorIs(err, hypergraph.ErrSelfContraction)

	_, err = s.hg.Contract(1, 99)
	require.ErrorIs(err, hypergraph.ErrNodeNotFound)

	_, err = s.hg.Contract(0, 1)
	require.NoError(err)
	_, err = s.hg.Contract(2, 1)
	require.ErrorIs(err, hypergraph.ErrNodeDisabled)

	require.NoError(s.hg.SetNodePart(2, 0))
	require.NoError(s.hg.SetNodePart(5, 1))
	_, err = s.hg.Contract(2, 5)
	require.ErrorIs(err, hypergraph.ErrPartMismatch)
}

func (s *HypergraphSuite) TestPruningRoundTrip() {
	require := require.New(s.T())
	before := s.hg.Snapshot()

	m, err := s.hg.Contract(0, 2)
	require.NoError(err)
	// e0 = {0} is now a single-pin edge.
	require.Equal(1, s.hg.EdgeSize(0))
	require.NoError(s.hg.DisableEdge(0))
	require.ErrorIs(s.hg.DisableEdge(0), hypergraph.ErrStructure)
	require.NotContains(s.hg.IncidentEdges(0), hypergraph.EdgeID(0))

	require.NoError(s.hg.RestoreEdge(0))
	require.NoError(s.hg.Uncontract(m, nil))
	require.Equal(before, s.hg.Snapshot())
}

func (s *HypergraphSuite) TestParallelEdges() {
	require := require.New(s.T())
	hg, err := hypergraph.New(4, [][]hypergraph.NodeID{
		{0, 1, 2},
		{2, 1, 0},
		{1, 3},
		{0, 1, 2},
	}, hypergraph.WithEdgeWeights([]int64{1, 2, 3, 4}))
	require.NoError(err)

	pairs := hg.ParallelEdges(hg.Edges())
	require.Equal([]hypergraph.EdgePair{
		{Representative: 0, Removed: 1},
		{Representative: 0, Removed: 3},
	}, pairs)

	before := hg.Snapshot()
	for _, p := range pairs {
		require.NoError(hg.MergeParallelEdge(p))
	}
	require.Equal(int64(7), hg.EdgeWeight(0))
	require.Equal(2, hg.CurrentNumEdges())

	for i := len(pairs) - 1; i >= 0; i-- {
		require.NoError(hg.RestoreParallelEdge(pairs[i]))
	}
	require.Equal(before, hg.Snapshot())
}

func (s *HypergraphSuite) TestDisabledEdgesFollowContractions() {
	require := require.New(s.T())
	// Disable e2 = {3,4,6}, contract 3 and 6 away, restore in reverse.
	require.NoError(s.hg.DisableEdge(2))
	m1, err := s.hg.Contract(4, 3)
	require.NoError(err)
	m2, err := s.hg.Contract(5, 6)
	require.NoError(err)
	require.ElementsMatch([]hypergraph.NodeID{4, 5}, s.hg.Pins(2))

	require.NoError(s.hg.Uncontract(m2, nil))
	require.NoError(s.hg.Uncontract(m1, nil))
	require.NoError(s.hg.RestoreEdge(2))
	require.ElementsMatch([]hypergraph.NodeID{3, 4, 6}, s.hg.Pins(2))
}

func (s *HypergraphSuite) TestParallelMergeChainRestoredOutOfOrder() {
	require := require.New(s.T())
	// e0={0,2,3} e1={0,2} e2={1,2}
	hg, err := hypergraph.New(4, [][]hypergraph.NodeID{
		{0, 2, 3},
		{0, 2},
		{1, 2},
	}, hypergraph.WithEdgeWeights([]int64{1, 2, 4}))
	require.NoError(err)
	before := hg.Snapshot()

	// A: e2 becomes {0,2} and folds into e1.
	a, err := hg.Contract(0, 1)
	require.NoError(err)
	pa := hg.ParallelEdges(hg.IncidentEdges(0))
	require.Equal([]hypergraph.EdgePair{{Representative: 1, Removed: 2}}, pa)
	require.NoError(hg.MergeParallelEdge(pa[0]))

	// B: e0 becomes {0,2} and absorbs e1 (which carries e2).
	b, err := hg.Contract(2, 3)
	require.NoError(err)
	pb := hg.ParallelEdges(hg.IncidentEdges(2))
	require.Equal([]hypergraph.EdgePair{{Representative: 0, Removed: 1}}, pb)
	require.NoError(hg.MergeParallelEdge(pb[0]))
	require.Equal(int64(7), hg.EdgeWeight(0))

	// Undo A before B.
	require.NoError(hg.RestoreParallelEdge(pa[0]))
	require.Equal(int64(3), hg.EdgeWeight(0))
	require.NoError(hg.Uncontract(a, nil))
	require.NoError(hg.RestoreParallelEdge(pb[0]))
	require.NoError(hg.Uncontract(b, nil))
	require.Equal(before, hg.Snapshot())

	require.ErrorIs(hg.RestoreParallelEdge(pb[0]), hypergraph.ErrStructure)
}

func (s *HypergraphSuite) TestDivergedParallelEdgeIsSplit() {
	require := require.New(s.T())
	// e0={0,2} w=2, e1={1,3} w=5
	hg, err := hypergraph.New(4, [][]hypergraph.NodeID{{0, 2}, {1, 3}},
		hypergraph.WithEdgeWeights([]int64{2, 5}))
	require.NoError(err)
	before := hg.Snapshot()

	a, err := hg.Contract(0, 1)
	require.NoError(err)
	b, err := hg.Contract(2, 3)
	require.NoError(err)
	pairs := hg.ParallelEdges(hg.IncidentEdges(2))
	require.Equal([]hypergraph.EdgePair{{Representative: 0, Removed: 1}}, pairs)
	require.NoError(hg.MergeParallelEdge(pairs[0]))
	require.Equal(int64(7), hg.EdgeWeight(0))

	require.NoError(hg.SetNodePart(0, 0))
	require.NoError(hg.SetNodePart(2, 1))
	require.Equal(int64(7), metrics.Cut(hg))

	// Undoing a while b is pending turns e1 into {1,2}, which no longer
	// matches e0: e1 must carry its own weight again.
	changes := &hypergraph.GainChanges{}
	require.NoError(hg.Uncontract(a, changes))
	require.ElementsMatch([]hypergraph.NodeID{1, 2}, hg.Pins(1))
	require.True(hg.EdgeIsEnabled(1))
	require.Equal(int64(2), hg.EdgeWeight(0))
	require.Equal(int64(5), hg.EdgeWeight(1))
	require.Equal(2, hg.CurrentNumEdges())
	require.Equal(int64(7), metrics.Cut(hg))
	require.Equal(int64(7), metrics.Km1(hg))
	require.Equal([]hypergraph.GainDelta{{Node: 0, Delta: -5}}, changes.Representative)
	require.Equal([]hypergraph.GainDelta{{Node: 1, Delta: 5}}, changes.ContractionPartner)
	require.Equal(int64(2), hg.Gain(0))
	require.Equal(int64(5), hg.Gain(1))

	// The recorded merge is now a no-op, once.
	require.NoError(hg.RestoreParallelEdge(pairs[0]))
	require.NoError(hg.Uncontract(b, nil))
	require.Equal(before, hg.Snapshot())
	require.Equal(int64(7), metrics.Cut(hg))
	require.ErrorIs(hg.RestoreParallelEdge(pairs[0]), hypergraph.ErrStructure)
}

func TestHypergraphSuite(t *testing.T) {
	suite.Run(t, new(HypergraphSuite))
}

// TestNew_Errors verifies constructor validation.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges [][]hypergraph.NodeID
		opts  []hypergraph.Option
		err   error
	}{
		{"PinOutOfRange", 2, [][]hypergraph.NodeID{{0, 2}}, nil, hypergraph.ErrNodeNotFound},
		{"EmptyEdge", 2, [][]hypergraph.NodeID{{}}, nil, hypergraph.ErrEmptyEdge},
		{"DuplicatePin", 2, [][]hypergraph.NodeID{{1, 1}}, nil, hypergraph.ErrDuplicatePin},
		{"NodeWeights", 2, nil, []hypergraph.Option{hypergraph.WithNodeWeights([]int64{1})}, hypergraph.ErrWeightsMismatch},
		{"EdgeWeights", 2, [][]hypergraph.NodeID{{0, 1}}, []hypergraph.Option{hypergraph.WithEdgeWeights([]int64{1, 2})}, hypergraph.ErrWeightsMismatch},
		{"BadK", 2, nil, []hypergraph.Option{hypergraph.WithK(1)}, hypergraph.ErrBadPartition},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hypergraph.New(tc.n, tc.edges, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("New() error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestPartitionBookkeeping checks block weights, pin counts and connectivity.
func TestPartitionBookkeeping(t *testing.T) {
	hg := newSample(t)
	parts := []hypergraph.PartitionID{0, 0, 0, 1, 1, 1, 1}
	for u, p := range parts {
		require.NoError(t, hg.SetNodePart(hypergraph.NodeID(u), p))
	}
	require.True(t, hg.IsPartitioned())
	require.Equal(t, int64(3), hg.PartWeight(0))
	require.Equal(t, 4, hg.PartSize(1))
	require.Equal(t, 2, hg.PinCountInPart(1, 0))
	require.Equal(t, 2, hg.Connectivity(1))
	require.Equal(t, 1, hg.Connectivity(2))
	require.True(t, hg.IsBorderNode(0))

	require.NoError(t, hg.ChangeNodePart(2, 0, 1))
	require.Equal(t, 3, hg.PinCountInPart(3, 1))
	require.ErrorIs(t, hg.ChangeNodePart(2, 0, 1), hypergraph.ErrBadPartition)

	hg.ResetPartitioning()
	require.False(t, hg.IsPartitioned())
	require.Equal(t, int64(0), hg.PartWeight(1))
}

// TestGainTracking verifies that Uncontract reports exact gain changes on a bipartition.
func TestGainTracking(t *testing.T) {
	hg := newSample(t)
	m1, err := hg.Contract(3, 4)
	require.NoError(t, err)
	m2, err := hg.Contract(0, 2)
	require.NoError(t, err)

	// Coarse nodes: 0,1,3,5,6.
	for u, p := range map[hypergraph.NodeID]hypergraph.PartitionID{0: 0, 1: 0, 3: 1, 5: 1, 6: 1} {
		require.NoError(t, hg.SetNodePart(u, p))
	}

	var changes hypergraph.GainChanges
	before0 := hg.Gain(0)
	require.NoError(t, hg.Uncontract(m2, &changes))
	require.Equal(t, 1, changes.Len())
	require.Equal(t, hypergraph.GainDelta{Node: 0, Delta: hg.Gain(0) - before0}, changes.Representative[0])
	require.Equal(t, hypergraph.GainDelta{Node: 2, Delta: hg.Gain(2)}, changes.ContractionPartner[0])
	require.Equal(t, hypergraph.PartitionID(0), hg.PartID(2))

	require.NoError(t, hg.Uncontract(m1, &changes))
	require.Equal(t, 2, changes.Len())
	require.Equal(t, hypergraph.PartitionID(1), hg.PartID(4))

	changes.Reset()
	require.Equal(t, 0, changes.Len())
}

// TestExtract checks cut-net splitting versus cut-net removal.
func TestExtract(t *testing.T) {
	hg := newSample(t)
	parts := []hypergraph.PartitionID{0, 0, 0, 0, 1, 1, 1}
	for u, p := range parts {
		require.NoError(t, hg.SetNodePart(hypergraph.NodeID(u), p))
	}

	sub, mapping, err := hg.Extract(0, true, 2)
	require.NoError(t, err)
	require.Equal(t, []hypergraph.NodeID{0, 1, 2, 3}, mapping)
	// e0={0,2} internal, e1 split to {0,1,3}; e2 and e3 keep < 2 pins in block 0.
	require.Equal(t, 2, sub.CurrentNumEdges())

	sub, _, err = hg.Extract(0, false, 2)
	require.NoError(t, err)
	require.Equal(t, 1, sub.CurrentNumEdges())

	_, _, err = hg.Extract(5, true, 2)
	require.ErrorIs(t, err, hypergraph.ErrBadPartition)
}
