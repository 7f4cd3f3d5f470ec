// File: pruning.go
// Role: Disabling and restoring single-pin and parallel hyperedges.
//
// A disabled hyperedge stays in the incidence lists of its pins so that
// later contractions keep its pin list consistent. It is ignored by
// IncidentEdges, Edges, metrics and gains.
package hypergraph

import (
	"encoding/binary"
	"fmt"
	"sort"
)

// EdgePair records that Removed was folded into Representative because both
// had identical pin sets.
type EdgePair struct {
	Representative EdgeID
	Removed        EdgeID
}

// DisableEdge prunes e. Disabling an already disabled edge is ErrStructure.
// Complexity: O(1).
func (h *Hypergraph) DisableEdge(e EdgeID) error {
	if err := h.checkEdge(e); err != nil {
		return err
	}
	if !h.edges[e].enabled {
		return fmt.Errorf("%w: edge %d already disabled", ErrStructure, e)
	}
	h.edges[e].enabled = false
	h.numEdges--
	h.numPins -= len(h.edges[e].pins)
	return nil
}

// RestoreEdge re-enables a pruned edge. Restoring an enabled edge is ErrStructure.
// Complexity: O(1).
func (h *Hypergraph) RestoreEdge(e EdgeID) error {
	if err := h.checkEdge(e); err != nil {
		return err
	}
	if h.edges[e].enabled {
		return fmt.Errorf("%w: edge %d already enabled", ErrStructure, e)
	}
	h.edges[e].enabled = true
	h.numEdges++
	h.numPins += len(h.edges[e].pins)
	return nil
}

// MergeParallelEdge disables p.Removed and adds its weight to p.Representative.
func (h *Hypergraph) MergeParallelEdge(p EdgePair) error {
	if err := h.checkEdge(p.Representative); err != nil {
		return err
	}
	if err := h.DisableEdge(p.Removed); err != nil {
		return err
	}
	h.edges[p.Removed].mergedInto = p.Representative
	h.edges[p.Representative].weight += h.edges[p.Removed].weight
	return nil
}

// RestoreParallelEdge reverses MergeParallelEdge. When Uncontract already
// unfolded p.Removed because its pins diverged, the call only clears that
// mark.
//
// The representative may itself have been folded into another edge since the
// merge. The weight of p.Removed is therefore taken back from every edge
// along the representative's merge chain.
func (h *Hypergraph) RestoreParallelEdge(p EdgePair) error {
	if err := h.checkEdge(p.Representative); err != nil {
		return err
	}
	if err := h.checkEdge(p.Removed); err != nil {
		return err
	}
	if he := &h.edges[p.Removed]; he.split {
		he.split = false
		return nil
	}
	if h.edges[p.Removed].mergedInto != p.Representative {
		return fmt.Errorf("%w: edge %d is not merged into %d", ErrStructure, p.Removed, p.Representative)
	}
	if err := h.RestoreEdge(p.Removed); err != nil {
		return err
	}
	h.unfold(p.Removed)
	return nil
}

// unfold detaches the enabled edge e from its merge chain and takes its
// weight back from every edge on that chain.
func (h *Hypergraph) unfold(e EdgeID) {
	w := h.edges[e].weight
	for r := h.edges[e].mergedInto; r != noEdge; r = h.edges[r].mergedInto {
		h.edges[r].weight -= w
	}
	h.edges[e].mergedInto = noEdge
}

// splitDiverged unfolds every folded edge of x whose pins no longer match
// the edge it was folded into. The unfolded edge is re-enabled with its own
// weight and marked, so the RestoreParallelEdge of its merge becomes a no-op.
//
// Both edges had the same pins when they were merged, and any pin set that
// changes under an uncontraction of (u, v) contains u or v afterwards, so
// scanning the incidence lists of u and v finds every diverged pair.
func (h *Hypergraph) splitDiverged(x NodeID) {
	for _, e := range h.nodes[x].edges {
		he := &h.edges[e]
		if he.mergedInto == noEdge || samePins(he.pins, h.edges[he.mergedInto].pins) {
			continue
		}
		he.enabled = true
		he.split = true
		h.numEdges++
		h.numPins += len(he.pins)
		h.unfold(e)
	}
}

// samePins reports whether a and b hold the same pins. Pins are distinct
// within an edge.
func samePins(a, b []NodeID) bool {
	if len(a) != len(b) {
		return false
	}
	for _, p := range a {
		if !containsPin(b, p) {
			return false
		}
	}
	return true
}

// ParallelEdges groups the enabled candidates by pin set and returns one
// EdgePair per duplicate. The representative of a group is its first member
// in candidate order; duplicates follow candidate order too.
//
// Complexity: O(Σ |e| log |e|) over the candidates.
func (h *Hypergraph) ParallelEdges(candidates []EdgeID) []EdgePair {
	var pairs []EdgePair
	firstByKey := make(map[string]EdgeID, len(candidates))
	buf := make([]NodeID, 0, 16)
	var key []byte
	for _, e := range candidates {
		if !h.EdgeIsEnabled(e) {
			continue
		}
		buf = append(buf[:0], h.edges[e].pins...)
		sort.Slice(buf, func(i, j int) bool { return buf[i] < buf[j] })
		key = key[:0]
		for _, p := range buf {
			key = binary.LittleEndian.AppendUint32(key, uint32(p))
		}
		if rep, ok := firstByKey[string(key)]; ok {
			if rep != e {
				pairs = append(pairs, EdgePair{Representative: rep, Removed: e})
			}
			continue
		}
		firstByKey[string(key)] = e
	}
	return pairs
}
