// File: contraction.go
// Role: Contract / Uncontract primitives.
//
// Invariants maintained for every enabled node x:
//   - e appears in x's incidence list  ⇔  x is a pin of e.
//
// A disabled node keeps the incidence list it had when it was contracted;
// Uncontract relies on it. Disabled hyperedges are updated like enabled
// ones, so their pins always mirror the current contraction state.
package hypergraph

import "fmt"

// Contract merges v into u and returns the undo record.
//
// Implementation:
//   - Stage 1: Validate u != v, both enabled, both in the same block.
//   - Stage 2: Add w(v) to w(u).
//   - Stage 3: For every edge of v: drop v if u is already a pin (Shared),
//     otherwise replace v by u and append the edge to u's list (Relinked).
//   - Stage 4: Disable v.
//
// Single-pin and parallel hyperedges created by the merge are NOT removed
// here; pruning is the caller's responsibility (see DisableEdge and
// MergeParallelEdge).
//
// Complexity: O(Σ_{e∋v} |e|).
func (h *Hypergraph) Contract(u, v NodeID) (Memento, error) {
	if err := h.checkNode(u); err != nil {
		return Memento{}, err
	}
	if err := h.checkNode(v); err != nil {
		return Memento{}, err
	}
	if u == v {
		return Memento{}, fmt.Errorf("%w: %d", ErrSelfContraction, u)
	}
	if !h.nodes[u].enabled || !h.nodes[v].enabled {
		return Memento{}, fmt.Errorf("%w: contract(%d,%d)", ErrNodeDisabled, u, v)
	}
	if h.partIDs[u] != h.partIDs[v] {
		return Memento{}, fmt.Errorf("%w: contract(%d,%d) blocks %d/%d",
			ErrPartMismatch, u, v, h.partIDs[u], h.partIDs[v])
	}

	m := Memento{U: u, V: v}
	part := h.partIDs[v]
	h.nodes[u].weight += h.nodes[v].weight

	for _, e := range h.nodes[v].edges {
		he := &h.edges[e]
		if containsPin(he.pins, u) {
			he.pins = removePin(he.pins, v)
			if part != InvalidPartition {
				he.pinCountInPart[part]--
			}
			if he.enabled {
				h.numPins--
			}
			m.Shared = append(m.Shared, e)
			continue
		}
		replacePin(he.pins, v, u)
		h.nodes[u].edges = append(h.nodes[u].edges, e)
		m.Relinked = append(m.Relinked, e)
	}

	h.nodes[v].enabled = false
	h.numNodes--
	if part != InvalidPartition {
		h.partSizes[part]--
	}

	return m, nil
}

// Uncontract reverses the contraction recorded in m. u must be enabled and v
// disabled, and every contraction that absorbed u after m must be undone
// already; otherwise ErrStructure is returned.
//
// Contractions of unrelated nodes may still be pending, so two hyperedges
// that were folded together as parallel edges can end up with different
// pins. Such folded edges are unfolded on the spot (see splitDiverged),
// which keeps every enabled edge's weight equal to the weight of the edges
// it actually stands for.
//
// v is reactivated in u's current block. When changes is non-nil and the
// graph is a fully assigned bipartition, the gain delta of u and the gain of
// v are appended to changes.
//
// Complexity: O(Σ_{e∋v} |e| + deg(u)).
func (h *Hypergraph) Uncontract(m Memento, changes *GainChanges) error {
	u, v := m.U, m.V
	if err := h.checkNode(u); err != nil {
		return err
	}
	if err := h.checkNode(v); err != nil {
		return err
	}
	if !h.nodes[u].enabled || h.nodes[v].enabled {
		return fmt.Errorf("%w: uncontract(%d,%d) expects enabled representative and disabled partner",
			ErrStructure, u, v)
	}

	part := h.partIDs[u]
	trackGains := changes != nil && h.k == 2 && part != InvalidPartition
	var before int64
	if trackGains {
		before = h.Gain(u)
	}

	h.nodes[v].enabled = true
	h.numNodes++
	h.partIDs[v] = part
	if part != InvalidPartition {
		h.partSizes[part]++
	}
	h.nodes[u].weight -= h.nodes[v].weight

	for i := len(m.Relinked) - 1; i >= 0; i-- {
		e := m.Relinked[i]
		he := &h.edges[e]
		if !replacePin(he.pins, u, v) {
			return fmt.Errorf("%w: edge %d does not contain representative %d", ErrStructure, e, u)
		}
		edges, ok := removeTailEdge(h.nodes[u].edges, e)
		if !ok {
			return fmt.Errorf("%w: edge %d missing from incidence of %d", ErrStructure, e, u)
		}
		h.nodes[u].edges = edges
	}
	for i := len(m.Shared) - 1; i >= 0; i-- {
		e := m.Shared[i]
		he := &h.edges[e]
		he.pins = append(he.pins, v)
		if part != InvalidPartition {
			he.pinCountInPart[part]++
		}
		if he.enabled {
			h.numPins++
		}
	}

	h.splitDiverged(u)
	h.splitDiverged(v)

	if trackGains {
		changes.Representative = append(changes.Representative, GainDelta{Node: u, Delta: h.Gain(u) - before})
		changes.ContractionPartner = append(changes.ContractionPartner, GainDelta{Node: v, Delta: h.Gain(v)})
	}
	return nil
}

// removePin deletes u from pins by swapping it with the last pin.
func removePin(pins []NodeID, u NodeID) []NodeID {
	for i, p := range pins {
		if p == u {
			last := len(pins) - 1
			pins[i] = pins[last]
			return pins[:last]
		}
	}
	return pins
}

// replacePin overwrites the first occurrence of from with to.
func replacePin(pins []NodeID, from, to NodeID) bool {
	for i, p := range pins {
		if p == from {
			pins[i] = to
			return true
		}
	}
	return false
}

// removeTailEdge removes e searching from the tail, keeping the order of the
// remaining entries.
func removeTailEdge(edges []EdgeID, e EdgeID) ([]EdgeID, bool) {
	for i := len(edges) - 1; i >= 0; i-- {
		if edges[i] == e {
			return append(edges[:i], edges[i+1:]...), true
		}
	}
	return edges, false
}
