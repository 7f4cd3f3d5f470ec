// File: memento.go
// Role: Contraction Memento Store (per-representative LIFO paths).
package coarsening

import (
	"fmt"

	"github.com/katalvlaran/hypart/hypergraph"
)

// Memento is everything needed to undo one contraction: the primitive
// hypergraph record plus the hyperedges pruned right after it.
type Memento struct {
	Contraction            hypergraph.Memento
	RemovedSingleNodeEdges []hypergraph.EdgeID
	RemovedParallelEdges   []hypergraph.EdgePair
}

// ContractionPaths holds one LIFO stack of mementos per representative node.
// A path is non-empty iff its node currently represents merged partners.
type ContractionPaths struct {
	paths [][]Memento
	total int
}

// NewContractionPaths returns empty paths for n nodes.
func NewContractionPaths(n int) *ContractionPaths {
	return &ContractionPaths{paths: make([][]Memento, n)}
}

// Push appends m to the path of its representative m.Contraction.U.
func (p *ContractionPaths) Push(m Memento) {
	u := m.Contraction.U
	p.paths[u] = append(p.paths[u], m)
	p.total++
}

// Pop removes and returns the newest memento of u. An empty path yields
// ErrEmptyPath.
func (p *ContractionPaths) Pop(u hypergraph.NodeID) (Memento, error) {
	path := p.paths[u]
	if len(path) == 0 {
		return Memento{}, fmt.Errorf("%w: node %d", ErrEmptyPath, u)
	}
	m := path[len(path)-1]
	path[len(path)-1] = Memento{}
	p.paths[u] = path[:len(path)-1]
	p.total--
	return m, nil
}

// Peek returns the newest memento of u without removing it.
func (p *ContractionPaths) Peek(u hypergraph.NodeID) (Memento, error) {
	path := p.paths[u]
	if len(path) == 0 {
		return Memento{}, fmt.Errorf("%w: node %d", ErrEmptyPath, u)
	}
	return path[len(path)-1], nil
}

// Len returns the number of mementos on u's path.
func (p *ContractionPaths) Len(u hypergraph.NodeID) int { return len(p.paths[u]) }

// Empty reports whether u's path is empty.
func (p *ContractionPaths) Empty(u hypergraph.NodeID) bool { return len(p.paths[u]) == 0 }

// Total returns the number of mementos over all paths. After coarsening it
// equals InitialNumNodes − CurrentNumNodes.
func (p *ContractionPaths) Total() int { return p.total }
