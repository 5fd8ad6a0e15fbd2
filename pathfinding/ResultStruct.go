package pathfinding

import (
	"fmt"
	"strings"

	"github.com/AlviRownok/Chess-Knight-Paths/board"
)

// Path is an ordered sequence of cells where consecutive cells differ by one
// knight move. The first cell is the start, the last the end.
type Path []board.Cell

// Moves is the number of knight moves along the path (cells - 1).
func (p Path) Moves() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Signature builds a unique string for a path so duplicates can be detected
// when results from several workers are merged. Knight paths are ordered, so
// the signature is simply the cells joined in order.
func (p Path) Signature() string {
	var sb strings.Builder
	for _, c := range p {
		fmt.Fprintf(&sb, "(%d,%d);", c.Row, c.Col)
	}
	return sb.String()
}

// Algebraic returns every cell of the path in algebraic notation.
func (p Path) Algebraic() ([]string, error) {
	out := make([]string, 0, len(p))
	for _, c := range p {
		alg, err := board.CoordToAlg(c)
		if err != nil {
			return nil, err
		}
		out = append(out, alg)
	}
	return out, nil
}

// Result is a single path plus the total number of queue states the search
// explored while producing the whole result set.
type Result struct {
	Path         Path `json:"path"`
	NodesVisited int  `json:"nodesVisited"`
}

// MultipleResult wraps every minimal path found for one start/end query.
type MultipleResult struct {
	Results []Result `json:"results"`
}

// MinMoves is the shared move count of the collected paths, or 0 when empty.
func (m *MultipleResult) MinMoves() int {
	if m == nil || len(m.Results) == 0 {
		return 0
	}
	return m.Results[0].Path.Moves()
}

// SignatureSet returns the set of path signatures, used for order-independent
// comparison between algorithms.
func (m *MultipleResult) SignatureSet() map[string]bool {
	set := make(map[string]bool)
	if m == nil {
		return set
	}
	for _, r := range m.Results {
		set[r.Path.Signature()] = true
	}
	return set
}
