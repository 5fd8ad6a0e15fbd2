package dfs

import (
	"github.com/AlviRownok/Chess-Knight-Paths/board"
	"github.com/AlviRownok/Chess-Knight-Paths/pathfinding"
)

// maxSearchDepth caps iterative deepening. The knight graph's diameter on an
// 8x8 board is 6 moves, so this bound is purely defensive.
const maxSearchDepth = board.Size * board.Size

// FindShortestPaths returns the same path set as the BFS finder using
// iterative deepening: deepen one move at a time and collect every surviving
// walk of exactly the current depth that ends on the target. The first depth
// with any match is the minimum, so the search stops there. Exists as an
// independent cross-check of the BFS result set.
func FindShortestPaths(start, end board.Cell) *pathfinding.MultipleResult {
	nodesExplored := 0
	for limit := 1; limit <= maxSearchDepth; limit++ {
		s := &search{
			end:          end,
			limit:        limit,
			firstArrival: make(map[board.Cell]int),
		}
		path := make(pathfinding.Path, 1, limit)
		path[0] = start
		s.descend(path)
		nodesExplored += s.nodes

		if len(s.found) > 0 {
			results := make([]pathfinding.Result, 0, len(s.found))
			for _, p := range s.found {
				results = append(results, pathfinding.Result{Path: p, NodesVisited: nodesExplored})
			}
			return &pathfinding.MultipleResult{Results: results}
		}
	}
	return &pathfinding.MultipleResult{}
}

// search holds the state of one depth-limited pass.
type search struct {
	end          board.Cell
	limit        int
	firstArrival map[board.Cell]int
	found        []pathfinding.Path
	nodes        int
}

// descend extends path cell by cell up to the depth limit. Each cell belongs
// to the first walk that reaches it at its shallowest depth; later walks
// arriving at the same or a greater depth are cut. That is the depth-first
// rendering of the queue search's rule of marking a cell visited when its
// first path is taken off the queue, so every predecessor of the target
// contributes exactly the one walk the queue search keeps for it. Walks that
// reach the target are collected and never extended past it.
func (s *search) descend(path pathfinding.Path) {
	s.nodes++
	current := path[len(path)-1]

	if current == s.end {
		if len(path) == s.limit {
			collected := make(pathfinding.Path, s.limit)
			copy(collected, path)
			s.found = append(s.found, collected)
		}
		return
	}
	if len(path) == s.limit {
		return
	}
	if depth, seen := s.firstArrival[current]; seen && len(path) >= depth {
		return
	}
	s.firstArrival[current] = len(path)

	for _, move := range board.KnightMoves {
		next := current.Add(move)
		if !next.InBounds() {
			continue
		}
		s.descend(append(path, next))
	}
}
