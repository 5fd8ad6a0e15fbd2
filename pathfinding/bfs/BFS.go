package bfs

import (
	"container/list"
	"sync"

	"github.com/AlviRownok/Chess-Knight-Paths/board"
	"github.com/AlviRownok/Chess-Knight-Paths/pathfinding"
)

// KnightPathFinder enumerates every minimum-length knight walk between two
// cells on an empty board. Callers must hand it in-range cells; the finder
// itself never validates and never fails.
type KnightPathFinder struct {
	Start board.Cell
	End   board.Cell
}

func New(start, end board.Cell) *KnightPathFinder {
	return &KnightPathFinder{Start: start, End: end}
}

// collectShortest runs the whole-path BFS from the given initial path and
// returns every minimal-length path to end, plus the number of queue states
// dequeued. The queue holds full paths, not cells, and a cell only becomes
// visited when it is DEQUEUED as a non-matching head. Marking it at enqueue
// time would drop alternate minimal paths that merge at a shared cell, which
// is the whole point of this search.
func collectShortest(initial pathfinding.Path, end board.Cell) ([]pathfinding.Path, int) {
	queue := list.New()
	queue.PushBack(initial)

	visited := make(map[board.Cell]bool)
	var collected []pathfinding.Path
	minLength := 0 // unknown until the first match
	nodesExplored := 0

	for queue.Len() > 0 {
		path := queue.Remove(queue.Front()).(pathfinding.Path)
		current := path[len(path)-1]
		nodesExplored++

		if current == end {
			if minLength == 0 {
				minLength = len(path)
			}
			// Matches longer than the first one are dropped; matches are
			// never expanded further.
			if len(path) == minLength {
				collected = append(collected, path)
			}
			continue
		}
		if visited[current] {
			continue
		}
		visited[current] = true

		for _, move := range board.KnightMoves {
			next := current.Add(move)
			if !next.InBounds() {
				continue
			}
			longer := make(pathfinding.Path, len(path), len(path)+1)
			copy(longer, path)
			queue.PushBack(append(longer, next))
		}
	}
	return collected, nodesExplored
}

// FindShortestPaths returns every shortest path from Start to End, in BFS
// discovery order. The knight graph on an 8x8 board is connected, so the
// result is never empty; Start == End yields one single-cell path. The method
// keeps no state between calls.
func (f *KnightPathFinder) FindShortestPaths() *pathfinding.MultipleResult {
	paths, nodesExplored := collectShortest(pathfinding.Path{f.Start}, f.End)

	results := make([]pathfinding.Result, 0, len(paths))
	for _, p := range paths {
		results = append(results, pathfinding.Result{Path: p, NodesVisited: nodesExplored})
	}
	return &pathfinding.MultipleResult{Results: results}
}

// FindShortestPathsParallel computes the same SET of paths, in the same
// order, as FindShortestPaths. The search is layer-synchronous: one worker
// per frontier cell expands the current layer concurrently, then a single
// merge walks the expansions in frontier order and move order. That walk
// assigns every newly reached cell the same discoverer the sequential FIFO
// queue would have given it, so the surviving path per final-move
// predecessor is identical to the sequential one.
func (f *KnightPathFinder) FindShortestPathsParallel() *pathfinding.MultipleResult {
	if f.Start == f.End {
		// Nothing to fan out on; same single-cell answer as sequential.
		return &pathfinding.MultipleResult{
			Results: []pathfinding.Result{{Path: pathfinding.Path{f.Start}, NodesVisited: 1}},
		}
	}

	parent := make(map[board.Cell]board.Cell)
	seen := map[board.Cell]bool{f.Start: true}
	frontier := []board.Cell{f.Start}
	nodesExplored := 1

	for len(frontier) > 0 {
		expansions := make([][]board.Cell, len(frontier))
		var wg sync.WaitGroup
		for i, cell := range frontier {
			wg.Add(1)
			go func(i int, cell board.Cell) {
				defer wg.Done()
				reachable := make([]board.Cell, 0, len(board.KnightMoves))
				for _, move := range board.KnightMoves {
					if next := cell.Add(move); next.InBounds() {
						reachable = append(reachable, next)
					}
				}
				expansions[i] = reachable
			}(i, cell)
		}
		wg.Wait()

		var collected []pathfinding.Path
		var next []board.Cell
		for i, cell := range frontier {
			for _, reached := range expansions[i] {
				if reached == f.End {
					// One minimal path per predecessor cell; the target is
					// never expanded, matching the sequential search.
					collected = append(collected, f.tracePath(parent, cell))
					continue
				}
				if seen[reached] {
					continue
				}
				seen[reached] = true
				parent[reached] = cell
				next = append(next, reached)
			}
		}
		nodesExplored += len(next)

		if len(collected) > 0 {
			results := make([]pathfinding.Result, 0, len(collected))
			for _, p := range collected {
				results = append(results, pathfinding.Result{Path: p, NodesVisited: nodesExplored})
			}
			return &pathfinding.MultipleResult{Results: results}
		}
		frontier = next
	}
	return &pathfinding.MultipleResult{}
}

// tracePath rebuilds the path to the given predecessor from the parent links
// and appends the final hop onto End.
func (f *KnightPathFinder) tracePath(parent map[board.Cell]board.Cell, last board.Cell) pathfinding.Path {
	reversed := pathfinding.Path{f.End}
	for cell := last; ; cell = parent[cell] {
		reversed = append(reversed, cell)
		if cell == f.Start {
			break
		}
	}
	path := make(pathfinding.Path, len(reversed))
	for i, cell := range reversed {
		path[len(path)-1-i] = cell
	}
	return path
}
