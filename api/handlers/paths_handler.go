package handlers

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AlviRownok/Chess-Knight-Paths/board"
	"github.com/AlviRownok/Chess-Knight-Paths/pathfinding"
	"github.com/AlviRownok/Chess-Knight-Paths/pathfinding/bfs"
	"github.com/AlviRownok/Chess-Knight-Paths/pathfinding/dfs"
	"github.com/AlviRownok/Chess-Knight-Paths/render"
	"github.com/AlviRownok/Chess-Knight-Paths/store"
)

// PathsHandler serves the knight path queries. History and Cache are
// optional; a nil field simply disables that feature.
type PathsHandler struct {
	History *store.History
	Cache   *store.Cache
}

// PathsResponse is the JSON shape of a successful search.
type PathsResponse struct {
	Start           string     `json:"start"`
	End             string     `json:"end"`
	Algorithm       string     `json:"algorithm"`
	MinMoves        int        `json:"minMoves"`
	Count           int        `json:"count"`
	Paths           [][]string `json:"paths"`
	NodesVisited    int        `json:"nodesVisited"`
	Cached          bool       `json:"cached"`
	ExecutionTimeMs float64    `json:"executionTimeMs"`
}

// cachedPayload is what gets stored in redis for a pair; the algorithm is
// left out on purpose since every algorithm returns the same set.
type cachedPayload struct {
	Paths        [][]string `json:"paths"`
	MinMoves     int        `json:"minMoves"`
	NodesVisited int        `json:"nodesVisited"`
}

func respondWithError(c *gin.Context, statusCode int, errorMsg string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"error": errorMsg})
}

// parseEndpoints reads and validates the start/end query params. On failure
// it writes the 400 response itself and reports ok=false.
func parseEndpoints(c *gin.Context) (start, end board.Cell, startAlg, endAlg string, ok bool) {
	startAlg = c.Query("start")
	endAlg = c.Query("end")
	if startAlg == "" || endAlg == "" {
		respondWithError(c, http.StatusBadRequest, "missing required parameters: start, end")
		return
	}
	var err error
	if start, err = board.AlgToCoord(startAlg); err != nil {
		log.Printf("[WARN] bad start position %q: %v", startAlg, err)
		respondWithError(c, http.StatusBadRequest, "invalid start position: "+startAlg)
		return
	}
	if end, err = board.AlgToCoord(endAlg); err != nil {
		log.Printf("[WARN] bad end position %q: %v", endAlg, err)
		respondWithError(c, http.StatusBadRequest, "invalid end position: "+endAlg)
		return
	}
	ok = true
	return
}

func runSearch(algorithm string, start, end board.Cell) *pathfinding.MultipleResult {
	switch algorithm {
	case "bfs-parallel":
		return bfs.New(start, end).FindShortestPathsParallel()
	case "dfs":
		return dfs.FindShortestPaths(start, end)
	default:
		return bfs.New(start, end).FindShortestPaths()
	}
}

// FindPaths handles GET /api/knightpaths?start=..&end=..[&algorithm=..].
func (h *PathsHandler) FindPaths(c *gin.Context) {
	algorithm := c.DefaultQuery("algorithm", "bfs")
	if algorithm != "bfs" && algorithm != "bfs-parallel" && algorithm != "dfs" {
		respondWithError(c, http.StatusBadRequest, "unknown algorithm: "+algorithm)
		return
	}
	start, end, startAlg, endAlg, ok := parseEndpoints(c)
	if !ok {
		return
	}
	// Notation is normalized so cache keys and history rows match regardless
	// of the input's case.
	startAlg, _ = board.CoordToAlg(start)
	endAlg, _ = board.CoordToAlg(end)

	began := time.Now()

	if h.Cache != nil {
		if payload, hit, err := h.Cache.Get(c.Request.Context(), startAlg, endAlg); err != nil {
			log.Printf("[WARN] cache lookup failed: %v", err)
		} else if hit {
			var cached cachedPayload
			if err := json.Unmarshal(payload, &cached); err == nil {
				c.JSON(http.StatusOK, PathsResponse{
					Start:           startAlg,
					End:             endAlg,
					Algorithm:       algorithm,
					MinMoves:        cached.MinMoves,
					Count:           len(cached.Paths),
					Paths:           cached.Paths,
					NodesVisited:    cached.NodesVisited,
					Cached:          true,
					ExecutionTimeMs: time.Since(began).Seconds() * 1000,
				})
				return
			}
			log.Printf("[WARN] dropping corrupt cache entry for %s:%s", startAlg, endAlg)
		}
	}

	result := runSearch(algorithm, start, end)
	executionTime := time.Since(began).Seconds() * 1000

	paths := make([][]string, 0, len(result.Results))
	nodesVisited := 0
	for _, r := range result.Results {
		squares, err := r.Path.Algebraic()
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, "failed to format path: "+err.Error())
			return
		}
		paths = append(paths, squares)
		nodesVisited = r.NodesVisited
	}

	if h.History != nil {
		if err := h.History.Record(startAlg, endAlg, len(paths), result.MinMoves(), executionTime); err != nil {
			log.Printf("[WARN] failed to record search: %v", err)
		}
	}
	if h.Cache != nil {
		payload, err := json.Marshal(cachedPayload{Paths: paths, MinMoves: result.MinMoves(), NodesVisited: nodesVisited})
		if err == nil {
			if err := h.Cache.Put(c.Request.Context(), startAlg, endAlg, payload); err != nil {
				log.Printf("[WARN] cache store failed: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, PathsResponse{
		Start:           startAlg,
		End:             endAlg,
		Algorithm:       algorithm,
		MinMoves:        result.MinMoves(),
		Count:           len(paths),
		Paths:           paths,
		NodesVisited:    nodesVisited,
		ExecutionTimeMs: executionTime,
	})
}

// FindPathsDOT handles GET /api/knightpaths/dot with the same query params,
// returning the Graphviz source instead of JSON.
func (h *PathsHandler) FindPathsDOT(c *gin.Context) {
	start, end, _, _, ok := parseEndpoints(c)
	if !ok {
		return
	}
	result := bfs.New(start, end).FindShortestPaths()

	var buf bytes.Buffer
	if err := render.WriteDOT(&buf, result); err != nil {
		respondWithError(c, http.StatusInternalServerError, "failed to render DOT: "+err.Error())
		return
	}
	c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", buf.Bytes())
}

// HistoryHandler handles GET /api/history?limit=N.
func (h *PathsHandler) HistoryHandler(c *gin.Context) {
	if h.History == nil {
		respondWithError(c, http.StatusNotFound, "history is not enabled")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		respondWithError(c, http.StatusBadRequest, "limit must be a positive integer")
		return
	}
	records, err := h.History.Recent(limit)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "failed to read history: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"searches": records, "count": len(records)})
}
