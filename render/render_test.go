package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlviRownok/Chess-Knight-Paths/board"
	"github.com/AlviRownok/Chess-Knight-Paths/pathfinding"
	"github.com/AlviRownok/Chess-Knight-Paths/pathfinding/bfs"
	"github.com/AlviRownok/Chess-Knight-Paths/render"
)

func singleMoveResult() *pathfinding.MultipleResult {
	// a1 -> b3, exactly one path of one move.
	return bfs.New(board.Cell{Row: 0, Col: 0}, board.Cell{Row: 2, Col: 1}).FindShortestPaths()
}

func cornerResult() *pathfinding.MultipleResult {
	// a1 -> a2, two paths of three moves.
	return bfs.New(board.Cell{Row: 0, Col: 0}, board.Cell{Row: 1, Col: 0}).FindShortestPaths()
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.WriteDOT(&buf, singleMoveResult()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "digraph"))
	assert.Contains(t, out, "subgraph cluster_0")
	assert.Contains(t, out, `label="Path 1"`)
	assert.Contains(t, out, `"a1" -> "b3";`)
	assert.Contains(t, out, `"a1" [color=green];`)
	assert.Contains(t, out, `"b3" [color=red];`)
	assert.NotContains(t, out, "cluster_1")
}

func TestWriteDOTMultiplePaths(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.WriteDOT(&buf, cornerResult()))
	out := buf.String()
	assert.Contains(t, out, "subgraph cluster_0")
	assert.Contains(t, out, "subgraph cluster_1")
	assert.Contains(t, out, `label="Path 2"`)
}

func TestRenderDOTWritesFile(t *testing.T) {
	basename := filepath.Join(t.TempDir(), "my paths")
	filename, err := render.RenderDOT(singleMoveResult(), basename)
	require.NoError(t, err)
	assert.Equal(t, "my_paths.dot", filepath.Base(filename), "spaces are sanitized")
	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(data), "digraph")
}

func assertPixel(t *testing.T, img image.Image, x, y int, want color.RGBA) {
	t.Helper()
	r, g, b, _ := img.At(x, y).RGBA()
	assert.Equal(t, []uint8{want.R, want.G, want.B},
		[]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)},
		"pixel at (%d,%d)", x, y)
}

func TestRenderBoardPNG(t *testing.T) {
	basename := filepath.Join(t.TempDir(), "paths")
	filename, err := render.RenderBoardPNG(singleMoveResult(), basename)
	require.NoError(t, err)

	f, err := os.Open(filename)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	require.Equal(t, image.Rect(0, 0, 480, 480), img.Bounds())
	// h8 square corner, far from the a1->b3 path: plain light square color.
	assertPixel(t, img, 422, 2, color.RGBA{R: 0xF0, G: 0xD9, B: 0xB5, A: 0xFF})
	// Center of a1 carries the green start marker.
	assertPixel(t, img, 30, 450, color.RGBA{G: 0x80, A: 0xFF})
	// Center of b3 carries the red end marker.
	assertPixel(t, img, 90, 330, color.RGBA{R: 0xFF, A: 0xFF})
}

func TestRenderAnimation(t *testing.T) {
	basename := filepath.Join(t.TempDir(), "paths")
	filename, err := render.RenderAnimation(singleMoveResult(), basename)
	require.NoError(t, err)

	f, err := os.Open(filename)
	require.NoError(t, err)
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	require.NoError(t, err)

	// One frame per cell visited: the single path has two cells.
	require.Len(t, anim.Image, 2)
	require.Len(t, anim.Delay, 2)
	assert.Equal(t, 100, anim.Delay[0])
	assert.Equal(t, image.Rect(0, 0, 480, 480), anim.Image[0].Bounds())
}

func TestRenderAnimationFrameCount(t *testing.T) {
	res := cornerResult() // two paths of four cells each
	basename := filepath.Join(t.TempDir(), "paths")
	filename, err := render.RenderAnimation(res, basename)
	require.NoError(t, err)

	f, err := os.Open(filename)
	require.NoError(t, err)
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	require.NoError(t, err)
	require.Len(t, anim.Image, 8)
}

func TestRenderAnimationEmptyResult(t *testing.T) {
	_, err := render.RenderAnimation(&pathfinding.MultipleResult{}, filepath.Join(t.TempDir(), "paths"))
	require.Error(t, err)
}

func TestWriteHTMLReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.WriteHTMLReport(&buf, cornerResult()))

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, 2, doc.Find("table.board").Length(), "one board per path")
	assert.Equal(t, 2, doc.Find("td.start").Length())
	assert.Equal(t, 2, doc.Find("td.end").Length())
	assert.Equal(t, 128, doc.Find("table.board td").Length(), "8x8 squares per board")

	summary := doc.Find("p.summary").Text()
	assert.Contains(t, summary, "2 shortest path(s)")
	assert.Contains(t, summary, "3 move(s)")
	assert.Contains(t, summary, "from a1 to a2")

	routes := doc.Find("p.route").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	require.Len(t, routes, 2)
	for _, route := range routes {
		assert.True(t, strings.HasPrefix(route, "a1 - "))
		assert.True(t, strings.HasSuffix(route, " - a2"))
	}
}
