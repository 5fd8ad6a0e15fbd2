// Package render turns a path search result into files a human can look at:
// a Graphviz DOT graph, a PNG board overlay, a GIF animation and an HTML
// report. Everything here consumes the finder's result read-only.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/AlviRownok/Chess-Knight-Paths/board"
	"github.com/AlviRownok/Chess-Knight-Paths/pathfinding"
)

const (
	cellPx  = 60
	boardPx = cellPx * board.Size
)

var (
	lightSquare = color.RGBA{R: 0xF0, G: 0xD9, B: 0xB5, A: 0xFF}
	darkSquare  = color.RGBA{R: 0xB5, G: 0x88, B: 0x63, A: 0xFF}
	startGreen  = color.RGBA{G: 0x80, A: 0xFF}
	endRed      = color.RGBA{R: 0xFF, A: 0xFF}
	labelBlack  = color.RGBA{A: 0xFF}

	// One line color per path, cycled in order:
	// red, blue, green, orange, purple, cyan, magenta, yellow.
	pathColors = []color.RGBA{
		{R: 0xFF, A: 0xFF},
		{B: 0xFF, A: 0xFF},
		{G: 0x80, A: 0xFF},
		{R: 0xFF, G: 0xA5, A: 0xFF},
		{R: 0x80, B: 0x80, A: 0xFF},
		{G: 0xFF, B: 0xFF, A: 0xFF},
		{R: 0xFF, B: 0xFF, A: 0xFF},
		{R: 0xFF, G: 0xFF, A: 0xFF},
	}
)

// sanitizeFilename strips characters that break file paths on common
// filesystems. Applied to the base name only, never to the directory.
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_", " ", "_",
	)
	return replacer.Replace(name)
}

// outputPath builds "<dir>/<sanitized base><ext>" from a caller basename.
func outputPath(basename, ext string) string {
	dir := filepath.Dir(basename)
	base := sanitizeFilename(filepath.Base(basename))
	return filepath.Join(dir, base+ext)
}

// cellCenter maps a cell to pixel coordinates, rank 1 at the bottom edge.
func cellCenter(c board.Cell) (int, int) {
	x := c.Col*cellPx + cellPx/2
	y := boardPx - (c.Row*cellPx + cellPx/2)
	return x, y
}

// drawBoard fills the 64 squares and writes the algebraic label into the
// lower-left corner of each one.
func drawBoard(img draw.Image) {
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			sq := lightSquare
			if (row+col)%2 == 1 {
				sq = darkSquare
			}
			x0 := col * cellPx
			y0 := boardPx - (row+1)*cellPx
			draw.Draw(img, image.Rect(x0, y0, x0+cellPx, y0+cellPx), image.NewUniform(sq), image.Point{}, draw.Src)

			alg, err := board.CoordToAlg(board.Cell{Row: row, Col: col})
			if err != nil {
				continue // unreachable for loop-generated cells
			}
			drawLabel(img, x0+4, y0+cellPx-6, alg, labelBlack)
		}
	}
}

func drawLabel(img draw.Image, x, y int, text string, col color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// drawLine draws a thick segment with plain Bresenham stepping.
func drawLine(img draw.Image, x0, y0, x1, y1 int, col color.Color) {
	dx, dy := x1-x0, y1-y0
	steps := dx
	if steps < 0 {
		steps = -steps
	}
	if dy > steps {
		steps = dy
	}
	if -dy > steps {
		steps = -dy
	}
	if steps == 0 {
		fillCircle(img, x0, y0, 2, col)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		fillCircle(img, x, y, 2, col)
	}
}

func fillCircle(img draw.Image, cx, cy, r int, col color.Color) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, col)
			}
		}
	}
}

// drawPath draws one path's polyline plus the green/red endpoint markers.
func drawPath(img draw.Image, p pathfinding.Path, col color.Color) {
	for i := 1; i < len(p); i++ {
		x0, y0 := cellCenter(p[i-1])
		x1, y1 := cellCenter(p[i])
		drawLine(img, x0, y0, x1, y1, col)
	}
	for _, c := range p {
		x, y := cellCenter(c)
		fillCircle(img, x, y, 4, col)
	}
	sx, sy := cellCenter(p[0])
	fillCircle(img, sx, sy, 9, startGreen)
	ex, ey := cellCenter(p[len(p)-1])
	fillCircle(img, ex, ey, 9, endRed)
}

// endpoints returns the shared start/end of the result in algebraic form.
func endpoints(res *pathfinding.MultipleResult) (string, string, error) {
	if res == nil || len(res.Results) == 0 {
		return "", "", nil
	}
	p := res.Results[0].Path
	start, err := board.CoordToAlg(p[0])
	if err != nil {
		return "", "", err
	}
	end, err := board.CoordToAlg(p[len(p)-1])
	if err != nil {
		return "", "", err
	}
	return start, end, nil
}
