package render

import (
	"image"
	"image/png"
	"os"

	"github.com/AlviRownok/Chess-Knight-Paths/pathfinding"
)

// RenderBoardPNG draws every path onto one board image and writes it to
// <basename>.png. Paths are colored in a fixed cycle; the shared start and
// end squares get green and red markers on top.
func RenderBoardPNG(res *pathfinding.MultipleResult, basename string) (string, error) {
	img := image.NewRGBA(image.Rect(0, 0, boardPx, boardPx))
	drawBoard(img)

	for idx, r := range res.Results {
		drawPath(img, r.Path, pathColors[idx%len(pathColors)])
	}

	filename := outputPath(basename, ".png")
	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", err
	}
	return filename, f.Close()
}
