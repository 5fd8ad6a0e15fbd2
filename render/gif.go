package render

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"sync"

	"github.com/AlviRownok/Chess-Knight-Paths/pathfinding"
)

const (
	// Frames are independent, so they are rendered by a small worker pool
	// and assembled in order afterwards.
	maxConcurrentFrames = 8
	// Hundredths of a second per frame, i.e. 1 fps like the original tool.
	frameDelay = 100
)

var animPalette = []color.Color{
	lightSquare, darkSquare, startGreen, endRed, labelBlack,
	color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	pathColors[0], pathColors[1], pathColors[2], pathColors[3],
	pathColors[4], pathColors[5], pathColors[6], pathColors[7],
}

type frameJob struct {
	index int
	path  pathfinding.Path
	step  int
}

// renderFrame draws the board, the walk up to (and including) step, the
// endpoint markers and a knight marker on the current square.
func renderFrame(p pathfinding.Path, step int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, boardPx, boardPx), animPalette)
	drawBoard(img)

	soFar := p[:step+1]
	for i := 1; i < len(soFar); i++ {
		x0, y0 := cellCenter(soFar[i-1])
		x1, y1 := cellCenter(soFar[i])
		drawLine(img, x0, y0, x1, y1, pathColors[1])
	}

	sx, sy := cellCenter(p[0])
	fillCircle(img, sx, sy, 9, startGreen)
	ex, ey := cellCenter(p[len(p)-1])
	fillCircle(img, ex, ey, 9, endRed)

	kx, ky := cellCenter(p[step])
	fillCircle(img, kx, ky, 12, labelBlack)
	drawLabel(img, kx-3, ky+5, "N", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	return img
}

// RenderAnimation writes <basename>.gif showing the knight walking each path
// in turn, one frame per square visited.
func RenderAnimation(res *pathfinding.MultipleResult, basename string) (string, error) {
	var jobs []frameJob
	for _, r := range res.Results {
		for step := range r.Path {
			jobs = append(jobs, frameJob{index: len(jobs), path: r.Path, step: step})
		}
	}
	if len(jobs) == 0 {
		return "", fmt.Errorf("no paths to animate")
	}

	frames := make([]*image.Paletted, len(jobs))
	var wg sync.WaitGroup
	sem := make(chan struct{}, maxConcurrentFrames)
	for _, job := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(job frameJob) {
			defer wg.Done()
			frames[job.index] = renderFrame(job.path, job.step)
			<-sem
		}(job)
	}
	wg.Wait()

	delays := make([]int, len(frames))
	for i := range delays {
		delays[i] = frameDelay
	}

	filename := outputPath(basename, ".gif")
	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	if err := gif.EncodeAll(f, &gif.GIF{Image: frames, Delay: delays}); err != nil {
		f.Close()
		return "", err
	}
	return filename, f.Close()
}
