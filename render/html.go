package render

import (
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/AlviRownok/Chess-Knight-Paths/board"
	"github.com/AlviRownok/Chess-Knight-Paths/pathfinding"
)

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Knight's Shortest Paths</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table.board { border-collapse: collapse; margin: 1em 0; }
table.board td { width: 2.2em; height: 2.2em; text-align: center; font-size: 0.8em; }
td.light { background: #F0D9B5; }
td.dark { background: #B58863; }
td.step { outline: 3px solid #1E46C8; outline-offset: -3px; }
td.start { outline: 3px solid green; outline-offset: -3px; font-weight: bold; }
td.end { outline: 3px solid red; outline-offset: -3px; font-weight: bold; }
</style>
</head>
<body>
<h1>Knight's Shortest Paths</h1>
{{if .Paths}}<p class="summary">{{len .Paths}} shortest path(s) of {{.MinMoves}} move(s) from {{.Start}} to {{.End}}.</p>{{else}}<p class="summary">No paths.</p>{{end}}
{{range .Paths}}<section class="path">
<h2>Path {{.Number}}</h2>
<p class="route">{{.Route}}</p>
<table class="board">
{{range .Rows}}<tr>{{range .}}<td class="{{.Class}}">{{.Label}}</td>{{end}}</tr>
{{end}}</table>
</section>
{{end}}</body>
</html>
`

var reportTmpl = template.Must(template.New("report").Parse(reportTemplate))

type reportCell struct {
	Class string
	Label string
}

type reportPath struct {
	Number int
	Route  string
	Rows   [][]reportCell
}

type reportData struct {
	Start    string
	End      string
	MinMoves int
	Paths    []reportPath
}

// WriteHTMLReport emits a self-contained HTML page with one highlighted board
// per path. This is the static-report counterpart of the PNG overlay.
func WriteHTMLReport(w io.Writer, res *pathfinding.MultipleResult) error {
	start, end, err := endpoints(res)
	if err != nil {
		return err
	}
	data := reportData{Start: start, End: end, MinMoves: res.MinMoves()}

	for idx, r := range res.Results {
		squares, err := r.Path.Algebraic()
		if err != nil {
			return err
		}
		onPath := make(map[board.Cell]bool, len(r.Path))
		for _, c := range r.Path {
			onPath[c] = true
		}
		p := r.Path
		rp := reportPath{Number: idx + 1, Route: strings.Join(squares, " - ")}
		for row := board.Size - 1; row >= 0; row-- {
			cells := make([]reportCell, 0, board.Size)
			for col := 0; col < board.Size; col++ {
				c := board.Cell{Row: row, Col: col}
				class := "light"
				if (row+col)%2 == 1 {
					class = "dark"
				}
				switch {
				case c == p[0]:
					class += " start"
				case c == p[len(p)-1]:
					class += " end"
				case onPath[c]:
					class += " step"
				}
				alg, err := board.CoordToAlg(c)
				if err != nil {
					return err
				}
				cells = append(cells, reportCell{Class: class, Label: alg})
			}
			rp.Rows = append(rp.Rows, cells)
		}
		data.Paths = append(data.Paths, rp)
	}
	return reportTmpl.Execute(w, data)
}

// RenderHTML writes the report to <basename>.html and returns the filename.
func RenderHTML(res *pathfinding.MultipleResult, basename string) (string, error) {
	filename := outputPath(basename, ".html")
	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	if err := WriteHTMLReport(f, res); err != nil {
		f.Close()
		return "", err
	}
	return filename, f.Close()
}
