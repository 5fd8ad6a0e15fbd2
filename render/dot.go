package render

import (
	"fmt"
	"io"
	"os"

	"github.com/AlviRownok/Chess-Knight-Paths/pathfinding"
)

// WriteDOT emits the result as a Graphviz digraph: one cluster per path,
// edges in algebraic notation, start node green and end node red. The output
// is meant to be fed to an external `dot` binary.
func WriteDOT(w io.Writer, res *pathfinding.MultipleResult) error {
	if _, err := fmt.Fprintln(w, "digraph knightpaths {"); err != nil {
		return err
	}
	fmt.Fprintln(w, "\tlabel=\"Knight's Shortest Paths\";")

	for idx, r := range res.Results {
		squares, err := r.Path.Algebraic()
		if err != nil {
			return fmt.Errorf("path %d: %w", idx+1, err)
		}
		fmt.Fprintf(w, "\tsubgraph cluster_%d {\n", idx)
		fmt.Fprintf(w, "\t\tlabel=\"Path %d\";\n", idx+1)
		for i := 1; i < len(squares); i++ {
			fmt.Fprintf(w, "\t\t%q -> %q;\n", squares[i-1], squares[i])
		}
		fmt.Fprintf(w, "\t\t%q [color=green];\n", squares[0])
		fmt.Fprintf(w, "\t\t%q [color=red];\n", squares[len(squares)-1])
		fmt.Fprintln(w, "\t}")
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

// RenderDOT writes the DOT graph to <basename>.dot and returns the filename.
func RenderDOT(res *pathfinding.MultipleResult, basename string) (string, error) {
	filename := outputPath(basename, ".dot")
	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	if err := WriteDOT(f, res); err != nil {
		f.Close()
		return "", err
	}
	return filename, f.Close()
}
