package main

import (
	"bufio"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AlviRownok/Chess-Knight-Paths/board"
	"github.com/AlviRownok/Chess-Knight-Paths/pathfinding"
	"github.com/AlviRownok/Chess-Knight-Paths/pathfinding/bfs"
	"github.com/AlviRownok/Chess-Knight-Paths/pathfinding/dfs"
	"github.com/AlviRownok/Chess-Knight-Paths/render"
)

// allPositions lists every square, used for prompt suggestions.
var allPositions = func() []string {
	positions := make([]string, 0, board.Size*board.Size)
	for _, file := range "abcdefgh" {
		for _, rank := range "12345678" {
			positions = append(positions, fmt.Sprintf("%c%c", file, rank))
		}
	}
	return positions
}()

// promptForPosition keeps asking until the input is a valid square.
func promptForPosition(reader *bufio.Reader, message string) (string, error) {
	for {
		a := allPositions[rand.Intn(len(allPositions))]
		b := allPositions[rand.Intn(len(allPositions))]
		fmt.Printf("%s (e.g. %q or %q): ", message, a, b)

		line, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}
		input := strings.TrimSpace(line)
		if _, err := board.AlgToCoord(input); err == nil {
			return input, nil
		}
		fmt.Println("Invalid input. Please enter a valid chess position (a1 to h8).")
	}
}

func findCmd() *cobra.Command {
	var (
		startFlag  string
		endFlag    string
		outputFlag string
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find all shortest knight paths and write the visualizations",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			startInput := startFlag
			if startInput == "" {
				var err error
				if startInput, err = promptForPosition(reader, "Enter the starting position"); err != nil {
					return err
				}
			}
			endInput := endFlag
			if endInput == "" {
				var err error
				if endInput, err = promptForPosition(reader, "Enter the ending position"); err != nil {
					return err
				}
			}

			startCell, err := board.AlgToCoord(startInput)
			if err != nil {
				return fmt.Errorf("start position: %w", err)
			}
			endCell, err := board.AlgToCoord(endInput)
			if err != nil {
				return fmt.Errorf("end position: %w", err)
			}

			output := cfg.Output
			if outputFlag != "" {
				output = outputFlag
			}

			began := time.Now()
			result := bfs.New(startCell, endCell).FindShortestPaths()
			duration := time.Since(began)

			if len(result.Results) == 0 {
				// Unreachable on a connected 8x8 knight graph; kept as a guard.
				log.Printf("[WARN] no paths found from %s to %s", startInput, endInput)
				return nil
			}

			if err := printResult(result, duration); err != nil {
				return err
			}
			if cfg.Verbose {
				compareAlgorithms(startCell, endCell, len(result.Results), duration)
			}

			return writeVisualizations(result, output)
		},
	}

	cmd.Flags().StringVarP(&startFlag, "start", "s", "", "starting position (e.g. e4)")
	cmd.Flags().StringVarP(&endFlag, "end", "e", "", "ending position (e.g. h7)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output file name without extension")
	return cmd
}

func printResult(res *pathfinding.MultipleResult, duration time.Duration) error {
	header := color.New(color.FgGreen, color.Bold)
	header.Printf("Found %d shortest path(s) of %d move(s)\n", len(res.Results), res.MinMoves())
	fmt.Printf("Execution time: %s, nodes explored: %d\n", duration, res.Results[0].NodesVisited)

	pathLabel := color.New(color.FgCyan)
	for i, r := range res.Results {
		squares, err := r.Path.Algebraic()
		if err != nil {
			return fmt.Errorf("format path %d: %w", i+1, err)
		}
		pathLabel.Printf("  Path %d/%d: ", i+1, len(res.Results))
		fmt.Println(strings.Join(squares, " -> "))
	}
	return nil
}

// compareAlgorithms reruns the query with the parallel BFS and the DFS
// cross-check and prints the timings side by side.
func compareAlgorithms(startCell, endCell board.Cell, sequentialCount int, sequentialDuration time.Duration) {
	fmt.Println(strings.Repeat("-", 40))

	startParallel := time.Now()
	parallel := bfs.New(startCell, endCell).FindShortestPathsParallel()
	parallelDuration := time.Since(startParallel)

	startDFS := time.Now()
	deepened := dfs.FindShortestPaths(startCell, endCell)
	dfsDuration := time.Since(startDFS)

	fmt.Printf("  BFS sequential: %d path(s) in %s\n", sequentialCount, sequentialDuration)
	fmt.Printf("  BFS parallel:   %d path(s) in %s\n", len(parallel.Results), parallelDuration)
	fmt.Printf("  DFS deepening:  %d path(s) in %s\n", len(deepened.Results), dfsDuration)
	if parallelDuration > 0 && sequentialDuration > 0 {
		if parallelDuration < sequentialDuration {
			fmt.Printf("  Parallel was %.2fx faster.\n", float64(sequentialDuration)/float64(parallelDuration))
		} else {
			fmt.Printf("  Sequential was %.2fx faster.\n", float64(parallelDuration)/float64(sequentialDuration))
		}
	}
	fmt.Println(strings.Repeat("-", 40))
}

func writeVisualizations(res *pathfinding.MultipleResult, output string) error {
	writers := []func(*pathfinding.MultipleResult, string) (string, error){
		render.RenderDOT,
		render.RenderBoardPNG,
		render.RenderAnimation,
		render.RenderHTML,
	}
	for _, write := range writers {
		filename, err := write(res, output)
		if err != nil {
			return err
		}
		log.Printf("[INFO] wrote %s", filename)
	}
	return nil
}
