package board

import (
	"errors"
	"fmt"
)

// Size is the side length of a standard chessboard.
const Size = 8

var (
	// ErrInvalidNotation is returned when a string is not a valid
	// two-character algebraic square like "e4".
	ErrInvalidNotation = errors.New("invalid algebraic notation")
	// ErrInvalidCell is returned when a Cell's coordinates fall outside the board.
	ErrInvalidCell = errors.New("invalid cell coordinate")
)

// Cell is one square of the board. Row 0 is rank 1, Col 0 is file a.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// KnightMoves contains the 8 legal knight displacements. The expansion order
// of the searches follows this order, so keep it stable.
var KnightMoves = [8]Cell{
	{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
}

const fileNames = "abcdefgh"

// InBounds reports whether the cell lies on the board.
func (c Cell) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Add returns the cell displaced by d. The result may be off the board;
// callers are expected to check InBounds themselves.
func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// AlgToCoord converts algebraic notation ("e4", case-insensitive) to a Cell.
// Anything that is not exactly one file letter followed by one rank digit is
// rejected; no trimming or partial matching here.
func AlgToCoord(s string) (Cell, error) {
	if len(s) != 2 {
		return Cell{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	file := s[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Cell{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	return Cell{Row: int(rank - '1'), Col: int(file - 'a')}, nil
}

// CoordToAlg converts a Cell back to lowercase algebraic notation.
// The bounds check guards against hand-built cells; anything produced by
// AlgToCoord or the path searches is always in range.
func CoordToAlg(c Cell) (string, error) {
	if !c.InBounds() {
		return "", fmt.Errorf("%w: (%d,%d)", ErrInvalidCell, c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", fileNames[c.Col], c.Row+1), nil
}
