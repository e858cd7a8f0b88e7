// Package tetris implements a headless Tetris engine: board bookkeeping,
// the tetromino catalog, a level-aware move search, scoring state
// transitions, and a weighted heuristic evaluator driving a simulator.
package tetris

import (
	"fmt"
	"sort"
	"strings"
)

// Board dimensions.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Cell is a single board square. 0 means empty; 1..=NPieces encodes the
// piece identity that filled it.
type Cell uint8

// Filled reports whether the cell is occupied.
func (c Cell) Filled() bool { return c != 0 }

// Empty reports whether the cell is unoccupied.
func (c Cell) Empty() bool { return c == 0 }

func (c Cell) String() string {
	if c.Filled() {
		return "#"
	}
	return "."
}

// Board is a fixed 10x20 cell grid with row 0 at the top, plus a cached
// per-column surface height. heights[c] always equals BoardHeight minus the
// row of the topmost filled cell in column c, or 0 if the column is empty.
type Board struct {
	data    [BoardHeight][BoardWidth]Cell
	heights [BoardWidth]int
}

// NewBoard returns an empty board. The zero value of Board is already an
// empty board, so this exists purely for readability at call sites.
func NewBoard() Board {
	return Board{}
}

// Height returns the surface height of the given column.
func (b *Board) Height(col int) int {
	return b.heights[col]
}

// Heights returns the per-column surface heights.
func (b *Board) Heights() [BoardWidth]int {
	return b.heights
}

// At returns the cell at (row, col). Callers must keep row/col in bounds.
func (b *Board) At(row, col int) Cell {
	return b.data[row][col]
}

// OverlapsMove reports whether placing m's piece at m's position collides
// with the floor, the side walls, or an already-filled board cell. Cells
// whose row is negative never cause a collision: the piece may still be
// descending in from above the visible board.
func (b *Board) OverlapsMove(m Move) bool {
	pattern := m.Pattern()
	for r := 0; r < pattern.Rows(); r++ {
		row := pattern.Row(r)
		for c, filled := range row {
			if !filled {
				continue
			}
			R := m.Pos.Row + r
			C := m.Pos.Col + c
			if R >= BoardHeight || C < 0 || C >= BoardWidth {
				return true
			}
			if R >= 0 && b.data[R][C].Filled() {
				return true
			}
		}
	}
	return false
}

// Imprint writes cell into every filled pattern offset, anchored at
// (row, col). Destinations outside the board are silently ignored.
func (b *Board) Imprint(pattern Pattern, row, col int, cell Cell) {
	for r := 0; r < pattern.Rows(); r++ {
		prow := pattern.Row(r)
		for c, filled := range prow {
			if !filled {
				continue
			}
			R := row + r
			C := col + c
			if R >= 0 && R < BoardHeight && C >= 0 && C < BoardWidth {
				b.data[R][C] = cell
				if h := BoardHeight - R; h > b.heights[C] {
					b.heights[C] = h
				}
			}
		}
	}
}

// ClearFull removes every fully-filled row and returns their indices, in
// the pre-clear coordinate system, in descending order. Rows above a
// cleared band shift down to fill the gap. Heights are recomputed from
// scratch per column, since pits above a cleared band mean simply
// subtracting the cleared count would be wrong.
func (b *Board) ClearFull() []int {
	var full []int
	for r := 0; r < BoardHeight; r++ {
		if b.rowFull(r) {
			full = append(full, r)
		}
	}
	if len(full) == 0 {
		return nil
	}

	var newData [BoardHeight][BoardWidth]Cell
	dst := BoardHeight - 1
	fullSet := make(map[int]bool, len(full))
	for _, r := range full {
		fullSet[r] = true
	}
	for src := BoardHeight - 1; src >= 0; src-- {
		if fullSet[src] {
			continue
		}
		newData[dst] = b.data[src]
		dst--
	}
	b.data = newData

	for c := 0; c < BoardWidth; c++ {
		h := 0
		for r := 0; r < BoardHeight; r++ {
			if b.data[r][c].Filled() {
				h = BoardHeight - r
				break
			}
		}
		b.heights[c] = h
	}

	sort.Sort(sort.Reverse(sort.IntSlice(full)))
	return full
}

func (b *Board) rowFull(row int) bool {
	for c := 0; c < BoardWidth; c++ {
		if b.data[row][c].Empty() {
			return false
		}
	}
	return true
}

// String renders the board as text: '#' for filled, '.' for empty, one
// line per row, top to bottom.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < BoardHeight; r++ {
		for c := 0; c < BoardWidth; c++ {
			sb.WriteString(b.data[r][c].String())
		}
		if r != BoardHeight-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseBoard parses the board text format: exactly BoardHeight non-blank
// lines of exactly BoardWidth characters, each either '#' (filled) or '.'
// (empty). Leading/trailing blank lines are ignored.
func ParseBoard(s string) (Board, error) {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != BoardHeight {
		return Board{}, fmt.Errorf("tetris: invalid board text: got %d rows, want %d", len(lines), BoardHeight)
	}
	b := NewBoard()
	for r, line := range lines {
		if len(line) != BoardWidth {
			return Board{}, fmt.Errorf("tetris: invalid board text: row %d has %d columns, want %d", r, len(line), BoardWidth)
		}
		for c, ch := range line {
			switch ch {
			case '#':
				b.data[r][c] = 1
			case '.':
				b.data[r][c] = 0
			default:
				return Board{}, fmt.Errorf("tetris: invalid board text: unexpected character %q at row %d col %d", ch, r, c)
			}
		}
	}
	for c := 0; c < BoardWidth; c++ {
		for r := 0; r < BoardHeight; r++ {
			if b.data[r][c].Filled() {
				b.heights[c] = BoardHeight - r
				break
			}
		}
	}
	return b, nil
}
