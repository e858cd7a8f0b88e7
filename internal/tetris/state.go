package tetris

// pointsPerClearedRows scales the per-line-clear base award, indexed by
// the number of rows cleared in a single placement (0..4); each is further
// multiplied by (level-before-clear + 1).
var pointsPerClearedRows = [5]int{0, 40, 100, 300, 1200}

// Stats accumulates the running totals a playthrough reports: total score,
// total lines cleared, and the current level.
type Stats struct {
	Steps    int
	Score    int
	Lines    int
	Level    int
	Tetrises int
}

// Delta describes what one placement changed: which rows cleared (in
// descending pre-clear order, possibly empty), how many points it was
// worth, the move that produced it, and whether it was a tetris (four
// rows at once — the clear size with the largest base award).
type Delta struct {
	Move         Move
	ClearedRows  []int
	PointsEarned int
	Eroded       int
	Tetris       bool
}

// RowsCleared reports how many rows this Delta's placement cleared.
func (d Delta) RowsCleared() int { return len(d.ClearedRows) }

// State is a board, its running Stats, and the Delta of the most recent
// placement (nil before the first placement). State is immutable from the
// caller's perspective: Future returns a new State, leaving the receiver
// untouched.
type State struct {
	Board     Board
	Stats     Stats
	LastDelta *Delta
}

// NewState returns the initial state: an empty board, zeroed stats, no
// prior placement.
func NewState() State {
	return State{Board: NewBoard()}
}

// erodedCells counts, among the rows that just cleared, how many of the
// cells belonging to the just-placed piece were part of a cleared row. A
// piece that fills in a well to complete several lines at once erodes more
// cells than one that merely tops off a single line.
func erodedCells(pattern Pattern, moveRow, moveCol int, clearedRows []int) int {
	if len(clearedRows) == 0 {
		return 0
	}
	cleared := make(map[int]bool, len(clearedRows))
	for _, r := range clearedRows {
		cleared[r] = true
	}
	count := 0
	for r := 0; r < pattern.Rows(); r++ {
		row := pattern.Row(r)
		R := moveRow + r
		if !cleared[R] {
			continue
		}
		for _, filled := range row {
			if filled {
				count++
			}
		}
	}
	return count
}

// Future returns the State that results from placing m on the receiver's
// board: the piece is imprinted, full rows are cleared, and Stats are
// advanced using the classic NES scoring law — the points awarded for
// clearing n rows are pointsPerClearedRows[n] times (priorLevel + 1), and
// level increases by one for every 10 lines cleared in total.
func (s State) Future(m Move) (State, Delta) {
	board := s.Board
	pattern := m.Pattern()
	board.Imprint(pattern, m.Pos.Row, m.Pos.Col, m.Piece.Cell())

	cleared := board.ClearFull()
	n := len(cleared)

	delta := Delta{
		Move:        m,
		ClearedRows: cleared,
		Tetris:      n == 4,
		Eroded:      erodedCells(pattern, m.Pos.Row, m.Pos.Col, cleared),
	}
	if n > 0 {
		delta.PointsEarned = pointsPerClearedRows[n] * (s.Stats.Level + 1)
	}

	stats := s.Stats
	stats.Steps++
	stats.Score += delta.PointsEarned
	stats.Lines += n
	stats.Level = stats.Lines / 10
	if delta.Tetris {
		stats.Tetrises++
	}

	return State{Board: board, Stats: stats, LastDelta: &delta}, delta
}
