package tetris

import "fmt"

// Piece is an index into the static tetromino catalog.
type Piece int

// The seven tetromino identities. The numeric order also fixes the Cell
// value each piece imprints: Cell(p)+1.
const (
	PieceI Piece = iota
	PieceT
	PieceL
	PieceJ
	PieceO
	PieceZ
	PieceS
)

// NPieces is the number of distinct tetromino shapes.
const NPieces = 7

// pieceData holds the static catalog entry for one tetromino.
type pieceData struct {
	name        byte
	patterns    [][][]bool
	spawnOffset [2]int // (dRow, dCol)
}

// https://cdn.harddrop.com/0/07/NESTetris-pieces.png
var pieceCatalog = [NPieces]pieceData{
	PieceI: {
		name: 'I',
		patterns: [][][]bool{
			{
				{false, false, false, false},
				{false, false, false, false},
				{true, true, true, true},
				{false, false, false, false},
			},
			{
				{false, false, true, false},
				{false, false, true, false},
				{false, false, true, false},
				{false, false, true, false},
			},
		},
		spawnOffset: [2]int{2, 2},
	},
	PieceT: {
		name: 'T',
		patterns: [][][]bool{
			{
				{false, false, false},
				{true, true, true},
				{false, true, false},
			},
			{
				{false, true, false},
				{true, true, false},
				{false, true, false},
			},
			{
				{false, true, false},
				{true, true, true},
				{false, false, false},
			},
			{
				{false, true, false},
				{false, true, true},
				{false, true, false},
			},
		},
		spawnOffset: [2]int{1, 1},
	},
	PieceL: {
		name: 'L',
		patterns: [][][]bool{
			{
				{false, false, false},
				{true, true, true},
				{true, false, false},
			},
			{
				{true, true, false},
				{false, true, false},
				{false, true, false},
			},
			{
				{false, false, true},
				{true, true, true},
				{false, false, false},
			},
			{
				{false, true, false},
				{false, true, false},
				{false, true, true},
			},
		},
		spawnOffset: [2]int{1, 1},
	},
	PieceJ: {
		name: 'J',
		patterns: [][][]bool{
			{
				{false, false, false},
				{true, true, true},
				{false, false, true},
			},
			{
				{false, true, false},
				{false, true, false},
				{true, true, false},
			},
			{
				{true, false, false},
				{true, true, true},
				{false, false, false},
			},
			{
				{false, true, true},
				{false, true, false},
				{false, true, false},
			},
		},
		spawnOffset: [2]int{1, 1},
	},
	PieceO: {
		name: 'O',
		patterns: [][][]bool{
			{
				{true, true},
				{true, true},
			},
		},
		spawnOffset: [2]int{0, 1},
	},
	PieceZ: {
		name: 'Z',
		patterns: [][][]bool{
			{
				{false, false, false},
				{true, true, false},
				{false, true, true},
			},
			{
				{false, true, false},
				{true, true, false},
				{true, false, false},
			},
		},
		spawnOffset: [2]int{1, 1},
	},
	PieceS: {
		name: 'S',
		patterns: [][][]bool{
			{
				{false, false, false},
				{false, true, true},
				{true, true, false},
			},
			{
				{true, false, false},
				{true, true, false},
				{false, true, false},
			},
		},
		spawnOffset: [2]int{1, 1},
	},
}

// NewPieceFromIndex validates and constructs a Piece from a raw index.
func NewPieceFromIndex(index int) (Piece, error) {
	if index < 0 || index >= NPieces {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPieceIndex, index)
	}
	return Piece(index), nil
}

// Rotation returns the pattern for the given rotation state.
func (p Piece) Rotation(rot int) Pattern {
	patterns := pieceCatalog[p].patterns
	return Pattern{rows: patterns[rot%len(patterns)]}
}

// NumRotations reports how many distinct rotation states this piece has.
func (p Piece) NumRotations() int {
	return len(pieceCatalog[p].patterns)
}

// Cell returns the board cell value this piece imprints.
func (p Piece) Cell() Cell {
	return Cell(p) + 1
}

// SpawnOffset returns the (dRow, dCol) subtracted from the spawn anchor to
// compute the initial placement.
func (p Piece) SpawnOffset() (int, int) {
	off := pieceCatalog[p].spawnOffset
	return off[0], off[1]
}

// IntoStartMove returns the canonical spawn move: rotation 0, positioned so
// the piece straddles the top-center of the board.
func (p Piece) IntoStartMove() Move {
	dRow, dCol := p.SpawnOffset()
	return Move{
		Piece: p,
		Pos: Position{
			Rot: 0,
			Row: -dRow,
			Col: BoardWidth/2 - dCol,
		},
	}
}

func (p Piece) String() string {
	return string(pieceCatalog[p].name)
}

// Pattern is a reference into a piece's rotation table: a square boolean
// matrix, possibly with empty padding rows/columns. The padding is
// semantically significant: landing_height depends on the pattern's
// bounding box, not its convex hull.
type Pattern struct {
	rows [][]bool
}

// Rows returns the pattern's row count.
func (p Pattern) Rows() int { return len(p.rows) }

// Cols returns the pattern's column count.
func (p Pattern) Cols() int {
	if len(p.rows) == 0 {
		return 0
	}
	return len(p.rows[0])
}

// Row returns the filled/empty flags for pattern row i.
func (p Pattern) Row(i int) []bool { return p.rows[i] }

// Position is a piece placement: rotation index plus signed row/column.
// Row and column are signed so a piece may be temporarily above the board
// or straddle a negative column while the move search is in flight.
type Position struct {
	Rot, Row, Col int
}

// Move pairs a Piece with a Position.
type Move struct {
	Piece Piece
	Pos   Position
}

// Pattern returns the rotated pattern this move places.
func (m Move) Pattern() Pattern {
	return m.Piece.Rotation(m.Pos.Rot)
}
