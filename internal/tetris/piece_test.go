package tetris

import "testing"

func TestNewPieceFromIndexBounds(t *testing.T) {
	if _, err := NewPieceFromIndex(-1); err == nil {
		t.Error("expected error for negative index")
	}
	if _, err := NewPieceFromIndex(NPieces); err == nil {
		t.Error("expected error for index == NPieces")
	}
	p, err := NewPieceFromIndex(int(PieceT))
	if err != nil {
		t.Fatalf("NewPieceFromIndex: %v", err)
	}
	if p != PieceT {
		t.Errorf("got %v, want PieceT", p)
	}
}

func TestPieceCellMapping(t *testing.T) {
	for i := Piece(0); i < NPieces; i++ {
		if got, want := i.Cell(), Cell(i)+1; got != want {
			t.Errorf("Piece(%d).Cell() = %d, want %d", i, got, want)
		}
	}
}

func TestSpawnOffsets(t *testing.T) {
	cases := []struct {
		p          Piece
		dRow, dCol int
	}{
		{PieceI, 2, 2},
		{PieceT, 1, 1},
		{PieceL, 1, 1},
		{PieceJ, 1, 1},
		{PieceO, 0, 1},
		{PieceZ, 1, 1},
		{PieceS, 1, 1},
	}
	for _, c := range cases {
		dRow, dCol := c.p.SpawnOffset()
		if dRow != c.dRow || dCol != c.dCol {
			t.Errorf("%v.SpawnOffset() = (%d,%d), want (%d,%d)", c.p, dRow, dCol, c.dRow, c.dCol)
		}
	}
}

func TestIntoStartMove(t *testing.T) {
	m := PieceT.IntoStartMove()
	if m.Pos.Rot != 0 {
		t.Errorf("start rot = %d, want 0", m.Pos.Rot)
	}
	if m.Pos.Row != -1 {
		t.Errorf("start row = %d, want -1", m.Pos.Row)
	}
	if want := BoardWidth/2 - 1; m.Pos.Col != want {
		t.Errorf("start col = %d, want %d", m.Pos.Col, want)
	}
}

func TestNumRotations(t *testing.T) {
	cases := map[Piece]int{
		PieceI: 2,
		PieceT: 4,
		PieceL: 4,
		PieceJ: 4,
		PieceO: 1,
		PieceZ: 2,
		PieceS: 2,
	}
	for p, want := range cases {
		if got := p.NumRotations(); got != want {
			t.Errorf("%v.NumRotations() = %d, want %d", p, got, want)
		}
	}
}

func TestPatternDimensionsAreSquare(t *testing.T) {
	for p := Piece(0); p < NPieces; p++ {
		for r := 0; r < p.NumRotations(); r++ {
			pattern := p.Rotation(r)
			if pattern.Rows() != pattern.Cols() {
				t.Errorf("%v rotation %d: rows=%d cols=%d, want square", p, r, pattern.Rows(), pattern.Cols())
			}
		}
	}
}
