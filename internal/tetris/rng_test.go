package tetris

import "testing"

func TestGenRandomPieceFirstDrawInRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		p := GenRandomPiece(nil)
		if p < 0 || p >= NPieces {
			t.Fatalf("GenRandomPiece(nil) = %v, out of range", p)
		}
	}
}

func TestGenRandomPieceInRangeGivenPrevious(t *testing.T) {
	prev := PieceT
	for i := 0; i < 200; i++ {
		p := GenRandomPiece(&prev)
		if p < 0 || p >= NPieces {
			t.Fatalf("GenRandomPiece(&PieceT) = %v, out of range", p)
		}
	}
}
