package tetris

import "math/rand/v2"

// GenRandomPiece draws the next piece NES-style: roll uniformly from
// 0..=NPieces (NPieces+1 values); if the roll lands on the "reroll" slot or
// repeats the previous piece, roll again uniformly from 0..NPieces. previous
// is nil when there is no prior piece (first spawn).
func GenRandomPiece(previous *Piece) Piece {
	r := rand.IntN(NPieces + 1)
	if r == NPieces || (previous != nil && Piece(r) == *previous) {
		return Piece(rand.IntN(NPieces))
	}
	return Piece(r)
}
