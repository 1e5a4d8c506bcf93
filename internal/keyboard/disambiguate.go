// Package keyboard narrows several legal candidates to one, using a
// coarse direction from a key press. Text input never reaches this path;
// it exists so a piece can be addressed as "the left knight" without
// typing coordinates.
package keyboard

import (
	"github.com/keymove/keymove/internal/chess"
	"github.com/keymove/keymove/internal/dirmap"
)

// Disambiguate selects at most one candidate for the given piece kind and
// direction. The boolean result is false when zero or more than one
// candidate matches the direction's condition; there is no silent
// fallback. Callers distinguish that from an empty candidates input when
// reporting illegal versus ambiguous.
//
// Only pawns, knights, rooks and queens may be disambiguated this way.
// Bishops and the king have no left/right/general split in this model;
// passing them is a programming error.
func Disambiguate(pieces *dirmap.PieceMap, candidates []chess.ConcreteMove, piece chess.Piece, dir chess.Direction, boardFlipped bool) (chess.ConcreteMove, bool) {
	switch piece {
	case chess.Pawn:
		return pawnCandidate(candidates, dir, boardFlipped)
	case chess.Knight, chess.Rook, chess.Queen:
		from, ok := pieces.Lookup(piece, dir)
		if !ok {
			return chess.ConcreteMove{}, false
		}
		return unique(candidates, func(m chess.ConcreteMove) bool {
			return m.From == from
		})
	}
	panic("keyboard: directional addressing undefined for " + piece.String())
}

// pawnCandidate applies the pawn heuristics. Auto-promotion to queen
// takes precedence over directional reasoning: when every candidate
// leaves the same origin square and exactly one promotes to a queen,
// that one is chosen regardless of direction.
func pawnCandidate(candidates []chess.ConcreteMove, dir chess.Direction, boardFlipped bool) (chess.ConcreteMove, bool) {
	if m, ok := queenPromotion(candidates); ok {
		return m, true
	}

	switch dir {
	case chess.General:
		// A push keeps its file.
		return unique(candidates, func(m chess.ConcreteMove) bool {
			return m.From.Col == m.To.Col
		})
	case chess.Left, chess.Right:
		// A capture's file shift mirrors when the board is flipped.
		want := -1
		if dir == chess.Right {
			want = 1
		}
		if boardFlipped {
			want = -want
		}
		return unique(candidates, func(m chess.ConcreteMove) bool {
			return sign(int(m.To.Col)-int(m.From.Col)) == want
		})
	}
	return chess.ConcreteMove{}, false
}

func queenPromotion(candidates []chess.ConcreteMove) (chess.ConcreteMove, bool) {
	if len(candidates) == 0 {
		return chess.ConcreteMove{}, false
	}
	origin := candidates[0].From
	var queen chess.ConcreteMove
	queens := 0
	for _, m := range candidates {
		if m.From != origin {
			return chess.ConcreteMove{}, false
		}
		if m.Promotion == chess.Queen {
			queen = m
			queens++
		}
	}
	if queens != 1 {
		return chess.ConcreteMove{}, false
	}
	return queen, true
}

// unique returns the single candidate satisfying match, or false when
// zero or several do.
func unique(candidates []chess.ConcreteMove, match func(chess.ConcreteMove) bool) (chess.ConcreteMove, bool) {
	var found chess.ConcreteMove
	n := 0
	for _, m := range candidates {
		if match(m) {
			found = m
			n++
		}
	}
	if n != 1 {
		return chess.ConcreteMove{}, false
	}
	return found, true
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
