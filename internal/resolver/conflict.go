package resolver

import "github.com/keymove/keymove/internal/chess"

// Dedupe applies the one fixed conflict rule to a candidate set and
// otherwise returns it unchanged.
//
// Algebraic notation for certain pawn captures ("bxc3") is a syntactic
// subset of bishop-move notation, so when the candidate kinds are exactly
// {bishop, pawn} the pawn is kept and the bishop discarded: pawn intent
// wins by convention. Every other multi-candidate set is surfaced to the
// caller as ambiguous.
func Dedupe(moves []chess.ConcreteMove) []chess.ConcreteMove {
	var sawPawn, sawBishop, sawOther bool
	for _, m := range moves {
		switch m.Piece {
		case chess.Pawn:
			sawPawn = true
		case chess.Bishop:
			sawBishop = true
		default:
			sawOther = true
		}
	}
	if !sawPawn || !sawBishop || sawOther {
		return moves
	}

	kept := make([]chess.ConcreteMove, 0, len(moves))
	for _, m := range moves {
		if m.Piece == chess.Pawn {
			kept = append(kept, m)
		}
	}
	return kept
}
