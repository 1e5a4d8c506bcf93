// Package resolver expands move templates into concrete moves against a
// live position. Legality itself is delegated to an oracle supplied by
// the board adapter; the resolver only matches patterns and filters.
package resolver

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/keymove/keymove/internal/chess"
)

// Oracle answers whether moving between two squares is legal for the
// player. Rule semantics and edge cases (en passant, castling) are the
// adapter's responsibility.
type Oracle interface {
	IsLegalMove(from, to chess.Square) bool
}

// Resolve expands the templates against the current occupancy and keeps
// every candidate the oracle accepts. A single template may expand into
// several moves when the notation is genuinely ambiguous; the result is
// passed through Dedupe before being returned.
//
// Callers must check turn ownership first: when it is not the player's
// turn the resolver returns nothing and performs no oracle queries.
func Resolve(templates []chess.MoveTemplate, setup chess.PieceSetup, playersTurn bool, oracle Oracle) []chess.ConcreteMove {
	if len(templates) == 0 || !playersTurn {
		return nil
	}

	squares := maps.Keys(setup)
	slices.SortFunc(squares, func(a, b chess.Square) bool {
		return chess.CompareSquares(a, b) < 0
	})

	var moves []chess.ConcreteMove
	for _, t := range templates {
		moves = append(moves, expand(t, squares, setup, oracle)...)
	}
	return Dedupe(moves)
}

// expand matches one template against every occupied square and every
// destination its to-pattern allows.
func expand(t chess.MoveTemplate, squares []chess.Square, setup chess.PieceSetup, oracle Oracle) []chess.ConcreteMove {
	var moves []chess.ConcreteMove
	for _, from := range squares {
		occ := setup[from]
		if !t.Piece.Matches(occ.Piece) || !t.From.Matches(from) {
			continue
		}
		for col := chess.FirstCol; col <= chess.LastCol; col++ {
			for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
				to := chess.NewSquare(col, rank)
				if !t.To.Matches(to) {
					continue
				}
				// A pawn reaching the promotion rank without a stated
				// promotion piece is not actionable, so it is excluded
				// rather than defaulted.
				if occ.Piece == chess.Pawn && t.Promotion == chess.Empty &&
					(to.Rank == chess.FirstRank || to.Rank == chess.LastRank) {
					continue
				}
				if !oracle.IsLegalMove(from, to) {
					continue
				}
				moves = append(moves, chess.ConcreteMove{
					Piece:     occ.Piece,
					From:      from,
					To:        to,
					Promotion: t.Promotion,
				})
			}
		}
	}
	return moves
}

// ResolvePremoves filters an enumeration of fully-concrete legal premoves
// by template match. Occupancy is not consulted: a premove may target a
// square not yet reachable under the current layout.
func ResolvePremoves(templates []chess.MoveTemplate, premoves []chess.ConcreteMove) []chess.ConcreteMove {
	if len(templates) == 0 {
		return nil
	}

	var moves []chess.ConcreteMove
	for _, t := range templates {
		for _, m := range premoves {
			if matchesPremove(t, m) {
				moves = append(moves, m)
			}
		}
	}
	return Dedupe(moves)
}

// matchesPremove applies the same per-axis matching as live resolution.
// Promotion must match exactly: an unspecified promotion never selects a
// promoting premove.
func matchesPremove(t chess.MoveTemplate, m chess.ConcreteMove) bool {
	return t.Piece.Matches(m.Piece) &&
		t.From.Matches(m.From) &&
		t.To.Matches(m.To) &&
		t.Promotion == m.Promotion
}
