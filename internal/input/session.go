// Package input ties the pipeline together: free-form text or a keyboard
// gesture goes in, exactly one rules-legal move comes out, or an error
// saying why not. A session owns the directional piece map for one board
// adapter and keeps it current by subscribing to the adapter's move
// events.
package input

import (
	"github.com/keymove/keymove/internal/board"
	"github.com/keymove/keymove/internal/chess"
	"github.com/keymove/keymove/internal/dirmap"
	"github.com/keymove/keymove/internal/errors"
	"github.com/keymove/keymove/internal/keyboard"
	"github.com/keymove/keymove/internal/parser"
	"github.com/keymove/keymove/internal/resolver"
)

// Session resolves user move input against one board adapter.
//
// All resolution is synchronous. The only mutable state is the
// directional piece map, updated from the adapter's move events before
// any later keyboard resolution reads it; a session must therefore be
// driven from a single goroutine per adapter.
type Session struct {
	adapter board.Adapter
	pieces  *dirmap.PieceMap
}

// NewSession builds a session for the adapter, constructing the
// directional piece map from the adapter's current layout. Create the
// session when the board is (re)initialized: the map is never inferred
// lazily from a mid-game position.
func NewSession(adapter board.Adapter) *Session {
	s := &Session{
		adapter: adapter,
		pieces:  dirmap.New(adapter.PieceSetup(), adapter.PlayerSide(), adapter.Flipped()),
	}
	adapter.Subscribe(s.trackMove)
	return s
}

// Pieces exposes the directional piece map, mostly for inspection.
func (s *Session) Pieces() *dirmap.PieceMap {
	return s.pieces
}

// trackMove feeds adapter move events into the directional piece map.
func (s *Session) trackMove(ev board.MoveEvent) {
	if ev.Side == s.adapter.PlayerSide() {
		s.pieces.TrackOwnMove(ev.Piece, ev.From, ev.To, ev.Castle)
		return
	}
	if ev.Captured != chess.Empty {
		s.pieces.TrackOpponentCapture(ev.Captured, ev.To)
	}
}

// ResolveText resolves free-form move text to a single move. When it is
// not the player's turn the text is resolved as a premove instead.
//
// The three normal outcomes are a move, ErrAmbiguous, and either
// ErrUnrecognized (no template parsed) or ErrIllegalMove (no candidate
// survived); all are recoverable by re-prompting the user.
func (s *Session) ResolveText(text string) (chess.ConcreteMove, error) {
	templates := parser.Parse(text)
	if len(templates) == 0 {
		return chess.ConcreteMove{}, &errors.ResolveError{Err: errors.ErrUnrecognized, Input: text}
	}

	var moves []chess.ConcreteMove
	if s.adapter.IsPlayersTurn() {
		moves = resolver.Resolve(templates, s.adapter.PieceSetup(), true, s.adapter)
	} else {
		moves = resolver.ResolvePremoves(templates, s.adapter.PremoveCandidates())
	}
	return s.single(moves, text)
}

// ResolveKey resolves a keyboard gesture: a piece kind, a target square,
// and a coarse direction. Multiple surviving candidates go through
// directional disambiguation; piece kinds without a directional split
// (bishop, king) are reported ambiguous as-is.
func (s *Session) ResolveKey(piece chess.Piece, target chess.Square, dir chess.Direction) (chess.ConcreteMove, error) {
	input := string(piece.Letter()) + target.String()
	templates := keyTemplates(piece, target)

	var moves []chess.ConcreteMove
	if s.adapter.IsPlayersTurn() {
		moves = resolver.Resolve(templates, s.adapter.PieceSetup(), true, s.adapter)
	} else {
		moves = resolver.ResolvePremoves(templates, s.adapter.PremoveCandidates())
	}

	switch len(moves) {
	case 0:
		return chess.ConcreteMove{}, &errors.ResolveError{Err: errors.ErrIllegalMove, Input: input}
	case 1:
		return moves[0], nil
	}

	if piece == chess.Bishop || piece == chess.King {
		return chess.ConcreteMove{}, &errors.ResolveError{
			Err: errors.ErrAmbiguous, Input: input, Candidates: len(moves),
		}
	}
	m, ok := keyboard.Disambiguate(s.pieces, moves, piece, dir, s.adapter.Flipped())
	if !ok {
		return chess.ConcreteMove{}, &errors.ResolveError{
			Err: errors.ErrAmbiguous, Input: input, Candidates: len(moves),
		}
	}
	return m, nil
}

// keyTemplates builds the wildcard-origin template for a key press. A
// pawn aimed at a promotion rank expands into one template per promotion
// piece, so that promoting candidates survive resolution and the
// disambiguator's auto-queen rule can see them.
func keyTemplates(piece chess.Piece, target chess.Square) []chess.MoveTemplate {
	base := chess.MoveTemplate{
		Piece: chess.OnePiece(piece),
		From:  chess.AnySquare(),
		To:    chess.ExactSquare(target),
	}
	if piece != chess.Pawn || (target.Rank != chess.FirstRank && target.Rank != chess.LastRank) {
		return []chess.MoveTemplate{base}
	}

	var templates []chess.MoveTemplate
	for _, promo := range []chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight} {
		t := base
		t.Promotion = promo
		templates = append(templates, t)
	}
	return templates
}

// single reduces a candidate list to the one resolved move or reports
// why there is none.
func (s *Session) single(moves []chess.ConcreteMove, inputText string) (chess.ConcreteMove, error) {
	switch len(moves) {
	case 0:
		return chess.ConcreteMove{}, &errors.ResolveError{Err: errors.ErrIllegalMove, Input: inputText}
	case 1:
		return moves[0], nil
	default:
		return chess.ConcreteMove{}, &errors.ResolveError{
			Err: errors.ErrAmbiguous, Input: inputText, Candidates: len(moves),
		}
	}
}
