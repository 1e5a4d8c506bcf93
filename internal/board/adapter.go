// Package board defines the capability set a host board exposes to the
// input core, and provides two implementations of it: one wrapping a full
// notnil/chess game and one wrapping a dragontoothmg position. The core
// only ever sees the Adapter interface; no concrete adapter type leaks
// into parsing or resolution.
package board

import "github.com/keymove/keymove/internal/chess"

// MoveEvent describes one executed move. Events arrive in game order and
// are neither duplicated nor dropped.
type MoveEvent struct {
	Side      chess.Side
	Piece     chess.Piece
	From      chess.Square
	To        chess.Square
	Castle    chess.Castle
	Captured  chess.Piece // Empty when the move captured nothing
	Promotion chess.Piece // Empty when the move is not a promotion
}

// Handler receives move events.
type Handler func(MoveEvent)

// Adapter is the capability set the input core consumes from a host
// board. Legality semantics, including en passant and castling edge
// cases, are the adapter's responsibility.
type Adapter interface {
	// PieceSetup returns a snapshot of the current occupancy.
	PieceSetup() chess.PieceSetup

	// IsLegalMove reports whether the player may move from one square to
	// another in the current position.
	IsLegalMove(from, to chess.Square) bool

	// IsPlayersTurn reports whether it is the player's move.
	IsPlayersTurn() bool

	// PremoveCandidates enumerates the fully-concrete moves the player
	// could queue while it is the opponent's turn.
	PremoveCandidates() []chess.ConcreteMove

	// Play executes a move on the board and notifies subscribers.
	Play(m chess.ConcreteMove) error

	// Subscribe registers a handler invoked for every executed move.
	Subscribe(h Handler)

	// PlayerSide returns the side the player controls.
	PlayerSide() chess.Side

	// Flipped reports whether the board is drawn from Black's side.
	Flipped() bool
}
