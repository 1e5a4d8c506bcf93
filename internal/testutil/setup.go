package testutil

import (
	"testing"

	"github.com/keymove/keymove/internal/chess"
)

// MustSquare parses a square name, failing the test on bad input.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, ok := chess.SquareFromString(name)
	if !ok {
		t.Fatalf("invalid square %q", name)
	}
	return sq
}

// StartingSetup returns the standard chess starting layout.
func StartingSetup() chess.PieceSetup {
	setup := make(chess.PieceSetup)
	backRank := []chess.Piece{
		chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
		chess.King, chess.Bishop, chess.Knight, chess.Rook,
	}
	for i := 0; i < chess.BoardSize; i++ {
		col := chess.FirstCol + chess.Col(i)
		setup[chess.NewSquare(col, '1')] = chess.Occupant{Side: chess.White, Piece: backRank[i]}
		setup[chess.NewSquare(col, '2')] = chess.Occupant{Side: chess.White, Piece: chess.Pawn}
		setup[chess.NewSquare(col, '7')] = chess.Occupant{Side: chess.Black, Piece: chess.Pawn}
		setup[chess.NewSquare(col, '8')] = chess.Occupant{Side: chess.Black, Piece: backRank[i]}
	}
	return setup
}

// Setup builds a piece layout from square-name keyed occupants, e.g.
// {"b4": {White, Pawn}}.
func Setup(t *testing.T, occupants map[string]chess.Occupant) chess.PieceSetup {
	t.Helper()
	setup := make(chess.PieceSetup)
	for name, occ := range occupants {
		setup[MustSquare(t, name)] = occ
	}
	return setup
}

// OracleFunc adapts a function to the resolver's legality oracle.
type OracleFunc func(from, to chess.Square) bool

// IsLegalMove implements the oracle by calling the function.
func (f OracleFunc) IsLegalMove(from, to chess.Square) bool {
	return f(from, to)
}

// AllowMoves returns an oracle that accepts exactly the given moves,
// written as 4-character square pairs ("e2e4").
func AllowMoves(t *testing.T, moves ...string) OracleFunc {
	t.Helper()
	allowed := make(map[string]bool, len(moves))
	for _, m := range moves {
		if len(m) != 4 {
			t.Fatalf("invalid move pair %q", m)
		}
		allowed[m] = true
	}
	return func(from, to chess.Square) bool {
		return allowed[from.String()+to.String()]
	}
}
