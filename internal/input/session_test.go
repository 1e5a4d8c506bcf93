package input

import (
	stderrors "errors"
	"testing"

	"github.com/keymove/keymove/internal/board"
	"github.com/keymove/keymove/internal/chess"
	"github.com/keymove/keymove/internal/errors"
	"github.com/keymove/keymove/internal/testutil"
)

func newSession(t *testing.T, fen string, side chess.Side) (*Session, *board.PositionAdapter) {
	t.Helper()
	adapter, err := board.NewPositionAdapter(fen, side)
	testutil.AssertNoError(t, err, "adapter for %q", fen)
	return NewSession(adapter), adapter
}

func mustResolve(t *testing.T, s *Session, text string) chess.ConcreteMove {
	t.Helper()
	m, err := s.ResolveText(text)
	testutil.AssertNoError(t, err, "resolve %q", text)
	return m
}

func TestResolveTextStartingMoves(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"e4", "e2e4"},
		{"e2e4", "e2e4"},
		{"e2-e4", "e2e4"},
		{"Nf3", "g1f3"},
		{"nf3", "g1f3"},
		{"d3", "d2d3"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			s := NewSession(board.NewStartingPositionAdapter(chess.White))
			testutil.AssertEqual(t, mustResolve(t, s, tt.text).UCI(), tt.want)
		})
	}
}

func TestResolveTextGameAdapter(t *testing.T) {
	// Same pipeline through the other adapter.
	s := NewSession(board.NewGameAdapter(chess.White))
	testutil.AssertEqual(t, mustResolve(t, s, "Nc3").UCI(), "b1c3")
}

func TestResolveTextUnrecognized(t *testing.T) {
	s := NewSession(board.NewStartingPositionAdapter(chess.White))
	_, err := s.ResolveText("hello there")
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrUnrecognized))
}

func TestResolveTextIllegal(t *testing.T) {
	s := NewSession(board.NewStartingPositionAdapter(chess.White))
	// Well-formed but no pawn reaches e5 in one legal move from the start.
	_, err := s.ResolveText("e5")
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrIllegalMove))
}

func TestResolveTextAmbiguous(t *testing.T) {
	s, _ := newSession(t, "4k3/8/8/8/8/8/4K3/R6R w - - 0 1", chess.White)
	_, err := s.ResolveText("Rd1")
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrAmbiguous))

	var rerr *errors.ResolveError
	testutil.AssertTrue(t, stderrors.As(err, &rerr))
	testutil.AssertEqual(t, rerr.Candidates, 2)
	testutil.AssertEqual(t, rerr.Input, "Rd1")
}

func TestResolveTextPremove(t *testing.T) {
	// White to move, so the black player's input resolves as a premove.
	s := NewSession(board.NewStartingPositionAdapter(chess.Black))
	testutil.AssertEqual(t, mustResolve(t, s, "Nf6").UCI(), "g8f6")
	testutil.AssertEqual(t, mustResolve(t, s, "e5").UCI(), "e7e5")
}

func TestResolveKeyRooks(t *testing.T) {
	s, _ := newSession(t, "4k3/8/8/8/8/8/4K3/R6R w - - 0 1", chess.White)
	d1 := testutil.MustSquare(t, "d1")

	m, err := s.ResolveKey(chess.Rook, d1, chess.Right)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.UCI(), "h1d1")

	m, err = s.ResolveKey(chess.Rook, d1, chess.General)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.UCI(), "a1d1")

	// Left was never registered for this layout.
	_, err = s.ResolveKey(chess.Rook, d1, chess.Left)
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrAmbiguous))

	// No rook reaches d5.
	_, err = s.ResolveKey(chess.Rook, testutil.MustSquare(t, "d5"), chess.General)
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrIllegalMove))
}

func TestResolveKeyBishopsStayAmbiguous(t *testing.T) {
	s, _ := newSession(t, "4k3/8/8/8/8/8/2B1K1B1/8 w - - 0 1", chess.White)
	_, err := s.ResolveKey(chess.Bishop, testutil.MustSquare(t, "e4"), chess.General)
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrAmbiguous),
		"bishops have no directional split")
}

func TestResolveKeyPawnAutoQueens(t *testing.T) {
	s, _ := newSession(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", chess.White)
	m, err := s.ResolveKey(chess.Pawn, testutil.MustSquare(t, "a8"), chess.General)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.UCI(), "a7a8q")
}

func TestSessionTracksOwnMoves(t *testing.T) {
	s, adapter := newSession(t, "4k3/8/8/8/8/8/4K3/R6R w - - 0 1", chess.White)

	a4 := testutil.MustSquare(t, "a4")
	testutil.AssertNoError(t, adapter.Play(chess.ConcreteMove{
		Piece: chess.Rook, From: testutil.MustSquare(t, "a1"), To: a4,
	}))

	got, ok := s.Pieces().Lookup(chess.Rook, chess.General)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, got, a4)
}

func TestSessionTracksCastling(t *testing.T) {
	s, adapter := newSession(t,
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		chess.White)

	testutil.AssertNoError(t, adapter.Play(chess.ConcreteMove{
		Piece: chess.King,
		From:  testutil.MustSquare(t, "e1"),
		To:    testutil.MustSquare(t, "g1"),
	}))

	got, ok := s.Pieces().Lookup(chess.Rook, chess.Right)
	testutil.AssertTrue(t, ok, "castling rook stays tracked")
	testutil.AssertEqual(t, got, testutil.MustSquare(t, "f1"))

	got, ok = s.Pieces().Lookup(chess.Rook, chess.General)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, got, testutil.MustSquare(t, "a1"))
}

func TestSessionTracksOpponentCapture(t *testing.T) {
	s, adapter := newSession(t, "4k3/8/8/8/8/8/2p5/1N2K3 b - - 0 1", chess.White)

	_, ok := s.Pieces().Lookup(chess.Knight, chess.General)
	testutil.AssertTrue(t, ok, "knight tracked at start")

	// Black captures the tracked knight while promoting.
	testutil.AssertNoError(t, adapter.Play(chess.ConcreteMove{
		Piece:     chess.Pawn,
		From:      testutil.MustSquare(t, "c2"),
		To:        testutil.MustSquare(t, "b1"),
		Promotion: chess.Queen,
	}))

	_, ok = s.Pieces().Lookup(chess.Knight, chess.General)
	testutil.AssertFalse(t, ok, "captured knight drops out of the map")
}
