package resolver

import (
	"testing"

	"github.com/keymove/keymove/internal/chess"
	"github.com/keymove/keymove/internal/parser"
	"github.com/keymove/keymove/internal/testutil"
)

func TestResolveCoordinatePawnPush(t *testing.T) {
	templates := parser.Parse("e2e4")
	setup := testutil.StartingSetup()
	oracle := testutil.OracleFunc(func(from, to chess.Square) bool {
		// Only pawn double-steps from the second rank.
		return from.Rank == '2' && to.Rank == '4' && from.Col == to.Col
	})

	moves := Resolve(templates, setup, true, oracle)
	want := []chess.ConcreteMove{{
		Piece: chess.Pawn,
		From:  testutil.MustSquare(t, "e2"),
		To:    testutil.MustSquare(t, "e4"),
	}}
	testutil.AssertEqual(t, moves, want)
}

func TestResolveKnightByLegality(t *testing.T) {
	templates := parser.Parse("Nf3")
	setup := testutil.StartingSetup()
	// Knights stand on b1 and g1; only g1-f3 is allowed.
	oracle := testutil.AllowMoves(t, "g1f3")

	moves := Resolve(templates, setup, true, oracle)
	want := []chess.ConcreteMove{{
		Piece: chess.Knight,
		From:  testutil.MustSquare(t, "g1"),
		To:    testutil.MustSquare(t, "f3"),
	}}
	testutil.AssertEqual(t, moves, want)
}

func TestResolveNotPlayersTurn(t *testing.T) {
	templates := parser.Parse("e2e4")
	oracleCalled := false
	oracle := testutil.OracleFunc(func(from, to chess.Square) bool {
		oracleCalled = true
		return true
	})

	moves := Resolve(templates, testutil.StartingSetup(), false, oracle)
	testutil.AssertEqual(t, len(moves), 0)
	testutil.AssertFalse(t, oracleCalled, "resolver must not query the oracle off-turn")
}

func TestResolveNoTemplates(t *testing.T) {
	oracle := testutil.AllowMoves(t)
	moves := Resolve(nil, testutil.StartingSetup(), true, oracle)
	testutil.AssertEqual(t, len(moves), 0)
}

// A template expands into one candidate per matching origin: genuinely
// ambiguous notation survives resolution and is reported by the caller.
func TestResolveAmbiguousRooks(t *testing.T) {
	setup := testutil.Setup(t, map[string]chess.Occupant{
		"a1": {Side: chess.White, Piece: chess.Rook},
		"h1": {Side: chess.White, Piece: chess.Rook},
	})
	oracle := testutil.AllowMoves(t, "a1d1", "h1d1")

	moves := Resolve(parser.Parse("Rd1"), setup, true, oracle)
	// Candidates come out in file-then-rank origin order.
	want := []chess.ConcreteMove{
		{Piece: chess.Rook, From: testutil.MustSquare(t, "a1"), To: testutil.MustSquare(t, "d1")},
		{Piece: chess.Rook, From: testutil.MustSquare(t, "h1"), To: testutil.MustSquare(t, "d1")},
	}
	testutil.AssertEqual(t, moves, want)
}

// A pawn headed for the promotion rank without a stated promotion piece
// is excluded, not defaulted.
func TestResolvePromotionRankRequiresPiece(t *testing.T) {
	setup := testutil.Setup(t, map[string]chess.Occupant{
		"e7": {Side: chess.White, Piece: chess.Pawn},
	})
	oracle := testutil.AllowMoves(t, "e7e8")

	if moves := Resolve(parser.Parse("e8"), setup, true, oracle); len(moves) != 0 {
		t.Errorf("promotion without a piece resolved to %v, want nothing", moves)
	}

	moves := Resolve(parser.Parse("e8=Q"), setup, true, oracle)
	want := []chess.ConcreteMove{{
		Piece:     chess.Pawn,
		From:      testutil.MustSquare(t, "e7"),
		To:        testutil.MustSquare(t, "e8"),
		Promotion: chess.Queen,
	}}
	testutil.AssertEqual(t, moves, want)
}

// The {bishop, pawn} conflict from "bxc3"-style notation resolves to the
// pawn.
func TestResolvePawnBeatsBishop(t *testing.T) {
	setup := testutil.Setup(t, map[string]chess.Occupant{
		"b4": {Side: chess.White, Piece: chess.Pawn},
		"e1": {Side: chess.White, Piece: chess.Bishop},
		"c3": {Side: chess.Black, Piece: chess.Knight},
	})
	oracle := testutil.AllowMoves(t, "b4c3", "e1c3")

	moves := Resolve(parser.Parse("bxc3"), setup, true, oracle)
	want := []chess.ConcreteMove{{
		Piece: chess.Pawn,
		From:  testutil.MustSquare(t, "b4"),
		To:    testutil.MustSquare(t, "c3"),
	}}
	testutil.AssertEqual(t, moves, want)
}

func TestDedupe(t *testing.T) {
	pawn := chess.ConcreteMove{Piece: chess.Pawn, From: chess.Square{Col: 'b', Rank: '4'}, To: chess.Square{Col: 'c', Rank: '3'}}
	bishop := chess.ConcreteMove{Piece: chess.Bishop, From: chess.Square{Col: 'e', Rank: '1'}, To: chess.Square{Col: 'c', Rank: '3'}}
	knight := chess.ConcreteMove{Piece: chess.Knight, From: chess.Square{Col: 'b', Rank: '1'}, To: chess.Square{Col: 'c', Rank: '3'}}

	tests := []struct {
		name string
		in   []chess.ConcreteMove
		want []chess.ConcreteMove
	}{
		{"empty", nil, nil},
		{"single", []chess.ConcreteMove{bishop}, []chess.ConcreteMove{bishop}},
		{"pawn and bishop", []chess.ConcreteMove{bishop, pawn}, []chess.ConcreteMove{pawn}},
		{"other kinds untouched", []chess.ConcreteMove{bishop, knight}, []chess.ConcreteMove{bishop, knight}},
		{"three kinds untouched", []chess.ConcreteMove{bishop, pawn, knight}, []chess.ConcreteMove{bishop, pawn, knight}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, Dedupe(tt.in), tt.want)
		})
	}
}

func TestResolvePremoves(t *testing.T) {
	premoves := []chess.ConcreteMove{
		{Piece: chess.Knight, From: chess.Square{Col: 'b', Rank: '1'}, To: chess.Square{Col: 'c', Rank: '3'}},
		{Piece: chess.Knight, From: chess.Square{Col: 'g', Rank: '1'}, To: chess.Square{Col: 'f', Rank: '3'}},
		{Piece: chess.Pawn, From: chess.Square{Col: 'e', Rank: '7'}, To: chess.Square{Col: 'e', Rank: '8'}, Promotion: chess.Queen},
		{Piece: chess.Pawn, From: chess.Square{Col: 'e', Rank: '7'}, To: chess.Square{Col: 'e', Rank: '8'}, Promotion: chess.Rook},
	}

	moves := ResolvePremoves(parser.Parse("Nc3"), premoves)
	testutil.AssertEqual(t, moves, premoves[:1])

	// Unspecified promotion never selects a promoting premove.
	moves = ResolvePremoves(parser.Parse("e7e8"), premoves)
	testutil.AssertEqual(t, len(moves), 0)

	moves = ResolvePremoves(parser.Parse("e7e8q"), premoves)
	testutil.AssertEqual(t, moves, premoves[2:3])

	// Premoves ignore occupancy entirely; no templates means no moves.
	testutil.AssertEqual(t, len(ResolvePremoves(nil, premoves)), 0)
}

// Re-parsing a resolved move's coordinate form and resolving again
// against the unchanged layout reproduces the identical move.
func TestResolveRoundTrip(t *testing.T) {
	setup := testutil.StartingSetup()
	oracle := testutil.AllowMoves(t, "g1f3", "b1c3", "e2e4", "d2d4")

	for _, text := range []string{"Nf3", "Nc3", "e4", "d2d4"} {
		moves := Resolve(parser.Parse(text), setup, true, oracle)
		if len(moves) != 1 {
			t.Fatalf("Resolve(%q) yielded %d moves, want 1", text, len(moves))
		}
		again := Resolve(parser.Parse(moves[0].UCI()), setup, true, oracle)
		if len(again) != 1 || again[0] != moves[0] {
			t.Errorf("round trip of %q via %q: got %v, want %v", text, moves[0].UCI(), again, moves[0])
		}
	}
}
