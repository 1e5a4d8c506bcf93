// Package dirmap maintains a persistent per-piece-kind registry of which
// concrete piece is the LEFT one, the RIGHT one, or the only one, from
// the acting player's own perspective. The registry backs the keyboard
// disambiguation path: a key press addresses "the right rook" rather than
// a coordinate.
//
// Only knights, rooks and queens are tracked. Bishops are told apart by
// square colour, the king is unique, and pawns are addressed by file, so
// none of them need a directional split.
package dirmap

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/keymove/keymove/internal/chess"
)

// Tracked reports whether a piece kind participates in directional
// addressing.
func Tracked(p chess.Piece) bool {
	switch p {
	case chess.Knight, chess.Rook, chess.Queen:
		return true
	}
	return false
}

// PieceMap registers, for each tracked piece kind of one side, which
// square currently holds the piece playing each directional role. At most
// one square is registered per (kind, direction) pair. A kind with only a
// General entry has a single piece left for directional addressing; an
// absent kind has none.
//
// The map must be built from the initial layout via New before any query
// or update; a zero-value PieceMap is a programming error. Updates and
// reads must be sequenced in game order, never interleaved.
type PieceMap struct {
	side    chess.Side
	flipped bool
	entries map[chess.Piece]map[chess.Direction]chess.Square
}

// New builds the registry from an initial piece layout for the given
// side. Pieces of each tracked kind are ordered by file then rank from
// the player's own perspective: the first becomes General and the last,
// if different, becomes Right. Left is never assigned at initialization.
func New(setup chess.PieceSetup, side chess.Side, flipped bool) *PieceMap {
	m := &PieceMap{
		side:    side,
		flipped: flipped,
		entries: make(map[chess.Piece]map[chess.Direction]chess.Square),
	}

	byKind := make(map[chess.Piece][]chess.Square)
	for sq, occ := range setup {
		if occ.Side == side && Tracked(occ.Piece) {
			byKind[occ.Piece] = append(byKind[occ.Piece], sq)
		}
	}

	for kind, squares := range byKind {
		slices.SortFunc(squares, m.lessFromPerspective)
		dirs := map[chess.Direction]chess.Square{
			chess.General: squares[0],
		}
		if last := squares[len(squares)-1]; last != squares[0] {
			dirs[chess.Right] = last
		}
		m.entries[kind] = dirs
	}
	return m
}

// lessFromPerspective orders squares left-to-right as the player sees
// the board: ascending files for an unflipped board, descending when the
// board is flipped.
func (m *PieceMap) lessFromPerspective(a, b chess.Square) bool {
	c := chess.CompareSquares(a, b)
	if m.flipped {
		return c > 0
	}
	return c < 0
}

// Lookup returns the square registered for the given kind and direction.
func (m *PieceMap) Lookup(piece chess.Piece, dir chess.Direction) (chess.Square, bool) {
	m.mustInit()
	dirs, ok := m.entries[piece]
	if !ok {
		return chess.Square{}, false
	}
	sq, ok := dirs[dir]
	return sq, ok
}

// Directions returns the directions currently registered for a kind, in
// General, Left, Right order.
func (m *PieceMap) Directions(piece chess.Piece) []chess.Direction {
	m.mustInit()
	dirs := maps.Keys(m.entries[piece])
	slices.Sort(dirs)
	return dirs
}

// Side returns the side the registry tracks.
func (m *PieceMap) Side() chess.Side {
	return m.side
}

// TrackOwnMove records a move by the tracked side: the direction key that
// currently maps to the origin square is rewritten to the destination.
// Moves of untracked kinds are ignored. Castling takes a dedicated branch
// because the rook's relocation is implicit in the notation.
func (m *PieceMap) TrackOwnMove(piece chess.Piece, from, to chess.Square, castle chess.Castle) {
	m.mustInit()
	if castle != chess.CastleNone {
		m.trackCastle(to, castle)
		return
	}
	dirs, ok := m.entries[piece]
	if !ok {
		return
	}
	for d, sq := range dirs {
		if sq == from {
			dirs[d] = to
			return
		}
	}
}

// trackCastle recomputes the castling rook's registered square from the
// king's destination and the castling side. With a single rook entry left
// it is assumed to be the one that castled; otherwise the entry on the
// king's destination rank on the castling side is updated.
func (m *PieceMap) trackCastle(kingTo chess.Square, castle chess.Castle) {
	rookTo := chess.NewSquare(kingTo.Col-1, kingTo.Rank)
	if castle == chess.CastleQueenside {
		rookTo = chess.NewSquare(kingTo.Col+1, kingTo.Rank)
	}

	rooks, ok := m.entries[chess.Rook]
	if !ok {
		return
	}
	if len(rooks) == 1 {
		for d := range rooks {
			rooks[d] = rookTo
		}
		return
	}
	for d, sq := range rooks {
		if sq.Rank != kingTo.Rank {
			continue
		}
		if castle == chess.CastleKingside && sq.Col > kingTo.Col {
			rooks[d] = rookTo
			return
		}
		if castle == chess.CastleQueenside && sq.Col < kingTo.Col {
			rooks[d] = rookTo
			return
		}
	}
}

// TrackOpponentCapture records the capture of one of the tracked side's
// pieces: the direction key mapping to the capture square is deleted.
// Captures of untracked kinds are ignored.
func (m *PieceMap) TrackOpponentCapture(captured chess.Piece, at chess.Square) {
	m.mustInit()
	dirs, ok := m.entries[captured]
	if !ok {
		return
	}
	for d, sq := range dirs {
		if sq == at {
			delete(dirs, d)
			if len(dirs) == 0 {
				delete(m.entries, captured)
			}
			return
		}
	}
}

func (m *PieceMap) mustInit() {
	if m.entries == nil {
		panic("dirmap: piece map used before initialization")
	}
}
