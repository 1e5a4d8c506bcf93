package chess

// Square is one of the 64 board squares, identified by file and rank
// characters ('a'-'h', '1'-'8'). The zero value is not a valid square.
type Square struct {
	Col  Col
	Rank Rank
}

// NewSquare builds a square from file and rank characters.
func NewSquare(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// SquareFromString parses a two-character square name such as "e4".
func SquareFromString(s string) (Square, bool) {
	if len(s) != 2 || !ValidCol(s[0]) || !ValidRank(s[1]) {
		return Square{}, false
	}
	return Square{Col: Col(s[0]), Rank: Rank(s[1])}, true
}

// String returns the square name, e.g. "e4".
func (s Square) String() string {
	return string([]byte{byte(s.Col), byte(s.Rank)})
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return ValidCol(byte(s.Col)) && ValidRank(byte(s.Rank))
}

// CompareSquares orders squares by (file, rank). The ordering exists for
// coordinate math and deterministic iteration, not comparison semantics.
func CompareSquares(a, b Square) int {
	if a.Col != b.Col {
		return int(a.Col) - int(b.Col)
	}
	return int(a.Rank) - int(b.Rank)
}

// Occupant is a piece together with its owning side.
type Occupant struct {
	Side  Side
	Piece Piece
}

// PieceSetup maps every occupied square to its occupant. It is a
// read-only snapshot supplied by a board adapter.
type PieceSetup map[Square]Occupant
