// Package chess provides the square and piece primitives shared by the
// move-input core: squares, piece kinds, sides, directions, and the
// pattern types used to express partially-specified moves.
package chess

// Side represents the colour of a piece or player.
type Side int

const (
	White Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposing side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Piece represents a chess piece kind.
type Piece int

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single lowercase letter for a piece kind, as used in
// UCI promotion suffixes. Empty maps to a space.
func (p Piece) Letter() byte {
	letters := []byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter returns the piece kind for a letter, accepting either
// case. Unrecognized letters yield Empty.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'p', 'P':
		return Pawn
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	case 'k', 'K':
		return King
	}
	return Empty
}

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  Rank = '1'
	ColBase   Col  = 'a'
	FirstRank Rank = RankBase
	LastRank  Rank = RankBase + BoardSize - 1
	FirstCol  Col  = ColBase
	LastCol   Col  = ColBase + BoardSize - 1
)

// ValidCol reports whether c is a valid file character.
func ValidCol(c byte) bool {
	return Col(c) >= FirstCol && Col(c) <= LastCol
}

// ValidRank reports whether c is a valid rank character.
func ValidRank(c byte) bool {
	return Rank(c) >= FirstRank && Rank(c) <= LastRank
}

// Castle identifies a castling move, needed because castling notation
// carries the rook's relocation only implicitly.
type Castle int

const (
	CastleNone Castle = iota
	CastleKingside
	CastleQueenside
)

// Direction is a coarse classifier of a piece's role among same-kind
// pieces, from the acting player's own visual perspective. It flips with
// board orientation rather than following absolute coordinates.
type Direction int

const (
	General Direction = iota
	Left
	Right
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "General"
	}
}
