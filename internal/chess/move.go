package chess

// MoveTemplate is a partially-specified move pattern produced by parsing,
// prior to board-aware resolution. A template expresses intent that has
// not yet been validated against a position.
type MoveTemplate struct {
	Piece     PiecePattern
	From      SquarePattern
	To        SquarePattern
	Promotion Piece // Empty when the input named no promotion piece
}

// ConcreteMove is a fully resolved move. It is still not guaranteed legal
// until confirmed by a legality oracle.
type ConcreteMove struct {
	Piece     Piece
	From      Square
	To        Square
	Promotion Piece // Empty when the move is not a promotion
}

// UCI returns the move in long algebraic coordinate form, e.g. "e2e4" or
// "e7e8q" for a promotion.
func (m ConcreteMove) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(m.Promotion.Letter())
	}
	return s
}

// String returns the UCI form of the move.
func (m ConcreteMove) String() string {
	return m.UCI()
}
