package chess

// The pattern types below express "literal or any" per axis as explicit
// tagged values. Notation text never reaches a string-pattern engine, so
// meta-characters in user input cannot change matching behaviour.

// ColPattern matches a file: either one literal file or any file.
type ColPattern struct {
	Any bool
	Col Col
}

// AnyCol returns a pattern matching every file.
func AnyCol() ColPattern {
	return ColPattern{Any: true}
}

// OneCol returns a pattern matching only the given file.
func OneCol(c Col) ColPattern {
	return ColPattern{Col: c}
}

// Matches reports whether the pattern matches file c.
func (p ColPattern) Matches(c Col) bool {
	return p.Any || p.Col == c
}

// RankPattern matches a rank: either one literal rank or any rank.
type RankPattern struct {
	Any  bool
	Rank Rank
}

// AnyRank returns a pattern matching every rank.
func AnyRank() RankPattern {
	return RankPattern{Any: true}
}

// OneRank returns a pattern matching only the given rank.
func OneRank(r Rank) RankPattern {
	return RankPattern{Rank: r}
}

// Matches reports whether the pattern matches rank r.
func (p RankPattern) Matches(r Rank) bool {
	return p.Any || p.Rank == r
}

// PiecePattern matches a piece kind: either one literal kind or any kind.
type PiecePattern struct {
	Any   bool
	Piece Piece
}

// AnyPiece returns a pattern matching every piece kind.
func AnyPiece() PiecePattern {
	return PiecePattern{Any: true}
}

// OnePiece returns a pattern matching only the given piece kind.
func OnePiece(p Piece) PiecePattern {
	return PiecePattern{Piece: p}
}

// Matches reports whether the pattern matches piece kind p.
func (p PiecePattern) Matches(piece Piece) bool {
	return p.Any || p.Piece == piece
}

// SquarePattern matches a square, each axis independently.
type SquarePattern struct {
	Col  ColPattern
	Rank RankPattern
}

// AnySquare returns a pattern matching every square.
func AnySquare() SquarePattern {
	return SquarePattern{Col: AnyCol(), Rank: AnyRank()}
}

// ExactSquare returns a pattern matching only the given square.
func ExactSquare(sq Square) SquarePattern {
	return SquarePattern{Col: OneCol(sq.Col), Rank: OneRank(sq.Rank)}
}

// Matches reports whether the pattern matches square sq.
func (p SquarePattern) Matches(sq Square) bool {
	return p.Col.Matches(sq.Col) && p.Rank.Matches(sq.Rank)
}
