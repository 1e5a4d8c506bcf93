// Package parser turns free-form move text into move templates.
//
// Input may be UCI-like coordinate notation ("e2e4", "e7e8q") or loose
// algebraic notation ("Nf3", "bxc3", "O-O"). Parsing is deliberately
// permissive: a single input can match more than one grammar (e.g. "bxc3"
// reads as both a pawn capture and a bishop move), in which case every
// matching template is emitted and the ambiguity is deferred to the
// resolver. Malformed input yields zero templates rather than an error.
package parser

import (
	"strings"

	"github.com/keymove/keymove/internal/chess"
)

// Parse returns every move template the text can be read as.
func Parse(text string) []chess.MoveTemplate {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var templates []chess.MoveTemplate
	if t, ok := parseUCI(text); ok {
		templates = append(templates, t)
	}
	templates = append(templates, parseAlgebraic(text)...)
	return templates
}

// stripSeparators removes spaces and dashes, which coordinate input may
// carry ("e2-e4", "e2 e4").
func stripSeparators(text string) string {
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if text[i] == ' ' || text[i] == '-' {
			continue
		}
		b.WriteByte(text[i])
	}
	return b.String()
}

// parseUCI recognizes coordinate notation: two square names, optionally
// followed by a promotion letter. The resulting template carries a
// wildcard piece; the occupant of the origin square decides the kind.
func parseUCI(text string) (chess.MoveTemplate, bool) {
	s := stripSeparators(text)
	if len(s) != 4 && len(s) != 5 {
		return chess.MoveTemplate{}, false
	}

	from, ok := chess.SquareFromString(s[:2])
	if !ok {
		return chess.MoveTemplate{}, false
	}
	to, ok := chess.SquareFromString(s[2:4])
	if !ok {
		return chess.MoveTemplate{}, false
	}

	t := chess.MoveTemplate{
		Piece: chess.AnyPiece(),
		From:  chess.ExactSquare(from),
		To:    chess.ExactSquare(to),
	}
	if len(s) == 5 {
		promo := chess.PieceFromLetter(s[4])
		if promo == chess.Empty {
			return chess.MoveTemplate{}, false
		}
		t.Promotion = promo
	}
	return t, true
}

// isUCIShape reports whether the text already matches the strict
// coordinate shape, in which case the algebraic grammars must not
// double-parse it (e.g. "e2e4" is not a pawn move to e4 from file e2).
func isUCIShape(text string) bool {
	_, ok := parseUCI(text)
	return ok
}

func parseAlgebraic(text string) []chess.MoveTemplate {
	if isUCIShape(text) {
		return nil
	}

	if long, ok := parseCastle(text); ok {
		return castleTemplates(long)
	}

	var templates []chess.MoveTemplate
	if t, ok := parsePawnMove(text); ok {
		templates = append(templates, t)
	}
	if t, ok := parsePieceMove(text); ok {
		templates = append(templates, t)
	}
	return templates
}

// parseCastle recognizes the O-O / O-O-O families case-insensitively,
// including the 00 / 000 digit forms. A trailing check marker is allowed.
func parseCastle(text string) (long, ok bool) {
	s := strings.ToLower(stripSeparators(text))
	for len(s) > 0 && isCheck(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	switch s {
	case "oo", "00":
		return false, true
	case "ooo", "000":
		return true, true
	}
	return false, false
}

// castleTemplates emits one template per side: the caller's colour is
// unknown at parse time and the resolver settles it against the board.
func castleTemplates(long bool) []chess.MoveTemplate {
	toCol := chess.Col('g')
	if long {
		toCol = 'c'
	}
	var templates []chess.MoveTemplate
	for _, rank := range []chess.Rank{'1', '8'} {
		templates = append(templates, chess.MoveTemplate{
			Piece: chess.OnePiece(chess.King),
			From:  chess.ExactSquare(chess.NewSquare('e', rank)),
			To:    chess.ExactSquare(chess.NewSquare(toCol, rank)),
		})
	}
	return templates
}

func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':'
}

func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// isPromotable reports whether p is a piece a pawn may promote to.
func isPromotable(p chess.Piece) bool {
	switch p {
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		return true
	}
	return false
}

// parsePawnMove recognizes the pawn grammar: optional origin file,
// optional capture marker, destination file+rank, optional en-passant
// marker, optional promotion, optional trailing check marker.
//
// Same-file-to-same-file shapes ("bb4") are rejected outright: with a
// lowercase piece letter they cannot be told apart from bishop moves.
func parsePawnMove(text string) (chess.MoveTemplate, bool) {
	pos := 0
	s := text

	current := func() byte {
		if pos >= len(s) {
			return 0
		}
		return s[pos]
	}
	advance := func() {
		if pos < len(s) {
			pos++
		}
	}

	fromCol := chess.AnyCol()
	var origin chess.Col

	// The origin file and the capture marker are each optional. A bare
	// leading marker ("xd5") keeps the origin a wildcard; an origin file is
	// present when the first file character is followed by a capture marker
	// or another file rather than a rank.
	if isCapture(current()) {
		advance()
	} else {
		if !chess.ValidCol(current()) {
			return chess.MoveTemplate{}, false
		}
		if pos+1 < len(s) && (isCapture(s[pos+1]) || chess.ValidCol(s[pos+1])) {
			origin = chess.Col(current())
			fromCol = chess.OneCol(origin)
			advance()
			if isCapture(current()) {
				advance()
			}
		}
	}

	if !chess.ValidCol(current()) {
		return chess.MoveTemplate{}, false
	}
	toCol := chess.Col(current())
	advance()

	if !chess.ValidRank(current()) {
		return chess.MoveTemplate{}, false
	}
	toRank := chess.Rank(current())
	advance()

	if !fromCol.Any && origin == toCol {
		return chess.MoveTemplate{}, false
	}

	// Optional en-passant marker.
	rest := s[pos:]
	for _, marker := range []string{"e.p.", "ep"} {
		if strings.HasPrefix(rest, marker) {
			pos += len(marker)
			rest = s[pos:]
			break
		}
	}

	// Optional promotion, with or without the '=' separator.
	promotion := chess.Empty
	if current() == '=' {
		advance()
		promotion = chess.PieceFromLetter(current())
		if !isPromotable(promotion) {
			return chess.MoveTemplate{}, false
		}
		advance()
	} else if p := chess.PieceFromLetter(current()); isPromotable(p) {
		promotion = p
		advance()
	}

	for isCheck(current()) {
		advance()
	}
	if pos != len(s) {
		return chess.MoveTemplate{}, false
	}

	return chess.MoveTemplate{
		Piece:     chess.OnePiece(chess.Pawn),
		From:      chess.SquarePattern{Col: fromCol, Rank: chess.AnyRank()},
		To:        chess.ExactSquare(chess.NewSquare(toCol, toRank)),
		Promotion: promotion,
	}, true
}

// parsePieceMove recognizes the piece grammar: piece letter, optional
// origin file, optional origin rank, optional capture marker, destination
// file, optional destination rank. The destination suffix is parsed from
// the end so that "Nf3" reads as a destination, not an origin.
func parsePieceMove(text string) (chess.MoveTemplate, bool) {
	if len(text) < 2 {
		return chess.MoveTemplate{}, false
	}

	piece := chess.PieceFromLetter(text[0])
	if piece == chess.Empty || piece == chess.Pawn {
		return chess.MoveTemplate{}, false
	}

	s := text[1:]
	toRank := chess.AnyRank()
	if chess.ValidRank(s[len(s)-1]) {
		toRank = chess.OneRank(chess.Rank(s[len(s)-1]))
		s = s[:len(s)-1]
	}
	if len(s) == 0 || !chess.ValidCol(s[len(s)-1]) {
		return chess.MoveTemplate{}, false
	}
	toCol := chess.Col(s[len(s)-1])
	s = s[:len(s)-1]

	// What remains is the origin qualifier: [file][rank] then an optional
	// capture marker.
	if len(s) > 0 && isCapture(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	fromCol := chess.AnyCol()
	fromRank := chess.AnyRank()
	if len(s) > 0 && chess.ValidCol(s[0]) {
		fromCol = chess.OneCol(chess.Col(s[0]))
		s = s[1:]
	}
	if len(s) > 0 && chess.ValidRank(s[0]) {
		fromRank = chess.OneRank(chess.Rank(s[0]))
		s = s[1:]
	}
	if len(s) != 0 {
		return chess.MoveTemplate{}, false
	}

	return chess.MoveTemplate{
		Piece: chess.OnePiece(piece),
		From:  chess.SquarePattern{Col: fromCol, Rank: fromRank},
		To:    chess.SquarePattern{Col: chess.OneCol(toCol), Rank: toRank},
	}, true
}
