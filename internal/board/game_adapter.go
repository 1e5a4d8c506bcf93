package board

import (
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/keymove/keymove/internal/chess"
	"github.com/keymove/keymove/internal/errors"
)

// GameAdapter implements Adapter on top of a notnil/chess game, which
// supplies rules, legality, and move application.
type GameAdapter struct {
	game     *nchess.Game
	side     chess.Side
	handlers []Handler
}

// NewGameAdapter starts an adapter from the standard starting position.
func NewGameAdapter(side chess.Side) *GameAdapter {
	return &GameAdapter{game: nchess.NewGame(), side: side}
}

// NewGameAdapterFEN starts an adapter from an arbitrary position.
func NewGameAdapterFEN(fen string, side chess.Side) (*GameAdapter, error) {
	opt, err := nchess.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "%q", fen)
	}
	return &GameAdapter{game: nchess.NewGame(opt), side: side}, nil
}

// Game exposes the wrapped game for callers that drive the opponent.
func (a *GameAdapter) Game() *nchess.Game {
	return a.game
}

// PieceSetup returns a snapshot of the current occupancy.
func (a *GameAdapter) PieceSetup() chess.PieceSetup {
	setup := make(chess.PieceSetup)
	b := a.game.Position().Board()
	for sq := nchess.A1; sq <= nchess.H8; sq++ {
		p := b.Piece(sq)
		if p == nchess.NoPiece {
			continue
		}
		setup[squareFromLib(sq)] = chess.Occupant{
			Side:  sideFromLib(p.Color()),
			Piece: pieceFromLib(p.Type()),
		}
	}
	return setup
}

// IsLegalMove reports whether some legal move connects the two squares
// in the current position.
func (a *GameAdapter) IsLegalMove(from, to chess.Square) bool {
	s1, s2 := squareToLib(from), squareToLib(to)
	for _, mv := range a.game.ValidMoves() {
		if mv.S1() == s1 && mv.S2() == s2 {
			return true
		}
	}
	return false
}

// IsPlayersTurn reports whether it is the player's move.
func (a *GameAdapter) IsPlayersTurn() bool {
	return sideFromLib(a.game.Position().Turn()) == a.side
}

// PremoveCandidates enumerates the moves the player could queue for when
// the turn passes back. The current position's side to move is swapped
// (and any en-passant square dropped) before generating, since the
// library only generates for the side whose turn it is.
func (a *GameAdapter) PremoveCandidates() []chess.ConcreteMove {
	fields := strings.Fields(a.game.Position().String())
	if len(fields) < 4 {
		return nil
	}
	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}
	fields[3] = "-"

	opt, err := nchess.FEN(strings.Join(fields, " "))
	if err != nil {
		return nil
	}
	swapped := nchess.NewGame(opt)
	b := swapped.Position().Board()

	var moves []chess.ConcreteMove
	for _, mv := range swapped.ValidMoves() {
		moves = append(moves, chess.ConcreteMove{
			Piece:     pieceFromLib(b.Piece(mv.S1()).Type()),
			From:      squareFromLib(mv.S1()),
			To:        squareFromLib(mv.S2()),
			Promotion: pieceFromLib(mv.Promo()),
		})
	}
	return moves
}

// Play executes a move for whichever side is to move and notifies
// subscribers.
func (a *GameAdapter) Play(m chess.ConcreteMove) error {
	s1, s2 := squareToLib(m.From), squareToLib(m.To)
	promo := pieceToLib(m.Promotion)

	var chosen *nchess.Move
	for _, mv := range a.game.ValidMoves() {
		if mv.S1() == s1 && mv.S2() == s2 && mv.Promo() == promo {
			chosen = mv
			break
		}
	}
	if chosen == nil {
		return errors.Wrapf(errors.ErrIllegalMove, "play %s", m.UCI())
	}

	b := a.game.Position().Board()
	ev := MoveEvent{
		Side:      sideFromLib(a.game.Position().Turn()),
		Piece:     pieceFromLib(b.Piece(s1).Type()),
		From:      m.From,
		To:        m.To,
		Promotion: m.Promotion,
	}
	if captured := b.Piece(s2); captured != nchess.NoPiece {
		ev.Captured = pieceFromLib(captured.Type())
	} else if chosen.HasTag(nchess.EnPassant) {
		ev.Captured = chess.Pawn
	}
	if chosen.HasTag(nchess.KingSideCastle) {
		ev.Castle = chess.CastleKingside
	} else if chosen.HasTag(nchess.QueenSideCastle) {
		ev.Castle = chess.CastleQueenside
	}

	if err := a.game.Move(chosen); err != nil {
		return errors.Wrap(err, "apply move")
	}
	a.dispatch(ev)
	return nil
}

// Subscribe registers a handler invoked for every executed move.
func (a *GameAdapter) Subscribe(h Handler) {
	a.handlers = append(a.handlers, h)
}

func (a *GameAdapter) dispatch(ev MoveEvent) {
	for _, h := range a.handlers {
		h(ev)
	}
}

// PlayerSide returns the side the player controls.
func (a *GameAdapter) PlayerSide() chess.Side {
	return a.side
}

// Flipped reports whether the board is drawn from Black's side.
func (a *GameAdapter) Flipped() bool {
	return a.side == chess.Black
}

func sideFromLib(c nchess.Color) chess.Side {
	if c == nchess.White {
		return chess.White
	}
	return chess.Black
}

func squareFromLib(sq nchess.Square) chess.Square {
	return chess.NewSquare(
		chess.Col('a'+byte(sq.File())),
		chess.Rank('1'+byte(sq.Rank())),
	)
}

func squareToLib(sq chess.Square) nchess.Square {
	return nchess.NewSquare(
		nchess.File(sq.Col-chess.ColBase),
		nchess.Rank(sq.Rank-chess.RankBase),
	)
}

func pieceFromLib(pt nchess.PieceType) chess.Piece {
	switch pt {
	case nchess.Pawn:
		return chess.Pawn
	case nchess.Knight:
		return chess.Knight
	case nchess.Bishop:
		return chess.Bishop
	case nchess.Rook:
		return chess.Rook
	case nchess.Queen:
		return chess.Queen
	case nchess.King:
		return chess.King
	}
	return chess.Empty
}

func pieceToLib(p chess.Piece) nchess.PieceType {
	switch p {
	case chess.Pawn:
		return nchess.Pawn
	case chess.Knight:
		return nchess.Knight
	case chess.Bishop:
		return nchess.Bishop
	case chess.Rook:
		return nchess.Rook
	case chess.Queen:
		return nchess.Queen
	case chess.King:
		return nchess.King
	}
	return nchess.NoPieceType
}
