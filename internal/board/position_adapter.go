package board

import (
	"strings"

	dt "github.com/dylhunn/dragontoothmg"

	"github.com/keymove/keymove/internal/chess"
	"github.com/keymove/keymove/internal/errors"
)

// PositionAdapter implements Adapter on top of a dragontoothmg bitboard
// position. It carries no game history, only the position itself, which
// makes it the cheap choice for driving the resolver from a FEN.
type PositionAdapter struct {
	board    dt.Board
	side     chess.Side
	handlers []Handler
}

// NewPositionAdapter starts an adapter from a FEN string. Missing move
// counters are tolerated.
func NewPositionAdapter(fen string, side chess.Side) (*PositionAdapter, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || strings.Count(fields[0], "/") != 7 {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "%q", fen)
	}
	for len(fields) < 6 {
		fields = append(fields, "0", "1")
	}
	return &PositionAdapter{
		board: dt.ParseFen(strings.Join(fields[:6], " ")),
		side:  side,
	}, nil
}

// NewStartingPositionAdapter starts an adapter from the standard
// starting position.
func NewStartingPositionAdapter(side chess.Side) *PositionAdapter {
	return &PositionAdapter{board: dt.ParseFen(dt.Startpos), side: side}
}

// FEN returns the current position.
func (a *PositionAdapter) FEN() string {
	return a.board.ToFen()
}

// PieceSetup returns a snapshot of the current occupancy.
func (a *PositionAdapter) PieceSetup() chess.PieceSetup {
	setup := make(chess.PieceSetup)
	for idx := uint8(0); idx < 64; idx++ {
		if p := pieceAtIndex(&a.board.White, idx); p != chess.Empty {
			setup[squareFromIndex(idx)] = chess.Occupant{Side: chess.White, Piece: p}
		} else if p := pieceAtIndex(&a.board.Black, idx); p != chess.Empty {
			setup[squareFromIndex(idx)] = chess.Occupant{Side: chess.Black, Piece: p}
		}
	}
	return setup
}

// IsLegalMove reports whether some legal move connects the two squares
// in the current position.
func (a *PositionAdapter) IsLegalMove(from, to chess.Square) bool {
	f, t := indexFromSquare(from), indexFromSquare(to)
	for _, mv := range a.board.GenerateLegalMoves() {
		if mv.From() == f && mv.To() == t {
			return true
		}
	}
	return false
}

// IsPlayersTurn reports whether it is the player's move.
func (a *PositionAdapter) IsPlayersTurn() bool {
	return a.board.Wtomove == (a.side == chess.White)
}

// PremoveCandidates enumerates the moves the player could queue for when
// the turn passes back, by generating on a copy of the position with the
// side to move flipped.
func (a *PositionAdapter) PremoveCandidates() []chess.ConcreteMove {
	swapped := a.board
	swapped.Wtomove = !swapped.Wtomove

	own := &swapped.White
	if a.side == chess.Black {
		own = &swapped.Black
	}

	var moves []chess.ConcreteMove
	for _, mv := range swapped.GenerateLegalMoves() {
		moves = append(moves, chess.ConcreteMove{
			Piece:     pieceAtIndex(own, mv.From()),
			From:      squareFromIndex(mv.From()),
			To:        squareFromIndex(mv.To()),
			Promotion: pieceFromDT(mv.Promote()),
		})
	}
	return moves
}

// Play executes a move for whichever side is to move and notifies
// subscribers.
func (a *PositionAdapter) Play(m chess.ConcreteMove) error {
	f, t := indexFromSquare(m.From), indexFromSquare(m.To)
	promo := pieceToDT(m.Promotion)

	var chosen dt.Move
	found := false
	for _, mv := range a.board.GenerateLegalMoves() {
		if mv.From() == f && mv.To() == t && mv.Promote() == promo {
			chosen = mv
			found = true
			break
		}
	}
	if !found {
		return errors.Wrapf(errors.ErrIllegalMove, "play %s", m.UCI())
	}

	mover, enemy := &a.board.White, &a.board.Black
	side := chess.White
	if !a.board.Wtomove {
		mover, enemy = enemy, mover
		side = chess.Black
	}

	piece := pieceAtIndex(mover, f)
	ev := MoveEvent{
		Side:      side,
		Piece:     piece,
		From:      m.From,
		To:        m.To,
		Promotion: m.Promotion,
	}
	if captured := pieceAtIndex(enemy, t); captured != chess.Empty {
		ev.Captured = captured
	} else if piece == chess.Pawn && m.From.Col != m.To.Col {
		// Diagonal pawn move to an empty square is an en-passant capture.
		ev.Captured = chess.Pawn
	}
	if piece == chess.King {
		switch int(m.To.Col) - int(m.From.Col) {
		case 2:
			ev.Castle = chess.CastleKingside
		case -2:
			ev.Castle = chess.CastleQueenside
		}
	}

	a.board.Apply(chosen)
	a.dispatch(ev)
	return nil
}

// Subscribe registers a handler invoked for every executed move.
func (a *PositionAdapter) Subscribe(h Handler) {
	a.handlers = append(a.handlers, h)
}

func (a *PositionAdapter) dispatch(ev MoveEvent) {
	for _, h := range a.handlers {
		h(ev)
	}
}

// PlayerSide returns the side the player controls.
func (a *PositionAdapter) PlayerSide() chess.Side {
	return a.side
}

// Flipped reports whether the board is drawn from Black's side.
func (a *PositionAdapter) Flipped() bool {
	return a.side == chess.Black
}

func squareFromIndex(idx uint8) chess.Square {
	return chess.NewSquare(
		chess.Col('a'+idx%8),
		chess.Rank('1'+idx/8),
	)
}

func indexFromSquare(sq chess.Square) uint8 {
	return uint8(sq.Rank-chess.RankBase)*8 + uint8(sq.Col-chess.ColBase)
}

func pieceAtIndex(bb *dt.Bitboards, idx uint8) chess.Piece {
	mask := uint64(1) << idx
	switch {
	case bb.Pawns&mask != 0:
		return chess.Pawn
	case bb.Knights&mask != 0:
		return chess.Knight
	case bb.Bishops&mask != 0:
		return chess.Bishop
	case bb.Rooks&mask != 0:
		return chess.Rook
	case bb.Queens&mask != 0:
		return chess.Queen
	case bb.Kings&mask != 0:
		return chess.King
	}
	return chess.Empty
}

func pieceFromDT(p dt.Piece) chess.Piece {
	switch p {
	case dt.Pawn:
		return chess.Pawn
	case dt.Knight:
		return chess.Knight
	case dt.Bishop:
		return chess.Bishop
	case dt.Rook:
		return chess.Rook
	case dt.Queen:
		return chess.Queen
	case dt.King:
		return chess.King
	}
	return chess.Empty
}

func pieceToDT(p chess.Piece) dt.Piece {
	switch p {
	case chess.Pawn:
		return dt.Pawn
	case chess.Knight:
		return dt.Knight
	case chess.Bishop:
		return dt.Bishop
	case chess.Rook:
		return dt.Rook
	case chess.Queen:
		return dt.Queen
	case chess.King:
		return dt.King
	}
	return dt.Nothing
}
