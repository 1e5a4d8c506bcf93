// keymove resolves free-form chess move input (algebraic or coordinate
// notation) against a live position and plays the resolved move.
//
// The player's moves are typed in any notation the parser accepts; when
// it is the opponent's turn, their reply is entered in coordinate form
// ("e7e5"). A line starting with '?' shows how the rest of the line
// would resolve as a premove without playing anything.
package main

import (
	"bufio"
	stderrors "errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/keymove/keymove/internal/board"
	"github.com/keymove/keymove/internal/chess"
	"github.com/keymove/keymove/internal/errors"
	"github.com/keymove/keymove/internal/input"
	"github.com/keymove/keymove/internal/parser"
	"github.com/keymove/keymove/internal/resolver"
)

var (
	fen      = flag.String("fen", "", "Starting FEN (default: initial position)")
	sideFlag = flag.String("side", "white", "Side the player controls: white or black")
	useGame  = flag.Bool("game", false, "Track a full game (notnil/chess) instead of a bare position")
)

func main() {
	flag.Parse()

	side, err := parseSide(*sideFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	adapter, err := newAdapter(side)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	session := input.NewSession(adapter)

	scanner := bufio.NewScanner(os.Stdin)
	prompt(adapter)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			prompt(adapter)
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}

		switch {
		case strings.HasPrefix(line, "?"):
			showPremove(adapter, strings.TrimSpace(line[1:]))
		case adapter.IsPlayersTurn():
			playResolved(session, adapter, line)
		default:
			playOpponent(adapter, line)
		}
		prompt(adapter)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "reading input: %v\n", err)
		os.Exit(1)
	}
}

func parseSide(s string) (chess.Side, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("unknown side %q (want white or black)", s)
}

func newAdapter(side chess.Side) (board.Adapter, error) {
	if *useGame {
		if *fen == "" {
			return board.NewGameAdapter(side), nil
		}
		return board.NewGameAdapterFEN(*fen, side)
	}
	if *fen == "" {
		return board.NewStartingPositionAdapter(side), nil
	}
	return board.NewPositionAdapter(*fen, side)
}

func prompt(adapter board.Adapter) {
	turn := "opponent"
	if adapter.IsPlayersTurn() {
		turn = "you"
	}
	fmt.Printf("[%s to move] > ", turn)
}

// playResolved resolves the player's text and plays the single move it
// names, reporting ambiguity or illegality otherwise.
func playResolved(session *input.Session, adapter board.Adapter, text string) {
	m, err := session.ResolveText(text)
	if err != nil {
		reportResolveError(err)
		return
	}
	if err := adapter.Play(m); err != nil {
		fmt.Fprintf(os.Stderr, "play: %v\n", err)
		return
	}
	fmt.Printf("played %s\n", m.UCI())
}

// playOpponent applies the opponent's reply, which must be given in
// coordinate form so no disambiguation is needed.
func playOpponent(adapter board.Adapter, text string) {
	templates := parser.Parse(text)
	setup := adapter.PieceSetup()
	for _, t := range templates {
		if t.From.Col.Any || t.From.Rank.Any || t.To.Col.Any || t.To.Rank.Any {
			continue
		}
		from := chess.NewSquare(t.From.Col.Col, t.From.Rank.Rank)
		to := chess.NewSquare(t.To.Col.Col, t.To.Rank.Rank)
		occ, ok := setup[from]
		if !ok {
			continue
		}
		m := chess.ConcreteMove{Piece: occ.Piece, From: from, To: to, Promotion: t.Promotion}
		if err := adapter.Play(m); err != nil {
			fmt.Fprintf(os.Stderr, "play: %v\n", err)
			return
		}
		fmt.Printf("opponent played %s\n", m.UCI())
		return
	}
	fmt.Fprintf(os.Stderr, "opponent move must be in coordinate form, e.g. e7e5\n")
}

// showPremove reports how text would resolve as a premove against the
// adapter's premove candidates, without playing anything.
func showPremove(adapter board.Adapter, text string) {
	templates := parser.Parse(text)
	if len(templates) == 0 {
		fmt.Printf("premove %q: unrecognized\n", text)
		return
	}
	moves := resolver.ResolvePremoves(templates, adapter.PremoveCandidates())
	switch len(moves) {
	case 0:
		fmt.Printf("premove %q: no candidate\n", text)
	case 1:
		fmt.Printf("premove %q: %s\n", text, moves[0].UCI())
	default:
		fmt.Printf("premove %q: ambiguous (%d candidates)\n", text, len(moves))
	}
}

func reportResolveError(err error) {
	switch {
	case stderrors.Is(err, errors.ErrUnrecognized):
		fmt.Println("unrecognized input")
	case stderrors.Is(err, errors.ErrAmbiguous):
		fmt.Printf("ambiguous: %v\n", err)
	default:
		fmt.Printf("illegal: %v\n", err)
	}
}
