package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"stratego/internal/game"
)

// Hot-seat console: both players share one terminal.
//
//	<player> place <x> <y> <type>
//	<player> ready
//	<player> move <fromX> <fromY> <toX> <toY>
//	<player> show
//	<player> moves
func main() {
	m := game.NewMatch(game.DefaultTerrain())
	fmt.Println("Stratego 7x7. Commands: <player> place x y type | <player> ready | <player> move fx fy tx ty | <player> show | <player> moves | quit")
	run(m, os.Stdin, os.Stdout)
}

func run(m *game.Match, in io.Reader, out io.Writer) {
	reader := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "[%s, turn %d] > ", m.Phase, m.CurrentTurn)
		if !reader.Scan() {
			return
		}
		line := strings.TrimSpace(reader.Text())
		if line == "quit" {
			return
		}
		if line == "" {
			continue
		}
		msg, err := execute(m, strings.Fields(line))
		if err != nil {
			fmt.Fprintln(out, "Rejected:", err)
			continue
		}
		fmt.Fprint(out, msg)
	}
}

func execute(m *game.Match, parts []string) (string, error) {
	if len(parts) < 2 {
		return "", fmt.Errorf("need a player and a command")
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("bad player %q", parts[0])
	}
	p := game.Player(n)

	switch parts[1] {
	case "show":
		return render(m, p), nil
	case "moves":
		var sb strings.Builder
		for _, st := range game.LegalMoves(&m.Board, &m.Terrain, p) {
			fmt.Fprintf(&sb, "%d %d -> %d %d\n", st.From.X, st.From.Y, st.To.X, st.To.Y)
		}
		return sb.String(), nil
	case "ready":
		started, err := m.SetReady(p)
		if err != nil {
			return "", err
		}
		if started {
			return "Both players ready. Player 1 moves first.\n", nil
		}
		return fmt.Sprintf("Player %d is ready.\n", p), nil
	case "place":
		if len(parts) != 5 {
			return "", fmt.Errorf("usage: <player> place x y type")
		}
		args, err := ints(parts[2:4])
		if err != nil {
			return "", err
		}
		if err := m.Place(p, game.Coord{X: args[0], Y: args[1]}, game.PieceType(parts[4])); err != nil {
			return "", err
		}
		left, _ := json.Marshal(m.Remaining(p))
		return render(m, p) + fmt.Sprintf("Pieces left: %s\n", left), nil
	case "move":
		args, err := ints(parts[2:])
		if err != nil || len(args) != 4 {
			return "", fmt.Errorf("usage: <player> move fx fy tx ty")
		}
		res, err := m.Move(p, game.Coord{X: args[0], Y: args[1]}, game.Coord{X: args[2], Y: args[3]})
		if err != nil {
			return "", err
		}
		var sb strings.Builder
		if c := res.Combat; c != nil {
			if c.Winner == 0 {
				fmt.Fprintf(&sb, "%s and %s destroy each other.\n", c.Attacker, c.Defender)
			} else {
				fmt.Fprintf(&sb, "%s attacks %s: player %d wins the fight.\n", c.Attacker, c.Defender, c.Winner)
			}
		}
		if res.GameOver {
			fmt.Fprintf(&sb, "Game over! Player %d wins! New game, place your pieces.\n", res.Winner)
			return sb.String(), nil
		}
		sb.WriteString(render(m, m.CurrentTurn))
		return sb.String(), nil
	}
	return "", fmt.Errorf("unknown command %q", parts[1])
}

func ints(parts []string) ([]int, error) {
	out := make([]int, 0, len(parts))
	for _, s := range parts {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", s)
		}
		out = append(out, v)
	}
	return out, nil
}

var symbols = map[game.PieceType]string{
	game.Flag:    "F",
	game.Marshal: "M",
	game.Spy:     "S",
	game.Scout:   "C",
	game.Miner:   "N",
	game.Bomb:    "B",
	game.Unknown: "?",
}

// render draws the board as p sees it. Player 2 pieces are lower case.
func render(m *game.Match, p game.Player) string {
	view := m.View(p)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Board for player %d:\n   ", p)
	for y := 0; y < game.BoardSize; y++ {
		fmt.Fprintf(&sb, "%d ", y)
	}
	sb.WriteString("\n")
	for x := 0; x < game.BoardSize; x++ {
		fmt.Fprintf(&sb, "%d  ", x)
		for y := 0; y < game.BoardSize; y++ {
			c := game.Coord{X: x, Y: y}
			piece := view.At(c)
			switch {
			case piece != nil:
				s := symbols[piece.Type]
				if piece.Owner == game.Player2 {
					s = strings.ToLower(s)
				}
				sb.WriteString(s + " ")
			case m.Terrain.Blocked(c):
				sb.WriteString("# ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
