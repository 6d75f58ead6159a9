package game

import "fmt"

// Player is a seat number inside a match: 1 or 2.
type Player int

const (
	Player1 Player = 1
	Player2 Player = 2
)

func (p Player) Valid() bool { return p == Player1 || p == Player2 }

// Opponent returns the other seat.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

type PieceType string

const (
	Flag    PieceType = "flag"
	Marshal PieceType = "marshal"
	Spy     PieceType = "spy"
	Scout   PieceType = "scout"
	Miner   PieceType = "miner"
	Bomb    PieceType = "bomb"

	// Unknown is only ever produced by View for hidden opponent pieces.
	Unknown PieceType = "unknown"
)

// PieceTypes lists the placeable types in display order.
var PieceTypes = []PieceType{Flag, Marshal, Spy, Scout, Miner, Bomb}

// InitialCounts is the per-player inventory at the start of placement.
var InitialCounts = map[PieceType]int{
	Flag:    1,
	Marshal: 1,
	Spy:     1,
	Scout:   2,
	Miner:   2,
	Bomb:    2,
}

// PiecesPerPlayer is the sum of InitialCounts.
const PiecesPerPlayer = 9

var ranks = map[PieceType]int{
	Flag:    0,
	Spy:     1,
	Scout:   2,
	Miner:   3,
	Marshal: 10,
	Bomb:    11,
}

// Rank returns the combat strength of t, -1 for unknown types.
func (t PieceType) Rank() int {
	if r, ok := ranks[t]; ok {
		return r
	}
	return -1
}

func (t PieceType) Valid() bool {
	_, ok := InitialCounts[t]
	return ok
}

// Ranks returns a copy of the rank table.
func Ranks() map[PieceType]int {
	out := make(map[PieceType]int, len(ranks))
	for k, v := range ranks {
		out[k] = v
	}
	return out
}

type Piece struct {
	Type     PieceType `json:"type"`
	Owner    Player    `json:"player"`
	Revealed bool      `json:"visible"`
}

type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Board is indexed [x][y]. Empty cells are nil.
type Board [BoardSize][BoardSize]*Piece

func (b *Board) At(c Coord) *Piece { return b[c.X][c.Y] }

func (b *Board) set(c Coord, p *Piece) { b[c.X][c.Y] = p }

// Count returns how many pieces owner has on the board.
func (b *Board) Count(owner Player) int {
	n := 0
	for x := range b {
		for y := range b[x] {
			if p := b[x][y]; p != nil && p.Owner == owner {
				n++
			}
		}
	}
	return n
}

type Phase string

const (
	PhasePlacement Phase = "placement"
	PhasePlaying   Phase = "playing"
)
