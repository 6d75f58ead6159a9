package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTerrain(t *testing.T) {
	tr := DefaultTerrain()
	for _, c := range []Coord{{3, 0}, {3, 2}, {3, 4}, {3, 6}, {2, 2}, {2, 4}, {4, 2}, {4, 4}} {
		assert.Equal(t, Obstacle, tr.At(c), "expected obstacle at %v", c)
	}
	for _, c := range []Coord{{3, 1}, {3, 3}, {3, 5}} {
		assert.Equal(t, Plain, tr.At(c), "expected crossing at %v", c)
	}
	for _, c := range []Coord{{0, 0}, {0, 6}, {6, 0}, {6, 6}} {
		assert.Equal(t, HomeMarker, tr.At(c))
	}
}

func TestValidPlacement(t *testing.T) {
	tr := DefaultTerrain()
	var b Board
	b[1][1] = &Piece{Type: Scout, Owner: Player1}

	tests := []struct {
		name   string
		player Player
		at     Coord
		want   bool
	}{
		{name: "p1 home row", player: Player1, at: Coord{0, 3}, want: true},
		{name: "p1 home marker is fine", player: Player1, at: Coord{0, 0}, want: true},
		{name: "p1 third row", player: Player1, at: Coord{2, 3}, want: true},
		{name: "p1 river row", player: Player1, at: Coord{3, 1}, want: false},
		{name: "p1 enemy rows", player: Player1, at: Coord{5, 1}, want: false},
		{name: "p1 lake", player: Player1, at: Coord{2, 2}, want: false},
		{name: "p1 occupied", player: Player1, at: Coord{1, 1}, want: false},
		{name: "p2 home row", player: Player2, at: Coord{6, 6}, want: true},
		{name: "p2 fourth row", player: Player2, at: Coord{4, 0}, want: true},
		{name: "p2 lake", player: Player2, at: Coord{4, 4}, want: false},
		{name: "p2 in p1 rows", player: Player2, at: Coord{2, 0}, want: false},
		{name: "out of bounds", player: Player2, at: Coord{7, 0}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPlacement(&b, &tr, tt.player, tt.at))
		})
	}
}

func TestValidMove(t *testing.T) {
	tr := DefaultTerrain()

	tests := []struct {
		name  string
		setup func(b *Board)
		from  Coord
		to    Coord
		want  bool
	}{
		{
			name:  "one step forward",
			setup: func(b *Board) { b[1][1] = &Piece{Type: Miner, Owner: Player1} },
			from:  Coord{1, 1}, to: Coord{2, 1}, want: true,
		},
		{
			name:  "diagonal step",
			setup: func(b *Board) { b[1][1] = &Piece{Type: Miner, Owner: Player1} },
			from:  Coord{1, 1}, to: Coord{2, 0}, want: false,
		},
		{
			name:  "two steps for non-scout",
			setup: func(b *Board) { b[1][1] = &Piece{Type: Marshal, Owner: Player1} },
			from:  Coord{1, 1}, to: Coord{3, 1}, want: false,
		},
		{
			name:  "into lake",
			setup: func(b *Board) { b[1][2] = &Piece{Type: Marshal, Owner: Player1} },
			from:  Coord{1, 2}, to: Coord{2, 2}, want: false,
		},
		{
			name: "onto friend",
			setup: func(b *Board) {
				b[1][1] = &Piece{Type: Marshal, Owner: Player1}
				b[1][2] = &Piece{Type: Flag, Owner: Player1}
			},
			from: Coord{1, 1}, to: Coord{1, 2}, want: false,
		},
		{
			name: "onto enemy",
			setup: func(b *Board) {
				b[3][1] = &Piece{Type: Marshal, Owner: Player1}
				b[4][1] = &Piece{Type: Spy, Owner: Player2}
			},
			from: Coord{3, 1}, to: Coord{4, 1}, want: true,
		},
		{
			name:  "bomb may step",
			setup: func(b *Board) { b[0][3] = &Piece{Type: Bomb, Owner: Player1} },
			from:  Coord{0, 3}, to: Coord{1, 3}, want: true,
		},
		{
			name:  "scout long run",
			setup: func(b *Board) { b[0][1] = &Piece{Type: Scout, Owner: Player1} },
			from:  Coord{0, 1}, to: Coord{6, 1}, want: true,
		},
		{
			name:  "scout through lake",
			setup: func(b *Board) { b[1][2] = &Piece{Type: Scout, Owner: Player1} },
			from:  Coord{1, 2}, to: Coord{5, 2}, want: false,
		},
		{
			name:  "scout sideways through river obstacle",
			setup: func(b *Board) { b[3][1] = &Piece{Type: Scout, Owner: Player1} },
			from:  Coord{3, 1}, to: Coord{3, 3}, want: false,
		},
		{
			name:  "scout diagonal",
			setup: func(b *Board) { b[0][1] = &Piece{Type: Scout, Owner: Player1} },
			from:  Coord{0, 1}, to: Coord{1, 2}, want: false,
		},
		{
			name:  "scout zero distance",
			setup: func(b *Board) { b[0][1] = &Piece{Type: Scout, Owner: Player1} },
			from:  Coord{0, 1}, to: Coord{0, 1}, want: false,
		},
		{
			name: "scout cannot jump enemy",
			setup: func(b *Board) {
				b[0][1] = &Piece{Type: Scout, Owner: Player1}
				b[4][1] = &Piece{Type: Bomb, Owner: Player2}
			},
			from: Coord{0, 1}, to: Coord{5, 1}, want: false,
		},
		{
			name: "scout attacks at range",
			setup: func(b *Board) {
				b[0][1] = &Piece{Type: Scout, Owner: Player1}
				b[5][1] = &Piece{Type: Flag, Owner: Player2}
			},
			from: Coord{0, 1}, to: Coord{5, 1}, want: true,
		},
		{
			name: "scout cannot jump friend",
			setup: func(b *Board) {
				b[0][3] = &Piece{Type: Scout, Owner: Player1}
				b[1][3] = &Piece{Type: Flag, Owner: Player1}
			},
			from: Coord{0, 3}, to: Coord{2, 3}, want: false,
		},
		{
			name:  "empty origin",
			setup: func(b *Board) {},
			from:  Coord{0, 0}, to: Coord{0, 1}, want: false,
		},
		{
			name:  "off board",
			setup: func(b *Board) { b[6][6] = &Piece{Type: Scout, Owner: Player2} },
			from:  Coord{6, 6}, to: Coord{7, 6}, want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Board
			tt.setup(&b)
			assert.Equal(t, tt.want, ValidMove(&b, &tr, tt.from, tt.to))
		})
	}
}
