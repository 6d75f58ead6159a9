package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		attacker PieceType
		defender PieceType
		want     string // "attacker", "defender" or "none"
	}{
		{name: "spy beats marshal when attacking", attacker: Spy, defender: Marshal, want: "attacker"},
		{name: "marshal beats spy", attacker: Marshal, defender: Spy, want: "attacker"},
		{name: "spy loses to scout", attacker: Spy, defender: Scout, want: "defender"},
		{name: "bomb stops scout", attacker: Scout, defender: Bomb, want: "defender"},
		{name: "bomb stops marshal", attacker: Marshal, defender: Bomb, want: "defender"},
		{name: "miner defuses bomb", attacker: Miner, defender: Bomb, want: "attacker"},
		{name: "equal scouts trade", attacker: Scout, defender: Scout, want: "none"},
		{name: "equal marshals trade", attacker: Marshal, defender: Marshal, want: "none"},
		{name: "anything takes flag", attacker: Spy, defender: Flag, want: "attacker"},
		{name: "flag against flag trades", attacker: Flag, defender: Flag, want: "none"},
		{name: "moving bomb beats miner", attacker: Bomb, defender: Miner, want: "attacker"},
		{name: "miner beats scout", attacker: Miner, defender: Scout, want: "attacker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Piece{Type: tt.attacker, Owner: Player1}
			d := &Piece{Type: tt.defender, Owner: Player2}
			got := Resolve(a, d)
			switch tt.want {
			case "attacker":
				assert.Same(t, a, got)
			case "defender":
				assert.Same(t, d, got)
			default:
				assert.Nil(t, got)
			}
		})
	}
}

func TestRanks(t *testing.T) {
	assert.Equal(t, 0, Flag.Rank())
	assert.Equal(t, 10, Marshal.Rank())
	assert.Equal(t, 11, Bomb.Rank())
	assert.Equal(t, -1, Unknown.Rank())

	r := Ranks()
	r[Flag] = 99
	assert.Equal(t, 0, Flag.Rank(), "Ranks must return a copy")
}
