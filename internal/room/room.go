package room

import (
	"errors"
	"sync"
	"time"

	"stratego/internal/game"
)

var (
	ErrLobbyNotFound  = errors.New("lobby not found")
	ErrLobbyFull      = errors.New("lobby is full")
	ErrNotInLobby     = errors.New("not in a lobby")
	ErrUnknownCommand = errors.New("unknown command")
)

// MaxPlayers is the seat count of every lobby.
const MaxPlayers = 2

type Seat struct {
	ConnID string      `json:"-"`
	Number game.Player `json:"playerNumber"`
}

// Lobby holds one match and its seated connections. All fields are guarded by
// mu; a closed lobby has been removed from the store and accepts nothing.
type Lobby struct {
	mu sync.Mutex

	ID        string
	Players   []Seat
	Match     *game.Match
	CreatedAt time.Time
	closed    bool
}

// Summary is a read-only snapshot for listings.
type Summary struct {
	ID        string        `json:"id"`
	Players   []game.Player `json:"players"`
	Phase     game.Phase    `json:"phase"`
	CreatedAt time.Time     `json:"createdAt"`
}

type Store interface {
	// InsertLobby stores l unless its ID is taken and reports whether it did.
	InsertLobby(l *Lobby) bool
	GetLobby(id string) (*Lobby, bool)
	DeleteLobby(id string)
	ListLobbies() []*Lobby
}

func newLobby(id string, terrain game.TerrainGrid) *Lobby {
	return &Lobby{
		ID:        id,
		Match:     game.NewMatch(terrain),
		CreatedAt: time.Now(),
	}
}

func (l *Lobby) seatOf(connID string) (game.Player, bool) {
	for _, s := range l.Players {
		if s.ConnID == connID {
			return s.Number, true
		}
	}
	return 0, false
}

// freeSeat returns the lowest unoccupied player number.
func (l *Lobby) freeSeat() (game.Player, bool) {
	for _, p := range []game.Player{game.Player1, game.Player2} {
		taken := false
		for _, s := range l.Players {
			if s.Number == p {
				taken = true
				break
			}
		}
		if !taken {
			return p, true
		}
	}
	return 0, false
}

func (l *Lobby) remove(connID string) {
	for i, s := range l.Players {
		if s.ConnID == connID {
			l.Players = append(l.Players[:i], l.Players[i+1:]...)
			return
		}
	}
}

func (l *Lobby) Summary() Summary {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := Summary{ID: l.ID, Phase: l.Match.Phase, CreatedAt: l.CreatedAt, Players: []game.Player{}}
	for _, seat := range l.Players {
		s.Players = append(s.Players, seat.Number)
	}
	return s
}
