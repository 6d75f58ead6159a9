package store

import (
	"sort"
	"sync"

	"stratego/internal/room"
)

type MemoryStore struct {
	mu      sync.RWMutex
	lobbies map[string]*room.Lobby
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		lobbies: map[string]*room.Lobby{},
	}
}

func (m *MemoryStore) GetLobby(id string) (*room.Lobby, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.lobbies[id]
	return l, ok
}

func (m *MemoryStore) InsertLobby(l *room.Lobby) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, taken := m.lobbies[l.ID]; taken {
		return false
	}
	m.lobbies[l.ID] = l
	return true
}

func (m *MemoryStore) DeleteLobby(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.lobbies, id)
}

// ListLobbies returns the stored lobbies ordered by id.
func (m *MemoryStore) ListLobbies() []*room.Lobby {
	m.mu.RLock()
	out := make([]*room.Lobby, 0, len(m.lobbies))
	for _, l := range m.lobbies {
		out = append(out, l)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
