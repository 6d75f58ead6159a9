package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stratego/internal/room"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	a := &room.Lobby{ID: "BBBBBB"}
	require.True(t, s.InsertLobby(a))
	assert.False(t, s.InsertLobby(&room.Lobby{ID: "BBBBBB"}), "duplicate id must be refused")
	require.True(t, s.InsertLobby(&room.Lobby{ID: "AAAAAA"}))

	got, ok := s.GetLobby("BBBBBB")
	require.True(t, ok)
	assert.Same(t, a, got)

	list := s.ListLobbies()
	require.Len(t, list, 2)
	assert.Equal(t, "AAAAAA", list[0].ID)

	s.DeleteLobby("BBBBBB")
	_, ok = s.GetLobby("BBBBBB")
	assert.False(t, ok)
}
