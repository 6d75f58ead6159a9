package ws

import "stratego/internal/shared"

// RoomManager is the part of the lobby registry the hub drives.
type RoomManager interface {
	Dispatch(connID string, cmd shared.Command) error
	Leave(connID string)
}
