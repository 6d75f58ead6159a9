package room

import "stratego/internal/shared"

// Broadcaster delivers events to a connection. Send must not block; the
// manager calls it while holding a lobby lock.
type Broadcaster interface {
	Send(connID string, ev shared.Event)
}
