package room

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"stratego/internal/game"
	"stratego/internal/shared"
)

const maxCodeAttempts = 64

// Manager is the lobby registry. It binds connections to lobby seats and
// routes their commands to the lobby's match. Commands for one lobby are
// applied under that lobby's lock; the registry lock only guards bindings.
type Manager struct {
	store   Store
	log     *zap.Logger
	terrain game.TerrainGrid
	codeLen int

	out Broadcaster

	mu       sync.RWMutex
	bindings map[string]string // conn id -> lobby id
}

func NewManager(s Store, codeLen int, log *zap.Logger) *Manager {
	if codeLen <= 0 {
		codeLen = 6
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		store:    s,
		log:      log,
		terrain:  game.DefaultTerrain(),
		codeLen:  codeLen,
		out:      nopBroadcaster{},
		bindings: map[string]string{},
	}
}

// SetBroadcaster wires the transport. It must be called before serving traffic.
func (m *Manager) SetBroadcaster(b Broadcaster) {
	m.out = b
}

func (m *Manager) Get(id string) (*Lobby, bool) {
	return m.store.GetLobby(id)
}

// List returns summaries of all live lobbies.
func (m *Manager) List() []Summary {
	lobbies := m.store.ListLobbies()
	out := make([]Summary, 0, len(lobbies))
	for _, l := range lobbies {
		out = append(out, l.Summary())
	}
	return out
}

// LobbyOf returns the lobby id connID is bound to.
func (m *Manager) LobbyOf(connID string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.bindings[connID]
	return id, ok
}

// CreateLobby opens a new lobby with connID seated as player 1.
func (m *Manager) CreateLobby(connID string) (string, error) {
	m.Leave(connID)

	var l *Lobby
	for attempt := 0; ; attempt++ {
		if attempt == maxCodeAttempts {
			m.out.Send(connID, shared.Error("could not allocate a lobby"))
			return "", fmt.Errorf("create lobby: no free code after %d attempts", attempt)
		}
		l = newLobby(randCode(m.codeLen), m.terrain)
		l.Players = []Seat{{ConnID: connID, Number: game.Player1}}
		// Lock before publishing so the creator hears assignPlayer first.
		l.mu.Lock()
		if m.store.InsertLobby(l) {
			break
		}
		l.mu.Unlock()
	}
	defer l.mu.Unlock()

	m.bind(connID, l.ID)
	m.log.Info("lobby created", zap.String("lobby_id", l.ID), zap.String("conn_id", connID))

	m.out.Send(connID, shared.AssignPlayer(l.ID, game.Player1))
	m.syncSeat(l, l.Players[0])
	return l.ID, nil
}

// JoinLobby seats connID in the lobby's free slot.
func (m *Manager) JoinLobby(id, connID string) (game.Player, error) {
	if cur, ok := m.LobbyOf(connID); ok && cur == id {
		if p, ok := m.rejoin(id, connID); ok {
			return p, nil
		}
	}
	m.Leave(connID)

	l, ok := m.store.GetLobby(id)
	if !ok {
		m.out.Send(connID, shared.Error(ErrLobbyNotFound.Error()))
		return 0, ErrLobbyNotFound
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		m.out.Send(connID, shared.Error(ErrLobbyNotFound.Error()))
		return 0, ErrLobbyNotFound
	}
	p, ok := l.freeSeat()
	if !ok || len(l.Players) >= MaxPlayers {
		m.out.Send(connID, shared.Error(ErrLobbyFull.Error()))
		return 0, ErrLobbyFull
	}

	seat := Seat{ConnID: connID, Number: p}
	l.Players = append(l.Players, seat)
	m.bind(connID, l.ID)
	m.log.Info("player joined",
		zap.String("lobby_id", l.ID),
		zap.String("conn_id", connID),
		zap.Int("player", int(p)),
	)

	m.out.Send(connID, shared.AssignPlayer(l.ID, p))
	m.syncSeat(l, seat)
	return p, nil
}

// rejoin answers a join for the lobby connID already sits in by repeating
// its seat assignment and state.
func (m *Manager) rejoin(id, connID string) (game.Player, bool) {
	l, ok := m.store.GetLobby(id)
	if !ok {
		return 0, false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return 0, false
	}
	p, ok := l.seatOf(connID)
	if !ok {
		return 0, false
	}
	m.out.Send(connID, shared.AssignPlayer(l.ID, p))
	m.syncSeat(l, Seat{ConnID: connID, Number: p})
	return p, true
}

// Leave unseats connID. An emptied lobby is destroyed; otherwise its match
// is reset and the remaining player is told.
func (m *Manager) Leave(connID string) {
	m.mu.Lock()
	id, ok := m.bindings[connID]
	delete(m.bindings, connID)
	m.mu.Unlock()
	if !ok {
		return
	}

	l, ok := m.store.GetLobby(id)
	if !ok {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, seated := l.seatOf(connID); !seated || l.closed {
		return
	}
	l.remove(connID)
	log := m.log.With(zap.String("lobby_id", l.ID), zap.String("conn_id", connID))

	if len(l.Players) == 0 {
		l.closed = true
		m.store.DeleteLobby(l.ID)
		log.Info("lobby destroyed")
		return
	}

	l.Match.Reset()
	log.Info("player left, match reset")
	for _, s := range l.Players {
		m.out.Send(s.ConnID, shared.PlayerDisconnected())
	}
	m.broadcastReset(l)
}

// Dispatch routes one command from connID. Match commands from connections
// without a seat, or naming another lobby, are dropped with ErrNotInLobby and
// produce no events.
func (m *Manager) Dispatch(connID string, cmd shared.Command) error {
	switch cmd.Kind {
	case shared.CmdCreateLobby:
		_, err := m.CreateLobby(connID)
		return err
	case shared.CmdJoinLobby:
		_, err := m.JoinLobby(cmd.LobbyID, connID)
		return err
	case shared.CmdDisconnect:
		m.Leave(connID)
		return nil
	case shared.CmdPlacePiece, shared.CmdReady, shared.CmdMove:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Kind)
	}

	id, ok := m.LobbyOf(connID)
	if !ok || (cmd.LobbyID != "" && cmd.LobbyID != id) {
		return ErrNotInLobby
	}
	l, ok := m.store.GetLobby(id)
	if !ok {
		return ErrNotInLobby
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrNotInLobby
	}
	p, ok := l.seatOf(connID)
	if !ok {
		return ErrNotInLobby
	}

	var err error
	switch cmd.Kind {
	case shared.CmdPlacePiece:
		err = m.place(l, p, connID, cmd.Place)
	case shared.CmdReady:
		err = m.ready(l, p)
	case shared.CmdMove:
		err = m.move(l, p, cmd.Move)
	}
	if err != nil {
		m.log.Debug("command rejected",
			zap.String("lobby_id", l.ID),
			zap.Int("player", int(p)),
			zap.String("command", string(cmd.Kind)),
			zap.Error(err),
		)
		m.out.Send(connID, shared.Error(err.Error()))
	}
	return err
}

func (m *Manager) place(l *Lobby, p game.Player, connID string, pl *shared.PlacePayload) error {
	if pl == nil {
		return shared.ErrMalformedCommand
	}
	if err := l.Match.Place(p, pl.At(), pl.Type); err != nil {
		return err
	}
	m.broadcastBoards(l)
	m.out.Send(connID, shared.PiecesLeftUpdate(l.Match.Remaining(p)))
	return nil
}

func (m *Manager) ready(l *Lobby, p game.Player) error {
	started, err := l.Match.SetReady(p)
	if err != nil {
		return err
	}
	m.broadcast(l, shared.ReadyUpdate(l.Match.ReadyPlayers()))
	if !started {
		return nil
	}

	m.log.Info("game started", zap.String("lobby_id", l.ID))
	m.broadcast(l, shared.PhaseUpdate(l.Match.Phase))
	m.broadcast(l, shared.TurnUpdate(l.Match.CurrentTurn))
	m.broadcastBoards(l)
	return nil
}

func (m *Manager) move(l *Lobby, p game.Player, mv *shared.MovePayload) error {
	if mv == nil {
		return shared.ErrMalformedCommand
	}
	res, err := l.Match.Move(p, mv.From(), mv.To())
	if err != nil {
		return err
	}

	if res.GameOver {
		m.log.Info("game over", zap.String("lobby_id", l.ID), zap.Int("winner", int(res.Winner)))
		m.broadcast(l, shared.GameOver(res.Winner))
		m.broadcastReset(l)
		return nil
	}

	m.broadcastBoards(l)
	if res.Combat != nil {
		m.broadcast(l, shared.CapturedUpdate(l.Match.Captured()))
	}
	m.broadcast(l, shared.TurnUpdate(l.Match.CurrentTurn))
	return nil
}

func (m *Manager) bind(connID, lobbyID string) {
	m.mu.Lock()
	m.bindings[connID] = lobbyID
	m.mu.Unlock()
}

func (m *Manager) broadcast(l *Lobby, ev shared.Event) {
	for _, s := range l.Players {
		m.out.Send(s.ConnID, ev)
	}
}

func (m *Manager) broadcastBoards(l *Lobby) {
	for _, s := range l.Players {
		m.out.Send(s.ConnID, shared.BoardUpdate(l.Match.View(s.Number)))
	}
}

// broadcastReset tells every seat about a freshly reset match.
func (m *Manager) broadcastReset(l *Lobby) {
	for _, s := range l.Players {
		m.syncSeat(l, s)
	}
}

// syncSeat sends the full match state as seen from s.
func (m *Manager) syncSeat(l *Lobby, s Seat) {
	mt := l.Match
	m.out.Send(s.ConnID, shared.PhaseUpdate(mt.Phase))
	m.out.Send(s.ConnID, shared.BoardUpdate(mt.View(s.Number)))
	m.out.Send(s.ConnID, shared.TurnUpdate(mt.CurrentTurn))
	m.out.Send(s.ConnID, shared.ReadyUpdate(mt.ReadyPlayers()))
	m.out.Send(s.ConnID, shared.CapturedUpdate(mt.Captured()))
	m.out.Send(s.ConnID, shared.PiecesLeftUpdate(mt.Remaining(s.Number)))
}

// IsSilent reports whether err is a rejection that must not reach the client.
func IsSilent(err error) bool {
	return errors.Is(err, ErrNotInLobby)
}

type nopBroadcaster struct{}

func (nopBroadcaster) Send(string, shared.Event) {}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
