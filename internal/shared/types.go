package shared

import (
	"encoding/json"
	"errors"
	"fmt"

	"stratego/internal/game"
)

var ErrMalformedCommand = errors.New("malformed command")

// Envelope is the frame exchanged with clients in both directions.
type Envelope struct {
	Action  string          `json:"action"`
	LobbyID string          `json:"lobbyId,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type CommandKind string

const (
	CmdCreateLobby CommandKind = "createLobby"
	CmdJoinLobby   CommandKind = "joinLobby"
	CmdPlacePiece  CommandKind = "placePiece"
	CmdReady       CommandKind = "ready"
	CmdMove        CommandKind = "move"
	CmdDisconnect  CommandKind = "disconnect"
)

type PlacePayload struct {
	X    int            `json:"x"`
	Y    int            `json:"y"`
	Type game.PieceType `json:"type"`
}

func (p PlacePayload) At() game.Coord { return game.Coord{X: p.X, Y: p.Y} }

type MovePayload struct {
	FromX int `json:"fromX"`
	FromY int `json:"fromY"`
	ToX   int `json:"toX"`
	ToY   int `json:"toY"`
}

func (p MovePayload) From() game.Coord { return game.Coord{X: p.FromX, Y: p.FromY} }
func (p MovePayload) To() game.Coord   { return game.Coord{X: p.ToX, Y: p.ToY} }

// Command is one inbound request. Exactly the payload matching Kind is set.
type Command struct {
	Kind CommandKind
	// LobbyID is the join target for CmdJoinLobby. On match commands it is an
	// optional guard that must match the sender's lobby.
	LobbyID string
	Place   *PlacePayload
	Move    *MovePayload
}

// DecodeCommand parses a client frame.
func DecodeCommand(raw []byte) (Command, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrMalformedCommand, err)
	}

	cmd := Command{Kind: CommandKind(env.Action), LobbyID: env.LobbyID}
	switch cmd.Kind {
	case CmdCreateLobby, CmdReady:
	case CmdJoinLobby:
		if err := json.Unmarshal(env.Data, &cmd.LobbyID); err != nil || cmd.LobbyID == "" {
			return Command{}, fmt.Errorf("%w: joinLobby needs a lobby id", ErrMalformedCommand)
		}
	case CmdPlacePiece:
		cmd.Place = &PlacePayload{}
		if err := json.Unmarshal(env.Data, cmd.Place); err != nil {
			return Command{}, fmt.Errorf("%w: %v", ErrMalformedCommand, err)
		}
	case CmdMove:
		cmd.Move = &MovePayload{}
		if err := json.Unmarshal(env.Data, cmd.Move); err != nil {
			return Command{}, fmt.Errorf("%w: %v", ErrMalformedCommand, err)
		}
	default:
		return Command{}, fmt.Errorf("%w: unknown action %q", ErrMalformedCommand, env.Action)
	}
	return cmd, nil
}

type EventKind string

const (
	EvAssignPlayer       EventKind = "assignPlayer"
	EvBoardUpdate        EventKind = "boardUpdate"
	EvTurnUpdate         EventKind = "turnUpdate"
	EvPhaseUpdate        EventKind = "phaseUpdate"
	EvPiecesLeftUpdate   EventKind = "piecesLeftUpdate"
	EvReadyUpdate        EventKind = "readyUpdate"
	EvCapturedUpdate     EventKind = "capturedUpdate"
	EvGameOver           EventKind = "gameOver"
	EvPlayerDisconnected EventKind = "playerDisconnected"
	EvError              EventKind = "error"
)

// Event is one outbound notification. Build it with the constructors below so
// that each kind always carries the same payload shape.
type Event struct {
	Kind EventKind
	Data any
}

func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Action EventKind `json:"action"`
		Data   any       `json:"data"`
	}{e.Kind, e.Data})
}

type AssignPlayerData struct {
	LobbyID      string      `json:"lobbyId"`
	PlayerNumber game.Player `json:"playerNumber"`
}

func AssignPlayer(lobbyID string, p game.Player) Event {
	return Event{Kind: EvAssignPlayer, Data: AssignPlayerData{LobbyID: lobbyID, PlayerNumber: p}}
}

func BoardUpdate(b game.Board) Event { return Event{Kind: EvBoardUpdate, Data: b} }

func TurnUpdate(p game.Player) Event { return Event{Kind: EvTurnUpdate, Data: p} }

func PhaseUpdate(ph game.Phase) Event { return Event{Kind: EvPhaseUpdate, Data: ph} }

func PiecesLeftUpdate(counts map[game.PieceType]int) Event {
	return Event{Kind: EvPiecesLeftUpdate, Data: counts}
}

func ReadyUpdate(ready []game.Player) Event {
	if ready == nil {
		ready = []game.Player{}
	}
	return Event{Kind: EvReadyUpdate, Data: ready}
}

func CapturedUpdate(captured map[game.Player][]game.PieceType) Event {
	return Event{Kind: EvCapturedUpdate, Data: captured}
}

func GameOver(winner game.Player) Event { return Event{Kind: EvGameOver, Data: winner} }

func PlayerDisconnected() Event { return Event{Kind: EvPlayerDisconnected} }

func Error(msg string) Event { return Event{Kind: EvError, Data: msg} }
