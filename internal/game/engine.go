package game

import "sort"

// Match is the authoritative state of one game. It is not safe for
// concurrent use; the owning lobby serializes access.
type Match struct {
	Board       Board
	Terrain     TerrainGrid
	Phase       Phase
	CurrentTurn Player

	remaining map[Player]map[PieceType]int
	ready     map[Player]bool
	captured  map[Player][]PieceType
}

// MoveResult describes what a successful Move did.
type MoveResult struct {
	From   Coord
	To     Coord
	Combat *CombatResult
	// GameOver is set when the flag fell. The match has already been reset.
	GameOver bool
	Winner   Player
}

func NewMatch(terrain TerrainGrid) *Match {
	m := &Match{Terrain: terrain}
	m.Reset()
	return m
}

// Reset puts the match back to a fresh placement phase. Terrain is kept.
func (m *Match) Reset() {
	m.Board = Board{}
	m.Phase = PhasePlacement
	m.CurrentTurn = Player1
	m.remaining = map[Player]map[PieceType]int{
		Player1: initialInventory(),
		Player2: initialInventory(),
	}
	m.ready = map[Player]bool{}
	m.captured = map[Player][]PieceType{Player1: {}, Player2: {}}
}

func initialInventory() map[PieceType]int {
	inv := make(map[PieceType]int, len(InitialCounts))
	for t, n := range InitialCounts {
		inv[t] = n
	}
	return inv
}

func (m *Match) Place(p Player, at Coord, t PieceType) error {
	if !p.Valid() {
		return ErrInvalidPlayer
	}
	if m.Phase != PhasePlacement {
		return ErrWrongPhase
	}
	if !InBounds(at) {
		return ErrOutOfBounds
	}
	if !t.Valid() {
		return ErrUnknownPiece
	}
	if m.remaining[p][t] <= 0 {
		return ErrNoPiecesLeft
	}
	if !ValidPlacement(&m.Board, &m.Terrain, p, at) {
		return ErrInvalidPlacement
	}

	m.Board.set(at, &Piece{Type: t, Owner: p})
	m.remaining[p][t]--
	return nil
}

// SetReady marks p ready and reports whether this started the game.
func (m *Match) SetReady(p Player) (bool, error) {
	if !p.Valid() {
		return false, ErrInvalidPlayer
	}
	if m.Phase != PhasePlacement {
		return false, ErrWrongPhase
	}
	if m.ready[p] {
		return false, ErrAlreadyReady
	}
	m.ready[p] = true

	if len(m.ready) < 2 {
		return false, nil
	}
	m.Phase = PhasePlaying
	m.CurrentTurn = Player1
	return true, nil
}

func (m *Match) Move(p Player, from, to Coord) (MoveResult, error) {
	res := MoveResult{From: from, To: to}
	if !p.Valid() {
		return res, ErrInvalidPlayer
	}
	if m.Phase != PhasePlaying {
		return res, ErrWrongPhase
	}
	if p != m.CurrentTurn {
		return res, ErrNotYourTurn
	}
	if !InBounds(from) || !InBounds(to) {
		return res, ErrOutOfBounds
	}
	piece := m.Board.At(from)
	if piece == nil {
		return res, ErrNoPiece
	}
	if piece.Owner != p {
		return res, ErrNotYourPiece
	}
	if !ValidMove(&m.Board, &m.Terrain, from, to) {
		return res, ErrInvalidMove
	}

	target := m.Board.At(to)
	m.Board.set(from, nil)
	if target == nil {
		m.Board.set(to, piece)
	} else {
		res.Combat = m.fight(piece, target, to)
	}

	if IsWinningCapture(target) {
		res.GameOver = true
		res.Winner = p
		m.Reset()
		return res, nil
	}

	m.CurrentTurn = p.Opponent()
	return res, nil
}

func (m *Match) fight(attacker, defender *Piece, at Coord) *CombatResult {
	out := &CombatResult{Attacker: attacker.Type, Defender: defender.Type}
	switch winner := Resolve(attacker, defender); winner {
	case nil:
		m.captured[attacker.Owner] = append(m.captured[attacker.Owner], defender.Type)
		m.captured[defender.Owner] = append(m.captured[defender.Owner], attacker.Type)
		m.Board.set(at, nil)
	default:
		loser := defender
		if winner == defender {
			loser = attacker
		}
		winner.Revealed = true
		m.Board.set(at, winner)
		m.captured[winner.Owner] = append(m.captured[winner.Owner], loser.Type)
		out.Winner = winner.Owner
	}
	return out
}

// View returns the board as p is allowed to see it.
func (m *Match) View(p Player) Board { return View(&m.Board, p) }

// Remaining returns a copy of p's unplaced inventory.
func (m *Match) Remaining(p Player) map[PieceType]int {
	out := make(map[PieceType]int, len(m.remaining[p]))
	for t, n := range m.remaining[p] {
		out[t] = n
	}
	return out
}

// ReadyPlayers returns the ready seats in ascending order.
func (m *Match) ReadyPlayers() []Player {
	out := make([]Player, 0, len(m.ready))
	for p := range m.ready {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Captured returns a copy of the per-player capture lists.
func (m *Match) Captured() map[Player][]PieceType {
	out := make(map[Player][]PieceType, 2)
	for _, p := range []Player{Player1, Player2} {
		out[p] = append([]PieceType{}, m.captured[p]...)
	}
	return out
}
