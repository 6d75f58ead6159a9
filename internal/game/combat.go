package game

// Resolve decides a fight and returns the surviving piece, or nil when both
// pieces are destroyed. The returned pointer is either attacker or defender.
func Resolve(attacker, defender *Piece) *Piece {
	if attacker.Type == Spy && defender.Type == Marshal {
		return attacker
	}
	if defender.Type == Bomb {
		if attacker.Type == Miner {
			return attacker
		}
		return defender
	}

	ar, dr := attacker.Type.Rank(), defender.Type.Rank()
	switch {
	case ar > dr:
		return attacker
	case dr > ar:
		return defender
	}
	return nil
}

// CombatResult records one fight for callers that report it.
type CombatResult struct {
	Attacker PieceType `json:"attacker"`
	Defender PieceType `json:"defender"`
	// Winner is 0 on mutual destruction.
	Winner Player `json:"winner"`
}
