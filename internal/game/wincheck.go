package game

// IsWinningCapture reports whether attacking defender ends the match. Any
// attack on the flag wins, whatever the combat outcome.
func IsWinningCapture(defender *Piece) bool {
	return defender != nil && defender.Type == Flag
}
