package game

import "errors"

// Every error below rejects a single command and leaves the match untouched.
// The texts are shown to players verbatim.
var (
	ErrWrongPhase       = errors.New("not allowed in this phase")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrInvalidPlayer    = errors.New("invalid player")
	ErrOutOfBounds      = errors.New("coordinates out of range")
	ErrUnknownPiece     = errors.New("unknown piece type")
	ErrNoPiecesLeft     = errors.New("no pieces left")
	ErrInvalidPlacement = errors.New("invalid placement position")
	ErrNoPiece          = errors.New("no piece at origin")
	ErrNotYourPiece     = errors.New("not your piece")
	ErrInvalidMove      = errors.New("invalid move")
	ErrAlreadyReady     = errors.New("already ready")
)
