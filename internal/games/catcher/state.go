package catcher

// Phase is the session state machine.
//
//	Playing --miss--> Lost
//	Playing --win---> Won
//	Lost/Won --restart--> Playing
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLost
	PhaseWon
)

// String returns the phase name used in logs and snapshots.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLost:
		return "lost"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// GameOver reports whether the phase is terminal until restart.
func (p Phase) GameOver() bool {
	return p == PhaseLost || p == PhaseWon
}

// AcceptsMovement reports whether player input may move the catcher.
func (p Phase) AcceptsMovement() bool {
	return p == PhasePlaying
}

// AcceptsRestart reports whether a restart request is legal.
func (p Phase) AcceptsRestart() bool {
	return p.GameOver()
}
