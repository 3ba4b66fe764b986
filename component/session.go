package component

// GameMode is the session lifecycle state
type GameMode uint8

const (
	ModeWaiting GameMode = iota
	ModePlaying
	ModeGameOver
)

func (m GameMode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	default:
		return "waiting"
	}
}

// GameOverReason records why a session ended
type GameOverReason uint8

const (
	ReasonNone GameOverReason = iota
	ReasonBoundary
	ReasonCaught
)

func (r GameOverReason) String() string {
	switch r {
	case ReasonBoundary:
		return "boundary"
	case ReasonCaught:
		return "caught"
	default:
		return "none"
	}
}
