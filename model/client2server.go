package model

type Command int

const (
	CmdNew Command = iota + 1
	CmdReplay
	CmdMove
	CmdHistory
)

func (c Command) Name() string {
	switch c {
	case CmdNew:
		return "NEW"
	case CmdReplay:
		return "REPLAY"
	case CmdMove:
		return "MOVE"
	case CmdHistory:
		return "HISTORY"
	default:
		return "N/A"
	}
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Offset returns the one-cell displacement for d, or false for an unknown
// direction.
func (d Direction) Offset() (Position, bool) {
	if d < Up || d > Right {
		return Position{}, false
	}
	return directions[d], true
}

type LevelConfig struct {
	Rows, Cols int
	MoreWalls  bool
	MoreFood   bool
}

type ClientMessage struct {
	Command   Command
	Config    LevelConfig
	LevelID   string
	Direction Direction
}
