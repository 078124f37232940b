package round

import "github.com/rom100main/pac-minator/internal/entities"

// Action is a semantic input, decoupled from the key or click that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionRestart // only honored once the round has ended
	ActionQuit    // handled by the frontend
	ActionPause
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Direction maps a steering action to its direction, DirNone otherwise.
func (a Action) Direction() entities.Direction {
	switch a {
	case ActionUp:
		return entities.DirUp
	case ActionDown:
		return entities.DirDown
	case ActionLeft:
		return entities.DirLeft
	case ActionRight:
		return entities.DirRight
	default:
		return entities.DirNone
	}
}
