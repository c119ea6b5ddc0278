package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadeworks/tui-pinball/internal/core"
	"github.com/arcadeworks/tui-pinball/internal/pin"
)

// Held-key release synthesis. Terminals deliver key repeats but no release
// edges, so the model re-arms a deadline on every repeat and synthesizes the
// release when the repeats stop.
const (
	flipperHoldFrames = 8
	nudgeHoldFrames   = 6
	plungerHoldFrames = 10
)

// KeyMapper translates Bubble Tea key messages to semantic input events.
// Mapping is modal: the same letter is a cheat code in attract, an initial
// during name entry, and nothing at all mid-ball.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message for the given game-flow state.
// Returned events fire immediately; holds name the press-and-hold kinds the
// caller owes a synthetic release for. hardQuit bypasses the simulation.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, state pin.GameState) (events []core.Event, holds []core.EventKind, hardQuit bool) {
	key := msg.String()

	if key == "ctrl+c" {
		return nil, nil, true
	}

	// Name entry swallows the alphabet before any other binding.
	if state == pin.StateGetName {
		if len(key) == 1 && key[0] >= 'a' && key[0] <= 'z' {
			return []core.Event{core.Char(key[0] - 'a' + 'A')}, nil, false
		}
		switch key {
		case " ":
			return []core.Event{core.Char(' ')}, nil, false
		case "enter":
			return []core.Event{core.Press(core.EventConfirm)}, nil, false
		}
		return nil, nil, false
	}

	// Modal prompts answer yes or no and nothing else.
	if state == pin.StateConfirmQuit || state == pin.StatePaused {
		switch key {
		case "y":
			return []core.Event{core.Press(core.EventConfirm)}, nil, false
		case "n":
			return []core.Event{core.Press(core.EventDeny)}, nil, false
		case "esc", "q":
			return []core.Event{core.Press(core.EventQuit)}, nil, false
		}
		if state == pin.StatePaused {
			// Any other key unpauses.
			return []core.Event{core.Press(core.EventPause)}, nil, false
		}
		return nil, nil, false
	}

	// Start keys work in attract and from the plunger (mid-game join).
	if key >= "1" && key <= "8" {
		return []core.Event{core.Start(int(key[0] - '0'))}, nil, false
	}

	switch key {
	case "z", "left":
		return nil, []core.EventKind{core.EventFlipperLeft}, false
	case "/", "right":
		return nil, []core.EventKind{core.EventFlipperRight}, false
	case " ", "down":
		return nil, []core.EventKind{core.EventPlunger}, false
	case "up", "n":
		if state == pin.StateAttract {
			break // attract has no table to nudge; fall through to cheats
		}
		return nil, []core.EventKind{core.EventNudge}, false
	case "p":
		if state != pin.StateAttract {
			return []core.Event{core.Press(core.EventPause)}, nil, false
		}
	case "m":
		if state != pin.StateAttract {
			return []core.Event{core.Press(core.EventMusic)}, nil, false
		}
	case "esc", "q":
		return []core.Event{core.Press(core.EventQuit)}, nil, false
	}

	// In attract, loose letters feed the cheat-code matcher.
	if state == pin.StateAttract && len(key) == 1 && key[0] >= 'a' && key[0] <= 'z' {
		return []core.Event{core.Char(key[0] - 'a' + 'A')}, nil, false
	}

	return nil, nil, false
}

// holdFrames returns the synthetic-release deadline for a held kind.
func holdFrames(kind core.EventKind) int {
	switch kind {
	case core.EventPlunger:
		return plungerHoldFrames
	case core.EventNudge:
		return nudgeHoldFrames
	default:
		return flipperHoldFrames
	}
}
