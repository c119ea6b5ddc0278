package core

// EventKind identifies a semantic input event, abstracted from physical keys.
// The platform layer owns the key bindings; the simulation core only ever
// sees these intents.
type EventKind int

const (
	EventNone         EventKind = iota
	EventFlipperLeft            // left flipper button (press and release edges)
	EventFlipperRight           // right flipper button (press and release edges)
	EventNudge                  // table nudge / launch button (tilt-sensitive)
	EventPlunger                // plunger charge: pressed = hold, released = launch
	EventPause                  // pause toggle
	EventMusic                  // music on/off toggle
	EventConfirm                // "yes" in modal prompts
	EventDeny                   // "no" in modal prompts
	EventQuit                   // escape / quit request
	EventChar                   // alphabetic character (name entry, cheat codes)
	EventStart                  // start-game request for Players players (1-8)
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventFlipperLeft:
		return "FlipperLeft"
	case EventFlipperRight:
		return "FlipperRight"
	case EventNudge:
		return "Nudge"
	case EventPlunger:
		return "Plunger"
	case EventPause:
		return "Pause"
	case EventMusic:
		return "Music"
	case EventConfirm:
		return "Confirm"
	case EventDeny:
		return "Deny"
	case EventQuit:
		return "Quit"
	case EventChar:
		return "Char"
	case EventStart:
		return "Start"
	default:
		return "Unknown"
	}
}

// Event is a single semantic input event delivered to the simulation core.
// Flipper, nudge and plunger events carry both press and release edges;
// everything else fires on press only.
type Event struct {
	Kind    EventKind
	Pressed bool // true on press edge, false on release edge
	Char    byte // uppercase ASCII letter or space, valid for EventChar
	Players int  // requested player count, valid for EventStart
}

// Press builds a press-edge event.
func Press(kind EventKind) Event {
	return Event{Kind: kind, Pressed: true}
}

// Release builds a release-edge event.
func Release(kind EventKind) Event {
	return Event{Kind: kind}
}

// Char builds a character event for name entry and cheat codes.
func Char(c byte) Event {
	return Event{Kind: EventChar, Pressed: true, Char: c}
}

// Start builds a start-game request for the given player count.
func Start(players int) Event {
	return Event{Kind: EventStart, Pressed: true, Players: players}
}
