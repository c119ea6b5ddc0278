package pin

// TaskKind tags a pending deferred action. Core kinds are handled by the
// engine; values at or above TaskTableBase are forwarded to the active rule
// variant's OnTask.
type TaskKind int

const (
	// TaskSetStartKeysActive re-enables the start keys a moment after a
	// game start so a held key cannot start two games.
	TaskSetStartKeysActive TaskKind = iota
	// TaskEndOfBall closes out a drained ball once the bonus tally has
	// played.
	TaskEndOfBall
	// TaskMatchStep advances the end-of-game match spin-down animation.
	TaskMatchStep
	// TaskReturnToAttract ends the game-over sequence.
	TaskReturnToAttract

	// TaskTableBase is the first kind available to rule variants.
	TaskTableBase TaskKind = 100
)

// Task is a frame-counted deferred action. Multiple tasks of the same kind
// may coexist; expirations in the same frame fire in insertion order.
type Task struct {
	Kind   TaskKind
	Frames int
}

// AddTask schedules a task to fire after delay frames. A delay of zero fires
// on the next tasksFrame.
func (e *Engine) AddTask(kind TaskKind, delay int) {
	e.tasks = append(e.tasks, Task{Kind: kind, Frames: delay})
}

// CancelTasks removes every pending task of the given kind.
func (e *Engine) CancelTasks(kind TaskKind) {
	kept := e.tasks[:0]
	for _, t := range e.tasks {
		if t.Kind != kind {
			kept = append(kept, t)
		}
	}
	e.tasks = kept
}

// tasksFrame decrements all countdowns and fires expired tasks in insertion
// order. Fired tasks are removed before their effect runs, so a task may
// freely reschedule itself.
func (e *Engine) tasksFrame() {
	var fired []TaskKind
	kept := e.tasks[:0]
	for _, t := range e.tasks {
		t.Frames--
		if t.Frames <= 0 {
			fired = append(fired, t.Kind)
		} else {
			kept = append(kept, t)
		}
	}
	e.tasks = kept
	for _, kind := range fired {
		e.fireTask(kind)
	}
}

func (e *Engine) fireTask(kind TaskKind) {
	switch kind {
	case TaskSetStartKeysActive:
		e.startKeysActive = true
	case TaskEndOfBall:
		e.endOfBall()
	case TaskMatchStep:
		e.matchStep()
	case TaskReturnToAttract:
		e.returnToAttract()
	default:
		e.rules.OnTask(e, kind)
	}
}
