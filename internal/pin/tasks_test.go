package pin

import "testing"

func TestTasksFireInInsertionOrder(t *testing.T) {
	rules := &stubRules{}
	e := testEngine(rules, 1)

	a := TaskTableBase
	b := TaskTableBase + 1
	c := TaskTableBase + 2
	e.AddTask(b, 2)
	e.AddTask(a, 2)
	e.AddTask(c, 5)

	e.tasksFrame()
	if len(rules.tasks) != 0 {
		t.Fatalf("nothing should fire after one frame, got %v", rules.tasks)
	}
	e.tasksFrame()
	if len(rules.tasks) != 2 || rules.tasks[0] != b || rules.tasks[1] != a {
		t.Fatalf("same-frame expirations should fire in insertion order, got %v", rules.tasks)
	}
	for i := 0; i < 3; i++ {
		e.tasksFrame()
	}
	if len(rules.tasks) != 3 || rules.tasks[2] != c {
		t.Fatalf("late task should fire on its own frame, got %v", rules.tasks)
	}
}

func TestTaskMayRescheduleItself(t *testing.T) {
	rules := &stubRules{}
	e := testEngine(rules, 1)

	kind := TaskTableBase + 7
	fires := 0
	rules.onTask = func(eng *Engine, k TaskKind) {
		if k == kind && fires < 3 {
			fires++
			eng.AddTask(kind, 2)
		}
	}
	e.AddTask(kind, 2)

	for i := 0; i < 10; i++ {
		e.tasksFrame()
	}
	if fires != 3 {
		t.Errorf("rescheduling task should have fired 3 times, got %d", fires)
	}
}

func TestCancelTasksRemovesAllOfKind(t *testing.T) {
	rules := &stubRules{}
	e := testEngine(rules, 1)

	kind := TaskTableBase + 3
	other := TaskTableBase + 4
	e.AddTask(kind, 2)
	e.AddTask(kind, 3)
	e.AddTask(other, 2)
	e.CancelTasks(kind)

	for i := 0; i < 5; i++ {
		e.tasksFrame()
	}
	if len(rules.tasks) != 1 || rules.tasks[0] != other {
		t.Errorf("only the uncancelled task should fire, got %v", rules.tasks)
	}
}

func TestZeroDelayFiresNextFrame(t *testing.T) {
	rules := &stubRules{}
	e := testEngine(rules, 1)

	e.AddTask(TaskTableBase, 0)
	e.tasksFrame()
	if len(rules.tasks) != 1 {
		t.Errorf("zero-delay task should fire on the next frame, got %v", rules.tasks)
	}
}
