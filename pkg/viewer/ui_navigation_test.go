package viewer

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quietfield/drift/pkg/signal"
)

// testClock lets navigation tests step time explicitly.
type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time       { return c.now }
func (c *testClock) Step(d time.Duration) { c.now = c.now.Add(d) }

func readySignals(n int) []*signal.Signal {
	var signals []*signal.Signal
	for i := 0; i < n; i++ {
		signals = append(signals, &signal.Signal{
			ID:      fmt.Sprintf("sig-%d", i),
			Section: signal.Arrival,
			Order:   i,
		})
	}
	return signals
}

func readyModel(t *testing.T, n int) (Model, *testClock) {
	t.Helper()
	m := New(Options{SwipeRows: 3})
	clock := &testClock{now: time.Unix(0, 0)}
	m.clock = clock.Now

	model, _ := m.Update(signalsLoadedMsg{signals: readySignals(n)})
	m = model.(Model)
	if m.state != stateReady {
		t.Fatalf("expected ready state after load, got %v", m.state)
	}
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	model, _ := m.Update(msg)
	return model.(Model)
}

func TestKeyboardAdvanceAndRetreat(t *testing.T) {
	m, clock := readyModel(t, 3)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.ctrl.Index() != 1 {
		t.Fatalf("down arrow should advance to 1, got %d", m.ctrl.Index())
	}

	clock.Step(time.Second)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.ctrl.Index() != 0 {
		t.Fatalf("up arrow should retreat to 0, got %d", m.ctrl.Index())
	}
}

func TestSpaceAndEnterAdvance(t *testing.T) {
	m, clock := readyModel(t, 3)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.ctrl.Index() != 1 {
		t.Fatalf("space should advance, got index %d", m.ctrl.Index())
	}

	clock.Step(time.Second)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.ctrl.Index() != 2 {
		t.Fatalf("enter should advance, got index %d", m.ctrl.Index())
	}
}

func TestUnboundKeysDoNotNavigate(t *testing.T) {
	m, _ := readyModel(t, 3)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if m.ctrl.Index() != 0 {
		t.Fatalf("unbound key moved the index to %d", m.ctrl.Index())
	}
}

func TestCooldownSwallowsRapidKeyPresses(t *testing.T) {
	m, clock := readyModel(t, 5)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	clock.Step(100 * time.Millisecond)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.ctrl.Index() != 1 {
		t.Fatalf("expected exactly one move inside cooldown, got index %d", m.ctrl.Index())
	}

	clock.Step(700 * time.Millisecond)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.ctrl.Index() != 2 {
		t.Fatalf("expected move after cooldown, got index %d", m.ctrl.Index())
	}
}

func TestWheelAccumulationTriggersSingleAdvance(t *testing.T) {
	m, _ := readyModel(t, 3)

	wheelDown := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
	m = update(t, m, wheelDown) // +40
	m = update(t, m, wheelDown) // +40: accumulated 80 > 60

	m = update(t, m, wheelIdleMsg{gen: m.acc.Generation()})
	if m.ctrl.Index() != 1 {
		t.Fatalf("accumulated 80 should advance once, got index %d", m.ctrl.Index())
	}
}

func TestWheelUnderThresholdDoesNothing(t *testing.T) {
	m, _ := readyModel(t, 3)

	m.acc.Add(20)
	gen := m.acc.Add(20) // accumulated 40 < 60

	m = update(t, m, wheelIdleMsg{gen: gen})
	if m.ctrl.Index() != 0 {
		t.Fatalf("accumulated 40 must not navigate, got index %d", m.ctrl.Index())
	}
}

func TestWheelUpRetreats(t *testing.T) {
	m, clock := readyModel(t, 3)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	clock.Step(time.Second)

	wheelUp := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}
	m = update(t, m, wheelUp)
	m = update(t, m, wheelUp)
	m = update(t, m, wheelIdleMsg{gen: m.acc.Generation()})
	if m.ctrl.Index() != 0 {
		t.Fatalf("wheel up should retreat, got index %d", m.ctrl.Index())
	}
}

func TestStaleWheelTimerIsIgnored(t *testing.T) {
	m, _ := readyModel(t, 3)

	wheelDown := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
	m = update(t, m, wheelDown)
	stale := m.acc.Generation()
	m = update(t, m, wheelDown)

	// The first timer fires after being superseded by the second event.
	m = update(t, m, wheelIdleMsg{gen: stale})
	if m.ctrl.Index() != 0 {
		t.Fatalf("stale quiet-timer must not evaluate, got index %d", m.ctrl.Index())
	}

	m = update(t, m, wheelIdleMsg{gen: m.acc.Generation()})
	if m.ctrl.Index() != 1 {
		t.Fatalf("current quiet-timer should advance, got index %d", m.ctrl.Index())
	}
}

func TestDragUpAdvancesDragDownRetreats(t *testing.T) {
	m, clock := readyModel(t, 3)

	press := tea.MouseMsg{Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	release := tea.MouseMsg{Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	m = update(t, m, press)
	m = update(t, m, release)
	if m.ctrl.Index() != 1 {
		t.Fatalf("upward drag of 8 rows should advance, got index %d", m.ctrl.Index())
	}

	clock.Step(time.Second)
	press = tea.MouseMsg{Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	release = tea.MouseMsg{Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	m = update(t, m, press)
	m = update(t, m, release)
	if m.ctrl.Index() != 0 {
		t.Fatalf("downward drag should retreat, got index %d", m.ctrl.Index())
	}
}

func TestShortDragIsNoise(t *testing.T) {
	m, _ := readyModel(t, 3)

	m = update(t, m, tea.MouseMsg{Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{Y: 9, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.ctrl.Index() != 0 {
		t.Fatalf("1-row drag under threshold must not navigate, got index %d", m.ctrl.Index())
	}
}

func TestAdvanceClampsAtLastFrame(t *testing.T) {
	m, clock := readyModel(t, 2)

	for i := 0; i < 4; i++ {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
		clock.Step(time.Second)
	}
	if m.ctrl.Index() != 1 {
		t.Fatalf("expected to rest at last frame, got %d", m.ctrl.Index())
	}
}

func TestReducedMotionSkipsTransition(t *testing.T) {
	m := New(Options{ReducedMotion: true, SwipeRows: 3})
	clock := &testClock{now: time.Unix(0, 0)}
	m.clock = clock.Now
	m = update(t, m, signalsLoadedMsg{signals: readySignals(3)})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.transition != 0 {
		t.Fatalf("reduced motion must not start a transition, got %d steps", m.transition)
	}
	if m.ctrl.Index() != 1 {
		t.Fatalf("reduced motion still navigates, got index %d", m.ctrl.Index())
	}
}

func TestTransitionCountsDown(t *testing.T) {
	m, _ := readyModel(t, 3)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.transition != transitionSteps {
		t.Fatalf("expected transition armed with %d steps, got %d", transitionSteps, m.transition)
	}
	for i := 0; i < transitionSteps; i++ {
		m = update(t, m, transitionMsg{})
	}
	if m.transition != 0 {
		t.Fatalf("transition should finish at 0, got %d", m.transition)
	}
}

func TestNavigationIgnoredBeforeLoad(t *testing.T) {
	m := New(Options{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.ctrl != nil {
		t.Fatalf("no controller should exist before load")
	}
}
