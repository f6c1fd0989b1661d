package session

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/zjrosen/reqdesk/internal/artifact"
	"github.com/zjrosen/reqdesk/internal/namespace"
	"github.com/zjrosen/reqdesk/internal/panels"
	"github.com/zjrosen/reqdesk/internal/step"
)

// sessionMachine drives an Orchestrator with random operations and checks the
// state invariants after each one.
type sessionMachine struct {
	o     *Orchestrator
	clock *fixedClock
	ids   map[string]bool

	// model
	panels       panels.Visibility
	intermediate *artifact.Artifact
}

func (m *sessionMachine) SelectNamespace(t *rapid.T) {
	id := rapid.SampledFrom([]string{"default", "production", "staging", "development", "qa", ""}).Draw(t, "ns")
	before := m.o.State()
	err := m.o.SelectNamespace(id)
	after := m.o.State()

	if namespace.NewRegistry().IsValid(id) {
		if err != nil || after.NamespaceID != id {
			t.Fatalf("valid namespace %q rejected: %v", id, err)
		}
	} else if err == nil || after != before {
		t.Fatalf("invalid namespace %q changed state", id)
	}
	if after.SelectedRequestID != before.SelectedRequestID || after.Artifacts != before.Artifacts {
		t.Fatalf("namespace switch touched selection")
	}
}

func (m *sessionMachine) SelectRequest(t *rapid.T) {
	id := rapid.StringMatching(`[a-z]+-req-0[0-9]{2}`).Draw(t, "req")
	m.o.SelectRequest(id)
	m.intermediate = nil
	m.checkReset(t, id)
}

func (m *sessionMachine) CreateRequest(t *rapid.T) {
	if rapid.Bool().Draw(t, "tick") {
		m.clock.now = m.clock.now.Add(time.Duration(rapid.IntRange(-5, 5).Draw(t, "ms")) * time.Millisecond)
	}
	id := m.o.CreateRequest()
	if m.ids[id] {
		t.Fatalf("duplicate request id %s", id)
	}
	m.ids[id] = true
	m.intermediate = nil
	m.checkReset(t, id)
}

func (m *sessionMachine) AdvanceStep(t *rapid.T) {
	s := rapid.SampledFrom([]step.Step{step.Idle, step.Analyzing, step.OutputReady, step.Refining, step.Complete}).Draw(t, "step")
	m.o.AdvanceStep(s)
	st := m.o.State()

	switch s {
	case step.OutputReady:
		p, _ := st.Preview()
		i, ok := st.Intermediate()
		if !ok || p != i {
			t.Fatalf("output-ready preview and intermediate differ")
		}
		m.intermediate = &i
	case step.Complete:
		p, _ := st.Preview()
		if p.FileType != artifact.FileTypeMarkdown {
			t.Fatalf("complete preview is %s", p.FileType)
		}
	}
}

func (m *sessionMachine) Toggle(t *rapid.T) {
	switch rapid.IntRange(0, 3).Draw(t, "toggle") {
	case 0:
		m.o.ToggleSidebar()
		m.panels.ToggleSidebar()
	case 1:
		m.o.ToggleRequestsExpanded()
		m.panels.ToggleRequestsExpanded()
	case 2:
		m.o.ToggleRightPane()
		m.panels.ToggleRightPane()
	case 3:
		m.o.CloseSidebar()
		m.panels.CloseSidebar()
	}
}

func (m *sessionMachine) Check(t *rapid.T) {
	st := m.o.State()
	if !namespace.NewRegistry().IsValid(st.NamespaceID) {
		t.Fatalf("namespace %q not registered", st.NamespaceID)
	}
	if st.Panels != m.panels {
		t.Fatalf("panels %+v, want %+v", st.Panels, m.panels)
	}
	i, ok := st.Intermediate()
	if (m.intermediate == nil) == ok {
		t.Fatalf("intermediate presence %v, model %v", ok, m.intermediate != nil)
	}
	if ok && i != *m.intermediate {
		t.Fatalf("intermediate changed without a new selection")
	}
}

func (m *sessionMachine) checkReset(t *rapid.T, id string) {
	st := m.o.State()
	if st.SelectedRequestID != id || st.CurrentStep != step.Idle {
		t.Fatalf("selection did not reset: %+v", st)
	}
	if _, ok := st.Preview(); ok {
		t.Fatalf("preview survived selection")
	}
	if _, ok := st.Intermediate(); ok {
		t.Fatalf("intermediate survived selection")
	}
}

func TestOrchestrator_Invariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		clock := &fixedClock{now: t0}
		o, err := New(namespace.NewRegistry(), WithClock(clock))
		if err != nil {
			t.Fatal(err)
		}
		defer o.Close()

		m := &sessionMachine{o: o, clock: clock, ids: map[string]bool{}, panels: panels.Default()}
		t.Repeat(rapid.StateMachineActions(m))
	})
}
