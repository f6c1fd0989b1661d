package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zjrosen/reqdesk/internal/namespace"
	"github.com/zjrosen/reqdesk/internal/panels"
	"github.com/zjrosen/reqdesk/internal/pubsub"
	"github.com/zjrosen/reqdesk/internal/step"
	"github.com/zjrosen/reqdesk/internal/tracing"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestOrchestrator(t *testing.T, opts ...Option) *Orchestrator {
	t.Helper()
	o, err := New(namespace.NewRegistry(), append([]Option{WithClock(&fixedClock{now: t0})}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(o.Close)
	return o
}

func TestNew_Defaults(t *testing.T) {
	o := newTestOrchestrator(t)
	s := o.State()

	require.NotEmpty(t, s.SessionID)
	require.Equal(t, "default", s.NamespaceID)
	require.False(t, s.HasSelection())
	require.Equal(t, step.Idle, s.CurrentStep)
	require.Equal(t, panels.Default(), s.Panels)
	_, ok := s.Preview()
	require.False(t, ok)
}

func TestNew_InitialNamespace(t *testing.T) {
	o := newTestOrchestrator(t, WithNamespace("staging"), WithSessionID("fixed"))
	require.Equal(t, "staging", o.State().NamespaceID)
	require.Equal(t, "fixed", o.State().SessionID)

	_, err := New(namespace.NewRegistry(), WithNamespace("prod"))
	require.ErrorIs(t, err, ErrInvalidNamespace)
}

func TestSelectNamespace_Invalid(t *testing.T) {
	o := newTestOrchestrator(t)
	o.SelectRequest("default-req-001")
	before := o.State()

	err := o.SelectNamespace("stagin")

	require.ErrorIs(t, err, ErrInvalidNamespace)
	var nsErr *InvalidNamespaceError
	require.True(t, errors.As(err, &nsErr))
	require.Equal(t, "stagin", nsErr.ID)
	require.Equal(t, "staging", nsErr.Suggestion)
	require.Contains(t, err.Error(), `did you mean "staging"`)
	require.Equal(t, before, o.State())
}

func TestSelectNamespace_KeepsRequestAndArtifacts(t *testing.T) {
	o := newTestOrchestrator(t)
	o.SelectRequest("default-req-002")
	o.AdvanceStep(step.OutputReady)
	before := o.State()

	require.NoError(t, o.SelectNamespace("production"))

	after := o.State()
	require.Equal(t, "production", after.NamespaceID)
	require.Equal(t, before.SelectedRequestID, after.SelectedRequestID)
	require.Equal(t, before.CurrentStep, after.CurrentStep)
	require.Equal(t, before.Artifacts, after.Artifacts)
}

func TestSelectRequest_ResetsState(t *testing.T) {
	o := newTestOrchestrator(t)
	o.SelectRequest("default-req-001")
	o.AdvanceStep(step.OutputReady)
	o.AdvanceStep(step.Complete)

	o.SelectRequest("default-req-007")

	s := o.State()
	require.Equal(t, "default-req-007", s.SelectedRequestID)
	require.Equal(t, step.Idle, s.CurrentStep)
	_, ok := s.Preview()
	require.False(t, ok)
	_, ok = s.Intermediate()
	require.False(t, ok)
}

func TestAdvanceStep_OutputReadyArtifactIdentity(t *testing.T) {
	o := newTestOrchestrator(t)
	o.SelectRequest("default-req-001")

	o.AdvanceStep(step.OutputReady)

	s := o.State()
	require.Equal(t, step.OutputReady, s.CurrentStep)
	p, ok := s.Preview()
	require.True(t, ok)
	i, ok := s.Intermediate()
	require.True(t, ok)
	require.Equal(t, p, i)
	require.Equal(t, step.AgentOutputFile, p.FileName)
}

func TestAdvanceStep_CompletePreservesIntermediate(t *testing.T) {
	o := newTestOrchestrator(t)
	o.SelectRequest("default-req-001")
	o.AdvanceStep(step.OutputReady)
	intermediate, _ := o.State().Intermediate()

	o.AdvanceStep(step.Complete)

	s := o.State()
	p, ok := s.Preview()
	require.True(t, ok)
	require.Equal(t, step.FinalOutputFile, p.FileName)
	require.Contains(t, p.Content, "Timestamp: 2025-06-01T12:00:00.000Z")
	i, ok := s.Intermediate()
	require.True(t, ok)
	require.Equal(t, intermediate, i)
}

func TestAdvanceStep_UnrecognizedPassesThrough(t *testing.T) {
	o := newTestOrchestrator(t)
	o.SelectRequest("default-req-001")
	o.AdvanceStep(step.OutputReady)
	before := o.State().Artifacts

	o.AdvanceStep(step.Analyzing)
	o.AdvanceStep("whatever")

	require.Equal(t, step.Step("whatever"), o.State().CurrentStep)
	require.Equal(t, before, o.State().Artifacts)
}

func TestCreateRequest_IDFromClock(t *testing.T) {
	clock := &fixedClock{now: t0}
	o := newTestOrchestrator(t, WithClock(clock))

	id := o.CreateRequest()

	require.Equal(t, "new-request-1748779200000", id)
	require.Equal(t, id, o.State().SelectedRequestID)
	require.Equal(t, step.Idle, o.State().CurrentStep)

	clock.now = t0.Add(5 * time.Second)
	require.Equal(t, "new-request-1748779205000", o.CreateRequest())
}

func TestCreateRequest_UniqueUnderFrozenClock(t *testing.T) {
	o := newTestOrchestrator(t)

	seen := map[string]bool{}
	for range 50 {
		id := o.CreateRequest()
		require.True(t, strings.HasPrefix(id, RequestIDPrefix))
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestCreateRequest_ClockGoingBackwards(t *testing.T) {
	clock := &fixedClock{now: t0}
	o := newTestOrchestrator(t, WithClock(clock))

	first := o.CreateRequest()
	clock.now = t0.Add(-time.Hour)
	second := o.CreateRequest()

	require.Equal(t, "new-request-1748779200000", first)
	require.Equal(t, "new-request-1748779200001", second)
}

func TestToggles_IndependentOfSelection(t *testing.T) {
	o := newTestOrchestrator(t)
	o.SelectRequest("default-req-001")
	o.AdvanceStep(step.OutputReady)
	before := o.State()

	o.ToggleSidebar()
	o.ToggleRequestsExpanded()
	o.ToggleRightPane()

	after := o.State()
	require.False(t, after.Panels.SidebarOpen)
	require.False(t, after.Panels.RequestsExpanded)
	require.False(t, after.Panels.RightPaneVisible)
	require.False(t, after.OverlayVisible())
	require.Equal(t, before.SelectedRequestID, after.SelectedRequestID)
	require.Equal(t, before.CurrentStep, after.CurrentStep)
	require.Equal(t, before.Artifacts, after.Artifacts)

	o.SelectRequest("default-req-002")
	require.Equal(t, after.Panels, o.State().Panels, "selection leaves panels alone")
}

func TestCloseSidebar(t *testing.T) {
	o := newTestOrchestrator(t)
	require.True(t, o.State().OverlayVisible())

	o.CloseSidebar()
	require.False(t, o.State().OverlayVisible())
	o.CloseSidebar()
	require.False(t, o.State().Panels.SidebarOpen)
}

func TestSubscribe_ReplaysCurrentThenStreams(t *testing.T) {
	o := newTestOrchestrator(t)
	o.SelectRequest("default-req-003")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := o.Subscribe(ctx)

	first := receive(t, ch)
	require.Equal(t, pubsub.SnapshotEvent, first.Type)
	require.Equal(t, "default-req-003", first.Payload.SelectedRequestID)

	o.ToggleRightPane()
	second := receive(t, ch)
	require.False(t, second.Payload.Panels.RightPaneVisible)
}

func TestSubscribe_FailedOperationPublishesNothing(t *testing.T) {
	o := newTestOrchestrator(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := o.Subscribe(ctx)
	receive(t, ch)

	require.Error(t, o.SelectNamespace("nope"))

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event %+v", ev)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestSubscribe_ClosedOnClose(t *testing.T) {
	o, err := New(namespace.NewRegistry())
	require.NoError(t, err)
	ch := o.Subscribe(context.Background())
	receive(t, ch)

	o.Close()

	select {
	case _, ok := <-ch:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
}

func TestSnapshotsAreIndependent(t *testing.T) {
	o := newTestOrchestrator(t)
	o.SelectRequest("default-req-001")
	o.AdvanceStep(step.OutputReady)
	snap := o.State()

	o.SelectRequest("default-req-002")

	_, ok := snap.Preview()
	require.True(t, ok, "earlier snapshot keeps its artifact")
	require.Equal(t, "default-req-001", snap.SelectedRequestID)
}

func TestTracing_SpanPerOperation(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	o := newTestOrchestrator(t, WithTracer(tp.Tracer("test")), WithSessionID("sid-1"))

	o.SelectRequest("staging-req-001")
	o.AdvanceStep(step.OutputReady)
	_ = o.SelectNamespace("bogus")

	spans := rec.Ended()
	require.Len(t, spans, 3)
	require.Equal(t, "session.select_request", spans[0].Name())
	require.Equal(t, "session.advance_step", spans[1].Name())
	require.Equal(t, "session.select_namespace", spans[2].Name())

	attrs := map[string]string{}
	for _, kv := range spans[1].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	require.Equal(t, "sid-1", attrs[tracing.AttrSessionID])
	require.Equal(t, "default", attrs[tracing.AttrNamespaceID])
	require.Equal(t, "staging-req-001", attrs[tracing.AttrRequestID])
	require.Equal(t, "output-ready", attrs[tracing.AttrStep])
	require.Equal(t, "set-preview-and-intermediate", attrs[tracing.AttrUpdateKind])

	require.Equal(t, "Error", spans[2].Status().Code.String())
}

func receive(t *testing.T, ch <-chan pubsub.Event[State]) pubsub.Event[State] {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for snapshot")
		return pubsub.Event[State]{}
	}
}
