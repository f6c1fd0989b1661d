// Package session owns the state shared by the workspace panes and applies
// every change to it.
//
// An Orchestrator is driven from a single goroutine (the Bubble Tea update
// loop) and takes no locks. Other goroutines observe it only through the
// snapshots published on Subscribe.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/reqdesk/internal/log"
	"github.com/zjrosen/reqdesk/internal/namespace"
	"github.com/zjrosen/reqdesk/internal/panels"
	"github.com/zjrosen/reqdesk/internal/pubsub"
	"github.com/zjrosen/reqdesk/internal/step"
	"github.com/zjrosen/reqdesk/internal/tracing"
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithClock replaces the wall clock used for request ids and timestamps.
func WithClock(c Clock) Option {
	return func(o *Orchestrator) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithTracer records a span per operation.
func WithTracer(t trace.Tracer) Option {
	return func(o *Orchestrator) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithNamespace sets the namespace selected at start.
func WithNamespace(id string) Option {
	return func(o *Orchestrator) {
		o.initialNamespace = id
	}
}

// WithPanels sets the initial panel visibility.
func WithPanels(v panels.Visibility) Option {
	return func(o *Orchestrator) {
		o.state.Panels = v
	}
}

// WithSessionID overrides the generated session id.
func WithSessionID(id string) Option {
	return func(o *Orchestrator) {
		if id != "" {
			o.state.SessionID = id
		}
	}
}

// Orchestrator holds the canonical session State.
type Orchestrator struct {
	registry *namespace.Registry
	clock    Clock
	tracer   trace.Tracer
	ids      RequestIDs
	broker   *pubsub.Broker[State]
	state    State

	initialNamespace string
}

// New starts a session. It fails only when the initial namespace is not
// registered.
func New(registry *namespace.Registry, opts ...Option) (*Orchestrator, error) {
	o := &Orchestrator{
		registry: registry,
		clock:    realClock{},
		tracer:   noop.NewTracerProvider().Tracer("session"),
		broker:   pubsub.NewBroker[State](pubsub.WithReplayLast()),
		state: State{
			SessionID:   uuid.NewString(),
			NamespaceID: namespace.Default,
			CurrentStep: step.Idle,
			Panels:      panels.Default(),
		},
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.initialNamespace != "" {
		if err := o.checkNamespace(o.initialNamespace); err != nil {
			return nil, err
		}
		o.state.NamespaceID = o.initialNamespace
	}

	log.Info(log.CatSession, "session started",
		"session", o.state.SessionID, "namespace", o.state.NamespaceID)
	o.publish()
	return o, nil
}

// State returns a snapshot of the current state.
func (o *Orchestrator) State() State {
	return o.state
}

// Registry returns the namespace registry the session validates against.
func (o *Orchestrator) Registry() *namespace.Registry {
	return o.registry
}

// Subscribe streams a snapshot after every change, starting with the
// current one. The channel closes when ctx is done or Close is called.
func (o *Orchestrator) Subscribe(ctx context.Context) <-chan pubsub.Event[State] {
	return o.broker.Subscribe(ctx)
}

// Close ends all subscriptions.
func (o *Orchestrator) Close() {
	o.broker.Close()
}

// SelectNamespace switches the current namespace. The selected request,
// step and artifacts are left as they are. Unknown ids leave the state
// untouched and return an *InvalidNamespaceError.
func (o *Orchestrator) SelectNamespace(id string) error {
	span := o.startSpan("select_namespace")
	defer span.End()

	if err := o.checkNamespace(id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn(log.CatSession, "rejected namespace", "namespace", id)
		return err
	}

	o.state.NamespaceID = id
	o.finish(span, "namespace selected")
	return nil
}

// SelectRequest selects id and starts it over: the step returns to idle
// and both artifacts are cleared. id is not checked against the catalog.
func (o *Orchestrator) SelectRequest(id string) {
	span := o.startSpan("select_request")
	defer span.End()

	o.selectRequest(id)
	o.finish(span, "request selected")
}

// CreateRequest selects a newly issued request id and returns it.
func (o *Orchestrator) CreateRequest() string {
	span := o.startSpan("create_request")
	defer span.End()

	id := o.ids.Next(o.clock.Now())
	o.selectRequest(id)
	o.finish(span, "request created")
	return id
}

// AdvanceStep records s as the current step and applies its preview update.
// Steps are not checked for order.
func (o *Orchestrator) AdvanceStep(s step.Step) {
	span := o.startSpan("advance_step")
	defer span.End()

	o.state.CurrentStep = s
	u := step.Transition(s, step.Context{
		Now:       o.clock.Now(),
		RequestID: o.state.SelectedRequestID,
	})
	o.state.Artifacts.Apply(u)
	span.SetAttributes(traceKind(u.Kind))
	o.finish(span, "step advanced", "update", u.Kind)
}

// ToggleSidebar flips sidebar visibility.
func (o *Orchestrator) ToggleSidebar() {
	o.togglePanel("toggle_sidebar", o.state.Panels.ToggleSidebar)
}

// ToggleRequestsExpanded flips the request list section.
func (o *Orchestrator) ToggleRequestsExpanded() {
	o.togglePanel("toggle_requests_expanded", o.state.Panels.ToggleRequestsExpanded)
}

// ToggleRightPane flips the preview pane.
func (o *Orchestrator) ToggleRightPane() {
	o.togglePanel("toggle_right_pane", o.state.Panels.ToggleRightPane)
}

// CloseSidebar hides the sidebar, dismissing the overlay.
func (o *Orchestrator) CloseSidebar() {
	o.togglePanel("close_sidebar", o.state.Panels.CloseSidebar)
}

func (o *Orchestrator) togglePanel(op string, apply func()) {
	span := o.startSpan(op)
	defer span.End()

	apply()
	o.finish(span, "panels changed",
		"sidebar", o.state.Panels.SidebarOpen,
		"requests", o.state.Panels.RequestsExpanded,
		"preview", o.state.Panels.RightPaneVisible)
}

func (o *Orchestrator) selectRequest(id string) {
	o.state.SelectedRequestID = id
	o.state.CurrentStep = step.Idle
	o.state.Artifacts.Clear()
}

func (o *Orchestrator) checkNamespace(id string) error {
	if o.registry.IsValid(id) {
		return nil
	}
	suggestion, _ := o.registry.Suggest(id)
	return &InvalidNamespaceError{ID: id, Suggestion: suggestion}
}

func (o *Orchestrator) startSpan(op string) trace.Span {
	_, span := o.tracer.Start(context.Background(), tracing.SpanPrefixSession+op)
	return span
}

// finish stamps the post-operation state on span, logs it and publishes it.
func (o *Orchestrator) finish(span trace.Span, msg string, fields ...any) {
	span.SetAttributes(tracing.SessionAttrs(
		o.state.SessionID,
		o.state.NamespaceID,
		o.state.SelectedRequestID,
		o.state.CurrentStep.String(),
	)...)
	span.SetStatus(codes.Ok, "")

	fields = append(fields,
		"namespace", o.state.NamespaceID,
		"request", o.state.SelectedRequestID,
		"step", o.state.CurrentStep)
	log.Debug(log.CatSession, msg, fields...)

	o.publish()
}

func (o *Orchestrator) publish() {
	o.broker.Publish(pubsub.SnapshotEvent, o.state)
}

func traceKind(k step.Kind) attribute.KeyValue {
	return attribute.String(tracing.AttrUpdateKind, k.String())
}
