// Package workflow is a scripted stand-in for the conversational agent that
// drives a request through its processing steps.
package workflow

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/reqdesk/internal/log"
	"github.com/zjrosen/reqdesk/internal/step"
)

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser   Role = "user"
	RoleAgent  Role = "agent"
	RoleSystem Role = "system"
)

// Message is one transcript entry.
type Message struct {
	Role    Role
	Content string
	Time    time.Time
}

// AdvanceMsg asks the app to move the request to Step.
type AdvanceMsg struct {
	RequestID string
	Step      step.Step
	Run       int
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// next lists the step scheduled after each automatic step.
// OutputReady and Complete wait for the user.
var next = map[step.Step]step.Step{
	step.Analyzing:  step.Processing,
	step.Processing: step.OutputReady,
	step.Refining:   step.Complete,
}

var agentLines = map[step.Step]string{
	step.Analyzing:   "Analyzing the request and gathering context.",
	step.Processing:  "Processing. Generating a first draft of the output.",
	step.OutputReady: "The draft is in the preview pane. Send a message to refine it into the final report.",
	step.Refining:    "Refining the draft with your feedback.",
	step.Complete:    "Done. final_output.md is ready; press d in the preview pane to export it.",
}

// Engine runs one scripted conversation per selected request.
type Engine struct {
	delay      time.Duration
	clock      Clock
	requestID  string
	run        int
	current    step.Step
	transcript []Message
}

// New creates an engine that waits delay between automatic steps.
func New(delay time.Duration) *Engine {
	return &Engine{delay: delay, clock: realClock{}, current: step.Idle}
}

// SetClock replaces the clock used to stamp messages.
func (e *Engine) SetClock(c Clock) {
	if c != nil {
		e.clock = c
	}
}

// RequestID returns the request the engine is talking about.
func (e *Engine) RequestID() string { return e.requestID }

// Step returns the last step the engine emitted.
func (e *Engine) Step() step.Step { return e.current }

// Transcript returns a copy of the conversation.
func (e *Engine) Transcript() []Message {
	out := make([]Message, len(e.transcript))
	copy(out, e.transcript)
	return out
}

// Busy reports whether an automatic step is pending.
func (e *Engine) Busy() bool {
	_, ok := next[e.current]
	return ok
}

// Reset starts over for requestID. Pending ticks of the previous run are
// dropped when they arrive.
func (e *Engine) Reset(requestID string) {
	e.requestID = requestID
	e.run++
	e.current = step.Idle
	e.transcript = nil
	if requestID != "" {
		e.say(RoleSystem, "Request "+requestID+" selected. Describe what you need to start processing.")
	}
}

// Submit records a user message and returns the command that continues the
// workflow, if any.
func (e *Engine) Submit(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if e.requestID == "" {
		return nil
	}
	if text != "" {
		e.say(RoleUser, text)
	}

	switch e.current {
	case step.Idle:
		return e.schedule(step.Analyzing, 0)
	case step.OutputReady:
		return e.schedule(step.Refining, 0)
	case step.Complete:
		e.say(RoleAgent, "This request is complete. Create a new request with ctrl+n to start again.")
		return nil
	default:
		return nil
	}
}

// Handle applies an AdvanceMsg. It returns false for messages from an
// earlier run or another request; the caller must then ignore them.
func (e *Engine) Handle(msg AdvanceMsg) (step.Step, tea.Cmd, bool) {
	if msg.RequestID != e.requestID || msg.Run != e.run {
		log.Debug(log.CatWorkflow, "dropped stale step", "request", msg.RequestID, "step", msg.Step)
		return "", nil, false
	}

	e.current = msg.Step
	if line, ok := agentLines[msg.Step]; ok {
		e.say(RoleAgent, line)
	}
	log.Debug(log.CatWorkflow, "step", "request", e.requestID, "step", msg.Step)

	var cmd tea.Cmd
	if n, ok := next[msg.Step]; ok {
		cmd = e.schedule(n, e.delay)
	}
	return msg.Step, cmd, true
}

func (e *Engine) schedule(s step.Step, delay time.Duration) tea.Cmd {
	msg := AdvanceMsg{RequestID: e.requestID, Step: s, Run: e.run}
	if delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return msg })
}

func (e *Engine) say(role Role, content string) {
	e.transcript = append(e.transcript, Message{Role: role, Content: content, Time: e.clock.Now()})
}
