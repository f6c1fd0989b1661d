// Package step models the processing stages of a request and the preview
// content each stage produces.
package step

import (
	"time"

	"github.com/zjrosen/reqdesk/internal/artifact"
	"github.com/zjrosen/reqdesk/internal/log"
	"github.com/zjrosen/reqdesk/internal/templates"
)

// Step is a processing stage. Values other than the constants below are
// accepted and pass through without effect.
type Step string

const (
	Idle        Step = "idle"
	Analyzing   Step = "analyzing"
	Processing  Step = "processing"
	OutputReady Step = "output-ready"
	Refining    Step = "refining"
	Complete    Step = "complete"
)

// TimestampLayout is the UTC millisecond format stamped into final reports.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Artifact file names.
const (
	AgentOutputFile = "agent_output.txt"
	FinalOutputFile = "final_output.md"
)

func (s Step) String() string {
	return string(s)
}

// Label is the human readable form shown in the step indicator.
func (s Step) Label() string {
	switch s {
	case Idle:
		return "Idle"
	case Analyzing:
		return "Analyzing"
	case Processing:
		return "Processing"
	case OutputReady:
		return "Output Ready"
	case Refining:
		return "Refining"
	case Complete:
		return "Complete"
	default:
		return string(s)
	}
}

// Context carries the inputs a transition may read.
type Context struct {
	Now       time.Time
	RequestID string
}

// Kind tags an Update.
type Kind int

const (
	// NoChange leaves the preview and intermediate artifacts alone.
	NoChange Kind = iota
	// SetPreview replaces the preview only.
	SetPreview
	// SetPreviewAndIntermediate replaces the preview and the intermediate
	// with the same artifact.
	SetPreviewAndIntermediate
)

func (k Kind) String() string {
	switch k {
	case NoChange:
		return "no-change"
	case SetPreview:
		return "set-preview"
	case SetPreviewAndIntermediate:
		return "set-preview-and-intermediate"
	default:
		return "unknown"
	}
}

// Update is the effect of entering a step.
// Artifact is meaningful only when Kind is not NoChange.
type Update struct {
	Kind     Kind
	Artifact artifact.Artifact
}

// Transition returns the effect of entering s. It has no side effects.
func Transition(s Step, ctx Context) Update {
	switch s {
	case OutputReady:
		content, err := templates.Render(templates.AgentOutput, ctx)
		if err != nil {
			log.ErrorErr(log.CatStep, "render agent output", err)
			return Update{Kind: NoChange}
		}
		return Update{
			Kind: SetPreviewAndIntermediate,
			Artifact: artifact.Artifact{
				Content:  content,
				FileName: AgentOutputFile,
				FileType: artifact.FileTypeText,
			},
		}
	case Complete:
		content, err := templates.Render(templates.FinalOutput, reportData{
			RequestID: ctx.RequestID,
			Timestamp: ctx.Now.UTC().Format(TimestampLayout),
		})
		if err != nil {
			log.ErrorErr(log.CatStep, "render final output", err)
			return Update{Kind: NoChange}
		}
		return Update{
			Kind: SetPreview,
			Artifact: artifact.Artifact{
				Content:  content,
				FileName: FinalOutputFile,
				FileType: artifact.FileTypeMarkdown,
			},
		}
	default:
		return Update{Kind: NoChange}
	}
}

type reportData struct {
	RequestID string
	Timestamp string
}
