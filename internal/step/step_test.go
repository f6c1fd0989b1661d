package step

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/reqdesk/internal/artifact"
)

var now = time.Date(2025, 6, 1, 14, 30, 5, 123_000_000, time.FixedZone("CEST", 2*3600))

func TestTransition_OutputReady(t *testing.T) {
	u := Transition(OutputReady, Context{Now: now, RequestID: "default-req-003"})

	require.Equal(t, SetPreviewAndIntermediate, u.Kind)
	require.Equal(t, AgentOutputFile, u.Artifact.FileName)
	require.Equal(t, artifact.FileTypeText, u.Artifact.FileType)
	require.True(t, strings.HasPrefix(u.Artifact.Content, "Agent Output Preview"))
}

func TestTransition_CompleteStampsUTCMillis(t *testing.T) {
	u := Transition(Complete, Context{Now: now, RequestID: "default-req-003"})

	require.Equal(t, SetPreview, u.Kind)
	require.Equal(t, FinalOutputFile, u.Artifact.FileName)
	require.Equal(t, artifact.FileTypeMarkdown, u.Artifact.FileType)
	require.True(t, strings.HasPrefix(u.Artifact.Content, "# Final Processing Results"))
	require.Contains(t, u.Artifact.Content, "Timestamp: 2025-06-01T12:30:05.123Z")
}

func TestTransition_IsPure(t *testing.T) {
	ctx := Context{Now: now, RequestID: "staging-req-010"}

	require.Equal(t, Transition(Complete, ctx), Transition(Complete, ctx))
	require.Equal(t, Transition(OutputReady, ctx), Transition(OutputReady, ctx))
}

func TestTransition_OtherStepsPassThrough(t *testing.T) {
	for _, s := range []Step{Idle, Analyzing, Processing, Refining, "", "custom-stage"} {
		u := Transition(s, Context{Now: now})
		require.Equal(t, NoChange, u.Kind, "step %q", s)
		require.Zero(t, u.Artifact, "step %q", s)
	}
}

func TestStep_Label(t *testing.T) {
	require.Equal(t, "Output Ready", OutputReady.Label())
	require.Equal(t, "custom-stage", Step("custom-stage").Label())
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "no-change", NoChange.String())
	require.Equal(t, "set-preview", SetPreview.String())
	require.Equal(t, "set-preview-and-intermediate", SetPreviewAndIntermediate.String())
	require.Equal(t, "unknown", Kind(9).String())
}
