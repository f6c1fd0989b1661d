package templates

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArtifactFS_ContainsTemplates(t *testing.T) {
	fsys := ArtifactFS()

	for _, name := range []string{AgentOutput, FinalOutput} {
		data, err := fs.ReadFile(fsys, name)
		require.NoError(t, err, name)
		require.NotEmpty(t, data, name)
	}
}

func TestTemplate_NoBrowserWording(t *testing.T) {
	var matches []string
	err := fs.WalkDir(ArtifactFS(), ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(ArtifactFS(), path)
		if err != nil {
			return err
		}
		if strings.Contains(strings.ToLower(string(data)), "click") {
			matches = append(matches, path)
		}
		return nil
	})

	require.NoError(t, err)
	require.Empty(t, matches, "found pointer-device wording in templates: %v", matches)
}

func TestRender_FinalOutput(t *testing.T) {
	out, err := Render(FinalOutput, map[string]string{
		"RequestID": "staging-req-004",
		"Timestamp": "2025-06-01T12:00:00.000Z",
	})

	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "# Final Processing Results\n"))
	require.Contains(t, out, "Timestamp: 2025-06-01T12:00:00.000Z")
	require.Contains(t, out, "Request: staging-req-004")
}

func TestRender_MissingKey(t *testing.T) {
	_, err := Render(FinalOutput, map[string]string{"RequestID": "x"})
	require.Error(t, err)
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render("nope.tmpl", nil)
	require.Error(t, err)
}
