// Package templates holds the embedded text of the artifacts produced by the
// processing steps.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"text/template"
)

// Artifact template names, relative to ArtifactFS.
const (
	AgentOutput = "agent_output.txt.tmpl"
	FinalOutput = "final_output.md.tmpl"
)

//go:embed artifacts
var artifactTemplates embed.FS

var parsed = template.Must(template.New("artifacts").
	Option("missingkey=error").
	ParseFS(artifactTemplates, "artifacts/*.tmpl"))

// ArtifactFS returns the embedded artifact templates.
func ArtifactFS() fs.FS {
	sub, err := fs.Sub(artifactTemplates, "artifacts")
	if err != nil {
		panic(err) // directory is embedded above
	}
	return sub
}

// Render executes the named artifact template with data.
func Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := parsed.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}
