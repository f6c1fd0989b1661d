package preview

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/zjrosen/reqdesk/internal/artifact"
	"github.com/zjrosen/reqdesk/internal/log"
)

// ErrInvalidFileName is returned for names that would escape the export dir.
var ErrInvalidFileName = errors.New("invalid export file name")

// Download describes an exported artifact.
type Download struct {
	Path     string
	MIMEType string
	Size     int
}

// Exporter writes artifacts into a directory.
type Exporter struct {
	fs  afero.Fs
	dir string
}

// NewExporter writes into dir on fs. An empty dir means the working directory.
func NewExporter(fs afero.Fs, dir string) *Exporter {
	if dir == "" {
		dir = "."
	}
	return &Exporter{fs: fs, dir: dir}
}

// NewOSExporter writes into dir on the real filesystem.
func NewOSExporter(dir string) *Exporter {
	return NewExporter(afero.NewOsFs(), dir)
}

// Dir returns the export directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// Export writes a under its own file name. The returned bool is false when
// there was nothing to export.
func (e *Exporter) Export(a artifact.Artifact, ok bool) (Download, bool, error) {
	if !ok || a.Content == "" || a.FileName == "" {
		return Download{}, false, nil
	}
	if err := validateFileName(a.FileName); err != nil {
		return Download{}, false, err
	}

	if err := e.fs.MkdirAll(e.dir, 0o755); err != nil {
		return Download{}, false, fmt.Errorf("creating export dir: %w", err)
	}

	path := filepath.Join(e.dir, a.FileName)
	data := []byte(a.Content)
	if err := afero.WriteFile(e.fs, path, data, 0o644); err != nil {
		return Download{}, false, fmt.Errorf("writing %s: %w", a.FileName, err)
	}

	log.Info(log.CatPreview, "exported artifact", "path", path, "bytes", len(data))
	return Download{
		Path:     path,
		MIMEType: a.FileType.MIMEType(),
		Size:     len(data),
	}, true, nil
}

func validateFileName(name string) error {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}
	return nil
}
