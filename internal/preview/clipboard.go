package preview

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/zjrosen/reqdesk/internal/artifact"
)

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	Copy(text string) error
}

// SystemClipboard writes to the platform clipboard (pbcopy, clip, xclip/xsel
// or wl-copy).
type SystemClipboard struct{}

// Copy copies text to the system clipboard.
func (SystemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// MockClipboard records copied text.
type MockClipboard struct {
	Copied []string
	Err    error
}

// Copy records text unless Err is set.
func (m *MockClipboard) Copy(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Copied = append(m.Copied, text)
	return nil
}

// CopyArtifact copies the artifact's content. It reports false, without
// touching the clipboard, when there is nothing to copy.
func CopyArtifact(cb Clipboard, a artifact.Artifact, ok bool) (bool, error) {
	if !ok || a.Content == "" {
		return false, nil
	}
	if err := cb.Copy(a.Content); err != nil {
		return false, err
	}
	return true, nil
}
