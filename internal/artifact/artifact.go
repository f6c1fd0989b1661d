// Package artifact defines the content shown in the preview pane.
package artifact

// FileType selects how an artifact is rendered and exported.
type FileType string

const (
	FileTypeText     FileType = "text"
	FileTypeMarkdown FileType = "markdown"
)

// MIMEType returns the media type used when exporting content of type t.
func (t FileType) MIMEType() string {
	if t == FileTypeMarkdown {
		return "text/markdown"
	}
	return "text/plain"
}

// Label is the badge text shown next to the file name.
func (t FileType) Label() string {
	if t == FileTypeMarkdown {
		return "MARKDOWN"
	}
	return "TEXT"
}

// Artifact is an immutable piece of content with a file name.
type Artifact struct {
	Content  string
	FileName string
	FileType FileType
}

// Chars returns the content length in characters.
func (a Artifact) Chars() int {
	return len([]rune(a.Content))
}
