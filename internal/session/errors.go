package session

import (
	"errors"
	"fmt"
)

// ErrInvalidNamespace matches every *InvalidNamespaceError via errors.Is.
var ErrInvalidNamespace = errors.New("invalid namespace")

// InvalidNamespaceError reports a namespace id missing from the registry.
type InvalidNamespaceError struct {
	ID string
	// Suggestion is the closest registered id, if any.
	Suggestion string
}

func (e *InvalidNamespaceError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("invalid namespace %q (did you mean %q?)", e.ID, e.Suggestion)
	}
	return fmt.Sprintf("invalid namespace %q", e.ID)
}

// Is reports whether target is ErrInvalidNamespace.
func (e *InvalidNamespaceError) Is(target error) bool {
	return target == ErrInvalidNamespace
}
