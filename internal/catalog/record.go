// Package catalog produces the request records shown in the request browser
// and splits them into pages.
package catalog

import (
	"context"
	"fmt"
	"time"
)

// Status is the processing state of a request.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Statuses lists every status in a stable order.
var Statuses = []Status{StatusPending, StatusProcessing, StatusCompleted, StatusFailed}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsValid returns true if s is a recognized status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

// ParseStatus converts a stored string into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("unknown request status %q", s)
	}
	return st, nil
}

// Record is one request in a namespace.
type Record struct {
	ID           string    `json:"id" yaml:"id"`
	Namespace    string    `json:"namespace" yaml:"namespace"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
	LastModified time.Time `json:"last_modified" yaml:"last_modified"`
	Status       Status    `json:"status" yaml:"status"`
}

// RecordID formats the id of the n-th (1-based) record of a namespace.
func RecordID(namespaceID string, n int) string {
	return fmt.Sprintf("%s-req-%03d", namespaceID, n)
}

// Source lists the records of a namespace, most recent first.
type Source interface {
	List(ctx context.Context, namespaceID string) ([]Record, error)
}
