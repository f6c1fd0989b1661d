package session

import (
	"fmt"
	"time"
)

// RequestIDPrefix prefixes ids of requests created in the workspace.
const RequestIDPrefix = "new-request-"

// RequestIDs issues "new-request-<epoch millis>" ids. If the clock has not
// moved past the last issued millisecond the next one is last+1, so ids
// never repeat within a session.
type RequestIDs struct {
	last int64
}

// Next returns a fresh id for now.
func (g *RequestIDs) Next(now time.Time) string {
	ms := now.UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return fmt.Sprintf("%s%d", RequestIDPrefix, ms)
}
