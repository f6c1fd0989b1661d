package workspace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		in   time.Time
		want string
	}{
		{now, "now"},
		{now.Add(time.Hour), "now"},
		{now.Add(-59 * time.Second), "now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-49 * time.Hour), "2d ago"},
		{now.Add(-8 * 24 * time.Hour), "1w ago"},
		{now.Add(-90 * 24 * time.Hour), "3mo ago"},
		{now.Add(-400 * 24 * time.Hour), "1y ago"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, relativeTime(tt.in, now), tt.in.String())
	}
}
