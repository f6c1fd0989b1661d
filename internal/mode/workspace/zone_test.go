package workspace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestZoneID_RoundTrip(t *testing.T) {
	for _, i := range []int{0, 1, 9, 42} {
		got, ok := parseRequestZoneID(makeRequestZoneID(i))
		require.True(t, ok)
		require.Equal(t, i, got)
	}
}

func TestParseRequestZoneID_Rejects(t *testing.T) {
	for _, id := range []string{"", "request:", "request:x", "request:-1", zoneChat, "tab:1"} {
		_, ok := parseRequestZoneID(id)
		require.False(t, ok, id)
	}
}
