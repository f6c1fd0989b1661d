package workspace

import (
	"fmt"
	"strconv"
	"strings"
)

// Zone IDs:
// - request rows: request:{index on page}
// - namespace arrows: ns-prev, ns-next
// - panes: sidebar, chat, chat-input, preview
const (
	zoneRequestPrefix = "request:"
	zoneNSPrev        = "ns-prev"
	zoneNSNext        = "ns-next"
	zoneSidebar       = "sidebar"
	zoneChat          = "chat"
	zoneChatInput     = "chat-input"
	zonePreview       = "preview"
	zonePagePrev      = "page-prev"
	zonePageNext      = "page-next"
)

func makeRequestZoneID(index int) string {
	return fmt.Sprintf("%s%d", zoneRequestPrefix, index)
}

func parseRequestZoneID(id string) (int, bool) {
	if !strings.HasPrefix(id, zoneRequestPrefix) {
		return 0, false
	}
	i, err := strconv.Atoi(strings.TrimPrefix(id, zoneRequestPrefix))
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}
