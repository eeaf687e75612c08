package tui

import (
	"fmt"
	"strings"
)

// Banner renders the framed header printed before a server starts: the
// address being served, the content root and the stop hint.
func Banner(title, addr, root string) string {
	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteByte('\n')
	sb.WriteString(fmt.Sprintf("%s  %s\n", Label("Address:"), addr))
	sb.WriteString(fmt.Sprintf("%s  %s\n", Label("Root:"), root))
	sb.WriteString(Dim("Press Ctrl+C to stop"))
	return bannerStyle.Render(sb.String())
}
