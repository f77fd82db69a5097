package csview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nick-f925/csv-editor/style"
)

// RenderFooter renders a footer with metadata about the table.
func RenderFooter(current, total int, sorted, filename string, width int) string {

	left := fmt.Sprintf("%d/%d", current, total)
	if sorted != "" {
		left = left + "  " + sorted
	}
	right := filename

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.MutedStyle.Render(left + strings.Repeat(" ", padding) + right)
}

// FormatSort describes a sort column and direction, suitable for the footer.
func FormatSort(label string, desc bool) string {

	if desc {
		return label + " ▼"
	}
	return label + " ▲"
}
