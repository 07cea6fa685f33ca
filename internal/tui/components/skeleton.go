package components

import (
	"strings"

	"github.com/mmcdole/folio/internal/tui/styles"
)

// RenderSkeleton renders n placeholder book rows shown while data loads
func RenderSkeleton(n, width int) string {
	if width < 12 {
		width = 12
	}
	title := strings.Repeat("▒", width*2/3)
	author := strings.Repeat("░", width/3)

	rows := make([]string, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows,
			styles.SkeletonStyle.Render("  ▢ "+title)+"\n"+
				styles.SkeletonStyle.Render("    "+author)+"\n")
	}
	return strings.Join(rows, "\n")
}
