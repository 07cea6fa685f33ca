package components

import (
	"strconv"
	"strings"

	"github.com/mmcdole/folio/internal/tui/styles"
)

// RenderPagination renders one button per page with the current page highlighted.
// Nothing is rendered when there are no pages.
func RenderPagination(pageCount, current int) string {
	if pageCount <= 0 {
		return ""
	}
	buttons := make([]string, pageCount)
	for i := 1; i <= pageCount; i++ {
		label := "[" + itoa(i) + "]"
		if i == current {
			buttons[i-1] = styles.ActivePageButtonStyle.Render(label)
		} else {
			buttons[i-1] = styles.PageButtonStyle.Render(label)
		}
	}
	return strings.Join(buttons, "")
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
