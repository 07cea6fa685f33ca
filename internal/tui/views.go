package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/folio/internal/domain"
	"github.com/mmcdole/folio/internal/tui/components"
	"github.com/mmcdole/folio/internal/tui/styles"
)

// View renders the UI
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	bodyHeight := m.bodyHeight()
	var body string
	switch {
	case m.State == StateHelp:
		body = lipgloss.Place(m.Width, bodyHeight, lipgloss.Center, lipgloss.Center, m.renderHelp())
	case m.State == StatePickingGenre:
		body = lipgloss.Place(m.Width, bodyHeight, lipgloss.Center, lipgloss.Center, m.GenrePicker.View())
	case m.Screen == ScreenWishlist:
		body = m.renderWishlist(bodyHeight)
	case m.Screen == ScreenDetail:
		body = m.renderDetail()
	default:
		body = m.renderList(bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body),
		m.renderFooter(),
	)
}

func (m Model) bodyHeight() int {
	h := m.Height - HeaderHeight - FooterHeight
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) renderHeader() string {
	title := "folio"
	switch m.Screen {
	case ScreenWishlist:
		title += " · Wishlist"
	case ScreenDetail:
		title += " · Book"
	default:
		title += " · Catalog"
	}
	wished := fmt.Sprintf("%s %d", styles.HeartFullChar, m.WishlistSvc.Len())
	gap := m.Width - lipgloss.Width(title) - lipgloss.Width(wished) - 2
	if gap < 1 {
		gap = 1
	}
	bar := styles.HeaderStyle.Render(styles.Pad(title+strings.Repeat(" ", gap)+wished, m.Width-2))

	var sub string
	if m.Screen == ScreenList {
		genre := m.SettingsSvc.Current().Genre
		sub = " " + m.Search.View() + "   " +
			styles.DimStyle.Render("genre: ") + styles.AccentStyle.Render(genre)
	}
	return bar + "\n" + sub
}

// renderList draws the current page of the catalog
func (m Model) renderList(height int) string {
	if !m.Loaded {
		if m.LoadErr != nil {
			return RenderError(m.LoadErr, m.Width)
		}
		return components.RenderSkeleton(m.SkeletonRows, m.Width-4)
	}

	page := m.CurrentPage()
	if len(page.Books) == 0 {
		return styles.DimStyle.Render("  No books match the current filter.")
	}

	start, end := visibleWindow(len(page.Books), m.Cursor, height/ListRowLines)
	var b strings.Builder
	for i := start; i < end; i++ {
		book := page.Books[i]
		b.WriteString(RenderBookItem(book, m.WishlistSvc.IsMember(book.ID), i == m.Cursor, m.Width))
		b.WriteString("\n")
	}
	return b.String()
}

// renderWishlist draws the wished books that exist in the catalog
func (m Model) renderWishlist(height int) string {
	if !m.Loaded {
		if m.LoadErr != nil {
			return RenderError(m.LoadErr, m.Width)
		}
		return components.RenderSkeleton(m.SkeletonRows, m.Width-4)
	}
	if len(m.WishRows) == 0 {
		return styles.DimStyle.Render("  No books in your wishlist.")
	}

	start, end := visibleWindow(len(m.WishRows), m.WishCursor, height/ListRowLines)
	var b strings.Builder
	for i := start; i < end; i++ {
		row := m.WishRows[i]
		if row.Fading {
			b.WriteString(RenderFadingItem(row.Book, m.Width))
		} else {
			b.WriteString(RenderBookItem(row.Book, true, i == m.WishCursor, m.Width))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderDetail draws the single-book view
func (m Model) renderDetail() string {
	switch {
	case m.Detail.Loading:
		return components.RenderSkeleton(1, m.Width-4)
	case m.Detail.Err != nil:
		if errors.Is(m.Detail.Err, domain.ErrBookNotFound) {
			return styles.ErrorStyle.Render(fmt.Sprintf("  No book with id %d.", m.Detail.ID))
		}
		return RenderError(m.Detail.Err, m.Width)
	case m.Detail.Book == nil:
		return ""
	}
	return m.DetailView.View()
}

// syncDetailViewport re-renders the detail content into the viewport,
// keeping the selected link on screen
func (m *Model) syncDetailViewport() {
	if m.Detail.Book == nil {
		return
	}
	content, cursorLine := RenderBookDetail(*m.Detail.Book, m.WishlistSvc.IsMember(m.Detail.Book.ID), m.Detail.Cursor, m.Width)
	m.DetailView.SetContent(content)

	if cursorLine < m.DetailView.YOffset {
		m.DetailView.SetYOffset(cursorLine)
	} else if m.DetailView.Height > 0 && cursorLine >= m.DetailView.YOffset+m.DetailView.Height {
		m.DetailView.SetYOffset(cursorLine - m.DetailView.Height + 1)
	}
}

func (m Model) renderFooter() string {
	var top string
	switch m.Screen {
	case ScreenList:
		if m.Loaded {
			page := m.CurrentPage()
			top = " " + components.RenderPagination(page.PageCount, page.CurrentPage) +
				styles.DimStyle.Render(fmt.Sprintf("  %d books", page.FilteredCount))
		}
	case ScreenWishlist:
		if m.Loaded {
			top = styles.DimStyle.Render(fmt.Sprintf(" %d of %d wished books in catalog", len(m.WishRows), m.WishlistSvc.Len()))
		}
	}

	var status string
	switch {
	case m.StatusMsg != "" && m.StatusIsErr:
		status = styles.ErrorStyle.Render(m.StatusMsg)
	case m.StatusMsg != "":
		status = styles.SuccessStyle.Render(m.StatusMsg)
	case m.loading():
		status = RenderSpinner(m.SpinnerFrame) + styles.DimStyle.Render(" loading")
	default:
		status = styles.HelpKeyStyle.Render("?") + styles.HelpDescStyle.Render(" help")
	}
	return top + "\n " + styles.Truncate(status, m.Width-2)
}

// helpEntry is one line of the help overlay
type helpEntry struct {
	key  string
	desc string
}

func (m Model) renderHelp() string {
	var entries []helpEntry
	switch m.Screen {
	case ScreenWishlist:
		entries = []helpEntry{
			{"j/k", "move"},
			{"x/space", "remove from wishlist"},
			{"enter", "open book"},
			{"esc/c", "back to catalog"},
		}
	case ScreenDetail:
		entries = []helpEntry{
			{"j/k", "select link"},
			{"enter", "open link"},
			{"space", "toggle wishlist"},
			{"pgup/pgdn", "scroll"},
			{"esc", "back"},
		}
	default:
		entries = []helpEntry{
			{"j/k", "move"},
			{"h/l [ ]", "previous/next page"},
			{"1-9", "jump to page"},
			{"/", "search titles"},
			{"g", "choose genre"},
			{"esc", "clear search"},
			{"space", "toggle wishlist"},
			{"enter", "open book"},
			{"w", "wishlist"},
		}
	}
	entries = append(entries, helpEntry{"?", "close help"}, helpEntry{"q", "quit"})

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = styles.HelpKeyStyle.Render(styles.Pad(e.key, 10)) + styles.HelpDescStyle.Render(e.desc)
	}
	return styles.ModalStyle.Render(styles.ModalTitleStyle.Render("Keys") + "\n" + strings.Join(lines, "\n"))
}

// visibleWindow returns the [start, end) range of rows to draw so the cursor stays visible
func visibleWindow(total, cursor, capacity int) (int, int) {
	if capacity < 1 {
		capacity = 1
	}
	if total <= capacity {
		return 0, total
	}
	start := cursor - capacity + 1
	if start < 0 {
		start = 0
	}
	return start, start + capacity
}

// RenderBookItem renders a book as a title line, an author line and a genre line
func RenderBookItem(book domain.Book, wished, selected bool, width int) string {
	heartColor := styles.DimGray
	heart := styles.HeartEmptyChar
	if wished {
		heartColor = styles.Burgundy
		heart = styles.HeartFullChar
	}
	cover := styles.NoCoverChar
	if book.CoverURL() != "" {
		cover = styles.CoverChar
	}

	inner := width - 8
	title := styles.Truncate(fmt.Sprintf("#%d %s", book.ID, book.Title), inner)
	authors := styles.Truncate(book.AuthorNames(), inner)
	genres := styles.Truncate(book.Genres(), inner)

	dim := styles.DimGray
	lines := []string{
		styles.RenderListRow([]styles.RowPart{
			{Text: heart, Foreground: &heartColor},
			{Text: " " + cover + " "},
			{Text: title},
		}, selected, width),
		styles.RenderListRow([]styles.RowPart{
			{Text: "    "},
			{Text: authors},
		}, selected, width),
		styles.RenderListRow([]styles.RowPart{
			{Text: "    "},
			{Text: genres, Foreground: &dim},
		}, selected, width),
	}
	return strings.Join(lines, "\n") + "\n"
}

// RenderFadingItem renders a wishlist row that is on its way out
func RenderFadingItem(book domain.Book, width int) string {
	title := styles.Truncate(fmt.Sprintf("#%d %s", book.ID, book.Title), width-8)
	return " " + styles.FadingItemStyle.Render(styles.HeartEmptyChar+"   "+title) + "\n\n\n"
}

// RenderBookDetail renders the full detail content. It returns the content
// and the line index of the selected link.
func RenderBookDetail(book domain.Book, wished bool, linkCursor, width int) (string, int) {
	var lines []string

	lines = append(lines, " "+styles.RenderHeart(wished)+" "+styles.TitleStyle.Render(wordWrap(book.Title, width-4)), "")

	field := func(label, value string) {
		if value == "" {
			value = "-"
		}
		lines = append(lines, " "+styles.SubtitleStyle.Render(styles.Pad(label, 10))+wordWrap(value, width-14))
	}
	field("Cover", book.CoverURL())
	field("Authors", book.AuthorNames())
	field("Subjects", strings.Join(book.Subjects, ", "))
	if book.DownloadCount > 0 {
		field("Downloads", fmt.Sprintf("%d", book.DownloadCount))
	}

	lines = append(lines, "", " "+styles.TitleStyle.Render("Formats"))

	// Entries may wrap, so count rendered lines rather than entries
	lineCount := func() int {
		return strings.Count(strings.Join(lines, "\n"), "\n") + 1
	}

	cursorLine := lineCount()
	links := book.Links()
	if len(links) == 0 {
		lines = append(lines, styles.DimStyle.Render("   no formats available"))
	}
	for i, link := range links {
		label := styles.Pad(link.Label, 24)
		url := styles.Truncate(link.URL, width-30)
		if i == linkCursor {
			cursorLine = lineCount()
			lines = append(lines, " "+styles.AccentStyle.Render("▸ "+label)+styles.DimStyle.Render(url))
		} else {
			lines = append(lines, "   "+label+styles.DimStyle.Render(url))
		}
	}

	return strings.Join(lines, "\n"), cursorLine
}

// wordWrap wraps text to the specified width
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wordLen := lipgloss.Width(word)

		if lineLen+wordLen+1 > width && lineLen > 0 {
			result.WriteString("\n")
			lineLen = 0
		}

		if i > 0 && lineLen > 0 {
			result.WriteString(" ")
			lineLen++
		}

		result.WriteString(word)
		lineLen += wordLen
	}

	return result.String()
}

// RenderSpinner renders a loading spinner
func RenderSpinner(frame int) string {
	return styles.SpinnerStyle.Render(styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])
}

// RenderError renders an error message
func RenderError(err error, width int) string {
	msg := wordWrap(err.Error(), width-4)
	return styles.ErrorStyle.Render("  Error: " + msg)
}
