package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/folio/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

const (
	genrePickerWidth   = 36
	genrePickerVisible = 12
)

// GenrePicker is a popup for choosing the genre filter, with type-to-filter
type GenrePicker struct {
	visible bool
	options []string
	active  string

	filter  textinput.Model
	matches []fuzzy.Match // nil when no filter text
	cursor  int
	offset  int
}

// NewGenrePicker creates a new genre picker
func NewGenrePicker() GenrePicker {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "> "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle
	ti.Width = genrePickerWidth - 4

	return GenrePicker{filter: ti}
}

// Show displays the picker with the given options, cursor on the active genre
func (g *GenrePicker) Show(options []string, active string) tea.Cmd {
	g.visible = true
	g.options = options
	g.active = active
	g.filter.SetValue("")
	g.matches = nil
	g.cursor = 0
	g.offset = 0
	for i, opt := range options {
		if opt == active {
			g.cursor = i
			break
		}
	}
	g.clampOffset()
	return g.filter.Focus()
}

// Hide dismisses the picker
func (g *GenrePicker) Hide() {
	g.visible = false
	g.filter.Blur()
}

// IsVisible returns whether the picker is shown
func (g GenrePicker) IsVisible() bool {
	return g.visible
}

// visibleCount is the number of rows after filtering
func (g GenrePicker) visibleCount() int {
	if g.filter.Value() == "" {
		return len(g.options)
	}
	return len(g.matches)
}

// optionAt maps a visible row to its option text
func (g GenrePicker) optionAt(row int) (string, []int) {
	if g.filter.Value() == "" {
		return g.options[row], nil
	}
	m := g.matches[row]
	return m.Str, m.MatchedIndexes
}

func (g *GenrePicker) clampOffset() {
	if g.cursor < g.offset {
		g.offset = g.cursor
	}
	if g.cursor >= g.offset+genrePickerVisible {
		g.offset = g.cursor - genrePickerVisible + 1
	}
}

// Update processes a message, returns (picker, cmd, selection).
// selection is non-nil when the user confirmed a genre.
func (g GenrePicker) Update(msg tea.Msg) (GenrePicker, tea.Cmd, *string) {
	if !g.visible {
		return g, nil, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		g.filter, cmd = g.filter.Update(msg)
		return g, cmd, nil
	}

	switch keyMsg.String() {
	case "down", "ctrl+n", "ctrl+j":
		if g.cursor < g.visibleCount()-1 {
			g.cursor++
			g.clampOffset()
		}
		return g, nil, nil
	case "up", "ctrl+p", "ctrl+k":
		if g.cursor > 0 {
			g.cursor--
			g.clampOffset()
		}
		return g, nil, nil
	case "enter":
		if g.visibleCount() == 0 {
			return g, nil, nil
		}
		chosen, _ := g.optionAt(g.cursor)
		g.Hide()
		return g, nil, &chosen
	case "esc":
		g.Hide()
		return g, nil, nil
	}

	before := g.filter.Value()
	var cmd tea.Cmd
	g.filter, cmd = g.filter.Update(msg)
	if query := g.filter.Value(); query != before {
		if query != "" {
			g.matches = fuzzy.Find(query, g.options)
		} else {
			g.matches = nil
		}
		g.cursor = 0
		g.offset = 0
	}
	return g, cmd, nil
}

// View renders the picker
func (g GenrePicker) View() string {
	if !g.visible {
		return ""
	}

	var lines []string
	lines = append(lines, g.filter.View(), "")

	count := g.visibleCount()
	if count == 0 {
		lines = append(lines, styles.DimStyle.Render(styles.Pad("  no matching genres", genrePickerWidth)))
	}

	end := g.offset + genrePickerVisible
	if end > count {
		end = count
	}
	for row := g.offset; row < end; row++ {
		text, matched := g.optionAt(row)
		lines = append(lines, g.renderOption(text, matched, row == g.cursor))
	}

	if count > genrePickerVisible {
		lines = append(lines, styles.DimStyle.Render(
			styles.Pad("  "+strings.Repeat("·", 3)+" "+itoa(count)+" genres", genrePickerWidth)))
	}

	return styles.ModalStyle.Render(
		styles.ModalTitleStyle.Render("Genre") + "\n" + strings.Join(lines, "\n"))
}

func (g GenrePicker) renderOption(text string, matched []int, selected bool) string {
	prefix := "  "
	if text == g.active {
		prefix = "✓ "
	}

	label := styles.Truncate(text, genrePickerWidth-2)
	if len(matched) > 0 && !selected {
		label = highlightMatches(label, matched)
	}
	line := prefix + label

	switch {
	case selected:
		return lipgloss.NewStyle().
			Foreground(styles.White).
			Background(styles.SlateLight).
			Render(styles.Pad(line, genrePickerWidth))
	case text == g.active:
		return lipgloss.NewStyle().
			Foreground(styles.Burgundy).
			Render(styles.Pad(line, genrePickerWidth))
	default:
		return lipgloss.NewStyle().
			Foreground(styles.LightGray).
			Render(styles.Pad(line, genrePickerWidth))
	}
}

// highlightMatches styles the matched rune positions
func highlightMatches(s string, matched []int) string {
	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}
	var b strings.Builder
	for i, r := range []rune(s) {
		if set[i] {
			b.WriteString(styles.MatchHighlightStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
