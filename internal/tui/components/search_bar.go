package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/folio/internal/tui/styles"
)

// SearchBar is the inline title search input
type SearchBar struct {
	input textinput.Model
}

// NewSearchBar creates a search bar holding the given term
func NewSearchBar(term string) SearchBar {
	ti := textinput.New()
	ti.Placeholder = "search titles..."
	ti.CharLimit = 100
	ti.Width = 30
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle
	ti.PlaceholderStyle = styles.DimStyle
	ti.SetValue(term)

	return SearchBar{input: ti}
}

// Focus starts editing with the cursor at the end
func (s *SearchBar) Focus() tea.Cmd {
	s.input.CursorEnd()
	return s.input.Focus()
}

// Blur stops editing
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Focused reports whether the bar is being edited
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// Value returns the current term
func (s SearchBar) Value() string {
	return s.input.Value()
}

// SetValue replaces the term
func (s *SearchBar) SetValue(v string) {
	s.input.SetValue(v)
}

// SetWidth sets the visible input width
func (s *SearchBar) SetWidth(w int) {
	if w < 10 {
		w = 10
	}
	s.input.Width = w
}

// Update handles input events, returns (bar, cmd, changed).
// changed is true when the term differs from before the message.
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd, bool) {
	if !s.input.Focused() {
		return s, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "esc":
			s.input.Blur()
			return s, nil, false
		}
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, s.input.Value() != before
}

// View renders the bar
func (s SearchBar) View() string {
	if !s.input.Focused() && s.input.Value() == "" {
		return styles.DimStyle.Render("/ search")
	}
	return s.input.View()
}
