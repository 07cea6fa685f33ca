package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/folio/internal/service"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits from any state, including text entry
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Handle state-specific keys
	switch m.State {
	case StateHelp:
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.State = StateBrowsing
		}
		return m, nil

	case StateSearching:
		var cmd tea.Cmd
		var changed bool
		m.Search, cmd, changed = m.Search.Update(msg)
		if changed {
			m.setSearchTerm(m.Search.Value())
		}
		if !m.Search.Focused() {
			m.State = StateBrowsing
		}
		return m, cmd

	case StatePickingGenre:
		var cmd tea.Cmd
		var chosen *string
		m.GenrePicker, cmd, chosen = m.GenrePicker.Update(msg)
		if chosen != nil && *chosen != m.SettingsSvc.Current().Genre {
			m.setGenre(*chosen)
		}
		if !m.GenrePicker.IsVisible() {
			m.State = StateBrowsing
		}
		return m, cmd
	}

	switch m.Screen {
	case ScreenWishlist:
		return m.handleWishlistKeys(msg)
	case ScreenDetail:
		return m.handleDetailKeys(msg)
	default:
		return m.handleListKeys(msg)
	}
}

// handleGlobalKeys handles keys shared by every screen. handled is false when
// the key was not one of them.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit, true
	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil, true
	}
	return m, nil, false
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if next, cmd, ok := m.handleGlobalKeys(msg); ok {
		return next, cmd
	}

	page := m.CurrentPage()

	switch {
	case key.Matches(msg, Keys.Search):
		m.State = StateSearching
		return m, m.Search.Focus()

	case key.Matches(msg, Keys.Genre):
		if !m.Loaded {
			return m, nil
		}
		m.State = StatePickingGenre
		options := service.GenreOptions(m.Catalog)
		return m, m.GenrePicker.Show(options, m.SettingsSvc.Current().Genre)

	case key.Matches(msg, Keys.Escape):
		// Clear the search term if one is active
		if m.Search.Value() != "" {
			m.Search.SetValue("")
			m.setSearchTerm("")
		}
		return m, nil

	case key.Matches(msg, Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil

	case key.Matches(msg, Keys.Down):
		if m.Cursor < len(page.Books)-1 {
			m.Cursor++
		}
		return m, nil

	case key.Matches(msg, Keys.PrevPage):
		m.goToPage(page.CurrentPage - 1)
		return m, nil

	case key.Matches(msg, Keys.NextPage):
		m.goToPage(page.CurrentPage + 1)
		return m, nil

	case key.Matches(msg, Keys.Toggle):
		return m, m.toggleWishlist()

	case key.Matches(msg, Keys.Enter):
		if m.Cursor < len(page.Books) {
			cmd := m.openDetail(page.Books[m.Cursor].ID)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, Keys.Wishlist):
		m.Screen = ScreenWishlist
		m.rebuildWishRows()
		return m, nil
	}

	// Number keys jump to a page
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		m.goToPage(int(s[0] - '0'))
	}
	return m, nil
}

func (m Model) handleWishlistKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if next, cmd, ok := m.handleGlobalKeys(msg); ok {
		return next, cmd
	}

	switch {
	case key.Matches(msg, Keys.Back, Keys.Home, Keys.Wishlist):
		m.Screen = ScreenList
		m.clampCursor()
		return m, nil

	case key.Matches(msg, Keys.Up):
		if m.WishCursor > 0 {
			m.WishCursor--
		}
		return m, nil

	case key.Matches(msg, Keys.Down):
		if m.WishCursor < len(m.WishRows)-1 {
			m.WishCursor++
		}
		return m, nil

	case key.Matches(msg, Keys.Remove):
		return m, m.removeWishRow()

	case key.Matches(msg, Keys.Enter):
		if m.WishCursor < len(m.WishRows) && !m.WishRows[m.WishCursor].Fading {
			cmd := m.openDetail(m.WishRows[m.WishCursor].Book.ID)
			return m, cmd
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if next, cmd, ok := m.handleGlobalKeys(msg); ok {
		return next, cmd
	}

	switch {
	case key.Matches(msg, Keys.Back):
		if m.DetailOnly {
			return m, tea.Quit
		}
		m.Screen = m.Detail.Return
		if m.Screen == ScreenWishlist {
			m.rebuildWishRows()
		}
		return m, nil

	case key.Matches(msg, Keys.Up):
		if m.Detail.Cursor > 0 {
			m.Detail.Cursor--
			m.syncDetailViewport()
		}
		return m, nil

	case key.Matches(msg, Keys.Down):
		if m.Detail.Book != nil && m.Detail.Cursor < len(m.Detail.Book.Links())-1 {
			m.Detail.Cursor++
			m.syncDetailViewport()
		}
		return m, nil

	case key.Matches(msg, Keys.Enter):
		if m.Detail.Book == nil {
			return m, nil
		}
		links := m.Detail.Book.Links()
		if m.Detail.Cursor < len(links) {
			return m, OpenLinkCmd(m.Opener, links[m.Detail.Cursor])
		}
		return m, nil

	case key.Matches(msg, Keys.Toggle):
		if m.Detail.Book == nil {
			return m, nil
		}
		if _, err := m.WishlistSvc.Toggle(m.Detail.Book.ID); err != nil {
			return m, func() tea.Msg { return ErrMsg{Err: err, Context: "saving wishlist"} }
		}
		m.syncDetailViewport()
		return m, nil
	}

	// Scroll long content
	var cmd tea.Cmd
	m.DetailView, cmd = m.DetailView.Update(msg)
	return m, cmd
}
