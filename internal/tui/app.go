package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/folio/internal/domain"
	"github.com/mmcdole/folio/internal/service"
	"github.com/mmcdole/folio/internal/tui/components"
)

// Screen is the top-level view being shown
type Screen int

const (
	ScreenList Screen = iota
	ScreenWishlist
	ScreenDetail
)

// ApplicationState represents the current input mode
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateSearching
	StatePickingGenre
	StateHelp
)

// Layout constants
const (
	HeaderHeight = 2 // title bar + search/genre line
	FooterHeight = 2 // pagination line + status line
	ListRowLines = 4 // title, author, genre, spacer

	spinnerInterval = 100 * time.Millisecond
)

// wishRow is a rendered wishlist entry. Fading rows are already gone from
// the store and wait for FadeDelay before leaving the view.
type wishRow struct {
	Book   domain.Book
	Fading bool
}

// detailState holds the single-book view
type detailState struct {
	ID      int
	Book    *domain.Book
	Loading bool
	Err     error
	Cursor  int // selected link
	Return  Screen
}

// Model is the main Bubble Tea model for the application
type Model struct {
	Screen Screen
	State  ApplicationState
	Ready  bool

	// Services
	CatalogSvc  *service.CatalogService
	WishlistSvc *service.WishlistService
	SettingsSvc *service.SettingsService
	Opener      domain.Opener

	// UI Components
	Search      components.SearchBar
	GenrePicker components.GenrePicker
	DetailView  viewport.Model

	// Data
	Catalog []domain.Book
	Loaded  bool
	LoadErr error

	// List view
	Page   domain.Pagination
	Cursor int // index into the current page

	// Wishlist view
	WishRows   []wishRow
	WishCursor int

	// Detail view
	Detail     detailState
	DetailOnly bool // started on a single book; back quits

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg    string
	StatusIsErr  bool
	SpinnerFrame int
	SkeletonRows int
	ticking      bool
}

// NewModel creates a new application model starting on the catalog list
func NewModel(
	catalogSvc *service.CatalogService,
	wishlistSvc *service.WishlistService,
	settingsSvc *service.SettingsService,
	opener domain.Opener,
	skeletonRows int,
) Model {
	if skeletonRows <= 0 {
		skeletonRows = domain.PageSize
	}
	return Model{
		Screen:       ScreenList,
		State:        StateBrowsing,
		CatalogSvc:   catalogSvc,
		WishlistSvc:  wishlistSvc,
		SettingsSvc:  settingsSvc,
		Opener:       opener,
		Search:       components.NewSearchBar(settingsSvc.Current().SearchTerm),
		GenrePicker:  components.NewGenrePicker(),
		DetailView:   viewport.New(0, 0),
		Page:         domain.FirstPage(),
		SkeletonRows: skeletonRows,
		ticking:      true, // Init starts the first tick
	}
}

// WithDetail makes the model open directly on one book's detail view
func (m Model) WithDetail(id int) Model {
	m.Screen = ScreenDetail
	m.DetailOnly = true
	m.Detail = detailState{ID: id, Loading: true}
	return m
}

// Init starts the initial fetch
func (m Model) Init() tea.Cmd {
	if m.DetailOnly {
		return tea.Batch(LoadBookCmd(m.CatalogSvc, m.Detail.ID), TickCmd(spinnerInterval))
	}
	return tea.Batch(LoadCatalogCmd(m.CatalogSvc), TickCmd(spinnerInterval))
}

// startSpinner begins the tick chain unless one is already running
func (m *Model) startSpinner() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return TickCmd(spinnerInterval)
}

// loading reports whether a fetch for the current screen is in flight
func (m Model) loading() bool {
	if m.Screen == ScreenDetail {
		return m.Detail.Loading
	}
	return !m.Loaded && m.LoadErr == nil
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		if m.loading() {
			m.ticking = true
			return m, TickCmd(spinnerInterval)
		}
		m.ticking = false
		return m, nil

	case CatalogLoadedMsg:
		m.Catalog = msg.Books
		m.Loaded = true
		m.LoadErr = nil
		m.clampCursor()
		if m.Screen == ScreenWishlist {
			m.rebuildWishRows()
		}
		return m, nil

	case CatalogFailedMsg:
		m.LoadErr = msg.Err
		m.StatusMsg = "loading catalog: " + msg.Err.Error()
		m.StatusIsErr = true
		return m, nil

	case BookLoadedMsg:
		// Ignore results for a book the user already navigated away from
		if m.Screen != ScreenDetail || msg.ID != m.Detail.ID {
			return m, nil
		}
		m.Detail.Book = msg.Book
		m.Detail.Loading = false
		m.Detail.Cursor = 0
		m.syncDetailViewport()
		return m, nil

	case BookFailedMsg:
		if m.Screen != ScreenDetail || msg.ID != m.Detail.ID {
			return m, nil
		}
		m.Detail.Loading = false
		m.Detail.Err = msg.Err
		slog.Error("detail fetch failed", "id", msg.ID, "error", msg.Err)
		return m, nil

	case LinkOpenedMsg:
		m.StatusMsg = "Opened: " + msg.Link.Label
		m.StatusIsErr = false
		return m, ClearStatusCmd(3 * time.Second)

	case WishlistFadeDoneMsg:
		m.dropFadedRow(msg.BookID)
		return m, nil

	case ErrMsg:
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		return m, ClearStatusCmd(5 * time.Second)

	case ClearStatusMsg:
		if m.LoadErr != nil && m.Screen != ScreenDetail {
			// Keep the load failure visible; nothing else will replace the skeleton
			return m, nil
		}
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Forward remaining messages (cursor blink) to focused inputs
	var cmd tea.Cmd
	switch m.State {
	case StateSearching:
		m.Search, cmd, _ = m.Search.Update(msg)
	case StatePickingGenre:
		m.GenrePicker, cmd, _ = m.GenrePicker.Update(msg)
	}
	return m, cmd
}

// CurrentPage computes the visible list page from catalog, filter and pagination
func (m Model) CurrentPage() service.ListPage {
	return service.BuildListPage(m.Catalog, m.SettingsSvc.Current(), m.Page)
}

// setSearchTerm applies a new search term; any filter change returns to page 1
func (m *Model) setSearchTerm(term string) {
	if err := m.SettingsSvc.SetSearchTerm(term); err != nil {
		m.StatusMsg = fmt.Sprintf("saving search: %v", err)
		m.StatusIsErr = true
	}
	m.Page = domain.FirstPage()
	m.Cursor = 0
}

// setGenre applies a new genre filter and returns to page 1
func (m *Model) setGenre(genre string) {
	if err := m.SettingsSvc.SetGenre(genre); err != nil {
		m.StatusMsg = fmt.Sprintf("saving genre: %v", err)
		m.StatusIsErr = true
	}
	m.Page = domain.FirstPage()
	m.Cursor = 0
}

// goToPage moves to a 1-based page if it exists
func (m *Model) goToPage(page int) {
	count := m.CurrentPage().PageCount
	if page < 1 || page > count {
		return
	}
	m.Page.CurrentPage = page
	m.Cursor = 0
}

func (m *Model) clampCursor() {
	n := len(m.CurrentPage().Books)
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// toggleWishlist flips membership of the book under the list cursor
func (m *Model) toggleWishlist() tea.Cmd {
	page := m.CurrentPage()
	if m.Cursor >= len(page.Books) {
		return nil
	}
	book := page.Books[m.Cursor]
	wished, err := m.WishlistSvc.Toggle(book.ID)
	if err != nil {
		m.StatusMsg = fmt.Sprintf("saving wishlist: %v", err)
		m.StatusIsErr = true
		return ClearStatusCmd(5 * time.Second)
	}
	if wished {
		m.StatusMsg = "Added to wishlist: " + book.Title
	} else {
		m.StatusMsg = "Removed from wishlist: " + book.Title
	}
	m.StatusIsErr = false
	return ClearStatusCmd(3 * time.Second)
}

// rebuildWishRows renders the wishlist from the store and the loaded catalog
func (m *Model) rebuildWishRows() {
	books := service.WishlistBooks(m.Catalog, m.WishlistSvc.IDs())
	m.WishRows = make([]wishRow, len(books))
	for i, b := range books {
		m.WishRows[i] = wishRow{Book: b}
	}
	m.WishCursor = 0
}

// removeWishRow drops the book from the store now and schedules the row's removal
func (m *Model) removeWishRow() tea.Cmd {
	if m.WishCursor >= len(m.WishRows) {
		return nil
	}
	row := &m.WishRows[m.WishCursor]
	if row.Fading {
		return nil
	}
	if err := m.WishlistSvc.Remove(row.Book.ID); err != nil {
		m.StatusMsg = fmt.Sprintf("saving wishlist: %v", err)
		m.StatusIsErr = true
		return nil
	}
	row.Fading = true
	return FadeOutCmd(row.Book.ID, FadeDelay)
}

// dropFadedRow removes a faded row from the view
func (m *Model) dropFadedRow(bookID int) {
	for i, row := range m.WishRows {
		if row.Book.ID == bookID && row.Fading {
			m.WishRows = append(m.WishRows[:i:i], m.WishRows[i+1:]...)
			break
		}
	}
	if m.WishCursor >= len(m.WishRows) {
		m.WishCursor = len(m.WishRows) - 1
	}
	if m.WishCursor < 0 {
		m.WishCursor = 0
	}
}

// openDetail switches to the detail view and starts its independent fetch
func (m *Model) openDetail(id int) tea.Cmd {
	m.Detail = detailState{ID: id, Loading: true, Return: m.Screen}
	m.Screen = ScreenDetail
	m.DetailView.SetContent("")
	m.DetailView.GotoTop()
	return tea.Batch(LoadBookCmd(m.CatalogSvc, id), m.startSpinner())
}

// updateLayout resizes components to the terminal
func (m *Model) updateLayout() {
	m.Search.SetWidth(m.Width / 3)
	m.DetailView.Width = m.Width
	h := m.Height - HeaderHeight - FooterHeight
	if h < 1 {
		h = 1
	}
	m.DetailView.Height = h
	m.syncDetailViewport()
}
