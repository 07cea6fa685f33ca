package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/folio/internal/domain"
	"github.com/mmcdole/folio/internal/service"
	"github.com/mmcdole/folio/internal/tui"
	"github.com/spf13/cobra"
)

func runBrowse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		return printFirstPage(cmd, out)
	}

	model := tui.NewModel(current.catalog, current.wishlist, current.settings, current.opener, current.cfg.UI.SkeletonRows)
	return runProgram(model)
}

// runProgram runs the TUI until the user quits
func runProgram(model tui.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())

	current.logger.Info("starting TUI")
	if _, err := p.Run(); err != nil {
		current.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// printFirstPage writes page 1 of the filtered catalog as plain text
func printFirstPage(cmd *cobra.Command, out io.Writer) error {
	books, err := current.catalog.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	page := service.BuildListPage(books, current.settings.Current(), domain.FirstPage())
	if len(page.Books) == 0 {
		fmt.Fprintln(out, "No books match the current filter.")
		return nil
	}

	for _, b := range page.Books {
		printBook(out, b, current.wishlist.IsMember(b.ID))
	}
	fmt.Fprintf(out, "\nPage %d of %d (%d books)\n", page.CurrentPage, page.PageCount, page.FilteredCount)
	return nil
}

func printBook(out io.Writer, b domain.Book, wished bool) {
	heart := " "
	if wished {
		heart = "♥"
	}
	fmt.Fprintf(out, "%s #%d %s\n", heart, b.ID, b.Title)
	if names := b.AuthorNames(); names != "" {
		fmt.Fprintf(out, "    %s\n", names)
	}
	if genres := b.Genres(); genres != "" {
		fmt.Fprintf(out, "    %s\n", genres)
	}
}
