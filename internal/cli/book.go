package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mmcdole/folio/internal/domain"
	"github.com/mmcdole/folio/internal/tui"
	"github.com/spf13/cobra"
)

var bookCmd = &cobra.Command{
	Use:   "book <id>",
	Short: "Show a single book",
	Long: `Show one book's details and download links.

In a terminal this opens the detail view; otherwise the details are printed.

Examples:
  folio book 84
  folio book 1342 | less`,
	Args: cobra.ExactArgs(1),
	RunE: runBook,
}

func runBook(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid book id %q", args[0])
	}

	out := cmd.OutOrStdout()
	if isTerminal(out) {
		model := tui.NewModel(current.catalog, current.wishlist, current.settings, current.opener, current.cfg.UI.SkeletonRows).
			WithDetail(id)
		return runProgram(model)
	}

	book, err := current.catalog.FetchBook(cmd.Context(), id)
	if errors.Is(err, domain.ErrBookNotFound) {
		return fmt.Errorf("no book with id %d", id)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch book: %w", err)
	}

	fmt.Fprintf(out, "#%d %s\n", book.ID, book.Title)
	fmt.Fprintf(out, "Authors:  %s\n", book.AuthorNames())
	fmt.Fprintf(out, "Subjects: %s\n", strings.Join(book.Subjects, ", "))
	if cover := book.CoverURL(); cover != "" {
		fmt.Fprintf(out, "Cover:    %s\n", cover)
	}
	for _, link := range book.Links() {
		fmt.Fprintf(out, "  %-24s %s\n", link.Label, link.URL)
	}
	return nil
}
