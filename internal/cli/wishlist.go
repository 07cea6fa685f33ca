package cli

import (
	"fmt"

	"github.com/mmcdole/folio/internal/service"
	"github.com/spf13/cobra"
)

var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Print the wishlist",
	Long: `Print wished book ids, one per line, in the order they were added.

Use --titles to fetch the catalog and print titles for ids found in it.`,
	RunE: runWishlist,
}

func init() {
	wishlistCmd.Flags().BoolP("titles", "t", false, "resolve titles from the catalog")
}

func runWishlist(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ids := current.wishlist.IDs()
	if len(ids) == 0 {
		fmt.Fprintln(out, "No books in your wishlist.")
		return nil
	}

	titles, _ := cmd.Flags().GetBool("titles")
	if !titles {
		for _, id := range ids {
			fmt.Fprintln(out, id)
		}
		return nil
	}

	catalog, err := current.catalog.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	for _, b := range service.WishlistBooks(catalog, ids) {
		printBook(out, b, true)
	}
	return nil
}
