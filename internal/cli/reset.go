package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the wishlist, search term and genre filter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.session.Reset(); err != nil {
			return fmt.Errorf("failed to reset: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Wishlist and filters cleared")
		return nil
	},
}
