package cli

import (
	"fmt"
	"os"

	"github.com/mmcdole/folio/internal/adapter"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Manage configuration",
	Annotations: map[string]string{"bare": "true"},
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print the default config file location",
	Annotations: map[string]string{"bare": "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), adapter.ConfigFilePath())
	},
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write a config file with default values",
	Annotations: map[string]string{"bare": "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := adapter.ConfigFilePath()
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := adapter.SaveConfig(adapter.DefaultConfig()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolP("force", "f", false, "overwrite an existing file")
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}
