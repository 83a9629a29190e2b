package cmd

import (
	"fmt"

	"github.com/relloyd/tdch/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure default flag values",
	Long: fmt.Sprintf(`Configure default flag values where:

- Default flag values are stored in file %q
`, config.Main.FullPath),
}

func init() {
	rootCmd.AddCommand(configCmd)
}
