package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kerbaras/comics/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		if defaults, _ := cmd.Flags().GetBool("default"); defaults {
			fmt.Print(string(config.Default()))
			return
		}

		cfg, log, err := loadConfig(cmd, false)
		cobra.CheckErr(err)
		defer log.Sync()

		out, err := config.Dump(cfg)
		cobra.CheckErr(err)
		fmt.Print(string(out))
	},
}

func init() {
	configCmd.Flags().Bool("default", false, "Print the built-in defaults with comments")
}
