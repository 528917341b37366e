package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kerbaras/comics/pkg/catalog"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Resolve the catalog and report how many comics exist",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log, err := loadConfig(cmd, false)
		cobra.CheckErr(err)
		defer log.Sync()

		controller, err := newController(cfg, log)
		cobra.CheckErr(err)
		defer controller.Close()

		// read before resolving, the resolution below is journaled too
		previous, _ := controller.LastResolution()

		cat, err := controller.Resolve(cmd.Context())
		if errors.Is(err, catalog.ErrNoComics) {
			fmt.Printf("🎨 %s\n", controller.Messages().NoComicsText)
			fmt.Printf("💡 %s\n", controller.Messages().NoComicsHint)
		}
		cobra.CheckErr(err)

		fmt.Printf("📚 %d comics (%s)\n", cat.TotalComics, controller.Strategy())
		fmt.Printf("📁 %s\n", cat.ImageFolderPath)
		fmt.Printf("   first: %s\n", cat.ImageURL(1))
		fmt.Printf("   last:  %s\n", cat.ImageURL(cat.TotalComics))
		if previous != nil {
			fmt.Printf("🕘 previously %d comics (%s, %s)\n",
				previous.TotalComics, previous.Strategy, previous.ResolvedAt.Format("2006-01-02 15:04:05"))
		}
	},
}
