package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/kerbaras/comics/pkg/app"
	"github.com/kerbaras/comics/pkg/integrations"
	"github.com/kerbaras/comics/pkg/services"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export comics to an EPUB book",
	Long:  "Fetch a range of comics and compile them into one EPUB, optionally optimized for an e-reader",
	Run: func(cmd *cobra.Command, args []string) {
		rangeFlag, _ := cmd.Flags().GetString("range")
		output, _ := cmd.Flags().GetString("output")
		reader, _ := cmd.Flags().GetString("reader")
		author, _ := cmd.Flags().GetString("author")
		listReaders, _ := cmd.Flags().GetBool("list-readers")

		if listReaders {
			for _, profile := range integrations.ListReaderProfiles() {
				fmt.Println(profile)
			}
			return
		}

		from, to, err := parseRange(rangeFlag)
		cobra.CheckErr(err)

		cfg, log, err := loadConfig(cmd, true)
		cobra.CheckErr(err)
		defer log.Sync()

		controller, err := newController(cfg, log)
		cobra.CheckErr(err)
		defer controller.Close()

		cat, err := controller.Resolve(cmd.Context())
		cobra.CheckErr(err)

		exporter := services.NewExporter(controller.Source(), integrations.NewEPubBuilder(output), log.Named("export")).
			WithTitle(cfg.Viewer.Title)
		defer exporter.Close()

		if reader != "" {
			profile, ok := integrations.GetReaderProfile(reader)
			if !ok {
				cobra.CheckErr(fmt.Errorf("unknown reader %q, see --list-readers", reader))
			}
			exporter.WithOptimizer(integrations.NewPageOptimizer(profile.OptimizationSettings()))
		}

		book := integrations.Book{
			Title:    cfg.Viewer.Title,
			Author:   author,
			Language: controller.Messages().Tag.String(),
		}

		path, err := app.RunExport(cmd.Context(), exporter, func() (string, error) {
			return exporter.Export(cmd.Context(), cat, from, to, book)
		})
		for _, e := range multierr.Errors(err) {
			fmt.Printf("⚠️  %v\n", e)
		}
		if path == "" {
			cobra.CheckErr(fmt.Errorf("export failed"))
		}
		fmt.Printf("📖 EPUB created: %s\n", path)
	},
}

func init() {
	exportCmd.Flags().StringP("range", "r", "", "Comic range (e.g., 1-10), all comics when empty")
	exportCmd.Flags().StringP("output", "o", ".", "Output directory")
	exportCmd.Flags().String("reader", "", "Optimize pages for an e-reader profile")
	exportCmd.Flags().String("author", "", "Book author")
	exportCmd.Flags().Bool("list-readers", false, "List e-reader profiles")
}

// parseRange parses "from-to" or a single index. Zero means open.
func parseRange(s string) (int, int, error) {
	if s == "" {
		return 0, 0, nil
	}
	parts := strings.Split(s, "-")
	switch len(parts) {
	case 1:
		n, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid range %q, use --range 1-10", s)
		}
		return n, n, nil
	case 2:
		from, err1 := strconv.Atoi(parts[0])
		to, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return 0, 0, fmt.Errorf("invalid range %q, use --range 1-10", s)
		}
		return from, to, nil
	default:
		return 0, 0, fmt.Errorf("invalid range %q, use --range 1-10", s)
	}
}
