package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journaled catalog resolutions",
	Long:  "Display the catalog resolutions recorded in the journal database (journal.path)",
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, log, err := loadConfig(cmd, false)
		cobra.CheckErr(err)
		defer log.Sync()

		controller, err := newController(cfg, log)
		cobra.CheckErr(err)
		defer controller.Close()

		history, err := controller.History(limit)
		cobra.CheckErr(err)

		if len(history) == 0 {
			fmt.Println("📚 No resolutions journaled yet. Run 'comics' or 'comics probe' first.")
			return
		}

		columns := []table.Column{
			{Title: "Resolved", Width: 20},
			{Title: "Strategy", Width: 12},
			{Title: "Comics", Width: 8},
			{Title: "Elapsed", Width: 10},
			{Title: "Catalog", Width: 40},
			{Title: "Error", Width: 30},
		}

		rows := []table.Row{}
		for _, res := range history {
			rows = append(rows, table.Row{
				res.ResolvedAt.Format("2006-01-02 15:04:05"),
				res.Strategy,
				fmt.Sprintf("%d", res.TotalComics),
				res.Elapsed.Round(1e6).String(),
				truncateString(res.Folder, 38),
				truncateString(res.Error, 28),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.NoColor{}).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n📚 Catalog history (%d)\n\n", len(history))
		fmt.Println(t.View())
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of resolutions to show, 0 for all")
}

func truncateString(s string, max int) string {
	if len([]rune(s)) <= max {
		return s
	}
	return string([]rune(s)[:max-1]) + "…"
}
