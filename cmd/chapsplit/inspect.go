package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/chapsplit/internal/console"
)

var inspectIncludeAll bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <input.pdf>",
	Short: "Preview the chapter plan without writing anything",
	Long: `Inspect runs chapter detection and range computation on the PDF's
outline and prints the resulting plan. No files are written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		p, err := buildPlan(args[0], inspectIncludeAll, logger)
		if err != nil {
			return err
		}

		fmt.Print(console.PlanTable(p.chapters, p.doc.PageCount))
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectIncludeAll, "include-all", false,
		"treat bookmarks at every nesting level as split boundaries")
}
