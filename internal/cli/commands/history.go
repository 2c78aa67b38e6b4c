package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/embedtools/archlint/internal/cli/output"
	"github.com/embedtools/archlint/internal/state"
)

// HistoryOptions holds options for the history command.
type HistoryOptions struct {
	Limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	opts := &HistoryOptions{}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past validation runs",
		Long: `Show past validation runs recorded in the state database,
newest first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "Maximum number of runs to show")
	return cmd
}

func runHistory(cmd *cobra.Command, opts *HistoryOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	store, err := openStore(cmdCtx.Cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(opts.Limit)
	if err != nil {
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(runs)
	case output.ModeYAML:
		return r.YAML(runs)
	default:
		return historyText(r, runs)
	}
}

func historyText(r *output.Renderer, runs []state.Run) error {
	if len(runs) == 0 {
		r.Println("No runs recorded.")
		return nil
	}
	styles := r.Styles()

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Started", "Archives", "Projects", "Scripts", "Findings", "Elapsed", "Result"})
	for _, run := range runs {
		verdict := styles.Success.Render("passed")
		if !run.Passed {
			verdict = styles.Error.Render("failed")
		}
		t.AppendRow(table.Row{
			run.StartedAt.Local().Format(time.DateTime),
			strings.Join(run.Archives, ", "),
			countCell(run.Projects, run.FailedProjects),
			countCell(run.Scripts, run.FailedScripts),
			run.Errors + run.Warnings + run.Infos,
			run.Elapsed.Round(time.Millisecond),
			verdict,
		})
	}
	t.Render()
	return nil
}

func countCell(total, failed int) string {
	if failed == 0 {
		return strconv.Itoa(total)
	}
	return fmt.Sprintf("%d (%d failed)", total, failed)
}
