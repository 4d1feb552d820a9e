package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"reltag/internal/catalog"
	"reltag/internal/scan"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect and maintain the run catalog",
	}
	runsCmd.AddCommand(newRunsListCommand(ctx))
	runsCmd.AddCommand(newRunsShowCommand(ctx))
	runsCmd.AddCommand(newRunsShowsCommand(ctx))
	runsCmd.AddCommand(newRunsPruneCommand(ctx))
	return runsCmd
}

func newRunsListCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openCatalogReader()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if runs == nil {
				runs = []catalog.Run{}
			}
			return writeOutput(cmd, ctx, runs, func() string {
				if len(runs) == 0 {
					return "No runs recorded"
				}
				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, []string{
						run.ID,
						run.Source,
						humanize.Time(run.StartedAt),
						finishedLabel(run),
						strconv.Itoa(run.Summary.Total),
						strconv.Itoa(run.Summary.Classified),
						strconv.Itoa(run.Summary.Partial),
					})
				}
				return renderTable(
					[]string{"ID", "Source", "Started", "Finished", "Files", "Classified", "Partial"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
				)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list (0 for all)")
	return cmd
}

func finishedLabel(run catalog.Run) string {
	if run.FinishedAt == nil {
		return "in progress"
	}
	return run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond).String()
}

type runDetail struct {
	Run     catalog.Run     `json:"run" yaml:"run"`
	Entries []catalog.Entry `json:"entries" yaml:"entries"`
}

func newRunsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show the outcomes stored for a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openCatalogReader()
			if err != nil {
				return err
			}
			defer store.Close()

			id := strings.TrimSpace(args[0])
			run, err := store.GetRun(cmd.Context(), id)
			if err != nil {
				return err
			}
			entries, err := store.Entries(cmd.Context(), id)
			if err != nil {
				return err
			}
			if entries == nil {
				entries = []catalog.Entry{}
			}
			detail := runDetail{Run: run, Entries: entries}
			return writeOutput(cmd, ctx, detail, func() string {
				return renderRunDetail(detail, shouldColorize(cmd.OutOrStdout()))
			})
		},
	}
}

func renderRunDetail(detail runDetail, colorize bool) string {
	lines := renderSectionHeader("Run "+detail.Run.ID, colorize)
	lines = append(lines,
		renderStatusLine("Source", statusInfo, detail.Run.Source, colorize),
		renderStatusLine("Started", statusInfo, detail.Run.StartedAt.Local().Format(time.DateTime), colorize),
		renderStatusLine("Finished", statusInfo, finishedLabel(detail.Run), colorize),
	)
	rows := make([][]string, 0, len(detail.Entries))
	for _, e := range detail.Entries {
		episode := ""
		if e.Episode != nil {
			episode = strconv.Itoa(*e.Episode)
		}
		label := e.Name
		if e.Path != "" {
			label = e.Path
		}
		rows = append(rows, []string{label, string(e.Status), e.Group, e.Title, episode, fmt.Sprint(len(e.Failures))})
	}
	parts := []string{strings.Join(lines, "\n")}
	if len(rows) > 0 {
		parts = append(parts, renderTable(
			[]string{"Name", "Status", "Group", "Title", "Episode", "Unclassified"},
			rows,
			outcomeAligns,
		))
	}
	parts = append(parts, renderSummary(summaryOf(detail.Entries), colorize))
	return strings.Join(parts, "\n")
}

func summaryOf(entries []catalog.Entry) scan.Summary {
	outcomes := make([]scan.Outcome, 0, len(entries))
	for _, e := range entries {
		outcomes = append(outcomes, scan.Outcome{Path: e.Path, Name: e.Name, Status: e.Status})
	}
	summary := scan.Summarize(outcomes)
	for _, e := range entries {
		summary.Failures += len(e.Failures)
	}
	return summary
}

func newRunsShowsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "shows",
		Short: "List every show seen across runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openCatalogReader()
			if err != nil {
				return err
			}
			defer store.Close()

			shows, err := store.Shows(cmd.Context())
			if err != nil {
				return err
			}
			if shows == nil {
				shows = []catalog.Show{}
			}
			return writeOutput(cmd, ctx, shows, func() string {
				if len(shows) == 0 {
					return "No shows recorded"
				}
				rows := make([][]string, 0, len(shows))
				for _, s := range shows {
					rows = append(rows, []string{
						s.Title,
						strconv.Itoa(s.Episodes),
						strconv.Itoa(s.Entries),
						humanize.Time(s.LastSeen),
					})
				}
				return renderTable(
					[]string{"Show", "Episodes", "Files", "Last seen"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft},
				)
			})
		},
	}
}

func newRunsPruneCommand(ctx *commandContext) *cobra.Command {
	var keep int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete all but the newest runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if keep < 0 {
				return fmt.Errorf("--keep must be zero or positive")
			}
			store, err := ctx.openCatalog()
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Prune(cmd.Context(), keep)
			if err != nil {
				return err
			}
			result := map[string]int64{"removed": removed, "kept": int64(keep)}
			return writeOutput(cmd, ctx, result, func() string {
				return fmt.Sprintf("Removed %d run(s), kept up to %d", removed, keep)
			})
		},
	}

	cmd.Flags().IntVar(&keep, "keep", 10, "Number of newest runs to keep")
	return cmd
}
