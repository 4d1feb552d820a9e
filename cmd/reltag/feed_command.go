package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"reltag/internal/config"
	"reltag/internal/feed"
	"reltag/internal/logging"
	"reltag/internal/scan"
)

type feedItem struct {
	Result  feed.Result  `json:"result" yaml:"result"`
	Outcome scan.Outcome `json:"outcome" yaml:"outcome"`
}

type feedReport struct {
	Source  string       `json:"source" yaml:"source"`
	RunID   string       `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Summary scan.Summary `json:"summary" yaml:"summary"`
	Items   []feedItem   `json:"items" yaml:"items"`
}

func newFeedCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var record bool

	cmd := &cobra.Command{
		Use:   "feed FILE|-",
		Short: "Classify the titles of a saved search feed (RSS or HTML listing)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := strings.TrimSpace(args[0])
			format := feed.FormatForPath(source)
			if strings.TrimSpace(formatFlag) != "" {
				parsed, err := feed.ParseFormat(formatFlag)
				if err != nil {
					return err
				}
				format = parsed
			}

			var reader io.Reader
			if source == "-" {
				reader = cmd.InOrStdin()
			} else {
				path, err := config.ExpandPath(source)
				if err != nil {
					return fmt.Errorf("resolve feed path: %w", err)
				}
				file, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("open feed: %w", err)
				}
				defer file.Close()
				reader = file
				source = path
			}

			results, err := feed.Decode(reader, format)
			if err != nil {
				return err
			}

			scanner, err := ctx.scanner()
			if err != nil {
				return err
			}
			runCtx := cmd.Context()
			if runCtx == nil {
				runCtx = context.Background()
			}
			outcomes, err := scanner.ClassifyNames(runCtx, feed.Titles(results))
			if err != nil {
				return err
			}

			report := feedReport{Source: source, Summary: scan.Summarize(outcomes)}
			for i, r := range results {
				report.Items = append(report.Items, feedItem{Result: r, Outcome: outcomes[i]})
			}

			if ctx.shouldRecord(record) {
				store, err := ctx.openCatalog()
				if err != nil {
					return err
				}
				defer store.Close()
				run, err := store.BeginRun(runCtx, "feed:"+source)
				if err != nil {
					return err
				}
				runCtx = logging.WithRunID(runCtx, run.ID)
				if err := store.RecordAll(runCtx, run.ID, outcomes); err != nil {
					return err
				}
				if err := store.FinishRun(runCtx, run.ID, report.Summary); err != nil {
					return err
				}
				report.RunID = run.ID
			}

			return writeOutput(cmd, ctx, report, func() string {
				return renderFeedText(report, shouldColorize(cmd.OutOrStdout()))
			})
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "", "Document format: rss or html (default: guessed from the file extension)")
	cmd.Flags().BoolVar(&record, "record", false, "Store the classified titles in the catalog")
	return cmd
}

func renderFeedText(report feedReport, colorize bool) string {
	rows := make([][]string, 0, len(report.Items))
	for _, item := range report.Items {
		size := item.Result.Size
		if n, err := item.Result.SizeBytes(); err == nil {
			size = humanize.IBytes(n)
		}
		rows = append(rows, []string{
			item.Result.Title,
			string(item.Outcome.Status),
			outcomeTitle(item.Outcome),
			formatEpisodes(item.Outcome.Result),
			size,
			strconv.Itoa(item.Result.Seeders),
			yesNo(item.Result.Trusted),
			humanize.Time(item.Result.Published),
		})
	}
	parts := []string{
		renderTable(
			[]string{"Title", "Status", "Show", "Episode", "Size", "Seeders", "Trusted", "Published"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft, alignLeft},
		),
		renderSummary(report.Summary, colorize),
	}
	if report.RunID != "" {
		parts = append(parts, renderStatusLine("Recorded run", statusOK, report.RunID, colorize))
	}
	return strings.Join(parts, "\n")
}
