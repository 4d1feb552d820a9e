package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"reltag/internal/catalog"
	"reltag/internal/config"
	"reltag/internal/logging"
	"reltag/internal/scan"
)

type scanReport struct {
	Root     string         `json:"root" yaml:"root"`
	RunID    string         `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Summary  scan.Summary   `json:"summary" yaml:"summary"`
	Outcomes []scan.Outcome `json:"outcomes" yaml:"outcomes"`
}

func newScanCommand(ctx *commandContext) *cobra.Command {
	var record bool
	var showAll bool

	cmd := &cobra.Command{
		Use:   "scan DIR",
		Short: "Classify every release file below a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := config.ExpandPath(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("resolve directory: %w", err)
			}
			scanner, err := ctx.scanner()
			if err != nil {
				return err
			}
			runCtx := cmd.Context()
			if runCtx == nil {
				runCtx = context.Background()
			}

			report := scanReport{Root: root}
			var store *catalog.Store
			var run catalog.Run
			if ctx.shouldRecord(record) {
				if store, err = ctx.openCatalog(); err != nil {
					return err
				}
				defer store.Close()
				if run, err = store.BeginRun(runCtx, root); err != nil {
					return err
				}
				report.RunID = run.ID
				runCtx = logging.WithRunID(runCtx, run.ID)
			}

			outcomes, err := scanner.Scan(runCtx, root)
			if err != nil {
				return err
			}
			report.Outcomes = outcomes
			report.Summary = scan.Summarize(outcomes)

			if store != nil {
				if err := store.RecordAll(runCtx, run.ID, outcomes); err != nil {
					if logger, logErr := ctx.ensureLogger(); logErr == nil {
						logging.ErrorWithContext(logging.WithContext(runCtx, logger), "failed to record scan", "catalog_record_failed",
							logging.String(logging.FieldPath, root),
							logging.Error(err),
							logging.String(logging.FieldImpact, "run left unfinished in the catalog"),
						)
					}
					return err
				}
				if err := store.FinishRun(runCtx, run.ID, report.Summary); err != nil {
					return err
				}
			}

			return writeOutput(cmd, ctx, report, func() string {
				return renderScanText(report, showAll, shouldColorize(cmd.OutOrStdout()))
			})
		},
	}

	cmd.Flags().BoolVar(&record, "record", false, "Store the results in the catalog")
	cmd.Flags().BoolVar(&showAll, "all", false, "List skipped and non-release files too")
	return cmd
}

func renderScanText(report scanReport, showAll bool, colorize bool) string {
	visible := make([]scan.Outcome, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		if showAll || o.Admitted() {
			visible = append(visible, o)
		}
	}
	relative := func(o scan.Outcome) string {
		if rel, err := filepath.Rel(report.Root, o.Path); err == nil {
			return rel
		}
		return o.Path
	}
	parts := []string{}
	if len(visible) > 0 {
		parts = append(parts, renderTable(outcomeHeaders, outcomeRows(visible, relative), outcomeAligns))
	}
	parts = append(parts, renderSummary(report.Summary, colorize))
	if report.RunID != "" {
		parts = append(parts, renderStatusLine("Recorded run", statusOK, report.RunID, colorize))
	}
	return strings.Join(parts, "\n")
}
