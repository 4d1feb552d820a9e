package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"reltag/internal/catalog"
	"reltag/internal/config"
	"reltag/internal/logging"
	"reltag/internal/scan"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var record bool

	cmd := &cobra.Command{
		Use:   "watch DIR",
		Short: "Classify files as they arrive in a directory",
		Long:  "Watch DIR and classify every file created in or moved into it until interrupted.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.ExpandPath(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("resolve directory: %w", err)
			}
			scanner, err := ctx.scanner()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			format, err := ctx.outputFormat()
			if err != nil {
				return err
			}

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			runCtx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
			defer stop()

			var store *catalog.Store
			var run catalog.Run
			if ctx.shouldRecord(record) {
				if store, err = ctx.openCatalog(); err != nil {
					return err
				}
				defer store.Close()
				if run, err = store.BeginRun(runCtx, "watch:"+dir); err != nil {
					return err
				}
				runCtx = logging.WithRunID(runCtx, run.ID)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			var seen []scan.Outcome
			err = scanner.Watch(runCtx, dir, func(o scan.Outcome) {
				seen = append(seen, o)
				if store != nil {
					if err := store.Record(runCtx, run.ID, o); err != nil {
						logging.WarnWithContext(logger, "failed to record outcome", "catalog_record_failed",
							logging.String(logging.FieldPath, o.Path),
							logging.Error(err),
							logging.String(logging.FieldImpact, "outcome missing from catalog run"),
						)
					}
				}
				switch format {
				case outputJSON:
					_ = writeJSONLine(out, o)
				case outputYAML:
					fmt.Fprintln(out, "---")
					_ = writeYAML(cmd, o)
				default:
					message := string(o.Status)
					if title := outcomeTitle(o); title != "" {
						message = fmt.Sprintf("%s %s %s", message, title, formatEpisodes(o.Result))
					}
					fmt.Fprintln(out, renderStatusLine(o.Name, outcomeKind(o.Status), strings.TrimSpace(message), colorize))
				}
			})
			if err != nil {
				return err
			}

			if store != nil {
				// The watch context is cancelled by now; finish the run regardless.
				if err := store.FinishRun(context.Background(), run.ID, scan.Summarize(seen)); err != nil {
					return err
				}
			}
			if format == outputTable {
				fmt.Fprintln(out, renderSummary(scan.Summarize(seen), colorize))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&record, "record", false, "Store arrivals in the catalog")
	return cmd
}
