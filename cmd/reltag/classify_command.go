package main

import (
	"strings"

	"github.com/spf13/cobra"

	"reltag/internal/scan"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "classify NAME...",
		Short: "Tokenize release filenames",
		Long: "Classify one or more filenames. Names with an extension pass through the\n" +
			"admission gate first (video type, bracket-tag shape); --force tokenizes them regardless.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ctx.classifier()
			if err != nil {
				return err
			}
			outcomes := make([]scan.Outcome, 0, len(args))
			for _, name := range args {
				if force {
					res := c.TokenizeFile(name)
					status := scan.StatusPartial
					if res.Complete() {
						status = scan.StatusClassified
					}
					outcomes = append(outcomes, scan.Outcome{Name: name, Status: status, Result: &res})
					continue
				}
				outcomes = append(outcomes, scan.EvaluateName(c, name))
			}
			return writeOutput(cmd, ctx, outcomes, func() string {
				return renderClassifyText(outcomes)
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Tokenize even when the admission gate rejects the name")
	return cmd
}

func renderClassifyText(outcomes []scan.Outcome) string {
	var b strings.Builder
	for i, o := range outcomes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(o.Name)
		b.WriteString("\n")
		b.WriteString(renderStatusLine("Status", outcomeKind(o.Status), string(o.Status), false))
		b.WriteString("\n")
		if o.Result == nil {
			continue
		}
		b.WriteString(renderStatusLine("Tokens", statusInfo, formatTokens(o.Result.Tokens), false))
		b.WriteString("\n")
		if len(o.Result.Residual) > 0 {
			b.WriteString(renderStatusLine("Residual", statusWarn, strings.Join(o.Result.Residual, " | "), false))
			b.WriteString("\n")
		}
		for _, f := range o.Result.Failures {
			b.WriteString(renderStatusLine("Unclassified", statusWarn, f.String(), false))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
