package main

import (
	"github.com/spf13/cobra"

	"reltag/internal/classify"
	"reltag/internal/token"
)

type tagReport struct {
	Tag     string            `json:"tag" yaml:"tag"`
	Tokens  []token.Token     `json:"tokens" yaml:"tokens"`
	Failure *classify.Failure `json:"failure,omitempty" yaml:"failure,omitempty"`
}

func newTagCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tag CONTENT...",
		Short: "Classify bracket tag contents (without brackets)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ctx.classifier()
			if err != nil {
				return err
			}
			reports := make([]tagReport, 0, len(args))
			for _, content := range args {
				tokens, failure := c.ClassifyTag(content)
				if tokens == nil {
					tokens = []token.Token{}
				}
				reports = append(reports, tagReport{Tag: content, Tokens: tokens, Failure: failure})
			}
			return writeOutput(cmd, ctx, reports, func() string {
				rows := make([][]string, 0, len(reports))
				for _, r := range reports {
					note := ""
					if r.Failure != nil {
						note = "unclassified"
					} else if len(r.Tokens) == 0 {
						note = "ignored"
					}
					rows = append(rows, []string{"[" + r.Tag + "]", formatTokens(r.Tokens), note})
				}
				return renderTable([]string{"Tag", "Tokens", "Note"}, rows, nil)
			})
		},
	}
}
