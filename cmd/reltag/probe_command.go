package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"reltag/internal/config"
	"reltag/internal/probe"
	"reltag/internal/token"
)

type probeReport struct {
	Path        string        `json:"path" yaml:"path"`
	SizeBytes   int64         `json:"size_bytes" yaml:"size_bytes"`
	Duration    float64       `json:"duration_seconds" yaml:"duration_seconds"`
	Named       []token.Token `json:"named" yaml:"named"`
	Probed      []token.Token `json:"probed" yaml:"probed"`
	Missing     []token.Token `json:"missing" yaml:"missing"`
	Unconfirmed []token.Token `json:"unconfirmed" yaml:"unconfirmed"`
}

func newProbeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "probe FILE",
		Short: "Compare filename tokens with what ffprobe reports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path, err := config.ExpandPath(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("resolve file: %w", err)
			}
			c, err := ctx.classifier()
			if err != nil {
				return err
			}

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			probeCtx, cancel := context.WithTimeout(parent, cfg.ProbeTimeout())
			defer cancel()
			result, err := probe.Inspect(probeCtx, cfg.Probe.FFprobeBinary, path)
			if err != nil {
				return err
			}

			named := c.TokenizeFile(filepath.Base(path)).Tokens
			probed := result.Tokens()
			missing, unconfirmed := probe.Compare(named, probed)
			report := probeReport{
				Path:        path,
				SizeBytes:   result.SizeBytes(),
				Duration:    result.DurationSeconds(),
				Named:       named,
				Probed:      nonNil(probed),
				Missing:     nonNil(missing),
				Unconfirmed: nonNil(unconfirmed),
			}
			return writeOutput(cmd, ctx, report, func() string {
				return renderProbeText(report, shouldColorize(cmd.OutOrStdout()))
			})
		},
	}
}

func nonNil(tokens []token.Token) []token.Token {
	if tokens == nil {
		return []token.Token{}
	}
	return tokens
}

func renderProbeText(report probeReport, colorize bool) string {
	lines := renderSectionHeader(filepath.Base(report.Path), colorize)
	lines = append(lines,
		renderStatusLine("Size", statusInfo, humanize.IBytes(uint64(report.SizeBytes)), colorize),
		renderStatusLine("Filename tokens", statusInfo, formatTokens(report.Named), colorize),
		renderStatusLine("Container tokens", statusInfo, formatTokens(report.Probed), colorize),
	)
	if len(report.Unconfirmed) == 0 && len(report.Missing) == 0 {
		lines = append(lines, renderStatusLine("Consistency", statusOK, "filename matches container", colorize))
	}
	if len(report.Unconfirmed) > 0 {
		lines = append(lines, renderStatusLine("Unconfirmed", statusWarn, formatTokens(report.Unconfirmed), colorize))
	}
	if len(report.Missing) > 0 {
		lines = append(lines, renderStatusLine("Not in filename", statusInfo, formatTokens(report.Missing), colorize))
	}
	return strings.Join(lines, "\n")
}
