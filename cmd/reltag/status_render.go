package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"reltag/internal/scan"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	statusText := statusKindLabel(kind)
	if message != "" {
		statusText = fmt.Sprintf("[%s] %s", statusText, message)
	} else {
		statusText = fmt.Sprintf("[%s]", statusText)
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	if colorize {
		if color := statusKindColor(kind); color != "" {
			return color + base + ansiReset
		}
	}
	return base
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	case statusInfo:
		return ansiBlue
	default:
		return ""
	}
}

// outcomeKind maps a classification status onto a status line severity.
func outcomeKind(status scan.Status) statusKind {
	switch status {
	case scan.StatusClassified:
		return statusOK
	case scan.StatusPartial:
		return statusWarn
	default:
		return statusInfo
	}
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderSummary(summary scan.Summary, colorize bool) string {
	lines := renderSectionHeader("Summary", colorize)
	lines = append(lines,
		renderStatusLine("Files", statusInfo, fmt.Sprintf("%d", summary.Total), colorize),
		renderStatusLine("Classified", statusOK, fmt.Sprintf("%d", summary.Classified), colorize),
	)
	partialKind := statusOK
	if summary.Partial > 0 {
		partialKind = statusWarn
	}
	lines = append(lines,
		renderStatusLine("Partial", partialKind, fmt.Sprintf("%d (%d unclassified tags)", summary.Partial, summary.Failures), colorize),
		renderStatusLine("Not a release", statusInfo, fmt.Sprintf("%d", summary.NotRelease), colorize),
		renderStatusLine("Skipped", statusInfo, fmt.Sprintf("%d", summary.Skipped), colorize),
	)
	return strings.Join(lines, "\n")
}
