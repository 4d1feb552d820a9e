package main

import (
	"strconv"
	"strings"

	"reltag/internal/classify"
	"reltag/internal/scan"
	"reltag/internal/token"
)

func formatTokens(tokens []token.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, tok.String())
	}
	return strings.Join(parts, " ")
}

func formatEpisodes(res *classify.Result) string {
	if res == nil {
		return ""
	}
	eps := res.Episodes()
	parts := make([]string, 0, len(eps))
	for _, ep := range eps {
		parts = append(parts, strconv.Itoa(ep))
	}
	return strings.Join(parts, "+")
}

func formatFailures(failures []classify.Failure) string {
	tags := make([]string, 0, len(failures))
	for _, f := range failures {
		tags = append(tags, "["+f.Tag+"]")
	}
	return strings.Join(tags, " ")
}

func outcomeTitle(o scan.Outcome) string {
	if o.Result == nil {
		return ""
	}
	title, _ := o.Result.Title()
	return title
}

func outcomeGroup(o scan.Outcome) string {
	if o.Result == nil {
		return ""
	}
	group, _ := o.Result.Group()
	return group
}

// outcomeRows renders outcomes as Name | Status | Group | Title | Episode | Unclassified.
func outcomeRows(outcomes []scan.Outcome, label func(scan.Outcome) string) [][]string {
	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		var failures string
		if o.Result != nil {
			failures = formatFailures(o.Result.Failures)
			if len(o.Result.Residual) > 0 {
				failures = strings.TrimSpace(failures + " " + strconv.Quote(strings.Join(o.Result.Residual, " | ")))
			}
		}
		rows = append(rows, []string{
			label(o),
			string(o.Status),
			outcomeGroup(o),
			outcomeTitle(o),
			formatEpisodes(o.Result),
			failures,
		})
	}
	return rows
}

var outcomeHeaders = []string{"Name", "Status", "Group", "Title", "Episode", "Unclassified"}

var outcomeAligns = []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
