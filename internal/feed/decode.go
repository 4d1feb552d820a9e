package feed

import (
	"fmt"
	"io"
	"strings"
)

// Format names a search document encoding.
type Format string

const (
	FormatRSS  Format = "rss"
	FormatHTML Format = "html"
)

// ParseFormat validates a format name.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case FormatRSS, FormatHTML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, value)
}

// FormatForPath guesses the document format from a file extension.
func FormatForPath(path string) Format {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm") {
		return FormatHTML
	}
	return FormatRSS
}

// Decode parses r according to format.
func Decode(r io.Reader, format Format) ([]Result, error) {
	switch format {
	case FormatRSS:
		return DecodeRSS(r)
	case FormatHTML:
		return DecodeHTML(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Titles returns the result titles in document order.
func Titles(results []Result) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Title)
	}
	return out
}
