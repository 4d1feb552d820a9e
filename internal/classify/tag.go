package classify

import (
	"fmt"
	"regexp"
	"strings"

	"reltag/internal/token"
)

const (
	hashLength          = 8
	multipleSubtitleTag = "Multiple Subtitle"
	dualAudioTag        = "Dual Audio"
)

// Delimiters are tried in order when splitting a tag into words.
var Delimiters = []string{" ", ",", "-", ".", "_"}

var (
	discPattern    = regexp.MustCompile(`^Disc \d`)
	versionPattern = regexp.MustCompile(`^v\d`)
	noiseTags      = map[string]struct{}{"Directors Cut": {}, "Clean Screen": {}}
)

// Attempt records one delimiter split that left words unclassified.
type Attempt struct {
	Delimiter    string   `json:"delimiter" yaml:"delimiter"`
	Unclassified []string `json:"unclassified" yaml:"unclassified"`
}

// Failure describes a bracket tag that no delimiter split could classify.
type Failure struct {
	Tag      string    `json:"tag" yaml:"tag"`
	Attempts []Attempt `json:"attempts" yaml:"attempts"`
}

func (f Failure) String() string {
	parts := make([]string, 0, len(f.Attempts))
	for _, a := range f.Attempts {
		parts = append(parts, fmt.Sprintf("%q: %q", a.Delimiter, a.Unclassified))
	}
	return fmt.Sprintf("%q unclassified after splits {%s}", f.Tag, strings.Join(parts, ", "))
}

// IsNoise reports whether a tag carries disc, version or edition markers that
// are deliberately discarded.
func IsNoise(content string) bool {
	if _, ok := noiseTags[content]; ok {
		return true
	}
	return discPattern.MatchString(content) || versionPattern.MatchString(content)
}

// SplitAndClassify splits content on delim and classifies every word. It
// returns the tokens for the words that classified and the words that did
// not; the split is usable only when unclassified is empty.
func SplitAndClassify(content, delim string) (tokens []token.Token, unclassified []string) {
	for _, word := range strings.Split(content, delim) {
		if tok, ok := ClassifyWord(word); ok {
			tokens = append(tokens, tok)
			continue
		}
		unclassified = append(unclassified, word)
	}
	return tokens, unclassified
}

// ClassifyTag classifies the content of one bracket tag (without brackets).
//
// Special cases are checked first, in order: known group, 8-digit hex hash,
// "Multiple Subtitle", "Dual Audio", noise markers. Otherwise the content is
// split on each of Delimiters in turn and the first split whose words all
// classify wins. When no split works the tag yields no tokens (or a single
// RandomTag when enabled) and a non-nil Failure.
func (c *Classifier) ClassifyTag(content string) ([]token.Token, *Failure) {
	switch {
	case c.groups.Has(content):
		return []token.Token{token.SubGroup(content)}, nil
	case len(content) == hashLength && isHex(content):
		return []token.Token{token.Hash(content)}, nil
	case content == multipleSubtitleTag:
		return []token.Token{token.SubtitlesLanguage("Multiple"), token.SubtitlesLanguage("EN")}, nil
	case content == dualAudioTag:
		return []token.Token{token.AudioLanguage("EN"), token.AudioLanguage("JP")}, nil
	case IsNoise(content):
		return nil, nil
	}

	attempts := make([]Attempt, 0, len(Delimiters))
	for _, delim := range Delimiters {
		tokens, unclassified := SplitAndClassify(content, delim)
		if len(unclassified) == 0 {
			if _, ok := token.First(tokens, token.KindAudioLanguage); ok {
				c.logger.Debug("language word inside tag", "tag", content, "delimiter", delim)
			}
			return tokens, nil
		}
		attempts = append(attempts, Attempt{Delimiter: delim, Unclassified: unclassified})
	}

	failure := &Failure{Tag: content, Attempts: attempts}
	if c.randomTags {
		return []token.Token{token.RandomTag(content)}, failure
	}
	return nil, failure
}
