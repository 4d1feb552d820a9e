package classify

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"reltag/internal/logging"
	"reltag/internal/token"
)

var (
	tagPattern     = regexp.MustCompile(`\[[^\]]+\]`)
	episodePattern = regexp.MustCompile(`^(.+?) - E?(\d+)(?:\+E?(\d+))?(?:v(\d+))?( END)?$`)
)

// EpisodeMatch is the decoded "Title - 05" segment. Version and End are
// recognized so the pattern matches but are not emitted as tokens.
type EpisodeMatch struct {
	Title         string
	Episode       int
	SecondEpisode int
	HasSecond     bool
	Version       int
	End           bool
}

// Tokens returns Title, EpisodeNumber and the optional second EpisodeNumber.
func (m EpisodeMatch) Tokens() []token.Token {
	tokens := []token.Token{token.Title(m.Title), token.EpisodeNumber(m.Episode)}
	if m.HasSecond {
		tokens = append(tokens, token.EpisodeNumber(m.SecondEpisode))
	}
	return tokens
}

// MatchEpisode matches segment against
// "<title> - [E]<ep>[+[E]<ep2>][v<version>][ END]".
// Episode numbers too large for int make the segment not match.
func MatchEpisode(segment string) (EpisodeMatch, bool) {
	m := episodePattern.FindStringSubmatch(segment)
	if m == nil {
		return EpisodeMatch{}, false
	}
	episode, err := strconv.Atoi(m[2])
	if err != nil {
		return EpisodeMatch{}, false
	}
	match := EpisodeMatch{Title: m[1], Episode: episode, End: m[5] != ""}
	if m[3] != "" {
		second, err := strconv.Atoi(m[3])
		if err != nil {
			return EpisodeMatch{}, false
		}
		match.SecondEpisode = second
		match.HasSecond = true
	}
	if m[4] != "" {
		// Overflowing versions still match; the marker is informational.
		match.Version, _ = strconv.Atoi(m[4])
	}
	return match, true
}

// Tokenize classifies a filename whose extension has already been removed.
//
// Bracket tags are classified left to right. Text between tags is trimmed and
// kept as residual segments. When exactly one residual segment remains and it
// matches the episode pattern, it becomes Title and EpisodeNumber tokens and
// the residual list is emptied.
func (c *Classifier) Tokenize(name string) Result {
	res := Result{
		Name:     name,
		Tokens:   []token.Token{},
		Residual: []string{},
	}

	pos := 0
	for _, loc := range tagPattern.FindAllStringIndex(name, -1) {
		if before := strings.TrimSpace(name[pos:loc[0]]); before != "" {
			res.Residual = append(res.Residual, before)
		}
		tokens, failure := c.ClassifyTag(name[loc[0]+1 : loc[1]-1])
		res.Tokens = append(res.Tokens, tokens...)
		if failure != nil {
			res.Failures = append(res.Failures, *failure)
			c.logFailure(name, *failure)
		}
		pos = loc[1]
	}
	if rest := strings.TrimSpace(name[pos:]); rest != "" {
		res.Residual = append(res.Residual, rest)
	}

	if len(res.Residual) == 1 {
		if match, ok := MatchEpisode(res.Residual[0]); ok {
			res.Tokens = append(res.Tokens, match.Tokens()...)
			res.Residual = []string{}
			res.Version = match.Version
			res.End = match.End
		}
	}
	return res
}

// TokenizeFile strips the extension from filename, tokenizes the rest, and
// appends an Extension token when an extension was present.
func (c *Classifier) TokenizeFile(filename string) Result {
	ext := filepath.Ext(filename)
	res := c.Tokenize(strings.TrimSuffix(filename, ext))
	res.Name = filename
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		res.Tokens = append(res.Tokens, token.Extension(ext))
	}
	return res
}

func (c *Classifier) logFailure(name string, failure Failure) {
	logging.WarnWithContext(c.logger, "bracket tag not classified", "tag_unclassified",
		logging.String(logging.FieldFilename, name),
		logging.String("tag", failure.Tag),
		logging.String("attempts", failure.String()),
		logging.String(logging.FieldImpact, "tag dropped from token list"),
		logging.String(logging.FieldErrorHint, "add release groups to classify.extra_groups"),
	)
}
