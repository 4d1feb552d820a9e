package classify

import "reltag/internal/token"

// Result is the outcome of tokenizing one filename.
type Result struct {
	Name     string        `json:"name" yaml:"name"`
	Tokens   []token.Token `json:"tokens" yaml:"tokens"`
	Residual []string      `json:"residual" yaml:"residual"`
	Failures []Failure     `json:"failures,omitempty" yaml:"failures,omitempty"`
	// Version and End carry the "v2" and " END" markers of a matched episode
	// segment. They are not tokens.
	Version int  `json:"version,omitempty" yaml:"version,omitempty"`
	End     bool `json:"end,omitempty" yaml:"end,omitempty"`
}

// Complete reports whether every tag classified and no residual text remains.
func (r Result) Complete() bool {
	return len(r.Failures) == 0 && len(r.Residual) == 0
}

// Title returns the show title token, if any.
func (r Result) Title() (string, bool) {
	tok, ok := token.First(r.Tokens, token.KindTitle)
	return tok.Text, ok
}

// Group returns the first release group token, if any.
func (r Result) Group() (string, bool) {
	tok, ok := token.First(r.Tokens, token.KindSubGroup)
	return tok.Text, ok
}

// Episodes returns the episode numbers in extraction order.
func (r Result) Episodes() []int {
	var out []int
	for _, tok := range token.Filter(r.Tokens, token.KindEpisodeNumber) {
		out = append(out, tok.Number)
	}
	return out
}
