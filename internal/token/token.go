package token

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind names the semantic category of a token.
type Kind string

const (
	KindExtension         Kind = "extension"
	KindAudioQuality      Kind = "audio_quality"
	KindVideoQuality      Kind = "video_quality"
	KindSource            Kind = "source"
	KindSubGroup          Kind = "sub_group"
	KindRandomTag         Kind = "random_tag"
	KindAudioLanguage     Kind = "audio_language"
	KindSubtitlesLanguage Kind = "subtitles_language"
	KindHash              Kind = "hash"
	KindTitle             Kind = "title"
	KindEpisodeNumber     Kind = "episode_number"
)

var allKinds = []Kind{
	KindExtension,
	KindAudioQuality,
	KindVideoQuality,
	KindSource,
	KindSubGroup,
	KindRandomTag,
	KindAudioLanguage,
	KindSubtitlesLanguage,
	KindHash,
	KindTitle,
	KindEpisodeNumber,
}

var kindSet = func() map[Kind]struct{} {
	set := make(map[Kind]struct{}, len(allKinds))
	for _, kind := range allKinds {
		set[kind] = struct{}{}
	}
	return set
}()

var kindLabels = map[Kind]string{
	KindExtension:         "Extension",
	KindAudioQuality:      "AudioQuality",
	KindVideoQuality:      "VideoQuality",
	KindSource:            "Source",
	KindSubGroup:          "SubGroup",
	KindRandomTag:         "RandomTag",
	KindAudioLanguage:     "AudioLanguage",
	KindSubtitlesLanguage: "SubtitlesLanguage",
	KindHash:              "Hash",
	KindTitle:             "Title",
	KindEpisodeNumber:     "EpisodeNumber",
}

// AllKinds returns every known kind in declaration order.
func AllKinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// ParseKind resolves a kind from its wire name ("sub_group") or its label
// ("SubGroup"). Matching is case-insensitive.
func ParseKind(value string) (Kind, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	if kind := Kind(strings.ToLower(trimmed)); kind.Valid() {
		return kind, true
	}
	for kind, label := range kindLabels {
		if strings.EqualFold(label, trimmed) {
			return kind, true
		}
	}
	return "", false
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindSet[k]
	return ok
}

// Label returns the display name of the kind.
func (k Kind) Label() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return string(k)
}

// Numeric reports whether tokens of this kind carry an integer payload.
func (k Kind) Numeric() bool {
	return k == KindEpisodeNumber
}

// Token is a single classification outcome.
type Token struct {
	Kind   Kind
	Text   string
	Number int
}

func Extension(value string) Token         { return Token{Kind: KindExtension, Text: value} }
func AudioQuality(value string) Token      { return Token{Kind: KindAudioQuality, Text: value} }
func VideoQuality(value string) Token      { return Token{Kind: KindVideoQuality, Text: value} }
func Source(value string) Token            { return Token{Kind: KindSource, Text: value} }
func SubGroup(value string) Token          { return Token{Kind: KindSubGroup, Text: value} }
func RandomTag(value string) Token         { return Token{Kind: KindRandomTag, Text: value} }
func AudioLanguage(value string) Token     { return Token{Kind: KindAudioLanguage, Text: value} }
func SubtitlesLanguage(value string) Token { return Token{Kind: KindSubtitlesLanguage, Text: value} }
func Hash(value string) Token              { return Token{Kind: KindHash, Text: value} }
func Title(value string) Token             { return Token{Kind: KindTitle, Text: value} }

// EpisodeNumber builds an episode token. Negative values are clamped to zero.
func EpisodeNumber(value int) Token {
	if value < 0 {
		value = 0
	}
	return Token{Kind: KindEpisodeNumber, Number: value}
}

// Value returns the payload as a display string.
func (t Token) Value() string {
	if t.Kind.Numeric() {
		return strconv.Itoa(t.Number)
	}
	return t.Text
}

func (t Token) String() string {
	if t.Kind.Numeric() {
		return fmt.Sprintf("%s(%d)", t.Kind.Label(), t.Number)
	}
	return fmt.Sprintf("%s(%q)", t.Kind.Label(), t.Text)
}

type wireToken struct {
	Kind  Kind `json:"kind" yaml:"kind"`
	Value any  `json:"value" yaml:"value"`
}

func (t Token) wire() wireToken {
	if t.Kind.Numeric() {
		return wireToken{Kind: t.Kind, Value: t.Number}
	}
	return wireToken{Kind: t.Kind, Value: t.Text}
}

// MarshalJSON encodes the token as {"kind": ..., "value": ...}.
func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.wire())
}

// MarshalYAML mirrors MarshalJSON for YAML encoders.
func (t Token) MarshalYAML() (any, error) {
	return t.wire(), nil
}

// UnmarshalJSON decodes the {"kind": ..., "value": ...} form.
func (t *Token) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind  Kind            `json:"kind"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !raw.Kind.Valid() {
		return fmt.Errorf("token: unknown kind %q", raw.Kind)
	}
	if raw.Kind.Numeric() {
		var n int
		if err := json.Unmarshal(raw.Value, &n); err != nil {
			return fmt.Errorf("token: %s value: %w", raw.Kind, err)
		}
		*t = EpisodeNumber(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(raw.Value, &s); err != nil {
		return fmt.Errorf("token: %s value: %w", raw.Kind, err)
	}
	*t = Token{Kind: raw.Kind, Text: s}
	return nil
}

// Filter returns the tokens of the given kind, preserving order.
func Filter(tokens []Token, kind Kind) []Token {
	var out []Token
	for _, tok := range tokens {
		if tok.Kind == kind {
			out = append(out, tok)
		}
	}
	return out
}

// First returns the first token of the given kind.
func First(tokens []Token, kind Kind) (Token, bool) {
	for _, tok := range tokens {
		if tok.Kind == kind {
			return tok, true
		}
	}
	return Token{}, false
}
