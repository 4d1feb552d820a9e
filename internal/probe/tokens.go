package probe

import (
	"fmt"
	"strings"

	"reltag/internal/token"
)

var codecNames = map[string]string{
	"h264":   "h264",
	"hevc":   "HEVC",
	"aac":    "AAC",
	"ac3":    "AC3",
	"flac":   "FLAC",
	"vorbis": "Vorbis",
	"dts":    "DTS",
}

var languageCodes = map[string]string{
	"jpn": "JP",
	"ja":  "JP",
	"eng": "EN",
	"en":  "EN",
}

// Tokens derives the tokens visible in the container: resolution, codec and
// bit depth of the first video stream, codec and channel layout of every
// audio stream, and audio and subtitle languages. Duplicates are dropped.
func (r Result) Tokens() []token.Token {
	var out []token.Token
	seen := map[token.Token]struct{}{}
	add := func(tok token.Token) {
		if tok.Text == "" {
			return
		}
		if _, ok := seen[tok]; ok {
			return
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}

	if videos := r.StreamsOfType("video"); len(videos) > 0 {
		v := videos[0]
		if v.Height > 0 {
			add(token.VideoQuality(fmt.Sprintf("%dp", v.Height)))
		}
		add(token.VideoQuality(codecLabel(v.CodecName)))
		if v.BitsPerRaw == "10" || strings.Contains(v.PixelFormat, "10le") {
			add(token.VideoQuality("10bit"))
		}
	}
	for _, a := range r.StreamsOfType("audio") {
		add(token.AudioQuality(codecLabel(a.CodecName)))
		add(token.AudioQuality(channelLabel(a)))
		add(token.AudioLanguage(languageLabel(a.Language())))
	}
	for _, s := range r.StreamsOfType("subtitle") {
		add(token.SubtitlesLanguage(languageLabel(s.Language())))
	}
	return out
}

func codecLabel(codec string) string {
	codec = strings.ToLower(strings.TrimSpace(codec))
	if label, ok := codecNames[codec]; ok {
		return label
	}
	return codec
}

// channelLabel renders a layout the way release tags spell it ("2.0", "5.1").
func channelLabel(s Stream) string {
	layout := strings.ToLower(strings.TrimSpace(s.ChannelLayout))
	if base, _, ok := strings.Cut(layout, "("); ok {
		layout = base
	}
	switch layout {
	case "mono":
		return "1.0"
	case "stereo":
		return "2.0"
	case "":
	default:
		return layout
	}
	switch s.Channels {
	case 0:
		return ""
	case 6:
		return "5.1"
	case 8:
		return "7.1"
	default:
		return fmt.Sprintf("%d.0", s.Channels)
	}
}

func languageLabel(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" || code == "und" {
		return ""
	}
	if label, ok := languageCodes[code]; ok {
		return label
	}
	return strings.ToUpper(code)
}

// Compare reports which probed tokens the filename did not claim and which
// filename quality or language tokens the container does not confirm. Only
// VideoQuality, AudioQuality and language kinds take part; text comparison is
// case-insensitive.
func Compare(named, probed []token.Token) (missing, unconfirmed []token.Token) {
	index := func(tokens []token.Token) map[string]struct{} {
		set := map[string]struct{}{}
		for _, tok := range tokens {
			if compared(tok.Kind) {
				set[compareKey(tok)] = struct{}{}
			}
		}
		return set
	}
	namedSet := index(named)
	probedSet := index(probed)
	for _, tok := range probed {
		if _, ok := namedSet[compareKey(tok)]; compared(tok.Kind) && !ok {
			missing = append(missing, tok)
		}
	}
	for _, tok := range named {
		if _, ok := probedSet[compareKey(tok)]; compared(tok.Kind) && !ok {
			unconfirmed = append(unconfirmed, tok)
		}
	}
	return missing, unconfirmed
}

func compared(kind token.Kind) bool {
	switch kind {
	case token.KindVideoQuality, token.KindAudioQuality, token.KindAudioLanguage, token.KindSubtitlesLanguage:
		return true
	}
	return false
}

func compareKey(tok token.Token) string {
	return string(tok.Kind) + "\x00" + strings.ToLower(tok.Text)
}
