package classify

import (
	"strings"

	"reltag/internal/token"
)

var sourceWords = wordSet("bluray", "blu-ray", "bd", "bdrip", "dvd", "dvdrip", "web", "webrip", "hdtv", "hardsub", "vrv")

var audioWords = wordSet("aac", "ac3", "flac", "vorbis", "dts", "aac_5.1", "dts-es", "2ch")

var videoWords = wordSet("hevc", "hi10p", "x264", "x265", "h264", "10bit")

var languageWords = wordSet("jp", "en", "dual")

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func inSet(set map[string]struct{}, word string) bool {
	_, ok := set[strings.ToLower(word)]
	return ok
}

// IsSource reports whether word names an origin medium (bluray, web, ...).
func IsSource(word string) bool {
	return inSet(sourceWords, word)
}

// IsAudio reports whether word is an audio codec or a channel layout such as "5.1".
func IsAudio(word string) bool {
	if inSet(audioWords, word) {
		return true
	}
	return len(word) == 3 && isDigit(word[0]) && word[1] == '.' && isDigit(word[2])
}

// IsVideo reports whether word is a video codec, a resolution such as "1080p",
// or a frame size such as "1920x1080".
func IsVideo(word string) bool {
	lower := strings.ToLower(word)
	if _, ok := videoWords[lower]; ok {
		return true
	}
	if n := len(lower); n > 1 && lower[n-1] == 'p' && allDigits(lower[:n-1]) {
		return true
	}
	if strings.Count(lower, "x") == 1 {
		width, height, _ := strings.Cut(lower, "x")
		return allDigits(width) && allDigits(height)
	}
	return false
}

// IsLanguage reports whether word is one of the language markers (jp, en, dual).
func IsLanguage(word string) bool {
	return inSet(languageWords, word)
}

// ClassifyWord maps a single word to a token. Predicates are tried in the
// order audio, video, source, language; the first match wins. Language words
// become AudioLanguage tokens. The token keeps the word's original spelling.
func ClassifyWord(word string) (token.Token, bool) {
	switch {
	case IsAudio(word):
		return token.AudioQuality(word), true
	case IsVideo(word):
		return token.VideoQuality(word), true
	case IsSource(word):
		return token.Source(word), true
	case IsLanguage(word):
		return token.AudioLanguage(word), true
	}
	return token.Token{}, false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isDigit(c) && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
