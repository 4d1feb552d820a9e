package classify

import (
	"testing"

	"reltag/internal/token"
)

func TestWordPredicates(t *testing.T) {
	tests := []struct {
		word                 string
		source, audio, video bool
		language             bool
	}{
		{word: "BluRay", source: true},
		{word: "blu-ray", source: true},
		{word: "WEB", source: true},
		{word: "vrv", source: true},
		{word: "AAC", audio: true},
		{word: "aac_5.1", audio: true},
		{word: "5.1", audio: true},
		{word: "2.0", audio: true},
		{word: "DTS-ES", audio: true},
		{word: "HEVC", video: true},
		{word: "Hi10P", video: true},
		{word: "10bit", video: true},
		{word: "1080p", video: true},
		{word: "720P", video: true},
		{word: "1920x1080", video: true},
		{word: "1920X1080", video: true},
		{word: "JP", language: true},
		{word: "dual", language: true},
		{word: "p"},
		{word: "x"},
		{word: "x1080"},
		{word: "19x20x30"},
		{word: "5.1ch"},
		{word: "Show"},
		{word: ""},
	}
	for _, tc := range tests {
		if got := IsSource(tc.word); got != tc.source {
			t.Errorf("IsSource(%q) = %v, want %v", tc.word, got, tc.source)
		}
		if got := IsAudio(tc.word); got != tc.audio {
			t.Errorf("IsAudio(%q) = %v, want %v", tc.word, got, tc.audio)
		}
		if got := IsVideo(tc.word); got != tc.video {
			t.Errorf("IsVideo(%q) = %v, want %v", tc.word, got, tc.video)
		}
		if got := IsLanguage(tc.word); got != tc.language {
			t.Errorf("IsLanguage(%q) = %v, want %v", tc.word, got, tc.language)
		}
	}
}

func TestClassifyWordKeepsSpelling(t *testing.T) {
	tests := []struct {
		word string
		want token.Token
	}{
		{"FLAC", token.AudioQuality("FLAC")},
		{"x265", token.VideoQuality("x265")},
		{"BD", token.Source("BD")},
		{"EN", token.AudioLanguage("EN")},
	}
	for _, tc := range tests {
		got, ok := ClassifyWord(tc.word)
		if !ok || got != tc.want {
			t.Errorf("ClassifyWord(%q) = %v, %v; want %v", tc.word, got, ok, tc.want)
		}
	}
	if _, ok := ClassifyWord("Extended"); ok {
		t.Fatal("expected unknown word to stay unclassified")
	}
}
