package classify_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"reltag/internal/classify"
	"reltag/internal/token"
)

func TestClassifyTag(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []token.Token
	}{
		{"group", "HorribleSubs", []token.Token{token.SubGroup("HorribleSubs")}},
		{"group with space", "Team Nanban", []token.Token{token.SubGroup("Team Nanban")}},
		{"hash upper", "ABCD1234", []token.Token{token.Hash("ABCD1234")}},
		{"hash lower", "deadbeef", []token.Token{token.Hash("deadbeef")}},
		{"multiple subtitle", "Multiple Subtitle", []token.Token{
			token.SubtitlesLanguage("Multiple"), token.SubtitlesLanguage("EN"),
		}},
		{"dual audio", "Dual Audio", []token.Token{token.AudioLanguage("EN"), token.AudioLanguage("JP")}},
		{"space split", "1080p HEVC", []token.Token{token.VideoQuality("1080p"), token.VideoQuality("HEVC")}},
		{"comma split", "BD,1080p", []token.Token{token.Source("BD"), token.VideoQuality("1080p")}},
		{"dash split", "x264-AAC", []token.Token{token.VideoQuality("x264"), token.AudioQuality("AAC")}},
		{"underscore split", "WEB_720p", []token.Token{token.Source("WEB"), token.VideoQuality("720p")}},
		{"single word", "FLAC", []token.Token{token.AudioQuality("FLAC")}},
		{"channel layout", "5.1", []token.Token{token.AudioQuality("5.1")}},
		{"language", "JP", []token.Token{token.AudioLanguage("JP")}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, failure := classify.ClassifyTag(tc.content)
			if failure != nil {
				t.Fatalf("unexpected failure: %v", failure)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifyTagNoise(t *testing.T) {
	for _, content := range []string{"Disc 1", "Disc 2 of 3", "v2", "v10", "Directors Cut", "Clean Screen"} {
		tokens, failure := classify.ClassifyTag(content)
		if len(tokens) != 0 || failure != nil {
			t.Errorf("ClassifyTag(%q) = %v, %v; want nothing", content, tokens, failure)
		}
	}
}

func TestClassifyTagFailureRecordsAttempts(t *testing.T) {
	tokens, failure := classify.ClassifyTag("Some Fansub")
	if len(tokens) != 0 {
		t.Fatalf("expected no tokens, got %v", tokens)
	}
	if failure == nil {
		t.Fatal("expected failure")
	}
	want := classify.Failure{
		Tag: "Some Fansub",
		Attempts: []classify.Attempt{
			{Delimiter: " ", Unclassified: []string{"Some", "Fansub"}},
			{Delimiter: ",", Unclassified: []string{"Some Fansub"}},
			{Delimiter: "-", Unclassified: []string{"Some Fansub"}},
			{Delimiter: ".", Unclassified: []string{"Some Fansub"}},
			{Delimiter: "_", Unclassified: []string{"Some Fansub"}},
		},
	}
	if diff := cmp.Diff(want, *failure); diff != "" {
		t.Fatalf("failure mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(failure.String(), "Some Fansub") {
		t.Fatalf("failure summary missing tag: %s", failure.String())
	}
}

func TestClassifyTagNonHexFallsThroughToSplit(t *testing.T) {
	tokens, failure := classify.ClassifyTag("1A2B3C4G")
	if _, ok := token.First(tokens, token.KindHash); ok {
		t.Fatalf("non-hex content must not yield a hash, got %v", tokens)
	}
	if failure == nil {
		t.Fatal("expected failure after every split was tried")
	}
	if len(failure.Attempts) != len(classify.Delimiters) {
		t.Fatalf("expected %d split attempts, got %+v", len(classify.Delimiters), failure.Attempts)
	}
}

func TestClassifyTagEmptyWords(t *testing.T) {
	tokens, failure := classify.ClassifyTag("a  b")
	if len(tokens) != 0 {
		t.Fatalf("expected no tokens, got %v", tokens)
	}
	if failure == nil {
		t.Fatal("expected failure for doubled delimiter")
	}
	if got := failure.Attempts[0].Unclassified; !slices.Contains(got, "") {
		t.Fatalf("expected empty word among unclassified, got %q", got)
	}
}

func TestClassifyTagGroupsAreCaseSensitive(t *testing.T) {
	if _, failure := classify.ClassifyTag("horriblesubs"); failure == nil {
		t.Fatal("expected lowercase group name to stay unclassified")
	}
}

func TestClassifyTagRandomTags(t *testing.T) {
	c := classify.New(classify.WithRandomTags(true))
	tokens, failure := c.ClassifyTag("Some Fansub")
	if failure == nil {
		t.Fatal("expected failure to be reported alongside the random tag")
	}
	if diff := cmp.Diff([]token.Token{token.RandomTag("Some Fansub")}, tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyTagExtraGroups(t *testing.T) {
	c := classify.New(classify.WithGroups(classify.NewGroups(" SubsPlease ", "")))
	tokens, failure := c.ClassifyTag("SubsPlease")
	if failure != nil {
		t.Fatalf("unexpected failure: %v", failure)
	}
	if diff := cmp.Diff([]token.Token{token.SubGroup("SubsPlease")}, tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	if got, want := c.Groups().Len(), classify.DefaultGroups.Len()+1; got != want {
		t.Fatalf("groups = %d, want %d", got, want)
	}
}

func TestSplitAndClassify(t *testing.T) {
	tokens, unclassified := classify.SplitAndClassify("1080p Extended AAC", " ")
	if diff := cmp.Diff([]string{"Extended"}, unclassified); diff != "" {
		t.Fatalf("unclassified mismatch (-want +got):\n%s", diff)
	}
	want := []token.Token{token.VideoQuality("1080p"), token.AudioQuality("AAC")}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}
