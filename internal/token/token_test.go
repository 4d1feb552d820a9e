package token

import (
	"encoding/json"
	"testing"
)

func TestTokenEquality(t *testing.T) {
	if SubGroup("FFF") != SubGroup("FFF") {
		t.Fatal("expected identical sub group tokens to be equal")
	}
	if SubGroup("FFF") == RandomTag("FFF") {
		t.Fatal("tokens of different kinds must not be equal")
	}
	if EpisodeNumber(5) == EpisodeNumber(6) {
		t.Fatal("episode tokens with different numbers must not be equal")
	}
	seen := map[Token]int{}
	seen[Hash("ABCD1234")]++
	seen[Hash("ABCD1234")]++
	if seen[Hash("ABCD1234")] != 2 {
		t.Fatalf("expected tokens to be usable as map keys, got %v", seen)
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{SubGroup("HorribleSubs"), `SubGroup("HorribleSubs")`},
		{VideoQuality("720p"), `VideoQuality("720p")`},
		{EpisodeNumber(5), "EpisodeNumber(5)"},
	}
	for _, tc := range tests {
		if got := tc.tok.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestEpisodeNumberClampsNegative(t *testing.T) {
	if got := EpisodeNumber(-3).Number; got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"sub_group", KindSubGroup, true},
		{"SubGroup", KindSubGroup, true},
		{" EPISODE_NUMBER ", KindEpisodeNumber, true},
		{"audiolanguage", KindAudioLanguage, true},
		{"", "", false},
		{"codec", "", false},
	}
	for _, tc := range tests {
		got, ok := ParseKind(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseKind(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestTokenJSON(t *testing.T) {
	in := []Token{Title("Show"), EpisodeNumber(12)}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[{"kind":"title","value":"Show"},{"kind":"episode_number","value":12}]`
	if string(data) != want {
		t.Fatalf("unexpected json: %s", data)
	}

	var out []Token
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Fatalf("decoded tokens differ: %v", out)
	}
}

func TestTokenJSONRejectsUnknownKind(t *testing.T) {
	var tok Token
	if err := json.Unmarshal([]byte(`{"kind":"codec","value":"x"}`), &tok); err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if err := json.Unmarshal([]byte(`{"kind":"episode_number","value":"five"}`), &tok); err == nil {
		t.Fatal("expected error for non-numeric episode")
	}
}

func TestFilterAndFirst(t *testing.T) {
	tokens := []Token{SubGroup("FFF"), EpisodeNumber(1), EpisodeNumber(2)}
	eps := Filter(tokens, KindEpisodeNumber)
	if len(eps) != 2 || eps[0].Number != 1 || eps[1].Number != 2 {
		t.Fatalf("unexpected filter result: %v", eps)
	}
	if _, ok := First(tokens, KindHash); ok {
		t.Fatal("expected no hash token")
	}
	if got, ok := First(tokens, KindSubGroup); !ok || got.Text != "FFF" {
		t.Fatalf("unexpected first sub group: %v", got)
	}
}
