package feed

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// BaseURL prefixes the relative links found in HTML listings.
const BaseURL = "https://nyaa.si"

var (
	// ErrUnsupportedFormat is returned by Decode for unknown document formats.
	ErrUnsupportedFormat = errors.New("feed: unsupported format")
	// ErrMalformed wraps structural problems in a decoded document.
	ErrMalformed = errors.New("feed: malformed document")
)

// Filter restricts results by uploader status.
type Filter int

const (
	FilterNone Filter = iota
	FilterNoRemakes
	FilterTrustedOnly
)

func (f Filter) String() string {
	return strconv.Itoa(int(f))
}

// Category is the index's "<major>_<minor>" category code.
type Category string

const (
	CategoryAll                         Category = "0_0"
	CategoryAnime                       Category = "1_0"
	CategoryAnimeMusicVideo             Category = "1_1"
	CategoryAnimeEnglishTranslated      Category = "1_2"
	CategoryAnimeNonEnglishTranslated   Category = "1_3"
	CategoryAnimeRaw                    Category = "1_4"
	CategoryAudio                       Category = "2_0"
	CategoryAudioLossless               Category = "2_1"
	CategoryAudioLossy                  Category = "2_2"
	CategoryLiterature                  Category = "3_0"
	CategoryLiteratureEnglishTranslated Category = "3_1"
	CategoryLiteratureNonEnglish        Category = "3_2"
	CategoryLiteratureRaw               Category = "3_3"
	CategoryLiveAction                  Category = "4_0"
	CategoryLiveActionEnglish           Category = "4_1"
	CategoryLiveActionIdolPromotional   Category = "4_2"
	CategoryLiveActionNonEnglish        Category = "4_3"
	CategoryLiveActionRaw               Category = "4_4"
	CategoryPictures                    Category = "5_0"
	CategoryPicturesGraphics            Category = "5_1"
	CategoryPicturesPhotos              Category = "5_2"
	CategorySoftware                    Category = "6_0"
	CategorySoftwareApplications        Category = "6_1"
	CategorySoftwareGames               Category = "6_2"
)

var categoryLabels = map[Category]string{
	CategoryAll:                         "All categories",
	CategoryAnime:                       "Anime",
	CategoryAnimeMusicVideo:             "Anime - Music Video",
	CategoryAnimeEnglishTranslated:      "Anime - English-translated",
	CategoryAnimeNonEnglishTranslated:   "Anime - Non-English-translated",
	CategoryAnimeRaw:                    "Anime - Raw",
	CategoryAudio:                       "Audio",
	CategoryAudioLossless:               "Audio - Lossless",
	CategoryAudioLossy:                  "Audio - Lossy",
	CategoryLiterature:                  "Literature",
	CategoryLiteratureEnglishTranslated: "Literature - English-translated",
	CategoryLiteratureNonEnglish:        "Literature - Non-English-translated",
	CategoryLiteratureRaw:               "Literature - Raw",
	CategoryLiveAction:                  "Live Action",
	CategoryLiveActionEnglish:           "Live Action - English-translated",
	CategoryLiveActionIdolPromotional:   "Live Action - Idol/Promotional Video",
	CategoryLiveActionNonEnglish:        "Live Action - Non-English-translated",
	CategoryLiveActionRaw:               "Live Action - Raw",
	CategoryPictures:                    "Pictures",
	CategoryPicturesGraphics:            "Pictures - Graphics",
	CategoryPicturesPhotos:              "Pictures - Photos",
	CategorySoftware:                    "Software",
	CategorySoftwareApplications:        "Software - Applications",
	CategorySoftwareGames:               "Software - Games",
}

// ParseCategory validates a category code.
func ParseCategory(code string) (Category, error) {
	c := Category(strings.TrimSpace(code))
	if _, ok := categoryLabels[c]; !ok {
		return "", fmt.Errorf("%w: unknown category %q", ErrMalformed, code)
	}
	return c, nil
}

// Label returns the human readable category name.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Sort selects the ordering column of a search.
type Sort string

const (
	SortComments  Sort = "comments"
	SortSize      Sort = "size"
	SortDate      Sort = "id"
	SortSeeders   Sort = "seeders"
	SortLeechers  Sort = "leechers"
	SortDownloads Sort = "downloads"
)

// Direction is the sort direction of a search.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Guid identifies a result on the index.
type Guid struct {
	Link      string `json:"link" yaml:"link"`
	Permalink bool   `json:"permalink" yaml:"permalink"`
}

// ID returns the numeric identifier at the end of the guid link.
func (g Guid) ID() (int, error) {
	idx := strings.LastIndex(g.Link, "/")
	id, err := strconv.Atoi(g.Link[idx+1:])
	if err != nil {
		return 0, fmt.Errorf("guid id: %w", err)
	}
	return id, nil
}

// Result is one search hit.
type Result struct {
	Title     string    `json:"title" yaml:"title"`
	Link      string    `json:"link" yaml:"link"`
	Guid      Guid      `json:"guid" yaml:"guid"`
	Published time.Time `json:"published" yaml:"published"`
	Seeders   int       `json:"seeders" yaml:"seeders"`
	Leechers  int       `json:"leechers" yaml:"leechers"`
	// Downloads is nil when the source document does not carry it.
	Downloads *int     `json:"downloads,omitempty" yaml:"downloads,omitempty"`
	InfoHash  string   `json:"info_hash,omitempty" yaml:"info_hash,omitempty"`
	Category  Category `json:"category" yaml:"category"`
	Size      string   `json:"size" yaml:"size"`
	Comments  int      `json:"comments" yaml:"comments"`
	Trusted   bool     `json:"trusted" yaml:"trusted"`
	Remake    bool     `json:"remake" yaml:"remake"`
}

// Same reports whether r and other describe the same upload. Swarm counters
// (seeders, leechers, downloads) change over time and are ignored.
func (r Result) Same(other Result) bool {
	return r.Title == other.Title &&
		r.Link == other.Link &&
		r.Guid == other.Guid &&
		r.Published.Equal(other.Published) &&
		r.InfoHash == other.InfoHash &&
		r.Category == other.Category &&
		r.Size == other.Size &&
		r.Comments == other.Comments &&
		r.Trusted == other.Trusted &&
		r.Remake == other.Remake
}

// SizeBytes parses the human readable size ("1.4 GiB").
func (r Result) SizeBytes() (uint64, error) {
	n, err := humanize.ParseBytes(r.Size)
	if err != nil {
		return 0, fmt.Errorf("size %q: %w", r.Size, err)
	}
	return n, nil
}
