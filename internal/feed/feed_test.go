package feed

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const rssFixture = `<?xml version="1.0" encoding="utf-8"?>
<rss xmlns:atom="http://www.w3.org/2005/Atom" xmlns:nyaa="https://nyaa.si/xmlns/nyaa" version="2.0">
  <channel>
    <title>Nyaa - "show" - Torrent File RSS</title>
    <item>
      <title>[FFF] Show - 01 [1080p][ABCD1234].mkv</title>
      <link>https://nyaa.si/download/1234567.torrent</link>
      <guid isPermaLink="true">https://nyaa.si/view/1234567</guid>
      <pubDate>Sat, 03 Oct 2020 14:05:07 -0000</pubDate>
      <nyaa:seeders>120</nyaa:seeders>
      <nyaa:leechers>4</nyaa:leechers>
      <nyaa:downloads>3021</nyaa:downloads>
      <nyaa:infoHash>0123456789abcdef0123456789abcdef01234567</nyaa:infoHash>
      <nyaa:categoryId>1_2</nyaa:categoryId>
      <nyaa:category>Anime - English-translated</nyaa:category>
      <nyaa:size>1.4 GiB</nyaa:size>
      <nyaa:comments>2</nyaa:comments>
      <nyaa:trusted>Yes</nyaa:trusted>
      <nyaa:remake>No</nyaa:remake>
    </item>
  </channel>
</rss>`

const htmlFixture = `<!DOCTYPE html>
<html><body>
<div class="table-responsive">
<table class="table torrent-list">
  <thead>
    <tr>
      <th class="hdr-category">Category</th>
      <th class="hdr-name">Name</th>
      <th class="hdr-comments" title="Comments"><i class="fa fa-comments-o"></i></th>
      <th class="hdr-link">Link</th>
      <th class="hdr-size">Size</th>
      <th class="hdr-date" title="In UTC">Date</th>
      <th class="hdr-seeders" title="Seeders"><i class="fa fa-arrow-up"></i></th>
      <th class="hdr-leechers" title="Leechers"><i class="fa fa-arrow-down"></i></th>
      <th class="hdr-downloads" title="Completed downloads"><i class="fa fa-check"></i></th>
    </tr>
  </thead>
  <tbody>
    <tr class="success">
      <td><a href="/?c=1_2" title="Anime - English-translated"><img src="/static/img/icons/nyaa/1_2.png"></a></td>
      <td colspan="2">
        <a href="/view/1234567#comments" class="comments" title="2 comments"><i class="fa fa-comments-o"></i>2</a>
        <a href="/view/1234567" title="[FFF] Show - 01 [1080p][ABCD1234].mkv">[FFF] Show - 01 [1080p][ABCD1234].mkv</a>
      </td>
      <td class="text-center">
        <a href="/download/1234567.torrent"><i class="fa fa-fw fa-download"></i></a>
        <a href="magnet:?xt=urn:btih:0123456789abcdef0123456789abcdef01234567&amp;dn=show"><i class="fa fa-fw fa-magnet"></i></a>
      </td>
      <td class="text-center">1.4 GiB</td>
      <td class="text-center" data-timestamp="1601733907">2020-10-03 14:05</td>
      <td class="text-center">120</td>
      <td class="text-center">4</td>
      <td class="text-center">3021</td>
    </tr>
    <tr class="danger">
      <td><a href="/?c=1_4"><img></a></td>
      <td colspan="2"><a href="/view/42" title="Raw Show - 02.mp4">Raw Show - 02.mp4</a></td>
      <td class="text-center">
        <a href="/download/42.torrent"></a>
        <a href="magnet:?xt=urn:btih:ffff&amp;dn=raw"></a>
      </td>
      <td class="text-center">300 MiB</td>
      <td class="text-center" data-timestamp="1601733000"></td>
      <td class="text-center">0</td>
      <td class="text-center">1</td>
      <td class="text-center">7</td>
    </tr>
  </tbody>
</table>
</div>
</body></html>`

func intPtr(v int) *int { return &v }

func expectedFirst() Result {
	return Result{
		Title:     "[FFF] Show - 01 [1080p][ABCD1234].mkv",
		Link:      "https://nyaa.si/download/1234567.torrent",
		Guid:      Guid{Link: "https://nyaa.si/view/1234567", Permalink: true},
		Published: time.Date(2020, 10, 3, 14, 5, 7, 0, time.UTC),
		Seeders:   120,
		Leechers:  4,
		Downloads: intPtr(3021),
		InfoHash:  "0123456789abcdef0123456789abcdef01234567",
		Category:  CategoryAnimeEnglishTranslated,
		Size:      "1.4 GiB",
		Comments:  2,
		Trusted:   true,
	}
}

func TestDecodeRSS(t *testing.T) {
	results, err := DecodeRSS(strings.NewReader(rssFixture))
	if err != nil {
		t.Fatalf("DecodeRSS: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	want := expectedFirst()
	if !results[0].Same(want) {
		t.Fatalf("unexpected result:\n%s", cmp.Diff(want, results[0]))
	}
	if results[0].Downloads == nil || *results[0].Downloads != 3021 {
		t.Fatalf("expected downloads 3021, got %v", results[0].Downloads)
	}
}

func TestDecodeHTML(t *testing.T) {
	results, err := DecodeHTML(strings.NewReader(htmlFixture))
	if err != nil {
		t.Fatalf("DecodeHTML: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if diff := cmp.Diff(expectedFirst(), results[0]); diff != "" {
		t.Fatalf("first row mismatch (-want +got):\n%s", diff)
	}
	raw := results[1]
	if !raw.Remake || raw.Trusted {
		t.Fatalf("expected remake row, got trusted=%v remake=%v", raw.Trusted, raw.Remake)
	}
	if raw.Category != CategoryAnimeRaw || raw.InfoHash != "ffff" || raw.Comments != 0 {
		t.Fatalf("unexpected second row: %+v", raw)
	}
}

func TestDecodeMatchesAcrossFormats(t *testing.T) {
	rss, err := Decode(strings.NewReader(rssFixture), FormatRSS)
	if err != nil {
		t.Fatalf("Decode rss: %v", err)
	}
	page, err := Decode(strings.NewReader(htmlFixture), FormatHTML)
	if err != nil {
		t.Fatalf("Decode html: %v", err)
	}
	if !rss[0].Same(page[0]) {
		t.Fatalf("expected rss and html results to describe the same upload:\n%s", cmp.Diff(rss[0], page[0]))
	}
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	if _, err := Decode(strings.NewReader(""), Format("atom")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := ParseFormat("json"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if f, err := ParseFormat(" HTML "); err != nil || f != FormatHTML {
		t.Fatalf("ParseFormat(HTML) = %q, %v", f, err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	bad := strings.Replace(rssFixture, "<nyaa:seeders>120</nyaa:seeders>", "<nyaa:seeders>many</nyaa:seeders>", 1)
	if _, err := DecodeRSS(strings.NewReader(bad)); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if _, err := DecodeHTML(strings.NewReader("<html><body><p>nothing</p></body></html>")); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed for missing table, got %v", err)
	}
}

func TestSameIgnoresSwarmCounters(t *testing.T) {
	a := expectedFirst()
	b := expectedFirst()
	b.Seeders, b.Leechers, b.Downloads = 1, 99, nil
	if !a.Same(b) {
		t.Fatal("expected swarm counters to be ignored")
	}
	b.Size = "1.5 GiB"
	if a.Same(b) {
		t.Fatal("expected size difference to matter")
	}
}

func TestSizeBytesAndGuidID(t *testing.T) {
	r := expectedFirst()
	size, err := r.SizeBytes()
	if err != nil {
		t.Fatalf("SizeBytes: %v", err)
	}
	if want := uint64(1503238553); size != want {
		t.Fatalf("SizeBytes = %d, want %d", size, want)
	}
	id, err := r.Guid.ID()
	if err != nil || id != 1234567 {
		t.Fatalf("Guid.ID = %d, %v", id, err)
	}
	if _, err := (Guid{Link: "https://nyaa.si/view/abc"}).ID(); err == nil {
		t.Fatal("expected error for non-numeric guid")
	}
}

func TestQueryURL(t *testing.T) {
	q := DefaultQuery("show 1080p")
	q.Category = CategoryAnimeEnglishTranslated
	got := q.URL("")
	want := "https://nyaa.si/?c=1_2&f=0&o=desc&p=1&page=rss&q=show+1080p&s=id"
	if got != want {
		t.Fatalf("URL = %q, want %q", got, want)
	}
	if html := (Query{Term: "x", RSS: false}).Values().Get("page"); html != "" {
		t.Fatalf("expected empty page parameter for html listing, got %q", html)
	}
}

func TestCategoryLabel(t *testing.T) {
	if CategoryAnimeRaw.Label() != "Anime - Raw" {
		t.Fatalf("unexpected label %q", CategoryAnimeRaw.Label())
	}
	if _, err := ParseCategory("9_9"); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed for unknown category, got %v", err)
	}
}
