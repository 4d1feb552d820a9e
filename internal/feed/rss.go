package feed

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// NyaaNamespace is the XML namespace of the index's RSS extension elements.
const NyaaNamespace = "https://nyaa.si/xmlns/nyaa"

const pubDateLayout = "Mon, 02 Jan 2006 15:04:05 -0700"

type rssDocument struct {
	Items []rssItem `xml:"channel>item"`
}

type rssGuid struct {
	Link      string `xml:",chardata"`
	Permalink string `xml:"isPermaLink,attr"`
}

type rssItem struct {
	Title      string  `xml:"title"`
	Link       string  `xml:"link"`
	Guid       rssGuid `xml:"guid"`
	PubDate    string  `xml:"pubDate"`
	Seeders    string  `xml:"https://nyaa.si/xmlns/nyaa seeders"`
	Leechers   string  `xml:"https://nyaa.si/xmlns/nyaa leechers"`
	Downloads  string  `xml:"https://nyaa.si/xmlns/nyaa downloads"`
	InfoHash   string  `xml:"https://nyaa.si/xmlns/nyaa infoHash"`
	CategoryID string  `xml:"https://nyaa.si/xmlns/nyaa categoryId"`
	Size       string  `xml:"https://nyaa.si/xmlns/nyaa size"`
	Comments   string  `xml:"https://nyaa.si/xmlns/nyaa comments"`
	Trusted    string  `xml:"https://nyaa.si/xmlns/nyaa trusted"`
	Remake     string  `xml:"https://nyaa.si/xmlns/nyaa remake"`
}

// DecodeRSS parses an RSS search document.
func DecodeRSS(r io.Reader) ([]Result, error) {
	var doc rssDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: rss: %w", ErrMalformed, err)
	}
	results := make([]Result, 0, len(doc.Items))
	for i, item := range doc.Items {
		result, err := item.result()
		if err != nil {
			return nil, fmt.Errorf("%w: rss item %d: %w", ErrMalformed, i, err)
		}
		results = append(results, result)
	}
	return results, nil
}

func (item rssItem) result() (Result, error) {
	published, err := time.Parse(pubDateLayout, strings.TrimSpace(item.PubDate))
	if err != nil {
		return Result{}, fmt.Errorf("pubDate: %w", err)
	}
	seeders, err := atoi("seeders", item.Seeders)
	if err != nil {
		return Result{}, err
	}
	leechers, err := atoi("leechers", item.Leechers)
	if err != nil {
		return Result{}, err
	}
	downloads, err := atoi("downloads", item.Downloads)
	if err != nil {
		return Result{}, err
	}
	comments, err := atoi("comments", item.Comments)
	if err != nil {
		return Result{}, err
	}
	category, err := ParseCategory(item.CategoryID)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Title:     strings.TrimSpace(item.Title),
		Link:      strings.TrimSpace(item.Link),
		Guid:      Guid{Link: strings.TrimSpace(item.Guid.Link), Permalink: item.Guid.Permalink == "true"},
		Published: published,
		Seeders:   seeders,
		Leechers:  leechers,
		Downloads: &downloads,
		InfoHash:  strings.TrimSpace(item.InfoHash),
		Category:  category,
		Size:      strings.TrimSpace(item.Size),
		Comments:  comments,
		Trusted:   strings.TrimSpace(item.Trusted) == "Yes",
		Remake:    strings.TrimSpace(item.Remake) == "Yes",
	}, nil
}

func atoi(field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return n, nil
}
