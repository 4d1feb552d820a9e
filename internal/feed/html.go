package feed

import (
	"fmt"
	"io"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DecodeHTML parses the result table of an HTML search listing. Column
// headers are read from the table head (title attribute first, text
// otherwise) so column order does not matter.
func DecodeHTML(r io.Reader) ([]Result, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: html: %w", ErrMalformed, err)
	}
	table := findFirst(doc, atom.Table)
	if table == nil {
		return nil, fmt.Errorf("%w: html: no result table", ErrMalformed)
	}
	thead := findFirst(table, atom.Thead)
	tbody := findFirst(table, atom.Tbody)
	if thead == nil || tbody == nil {
		return nil, fmt.Errorf("%w: html: result table lacks head or body", ErrMalformed)
	}

	var keys []string
	for _, th := range findAll(thead, atom.Th) {
		if title, ok := attr(th, "title"); ok {
			keys = append(keys, title)
			continue
		}
		keys = append(keys, strings.TrimSpace(textContent(th)))
	}
	// Comment counts live inside the name cell.
	if i := slices.Index(keys, "Comments"); i >= 0 {
		keys = slices.Delete(keys, i, i+1)
	}

	var results []Result
	for i, row := range findAll(tbody, atom.Tr) {
		result, err := decodeRow(keys, row)
		if err != nil {
			return nil, fmt.Errorf("%w: html row %d: %w", ErrMalformed, i, err)
		}
		results = append(results, result)
	}
	return results, nil
}

func decodeRow(keys []string, row *html.Node) (Result, error) {
	var result Result
	cells := findAll(row, atom.Td)
	for i, key := range keys {
		if i >= len(cells) {
			break
		}
		td := cells[i]
		var err error
		switch key {
		case "Name":
			err = decodeNameCell(td, &result)
		case "Category":
			err = decodeCategoryCell(td, &result)
		case "Link":
			err = decodeLinkCell(td, &result)
		case "In UTC":
			err = decodeTimestampCell(td, &result)
		case "Size":
			result.Size = strings.TrimSpace(textContent(td))
		case "Seeders":
			result.Seeders, err = atoi("seeders", textContent(td))
		case "Leechers":
			result.Leechers, err = atoi("leechers", textContent(td))
		case "Completed downloads":
			var downloads int
			if downloads, err = atoi("downloads", textContent(td)); err == nil {
				result.Downloads = &downloads
			}
		}
		if err != nil {
			return Result{}, err
		}
	}
	classes := strings.Fields(attrValue(row, "class"))
	result.Trusted = slices.Contains(classes, "success")
	result.Remake = slices.Contains(classes, "danger")
	return result, nil
}

func decodeNameCell(td *html.Node, result *Result) error {
	links := findAll(td, atom.A)
	if len(links) == 0 {
		return fmt.Errorf("name: no link")
	}
	for _, a := range links {
		if slices.Contains(strings.Fields(attrValue(a, "class")), "comments") {
			comments, err := atoi("comments", textContent(a))
			if err != nil {
				return err
			}
			result.Comments = comments
		}
	}
	main := links[len(links)-1]
	result.Guid = Guid{Link: BaseURL + attrValue(main, "href"), Permalink: true}
	title, ok := attr(main, "title")
	if !ok {
		title = strings.TrimSpace(textContent(main))
	}
	result.Title = title
	return nil
}

func decodeCategoryCell(td *html.Node, result *Result) error {
	a := findFirst(td, atom.A)
	if a == nil {
		return fmt.Errorf("category: no link")
	}
	href := attrValue(a, "href")
	category, err := ParseCategory(href[strings.LastIndex(href, "=")+1:])
	if err != nil {
		return err
	}
	result.Category = category
	return nil
}

func decodeLinkCell(td *html.Node, result *Result) error {
	links := findAll(td, atom.A)
	if len(links) < 2 {
		return fmt.Errorf("link: expected torrent and magnet links, found %d", len(links))
	}
	result.Link = BaseURL + attrValue(links[0], "href")
	magnet := attrValue(links[1], "href")
	_, rawQuery, _ := strings.Cut(magnet, "?")
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return fmt.Errorf("magnet: %w", err)
	}
	xt := values.Get("xt")
	if xt == "" {
		return fmt.Errorf("magnet: missing xt")
	}
	result.InfoHash = xt[strings.LastIndex(xt, ":")+1:]
	return nil
}

func decodeTimestampCell(td *html.Node, result *Result) error {
	stamp, err := strconv.ParseInt(strings.TrimSpace(attrValue(td, "data-timestamp")), 10, 64)
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	result.Published = time.Unix(stamp, 0).UTC()
	return nil
}

func findFirst(n *html.Node, tag atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == tag {
			return c
		}
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, tag atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == tag {
				out = append(out, c)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attrValue(n *html.Node, key string) string {
	value, _ := attr(n, key)
	return value
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
