package feed

import (
	"net/url"
	"strconv"
	"strings"
)

// Query describes a search on the index.
type Query struct {
	Term      string
	Filter    Filter
	Category  Category
	Sort      Sort
	Direction Direction
	Page      int
	RSS       bool
}

// DefaultQuery returns a query for term with the index defaults: no filter,
// all categories, newest first, first page, RSS output.
func DefaultQuery(term string) Query {
	return Query{
		Term:      term,
		Filter:    FilterNone,
		Category:  CategoryAll,
		Sort:      SortDate,
		Direction: Descending,
		Page:      1,
		RSS:       true,
	}
}

// Values renders the query string parameters.
func (q Query) Values() url.Values {
	values := url.Values{}
	values.Set("q", q.Term)
	values.Set("f", q.Filter.String())
	values.Set("c", string(orDefault(q.Category, CategoryAll)))
	values.Set("s", string(orDefault(q.Sort, SortDate)))
	values.Set("o", string(orDefault(q.Direction, Descending)))
	page := q.Page
	if page < 1 {
		page = 1
	}
	values.Set("p", strconv.Itoa(page))
	if q.RSS {
		values.Set("page", "rss")
	} else {
		values.Set("page", "")
	}
	return values
}

// URL renders the full search URL against base (BaseURL when empty).
func (q Query) URL(base string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = BaseURL
	}
	return base + "/?" + q.Values().Encode()
}

func orDefault[T ~string](value, fallback T) T {
	if strings.TrimSpace(string(value)) == "" {
		return fallback
	}
	return value
}
