package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// TitleKey folds a title for grouping: whitespace runs collapse to one space
// and case differences disappear.
func TitleKey(title string) string {
	return cases.Fold().String(strings.Join(strings.Fields(title), " "))
}

// Shows reports every folded title with the spelling first recorded, the
// number of distinct episodes seen and the number of entries.
func (s *Store) Shows(ctx context.Context) ([]Show, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT e.title_key,
               (SELECT f.title FROM entries f WHERE f.title_key = e.title_key ORDER BY f.id LIMIT 1),
               COUNT(DISTINCT e.episode),
               COUNT(1),
               MAX(e.recorded_at)
        FROM entries e
        WHERE e.title_key IS NOT NULL
        GROUP BY e.title_key
        ORDER BY e.title_key`)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	defer rows.Close()

	var shows []Show
	for rows.Next() {
		var (
			show    Show
			title   sql.NullString
			lastRaw sql.NullString
		)
		if err := rows.Scan(&show.Key, &title, &show.Episodes, &show.Entries, &lastRaw); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		show.Title = title.String
		if last, err := parseTimeString(lastRaw.String); err == nil {
			show.LastSeen = last
		}
		shows = append(shows, show)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shows: %w", err)
	}
	return shows, nil
}
