// Package activities implements the client-side slicing of the activity
// catalog: search and filters, chronological ordering, pagination and the
// small aggregations the dashboard renders.
package activities

import (
	"sort"
	"strings"

	"github.com/sportradar/sportradar-cli/internal/client/api"
)

// DefaultPageSize matches the grid the activities view renders per page.
const DefaultPageSize = 9

// Query is the set of filters a user can combine. Zero values mean
// "don't filter on this axis". Search matches name and description
// case-insensitively; the other fields match exactly.
type Query struct {
	Search   string
	Category string
	Location string
	Date     string
	Level    string
}

// Filter returns the activities matching q, in chronological order.
func Filter(list []api.Activity, q Query) []api.Activity {
	search := strings.ToLower(q.Search)

	out := make([]api.Activity, 0, len(list))
	for _, a := range list {
		if search != "" &&
			!strings.Contains(strings.ToLower(a.Name), search) &&
			!strings.Contains(strings.ToLower(a.Description), search) {
			continue
		}
		if q.Category != "" && a.Category != q.Category {
			continue
		}
		if q.Location != "" && a.Location != q.Location {
			continue
		}
		if q.Date != "" && a.Date != q.Date {
			continue
		}
		if q.Level != "" && a.Level != q.Level {
			continue
		}
		out = append(out, a)
	}

	SortChronological(out)
	return out
}

// SortChronological orders activities by date then start time. Dates are
// ISO-8601 strings, so lexicographic order is chronological order.
func SortChronological(list []api.Activity) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date < list[j].Date
		}
		return list[i].Time < list[j].Time
	})
}

// Paginate returns the 1-based page of size perPage. Out-of-range pages
// yield an empty slice.
func Paginate(list []api.Activity, page, perPage int) []api.Activity {
	if page < 1 || perPage < 1 {
		return nil
	}
	start := (page - 1) * perPage
	if start >= len(list) {
		return nil
	}
	end := start + perPage
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

// PageCount returns how many pages of size perPage the list spans.
func PageCount(n, perPage int) int {
	if n <= 0 || perPage < 1 {
		return 0
	}
	return (n + perPage - 1) / perPage
}

// MonthCount is the number of activities in one calendar month.
type MonthCount struct {
	Month string // YYYY-MM
	Count int
}

// MonthlyCounts aggregates activities per calendar month, oldest first.
func MonthlyCounts(list []api.Activity) []MonthCount {
	byMonth := make(map[string]int)
	for _, a := range list {
		if len(a.Date) < 7 {
			continue
		}
		byMonth[a.Date[:7]]++
	}

	out := make([]MonthCount, 0, len(byMonth))
	for month, count := range byMonth {
		out = append(out, MonthCount{Month: month, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// NameCount is the number of occurrences of one activity name.
type NameCount struct {
	Name  string
	Count int
}

// Podium returns the top three activity names within a level, by number of
// listings. Ties break alphabetically so the result is stable.
func Podium(list []api.Activity, level string) []NameCount {
	byName := make(map[string]int)
	for _, a := range list {
		if a.Level != level {
			continue
		}
		byName[a.Name]++
	}

	out := make([]NameCount, 0, len(byName))
	for name, count := range byName {
		out = append(out, NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})

	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

// Categories returns the distinct categories present in the list, sorted.
func Categories(list []api.Activity) []string {
	return distinct(list, func(a api.Activity) string { return a.Category })
}

// Locations returns the distinct locations present in the list, sorted.
func Locations(list []api.Activity) []string {
	return distinct(list, func(a api.Activity) string { return a.Location })
}

// Levels returns the distinct levels present in the list, sorted.
func Levels(list []api.Activity) []string {
	return distinct(list, func(a api.Activity) string { return a.Level })
}

func distinct(list []api.Activity, field func(api.Activity) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, a := range list {
		v := field(a)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
