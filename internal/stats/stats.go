// Package stats folds the completed session log into the per-range buckets
// shown on the statistics page and in the PDF report.
package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
)

// Range selects the bucket granularity.
type Range string

const (
	Day   Range = config.RangeDay
	Week  Range = config.RangeWeek
	Month Range = config.RangeMonth
)

// Ranges lists the ranges in selector order.
var Ranges = []Range{Day, Week, Month}

func ParseRange(s string) (Range, error) {
	r := Range(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case Day, Week, Month:
		return r, nil
	}
	return Week, fmt.Errorf("unknown range %q", s)
}

// Bucket is one bar of the chart.
type Bucket struct {
	Label      string
	Count      int
	Minutes    int
	Categories []string
}

// CategoryTotal is one slice of the category distribution.
type CategoryTotal struct {
	Name  string
	Count int
}

// Since is the earliest end time that can land in a bucket of rng.
func Since(rng Range, now time.Time) time.Time {
	y, m, d := now.Date()
	loc := now.Location()
	switch rng {
	case Day:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	case Month:
		return time.Date(y, m-11, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(y, m, d-6, 0, 0, 0, 0, loc)
	}
}

// Aggregate buckets the work sessions in records for rng ending at now.
// Day yields 24 hourly buckets of today, Week the last 7 days and Month the
// last 12 calendar months, oldest first. A category other than CategoryAll
// keeps only sessions in that category. Records are read in now's location.
func Aggregate(records []models.SessionRecord, rng Range, now time.Time, category string) []Bucket {
	buckets, index := layout(rng, now)
	seen := make([]map[string]bool, len(buckets))
	for _, rec := range records {
		if !keep(rec, category) {
			continue
		}
		i, ok := index(rec.EndedAt.In(now.Location()))
		if !ok {
			continue
		}
		b := &buckets[i]
		b.Count++
		b.Minutes += rec.Seconds / 60
		if rec.Category == "" {
			continue
		}
		if seen[i] == nil {
			seen[i] = make(map[string]bool)
		}
		if !seen[i][rec.Category] {
			seen[i][rec.Category] = true
			b.Categories = append(b.Categories, rec.Category)
		}
	}
	return buckets
}

func keep(rec models.SessionRecord, category string) bool {
	if rec.Kind != models.SessionWork {
		return false
	}
	return category == "" || category == config.CategoryAll || strings.EqualFold(rec.Category, category)
}

func layout(rng Range, now time.Time) ([]Bucket, func(time.Time) (int, bool)) {
	loc := now.Location()
	y, m, d := now.Date()
	switch rng {
	case Day:
		buckets := make([]Bucket, 24)
		for h := range buckets {
			buckets[h].Label = fmt.Sprintf("%d:00", h)
		}
		return buckets, func(t time.Time) (int, bool) {
			ty, tm, td := t.Date()
			if ty != y || tm != m || td != d {
				return 0, false
			}
			return t.Hour(), true
		}
	case Month:
		buckets := make([]Bucket, 12)
		first := time.Date(y, m-11, 1, 0, 0, 0, 0, loc)
		for i := range buckets {
			mt := first.AddDate(0, i, 0)
			buckets[i].Label = fmt.Sprintf("%d/%d", mt.Year(), int(mt.Month()))
		}
		return buckets, func(t time.Time) (int, bool) {
			i := (t.Year()-first.Year())*12 + int(t.Month()) - int(first.Month())
			return i, i >= 0 && i < 12
		}
	default:
		buckets := make([]Bucket, 7)
		first := time.Date(y, m, d-6, 0, 0, 0, 0, loc)
		for i := range buckets {
			dt := first.AddDate(0, 0, i)
			buckets[i].Label = fmt.Sprintf("%d/%d", int(dt.Month()), dt.Day())
		}
		return buckets, func(t time.Time) (int, bool) {
			for i := range buckets {
				start := first.AddDate(0, 0, i)
				if !t.Before(start) && t.Before(start.AddDate(0, 0, 1)) {
					return i, true
				}
			}
			return 0, false
		}
	}
}

// CategoryTotals counts the work sessions per category that Aggregate would
// bucket for the same arguments, largest first.
func CategoryTotals(records []models.SessionRecord, rng Range, now time.Time, category string) []CategoryTotal {
	_, index := layout(rng, now)
	counts := make(map[string]int)
	for _, rec := range records {
		if !keep(rec, category) || rec.Category == "" {
			continue
		}
		if _, ok := index(rec.EndedAt.In(now.Location())); ok {
			counts[rec.Category]++
		}
	}
	out := make([]CategoryTotal, 0, len(counts))
	for name, n := range counts {
		out = append(out, CategoryTotal{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Categories lists the distinct categories seen in records, sorted.
func Categories(records []models.SessionRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, rec := range records {
		if rec.Category == "" || seen[rec.Category] {
			continue
		}
		seen[rec.Category] = true
		out = append(out, rec.Category)
	}
	sort.Strings(out)
	return out
}

// Summary totals the sessions and minutes across buckets.
func Summary(buckets []Bucket) (count, minutes int) {
	for _, b := range buckets {
		count += b.Count
		minutes += b.Minutes
	}
	return count, minutes
}
