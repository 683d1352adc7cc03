package util

import (
	"regexp"
	"strings"
)

// SearchQuery represents the parsed components of a search string.
type SearchQuery struct {
	Category []string
	Priority []string
	Text     []string
}

var (
	categoryRegex = regexp.MustCompile(`category:(\S+)`)
	priorityRegex = regexp.MustCompile(`priority:(\w+)`)
)

// ParseSearchQuery breaks down a raw query string into its structured components.
func ParseSearchQuery(query string) SearchQuery {
	sq := SearchQuery{}

	extract := func(re *regexp.Regexp) []string {
		matches := re.FindAllStringSubmatch(query, -1)
		if matches == nil {
			return nil
		}
		var values []string
		for _, match := range matches {
			if len(match) > 1 {
				values = append(values, strings.ToLower(match[1]))
			}
		}
		query = re.ReplaceAllString(query, "")
		return values
	}

	sq.Category = extract(categoryRegex)
	sq.Priority = extract(priorityRegex)
	for _, w := range strings.Fields(query) {
		sq.Text = append(sq.Text, strings.ToLower(w))
	}

	return sq
}

// Empty reports whether the query filters nothing.
func (q SearchQuery) Empty() bool {
	return len(q.Category) == 0 && len(q.Priority) == 0 && len(q.Text) == 0
}

// Match reports whether a task with the given fields satisfies the query.
// Every text word must appear in the name or the category.
func (q SearchQuery) Match(name, category, priority string) bool {
	lname := strings.ToLower(name)
	lcat := strings.ToLower(category)
	if len(q.Category) > 0 && !containsFold(q.Category, lcat) {
		return false
	}
	if len(q.Priority) > 0 && !containsFold(q.Priority, strings.ToLower(priority)) {
		return false
	}
	for _, w := range q.Text {
		if !strings.Contains(lname, w) && !strings.Contains(lcat, w) {
			return false
		}
	}
	return true
}

func containsFold(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
