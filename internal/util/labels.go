package util

import "strings"

// NormalizeLabel trims a user supplied label and collapses inner whitespace.
func NormalizeLabel(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// AppendUnique adds label to list unless an equal label (ignoring case) is present.
// The returned bool reports whether the list changed.
func AppendUnique(list []string, label string) ([]string, bool) {
	label = NormalizeLabel(label)
	if label == "" {
		return list, false
	}
	for _, existing := range list {
		if strings.EqualFold(existing, label) {
			return list, false
		}
	}
	return append(list, label), true
}
