package repositories

import "strings"

// collapse flattens a multi-line SQL statement so it logs on a single line.
func collapse(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
