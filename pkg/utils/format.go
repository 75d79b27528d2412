// Package utils holds small shared helpers.
package utils

import "strings"

// JoinLines joins message lines with a single newline. Empty strings come
// through as blank spacer lines between paragraphs.
func JoinLines(lines ...string) string {
	return strings.Join(lines, "\n")
}
