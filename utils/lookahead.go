package utils

import "strings"

// ValuePlaceholder is what the bureau layout prints where a figure is
// absent. A placeholder line must never be read as a value.
const ValuePlaceholder = "-"

// ScanAhead implements the "value on a nearby line after its label"
// association the CIBIL layout relies on. It walks the lines after start,
// up to but not including index start+window, and returns the first
// trimmed line that is non-empty, not the placeholder, and accepted by
// the predicate. A nil predicate accepts everything. Lines the predicate
// rejects are passed over, not terminal.
func ScanAhead(lines []string, start, window int, accept func(string) bool) (string, int, bool) {
	end := min(start+window, len(lines))
	for j := start + 1; j < end; j++ {
		line := strings.TrimSpace(lines[j])
		if line == "" || line == ValuePlaceholder {
			continue
		}
		if accept == nil || accept(line) {
			return line, j, true
		}
	}
	return "", -1, false
}
