// Package search implements line-oriented substring search over in-memory text.
//
// Results are views into the searched text: every Match.Line is a substring
// of the input and shares its backing memory. Callers that keep a MatchSet
// keep the whole document alive with it.
package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Match is a single line that satisfied the query.
type Match struct {
	Number int    // 1-based line number in the source text
	Line   string // original line text, without its terminator
}

// MatchSet is the ordered list of matching lines.
// Order follows the source text; identical lines are reported once per occurrence.
type MatchSet []Match

// Lines returns the matched line texts in order.
func (m MatchSet) Lines() []string {
	lines := make([]string, 0, len(m))
	for _, match := range m {
		lines = append(lines, match.Line)
	}
	return lines
}

// Search returns every line of text that contains query.
// When ignoreCase is set, letter case is ignored for the comparison only;
// returned lines are always the original text. The result is never nil.
func Search(query, text string, ignoreCase bool) []string {
	return Find(query, text, ignoreCase).Lines()
}

// Find is Search with line numbers.
func Find(query, text string, ignoreCase bool) MatchSet {
	matches := MatchSet{}

	contains := strings.Contains
	needle := query
	if ignoreCase {
		folder := newFolder()
		needle = folder.fold(query)
		contains = func(line, substr string) bool {
			return strings.Contains(folder.fold(line), substr)
		}
	}

	for n, line := range Lines(text) {
		if contains(line, needle) {
			matches = append(matches, Match{Number: n, Line: line})
		}
	}

	return matches
}

// folder produces lowercase comparison keys.
// A cases.Caser keeps state between calls, so each search owns its own.
type folder struct {
	caser cases.Caser
}

func newFolder() *folder {
	return &folder{caser: cases.Lower(language.Und)}
}

func (f *folder) fold(s string) string {
	return f.caser.String(s)
}
