package search

import (
	"iter"
	"strings"
)

// Lines yields the lines of text paired with their 1-based line numbers.
//
// Lines are separated by "\n"; a "\r" directly before the separator (or at
// the very end of the text) belongs to the terminator and is dropped. A
// trailing line without a terminator is included, a final terminator does
// not start an extra empty line, and empty text has no lines at all.
func Lines(text string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		n := 0
		for len(text) > 0 {
			n++
			line := text
			if i := strings.IndexByte(text, '\n'); i >= 0 {
				line, text = text[:i], text[i+1:]
			} else {
				text = ""
			}
			line = strings.TrimSuffix(line, "\r")
			if !yield(n, line) {
				return
			}
		}
	}
}

// CountLines reports how many lines Lines would yield for text.
func CountLines(text string) int {
	count := 0
	for range Lines(text) {
		count++
	}
	return count
}
