package pipeline

import (
	"strconv"
	"strings"
)

// hole is a saved fragment and the placeholder standing in for it.
type hole struct {
	marker   string
	fragment string
}

// holes is the ordered set of fragments cut out of a buffer for the
// duration of one run. Markers are unique within the set.
type holes []hole

// cutPre replaces each <pre>...</pre> span of s with a placeholder element
// and returns the rewritten string with the saved spans.
//
// Pairing is sequential: s is split on "</pre>" and each segment but the
// last contributes the text from its first "<pre" onwards. A segment with
// no opener is emitted unchanged and its closer is dropped.
func cutPre(s string) (string, holes) {
	if !strings.Contains(s, "<pre") {
		return s, nil
	}

	parts := strings.Split(s, "</pre>")
	last := parts[len(parts)-1]

	var (
		b     strings.Builder
		saved holes
	)
	b.Grow(len(s))
	for _, part := range parts[:len(parts)-1] {
		start := strings.Index(part, "<pre")
		if start < 0 {
			b.WriteString(part)
			continue
		}
		marker := preHolePrefix + strconv.Itoa(len(saved)) + "></pre>"
		saved = append(saved, hole{marker: marker, fragment: part[start:] + "</pre>"})
		b.WriteString(part[:start])
		b.WriteString(marker)
	}
	b.WriteString(last)
	return b.String(), saved
}

// fill substitutes every saved fragment back into s.
func (h holes) fill(s string) string {
	for _, x := range h {
		s = strings.Replace(s, x.marker, x.fragment, -1)
	}
	return s
}
