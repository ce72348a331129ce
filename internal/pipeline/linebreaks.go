package pipeline

import "strings"

const brTag = "<br />"

// insertBreaks turns every newline not already preceded by "<br />" into
// "<br />\n". Whitespace running up to the newline is absorbed, and a run of
// whitespace holding several newlines collapses into a single break.
//
// A run directly after "<br />" is still matched from its second character
// onwards, so "<br /> \n" becomes "<br /> <br />\n".
func insertBreaks(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/8)
	done := 0
	for i := 0; i < len(s); {
		if !isSpace(s[i]) {
			i++
			continue
		}
		runEnd := i
		for runEnd < len(s) && isSpace(s[runEnd]) {
			runEnd++
		}
		nl := strings.LastIndexByte(s[i:runEnd], '\n')
		if nl < 0 {
			i = runEnd
			continue
		}
		start := i
		if strings.HasSuffix(s[:start], brTag) {
			if nl == 0 {
				// the only newline sits right after the break
				i = runEnd
				continue
			}
			start++
		}
		b.WriteString(s[done:start])
		b.WriteString(brTag + "\n")
		done = i + nl + 1
		i = done
	}
	b.WriteString(s[done:])
	return b.String()
}

// isSpace reports whether c is ASCII whitespace, vertical tab included.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
