// Package htmlsplit separates a string into alternating runs of text and
// tag-like tokens. Comments and CDATA sections are treated as single opaque
// tokens even when they contain '>' characters.
//
// The scanner never backtracks, so splitting is linear in the input length
// regardless of how many unterminated comment or CDATA openers it contains.
package htmlsplit

import "strings"

const (
	commentOpen  = "<!--"
	commentClose = "-->"
	cdataOpen    = "<![CDATA["
	cdataClose   = "]]>"
)

// Split returns the tokens of s. Even indexes hold the text between tags
// (possibly empty), odd indexes hold tags, comments and CDATA sections.
// The result always has an odd length and Join(Split(s)) == s.
func Split(s string) []string {
	tokens := make([]string, 0, 2*strings.Count(s, "<")+1)
	text := 0
	for i := 0; i < len(s); {
		if s[i] != '<' {
			next := strings.IndexByte(s[i:], '<')
			if next < 0 {
				break
			}
			i += next
			continue
		}
		end := tagEnd(s, i)
		tokens = append(tokens, s[text:i], s[i:end])
		i = end
		text = end
	}
	return append(tokens, s[text:])
}

// tagEnd returns the offset just past the tag-like token that starts at
// s[start], which must be '<'. Unterminated tokens run to the end of s.
func tagEnd(s string, start int) int {
	rest := s[start:]
	switch {
	case strings.HasPrefix(rest, commentOpen):
		// "<!-->" is a complete comment, so the search starts right after "<!".
		return closeAfter(s, start+2, commentClose)
	case strings.HasPrefix(rest, cdataOpen):
		return closeAfter(s, start+len(cdataOpen), cdataClose)
	}
	if i := strings.IndexByte(rest, '>'); i >= 0 {
		return start + i + 1
	}
	return len(s)
}

func closeAfter(s string, from int, closer string) int {
	if i := strings.Index(s[from:], closer); i >= 0 {
		return from + i + len(closer)
	}
	return len(s)
}

// Join concatenates tokens back into a single string.
func Join(tokens []string) string {
	return strings.Join(tokens, "")
}

// Replacement is a literal find/replace pair applied inside tags.
type Replacement struct {
	Find    string
	Replace string
}

// ReplaceInTags applies each replacement, in order, to the tag tokens of s
// only. Text between tags is never modified. When nothing matches, s is
// returned as is.
func ReplaceInTags(s string, pairs ...Replacement) string {
	tokens := Split(s)
	changed := false
	for _, p := range pairs {
		if p.Find == "" {
			continue
		}
		for i := 1; i < len(tokens); i += 2 {
			if strings.Contains(tokens[i], p.Find) {
				tokens[i] = strings.ReplaceAll(tokens[i], p.Find, p.Replace)
				changed = true
			}
		}
	}
	if !changed {
		return s
	}
	return Join(tokens)
}
