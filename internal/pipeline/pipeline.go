// Package pipeline implements the paragraph insertion pipeline. Text goes
// through a fixed sequence of rewrites:
//  1. Cut <pre> regions out into placeholders
//  2. Turn runs of <br> into blank lines
//  3. Pad block-level tags with newlines
//  4. Hide newlines inside tags from the paragraph splitter
//  5. Collapse whitespace in <option>, <object> and <audio>/<video>
//  6. Split on blank lines and wrap each piece in <p>
//  7. Repair paragraphs that ended up around or across block tags
//  8. Optionally convert the remaining newlines into <br />
//  9. Restore placeholders and hidden newlines
//
// The order of the passes matters; several only make sense on the output
// of an earlier one.
package pipeline

import (
	"strings"

	"github.com/mrjoshuak/autop/internal/htmlsplit"
)

// trimSet is the whitespace stripped around the input and each paragraph.
const trimSet = " \t\n\v\f\r\x00"

// Run converts double line breaks in text into paragraphs. When br is true
// the remaining single line breaks become <br /> elements as well.
//
// The result keeps the trailing newline the pipeline pads the text with;
// callers that don't want it trim the output themselves.
func Run(text string, br bool) string {
	if strings.Trim(text, trimSet) == "" {
		return ""
	}

	s := text + "\n"

	s, pre := cutPre(s)

	s = multipleBr.ReplaceAllString(s, "\n\n")
	s = blockOpen.ReplaceAllString(s, "\n${1}")
	s = blockClose.ReplaceAllString(s, "${1}\n\n")
	s = crlf.ReplaceAllString(s, "\n")

	s = htmlsplit.ReplaceInTags(s, htmlsplit.Replacement{Find: "\n", Replace: inlineNewline})

	s = collapseEmbeds(s)
	s = extraNewlines.ReplaceAllString(s, "\n\n")

	s = wrapParagraphs(s)
	s = repairBlocks(s)

	if br {
		s = breakLines(s)
	}

	s = brAfterBlock.ReplaceAllString(s, "${1}")
	s = brBeforeClose.ReplaceAllString(s, "${1}")
	s = trailingBreak.ReplaceAllString(s, "</p>${1}")

	s = pre.fill(s)

	if strings.Contains(s, inlineNewlineBare) {
		s = strings.ReplaceAll(s, inlineNewline, "\n")
		s = strings.ReplaceAll(s, inlineNewlineBare, "\n")
	}
	return s
}

// collapseEmbeds strips the whitespace between the parts of <option>,
// <object> and media elements so it doesn't turn into paragraphs.
func collapseEmbeds(s string) string {
	if strings.Contains(s, "<option") {
		s = optionOpen.ReplaceAllString(s, "<option")
		s = optionClose.ReplaceAllString(s, "</option>")
	}

	if strings.Contains(s, "</object>") {
		s = objectOpen.ReplaceAllString(s, "${1}")
		s = objectClose.ReplaceAllString(s, "</object>")
		s = objectParam.ReplaceAllString(s, "${1}")
	}

	if strings.Contains(s, "<source") || strings.Contains(s, "<track") {
		s = mediaOpen.ReplaceAllString(s, "${1}")
		s = mediaClose.ReplaceAllString(s, "${1}")
		s = mediaSource.ReplaceAllString(s, "${1}")
	}
	return s
}

// wrapParagraphs splits s on blank lines and wraps every non-empty piece
// in <p>. Pieces holding only whitespace still produce an empty paragraph,
// which is removed again.
func wrapParagraphs(s string) string {
	pieces := blankLine.Split(s, -1)

	var b strings.Builder
	b.Grow(len(s) + 8*len(pieces))
	for _, piece := range pieces {
		if piece == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.Trim(piece, trimSet))
		b.WriteString("</p>\n")
	}
	return emptyParagraph.ReplaceAllString(b.String(), "")
}

// repairBlocks fixes paragraphs that wrap, open before or close after a
// block-level tag.
func repairBlocks(s string) string {
	s = unclosedInBlock.ReplaceAllString(s, "<p>${1}</p></${2}>")
	s = wrappedBlock.ReplaceAllString(s, "${1}")
	s = wrappedListItem.ReplaceAllString(s, "${1}")

	s = blockquoteInside.ReplaceAllString(s, "<blockquote${1}><p>")
	s = strings.ReplaceAll(s, "</blockquote></p>", "</p></blockquote>")

	s = openBeforeBlock.ReplaceAllString(s, "${1}")
	return closeAfterBlock.ReplaceAllString(s, "${1}")
}

// breakLines converts newlines outside <script> and <style> bodies into
// <br /> elements.
func breakLines(s string) string {
	s = scriptOrStyle.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ReplaceAll(m, "\n", preserveNewline)
	})
	s = brSpelling.ReplaceAllString(s, brTag)
	s = insertBreaks(s)
	return strings.ReplaceAll(s, preserveNewline, "\n")
}
