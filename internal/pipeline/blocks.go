package pipeline

import (
	"regexp"
	"strings"
)

// BlockTags lists the elements treated as block level when deciding where
// paragraphs start and end.
var BlockTags = []string{
	"table", "thead", "tfoot", "caption", "col", "colgroup", "tbody", "tr", "td", "th",
	"div", "dl", "dd", "dt", "ul", "ol", "li", "pre", "form", "map", "area",
	"blockquote", "address", "math", "style", "p",
	"h1", "h2", "h3", "h4", "h5", "h6", "hr",
	"fieldset", "legend", "section", "article", "aside", "hgroup", "header", "footer",
	"nav", "figure", "figcaption", "details", "menu", "summary",
}

// brClosers are the closing tags a trailing <br /> is dropped in front of.
var brClosers = []string{"p", "li", "div", "dl", "dd", "dt", "th", "pre", "td", "ul", "ol"}

var allBlocks = "(?:" + strings.Join(BlockTags, "|") + ")"

const (
	inlineNewline     = " <!-- wpnl --> "
	inlineNewlineBare = "<!-- wpnl -->"
	preserveNewline   = "<WPPreserveNewline />"
	preHolePrefix     = "<pre wp-pre-tag-"
)

var (
	multipleBr = regexp.MustCompile(`<br\s*/?>\s*<br\s*/?>`)

	blockOpen  = regexp.MustCompile(`(<` + allBlocks + `[\s/>])`)
	blockClose = regexp.MustCompile(`(</` + allBlocks + `>)`)

	crlf = regexp.MustCompile(`\r\n|\r`)

	optionOpen  = regexp.MustCompile(`\s*<option`)
	optionClose = regexp.MustCompile(`</option>\s*`)

	objectOpen  = regexp.MustCompile(`(<object[^>]*>)\s*`)
	objectClose = regexp.MustCompile(`\s*</object>`)
	objectParam = regexp.MustCompile(`\s*(</?(?:param|embed)[^>]*>)\s*`)

	mediaOpen   = regexp.MustCompile(`([<\[](?:audio|video)[^>\]]*[>\]])\s*`)
	mediaClose  = regexp.MustCompile(`\s*([<\[]/(?:audio|video)[>\]])`)
	mediaSource = regexp.MustCompile(`\s*(<(?:source|track)[^>]*>)\s*`)

	extraNewlines = regexp.MustCompile(`\n\n+`)
	blankLine     = regexp.MustCompile(`\n\s*\n`)

	emptyParagraph   = regexp.MustCompile(`<p>\s*</p>`)
	unclosedInBlock  = regexp.MustCompile(`<p>([^<]+)</(div|address|form)>`)
	wrappedBlock     = regexp.MustCompile(`<p>\s*(</?` + allBlocks + `[^>]*>)\s*</p>`)
	wrappedListItem  = regexp.MustCompile(`<p>(<li.+?)</p>`)
	blockquoteInside = regexp.MustCompile(`(?i)<p><blockquote([^>]*)>`)
	openBeforeBlock  = regexp.MustCompile(`<p>\s*(</?` + allBlocks + `[^>]*>)`)
	closeAfterBlock  = regexp.MustCompile(`(</?` + allBlocks + `[^>]*>)\s*</p>`)

	scriptOrStyle = regexp.MustCompile(`(?s)<script.*?</script>|<style.*?</style>`)
	brSpelling    = regexp.MustCompile(`<br>|<br/>`)

	brAfterBlock  = regexp.MustCompile(`(</?` + allBlocks + `[^>]*>)\s*<br />`)
	brBeforeClose = regexp.MustCompile(`<br />(\s*</?(?:` + strings.Join(brClosers, "|") + `)[^>]*>)`)
	trailingBreak = regexp.MustCompile(`\n</p>(\n?)\z`)
)
