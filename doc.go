/*
Package autop turns loosely formatted text into HTML paragraph markup, the
way content management systems promote the line breaks of an editor into
<p> and <br /> elements.

Blank lines become paragraph boundaries. Single newlines optionally become
<br /> elements. Existing block-level markup (tables, lists, headings,
<div> and friends) is left standing on its own instead of being wrapped,
and <pre> sections come out exactly as they went in.

Basic Usage:

    import "github.com/mrjoshuak/autop"

    html := autop.Autop("Dear reader,\n\nthis is the second paragraph\nwith a soft break.", true)
    // <p>Dear reader,</p>
    // <p>this is the second paragraph<br />
    // with a soft break.</p>

Advanced Usage with Options:

    f := autop.New(
        autop.WithLineBreaks(false),
        autop.WithMaxInputSize(256*1024),
        autop.WithLogger(slog.Default()),
    )

    html := f.Format(text)

    // Read from a file or HTTP body; UTF-16 input with a byte order mark
    // is converted to UTF-8 first.
    html, err := f.FormatReader(r)

Features:

- Whole-string rewrite with no shared state; safe for
  concurrent use
- Newlines inside tags, comments, <script> and <style> are never turned
  into markup
- Whitespace inside <option>, <object> and <audio>/<video> sources is
  collapsed so embeds are not split into paragraphs
- Linear-time tag scanning, including unterminated comments and CDATA

The output is not sanitized. Callers are responsible for escaping or
filtering untrusted input.
*/
package autop
