// Package htmltag holds the small, fixed tag-name classifications the
// tokenizer and tree builder both need: which elements are void, which
// switch the tokenizer into raw-text/RCDATA scanning, which participate in
// formatting-element misnesting recovery, which break out of foreign
// content, which auto-close an open <p>, and which belong in <head>.
package htmltag

var voidElements = set(
	"area", "base", "br", "col", "embed", "hr", "img", "input",
	"link", "meta", "param", "source", "track", "wbr",
)

// rawText are elements whose content the tokenizer scans verbatim up to a
// matching end tag, emitting a single text token (script uses its own,
// more elaborate escape-state machinery; the rest use the simple rule).
var rawText = set(
	"script", "style", "xmp", "iframe", "noembed", "noframes", "plaintext",
)

// rcData are elements whose content is scanned the same way as raw text
// but with character-reference decoding still active.
var rcData = set("textarea", "title")

var formatting = set(
	"a", "b", "big", "code", "em", "font", "i", "nobr",
	"s", "small", "strike", "strong", "tt", "u",
)

var breakout = set(
	"b", "big", "blockquote", "body", "br", "center", "code", "dd", "div",
	"dl", "dt", "em", "embed", "h1", "h2", "h3", "h4", "h5", "h6", "head",
	"hr", "i", "img", "li", "listing", "menu", "meta", "nobr", "ol", "p",
	"pre", "ruby", "s", "small", "span", "strong", "strike", "sub", "sup",
	"table", "tt", "u", "ul", "var",
)

var pClosers = set(
	"address", "article", "aside", "blockquote", "center", "details",
	"dialog", "dir", "div", "dl", "fieldset", "figcaption", "figure",
	"footer", "form", "hgroup", "h1", "h2", "h3", "h4", "h5", "h6",
	"header", "hr", "listing", "main", "menu", "nav", "ol", "p", "pre",
	"section", "search", "summary", "ul",
)

var headTags = set(
	"base", "link", "meta", "noscript", "script", "style", "template", "title",
)

// svgIntegrationPoints and mathIntegrationPoints are the foreign-content
// elements, per namespace, inside which HTML parsing rules resume. Names
// are lower-case, matching the node model's general element-name
// invariant.
var svgIntegrationPoints = set("foreignobject", "desc", "title")
var mathIntegrationPoints = set("mi", "mo", "mn", "ms", "mtext")

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

func IsVoid(name string) bool                 { return voidElements[name] }
func IsRawText(name string) bool              { return rawText[name] }
func IsRCData(name string) bool               { return rcData[name] }
func IsRawTextOrRCData(name string) bool      { return rawText[name] || rcData[name] }
func IsFormatting(name string) bool           { return formatting[name] }
func IsBreakout(name string) bool             { return breakout[name] }
func IsPCloser(name string) bool              { return pClosers[name] }
func IsHeadTag(name string) bool              { return headTags[name] }
func IsSVGIntegrationPoint(name string) bool  { return svgIntegrationPoints[name] }
func IsMathIntegrationPoint(name string) bool { return mathIntegrationPoints[name] }
