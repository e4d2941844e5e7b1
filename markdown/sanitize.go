package markdown

import "github.com/microcosm-cc/bluemonday"

// policy is the sanitization allow-list applied as the final pipeline stage.
// Everything capable of executing script is stripped here; upstream stages
// may pass raw HTML through untouched.
var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("div", "span", "input")
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowAttrs("class").OnElements(
		"h1", "h2", "h3", "h4", "h5", "h6",
		"p", "a", "ul", "ol", "li", "blockquote",
		"pre", "code", "img", "table", "div", "span",
	)
	p.AllowAttrs("data-copy", "data-language").OnElements("div")
	p.AllowAttrs("aria-hidden").OnElements("a")
	// GFM task list checkboxes
	p.AllowAttrs("type", "checked", "disabled").OnElements("input")
	p.AllowAttrs("align").OnElements("th", "td")
	return p
}
