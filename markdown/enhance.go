package markdown

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// supportedLanguages is the allow-list of code fence languages the syntax
// highlighter understands. Anything else is rewritten to "text" so the
// highlighter never sees an unknown tag.
var supportedLanguages = map[string]bool{
	"bash": true, "c": true, "cpp": true, "csharp": true, "css": true,
	"diff": true, "dockerfile": true, "go": true, "graphql": true,
	"html": true, "java": true, "javascript": true, "js": true,
	"json": true, "jsx": true, "kotlin": true, "markdown": true,
	"md": true, "php": true, "plaintext": true, "python": true, "py": true,
	"ruby": true, "rust": true, "scss": true, "sh": true, "shell": true,
	"sql": true, "swift": true, "text": true, "toml": true, "ts": true,
	"tsx": true, "typescript": true, "xml": true, "yaml": true, "yml": true,
}

// fallbackLanguage replaces unsupported code fence language tags.
const fallbackLanguage = "text"

// structuralClasses are the presentational class tokens attached to the
// rendered elements. The rendering layer styles against these.
var structuralClasses = map[string]string{
	"h1": "post-heading", "h2": "post-heading", "h3": "post-heading",
	"h4": "post-heading", "h5": "post-heading", "h6": "post-heading",
	"p":          "post-paragraph",
	"a":          "post-link",
	"ul":         "post-list",
	"ol":         "post-list",
	"blockquote": "post-quote",
	"pre":        "post-code",
	"img":        "post-image",
	"table":      "post-table",
}

// enhance post-processes rendered HTML: structural classes, code fence
// language normalization, copy-to-clipboard wrappers, and visible-on-hover
// heading anchors. It runs before sanitization.
func enhance(rendered string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rendered))
	if err != nil {
		return "", err
	}

	for tag, class := range structuralClasses {
		doc.Find(tag).Each(func(_ int, s *goquery.Selection) {
			s.AddClass(class)
		})
	}

	doc.Find("pre > code").Each(func(_ int, s *goquery.Selection) {
		lang := codeLanguage(s)
		switch {
		case lang == "":
			// Bare fences still get the copy wrapper.
			lang = fallbackLanguage
		case !supportedLanguages[lang]:
			lang = fallbackLanguage
			s.RemoveAttr("class")
			s.AddClass("language-" + lang)
		}
		s.Parent().WrapHtml(`<div class="code-block-wrapper" data-copy="true" data-language="` + lang + `"></div>`)
	})

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		id, ok := s.Attr("id")
		if !ok || id == "" {
			return
		}
		s.AppendHtml(`<a href="#` + id + `" class="heading-anchor" aria-hidden="true">#</a>`)
	})

	return doc.Find("body").Html()
}

// codeLanguage extracts the language token from a code element's
// "language-*" class, if any.
func codeLanguage(s *goquery.Selection) string {
	class, ok := s.Attr("class")
	if !ok {
		return ""
	}
	for _, token := range strings.Fields(class) {
		if lang, found := strings.CutPrefix(token, "language-"); found {
			return strings.ToLower(lang)
		}
	}
	return ""
}
