package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// looksLikeHTML is a cheap guess used to decide whether a second, markup-aware
// extraction pass is worth running.
func looksLikeHTML(content string) bool {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return false
	}
	lower := strings.ToLower(trimmed)
	return strings.HasPrefix(lower, "<!doctype") ||
		strings.HasPrefix(lower, "<html") ||
		strings.Contains(lower, "<body") ||
		strings.Contains(lower, "<table")
}

// htmlTextSegments parses content as HTML and returns the text of each leaf
// element separately. Keeping segments apart matters: joining adjacent table
// cells would fabricate digit runs ("1.2.3.4" next to "5" must not become
// "1.2.3.45").
func htmlTextSegments(content string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil
	}

	var segments []string
	doc.Find("body *").Each(func(_ int, sel *goquery.Selection) {
		if sel.Children().Length() > 0 {
			return
		}
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			segments = append(segments, text)
		}
	})

	return segments
}
