package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	htmlTag         = regexp.MustCompile(`(?i)<\s*/?\s*(html|body|div|p|br|ul|ol|li|span|h[1-6]|strong|em|b|i|section|article|table|tr|td)\b[^>]*>`)
	inlineSpaces    = regexp.MustCompile(`[ \t\f\v\x{00a0}]+`)
	excessiveBlanks = regexp.MustCompile(`\n\n\n+`)
)

// jdSelectors locate the description body on saved job board pages, most specific first.
var jdSelectors = []string{
	".job-description",
	"#job-description",
	".description__text",
	".jobs-description",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
}

// LooksLikeHTML reports whether text contains common markup tags.
func LooksLikeHTML(text string) bool {
	return htmlTag.MatchString(text)
}

// PlainText returns JD text ready for analysis. Markup is reduced to text with one
// line per block element and list items as "- " bullets; plain text is only cleaned.
func PlainText(input string) (string, error) {
	if !LooksLikeHTML(input) {
		return CleanText(input), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, footer, header, form, .apply-button, .cookie-banner").Remove()

	var root *goquery.Selection
	for _, sel := range jdSelectors {
		if s := doc.Find(sel); s.Length() > 0 {
			root = s.First()
			break
		}
	}
	if root == nil {
		root = doc.Find("body")
	}

	root.Find("br").ReplaceWithHtml("\n")
	root.Find("li").Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("- ")
	})
	root.Find("p, li, div, h1, h2, h3, h4, h5, h6, tr, section").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return CleanText(root.Text()), nil
}

// CleanText normalizes line endings, collapses runs of inline whitespace, trims every
// line, and keeps at most one blank line between paragraphs.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(inlineSpaces.ReplaceAllString(line, " "))
	}

	result := excessiveBlanks.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}
