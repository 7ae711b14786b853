package api

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// blockSelector lists elements that end a line of text.
	blockSelector = "p, div, li, h1, h2, h3, h4, h5, h6, blockquote, tr, section, article"
	// lineMark stands in for inserted breaks while source newlines are
	// still plain whitespace.
	lineMark = "\u2028"
)

// markupRe matches a complete tag of the elements rich-text descriptions
// are written with. A bare "<" in prose ("5<10", "a<b dan c") does not.
var markupRe = regexp.MustCompile(`(?i)</?(?:p|br|div|span|li|ul|ol|h[1-6]|b|i|u|strong|em|a|img|blockquote|table|tr|td|th|section|article|script|style)(?:\s[^<>]*)?/?>`)

// PlainText flattens a rich-text description into plain text. Block
// elements and <br> become line breaks and entities are decoded. Input
// without markup keeps its text and line breaks; only entities are decoded
// and the ends trimmed.
func PlainText(raw string) string {
	raw = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(raw)
	if !markupRe.MatchString(raw) {
		return strings.TrimSpace(html.UnescapeString(raw))
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return strings.TrimSpace(raw)
	}

	doc.Find("script, style").Remove()

	// Newlines inside text keep their meaning; whitespace-only nodes between
	// tags are layout and collapse to spaces below.
	doc.Find("*").Contents().Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) != "#text" {
			return
		}
		n := s.Nodes[0]
		if strings.TrimSpace(n.Data) != "" {
			n.Data = strings.ReplaceAll(n.Data, "\n", lineMark)
		}
	})

	doc.Find("br").ReplaceWithHtml(lineMark)
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(lineMark)
	})
	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("• ")
	})

	text := strings.ReplaceAll(doc.Text(), "\n", " ")
	return collapseLines(strings.ReplaceAll(text, lineMark, "\n"))
}

// collapseLines trims every line, squeezes inner whitespace and drops
// repeated blank lines.
func collapseLines(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
