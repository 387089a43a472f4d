package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// htmlText flattens an RSS description fragment to plain text.
func htmlText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return normalizeSpace(doc.Text())
}

// htmlSource pulls the publisher name Google News puts in a <font> tag.
func htmlSource(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	return normalizeSpace(doc.Find("font").Last().Text())
}

func normalizeSpace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}

func cleanTitle(title string) string {
	if idx := strings.LastIndex(title, " - "); idx > 0 {
		return strings.TrimSpace(title[:idx])
	}
	return strings.TrimSpace(title)
}

func extractSource(title string) string {
	if idx := strings.LastIndex(title, " - "); idx >= 0 && idx < len(title)-3 {
		return strings.TrimSpace(title[idx+3:])
	}
	return ""
}
