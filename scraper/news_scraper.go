package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/rs/zerolog"
	"github.com/vedantwpatil/trendbot/models"
)

const (
	DefaultBaseURL  = "https://news.google.com"
	DefaultMaxItems = 5
	DefaultWindow   = 14 * 24 * time.Hour
)

// HeadlineResult is either a (possibly empty) list of recent headlines or
// an explicit reason the feed could not be read.
type HeadlineResult struct {
	Headlines []models.Headline
	Available bool
	Reason    string
}

func (r HeadlineResult) Titles() []string {
	out := make([]string, len(r.Headlines))
	for i, h := range r.Headlines {
		out[i] = h.Title
	}
	return out
}

type HeadlineSource interface {
	FetchHeadlines(ctx context.Context, symbol string) HeadlineResult
}

// NewsScraper reads the Google News RSS search feed for a ticker.
type NewsScraper struct {
	BaseURL  string
	MaxItems int
	Window   time.Duration
	Timeout  time.Duration

	log zerolog.Logger
	now func() time.Time
}

func NewNewsScraper(baseURL string, log zerolog.Logger) *NewsScraper {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &NewsScraper{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		MaxItems: DefaultMaxItems,
		Window:   DefaultWindow,
		Timeout:  15 * time.Second,
		log:      log,
		now:      time.Now,
	}
}

func (s *NewsScraper) feedURL(symbol string) string {
	return fmt.Sprintf("%s/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en",
		s.BaseURL, url.QueryEscape(symbol+" stock"))
}

func (s *NewsScraper) FetchHeadlines(ctx context.Context, symbol string) HeadlineResult {
	rssURL := s.feedURL(symbol)
	cutoff := s.now().Add(-s.Window)

	c := colly.NewCollector(
		colly.StdlibContext(ctx),
		colly.UserAgent("trendbot/1.0"),
	)
	c.SetRequestTimeout(s.Timeout)

	headlines := make([]models.Headline, 0, s.MaxItems)
	c.OnXML("//channel/item", func(e *colly.XMLElement) {
		if len(headlines) >= s.MaxItems {
			return
		}
		raw := e.ChildText("title")
		if raw == "" {
			return
		}

		h := models.Headline{
			Title:  cleanTitle(raw),
			URL:    e.ChildText("link"),
			Source: extractSource(raw),
		}
		if desc := e.ChildText("description"); desc != "" {
			h.Summary = htmlText(desc)
			if h.Source == "" {
				h.Source = htmlSource(desc)
			}
		}
		if pub, ok := parsePubDate(e.ChildText("pubDate")); ok {
			if pub.Before(cutoff) {
				return
			}
			h.Published = pub
		}
		headlines = append(headlines, h)
	})

	s.log.Debug().Str("symbol", symbol).Str("url", rssURL).Msg("fetching rss feed")
	if err := c.Visit(rssURL); err != nil {
		s.log.Warn().Err(err).Str("symbol", symbol).Msg("rss fetch failed")
		return HeadlineResult{Reason: fmt.Sprintf("fetch rss: %v", err)}
	}

	s.log.Debug().Str("symbol", symbol).Int("headlines", len(headlines)).Msg("rss feed parsed")
	return HeadlineResult{Headlines: headlines, Available: true}
}

func parsePubDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC1123Z, time.RFC1123, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
