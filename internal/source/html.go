package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newsdigest/internal/domain"
)

// NewsPageConfig drives one HTML-scraping adapter. These bypass the feed
// abstraction for sites without usable feeds but produce the same post
// shape.
type NewsPageConfig struct {
	Name     string
	SiteURL  string
	PagePath string
	// TitleSel selects anchors holding title text and relative URLs,
	// DateSel the matching date elements, parsed with DateLayout in
	// DateZone.
	TitleSel   string
	DateSel    string
	DateLayout string
	DateZone   *time.Location
	Steps      []PostStep
	Filtration []domain.FiltrationType
}

type NewsPageParser struct {
	cfg  NewsPageConfig
	opts Options
}

func NewNewsPageParser(cfg NewsPageConfig, opts Options) *NewsPageParser {
	return &NewsPageParser{cfg: cfg, opts: opts}
}

func (p *NewsPageParser) SourceName() string { return p.cfg.Name }

func (p *NewsPageParser) Filtration() []domain.FiltrationType { return p.cfg.Filtration }

func (p *NewsPageParser) FetchAndParse(ctx context.Context) ([]domain.Post, error) {
	logger := p.opts.logger().With("source", p.cfg.Name)
	pageURL := p.cfg.SiteURL + p.cfg.PagePath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &SourceError{Source: p.cfg.Name, Err: err}
	}
	req.Header.Set("User-Agent", p.opts.UserAgent)

	resp, err := p.opts.client().Do(req)
	if err != nil {
		return nil, &SourceError{Source: p.cfg.Name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &SourceError{Source: p.cfg.Name, Err: fmt.Errorf("unexpected status: %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &ParseError{Source: p.cfg.Name, Err: err}
	}

	titles := doc.Find(p.cfg.TitleSel)
	dates := doc.Find(p.cfg.DateSel)
	if titles.Length() != dates.Length() {
		return nil, &ParseError{
			Source: p.cfg.Name,
			Err:    fmt.Errorf("title count %d does not match date count %d", titles.Length(), dates.Length()),
		}
	}

	var posts []domain.Post
	titles.Each(func(i int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.Text())
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			logger.Error("dropping scraped item without URL", "title", title)
			return
		}
		if title == "" {
			logger.Error("dropping scraped item without title", "url", href)
			return
		}

		post := domain.Post{
			Title:      title,
			URL:        p.cfg.SiteURL + href,
			SourceName: p.cfg.Name,
		}

		dateText := strings.TrimSpace(dates.Eq(i).Text())
		if dateText != "" {
			ts, err := time.ParseInLocation(p.cfg.DateLayout, dateText, p.cfg.DateZone)
			if err != nil {
				logger.Error("failed to parse scraped date", "date", dateText, "error", err)
			} else {
				utc := ts.UTC()
				post.Timestamp = &utc
			}
		}

		posts = append(posts, post)
	})

	return applySteps(posts, p.cfg.Steps, logger), nil
}
