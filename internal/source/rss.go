package source

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"newsdigest/internal/domain"
)

// TagNames configures which feed elements carry each field. Matching is
// by substring containment against the raw element name, which tolerates
// namespace prefixes without namespace-aware parsing.
type TagNames struct {
	Item        string
	Title       string
	PubDate     string
	Link        string
	Description string
}

// SimpleRSSTags fits classic RSS 2.0 feeds.
var SimpleRSSTags = TagNames{
	Item:        "item",
	Title:       "title",
	PubDate:     "pubDate",
	Link:        "link",
	Description: "description",
}

// AtomTags fits Atom feeds (YouTube, Reddit and similar).
var AtomTags = TagNames{
	Item:        "entry",
	Title:       "title",
	PubDate:     "published",
	Link:        "link",
	Description: "summary",
}

// FeedConfig is one RSS/Atom source definition.
type FeedConfig struct {
	Name       string
	URL        string
	Tags       TagNames
	RewriteURL func(string) string
	Steps      []PostStep
	Filtration []domain.FiltrationType
}

// FeedParser is the generic RSS/Atom adapter. Per-source quirks live in
// FeedConfig; the walking and date handling are shared.
type FeedParser struct {
	cfg  FeedConfig
	opts Options
}

func NewFeedParser(cfg FeedConfig, opts Options) *FeedParser {
	if cfg.Tags == (TagNames{}) {
		cfg.Tags = SimpleRSSTags
	}
	return &FeedParser{cfg: cfg, opts: opts}
}

func (p *FeedParser) SourceName() string { return p.cfg.Name }

func (p *FeedParser) Filtration() []domain.FiltrationType { return p.cfg.Filtration }

func (p *FeedParser) FetchAndParse(ctx context.Context) ([]domain.Post, error) {
	logger := p.opts.logger().With("source", p.cfg.Name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.URL, nil)
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

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SourceError{Source: p.cfg.Name, Err: err}
	}

	root, err := decodeXMLTree(body)
	if err != nil {
		return nil, &ParseError{Source: p.cfg.Name, Err: err}
	}

	var posts []domain.Post
	for _, item := range root.findAll(p.cfg.Tags.Item) {
		post, ok := p.parseItem(item, logger)
		if ok {
			posts = append(posts, post)
		}
	}

	return applySteps(posts, p.cfg.Steps, logger), nil
}

func (p *FeedParser) parseItem(item *xmlNode, logger *slog.Logger) (domain.Post, bool) {
	post := domain.Post{SourceName: p.cfg.Name}

	for _, child := range item.children {
		text := strings.TrimSpace(child.text)
		switch {
		case strings.Contains(child.tag, p.cfg.Tags.Title):
			post.Title = text
		case strings.Contains(child.tag, p.cfg.Tags.PubDate):
			ts, err := parseFeedDate(text)
			if err != nil {
				logger.Error("failed to parse item date", "date", text, "error", err)
				continue
			}
			post.Timestamp = &ts
		case strings.Contains(child.tag, p.cfg.Tags.Link):
			if text != "" {
				post.URL = text
			} else if href, ok := child.attrs["href"]; ok {
				post.URL = href
			} else {
				logger.Error("feed item link element carries no URL", "title", post.Title)
			}
		case strings.Contains(child.tag, p.cfg.Tags.Description):
			if text != "" {
				brief := child.text
				post.Brief = &brief
			}
		}
	}

	if post.URL == "" {
		logger.Error("dropping feed item without URL", "title", post.Title)
		return domain.Post{}, false
	}
	if post.Title == "" {
		logger.Error("dropping feed item without title", "url", post.URL)
		return domain.Post{}, false
	}

	if p.cfg.RewriteURL != nil {
		post.URL = p.cfg.RewriteURL(post.URL)
	}

	return post, true
}

// xmlNode is a minimal element tree: enough to walk items by tag
// substring without binding to a feed schema.
type xmlNode struct {
	tag      string
	text     string
	attrs    map[string]string
	children []*xmlNode
}

func decodeXMLTree(data []byte) (*xmlNode, error) {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	decoder.Strict = false

	root := &xmlNode{tag: ""}
	stack := []*xmlNode{root}

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			node := &xmlNode{tag: t.Name.Local, attrs: make(map[string]string)}
			if t.Name.Space != "" {
				node.tag = t.Name.Space + ":" + t.Name.Local
			}
			for _, attr := range t.Attr {
				node.attrs[attr.Name.Local] = attr.Value
			}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, node)
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			stack[len(stack)-1].text += string(t)
		}
	}

	if len(root.children) == 0 {
		return nil, fmt.Errorf("no XML elements found")
	}

	return root, nil
}

// findAll returns every descendant whose tag contains the given name.
func (n *xmlNode) findAll(tagPart string) []*xmlNode {
	var found []*xmlNode
	for _, child := range n.children {
		if strings.Contains(child.tag, tagPart) {
			found = append(found, child)
		}
		found = append(found, child.findAll(tagPart)...)
	}
	return found
}
