package news

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
)

const SandeshFeedURL = "https://sandesh.com/rss/agriculture.xml"

type SandeshClient struct {
	feedURL    string
	httpClient *http.Client
	parser     *gofeed.Parser
}

// NewSandeshClient builds a client for feedURL. The HTTP client has no
// timeout of its own; callers bound the fetch through the context.
func NewSandeshClient(feedURL string) *SandeshClient {
	return &SandeshClient{
		feedURL:    feedURL,
		httpClient: &http.Client{},
		parser:     gofeed.NewParser(),
	}
}

func (c *SandeshClient) Name() string {
	return "Sandesh"
}

func (c *SandeshClient) Fetch(ctx context.Context) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("sandesh request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sandesh fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("sandesh fetch: unexpected status %d", resp.StatusCode)
	}

	feed, err := c.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("sandesh parse: %w", err)
	}

	entries := make([]Entry, 0, len(feed.Items))
	for _, it := range feed.Items {
		e := Entry{
			Title:       it.Title,
			Link:        it.Link,
			Description: it.Description,
			MediaURL:    mediaContentURL(it.Extensions),
		}

		if it.PublishedParsed != nil {
			pub := it.PublishedParsed.UTC()
			e.PublishedAt = &pub
		}

		entries = append(entries, e)
	}

	return entries, nil
}

// mediaContentURL returns the url of the first media:content element that
// has one, looking inside media:group when no top-level element does.
func mediaContentURL(exts ext.Extensions) string {
	media := exts["media"]
	if url := firstURL(media["content"]); url != "" {
		return url
	}
	for _, g := range media["group"] {
		if url := firstURL(g.Children["content"]); url != "" {
			return url
		}
	}
	return ""
}

func firstURL(elems []ext.Extension) string {
	for _, m := range elems {
		if url := m.Attrs["url"]; url != "" {
			return url
		}
	}
	return ""
}
