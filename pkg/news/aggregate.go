package news

import (
	"context"
	"sort"
	"time"
)

const TimestampLayout = "2006-01-02T15:04:05-07:00"

// Item is one classified news entry ready for output.
type Item struct {
	Title       string
	Description string
	URL         string
	SourceName  string
	PublishedAt string
	ImageURL    *string
	Category    Category
}

const (
	placeholderTitle       = "કૃષિ સમાચાર ઉપલબ્ધ નથી"
	placeholderDescription = "અત્યારે કોઈ કૃષિ સમાચાર ઉપલબ્ધ નથી. કૃપા કરીને થોડા સમય પછી ફરી પ્રયાસ કરો."
	placeholderURL         = "#"
	placeholderSource      = "System"
)

type Aggregator struct {
	client FeedClient
	now    func() time.Time
}

func NewAggregator(client FeedClient) *Aggregator {
	return &Aggregator{client: client, now: time.Now}
}

// Aggregate fetches the feed and returns the entries in category, newest
// first. category "all" keeps every entry. When nothing is left a single
// placeholder item is returned. A fetch error discards everything.
func (a *Aggregator) Aggregate(ctx context.Context, category string) ([]Item, error) {
	entries, err := a.client.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		item := a.buildItem(e)
		if category != string(CategoryAll) && string(item.Category) != category {
			continue
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt > items[j].PublishedAt
	})

	if len(items) == 0 {
		items = []Item{a.placeholder()}
	}

	return items, nil
}

func (a *Aggregator) buildItem(e Entry) Item {
	image := e.MediaURL
	if image == "" {
		image = FirstImageSrc(e.Description)
	}

	description := cleanDescription(e.Description)

	published := a.now()
	if e.PublishedAt != nil {
		published = *e.PublishedAt
	}

	item := Item{
		Title:       e.Title,
		Description: description,
		URL:         e.Link,
		SourceName:  a.client.Name(),
		PublishedAt: formatTimestamp(published),
		Category:    Classify(e.Title, description),
	}
	if image != "" {
		item.ImageURL = &image
	}

	return item
}

func (a *Aggregator) placeholder() Item {
	return Item{
		Title:       placeholderTitle,
		Description: placeholderDescription,
		URL:         placeholderURL,
		SourceName:  placeholderSource,
		PublishedAt: formatTimestamp(a.now()),
		Category:    CategoryAll,
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
