package news

import (
	"context"
	"time"
)

// Entry is one item of a syndicated feed before classification.
type Entry struct {
	Title       string
	Link        string
	Description string
	MediaURL    string
	PublishedAt *time.Time
}

type FeedClient interface {
	Fetch(ctx context.Context) ([]Entry, error)
	Name() string
}
