package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/">
<channel>
  <title>Sandesh Agriculture</title>
  <link>https://sandesh.com/agriculture</link>
  <description>Agriculture news</description>
  <item>
    <title>કપાસના ભાવમાં વધારો</title>
    <link>https://sandesh.com/agriculture/news/1</link>
    <description><![CDATA[<p>Rajkot <b>market</b> update</p>]]></description>
    <pubDate>Tue, 13 Oct 2026 10:00:00 +0530</pubDate>
    <media:content url="https://cdn.sandesh.com/1.jpg" medium="image"/>
  </item>
  <item>
    <title>Undated item</title>
    <link>https://sandesh.com/agriculture/news/2</link>
    <description><![CDATA[<img src="https://cdn.sandesh.com/2.jpg"> text]]></description>
  </item>
</channel>
</rss>`

func TestSandeshFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(testFeed))
	}))
	defer srv.Close()

	client := NewSandeshClient(srv.URL)
	entries, err := client.Fetch(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(entries))

	first := entries[0]
	assert.Equal(t, "કપાસના ભાવમાં વધારો", first.Title)
	assert.Equal(t, "https://sandesh.com/agriculture/news/1", first.Link)
	assert.Equal(t, "<p>Rajkot <b>market</b> update</p>", first.Description)
	assert.Equal(t, "https://cdn.sandesh.com/1.jpg", first.MediaURL)
	assert.Equal(t, time.Date(2026, 10, 13, 4, 30, 0, 0, time.UTC), *first.PublishedAt)
	assert.Equal(t, time.UTC, first.PublishedAt.Location())

	second := entries[1]
	assert.Equal(t, "", second.MediaURL)
	assert.Equal(t, true, second.PublishedAt == nil)
}

const groupedMediaFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/">
<channel>
  <title>Sandesh Agriculture</title>
  <item>
    <title>Grouped media</title>
    <link>https://sandesh.com/agriculture/news/3</link>
    <description><![CDATA[<img src="https://cdn.sandesh.com/inline.jpg"> text]]></description>
    <media:group>
      <media:content url="https://cdn.sandesh.com/g.jpg" medium="image"/>
    </media:group>
  </item>
</channel>
</rss>`

func TestSandeshFetch_MediaGroup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(groupedMediaFeed))
	}))
	defer srv.Close()

	entries, err := NewSandeshClient(srv.URL).Fetch(context.Background())
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, "https://cdn.sandesh.com/g.jpg", entries[0].MediaURL)
}

func TestSandeshFetch_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewSandeshClient(srv.URL).Fetch(context.Background())
	assert.Equal(t, "sandesh fetch: unexpected status 502", err.Error())
}

func TestSandeshFetch_Malformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a feed"))
	}))
	defer srv.Close()

	_, err := NewSandeshClient(srv.URL).Fetch(context.Background())
	assert.NotEqual(t, nil, err)
}

func TestSandeshFetch_EndToEndAggregate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testFeed))
	}))
	defer srv.Close()

	a := NewAggregator(NewSandeshClient(srv.URL))
	a.now = func() time.Time { return time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC) }

	items, err := a.Aggregate(context.Background(), "all")
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(items))

	assert.Equal(t, "Undated item", items[0].Title)
	assert.Equal(t, "https://cdn.sandesh.com/2.jpg", *items[0].ImageURL)
	assert.Equal(t, CategoryGeneral, items[0].Category)

	assert.Equal(t, CategoryMarket, items[1].Category)
	assert.Equal(t, "Rajkot market update", items[1].Description)
	assert.Equal(t, "2026-10-13T04:30:00+00:00", items[1].PublishedAt)
}
