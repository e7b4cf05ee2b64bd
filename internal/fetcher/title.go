// Package fetcher retrieves page titles for bookmarks and custom bangs
// created from the search bar. It is only ever called from a background
// queue, so it reports problems by returning the placeholder title rather
// than an error.
package fetcher

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/wajeht/bang/internal/domain"
	"github.com/wajeht/bang/internal/utils"
)

const (
	// Untitled is returned for any page whose title cannot be fetched.
	Untitled = "Untitled"
	// FetchTimeout bounds the whole fetch, connect included.
	FetchTimeout = 5 * time.Second

	maxTitleLen = 100
)

// TitleFetcher fetches the <title> of a web page.
type TitleFetcher struct {
	client *http.Client
}

// NewTitleFetcher creates a fetcher with the default timeout.
func NewTitleFetcher() *TitleFetcher {
	return &TitleFetcher{
		client: &http.Client{Timeout: FetchTimeout},
	}
}

// FetchPageTitle returns the first <title> text of the page at url, trimmed
// and truncated to 100 characters. Malformed URLs, network errors, timeouts
// and non-200 responses all yield "Untitled".
func (f *TitleFetcher) FetchPageTitle(ctx context.Context, url string) string {
	if !domain.IsValidURL(url) {
		return Untitled
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Untitled
	}
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return Untitled
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return Untitled
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return Untitled
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return Untitled
	}

	if runes := []rune(title); len(runes) > maxTitleLen {
		title = strings.TrimSpace(string(runes[:maxTitleLen]))
	}
	return title
}
