package research

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	wikipediaSearchURL = "https://en.wikipedia.org/w/api.php"
	wikipediaRESTURL   = "https://en.wikipedia.org/api/rest_v1/page/summary/"
)

// searchResult is one hit from the Wikipedia search API.
type searchResult struct {
	Title   string
	Snippet string
	PageID  int
}

// page is a fetched Wikipedia page summary.
type page struct {
	Title   string
	Extract string
	Source  string
}

// searchWikipedia queries the classic search API.
func (c *Client) searchWikipedia(ctx context.Context, query string, limit int) ([]searchResult, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(limit))
	params.Set("format", "json")
	params.Set("srprop", "snippet|titlesnippet")

	req, err := http.NewRequestWithContext(ctx, "GET", wikipediaSearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia search: status %d", resp.StatusCode)
	}

	var body struct {
		Query struct {
			Search []struct {
				Title   string `json:"title"`
				Snippet string `json:"snippet"`
				PageID  int    `json:"pageid"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	results := make([]searchResult, 0, len(body.Query.Search))
	for _, item := range body.Query.Search {
		results = append(results, searchResult{
			Title:   item.Title,
			Snippet: stripHTML(item.Snippet),
			PageID:  item.PageID,
		})
	}
	return results, nil
}

// fetchPage retrieves a clean summary through the REST API.
func (c *Client) fetchPage(ctx context.Context, title string) (*page, error) {
	formatted := strings.ReplaceAll(title, " ", "_")

	req, err := http.NewRequestWithContext(ctx, "GET", wikipediaRESTURL+url.PathEscape(formatted), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia fetch: status %d", resp.StatusCode)
	}

	var body struct {
		Title       string `json:"title"`
		Extract     string `json:"extract"`
		ContentURLs struct {
			Desktop struct {
				Page string `json:"page"`
			} `json:"desktop"`
		} `json:"content_urls"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	if body.Extract == "" {
		return nil, nil
	}

	source := body.ContentURLs.Desktop.Page
	if source == "" {
		source = "https://en.wikipedia.org/wiki/" + formatted
	}

	return &page{
		Title:   body.Title,
		Extract: body.Extract,
		Source:  source,
	}, nil
}

// stripHTML removes markup from search snippets.
func stripHTML(snippet string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snippet))
	if err != nil {
		return snippet
	}
	return strings.TrimSpace(doc.Text())
}
