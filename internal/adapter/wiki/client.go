package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"quizforge/internal/config"
	"quizforge/internal/domain"
)

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	queryCleanPattern = regexp.MustCompile(`[^\w\s]`)
)

// Client talks to the MediaWiki action API (search) and the Wikimedia REST v1
// API (page summaries).
type Client struct {
	apiBaseURL  string
	restBaseURL string
	httpClient  *http.Client
}

// NewClient creates a Wikipedia client with the configured timeout.
func NewClient(cfg config.WikipediaConfig) *Client {
	return &Client{
		apiBaseURL:  cfg.APIBaseURL,
		restBaseURL: cfg.RESTBaseURL,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
	}
}

type searchAPIResponse struct {
	Query struct {
		Search []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
			PageID  int64  `json:"pageid"`
		} `json:"search"`
	} `json:"query"`
}

// Search returns up to limit ranked article stubs for the query.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("list", "search")
	params.Set("srsearch", cleanQuery(query))
	params.Set("srlimit", fmt.Sprintf("%d", limit))
	params.Set("srprop", "snippet|size")
	params.Set("origin", "*")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wikipedia search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia search returned status %d", resp.StatusCode)
	}

	var data searchAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode wikipedia search response: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(data.Query.Search))
	for _, hit := range data.Query.Search {
		results = append(results, domain.SearchResult{
			Title:   hit.Title,
			Snippet: cleanSnippet(hit.Snippet),
			PageID:  hit.PageID,
			URL:     "https://en.wikipedia.org/wiki/" + encodeTitle(hit.Title),
		})
	}
	return results, nil
}

type summaryAPIResponse struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	PageID      int64  `json:"pageid"`
	Revision    string `json:"revision"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
	Sections []struct {
		Title string `json:"title"`
	} `json:"sections"`
}

// GetArticle fetches one article summary by title. A 404 yields (nil, nil).
func (c *Client) GetArticle(ctx context.Context, title string) (*domain.Article, error) {
	endpoint := c.restBaseURL + "/page/summary/" + encodeTitle(title)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wikipedia article request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia article fetch returned status %d", resp.StatusCode)
	}

	var data summaryAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode wikipedia article response: %w", err)
	}

	articleURL := data.ContentURLs.Desktop.Page
	if articleURL == "" {
		articleURL = "https://en.wikipedia.org/wiki/" + encodeTitle(title)
	}
	sections := make([]string, 0, len(data.Sections))
	for _, s := range data.Sections {
		sections = append(sections, s.Title)
	}

	var lastRevID int64
	fmt.Sscanf(data.Revision, "%d", &lastRevID)

	return &domain.Article{
		Title:     data.Title,
		Extract:   data.Extract,
		URL:       articleURL,
		PageID:    data.PageID,
		LastRevID: lastRevID,
		Sections:  sections,
	}, nil
}

// cleanQuery strips punctuation and caps the search phrase at 100 characters.
func cleanQuery(query string) string {
	cleaned := strings.TrimSpace(queryCleanPattern.ReplaceAllString(query, " "))
	if len(cleaned) > 100 {
		cleaned = cleaned[:100]
	}
	return cleaned
}

// cleanSnippet strips search-highlight HTML from a snippet.
func cleanSnippet(snippet string) string {
	s := htmlTagPattern.ReplaceAllString(snippet, "")
	s = strings.NewReplacer(
		"&quot;", `"`,
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
	).Replace(s)
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

func encodeTitle(title string) string {
	return url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}
