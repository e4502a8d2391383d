package dto

// SearchResultItem is one hit in a Wikipedia search response.
type SearchResultItem struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	PageID  int64  `json:"pageid"`
	URL     string `json:"url"`
}

// SearchResponse is the body of GET /wikipedia/search.
type SearchResponse struct {
	Results []SearchResultItem `json:"results"`
	Total   int                `json:"total"`
}

// ArticleResponse is a Wikipedia article summary.
type ArticleResponse struct {
	Title     string   `json:"title"`
	Extract   string   `json:"extract"`
	URL       string   `json:"url"`
	PageID    int64    `json:"pageid"`
	LastRevID int64    `json:"lastrevid"`
	Sections  []string `json:"sections"`
}

// FactCheckResponse is the body of POST /wikipedia/fact-check.
type FactCheckResponse struct {
	Query          string             `json:"query"`
	Found          bool               `json:"found"`
	Article        *ArticleResponse   `json:"article,omitempty"`
	SearchResults  []SearchResultItem `json:"search_results"`
	Confidence     string             `json:"confidence"`
	RelevanceScore float64            `json:"relevance_score"`
}
