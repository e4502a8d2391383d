package domain

import "context"

// WikipediaClient is the port to the encyclopedia lookup API.
type WikipediaClient interface {
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
	// GetArticle returns nil without error when no article exists for the
	// title.
	GetArticle(ctx context.Context, title string) (*Article, error)
}

// SearchResult is one ranked Wikipedia search hit.
type SearchResult struct {
	Title   string
	Snippet string
	PageID  int64
	URL     string
}

// Article is a fetched Wikipedia article summary.
type Article struct {
	Title     string
	Extract   string
	URL       string
	PageID    int64
	LastRevID int64
	Sections  []string
}

// ContextSummary is the condensed encyclopedia context used to enrich quiz
// prompts. All fields empty means "no usable context"; lookup failures always
// degrade to that state instead of erroring.
type ContextSummary struct {
	Articles      []Article
	KeyFacts      []string
	RelatedTopics []string
	Summary       string
}

// IsEmpty reports whether the summary carries no usable context.
func (c *ContextSummary) IsEmpty() bool {
	return c == nil || (len(c.Articles) == 0 && len(c.KeyFacts) == 0 &&
		len(c.RelatedTopics) == 0 && c.Summary == "")
}

// FactCheckResult is the outcome of checking a piece of content against
// Wikipedia.
type FactCheckResult struct {
	Query          string
	Found          bool
	Article        *Article
	SearchResults  []SearchResult
	Confidence     string
	RelevanceScore float64
}
