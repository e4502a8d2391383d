package service

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"quizforge/internal/domain"
	"quizforge/internal/logger"

	"go.uber.org/zap"
)

// factCheckStopWords are excluded from key-term extraction.
var factCheckStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "must": {}, "can": {}, "this": {}, "that": {}, "these": {},
	"those": {},
}

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// WikipediaService exposes encyclopedia search, article lookup and
// fact-checking on top of the WikipediaClient port.
type WikipediaService interface {
	Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error)
	GetArticle(ctx context.Context, title string) (*domain.Article, error)
	GetArticlesForTopic(ctx context.Context, topic string, limit int) ([]domain.Article, error)
	FactCheck(ctx context.Context, content, topic string) (*domain.FactCheckResult, error)
}

type wikipediaService struct {
	client domain.WikipediaClient
}

// NewWikipediaService creates a WikipediaService backed by the given client.
func NewWikipediaService(client domain.WikipediaClient) WikipediaService {
	return &wikipediaService{client: client}
}

func (s *wikipediaService) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	return s.client.Search(ctx, query, limit)
}

func (s *wikipediaService) GetArticle(ctx context.Context, title string) (*domain.Article, error) {
	return s.client.GetArticle(ctx, title)
}

// GetArticlesForTopic searches for the topic and resolves each hit to a full
// article summary, skipping titles that no longer resolve.
func (s *wikipediaService) GetArticlesForTopic(ctx context.Context, topic string, limit int) ([]domain.Article, error) {
	results, err := s.client.Search(ctx, topic, limit)
	if err != nil {
		return nil, err
	}

	articles := make([]domain.Article, 0, len(results))
	for _, result := range results {
		article, err := s.client.GetArticle(ctx, result.Title)
		if err != nil {
			logger.Get().Warn("article lookup failed",
				zap.String("title", result.Title), zap.Error(err))
			continue
		}
		if article != nil {
			articles = append(articles, *article)
		}
	}
	return articles, nil
}

// FactCheck searches for the most relevant article and scores how well it
// supports the content. Lookup failures degrade to a not-found result rather
// than erroring.
func (s *wikipediaService) FactCheck(ctx context.Context, content, topic string) (*domain.FactCheckResult, error) {
	notFound := &domain.FactCheckResult{
		Query:      content,
		Found:      false,
		Confidence: "low",
	}

	keyTerms := extractKeyTerms(content, topic)
	if len(keyTerms) == 0 {
		return notFound, nil
	}

	searchResults, err := s.client.Search(ctx, keyTerms[0], 3)
	if err != nil {
		logger.Get().Warn("fact-check search failed", zap.Error(err))
		return notFound, nil
	}
	if len(searchResults) == 0 {
		return notFound, nil
	}

	article, err := s.client.GetArticle(ctx, searchResults[0].Title)
	if err != nil {
		logger.Get().Warn("fact-check article lookup failed",
			zap.String("title", searchResults[0].Title), zap.Error(err))
		article = nil
	}
	if article == nil {
		return &domain.FactCheckResult{
			Query:          content,
			Found:          false,
			SearchResults:  searchResults,
			Confidence:     "low",
			RelevanceScore: 0.3,
		}, nil
	}

	score := relevanceScore(content, article, keyTerms)
	confidence := "low"
	switch {
	case score > 0.7:
		confidence = "high"
	case score > 0.4:
		confidence = "medium"
	}

	return &domain.FactCheckResult{
		Query:          content,
		Found:          true,
		Article:        article,
		SearchResults:  searchResults,
		Confidence:     confidence,
		RelevanceScore: score,
	}, nil
}

// extractKeyTerms returns the three most frequent non-stop-words from the
// topic and content combined.
func extractKeyTerms(content, topic string) []string {
	fullText := content
	if topic != "" {
		fullText = topic + " " + content
	}

	words := strings.Fields(nonWordPattern.ReplaceAllString(strings.ToLower(fullText), " "))
	counts := make(map[string]int)
	for _, word := range words {
		if len(word) < 2 {
			continue
		}
		if _, stop := factCheckStopWords[word]; stop {
			continue
		}
		counts[word]++
	}

	terms := make([]string, 0, len(counts))
	for word := range counts {
		terms = append(terms, word)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > 3 {
		terms = terms[:3]
	}
	return terms
}

// relevanceScore rates how well an article supports the content, capped at 1.
// Each key term found in the article text adds 0.3, a key term in the title
// adds 0.4, and the word-overlap ratio contributes up to 0.3.
func relevanceScore(content string, article *domain.Article, keyTerms []string) float64 {
	contentLower := strings.ToLower(content)
	articleText := strings.ToLower(article.Title + " " + article.Extract)
	titleLower := strings.ToLower(article.Title)

	score := 0.0
	for _, term := range keyTerms {
		if strings.Contains(articleText, strings.ToLower(term)) {
			score += 0.3
		}
	}
	for _, term := range keyTerms {
		if strings.Contains(titleLower, strings.ToLower(term)) {
			score += 0.4
			break
		}
	}

	articleWords := make(map[string]struct{})
	for _, word := range strings.Fields(articleText) {
		if len(word) > 3 {
			articleWords[word] = struct{}{}
		}
	}
	contentWords := 0
	common := 0
	for _, word := range strings.Fields(contentLower) {
		if len(word) <= 3 {
			continue
		}
		contentWords++
		if _, ok := articleWords[word]; ok {
			common++
		}
	}
	if contentWords > 0 {
		score += float64(common) / float64(contentWords) * 0.3
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
