package service

import (
	"context"
	"strings"

	"quizforge/internal/domain"
	"quizforge/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	gatherSearchLimit  = 3
	gatherArticleLimit = 2
	factsPerArticle    = 8
	keyFactCap         = 10
	sectionsPerArticle = 5
	relatedTopicCap    = 5
	minFactSentenceLen = 20
)

// declarativeIndicators mark sentences likely to state a checkable fact.
var declarativeIndicators = []string{
	"is a", "was a", "refers to", "known as",
	"is the", "are the", "defined as", "consists of",
}

// ContextGatherer condenses encyclopedia lookups into prompt context for a
// topic. Lookup failures never fail generation; they degrade to an empty
// summary.
type ContextGatherer interface {
	GatherContext(ctx context.Context, topic string) *domain.ContextSummary
}

type contextGatherer struct {
	client domain.WikipediaClient
	group  singleflight.Group
}

// NewContextGatherer creates a ContextGatherer. Concurrent gathers for the
// same topic are collapsed into a single round of lookups.
func NewContextGatherer(client domain.WikipediaClient) ContextGatherer {
	return &contextGatherer{client: client}
}

func (g *contextGatherer) GatherContext(ctx context.Context, topic string) *domain.ContextSummary {
	v, _, _ := g.group.Do(strings.ToLower(strings.TrimSpace(topic)), func() (interface{}, error) {
		return g.gather(ctx, topic), nil
	})
	return v.(*domain.ContextSummary)
}

func (g *contextGatherer) gather(ctx context.Context, topic string) *domain.ContextSummary {
	empty := &domain.ContextSummary{}

	results, err := g.client.Search(ctx, topic, gatherSearchLimit)
	if err != nil {
		logger.Get().Warn("context search failed",
			zap.String("topic", topic), zap.Error(err))
		return empty
	}
	if len(results) == 0 {
		return empty
	}

	fetchCount := len(results)
	if fetchCount > gatherArticleLimit {
		fetchCount = gatherArticleLimit
	}

	// Fetch the article summaries concurrently but keep search-rank order.
	articles := make([]*domain.Article, fetchCount)
	eg, egCtx := errgroup.WithContext(ctx)
	for i := 0; i < fetchCount; i++ {
		i := i
		eg.Go(func() error {
			article, err := g.client.GetArticle(egCtx, results[i].Title)
			if err != nil {
				logger.Get().Warn("context article fetch failed",
					zap.String("title", results[i].Title), zap.Error(err))
				return nil
			}
			articles[i] = article
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return empty
	}

	fetched := make([]domain.Article, 0, fetchCount)
	for _, a := range articles {
		if a != nil {
			fetched = append(fetched, *a)
		}
	}
	if len(fetched) == 0 {
		return empty
	}

	return &domain.ContextSummary{
		Articles:      fetched,
		KeyFacts:      collectKeyFacts(fetched),
		RelatedTopics: collectRelatedTopics(fetched),
		Summary:       buildSummary(fetched),
	}
}

// collectKeyFacts pulls declarative sentences out of the article extracts,
// at most factsPerArticle from each article and keyFactCap overall, with
// duplicates removed.
func collectKeyFacts(articles []domain.Article) []string {
	seen := make(map[string]struct{})
	facts := make([]string, 0, keyFactCap)
	for _, article := range articles {
		perArticle := 0
		for _, sentence := range factSentences(article.Extract) {
			if perArticle >= factsPerArticle || len(facts) >= keyFactCap {
				break
			}
			if _, dup := seen[sentence]; dup {
				continue
			}
			seen[sentence] = struct{}{}
			facts = append(facts, sentence)
			perArticle++
		}
		if len(facts) >= keyFactCap {
			break
		}
	}
	return facts
}

// factSentences splits an extract on '.' and keeps sentences long enough to
// carry a fact and containing a declarative indicator.
func factSentences(extract string) []string {
	var sentences []string
	for _, raw := range strings.Split(extract, ".") {
		sentence := strings.TrimSpace(raw)
		if len(sentence) <= minFactSentenceLen {
			continue
		}
		lower := strings.ToLower(sentence)
		for _, indicator := range declarativeIndicators {
			if strings.Contains(lower, indicator) {
				sentences = append(sentences, sentence)
				break
			}
		}
	}
	return sentences
}

// collectRelatedTopics takes up to sectionsPerArticle section titles from each
// article, de-duplicated, capped at relatedTopicCap.
func collectRelatedTopics(articles []domain.Article) []string {
	seen := make(map[string]struct{})
	topics := make([]string, 0, relatedTopicCap)
	for _, article := range articles {
		perArticle := 0
		for _, section := range article.Sections {
			if perArticle >= sectionsPerArticle || len(topics) >= relatedTopicCap {
				break
			}
			section = strings.TrimSpace(section)
			if section == "" {
				continue
			}
			if _, dup := seen[section]; dup {
				continue
			}
			seen[section] = struct{}{}
			topics = append(topics, section)
			perArticle++
		}
		if len(topics) >= relatedTopicCap {
			break
		}
	}
	return topics
}

// buildSummary joins the first article's extract with the first fact sentence
// of each later article.
func buildSummary(articles []domain.Article) string {
	parts := make([]string, 0, len(articles))
	if articles[0].Extract != "" {
		// The extract usually ends in a period already; trim it so the
		// join does not double it up.
		parts = append(parts, strings.TrimSuffix(strings.TrimSpace(articles[0].Extract), "."))
	}
	for _, article := range articles[1:] {
		if sentences := factSentences(article.Extract); len(sentences) > 0 {
			parts = append(parts, sentences[0])
		}
	}
	return strings.Join(parts, ". ")
}
