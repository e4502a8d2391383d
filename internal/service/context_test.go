package service

import (
	"context"
	"errors"
	"testing"

	"quizforge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func gatherSearchResults(titles ...string) []domain.SearchResult {
	results := make([]domain.SearchResult, len(titles))
	for i, title := range titles {
		results[i] = domain.SearchResult{Title: title, PageID: int64(i + 1)}
	}
	return results
}

func TestContextGatherer_GatherContext(t *testing.T) {
	client := new(MockWikipediaClient)
	client.On("Search", mock.Anything, "Photosynthesis", gatherSearchLimit).
		Return(gatherSearchResults("Photosynthesis", "Chlorophyll", "Calvin cycle"), nil)
	client.On("GetArticle", mock.Anything, "Photosynthesis").Return(&domain.Article{
		Title:    "Photosynthesis",
		Extract:  "Photosynthesis is a process used by plants to convert light. It happens fast.",
		Sections: []string{"History", "Mechanism"},
	}, nil)
	client.On("GetArticle", mock.Anything, "Chlorophyll").Return(&domain.Article{
		Title:    "Chlorophyll",
		Extract:  "Chlorophyll is a green pigment found in plants. Short one.",
		Sections: []string{"Mechanism", "Structure"},
	}, nil)

	gatherer := NewContextGatherer(client)
	summary := gatherer.GatherContext(context.Background(), "Photosynthesis")

	require.NotNil(t, summary)
	// Only the first two search hits are fetched, in search-rank order.
	require.Len(t, summary.Articles, 2)
	assert.Equal(t, "Photosynthesis", summary.Articles[0].Title)
	assert.Equal(t, "Chlorophyll", summary.Articles[1].Title)
	client.AssertNotCalled(t, "GetArticle", mock.Anything, "Calvin cycle")

	assert.Equal(t, []string{
		"Photosynthesis is a process used by plants to convert light",
		"Chlorophyll is a green pigment found in plants",
	}, summary.KeyFacts)
	// Section titles are de-duplicated across articles.
	assert.Equal(t, []string{"History", "Mechanism", "Structure"}, summary.RelatedTopics)
	// The first extract's trailing period is trimmed so the join does not
	// produce "..".
	assert.Equal(t,
		"Photosynthesis is a process used by plants to convert light. It happens fast"+
			". Chlorophyll is a green pigment found in plants",
		summary.Summary)
}

func TestContextGatherer_SearchErrorDegradesToEmpty(t *testing.T) {
	client := new(MockWikipediaClient)
	client.On("Search", mock.Anything, "Jazz", gatherSearchLimit).
		Return(nil, errors.New("upstream down"))

	summary := NewContextGatherer(client).GatherContext(context.Background(), "Jazz")

	require.NotNil(t, summary)
	assert.True(t, summary.IsEmpty())
}

func TestContextGatherer_NoSearchResults(t *testing.T) {
	client := new(MockWikipediaClient)
	client.On("Search", mock.Anything, "zxqv", gatherSearchLimit).
		Return([]domain.SearchResult{}, nil)

	summary := NewContextGatherer(client).GatherContext(context.Background(), "zxqv")

	assert.True(t, summary.IsEmpty())
	client.AssertNotCalled(t, "GetArticle", mock.Anything, mock.Anything)
}

func TestContextGatherer_ArticleFetchFailuresSwallowed(t *testing.T) {
	client := new(MockWikipediaClient)
	client.On("Search", mock.Anything, "Jazz", gatherSearchLimit).
		Return(gatherSearchResults("Jazz", "Blues"), nil)
	client.On("GetArticle", mock.Anything, "Jazz").
		Return(nil, errors.New("timeout"))
	client.On("GetArticle", mock.Anything, "Blues").Return(&domain.Article{
		Title:   "Blues",
		Extract: "Blues is a music genre that originated in the Deep South.",
	}, nil)

	summary := NewContextGatherer(client).GatherContext(context.Background(), "Jazz")

	require.Len(t, summary.Articles, 1)
	assert.Equal(t, "Blues", summary.Articles[0].Title)
}

func TestContextGatherer_AllArticlesMissing(t *testing.T) {
	client := new(MockWikipediaClient)
	client.On("Search", mock.Anything, "Jazz", gatherSearchLimit).
		Return(gatherSearchResults("Jazz"), nil)
	client.On("GetArticle", mock.Anything, "Jazz").Return(nil, nil)

	summary := NewContextGatherer(client).GatherContext(context.Background(), "Jazz")

	assert.True(t, summary.IsEmpty())
}

func TestFactSentences(t *testing.T) {
	extract := "Jazz is a music genre that originated in New Orleans. " +
		"Short is a. " +
		"Improvisation plays a big role here. " +
		"Swing rhythm is the defining pulse of the style."

	sentences := factSentences(extract)

	assert.Equal(t, []string{
		"Jazz is a music genre that originated in New Orleans",
		"Swing rhythm is the defining pulse of the style",
	}, sentences)
}

func TestCollectKeyFacts_Caps(t *testing.T) {
	extract := ""
	for i := 0; i < 12; i++ {
		extract += "Sentence number " + string(rune('a'+i)) + " is a long declarative statement. "
	}
	articles := []domain.Article{{Extract: extract}, {Extract: extract}}

	facts := collectKeyFacts(articles)

	// At most factsPerArticle from one article, duplicates dropped.
	assert.Len(t, facts, factsPerArticle)
}

func TestCollectRelatedTopics_Cap(t *testing.T) {
	articles := []domain.Article{
		{Sections: []string{"A", "B", "C", "D", "E", "F"}},
		{Sections: []string{"A", "G"}},
	}

	topics := collectRelatedTopics(articles)

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, topics)
}
