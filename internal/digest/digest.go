package digest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"newsdigest/internal/model"
)

var (
	// ErrNoArticles means the target date has no stored news. The run
	// ends cleanly without writing anything.
	ErrNoArticles = errors.New("no news data for target date")

	// ErrEmptySummary means the pipeline returned an empty result.
	// Nothing is persisted.
	ErrEmptySummary = errors.New("could not generate summary")
)

type NewsStore interface {
	GetNewsByDate(date time.Time) ([]model.News, error)
}

type SummaryStore interface {
	SaveSummaryWithSources(summary *model.Summary, newsIDs []int64) error
	HasSummaryForDate(date time.Time) (bool, error)
}

type BatchSummarizer interface {
	SummarizeInBatches(ctx context.Context, document string) (string, error)
}

// Service runs one digest: load a day's news, summarize it through the
// batch pipeline, persist the result with its source links.
type Service struct {
	news         NewsStore
	summaries    SummaryStore
	batcher      BatchSummarizer
	modelName    string
	skipExisting bool
}

func NewService(news NewsStore, summaries SummaryStore, batcher BatchSummarizer, modelName string, skipExisting bool) *Service {
	return &Service{
		news:         news,
		summaries:    summaries,
		batcher:      batcher,
		modelName:    modelName,
		skipExisting: skipExisting,
	}
}

type Result struct {
	SummaryID    int64
	ArticleCount int
	Date         time.Time
	Skipped      bool
}

func (s *Service) Run(ctx context.Context, target time.Time) (*Result, error) {
	if s.skipExisting {
		exists, err := s.summaries.HasSummaryForDate(target)
		if err != nil {
			return nil, fmt.Errorf("check existing summary: %w", err)
		}
		if exists {
			return &Result{Date: target, Skipped: true}, nil
		}
	}

	articles, err := s.news.GetNewsByDate(target)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}

	if len(articles) == 0 {
		return nil, ErrNoArticles
	}

	document := BuildDocument(articles)

	finalSummary, err := s.batcher.SummarizeInBatches(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	if strings.TrimSpace(finalSummary) == "" {
		return nil, ErrEmptySummary
	}

	newsIDs := make([]int64, len(articles))
	for i, a := range articles {
		newsIDs[i] = a.ID
	}

	summary := &model.Summary{
		SummaryText: finalSummary,
		ModelUsed:   s.modelName,
		GeneratedAt: target,
	}

	if err := s.summaries.SaveSummaryWithSources(summary, newsIDs); err != nil {
		return nil, fmt.Errorf("save summary: %w", err)
	}

	return &Result{
		SummaryID:    summary.ID,
		ArticleCount: len(articles),
		Date:         target,
	}, nil
}

// BuildDocument concatenates a day's articles into the one document the
// pipeline summarizes, one blank-line separated block per article.
func BuildDocument(articles []model.News) string {
	blocks := make([]string, len(articles))
	for i, a := range articles {
		blocks[i] = fmt.Sprintf("Article ID: %d\nTitle: %s\nContent: %s", a.ID, a.Title, a.Content)
	}
	return strings.Join(blocks, "\n\n")
}
