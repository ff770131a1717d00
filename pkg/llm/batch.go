package llm

import (
	"context"
	"fmt"
	"strings"
)

const (
	DefaultBatchTokenLimit = 10000
	DefaultMaxTokens       = 30000
)

// Batcher splits an oversized document into paragraph-aligned batches,
// summarizes each batch in document order, and compresses the combined
// result once more if it still exceeds the global token ceiling.
type Batcher struct {
	counter         TokenCounter
	summarizer      Summarizer
	batchTokenLimit int
	maxTokens       int
}

func NewBatcher(counter TokenCounter, summarizer Summarizer, batchTokenLimit, maxTokens int) *Batcher {
	if batchTokenLimit <= 0 {
		batchTokenLimit = DefaultBatchTokenLimit
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Batcher{
		counter:         counter,
		summarizer:      summarizer,
		batchTokenLimit: batchTokenLimit,
		maxTokens:       maxTokens,
	}
}

// SummarizeInBatches returns one summary for the whole document. Documents
// within the per-batch limit are summarized in a single call. Larger
// documents are split on blank-line paragraph boundaries and greedily
// packed: when the next paragraph would push the running batch over the
// limit, the batch is summarized and reset first. A single paragraph larger
// than the limit is never split; it forms its own batch. Batch summaries
// are joined with a blank line, and the joined text gets one extra
// summarization pass if it exceeds the global ceiling.
func (b *Batcher) SummarizeInBatches(ctx context.Context, document string) (string, error) {
	if b.counter.Count(document) <= b.batchTokenLimit {
		return b.summarizer.Summarize(ctx, document)
	}

	paragraphs := strings.Split(document, "\n\n")

	var batch []string
	var batchSummaries []string
	batchTokens := 0

	for _, paragraph := range paragraphs {
		paragraphTokens := b.counter.Count(paragraph)

		if len(batch) > 0 && batchTokens+paragraphTokens > b.batchTokenLimit {
			summary, err := b.summarizer.Summarize(ctx, strings.Join(batch, "\n\n"))
			if err != nil {
				return "", fmt.Errorf("batch summarize: %w", err)
			}
			batchSummaries = append(batchSummaries, summary)
			batch = nil
			batchTokens = 0
		}

		batch = append(batch, paragraph)
		batchTokens += paragraphTokens
	}

	if len(batch) > 0 {
		summary, err := b.summarizer.Summarize(ctx, strings.Join(batch, "\n\n"))
		if err != nil {
			return "", fmt.Errorf("batch summarize: %w", err)
		}
		batchSummaries = append(batchSummaries, summary)
	}

	combined := strings.Join(batchSummaries, "\n\n")

	if b.counter.Count(combined) > b.maxTokens {
		reduced, err := b.summarizer.Summarize(ctx, combined)
		if err != nil {
			return "", fmt.Errorf("final compression: %w", err)
		}
		return reduced, nil
	}

	return combined, nil
}
