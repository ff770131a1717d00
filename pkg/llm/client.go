package llm

import "context"

const systemPrompt = `You are a financial market expert skilled at analyzing news and forecasting stock market movements based on news data.`

const userPromptTemplate = `Read the following news items, consolidate those with similar content, give a likely stock price direction for each consolidated group, and answer grouped by topic:

%s`

type Summarizer interface {
	Summarize(ctx context.Context, content string) (string, error)
}
