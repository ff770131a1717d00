package handler

type NewsResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	ImageURL string `json:"image_url"`
	Link     string `json:"link"`
	Category string `json:"category"`
	Source   string `json:"source"`
	Date     string `json:"date"`
}

type FeedResponse struct {
	Articles []NewsResponse `json:"articles"`
	Total    int            `json:"total"`
	Limit    int            `json:"limit"`
	Offset   int            `json:"offset"`
}

type SummaryResponse struct {
	ID          int64   `json:"id"`
	SummaryText string  `json:"summary_text"`
	ModelUsed   string  `json:"model_used"`
	GeneratedAt string  `json:"generated_at"`
	CreatedAt   string  `json:"created_at"`
	SourceIDs   []int64 `json:"source_ids,omitempty"`
}

type SummariesResponse struct {
	Latest  *SummaryResponse  `json:"latest"`
	History []SummaryResponse `json:"history"`
	Total   int               `json:"total"`
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
}

type CrawlSourceResponse struct {
	Source     string `json:"source"`
	Fetched    int    `json:"fetched"`
	Saved      int    `json:"saved"`
	Duplicated int    `json:"duplicated"`
	Errors     int    `json:"errors"`
	Error      string `json:"error,omitempty"`
}

type CrawledArticleResponse struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Link   string `json:"link"`
	Source string `json:"source"`
}

type CrawlResponse struct {
	Sources  []CrawlSourceResponse    `json:"sources"`
	Articles []CrawledArticleResponse `json:"articles"`
}
