package news

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const cnyesBaseURL = "https://api.cnyes.com"

// CnyesClient polls the cnyes newslist API for Taiwan stock-market news.
type CnyesClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCnyesClient() *CnyesClient {
	return &CnyesClient{
		baseURL:    cnyesBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *CnyesClient) Name() string {
	return "Cnyes"
}

func (c *CnyesClient) Fetch(limit int) ([]Article, error) {
	if limit <= 0 {
		limit = 30
	}

	url := fmt.Sprintf("%s/media/api/v1/newslist/category/wd_stock?page=1&limit=%d", c.baseURL, limit)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("cnyes request: %w", err)
	}

	// The newslist API rejects requests without browser-looking headers.
	req.Header.Set("Origin", "https://news.cnyes.com/")
	req.Header.Set("Referer", "https://news.cnyes.com/")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cnyes fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cnyes fetch: unexpected status %d", resp.StatusCode)
	}

	var raw cnyesResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("cnyes decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Items.Data))
	for _, item := range raw.Items.Data {
		articles = append(articles, Article{
			Title:    item.Title,
			Summary:  item.Summary,
			Content:  item.Content,
			ImageURL: item.CoverSrc,
			Link:     fmt.Sprintf("https://news.cnyes.com/news/id/%d", item.NewsID),
			Category: item.CategoryName,
			Source:   c.Name(),
			Date:     time.Unix(item.PublishAt, 0),
		})
	}

	return articles, nil
}

type cnyesResponse struct {
	Items cnyesItems `json:"items"`
}

type cnyesItems struct {
	Data []cnyesNewsItem `json:"data"`
}

type cnyesNewsItem struct {
	NewsID       int64  `json:"newsId"`
	Title        string `json:"title"`
	Summary      string `json:"summary"`
	Content      string `json:"content"`
	CoverSrc     string `json:"coverSrc"`
	CategoryName string `json:"categoryName"`
	PublishAt    int64  `json:"publishAt"`
}
