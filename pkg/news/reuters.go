package news

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const reutersBaseURL = "https://www.reuters.com"

// ReutersClient scrapes the Reuters news archive listing.
type ReutersClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewReutersClient() *ReutersClient {
	return &ReutersClient{
		baseURL:    reutersBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *ReutersClient) Name() string {
	return "Reuters"
}

func (c *ReutersClient) Fetch(limit int) ([]Article, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/news/archive")
	if err != nil {
		return nil, fmt.Errorf("reuters fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reuters fetch: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reuters parse: %w", err)
	}

	var articles []Article
	doc.Find(".story-content a").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if limit > 0 && len(articles) >= limit {
			return false
		}

		href, ok := s.Attr("href")
		if !ok {
			return true
		}

		articles = append(articles, Article{
			Title:  strings.TrimSpace(s.Text()),
			Link:   c.baseURL + href,
			Source: c.Name(),
			Date:   time.Now(),
		})
		return true
	})

	return articles, nil
}
