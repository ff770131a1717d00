package news

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const bbcBaseURL = "https://www.bbc.com"

// BBCClient scrapes headline promos from the BBC news front page.
type BBCClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewBBCClient() *BBCClient {
	return &BBCClient{
		baseURL:    bbcBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *BBCClient) Name() string {
	return "BBC"
}

func (c *BBCClient) Fetch(limit int) ([]Article, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/news")
	if err != nil {
		return nil, fmt.Errorf("bbc fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bbc fetch: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("bbc parse: %w", err)
	}

	var articles []Article
	doc.Find(".gs-c-promo-heading").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if limit > 0 && len(articles) >= limit {
			return false
		}

		href, ok := s.Attr("href")
		if !ok {
			return true
		}

		// Promo links are usually relative.
		if !strings.HasPrefix(href, "http") {
			href = c.baseURL + href
		}

		articles = append(articles, Article{
			Title:  strings.TrimSpace(s.Text()),
			Link:   href,
			Source: c.Name(),
			Date:   time.Now(),
		})
		return true
	})

	return articles, nil
}
