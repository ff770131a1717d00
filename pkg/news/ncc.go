package news

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const nccBaseURL = "https://www.ncc.gov.tw"

// NCCClient scrapes the press release listing of the National
// Communications Commission.
type NCCClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewNCCClient() *NCCClient {
	return &NCCClient{
		baseURL:    nccBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *NCCClient) Name() string {
	return "NCC"
}

func (c *NCCClient) Fetch(limit int) ([]Article, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/chinese/news.aspx")
	if err != nil {
		return nil, fmt.Errorf("ncc fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ncc fetch: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ncc parse: %w", err)
	}

	var articles []Article
	doc.Find(".newsTitle a").EachWithBreak(func(i int, s *goquery.Selection) bool {
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
