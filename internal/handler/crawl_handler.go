package handler

import (
	"log/slog"
	"net/http"

	"newsdigest/internal/model"
	"newsdigest/pkg/news"

	"github.com/gin-gonic/gin"
)

type CrawlStore interface {
	SaveNews(news *model.News) (bool, error)
}

type CrawlHandler struct {
	clients    []news.NewsClient
	repository CrawlStore
	limit      int
}

func NewCrawlHandler(clients []news.NewsClient, repository CrawlStore, limit int) *CrawlHandler {
	return &CrawlHandler{clients: clients, repository: repository, limit: limit}
}

// Crawl runs every configured source once, persists what it finds and
// reports per-source counts.
func (h *CrawlHandler) Crawl(c *gin.Context) {
	sources := make([]CrawlSourceResponse, 0, len(h.clients))
	var articles []CrawledArticleResponse

	for _, client := range h.clients {
		source := client.Name()

		fetched, err := client.Fetch(h.limit)
		if err != nil {
			slog.Error("error fetching articles", "source", source, "error", err)
			sources = append(sources, CrawlSourceResponse{Source: source, Error: err.Error()})
			continue
		}

		var saved, duplicated, errors int
		for _, a := range fetched {
			item := model.News{
				Title:    a.Title,
				Summary:  a.Summary,
				Content:  a.Content,
				ImageURL: a.ImageURL,
				Link:     a.Link,
				Category: a.Category,
				Source:   a.Source,
				Date:     a.Date,
			}

			success, err := h.repository.SaveNews(&item)
			if err != nil {
				slog.Error("error saving article", "source", source, "link", a.Link, "error", err)
				errors++
				continue
			}

			if !success {
				duplicated++
				continue
			}

			saved++
			articles = append(articles, CrawledArticleResponse{
				ID:     item.ID,
				Title:  item.Title,
				Link:   item.Link,
				Source: item.Source,
			})
		}

		sources = append(sources, CrawlSourceResponse{
			Source:     source,
			Fetched:    len(fetched),
			Saved:      saved,
			Duplicated: duplicated,
			Errors:     errors,
		})
	}

	c.JSON(http.StatusOK, CrawlResponse{
		Sources:  sources,
		Articles: articles,
	})
}
