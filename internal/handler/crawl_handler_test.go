package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newsdigest/internal/model"
	"newsdigest/pkg/news"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeNewsClient struct {
	name     string
	articles []news.Article
	err      error
}

func (f *fakeNewsClient) Fetch(limit int) ([]news.Article, error) {
	return f.articles, f.err
}

func (f *fakeNewsClient) Name() string {
	return f.name
}

type fakeCrawlStore struct {
	saved     []model.News
	duplicate map[string]bool
	err       error
}

func (f *fakeCrawlStore) SaveNews(n *model.News) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.duplicate[n.Link] {
		return false, nil
	}
	n.ID = int64(len(f.saved) + 1)
	f.saved = append(f.saved, *n)
	return true, nil
}

func newTestCrawlRouter(clients []news.NewsClient, store CrawlStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCrawlHandler(clients, store, 30)
	r.GET("/api/v1/news/crawl", h.Crawl)
	return r
}

func TestCrawl_SavesArticles(t *testing.T) {
	client := &fakeNewsClient{
		name: "BBC",
		articles: []news.Article{
			{Title: "Story one", Link: "https://example.com/1", Source: "BBC", Date: time.Now()},
			{Title: "Story two", Link: "https://example.com/2", Source: "BBC", Date: time.Now()},
		},
	}
	store := &fakeCrawlStore{duplicate: map[string]bool{}}

	r := newTestCrawlRouter([]news.NewsClient{client}, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/news/crawl", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, len(store.saved))

	var res CrawlResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, 1, len(res.Sources))
	assert.Equal(t, "BBC", res.Sources[0].Source)
	assert.Equal(t, 2, res.Sources[0].Fetched)
	assert.Equal(t, 2, res.Sources[0].Saved)
	assert.Equal(t, 2, len(res.Articles))
}

func TestCrawl_CountsDuplicates(t *testing.T) {
	client := &fakeNewsClient{
		name: "Cnyes",
		articles: []news.Article{
			{Title: "Fresh", Link: "https://example.com/fresh"},
			{Title: "Dup", Link: "https://example.com/dup"},
		},
	}
	store := &fakeCrawlStore{duplicate: map[string]bool{"https://example.com/dup": true}}

	r := newTestCrawlRouter([]news.NewsClient{client}, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/news/crawl", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res CrawlResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, 1, res.Sources[0].Saved)
	assert.Equal(t, 1, res.Sources[0].Duplicated)
}

func TestCrawl_SourceFailureIsReported(t *testing.T) {
	broken := &fakeNewsClient{name: "Reuters", err: errors.New("blocked")}
	working := &fakeNewsClient{
		name:     "NCC",
		articles: []news.Article{{Title: "Notice", Link: "https://example.com/ncc"}},
	}
	store := &fakeCrawlStore{duplicate: map[string]bool{}}

	r := newTestCrawlRouter([]news.NewsClient{broken, working}, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/news/crawl", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res CrawlResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, 2, len(res.Sources))
	assert.Equal(t, "blocked", res.Sources[0].Error)
	assert.Equal(t, 1, res.Sources[1].Saved)
	assert.Equal(t, 1, len(store.saved))
}
