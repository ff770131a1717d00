package news

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestCnyesFetch(t *testing.T) {
	payload := map[string]interface{}{
		"items": map[string]interface{}{
			"data": []map[string]interface{}{
				{
					"newsId":       5512345,
					"title":        "台積電法說會登場",
					"summary":      "市場關注先進製程展望。",
					"content":      "台積電今日舉行法說會。",
					"coverSrc":     "https://cimg.cnyes.cool/prod/news/5512345.jpg",
					"categoryName": "台股新聞",
					"publishAt":    1756600000,
				},
			},
		},
	}

	var gotHeaders http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &CnyesClient{
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}

	articles, err := client.Fetch(1)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))

	a := articles[0]
	assert.Equal(t, "台積電法說會登場", a.Title)
	assert.Equal(t, "市場關注先進製程展望。", a.Summary)
	assert.Equal(t, "台積電今日舉行法說會。", a.Content)
	assert.Equal(t, "https://news.cnyes.com/news/id/5512345", a.Link)
	assert.Equal(t, "台股新聞", a.Category)
	assert.Equal(t, "Cnyes", a.Source)
	assert.Equal(t, time.Unix(1756600000, 0), a.Date)

	assert.Equal(t, "https://news.cnyes.com/", gotHeaders.Get("Origin"))
	assert.Equal(t, "https://news.cnyes.com/", gotHeaders.Get("Referer"))
}

func TestCnyesFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := &CnyesClient{
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}

	_, err := client.Fetch(1)
	assert.NotEqual(t, nil, err)
}
