package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newsdigest/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeSummaryStore struct {
	summaries []model.Summary
	latest    *model.Summary
	sourceIDs []int64
	total     int
	err       error
}

func (f *fakeSummaryStore) GetSummaries(limit, offset int) ([]model.Summary, error) {
	return f.summaries, f.err
}

func (f *fakeSummaryStore) GetSummaryTotal() (int, error) {
	return f.total, f.err
}

func (f *fakeSummaryStore) GetLatestSummary() (*model.Summary, error) {
	return f.latest, f.err
}

func (f *fakeSummaryStore) GetSourceIDs(summaryID int64) ([]int64, error) {
	return f.sourceIDs, f.err
}

func newTestSummaryRouter(store SummaryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSummaryHandler(store)
	r.GET("/summaries", h.GetSummaries)
	r.GET("/summaries/latest", h.GetLatestSummary)
	return r
}

func TestGetSummaries_DBError(t *testing.T) {
	store := &fakeSummaryStore{err: errors.New("DB down")}

	r := newTestSummaryRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/summaries", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetSummaries_Empty(t *testing.T) {
	store := &fakeSummaryStore{summaries: []model.Summary{}, total: 0}

	r := newTestSummaryRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/summaries", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res SummariesResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, nil, res.Latest)
	assert.Equal(t, 0, len(res.History))
	assert.Equal(t, 0, res.Total)
}

func TestGetSummaries_WithResults(t *testing.T) {
	now := time.Now()
	store := &fakeSummaryStore{
		summaries: []model.Summary{
			{ID: 3, SummaryText: "Latest digest", ModelUsed: "gpt-4o", GeneratedAt: now, CreatedAt: now},
			{ID: 2, SummaryText: "Older digest", ModelUsed: "gpt-4o", GeneratedAt: now.AddDate(0, 0, -1), CreatedAt: now.AddDate(0, 0, -1)},
		},
		total: 2,
	}

	r := newTestSummaryRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/summaries", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res SummariesResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.NotEqual(t, nil, res.Latest)
	assert.Equal(t, "Latest digest", res.Latest.SummaryText)
	assert.Equal(t, 1, len(res.History))
	assert.Equal(t, "Older digest", res.History[0].SummaryText)
	assert.Equal(t, 2, res.Total)
}

func TestGetLatestSummary_NotFound(t *testing.T) {
	store := &fakeSummaryStore{}

	r := newTestSummaryRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/summaries/latest", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetLatestSummary_WithSources(t *testing.T) {
	now := time.Now()
	store := &fakeSummaryStore{
		latest:    &model.Summary{ID: 5, SummaryText: "Latest digest", GeneratedAt: now, CreatedAt: now},
		sourceIDs: []int64{11, 12, 13},
	}

	r := newTestSummaryRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/summaries/latest", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res SummaryResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, int64(5), res.ID)
	assert.Equal(t, "Latest digest", res.SummaryText)
	assert.Equal(t, []int64{11, 12, 13}, res.SourceIDs)
}
