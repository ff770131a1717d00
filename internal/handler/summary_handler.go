package handler

import (
	"log/slog"
	"net/http"
	"time"

	"newsdigest/internal/model"

	"github.com/gin-gonic/gin"
)

type SummaryStore interface {
	GetSummaries(limit, offset int) ([]model.Summary, error)
	GetSummaryTotal() (int, error)
	GetLatestSummary() (*model.Summary, error)
	GetSourceIDs(summaryID int64) ([]int64, error)
}

type SummaryHandler struct {
	repository SummaryStore
}

func NewSummaryHandler(repository SummaryStore) *SummaryHandler {
	return &SummaryHandler{repository: repository}
}

func toSummaryResponse(s model.Summary) SummaryResponse {
	return SummaryResponse{
		ID:          s.ID,
		SummaryText: s.SummaryText,
		ModelUsed:   s.ModelUsed,
		GeneratedAt: s.GeneratedAt.Format("2006-01-02"),
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
	}
}

func (h *SummaryHandler) GetSummaries(c *gin.Context) {
	limit := getQueryInt("limit", 10, c)
	offset := getQueryInt("offset", 0, c)

	summaries, err := h.repository.GetSummaries(limit, offset)
	if err != nil {
		slog.Error("error fetching summaries", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetSummaryTotal()
	if err != nil {
		slog.Error("error fetching summary total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := SummariesResponse{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		History: []SummaryResponse{},
	}

	if len(summaries) > 0 {
		latest := toSummaryResponse(summaries[0])
		res.Latest = &latest
		for _, s := range summaries[1:] {
			res.History = append(res.History, toSummaryResponse(s))
		}
	}

	c.JSON(http.StatusOK, res)
}

func (h *SummaryHandler) GetLatestSummary(c *gin.Context) {
	summary, err := h.repository.GetLatestSummary()
	if err != nil {
		slog.Error("error fetching latest summary", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if summary == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No summary available"})
		return
	}

	sourceIDs, err := h.repository.GetSourceIDs(summary.ID)
	if err != nil {
		slog.Error("error fetching summary sources", "summary_id", summary.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := toSummaryResponse(*summary)
	res.SourceIDs = sourceIDs

	c.JSON(http.StatusOK, res)
}
