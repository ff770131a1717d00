package model

import "time"

type Summary struct {
	ID          int64
	SummaryText string
	ModelUsed   string
	GeneratedAt time.Time
	CreatedAt   time.Time
}

type SummarySource struct {
	SummaryID int64
	NewsID    int64
}
