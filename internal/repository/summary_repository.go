package repository

import (
	"database/sql"
	"time"

	"newsdigest/internal/model"

	"github.com/lib/pq"
)

type SummaryRepository struct {
	db *sql.DB
}

func NewSummaryRepository(db *sql.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// SaveSummaryWithSources inserts the summary row and one source link per
// news ID in a single transaction, so a mid-insert failure leaves no
// orphaned summary behind. An empty ID set inserts zero link rows.
func (r *SummaryRepository) SaveSummaryWithSources(summary *model.Summary, newsIDs []int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO summary(summary_text, model_used, generated_at)
		VALUES($1, $2, $3)
		RETURNING id
	`, summary.SummaryText, summary.ModelUsed, summary.GeneratedAt).Scan(&summary.ID)
	if err != nil {
		return err
	}

	if len(newsIDs) > 0 {
		_, err = tx.Exec(`
			INSERT INTO news_summary_sources(summary_id, news_id)
			SELECT $1, unnest($2::bigint[])
		`, summary.ID, pq.Array(newsIDs))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *SummaryRepository) HasSummaryForDate(date time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM summary WHERE generated_at::date = $1)
	`, date.Format("2006-01-02")).Scan(&exists)
	return exists, err
}

func (r *SummaryRepository) GetLatestSummary() (*model.Summary, error) {
	var s model.Summary
	err := r.db.QueryRow(`
		SELECT id, summary_text, model_used, generated_at, created_at
		FROM summary
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&s.ID, &s.SummaryText, &s.ModelUsed, &s.GeneratedAt, &s.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *SummaryRepository) GetSummaries(limit, offset int) ([]model.Summary, error) {
	rows, err := r.db.Query(`
		SELECT id, summary_text, model_used, generated_at, created_at
		FROM summary
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []model.Summary
	for rows.Next() {
		var s model.Summary
		err := rows.Scan(&s.ID, &s.SummaryText, &s.ModelUsed, &s.GeneratedAt, &s.CreatedAt)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func (r *SummaryRepository) GetSummaryTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM summary`).Scan(&total)
	return total, err
}

func (r *SummaryRepository) GetSourceIDs(summaryID int64) ([]int64, error) {
	rows, err := r.db.Query(`
		SELECT news_id FROM news_summary_sources
		WHERE summary_id = $1
		ORDER BY news_id ASC
	`, summaryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
