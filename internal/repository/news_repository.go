package repository

import (
	"database/sql"
	"time"

	"newsdigest/internal/model"
)

type NewsRepository struct {
	db *sql.DB
}

func NewNewsRepository(db *sql.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// SaveNews inserts one article, deduplicating on link. Returns false when
// the link already exists.
func (r *NewsRepository) SaveNews(news *model.News) (bool, error) {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO news(title, summary, content, image_url, link, category, source, date)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (link) DO NOTHING
		RETURNING id
	`, news.Title, news.Summary, news.Content, news.ImageURL, news.Link, news.Category, news.Source, news.Date).Scan(&id)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	news.ID = id
	return true, nil
}

func (r *NewsRepository) GetNewsByDate(date time.Time) ([]model.News, error) {
	rows, err := r.db.Query(`
		SELECT id, title, content
		FROM news
		WHERE date = $1
		ORDER BY id ASC
	`, date.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var news []model.News
	for rows.Next() {
		var n model.News
		err := rows.Scan(&n.ID, &n.Title, &n.Content)
		if err != nil {
			return nil, err
		}
		news = append(news, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return news, nil
}

func (r *NewsRepository) GetFeed(limit, offset int) ([]model.News, error) {
	rows, err := r.db.Query(`
		SELECT id, title, summary, image_url, link, category, source, date
		FROM news
		ORDER BY date DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var news []model.News
	for rows.Next() {
		var n model.News
		err := rows.Scan(&n.ID, &n.Title, &n.Summary, &n.ImageURL, &n.Link, &n.Category, &n.Source, &n.Date)
		if err != nil {
			return nil, err
		}
		news = append(news, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return news, nil
}

func (r *NewsRepository) GetFeedTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM news`).Scan(&total)
	return total, err
}
