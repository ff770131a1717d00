package news

import "time"

type Article struct {
	Title    string
	Summary  string
	Content  string
	ImageURL string
	Link     string
	Category string
	Source   string
	Date     time.Time
}

type NewsClient interface {
	Fetch(limit int) ([]Article, error)
	Name() string
}
