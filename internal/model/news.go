package model

import "time"

type News struct {
	ID       int64
	Title    string
	Summary  string
	Content  string
	ImageURL string
	Link     string
	Category string
	Source   string
	Date     time.Time
}
