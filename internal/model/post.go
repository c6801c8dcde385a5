package model

import "time"

// Post is the content item comments are attached to.
type Post struct {
	ID        string    `json:"id" yaml:"id"`
	UserID    string    `json:"user_id" yaml:"-"`
	Platform  Platform  `json:"platform" yaml:"platform"`
	Title     string    `json:"title" yaml:"title"`
	Caption   string    `json:"caption" yaml:"caption"`
	Thumbnail string    `json:"thumbnail" yaml:"thumbnail"`
	Date      string    `json:"date" yaml:"date"`
	Likes     int       `json:"likes" yaml:"likes"`
	Comments  int       `json:"comments" yaml:"comments"`
	Views     int       `json:"views" yaml:"views"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}
