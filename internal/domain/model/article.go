package model

import (
	"time"
)

// Article is a single piece of content grouped under a parent topic.
// ParentSlug references ParentArticle.Slug by value; the link is checked
// explicitly on writes, not enforced by the database.
type Article struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	Slug       string    `json:"slug"`
	ParentSlug string    `json:"parent_slug"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ArticleSummary is the listing shape for a parent's children.
type ArticleSummary struct {
	Title     string    `json:"title"`
	Tags      []string  `json:"tags"`
	Slug      string    `json:"slug"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ParentArticle groups articles under a shared topic.
type ParentArticle struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
