package blog

import "time"

// Post is the API shape of a blog article
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title" validate:"required,max=255"`
	Slug        string     `json:"slug" validate:"required,max=255"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content" validate:"required"`
	Author      string     `json:"author" validate:"max=255"`
	Category    string     `json:"category" validate:"max=100"`
	ImageURL    *string    `json:"imageUrl,omitempty" validate:"omitempty,url"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

type Patch struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Slug        *string    `json:"slug" validate:"omitempty,min=1,max=255"`
	Excerpt     *string    `json:"excerpt"`
	Content     *string    `json:"content" validate:"omitempty,min=1"`
	Author      *string    `json:"author" validate:"omitempty,max=255"`
	Category    *string    `json:"category" validate:"omitempty,max=100"`
	ImageURL    *string    `json:"imageUrl" validate:"omitempty,url"`
	PublishedAt *time.Time `json:"publishedAt"`
}

// View is a post with its markdown body rendered to HTML
type View struct {
	Post
	ContentHTML string `json:"contentHtml"`
}
