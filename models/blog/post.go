package blog

import (
	"time"

	"travel-booking/models"
)

// Post is a blog article; Content holds markdown source
type Post struct {
	models.Base
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Slug        string     `gorm:"type:varchar(255);not null" json:"slug"`
	Excerpt     string     `gorm:"type:text" json:"excerpt"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Author      string     `gorm:"type:varchar(255)" json:"author"`
	Category    string     `gorm:"type:varchar(100)" json:"category"`
	ImageURL    *string    `gorm:"type:varchar(2048)" json:"image_url"`
	PublishedAt *time.Time `json:"published_at"`
}

func (Post) TableName() string {
	return "blog_posts"
}
