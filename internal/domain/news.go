package domain

import (
	"time"
)

// NewsPost carries both language versions of a practice news entry. The
// English fields fall back to the German ones at creation time when left
// empty.
type NewsPost struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	TitleDe     string     `json:"title_de"`
	TitleEn     string     `json:"title_en"`
	ContentDe   string     `json:"content_de"`
	ContentEn   string     `json:"content_en"`
	ImageURL    *string    `json:"image_url,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CreateNewsPostDTO struct {
	Slug      string `json:"slug" binding:"required"`
	TitleDe   string `json:"title_de" binding:"required"`
	TitleEn   string `json:"title_en"`
	ContentDe string `json:"content_de" binding:"required"`
	ContentEn string `json:"content_en"`
	Published bool   `json:"published"`
}

type UpdateNewsPostDTO struct {
	Slug      *string `json:"slug,omitempty"`
	TitleDe   *string `json:"title_de,omitempty"`
	TitleEn   *string `json:"title_en,omitempty"`
	ContentDe *string `json:"content_de,omitempty"`
	ContentEn *string `json:"content_en,omitempty"`
	Published *bool   `json:"published,omitempty"`
}
