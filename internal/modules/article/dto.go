package article

import (
	"time"

	"github.com/inkstone-blog/core/internal/models"
)

// CreateArticleDTO is the request body for creating an article.
type CreateArticleDTO struct {
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	CoverImage *string  `json:"coverImage"`
	Tags       []string `json:"tags"`
	Published  *bool    `json:"published"`
}

// UpdateArticleDTO is the request body for a partial update; only supplied
// fields are applied.
type UpdateArticleDTO struct {
	Title      *string  `json:"title"`
	Slug       *string  `json:"slug"`
	Excerpt    *string  `json:"excerpt"`
	Content    *string  `json:"content"`
	CoverImage *string  `json:"coverImage"`
	Tags       []string `json:"tags"`
	Published  *bool    `json:"published"`
}

// ListQuery holds query params for listing articles.
type ListQuery struct {
	Search    string `form:"search"`
	Tags      string `form:"tags"` // comma-separated tag IDs
	Published *bool  `form:"published"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

// Response is the API shape for an article, with tag references resolved to
// full tag objects.
type Response struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Slug        string            `json:"slug"`
	Excerpt     string            `json:"excerpt"`
	Content     string            `json:"content"`
	CoverImage  *string           `json:"coverImage"`
	Tags        []models.TagModel `json:"tags"`
	Published   bool              `json:"published"`
	ReadingTime int               `json:"readingTime"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func toResponse(a *models.ArticleModel, tagsByID map[string]models.TagModel) Response {
	tags := make([]models.TagModel, 0, len(a.Tags))
	for _, id := range a.Tags {
		if t, ok := tagsByID[id]; ok {
			tags = append(tags, t)
		}
	}
	return Response{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		CoverImage:  a.CoverImage,
		Tags:        tags,
		Published:   a.Published,
		ReadingTime: a.ReadingTime,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
