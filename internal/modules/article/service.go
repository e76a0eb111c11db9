package article

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/inkstone-blog/core/internal/models"
	"github.com/inkstone-blog/core/internal/pkg/apperr"
	"github.com/inkstone-blog/core/internal/pkg/pagination"
	"github.com/inkstone-blog/core/internal/pkg/readtime"
	"github.com/inkstone-blog/core/internal/pkg/response"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Service handles article business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Create validates the input, enforces slug uniqueness and derives the
// reading time before inserting.
func (s *Service) Create(dto *CreateArticleDTO) (*models.ArticleModel, error) {
	slug := strings.ToLower(strings.TrimSpace(dto.Slug))
	title := strings.TrimSpace(dto.Title)
	excerpt := strings.TrimSpace(dto.Excerpt)

	if title == "" || slug == "" || excerpt == "" || dto.Content == "" {
		return nil, apperr.Validation("title, slug, excerpt and content are required")
	}
	if err := validateFields(title, slug, excerpt); err != nil {
		return nil, err
	}

	taken, err := s.slugTaken(slug, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("Article with this slug already exists")
	}

	a := models.ArticleModel{
		Title:       title,
		Slug:        slug,
		Excerpt:     excerpt,
		Content:     dto.Content,
		CoverImage:  dto.CoverImage,
		Tags:        dto.Tags,
		ReadingTime: readtime.Minutes(dto.Content),
	}
	if a.Tags == nil {
		a.Tags = models.StringSlice{}
	}
	if dto.Published != nil {
		a.Published = *dto.Published
	}

	if err := s.db.Create(&a).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	return &a, nil
}

// List returns a page of articles plus pagination metadata. Public callers
// (includeUnpublished=false) only ever see published articles, regardless of
// any filter in the query.
func (s *Service) List(ctx context.Context, q pagination.Query, lq ListQuery, includeUnpublished bool) ([]models.ArticleModel, response.Pagination, error) {
	tx := s.db.Model(&models.ArticleModel{})

	if !includeUnpublished {
		tx = tx.Where("published = ?", true)
	} else if lq.Published != nil {
		tx = tx.Where("published = ?", *lq.Published)
	}

	if ids := splitIDs(lq.Tags); len(ids) > 0 {
		cond := s.db.Where("tags LIKE ?", containsPattern(ids[0]))
		for _, id := range ids[1:] {
			cond = cond.Or("tags LIKE ?", containsPattern(id))
		}
		tx = tx.Where(cond)
	}

	search := strings.TrimSpace(lq.Search)
	if search != "" {
		pat := "%" + search + "%"
		tx = tx.Where("title LIKE ? OR excerpt LIKE ? OR content LIKE ?", pat, pat, pat)
		// Title matches rank above excerpt matches, which rank above body matches.
		tx = tx.Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN title LIKE ? THEN 0 WHEN excerpt LIKE ? THEN 1 ELSE 2 END",
			Vars:               []interface{}{pat, pat},
			WithoutParentheses: true,
		}})
	}

	tx = tx.Order(sortClause(lq.SortBy, lq.SortOrder))

	var articles []models.ArticleModel
	pag, err := pagination.Paginate(ctx, tx, q, &articles)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return articles, pag, nil
}

// GetByID fetches a single article by ID (publish state ignored).
func (s *Service) GetByID(id string) (*models.ArticleModel, error) {
	var a models.ArticleModel
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Article not found")
		}
		return nil, apperr.Storage(err)
	}
	return &a, nil
}

// GetBySlug fetches a single article by slug. Public slug lookups require
// the article to be published.
func (s *Service) GetBySlug(slug string, mustBePublished bool) (*models.ArticleModel, error) {
	tx := s.db.Where("slug = ?", strings.ToLower(slug))
	if mustBePublished {
		tx = tx.Where("published = ?", true)
	}
	var a models.ArticleModel
	if err := tx.First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Article not found")
		}
		return nil, apperr.Storage(err)
	}
	return &a, nil
}

// Update applies the supplied fields only. A changed slug is re-checked for
// uniqueness excluding the article itself; changed content recomputes the
// reading time.
func (s *Service) Update(id string, dto *UpdateArticleDTO) (*models.ArticleModel, error) {
	a, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Slug != nil {
		slug := strings.ToLower(strings.TrimSpace(*dto.Slug))
		if slug != a.Slug {
			if !slugPattern.MatchString(slug) {
				return nil, apperr.Validation("slug must match [a-z0-9-]+")
			}
			taken, err := s.slugTaken(slug, a.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, apperr.Conflict("Article with this slug already exists")
			}
			updates["slug"] = slug
		}
	}
	if dto.Title != nil {
		title := strings.TrimSpace(*dto.Title)
		if title == "" || len(title) > 200 {
			return nil, apperr.Validation("title must be 1-200 characters")
		}
		updates["title"] = title
	}
	if dto.Excerpt != nil {
		excerpt := strings.TrimSpace(*dto.Excerpt)
		if len(excerpt) > 500 {
			return nil, apperr.Validation("excerpt must be at most 500 characters")
		}
		updates["excerpt"] = excerpt
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
		updates["reading_time"] = readtime.Minutes(*dto.Content)
	}
	if dto.CoverImage != nil {
		// JSON null decodes to a nil pointer and reads as absent, so an
		// empty string is the explicit clear signal.
		if *dto.CoverImage == "" {
			updates["cover_image"] = nil
		} else {
			updates["cover_image"] = dto.CoverImage
		}
	}
	if dto.Tags != nil {
		updates["tags"] = models.StringSlice(dto.Tags)
	}
	if dto.Published != nil {
		updates["published"] = *dto.Published
	}

	if len(updates) > 0 {
		if err := s.db.Model(a).Updates(updates).Error; err != nil {
			return nil, apperr.Storage(err)
		}
	}
	return s.GetByID(id)
}

// Delete hard-deletes an article by ID.
func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.ArticleModel{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Article not found")
	}
	return nil
}

// ResolveTags loads the tag documents referenced by the given articles,
// keyed by tag ID, for response shaping.
func (s *Service) ResolveTags(articles ...*models.ArticleModel) (map[string]models.TagModel, error) {
	idSet := map[string]struct{}{}
	for _, a := range articles {
		for _, id := range a.Tags {
			idSet[id] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return map[string]models.TagModel{}, nil
	}

	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	var tags []models.TagModel
	if err := s.db.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, apperr.Storage(err)
	}

	byID := make(map[string]models.TagModel, len(tags))
	for _, t := range tags {
		byID[t.ID] = t
	}
	return byID, nil
}

func (s *Service) slugTaken(slug, excludeID string) (bool, error) {
	tx := s.db.Model(&models.ArticleModel{}).Where("slug = ?", slug)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, apperr.Storage(err)
	}
	return count > 0, nil
}

func validateFields(title, slug, excerpt string) error {
	if len(title) > 200 {
		return apperr.Validation("title must be at most 200 characters")
	}
	if len(excerpt) > 500 {
		return apperr.Validation("excerpt must be at most 500 characters")
	}
	if !slugPattern.MatchString(slug) {
		return apperr.Validation("slug must match [a-z0-9-]+")
	}
	return nil
}

// containsPattern matches a tag ID inside the JSON-serialized tags column.
func containsPattern(id string) string {
	return `%"` + id + `"%`
}

func splitIDs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			ids = append(ids, v)
		}
	}
	return ids
}

func sortClause(sortBy, sortOrder string) string {
	column := "created_at"
	switch sortBy {
	case "updatedAt":
		column = "updated_at"
	case "title":
		column = "title"
	case "createdAt", "":
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}
	return column + " " + direction
}
