package tag

import (
	"errors"
	"regexp"
	"strings"

	"github.com/inkstone-blog/core/internal/models"
	"github.com/inkstone-blog/core/internal/pkg/apperr"
	"gorm.io/gorm"
)

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9-]+$`)
	colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// CreateTagDTO is the request body for creating a tag.
type CreateTagDTO struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

// UpdateTagDTO is the request body for a partial tag update.
type UpdateTagDTO struct {
	Name  *string `json:"name"`
	Slug  *string `json:"slug"`
	Color *string `json:"color"`
}

// WithCount is a tag annotated with the number of articles referencing it.
// The count is computed on read and never persisted.
type WithCount struct {
	models.TagModel
	ArticleCount int64 `json:"articleCount"`
}

// Service handles tag business logic, including the tag↔article
// consistency rules.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Create inserts a tag after checking name-or-slug uniqueness.
func (s *Service) Create(dto *CreateTagDTO) (*models.TagModel, error) {
	name := strings.TrimSpace(dto.Name)
	slug := strings.ToLower(strings.TrimSpace(dto.Slug))
	if err := validateTagFields(name, slug, dto.Color); err != nil {
		return nil, err
	}

	taken, err := s.nameOrSlugTaken(name, slug, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("Tag with this name or slug already exists")
	}

	t := models.TagModel{Name: name, Slug: slug, Color: dto.Color}
	if t.Color == "" {
		t.Color = models.DefaultTagColor
	}
	if err := s.db.Create(&t).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	return &t, nil
}

// List returns all tags annotated with their article counts. For the public
// view only published articles are counted; admins see counts across all
// publish states. The counts are computed with one grouping pass over the
// live article tag sets, so they always reflect the current article set.
func (s *Service) List(publishedOnly bool) ([]WithCount, error) {
	var tags []models.TagModel
	if err := s.db.Order("created_at ASC").Find(&tags).Error; err != nil {
		return nil, apperr.Storage(err)
	}

	counts, err := s.countByTag(publishedOnly)
	if err != nil {
		return nil, err
	}

	out := make([]WithCount, len(tags))
	for i, t := range tags {
		out[i] = WithCount{TagModel: t, ArticleCount: counts[t.ID]}
	}
	return out, nil
}

// GetByID fetches a single tag by ID.
func (s *Service) GetByID(id string) (*models.TagModel, error) {
	var t models.TagModel
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Tag not found")
		}
		return nil, apperr.Storage(err)
	}
	return &t, nil
}

// Update applies the supplied fields, re-checking uniqueness for a changed
// name or slug while excluding the tag itself.
func (s *Service) Update(id string, dto *UpdateTagDTO) (*models.TagModel, error) {
	t, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	name, slug, color := t.Name, t.Slug, t.Color
	if dto.Name != nil {
		name = strings.TrimSpace(*dto.Name)
		updates["name"] = name
	}
	if dto.Slug != nil {
		slug = strings.ToLower(strings.TrimSpace(*dto.Slug))
		updates["slug"] = slug
	}
	if dto.Color != nil {
		color = *dto.Color
		updates["color"] = color
	}
	if err := validateTagFields(name, slug, color); err != nil {
		return nil, err
	}

	if dto.Name != nil || dto.Slug != nil {
		taken, err := s.nameOrSlugTaken(name, slug, t.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.Conflict("Tag with this name or slug already exists")
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(t).Updates(updates).Error; err != nil {
			return nil, apperr.Storage(err)
		}
	}
	return s.GetByID(id)
}

// Delete removes the tag, then strips its ID from every article's tag set.
// The two writes are sequential and not atomic: a failure after the first
// leaves dangling references, which is accepted best-effort behavior.
func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.TagModel{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Tag not found")
	}

	var articles []models.ArticleModel
	if err := s.db.Select("id", "tags").
		Where("tags LIKE ?", `%"`+id+`"%`).
		Find(&articles).Error; err != nil {
		return apperr.Storage(err)
	}

	for i := range articles {
		remaining := make(models.StringSlice, 0, len(articles[i].Tags))
		for _, tagID := range articles[i].Tags {
			if tagID != id {
				remaining = append(remaining, tagID)
			}
		}
		if err := s.db.Model(&models.ArticleModel{}).
			Where("id = ?", articles[i].ID).
			UpdateColumn("tags", remaining).Error; err != nil {
			return apperr.Storage(err)
		}
	}
	return nil
}

// countByTag groups the live article set by referenced tag ID in memory.
func (s *Service) countByTag(publishedOnly bool) (map[string]int64, error) {
	tx := s.db.Model(&models.ArticleModel{}).Select("id", "tags")
	if publishedOnly {
		tx = tx.Where("published = ?", true)
	}

	var articles []models.ArticleModel
	if err := tx.Find(&articles).Error; err != nil {
		return nil, apperr.Storage(err)
	}

	counts := map[string]int64{}
	for _, a := range articles {
		for _, tagID := range a.Tags {
			counts[tagID]++
		}
	}
	return counts, nil
}

func (s *Service) nameOrSlugTaken(name, slug, excludeID string) (bool, error) {
	tx := s.db.Model(&models.TagModel{}).Where("name = ? OR slug = ?", name, slug)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, apperr.Storage(err)
	}
	return count > 0, nil
}

func validateTagFields(name, slug, color string) error {
	if name == "" || len(name) > 50 {
		return apperr.Validation("name must be 1-50 characters")
	}
	if !slugPattern.MatchString(slug) {
		return apperr.Validation("slug must match [a-z0-9-]+")
	}
	if color != "" && !colorPattern.MatchString(color) {
		return apperr.Validation("color must be a #RRGGBB hex value")
	}
	return nil
}
