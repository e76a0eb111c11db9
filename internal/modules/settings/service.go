package settings

import (
	"errors"

	"github.com/inkstone-blog/core/internal/models"
	"github.com/inkstone-blog/core/internal/pkg/apperr"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpdateSettingsDTO is a partial update; only supplied fields change.
// SocialLinks is merged key-by-key, never replaced wholesale.
type UpdateSettingsDTO struct {
	BlogTitle       *string         `json:"blogTitle"`
	BlogDescription *string         `json:"blogDescription"`
	AuthorName      *string         `json:"authorName"`
	AuthorBio       *string         `json:"authorBio"`
	AuthorAvatar    *string         `json:"authorAvatar"`
	SocialLinks     *SocialLinksDTO `json:"socialLinks"`
}

// SocialLinksDTO mirrors models.SocialLinks with per-key presence.
type SocialLinksDTO struct {
	Twitter  *string `json:"twitter"`
	GitHub   *string `json:"github"`
	LinkedIn *string `json:"linkedin"`
}

// Service manages the settings singleton.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Get returns the singleton, creating it with defaults on first read.
// Idempotent: subsequent calls return the same document.
func (s *Service) Get() (*models.SettingsModel, error) {
	var settings models.SettingsModel
	err := s.db.Where("`key` = ?", models.SettingsKey).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Storage(err)
	}

	settings = models.DefaultSettings()
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}).Create(&settings).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	// Re-read to cover a concurrent first reader winning the insert.
	if err := s.db.Where("`key` = ?", models.SettingsKey).First(&settings).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	return &settings, nil
}

// Update upsert-merges the partial update onto the singleton.
func (s *Service) Update(dto *UpdateSettingsDTO) (*models.SettingsModel, error) {
	current, err := s.Get()
	if err != nil {
		return nil, err
	}

	if dto.BlogTitle != nil {
		current.BlogTitle = *dto.BlogTitle
	}
	if dto.BlogDescription != nil {
		current.BlogDescription = *dto.BlogDescription
	}
	if dto.AuthorName != nil {
		current.AuthorName = *dto.AuthorName
	}
	if dto.AuthorBio != nil {
		current.AuthorBio = *dto.AuthorBio
	}
	if dto.AuthorAvatar != nil {
		current.AuthorAvatar = dto.AuthorAvatar
	}
	if dto.SocialLinks != nil {
		if dto.SocialLinks.Twitter != nil {
			current.SocialLinks.Twitter = dto.SocialLinks.Twitter
		}
		if dto.SocialLinks.GitHub != nil {
			current.SocialLinks.GitHub = dto.SocialLinks.GitHub
		}
		if dto.SocialLinks.LinkedIn != nil {
			current.SocialLinks.LinkedIn = dto.SocialLinks.LinkedIn
		}
	}

	if err := s.db.Save(current).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	return current, nil
}
