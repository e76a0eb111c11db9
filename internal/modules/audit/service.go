package audit

import (
	"context"
	"time"

	"github.com/inkstone-blog/core/internal/models"
	"github.com/inkstone-blog/core/internal/pkg/apperr"
	"github.com/inkstone-blog/core/internal/pkg/pagination"
	"github.com/inkstone-blog/core/internal/pkg/response"
	"gorm.io/gorm"
)

// RecordDTO carries a visit event. Every field is optional; missing
// values fall back to "unknown".
type RecordDTO struct {
	IP               string                 `json:"ip"`
	UserAgent        string                 `json:"userAgent"`
	Endpoint         string                 `json:"endpoint"`
	Method           string                 `json:"method"`
	Referrer         string                 `json:"referrer"`
	ScreenResolution string                 `json:"screenResolution"`
	Metadata         map[string]interface{} `json:"metadata"`
}

// Service appends and lists visit records. Records are never updated
// or deleted.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Record appends one visit event and returns its id.
func (s *Service) Record(dto *RecordDTO) (*models.AuditModel, error) {
	a := models.AuditModel{
		IP:               orUnknown(dto.IP),
		UserAgent:        orUnknown(dto.UserAgent),
		Endpoint:         orUnknown(dto.Endpoint),
		Method:           orUnknown(dto.Method),
		Referrer:         dto.Referrer,
		ScreenResolution: dto.ScreenResolution,
		Metadata:         dto.Metadata,
		VisitedAt:        time.Now(),
	}
	if err := s.db.Create(&a).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	return &a, nil
}

// List returns visit records newest first.
func (s *Service) List(ctx context.Context, q pagination.Query) ([]models.AuditModel, response.Pagination, error) {
	tx := s.db.Model(&models.AuditModel{}).Order("visited_at DESC")

	records := []models.AuditModel{}
	pg, err := pagination.Paginate(ctx, tx, q, &records)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return records, pg, nil
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
