package models

import "time"

// AuditModel is an append-only visit log entry. Metadata is a free-form
// string-keyed map with no schema enforcement.
type AuditModel struct {
	Base
	IP               string                 `json:"ip"               gorm:"index"`
	UserAgent        string                 `json:"userAgent"        gorm:"type:text"`
	Endpoint         string                 `json:"endpoint"`
	Method           string                 `json:"method"`
	Referrer         string                 `json:"referrer,omitempty"`
	ScreenResolution string                 `json:"screenResolution,omitempty"`
	Metadata         map[string]interface{} `json:"metadata"         gorm:"type:longtext;serializer:json"`
	VisitedAt        time.Time              `json:"visitedAt"        gorm:"index"`
}

func (AuditModel) TableName() string { return "audits" }
