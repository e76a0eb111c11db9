package models

// DefaultTagColor is applied when a tag is created without an explicit color.
const DefaultTagColor = "#3B82F6"

// TagModel is a content tag. Name and slug are each globally unique.
type TagModel struct {
	Base
	Name  string `json:"name"  gorm:"size:50;uniqueIndex;not null"`
	Slug  string `json:"slug"  gorm:"uniqueIndex;not null"`
	Color string `json:"color" gorm:"size:7;default:'#3B82F6'"`
}

func (TagModel) TableName() string { return "tags" }
