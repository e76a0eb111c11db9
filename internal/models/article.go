package models

// StringSlice is a []string that serializes as JSON in MySQL.
type StringSlice []string

// ArticleModel is a blog article. Tags holds the referenced tag IDs; the
// referenced tag documents are resolved at response time.
type ArticleModel struct {
	Base
	Title       string      `json:"title"       gorm:"size:200;not null"`
	Slug        string      `json:"slug"        gorm:"uniqueIndex;not null"`
	Excerpt     string      `json:"excerpt"     gorm:"size:500"`
	Content     string      `json:"content"     gorm:"type:longtext"`
	CoverImage  *string     `json:"coverImage"`
	Tags        StringSlice `json:"tags"        gorm:"type:json;serializer:json"`
	Published   bool        `json:"published"   gorm:"default:false;index"`
	ReadingTime int         `json:"readingTime" gorm:"default:0"`
}

func (ArticleModel) TableName() string { return "articles" }
