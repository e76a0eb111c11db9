package models

// SettingsKey is the fixed discriminator locating the settings singleton.
const SettingsKey = "main"

// SocialLinks holds optional profile links, embedded as JSON.
type SocialLinks struct {
	Twitter  *string `json:"twitter"`
	GitHub   *string `json:"github"`
	LinkedIn *string `json:"linkedin"`
}

// SettingsModel is the singleton blog settings document, keyed by SettingsKey.
type SettingsModel struct {
	Base
	Key             string      `json:"-"               gorm:"uniqueIndex;not null"`
	BlogTitle       string      `json:"blogTitle"`
	BlogDescription string      `json:"blogDescription"`
	AuthorName      string      `json:"authorName"`
	AuthorBio       string      `json:"authorBio"`
	AuthorAvatar    *string     `json:"authorAvatar"`
	SocialLinks     SocialLinks `json:"socialLinks"     gorm:"serializer:json"`
}

func (SettingsModel) TableName() string { return "settings" }

// DefaultSettings returns the singleton created on first read.
func DefaultSettings() SettingsModel {
	return SettingsModel{
		Key:             SettingsKey,
		BlogTitle:       "My Tech Blog",
		BlogDescription: "A blog about software engineering and technology.",
		AuthorName:      "Author Name",
	}
}
