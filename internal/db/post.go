package db

import "gorm.io/gorm"

// Post is a published blog entry. Date holds the human-readable publication
// date shown on the page, not a machine timestamp.
type Post struct {
	gorm.Model
	AuthorID uint `gorm:"not null"`
	Author   User
	Title    string `gorm:"uniqueIndex;not null"`
	Subtitle string
	Date     string `gorm:"not null"`
	Body     string `gorm:"type:text"`
	ImgURL   string
}
