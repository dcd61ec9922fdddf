package db

import "gorm.io/gorm"

// Comment belongs to one post and one author. Comments are never edited;
// they are removed only when their post is deleted.
type Comment struct {
	gorm.Model
	AuthorID uint `gorm:"not null"`
	Author   User
	PostID   uint   `gorm:"not null"`
	Text     string `gorm:"type:text"`
}
