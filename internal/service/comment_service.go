package service

import (
	"errors"
	"strings"

	"github.com/inkstream/internal/db"
	"gorm.io/gorm"
)

var ErrEmptyComment = errors.New("comment text is empty")

// CommentService wraps comment persistence. Authorization lives with the
// callers: handlers reject anonymous posters before Create runs.
type CommentService struct {
	db *gorm.DB
}

// NewCommentService creates a CommentService instance.
func NewCommentService(gdb *gorm.DB) *CommentService {
	return &CommentService{db: gdb}
}

// ListForPost returns the comments of one post in insertion order with
// authors preloaded.
func (s *CommentService) ListForPost(postID uint) ([]db.Comment, error) {
	var comments []db.Comment
	if err := s.db.Preload("Author").
		Where("post_id = ?", postID).
		Order("id asc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Create persists a comment by authorID under postID.
func (s *CommentService) Create(text string, postID, authorID uint) (*db.Comment, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyComment
	}

	comment := db.Comment{
		AuthorID: authorID,
		PostID:   postID,
		Text:     trimmed,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}
