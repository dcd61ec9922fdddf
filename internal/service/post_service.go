package service

import (
	"errors"
	"strings"
	"time"

	"github.com/inkstream/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrTitleTaken   = errors.New("a post with that title already exists")
)

// displayDateFormat renders dates the way they appear on the page,
// e.g. "August 31, 2026".
const displayDateFormat = "January 02, 2006"

// PostService wraps post related database operations.
type PostService struct {
	db *gorm.DB
}

// PostInput represents fields accepted when creating or updating a post.
type PostInput struct {
	Title    string
	Subtitle string
	Body     string
	ImgURL   string
	AuthorID uint
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// ListAll returns every post in insertion order with authors preloaded.
func (s *PostService) ListAll() ([]db.Post, error) {
	var posts []db.Post
	if err := s.db.Preload("Author").Order("id asc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Get fetches a post by id with its author preloaded.
func (s *PostService) Get(id uint) (*db.Post, error) {
	var post db.Post
	if err := s.db.Preload("Author").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create persists a new post stamped with today's display date. Title
// collisions fail with ErrTitleTaken; the unique index resolves races
// between concurrent writers.
func (s *PostService) Create(input PostInput) (*db.Post, error) {
	title := strings.TrimSpace(input.Title)
	if taken, err := s.titleTaken(title, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrTitleTaken
	}

	post := db.Post{
		AuthorID: input.AuthorID,
		Title:    title,
		Subtitle: strings.TrimSpace(input.Subtitle),
		Date:     time.Now().Format(displayDateFormat),
		Body:     input.Body,
		ImgURL:   strings.TrimSpace(input.ImgURL),
	}
	if err := s.db.Create(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTitleTaken
		}
		return nil, err
	}
	return &post, nil
}

// Update overwrites the mutable fields of an existing post. The display
// date keeps its original value.
func (s *PostService) Update(id uint, input PostInput) (*db.Post, error) {
	var existing db.Post
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if taken, err := s.titleTaken(title, existing.ID); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrTitleTaken
	}

	existing.Title = title
	existing.Subtitle = strings.TrimSpace(input.Subtitle)
	existing.Body = input.Body
	existing.ImgURL = strings.TrimSpace(input.ImgURL)
	existing.AuthorID = input.AuthorID

	if err := s.db.Save(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTitleTaken
		}
		return nil, err
	}
	return &existing, nil
}

// Delete removes a post and its comments in one transaction.
func (s *PostService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post db.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		if err := tx.Where("post_id = ?", post.ID).Delete(&db.Comment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&post).Error
	})
}

func (s *PostService) titleTaken(title string, excludeID uint) (bool, error) {
	query := s.db.Model(&db.Post{}).Where("title = ?", title)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
