package handler

import (
	"github.com/inkstream/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db       *gorm.DB
	users    *service.UserService
	posts    *service.PostService
	comments *service.CommentService
	contact  *service.ContactService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(db *gorm.DB, contact *service.ContactService) *API {
	return &API{
		db:       db,
		users:    service.NewUserService(db),
		posts:    service.NewPostService(db),
		comments: service.NewCommentService(db),
		contact:  contact,
	}
}
