package service

import (
	"errors"
	"strings"

	"github.com/inkstream/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("password does not match")
)

// UserService wraps account lookup, registration and credential checks.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a UserService instance.
func NewUserService(gdb *gorm.DB) *UserService {
	return &UserService{db: gdb}
}

// FindByEmail returns the user registered under email.
func (s *UserService) FindByEmail(email string) (*db.User, error) {
	var user db.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID materializes a user from its id, typically the one stored in
// the session.
func (s *UserService) FindByID(id uint) (*db.User, error) {
	var user db.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Register hashes the password and inserts a member account. The unique
// index on email backstops the duplicate check under concurrent
// registrations.
func (s *UserService) Register(email, password, name string) (*db.User, error) {
	trimmedEmail := strings.TrimSpace(email)

	if _, err := s.FindByEmail(trimmedEmail); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := db.User{
		Email:        trimmedEmail,
		PasswordHash: string(hashed),
		Name:         strings.TrimSpace(name),
		Role:         db.RoleMember,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies email plus password. Unknown emails and wrong
// passwords fail with distinct errors so the login page can word its
// flash messages the way the registration flow expects.
func (s *UserService) Authenticate(email, password string) (*db.User, error) {
	user, err := s.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
