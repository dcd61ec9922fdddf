package db

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User roles. Exactly one account carries RoleAdmin in practice; it is
// seeded from configuration, not derived from insertion order.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User is a registered account.
type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string `gorm:"not null"`
	Role         string `gorm:"not null;default:member"`
}

// IsAdmin reports whether the user may manage posts.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// EnsureAdmin idempotently creates the admin account. If email or password
// is empty, or an admin already exists, nothing happens.
func EnsureAdmin(email, password, name string) error {
	trimmedEmail := strings.TrimSpace(email)
	trimmedPassword := strings.TrimSpace(password)
	if trimmedEmail == "" || trimmedPassword == "" {
		return nil
	}

	if DB == nil {
		return errors.New("database not initialized")
	}

	var existing User
	err := DB.Where("role = ?", RoleAdmin).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(trimmedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	displayName := strings.TrimSpace(name)
	if displayName == "" {
		displayName = "Admin"
	}

	return DB.Create(&User{
		Email:        trimmedEmail,
		PasswordHash: string(hashed),
		Name:         displayName,
		Role:         RoleAdmin,
	}).Error
}
