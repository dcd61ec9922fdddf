package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/inkstream/internal/db"
	"github.com/inkstream/internal/service"
)

const (
	sessionUserKey        = "user_id"
	currentUserContextKey = "__current_user"
)

// LoadCurrentUser resolves the session's user once per request and stores
// it on the gin context. A stale session pointing at a missing user is
// cleared rather than treated as authenticated.
func (a *API) LoadCurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		raw := session.Get(sessionUserKey)
		userID, ok := raw.(uint)
		if !ok {
			c.Next()
			return
		}

		user, err := a.users.FindByID(userID)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				session.Clear()
				session.Save()
			}
			c.Next()
			return
		}

		c.Set(currentUserContextKey, *user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user for this request. The second
// return value is false for anonymous visitors; callers must not touch the
// user value in that case.
func CurrentUser(c *gin.Context) (db.User, bool) {
	raw, exists := c.Get(currentUserContextKey)
	if !exists {
		return db.User{}, false
	}
	user, ok := raw.(db.User)
	return user, ok
}

// AuthRequired redirects anonymous visitors to the login page.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			setFlash(c, "You need to Register or Login to Post a Comment")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired rejects everyone but the admin-role account with 403,
// authenticated or not.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin() {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
