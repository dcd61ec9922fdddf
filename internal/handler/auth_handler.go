package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/inkstream/internal/db"
	"github.com/inkstream/internal/service"
)

// ShowRegisterPage renders the registration form.
func (a *API) ShowRegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", a.pageData(c, gin.H{"title": "Register"}))
}

// Register creates a member account and signs the new user in.
func (a *API) Register(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	name := strings.TrimSpace(c.PostForm("name"))

	if email == "" || password == "" || name == "" {
		c.HTML(http.StatusBadRequest, "register.html", a.pageData(c, gin.H{
			"title": "Register",
			"flash": "All fields are required.",
		}))
		return
	}

	user, err := a.users.Register(email, password, name)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			setFlash(c, "You've already signed up with that email, log in instead!")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	if err := a.startSession(c, user); err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// ShowLoginPage renders the login form.
func (a *API) ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", a.pageData(c, gin.H{"title": "Login"}))
}

// Login verifies credentials and binds the session to the user. Unknown
// emails and wrong passwords get distinct flash messages, matching the
// registration flow's redirects.
func (a *API) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	user, err := a.users.Authenticate(email, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			setFlash(c, "That email does not exist, please register.")
			c.Redirect(http.StatusFound, "/register")
		case errors.Is(err, service.ErrInvalidCredentials):
			setFlash(c, "Password incorrect, please try again.")
			c.Redirect(http.StatusFound, "/login")
		default:
			c.AbortWithError(http.StatusInternalServerError, err)
		}
		return
	}

	if err := a.startSession(c, user); err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Logout clears the session unconditionally.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}

func (a *API) startSession(c *gin.Context, user *db.User) error {
	session := sessions.Default(c)
	session.Set(sessionUserKey, user.ID)
	return session.Save()
}
