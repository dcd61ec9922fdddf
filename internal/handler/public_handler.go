package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/inkstream/internal/service"
)

// ShowAbout renders the static about page.
func (a *API) ShowAbout(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", a.pageData(c, gin.H{"title": "About"}))
}

// ShowContact renders the contact form.
func (a *API) ShowContact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", a.pageData(c, gin.H{"title": "Contact"}))
}

// SubmitContact relays the form as mail to the operator. A relay failure
// is shown to the visitor instead of a false success.
func (a *API) SubmitContact(c *gin.Context) {
	msg := service.ContactMessage{
		Name:    strings.TrimSpace(c.PostForm("name")),
		Email:   strings.TrimSpace(c.PostForm("email")),
		Phone:   strings.TrimSpace(c.PostForm("phone")),
		Message: strings.TrimSpace(c.PostForm("message")),
	}

	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		c.HTML(http.StatusBadRequest, "contact.html", a.pageData(c, gin.H{
			"title": "Contact",
			"flash": "Name, email and message are required.",
		}))
		return
	}

	if err := a.contact.Send(msg); err != nil {
		setFlash(c, "Sorry, your message could not be sent right now.")
		c.Redirect(http.StatusFound, "/contact")
		return
	}

	setFlash(c, "Mail sent, we will be in touch with you soon.")
	c.Redirect(http.StatusFound, "/contact")
}
