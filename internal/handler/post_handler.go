package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/inkstream/internal/service"
)

// ShowHome renders the public home page with every post.
func (a *API) ShowHome(c *gin.Context) {
	posts, err := a.posts.ListAll()
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", a.pageData(c, gin.H{
		"title": "Home",
		"posts": posts,
	}))
}

// ShowPost renders one post with its rendered body and comments.
func (a *API) ShowPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	post, err := a.posts.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	comments, err := a.comments.ListForPost(post.ID)
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "post.html", a.pageData(c, gin.H{
		"title":    post.Title,
		"post":     post,
		"body":     renderMarkdown(post.Body),
		"comments": comments,
	}))
}

// AddComment stores a comment by the authenticated user and re-renders
// the post page. AuthRequired has already turned anonymous posters away.
func (a *API) AddComment(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	post, err := a.posts.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	user, ok := CurrentUser(c)
	if !ok {
		setFlash(c, "You need to Register or Login to Post a Comment")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if _, err := a.comments.Create(c.PostForm("comment"), post.ID, user.ID); err != nil {
		if errors.Is(err, service.ErrEmptyComment) {
			setFlash(c, "Comment text is required.")
			c.Redirect(http.StatusFound, "/post/"+c.Param("id"))
			return
		}
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.Redirect(http.StatusFound, "/post/"+c.Param("id"))
}

// ShowNewPost renders the empty post form.
func (a *API) ShowNewPost(c *gin.Context) {
	c.HTML(http.StatusOK, "make-post.html", a.pageData(c, gin.H{
		"title":  "New Post",
		"isEdit": false,
	}))
}

// CreatePost stores a new post authored by the admin.
func (a *API) CreatePost(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	input, ok := a.bindPostForm(c)
	if !ok {
		return
	}
	input.AuthorID = user.ID

	if _, err := a.posts.Create(input); err != nil {
		if errors.Is(err, service.ErrTitleTaken) {
			c.HTML(http.StatusOK, "make-post.html", a.pageData(c, gin.H{
				"title":  "New Post",
				"isEdit": false,
				"form":   input,
				"flash":  "A post with that title already exists.",
			}))
			return
		}
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// ShowEditPost renders the post form pre-filled with an existing post.
func (a *API) ShowEditPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	post, err := a.posts.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "make-post.html", a.pageData(c, gin.H{
		"title":  "Edit Post",
		"isEdit": true,
		"post":   post,
		"form": service.PostInput{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			Body:     post.Body,
			ImgURL:   post.ImgURL,
		},
	}))
}

// UpdatePost overwrites a post's mutable fields, keeping its date.
func (a *API) UpdatePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	user, ok := CurrentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	input, ok := a.bindPostForm(c)
	if !ok {
		return
	}
	input.AuthorID = user.ID

	post, err := a.posts.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, service.ErrTitleTaken):
			c.HTML(http.StatusOK, "make-post.html", a.pageData(c, gin.H{
				"title":  "Edit Post",
				"isEdit": true,
				"form":   input,
				"flash":  "A post with that title already exists.",
			}))
		default:
			c.AbortWithError(http.StatusInternalServerError, err)
		}
		return
	}

	c.Redirect(http.StatusFound, "/post/"+formatUint(post.ID))
}

// DeletePost removes a post and its comments, then returns home.
func (a *API) DeletePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	if err := a.posts.Delete(id); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// bindPostForm validates the post form before any repository call runs.
func (a *API) bindPostForm(c *gin.Context) (service.PostInput, bool) {
	input := service.PostInput{
		Title:    strings.TrimSpace(c.PostForm("title")),
		Subtitle: strings.TrimSpace(c.PostForm("subtitle")),
		Body:     c.PostForm("body"),
		ImgURL:   strings.TrimSpace(c.PostForm("img_url")),
	}

	if input.Title == "" || strings.TrimSpace(input.Body) == "" {
		c.HTML(http.StatusBadRequest, "make-post.html", a.pageData(c, gin.H{
			"title": "New Post",
			"form":  input,
			"flash": "Title and body are required.",
		}))
		return service.PostInput{}, false
	}
	return input, true
}
