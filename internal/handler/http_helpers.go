package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(htmlrenderer.WithHardWraps(), htmlrenderer.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

const flashSessionKey = "flash"

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

func formatUint(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// setFlash queues a one-shot message for the next rendered page.
func setFlash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.Set(flashSessionKey, message)
	session.Save()
}

// takeFlash pops the queued message, if any.
func takeFlash(c *gin.Context) string {
	session := sessions.Default(c)
	raw := session.Get(flashSessionKey)
	if raw == nil {
		return ""
	}
	session.Delete(flashSessionKey)
	session.Save()
	message, _ := raw.(string)
	return message
}

// renderMarkdown converts an editor body to sanitized HTML for display.
func renderMarkdown(body string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(body), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(body))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

// pageData merges the per-request view state every template expects.
func (a *API) pageData(c *gin.Context, data gin.H) gin.H {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	user, authed := CurrentUser(c)
	payload["user"] = user
	payload["authed"] = authed
	payload["isAdmin"] = authed && user.IsAdmin()

	if _, exists := payload["flash"]; !exists {
		payload["flash"] = takeFlash(c)
	}
	return payload
}
