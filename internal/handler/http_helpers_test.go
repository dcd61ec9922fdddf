package handler

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRenderMarkdownConvertsAndSanitizes(t *testing.T) {
	html := string(renderMarkdown("# Heading\n\nSome **bold** text.\n\n<script>alert(1)</script>"))

	if !strings.Contains(html, "<h1>") {
		t.Fatalf("expected rendered heading, got %q", html)
	}
	if !strings.Contains(html, "<strong>") {
		t.Fatalf("expected rendered emphasis, got %q", html)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("expected script tags to be stripped, got %q", html)
	}
}

func TestParseUintParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, err := parseUintParam(c, "id")
	if err != nil {
		t.Fatalf("parseUintParam returned error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected 42, got %d", id)
	}

	c.Params = gin.Params{{Key: "id", Value: "not-a-number"}}
	if _, err := parseUintParam(c, "id"); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
}

func TestFormatUint(t *testing.T) {
	if got := formatUint(7); got != "7" {
		t.Fatalf("expected \"7\", got %q", got)
	}
}
