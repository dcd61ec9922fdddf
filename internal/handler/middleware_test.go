package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/inkstream/internal/db"
)

func adminGuardStatus(t *testing.T, user *db.User) int {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/new-post", nil)
	if user != nil {
		c.Set(currentUserContextKey, *user)
	}

	AdminRequired()(c)
	return w.Code
}

func TestAdminRequiredRejectsAnonymous(t *testing.T) {
	if code := adminGuardStatus(t, nil); code != http.StatusForbidden {
		t.Fatalf("expected 403 for anonymous, got %d", code)
	}
}

func TestAdminRequiredRejectsMember(t *testing.T) {
	member := db.User{Role: db.RoleMember}
	if code := adminGuardStatus(t, &member); code != http.StatusForbidden {
		t.Fatalf("expected 403 for member, got %d", code)
	}
}

func TestAdminRequiredAllowsAdmin(t *testing.T) {
	admin := db.User{Role: db.RoleAdmin}
	if code := adminGuardStatus(t, &admin); code == http.StatusForbidden {
		t.Fatal("expected admin to pass the guard")
	}
}

func TestCurrentUserAnonymousMarker(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if _, ok := CurrentUser(c); ok {
		t.Fatal("expected anonymous marker without a session user")
	}

	c.Set(currentUserContextKey, db.User{Name: "A"})
	user, ok := CurrentUser(c)
	if !ok {
		t.Fatal("expected authenticated marker")
	}
	if user.Name != "A" {
		t.Fatalf("unexpected user %+v", user)
	}
}
