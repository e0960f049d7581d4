package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestGetIdentity_AuthenticatedContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	userID := uuid.New()
	c.Set(ContextUserIDKey, userID)
	c.Set(ContextRolesKey, []string{"admin", "creator"})

	id := GetIdentity(c)
	if !id.IsAuthenticated() {
		t.Fatal("expected authenticated identity")
	}
	if id.UserID() != userID {
		t.Fatalf("expected user id %s, got %s", userID, id.UserID())
	}
	if !id.HasRole("admin") || id.HasRole("support") {
		t.Fatalf("unexpected role set: %v", id.Roles())
	}
}

func TestGetIdentity_MissingUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if GetIdentity(c).IsAuthenticated() {
		t.Fatal("expected unauthenticated identity for an empty context")
	}
}

func TestMustGetIdentity_AbortsWhenUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	if id := MustGetIdentity(c); id != nil {
		t.Fatalf("expected nil identity, got %v", id)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
