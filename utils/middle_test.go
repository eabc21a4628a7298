package utils

import (
	"LabSite/config"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func protectedRouter(verify BasicVerifyFunc, reached *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/protected", AuthMiddleware(verify), func(c *gin.Context) {
		*reached = true
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func TestAuthMiddlewareNoHeader(t *testing.T) {
	reached := false
	r := protectedRouter(nil, &reached)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expect 401, got %d", w.Code)
	}
	if reached {
		t.Fatal("handler must not run without credentials")
	}
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	reached := false
	r := protectedRouter(nil, &reached)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expect 401, got %d", w.Code)
	}
	if reached {
		t.Fatal("handler must not run with an invalid token")
	}
}

func TestAuthMiddlewareValidBearer(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	token, err := GenerateToken(1, "admin")
	if err != nil {
		t.Fatal(err)
	}

	reached := false
	r := protectedRouter(nil, &reached)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expect 200, got %d", w.Code)
	}
	if !reached {
		t.Fatal("handler should run with a valid token")
	}
}

func TestAuthMiddlewareBasic(t *testing.T) {
	verified := ""
	verify := func(username, password string) (uint64, bool) {
		verified = username + ":" + password
		return 1, username == "admin" && password == "secret"
	}

	reached := false
	r := protectedRouter(verify, &reached)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.SetBasicAuth("admin", "secret")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expect 200, got %d", w.Code)
	}
	if verified != "admin:secret" {
		t.Fatalf("verify saw %q", verified)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.SetBasicAuth("admin", "wrong")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expect 401 for bad basic credentials, got %d", w.Code)
	}
}
