package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sahajranjan/jobportal/config"
	"github.com/sahajranjan/jobportal/internal/model"
)

func newManager(secret string) *TokenManager {
	return NewTokenManager(&config.Config{JWTSecret: secret})
}

func TestSignParseRoundtrip(t *testing.T) {
	tm := newManager("test-secret")

	token, err := tm.Sign(42, model.RoleAdmin, "admin@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	claims, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != string(model.RoleAdmin) {
		t.Errorf("Role = %q, want admin", claims.Role)
	}
	if claims.ID == "" {
		t.Error("expected a jti claim")
	}
}

func TestParseRejectsForeignSecret(t *testing.T) {
	token, err := newManager("secret-a").Sign(1, model.RoleCandidate, "a@example.com", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := newManager("secret-b").Parse(token); err == nil {
		t.Error("token signed with another secret must not parse")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tm := newManager("test-secret")
	token, err := tm.Sign(1, model.RoleCandidate, "a@example.com", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tm.Parse(token); err == nil {
		t.Error("expired token must not parse")
	}
}

func requestThrough(handlers ...gin.HandlerFunc) (*httptest.ResponseRecorder, func(*http.Request)) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/probe", handlers...)
	rec := httptest.NewRecorder()
	return rec, func(req *http.Request) { router.ServeHTTP(rec, req) }
}

func TestRequireAuth(t *testing.T) {
	tm := newManager("test-secret")
	token, err := tm.Sign(7, model.RoleCandidate, "ada@example.com", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	ok := func(ctx *gin.Context) {
		claims, present := ClaimsFrom(ctx)
		if !present || claims.UserID != 7 {
			t.Error("claims missing downstream of RequireAuth")
		}
		ctx.Status(http.StatusNoContent)
	}

	rec, serve := requestThrough(tm.RequireAuth(), ok)
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	serve(req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("with token: status = %d, want 204", rec.Code)
	}

	rec, serve = requestThrough(tm.RequireAuth(), ok)
	serve(httptest.NewRequest(http.MethodGet, "/probe", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("without token: status = %d, want 401", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	tm := newManager("test-secret")
	candidateToken, err := tm.Sign(7, model.RoleCandidate, "ada@example.com", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	rec, serve := requestThrough(tm.RequireAuth(), RequireRole(model.RoleAdmin), func(ctx *gin.Context) {
		ctx.Status(http.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+candidateToken)
	serve(req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("candidate against admin route: status = %d, want 403", rec.Code)
	}
}

func TestOptionalAuthPassesAnonymous(t *testing.T) {
	tm := newManager("test-secret")

	rec, serve := requestThrough(tm.OptionalAuth(), func(ctx *gin.Context) {
		if id := UserIDFrom(ctx); id != nil {
			t.Error("anonymous request must not carry a user id")
		}
		ctx.Status(http.StatusNoContent)
	})
	serve(httptest.NewRequest(http.MethodGet, "/probe", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}
