package admin

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestUpdateJobServedOverPatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubJobService{}
	ctrl := NewJobAdminController(svc)

	router := gin.New()
	router.PATCH("/userjobs/:id", ctrl.UpdateJob)

	body := strings.NewReader(`{"title": "Senior Backend Engineer"}`)
	req := httptest.NewRequest(http.MethodPatch, "/userjobs/12", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if svc.updatedID != 12 {
		t.Errorf("updated job id = %d, want 12", svc.updatedID)
	}
	if svc.updatedReq.Title == nil || *svc.updatedReq.Title != "Senior Backend Engineer" {
		t.Errorf("title not carried through: %+v", svc.updatedReq)
	}
}

func TestUpdateJobRejectsBadID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubJobService{}
	ctrl := NewJobAdminController(svc)

	router := gin.New()
	router.PATCH("/userjobs/:id", ctrl.UpdateJob)

	req := httptest.NewRequest(http.MethodPatch, "/userjobs/apple", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
