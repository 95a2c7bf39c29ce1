package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-agenda/pkg/jwt"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/agenda/settings", nil)
	if role == "" {
		return req
	}
	return req.WithContext(context.WithValue(req.Context(), RoleKey, role))
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		wantStatus int
		wantCalled bool
	}{
		{"admin passes", jwt.RoleAdmin, http.StatusOK, true},
		{"staff forbidden", jwt.RoleStaff, http.StatusForbidden, false},
		{"missing role unauthorized", "", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			RequireAdmin(next).ServeHTTP(rec, requestWithRole(tt.role))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if called != tt.wantCalled {
				t.Errorf("next called = %v, want %v", called, tt.wantCalled)
			}
		})
	}
}

func TestRequireRoleMultiple(t *testing.T) {
	mw := RequireRole(jwt.RoleAdmin, jwt.RoleStaff)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, requestWithRole(jwt.RoleStaff))
	if rec.Code != http.StatusOK {
		t.Errorf("staff status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = httptest.NewRecorder()
	mw(next).ServeHTTP(rec, requestWithRole("patient"))
	if rec.Code != http.StatusForbidden {
		t.Errorf("patient status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}
