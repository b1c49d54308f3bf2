package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
	ctx := context.WithValue(req.Context(), UserIDKey, uuid.New())
	ctx = context.WithValue(ctx, RoleKey, role)
	return req.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	var reached bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	t.Run("allowed role passes through", func(t *testing.T) {
		reached = false
		rec := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rec, requestWithRole(entity.RoleAdmin))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, reached)
	})

	t.Run("other roles get an explicit 403", func(t *testing.T) {
		for _, role := range []string{entity.RoleDoctor, entity.RolePatient, "superuser"} {
			reached = false
			rec := httptest.NewRecorder()
			RequireAdmin(next).ServeHTTP(rec, requestWithRole(role))

			assert.Equal(t, http.StatusForbidden, rec.Code, "role %s", role)
			assert.False(t, reached)
			assert.Contains(t, rec.Body.String(), "permission")
		}
	})

	t.Run("missing role is unauthorized", func(t *testing.T) {
		reached = false
		rec := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})

	t.Run("multiple allowed roles", func(t *testing.T) {
		mw := RequireRole(entity.RoleDoctor, entity.RoleAdmin)

		rec := httptest.NewRecorder()
		mw(next).ServeHTTP(rec, requestWithRole(entity.RoleDoctor))
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		mw(next).ServeHTTP(rec, requestWithRole(entity.RolePatient))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRateLimiter(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	// 1 rps, burst of 2: third immediate request from the same IP must fail
	handler := NewRateLimiter(1, 2).Handle(next)

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1111"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1112"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1113"))

	// A different client IP has its own bucket
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1111"))
}
