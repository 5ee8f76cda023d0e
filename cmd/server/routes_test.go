package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"talentpact.backend/internal/interfaces/http/handlers"
)

func TestRegisterAPIV1Routes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	passThrough := func(c *gin.Context) { c.Next() }
	registerAPIV1Routes(r, routeDeps{
		projectHandler:  &handlers.ProjectHandler{},
		contractHandler: &handlers.ContractHandler{},
		authMiddleware:  passThrough,
		idempotency:     passThrough,
	})

	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/projects"},
		{"GET", "/api/v1/projects"},
		{"GET", "/api/v1/projects/categories"},
		{"GET", "/api/v1/projects/client/:clientId"},
		{"GET", "/api/v1/projects/:id"},
		{"PUT", "/api/v1/projects/:id"},
		{"DELETE", "/api/v1/projects/:id"},
		{"POST", "/api/v1/contracts"},
		{"GET", "/api/v1/contracts/:id"},
		{"PUT", "/api/v1/contracts/:id/status"},
		{"GET", "/api/v1/contracts/user/:userId"},
		{"GET", "/api/v1/contracts/status/:status"},
	}

	routes := r.Routes()
	if len(routes) != len(expects) {
		t.Fatalf("expected %d routes, got %d", len(expects), len(routes))
	}
	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s %s not registered", exp.method, exp.path)
		}
	}
}

func TestRegisterAPIV1Routes_MutationsRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }
	registerAPIV1Routes(r, routeDeps{
		projectHandler:  &handlers.ProjectHandler{},
		contractHandler: &handlers.ContractHandler{},
		authMiddleware:  deny,
		idempotency:     func(c *gin.Context) { c.Next() },
	})

	for _, tc := range []struct{ method, path string }{
		{http.MethodPut, "/api/v1/projects/0190a1b2-0000-7000-8000-000000000001"},
		{http.MethodDelete, "/api/v1/projects/0190a1b2-0000-7000-8000-000000000001"},
		{http.MethodPut, "/api/v1/contracts/0190a1b2-0000-7000-8000-000000000001/status"},
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, rec.Code)
		}
	}
}
