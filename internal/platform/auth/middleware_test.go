package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var testKey = []byte("test-signing-key")

func signToken(t *testing.T, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString(testKey)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func doRequest(t *testing.T, mw echo.MiddlewareFunc, authHeader string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw(handler)(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func okHandler(c echo.Context) error { return c.NoContent(http.StatusOK) }

func validClaims() *Claims {
	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Name: "Asha Rao",
		Role: "billing_clerk",
		Permissions: map[string]ModulePermissions{
			ModuleBilling: {View: true, Create: true},
		},
	}
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	mw := JWTMiddleware(JWTConfig{SigningKey: testKey})
	rec := doRequest(t, mw, "", okHandler)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	mw := JWTMiddleware(JWTConfig{SigningKey: testKey})

	var captured *User
	handler := func(c echo.Context) error {
		captured = UserFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	}

	rec := doRequest(t, mw, "Bearer "+signToken(t, validClaims()), handler)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured == nil || captured.ID != "user-1" || captured.Name != "Asha Rao" {
		t.Fatalf("user not propagated: %+v", captured)
	}
}

func TestJWTMiddlewareExpiredToken(t *testing.T) {
	mw := JWTMiddleware(JWTConfig{SigningKey: testKey})
	claims := validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	rec := doRequest(t, mw, "Bearer "+signToken(t, claims), okHandler)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", rec.Code)
	}
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		perms  map[string]ModulePermissions
		module string
		action Action
		want   int
	}{
		{"granted", "clerk", map[string]ModulePermissions{ModuleBilling: {View: true}}, ModuleBilling, ActionView, http.StatusOK},
		{"denied action", "clerk", map[string]ModulePermissions{ModuleBilling: {View: true}}, ModuleBilling, ActionDelete, http.StatusForbidden},
		{"denied module", "clerk", map[string]ModulePermissions{ModuleBilling: {View: true}}, ModuleBeds, ActionView, http.StatusForbidden},
		{"admin bypasses", "admin", map[string]ModulePermissions{}, ModuleBeds, ActionDelete, http.StatusOK},
		{"nil map is unrestricted", "clerk", nil, ModuleBeds, ActionView, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			ctx := WithUser(req.Context(), &User{ID: "u1", Role: tt.role}, tt.perms)
			c.SetRequest(req.WithContext(ctx))

			err := RequirePermission(tt.module, tt.action)(okHandler)(c)
			if err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestRequirePermissionUnauthenticated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := RequirePermission(ModuleBilling, ActionView)(okHandler)(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
