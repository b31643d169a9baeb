package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func protectedApp(m *JWTManager, extra ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	mws := append([]echo.MiddlewareFunc{m.Middleware()}, extra...)
	e.GET("/protected", func(c echo.Context) error {
		claims := GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no claims"})
		}
		return c.JSON(http.StatusOK, echo.Map{"email": claims.Email, "role": claims.Role})
	}, mws...)
	return e
}

func doProtected(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	token, err := m.GenerateToken("a@x.com", "User")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	rec := doProtected(protectedApp(m), "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "a@x.com") || !strings.Contains(body, "User") {
		t.Fatalf("claims not propagated: %s", body)
	}
}

func TestMissingOrMalformedHeader(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	e := protectedApp(m)

	if rec := doProtected(e, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing header: expected 401, got %d", rec.Code)
	}
	if rec := doProtected(e, "Bearer"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("scheme only: expected 401, got %d", rec.Code)
	}
	if rec := doProtected(e, "Bearer a b"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("two tokens: expected 401, got %d", rec.Code)
	}
	if rec := doProtected(e, "Basic abc"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong scheme: expected 401, got %d", rec.Code)
	}
}

func TestTamperedToken(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	token, err := m.GenerateToken("a@x.com", "User")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	e := protectedApp(m)

	// truncated by one character
	if rec := doProtected(e, "Bearer "+token[:len(token)-1]); rec.Code != http.StatusForbidden {
		t.Fatalf("truncated token: expected 403, got %d", rec.Code)
	}

	// signed with a different secret
	other := NewJWTManager("other-secret", time.Hour)
	forged, err := other.GenerateToken("a@x.com", "User")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if rec := doProtected(e, "Bearer "+forged); rec.Code != http.StatusForbidden {
		t.Fatalf("wrong secret: expected 403, got %d", rec.Code)
	}
}

func TestExpiredToken(t *testing.T) {
	expired := NewJWTManager("test-secret", -time.Minute)
	token, err := expired.GenerateToken("a@x.com", "User")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	m := NewJWTManager("test-secret", time.Hour)
	if rec := doProtected(protectedApp(m), "Bearer "+token); rec.Code != http.StatusForbidden {
		t.Fatalf("expired token: expected 403, got %d", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	e := protectedApp(m, RequireRole("Owner"))

	userToken, err := m.GenerateToken("u@x.com", "User")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if rec := doProtected(e, "Bearer "+userToken); rec.Code != http.StatusForbidden {
		t.Fatalf("role User against Owner gate: expected 403, got %d", rec.Code)
	}

	ownerToken, err := m.GenerateToken("o@x.com", "Owner")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if rec := doProtected(e, "Bearer "+ownerToken); rec.Code != http.StatusOK {
		t.Fatalf("role Owner: expected 200, got %d", rec.Code)
	}

	// the compare is case-insensitive
	lowerToken, err := m.GenerateToken("o@x.com", "owner")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if rec := doProtected(e, "Bearer "+lowerToken); rec.Code != http.StatusOK {
		t.Fatalf("role owner (lowercase): expected 200, got %d", rec.Code)
	}
}
