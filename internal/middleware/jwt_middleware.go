package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Claims defines the JWT payload structure
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies session tokens with a process-wide secret.
// The secret comes from config at startup; there is no ambient fallback.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: ttl}
}

// GenerateToken creates a signed token carrying email and role
func (m *JWTManager) GenerateToken(email, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "fashion-store-api",
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Middleware returns an Echo middleware that validates the bearer token and
// attaches the claims to the request context. A missing or malformed header
// is 401 (no identity was ever presented); a token that fails signature or
// expiry checks is 403.
func (m *JWTManager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no token provided"})
			}
			parts := strings.Fields(auth)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token format"})
			}
			token, err := jwt.ParseWithClaims(parts[1], &Claims{}, func(t *jwt.Token) (interface{}, error) {
				return m.secret, nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "invalid or expired token"})
			}
			claims, ok := token.Claims.(*Claims)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "invalid token claims"})
			}
			// attach claims to context; downstream never re-verifies
			c.Set("auth_claims", claims)
			return next(c)
		}
	}
}

// GetClaims extracts the claims attached by Middleware, or nil
func GetClaims(c echo.Context) *Claims {
	v := c.Get("auth_claims")
	if v == nil {
		return nil
	}
	if cl, ok := v.(*Claims); ok {
		return cl
	}
	return nil
}

// RequireRole gates a route on the caller's role. Must be composed after
// Middleware; it has no way to establish identity on its own. The compare is
// case-insensitive.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := GetClaims(c)
			if claims == nil || !strings.EqualFold(claims.Role, role) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "access denied: insufficient permissions"})
			}
			return next(c)
		}
	}
}
