package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"textila-api/internal/model"
)

const identityKey = "identity"

// Identity is the caller as asserted by the identity provider's token.
type Identity struct {
	Email string
	Role  model.Role
}

// Authenticate verifies the HMAC bearer token issued by the identity provider
// and attaches the caller's identity to the request context. Token issuance
// happens outside this service; we only verify.
func Authenticate(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}
			email, _ := claims["email"].(string)
			role, _ := claims["role"].(string)

			c.Set(identityKey, &Identity{Email: email, Role: model.Role(role)})
			return next(c)
		}
	}
}

// RequireRole gates a route group to the given roles. Must run after
// Authenticate.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFrom(c)
			if identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
			}
			for _, role := range roles {
				if identity.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
		}
	}
}

// IdentityFrom returns the authenticated caller, nil on public routes.
func IdentityFrom(c echo.Context) *Identity {
	identity, _ := c.Get(identityKey).(*Identity)
	return identity
}
