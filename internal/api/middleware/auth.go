package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Auth validates the bearer token and injects its identity claims into the
// request context. Only HS256 tokens from the configured issuer and audience
// are accepted; token verification lives here, never in the core.
func Auth(secret, issuer, audience string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims,
				func(token *jwt.Token) (interface{}, error) {
					if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
						return nil, jwt.ErrTokenSignatureInvalid
					}
					return []byte(secret), nil
				},
				jwt.WithIssuer(issuer),
				jwt.WithAudience(audience),
				jwt.WithExpirationRequired(),
			)
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sub, _ := claims.GetSubject()
			c.Set("user_id", sub)
			c.Set("username", claims["username"])
			c.Set("role", claims["role"])

			return next(c)
		}
	}
}
