package http

import (
	"net/http"
	"strings"

	"shipping/internal/core/domain/model/user"
	"shipping/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "auth.claims"

// requireAuth validates the bearer token and stores the parsed claims on the
// request context for downstream handlers.
func requireAuth(cfg auth.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			claims, err := auth.ParseAccessToken(cfg, token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid token",
				})
			}

			ctx.Set(claimsContextKey, claims)
			return next(ctx)
		}
	}
}

// requireAdmin rejects requests whose token does not carry the admin role.
// Must run after requireAuth.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		claims := currentClaims(ctx)
		if claims == nil || claims.Role != user.RoleAdmin {
			return ctx.JSON(http.StatusForbidden, errorResponse{
				Code:    http.StatusForbidden,
				Message: "admin role required",
			})
		}
		return next(ctx)
	}
}

// currentClaims returns the claims stored by requireAuth, or nil.
func currentClaims(ctx echo.Context) *auth.Claims {
	claims, _ := ctx.Get(claimsContextKey).(*auth.Claims)
	return claims
}
