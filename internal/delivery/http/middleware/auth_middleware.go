package middleware

import (
	"net/http"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ActorKey is the echo.Context key holding the authenticated user.
const ActorKey = "actor"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo, cfg: cfg}
}

// Authenticate validates the JWT access token and loads the acting user onto
// the request context. Scope and permission checks stay in the usecases; the
// middleware only establishes identity.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Failed to parse token claims"})
		}

		userIDStr, ok := claims["sub"].(string)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User ID missing from token"})
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid user ID format in token"})
		}

		// The access token only proves identity. Role, company and the
		// active flag are re-read from the database so a deactivation
		// takes effect before the token expires.
		actor, err := m.userRepo.FindByID(c.Request().Context(), userID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unknown user"})
		}
		if !actor.Active {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "This account has been deactivated"})
		}

		c.Set(ActorKey, actor)

		return next(c)
	}
}

// RequireSupplierStaff restricts a route group to owner, admin and sales
// accounts. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireSupplierStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := c.Get(ActorKey).(*entity.User)
		if !ok {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: identity missing"})
		}
		if !actor.Role.IsSupplierSide() {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: supplier staff only"})
		}

		return next(c)
	}
}

// RequireConsumer restricts a route group to consumer accounts. It must be
// used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireConsumer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := c.Get(ActorKey).(*entity.User)
		if !ok {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: identity missing"})
		}
		if actor.Role != entity.RoleConsumer {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: consumers only"})
		}

		return next(c)
	}
}
