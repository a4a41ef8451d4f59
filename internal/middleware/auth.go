package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/kashvi/internal/config"
	"github.com/example/kashvi/internal/models"
	"github.com/example/kashvi/internal/services"
	"github.com/example/kashvi/internal/utils"
)

const (
	userContextKey  = "currentUserID"
	emailContextKey = "currentUserEmail"
)

// AuthMiddleware validates JWT tokens and loads the authenticated identity
// into the request context.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, email, err := bearerIdentity(c, cfg)
		if err != nil {
			return err
		}

		c.Locals(userContextKey, userID)
		c.Locals(emailContextKey, email)
		return c.Next()
	}
}

// OptionalAuth loads the identity when a valid token is present but lets
// anonymous requests through. Checkout and the inquiry forms accept both.
func OptionalAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("Authorization") == "" {
			return c.Next()
		}

		userID, email, err := bearerIdentity(c, cfg)
		if err != nil {
			// A malformed token on an optional route is ignored, not fatal.
			return c.Next()
		}

		c.Locals(userContextKey, userID)
		c.Locals(emailContextKey, email)
		return c.Next()
	}
}

// AdminOnly rejects authenticated users whose resolved role is not admin.
// It must run after AuthMiddleware.
func AdminOnly(authorizer services.Authorizer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := GetCurrentUserEmail(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}

		role, err := authorizer.RoleFor(c.Context(), email)
		if err != nil {
			return err
		}
		if role != models.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "admin access required")
		}

		return c.Next()
	}
}

func bearerIdentity(c *fiber.Ctx, cfg *config.Config) (uuid.UUID, string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return uuid.Nil, "", fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return uuid.Nil, "", fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
	}

	userID, email, err := utils.ParseToken(cfg.JWTSecret, parts[1])
	if err != nil {
		return uuid.Nil, "", fiber.NewError(fiber.StatusUnauthorized, "invalid token")
	}

	return userID, email, nil
}

// GetCurrentUserID extracts the authenticated user ID from context.
func GetCurrentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	value := c.Locals(userContextKey)
	if value == nil {
		return uuid.Nil, false
	}

	if id, ok := value.(uuid.UUID); ok {
		return id, true
	}

	return uuid.Nil, false
}

// GetCurrentUserEmail extracts the authenticated user email from context.
func GetCurrentUserEmail(c *fiber.Ctx) (string, bool) {
	value := c.Locals(emailContextKey)
	if value == nil {
		return "", false
	}

	if email, ok := value.(string); ok && email != "" {
		return email, true
	}

	return "", false
}
