package middleware

import (
	"errors"
	"strings"

	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	CtxUserIDKey = "user_id"
	CtxEmailKey  = "email"
	CtxRoleKey   = "role"
)

type AuthMiddleware struct {
	jwt   jwt.Service
	users repository.UserRepository
}

func NewAuthMiddleware(jwtSvc jwt.Service, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc, users: users}
}

// Middleware authenticates the bearer token and places the actor in request
// locals. The user row is consulted on every request so that blocking takes
// effect immediately, not at token expiry.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		usr, err := m.users.GetByID(c.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
			}
			return NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}
		if usr.Blocked {
			return NewAppError(fiber.StatusForbidden, "Account blocked", nil, nil)
		}

		c.Locals(CtxUserIDKey, usr.ID)
		c.Locals(CtxEmailKey, usr.Email)
		c.Locals(CtxRoleKey, usr.Role)

		return c.Next()
	}
}

// RequireRole gates a route group to the given roles. It runs after
// Middleware, which has already resolved the actor.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		actor := RoleFromCtx(c)
		for _, r := range roles {
			if actor == r {
				return c.Next()
			}
		}
		return NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
	}
}

func UserIDFromCtx(c fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(CtxUserIDKey).(uuid.UUID)
	return id
}

func RoleFromCtx(c fiber.Ctx) user.Role {
	r, _ := c.Locals(CtxRoleKey).(user.Role)
	return r
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
