package tenant

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vitartas/leadtrack/internal/models"
)

var ErrNoSession = errors.New("no session in context")

// Session is the authenticated caller: who they are, what role they hold and
// which store (if any) their data is scoped to. SUPER_ADMIN has StoreID nil.
type Session struct {
	UserID  uuid.UUID
	Email   string
	Role    string
	StoreID *uuid.UUID
}

func (s *Session) IsSuperAdmin() bool {
	return s.Role == models.RoleSuperAdmin
}

// CanAccessStore reports whether the session may touch rows of the given
// store. SUPER_ADMIN may touch any store.
func (s *Session) CanAccessStore(storeID uuid.UUID) bool {
	if s.IsSuperAdmin() {
		return true
	}
	return s.StoreID != nil && *s.StoreID == storeID
}

// FromContext extracts the session from the JWT set in Fiber locals by the
// auth middleware.
func FromContext(c *fiber.Ctx) (*Session, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("missing sub claim")
	}

	sess := &Session{UserID: userID}
	sess.Email, _ = claims["email"].(string)
	sess.Role, _ = claims["role"].(string)

	if raw, ok := claims["store_id"].(string); ok && raw != "" {
		storeID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("malformed store_id claim")
		}
		sess.StoreID = &storeID
	}

	return sess, nil
}
