// package: internals/helpers/auth/session.go
package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Locals keys set by the session middleware.
const (
	LocUserID    = "user_id"
	LocUserRole  = "userRole"
	LocUserName  = "user_name"
	LocUserEmail = "user_email"
	LocSession   = "session"
)

const SessionCookie = "session"

var ErrInvalidToken = errors.New("invalid token")

// Session is what a signed token vouches for.
type Session struct {
	UserID    uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

func (s *Session) IsAdmin() bool { return s != nil && s.Role == "admin" }

// IssueToken signs an HS256 session token valid for ttl from now.
func IssueToken(secret string, s Session, now time.Time, ttl time.Duration) (string, time.Time, error) {
	if strings.TrimSpace(secret) == "" {
		return "", time.Time{}, errors.New("JWT secret is not configured")
	}
	exp := now.Add(ttl)
	claims := jwt.MapClaims{
		"typ":   "session",
		"sub":   s.UserID.String(),
		"id":    s.UserID.String(),
		"email": s.Email,
		"name":  s.Name,
		"role":  s.Role,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}
	return signed, exp, nil
}

// ParseToken verifies signature, algorithm and expiry.
func ParseToken(raw, secret string) (*Session, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	idStr := strClaim(claims, "id")
	if idStr == "" {
		idStr = strClaim(claims, "sub")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &Session{
		UserID:    id,
		Email:     strClaim(claims, "email"),
		Name:      strClaim(claims, "name"),
		Role:      strClaim(claims, "role"),
		IssuedAt:  unixClaim(claims, "iat"),
		ExpiresAt: unixClaim(claims, "exp"),
	}, nil
}

// TokenFromRequest reads a Bearer token, falling back to the session cookie.
func TokenFromRequest(c *fiber.Ctx) string {
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	return strings.TrimSpace(c.Cookies(SessionCookie))
}

// StoreSession hydrates the locals handlers read.
func StoreSession(c *fiber.Ctx, s *Session) {
	c.Locals(LocSession, s)
	c.Locals(LocUserID, s.UserID.String())
	c.Locals(LocUserRole, s.Role)
	c.Locals(LocUserName, s.Name)
	c.Locals(LocUserEmail, s.Email)
}

// CurrentSession returns the session stored by the middleware, if any.
func CurrentSession(c *fiber.Ctx) (*Session, bool) {
	s, ok := c.Locals(LocSession).(*Session)
	return s, ok && s != nil
}

func SetSessionCookie(c *fiber.Ctx, token string, expires time.Time, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/",
		Expires:  expires,
	})
}

func ClearSessionCookie(c *fiber.Ctx, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func unixClaim(m jwt.MapClaims, key string) time.Time {
	switch v := m[key].(type) {
	case float64:
		return time.Unix(int64(v), 0)
	case int64:
		return time.Unix(v, 0)
	}
	return time.Time{}
}
