package auth

import (
	"net/url"

	"schoolhub_backend/internals/constants"
	helperAuth "schoolhub_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
)

// PageGate guards HTML pages. It must run after SessionMiddleware.
//
//   - protected page, no session: 303 to /login?redirect=<path>
//   - /login or /signup with a session: 303 to /dashboard
//   - /admin without the admin role: 303 to /unauthorized
func PageGate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		s, signedIn := helperAuth.CurrentSession(c)

		switch {
		case constants.HasPrefix(path, constants.AuthPrefixes):
			if signedIn && c.Method() == fiber.MethodGet {
				return c.Redirect(constants.DashboardPath, fiber.StatusSeeOther)
			}
		case constants.HasPrefix(path, constants.ProtectedPrefixes):
			if !signedIn {
				return c.Redirect(LoginRedirect(path), fiber.StatusSeeOther)
			}
			if constants.HasPrefix(path, []string{constants.AdminPath}) && !s.IsAdmin() {
				return c.Redirect(constants.UnauthorizedPath, fiber.StatusSeeOther)
			}
		}
		return c.Next()
	}
}

// LoginRedirect builds the login URL that returns to path afterwards.
func LoginRedirect(path string) string {
	return constants.LoginPath + "?redirect=" + url.QueryEscape(path)
}

// SafeRedirect keeps only local absolute paths, anything else falls back.
func SafeRedirect(target, fallback string) string {
	if len(target) < 1 || target[0] != '/' || (len(target) > 1 && (target[1] == '/' || target[1] == '\\')) {
		return fallback
	}
	return target
}
