package controller

import (
	"log"
	"net/url"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/admin/tables"
	authHelper "schoolhub_backend/internals/features/users/auth/helper"
	"schoolhub_backend/internals/features/users/auth/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
	"schoolhub_backend/internals/middlewares/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type AuthController struct {
	Service      *service.AuthService
	CookieSecure bool
}

func NewAuthController(svc *service.AuthService, cookieSecure bool) *AuthController {
	return &AuthController{Service: svc, CookieSecure: cookieSecure}
}

/* ==========================
   JSON API
========================== */

func (ac *AuthController) Register(c *fiber.Ctx) error {
	var in authHelper.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := ac.Service.Register(c.UserContext(), in)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			return helper.JsonValidationError(c, verr.Fields)
		case errors.Is(err, service.ErrEmailTaken):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		}
		log.Printf("[ERROR] register: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonCreated(c, "Registration successful", user)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var in authHelper.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	res, err := ac.Service.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			metrics.LoginAttempts.WithLabelValues("invalid").Inc()
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		log.Printf("[ERROR] login: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	metrics.LoginAttempts.WithLabelValues("success").Inc()

	helperAuth.SetSessionCookie(c, res.Token, res.ExpiresAt, ac.CookieSecure)
	return helper.JsonOK(c, "Login successful", fiber.Map{
		"token":      res.Token,
		"expires_at": res.ExpiresAt,
		"user":       res.User,
		"redirect":   constants.DashboardPath,
	})
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	helperAuth.ClearSessionCookie(c, ac.CookieSecure)
	return helper.JsonOK(c, "Logged out", nil)
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	s, ok := helperAuth.CurrentSession(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	user, err := ac.Service.Me(c.UserContext(), s.UserID)
	if errors.Is(err, tables.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		log.Printf("[ERROR] me %s: %v", s.UserID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonOK(c, "ok", user)
}

/* ==========================
   HTML form flows
========================== */

// LoginForm handles the login page post and always answers with a redirect.
func (ac *AuthController) LoginForm(c *fiber.Ctx) error {
	var in authHelper.LoginInput
	_ = c.BodyParser(&in)
	target := authMiddleware.SafeRedirect(c.FormValue("redirect", c.Query("redirect")), constants.DashboardPath)

	res, err := ac.Service.Login(c.UserContext(), in)
	if err != nil {
		outcome := "invalid"
		if !errors.Is(err, service.ErrInvalidCredentials) {
			outcome = "error"
			log.Printf("[ERROR] login form: %v", err)
		}
		metrics.LoginAttempts.WithLabelValues(outcome).Inc()

		q := url.Values{"error": {"invalid_credentials"}}
		if target != constants.DashboardPath {
			q.Set("redirect", target)
		}
		return c.Redirect(constants.LoginPath+"?"+q.Encode(), fiber.StatusSeeOther)
	}
	metrics.LoginAttempts.WithLabelValues("success").Inc()

	helperAuth.SetSessionCookie(c, res.Token, res.ExpiresAt, ac.CookieSecure)
	return c.Redirect(target, fiber.StatusSeeOther)
}

func (ac *AuthController) SignupForm(c *fiber.Ctx) error {
	var in authHelper.RegisterInput
	_ = c.BodyParser(&in)

	if _, err := ac.Service.Register(c.UserContext(), in); err != nil {
		code := "signup_failed"
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			code = "invalid_input"
		case errors.Is(err, service.ErrEmailTaken):
			code = "email_taken"
		default:
			log.Printf("[ERROR] signup form: %v", err)
		}
		return c.Redirect(constants.SignupPath+"?error="+code, fiber.StatusSeeOther)
	}
	return c.Redirect(constants.LoginPath+"?notice=registered", fiber.StatusSeeOther)
}

func (ac *AuthController) LogoutPage(c *fiber.Ctx) error {
	helperAuth.ClearSessionCookie(c, ac.CookieSecure)
	return c.Redirect(constants.LoginPath, fiber.StatusSeeOther)
}
