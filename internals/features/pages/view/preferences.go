package view

import (
	"time"

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/constants"

	"github.com/gofiber/fiber/v2"
)

// Preferences are per-browser UI settings kept in cookies.
type Preferences struct {
	Theme    string `json:"theme" form:"theme"`
	Language string `json:"language" form:"language"`
}

const preferenceTTL = 365 * 24 * time.Hour

// ResolvePreferences reads the cookies, falling back to the app defaults for
// missing or unsupported values.
func ResolvePreferences(c *fiber.Ctx, app configs.AppConfig) Preferences {
	p := Preferences{Theme: app.DefaultTheme, Language: app.DefaultLanguage}
	if v := c.Cookies(constants.ThemeCookie); contains(configs.Themes, v) {
		p.Theme = v
	}
	if v := c.Cookies(constants.LanguageCookie); contains(configs.Languages, v) {
		p.Language = v
	}
	return p
}

// Valid reports whether every set value is supported.
func (p Preferences) Valid() bool {
	return (p.Theme == "" || contains(configs.Themes, p.Theme)) &&
		(p.Language == "" || contains(configs.Languages, p.Language))
}

// SavePreferences stores the non-empty values as cookies.
func SavePreferences(c *fiber.Ctx, p Preferences, secure bool) {
	exp := time.Now().Add(preferenceTTL)
	if p.Theme != "" {
		c.Cookie(&fiber.Cookie{Name: constants.ThemeCookie, Value: p.Theme, Path: "/", Expires: exp, Secure: secure, SameSite: "Lax"})
	}
	if p.Language != "" {
		c.Cookie(&fiber.Cookie{Name: constants.LanguageCookie, Value: p.Language, Path: "/", Expires: exp, Secure: secure, SameSite: "Lax"})
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
