package constants

import "strings"

const (
	SessionCookie  = "session"
	ThemeCookie    = "theme"
	LanguageCookie = "lang"

	LoginPath        = "/login"
	SignupPath       = "/signup"
	DashboardPath    = "/dashboard"
	UnauthorizedPath = "/unauthorized"
	AdminPath        = "/admin"
)

// Pages that need a session.
var ProtectedPrefixes = []string{
	"/dashboard",
	"/students",
	"/teachers",
	"/classes",
	"/classroom",
	"/attendance",
	"/reports",
	"/settings",
	"/profile",
	"/schools",
	AdminPath,
}

// Pages a signed-in user is bounced away from.
var AuthPrefixes = []string{
	LoginPath,
	SignupPath,
}

// HasPrefix matches whole path segments, so "/schoolsx" is not under "/schools".
func HasPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
