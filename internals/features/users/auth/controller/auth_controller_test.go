package controller

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"schoolhub_backend/internals/features/admin/tables"
	authRepo "schoolhub_backend/internals/features/users/auth/repository"
	"schoolhub_backend/internals/features/users/auth/service"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helperAuth "schoolhub_backend/internals/helpers/auth"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthApp(t *testing.T) (*fiber.App, *tables.MemoryRepository[userModel.UserModel, *userModel.UserModel]) {
	t.Helper()
	store := tables.NewMemoryRepository[userModel.UserModel]()
	svc := service.NewAuthService(authRepo.NewStoreUserRepository(store), testSecret, time.Hour)
	ctrl := NewAuthController(svc, false)

	app := fiber.New()
	app.Use(authMiddleware.SessionMiddleware(testSecret))
	app.Post("/api/auth/register", ctrl.Register)
	app.Post("/api/auth/login", ctrl.Login)
	app.Post("/api/auth/logout", ctrl.Logout)
	app.Get("/api/auth/me", authMiddleware.RequireSession(), ctrl.Me)
	app.Post("/login", ctrl.LoginForm)
	app.Post("/signup", ctrl.SignupForm)
	app.Get("/logout", ctrl.LogoutPage)
	return app, store
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, sonic.Unmarshal(raw, &out))
	return out
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == helperAuth.SessionCookie {
			return c
		}
	}
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	app, store := newAuthApp(t)

	resp := postJSON(t, app, "/api/auth/register", `{"name":"Ann Lee","email":"ann@example.com","password":"secret1"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	user := body["data"].(map[string]any)
	assert.Equal(t, "guest", user["role"])
	assert.Equal(t, "Ann Lee", user["display_name"])
	assert.NotContains(t, user, "password_hash")

	rows, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.NotEqual(t, "secret1", rows[0].PasswordHash)

	resp = postJSON(t, app, "/api/auth/login", `{"email":"ann@example.com","password":"secret1"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	body = decode(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, "/dashboard", data["redirect"])
	assert.NotEmpty(t, data["token"])

	req := httptest.NewRequest(fiber.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	me := decode(t, resp)["data"].(map[string]any)
	assert.Equal(t, "ann@example.com", me["email"])
	assert.NotNil(t, me["last_login"])
}

func TestRegisterRejects(t *testing.T) {
	app, _ := newAuthApp(t)

	resp := postJSON(t, app, "/api/auth/register", `{"name":"A","email":"nope","password":"123"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	errs := decode(t, resp)["errors"].(map[string]any)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")

	resp = postJSON(t, app, "/api/auth/register", `{"name":"Bob","email":"bob@example.com","password":"secret1"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp = postJSON(t, app, "/api/auth/register", `{"name":"Bob","email":"bob@example.com","password":"secret1"}`)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestLoginFailureSetsNoCookie(t *testing.T) {
	app, _ := newAuthApp(t)
	postJSON(t, app, "/api/auth/register", `{"name":"Cat","email":"cat@example.com","password":"secret1"}`)

	for _, body := range []string{
		`{"email":"cat@example.com","password":"wrong-pass"}`,
		`{"email":"nobody@example.com","password":"secret1"}`,
	} {
		resp := postJSON(t, app, "/api/auth/login", body)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Nil(t, sessionCookie(resp))
		assert.Equal(t, "Invalid credentials", decode(t, resp)["message"])
	}
}

func TestMeWithoutSession(t *testing.T) {
	app, _ := newAuthApp(t)
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/auth/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestFormFlows(t *testing.T) {
	app, _ := newAuthApp(t)

	resp := postForm(t, app, "/signup", url.Values{"name": {"Dan"}, "email": {"dan@example.com"}, "password": {"secret1"}})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login?notice=registered", resp.Header.Get("Location"))

	resp = postForm(t, app, "/signup", url.Values{"name": {"Dan"}, "email": {"dan@example.com"}, "password": {"secret1"}})
	assert.Equal(t, "/signup?error=email_taken", resp.Header.Get("Location"))

	resp = postForm(t, app, "/login", url.Values{"email": {"dan@example.com"}, "password": {"bad-pass"}})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login?error=invalid_credentials", resp.Header.Get("Location"))
	assert.Nil(t, sessionCookie(resp))

	resp = postForm(t, app, "/login", url.Values{"email": {"dan@example.com"}, "password": {"secret1"}, "redirect": {"/students"}})
	assert.Equal(t, "/students", resp.Header.Get("Location"))
	assert.NotNil(t, sessionCookie(resp))

	resp = postForm(t, app, "/login", url.Values{"email": {"dan@example.com"}, "password": {"secret1"}, "redirect": {"https://evil.example"}})
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/logout", nil))
	require.NoError(t, err)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
}
