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

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/admin/tables"
	"schoolhub_backend/internals/features/pages/view"
	reportService "schoolhub_backend/internals/features/reports/service"
	authService "schoolhub_backend/internals/features/users/auth/service"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helperAuth "schoolhub_backend/internals/helpers/auth"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
	"schoolhub_backend/internals/stores"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "pages-secret"

type pagesFixture struct {
	app      *fiber.App
	registry *tables.Registry
	admin    string
	guest    string
}

func newPagesFixture(t *testing.T) *pagesFixture {
	t.Helper()
	st := stores.NewMemoryStores()
	registry := st.Registry()
	pc := &PagesController{
		App: configs.AppConfig{
			AppName:         "SchoolHub",
			DefaultTheme:    "light",
			DefaultLanguage: "en",
		},
		View:     view.MustRenderer(),
		Stores:   st,
		Registry: registry,
		Reports:  reportService.NewReportService(st),
		Auth:     authService.NewAuthService(st.UserRepository(), testSecret, time.Hour),
	}

	app := fiber.New()
	app.Use(authMiddleware.SessionMiddleware(testSecret))
	app.Use(authMiddleware.PageGate())
	app.Get("/api/public/app-config", pc.AppConfig)
	app.Get("/login", pc.Login)
	app.Get("/unauthorized", pc.Unauthorized)
	app.Get("/dashboard", pc.Dashboard)
	app.Get("/students", pc.Students)
	app.Get("/classes", pc.Classes)
	app.Get("/attendance", pc.Attendance)
	app.Get("/reports", pc.ReportsPage)
	app.Get("/settings", pc.Settings)
	app.Post("/settings", pc.SaveSettings)
	app.Get("/profile", pc.Profile)
	app.Get("/admin", pc.AdminIndex)
	app.Get("/admin/:table", pc.AdminTable)
	app.Post("/admin/:table", pc.AdminSave)
	app.Post("/admin/:table/delete", pc.AdminDelete)

	return &pagesFixture{
		app:      app,
		registry: registry,
		admin:    tokenFor(t, registry, "Ada Admin", "ada@school.test", constants.RoleAdmin),
		guest:    tokenFor(t, registry, "Gus Guest", "gus@school.test", constants.RoleGuest),
	}
}

func tokenFor(t *testing.T, registry *tables.Registry, name, email, role string) string {
	t.Helper()
	users, err := registry.Lookup("users")
	require.NoError(t, err)
	created, err := users.Create(context.Background(), map[string]any{
		"name": name, "email": email, "password": "secret1", "role": role,
	})
	require.NoError(t, err)
	u := created.(*userModel.UserModel)
	tok, _, err := helperAuth.IssueToken(testSecret, helperAuth.Session{
		UserID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role,
	}, time.Now(), time.Hour)
	require.NoError(t, err)
	return tok
}

func (f *pagesFixture) do(t *testing.T, method, path, token string, form url.Values) (*http.Response, string) {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: helperAuth.SessionCookie, Value: token})
	}
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

func (f *pagesFixture) create(t *testing.T, table string, values map[string]any) map[string]any {
	t.Helper()
	tbl, err := f.registry.Lookup(table)
	require.NoError(t, err)
	row, err := tbl.Create(context.Background(), values)
	require.NoError(t, err)
	raw, err := sonic.Marshal(row)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, sonic.Unmarshal(raw, &out))
	return out
}

func TestProtectedPageRedirectsAnonymous(t *testing.T) {
	f := newPagesFixture(t)

	resp, _ := f.do(t, fiber.MethodGet, "/students?q=x", "", nil)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login?redirect=%2Fstudents", resp.Header.Get(fiber.HeaderLocation))
}

func TestLoginPageCarriesRedirectAndError(t *testing.T) {
	f := newPagesFixture(t)

	resp, body := f.do(t, fiber.MethodGet, "/login?redirect=%2Fstudents&error=invalid_credentials", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `name="redirect" value="/students"`)
	assert.Contains(t, body, "Invalid credentials")

	_, body = f.do(t, fiber.MethodGet, "/login?redirect=https://evil.test", "", nil)
	assert.NotContains(t, body, "evil.test")
}

func TestDashboardRendersCounts(t *testing.T) {
	f := newPagesFixture(t)
	f.create(t, "students", map[string]any{"name": "Ann Lee", "email": "ann@school.test"})

	resp, body := f.do(t, fiber.MethodGet, "/dashboard", f.guest, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	assert.Contains(t, body, "<title>Dashboard · SchoolHub</title>")
	assert.NotContains(t, body, `href="/admin"`)
}

func TestStudentsFilter(t *testing.T) {
	f := newPagesFixture(t)
	f.create(t, "students", map[string]any{"name": "Ann Lee", "email": "ann@school.test", "class": "10A"})
	f.create(t, "students", map[string]any{"name": "Bob Ray", "email": "bob@school.test", "class": "11B", "status": "graduated"})

	_, body := f.do(t, fiber.MethodGet, "/students?q=ann", f.guest, nil)
	assert.Contains(t, body, "Ann Lee")
	assert.NotContains(t, body, "Bob Ray")

	_, body = f.do(t, fiber.MethodGet, "/students?status=graduated", f.guest, nil)
	assert.Contains(t, body, "Bob Ray")
	assert.NotContains(t, body, "Ann Lee")
	assert.Contains(t, body, "2 students · 1 active")
}

func TestClassesShowTeacherName(t *testing.T) {
	f := newPagesFixture(t)
	teacher := f.create(t, "teachers", map[string]any{"name": "Tia Moss", "email": "tia@school.test"})
	f.create(t, "classes", map[string]any{"name": "Algebra", "teacher_id": teacher["id"], "enrolled": 15})

	_, body := f.do(t, fiber.MethodGet, "/classes?q=moss", f.guest, nil)
	assert.Contains(t, body, "Algebra")
	assert.Contains(t, body, "Tia Moss")
	assert.Contains(t, body, "50%")
}

func TestAttendanceStudentView(t *testing.T) {
	f := newPagesFixture(t)
	st := f.create(t, "students", map[string]any{"name": "Ann Lee", "email": "ann@school.test"})
	f.create(t, "attendance", map[string]any{"student_id": st["id"], "date": "2024-03-01", "status": "late"})

	resp, body := f.do(t, fiber.MethodGet, "/attendance?student="+st["id"].(string), f.guest, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "2024-03-01")
	assert.Contains(t, body, "100% attended")

	resp, _ = f.do(t, fiber.MethodGet, "/attendance?student=nope", f.guest, nil)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
}

func TestReportsPage(t *testing.T) {
	f := newPagesFixture(t)
	resp, body := f.do(t, fiber.MethodGet, "/reports", f.guest, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<h1>Reports</h1>")
}

func TestSettingsStorePreferences(t *testing.T) {
	f := newPagesFixture(t)

	resp, _ := f.do(t, fiber.MethodPost, "/settings", f.guest, url.Values{"theme": {"dark"}, "language": {"vi"}})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/settings?notice=saved", resp.Header.Get(fiber.HeaderLocation))
	got := map[string]string{}
	for _, c := range resp.Cookies() {
		got[c.Name] = c.Value
	}
	assert.Equal(t, "dark", got[constants.ThemeCookie])
	assert.Equal(t, "vi", got[constants.LanguageCookie])

	resp, _ = f.do(t, fiber.MethodPost, "/settings", f.guest, url.Values{"theme": {"neon"}, "language": {"en"}})
	assert.Equal(t, "/settings?error=invalid_settings", resp.Header.Get(fiber.HeaderLocation))
}

func TestProfileShowsUser(t *testing.T) {
	f := newPagesFixture(t)
	resp, body := f.do(t, fiber.MethodGet, "/profile", f.guest, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "gus@school.test")
}

func TestAdminPagesNeedAdmin(t *testing.T) {
	f := newPagesFixture(t)

	resp, _ := f.do(t, fiber.MethodGet, "/admin", f.guest, nil)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/unauthorized", resp.Header.Get(fiber.HeaderLocation))

	resp, body := f.do(t, fiber.MethodGet, "/admin", f.admin, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "/admin/students")

	resp, _ = f.do(t, fiber.MethodGet, "/unauthorized", f.guest, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminSaveCreateUpdateDelete(t *testing.T) {
	f := newPagesFixture(t)

	form := url.Values{
		"name":    {"North High"},
		"address": {"1 Main St"},
		"email":   {"north@school.test"},
		"phone":   {"555-0100"},
		"type":    {"Private"},
	}
	resp, _ := f.do(t, fiber.MethodPost, "/admin/schools", f.admin, form)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/schools?notice=created", resp.Header.Get(fiber.HeaderLocation))

	schools, err := f.registry.Lookup("schools")
	require.NoError(t, err)
	rows, err := schools.Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Private", rows[0]["type"])
	assert.Equal(t, "Active", rows[0]["status"])
	id := rows[0]["id"].(string)

	_, body := f.do(t, fiber.MethodGet, "/admin/schools?edit="+id, f.admin, nil)
	assert.Contains(t, body, `value="North High"`)
	assert.Contains(t, body, `name="id" value="`+id+`"`)

	resp, _ = f.do(t, fiber.MethodPost, "/admin/schools", f.admin, url.Values{"id": {id}, "name": {"North Academy"}})
	assert.Equal(t, "/admin/schools?notice=updated", resp.Header.Get(fiber.HeaderLocation))
	rows, _ = schools.Rows(context.Background())
	assert.Equal(t, "North Academy", rows[0]["name"])
	assert.Equal(t, "1 Main St", rows[0]["address"])

	resp, _ = f.do(t, fiber.MethodPost, "/admin/schools/delete", f.admin, url.Values{"id": {id}})
	assert.Equal(t, "/admin/schools?notice=deleted", resp.Header.Get(fiber.HeaderLocation))
	rows, _ = schools.Rows(context.Background())
	assert.Empty(t, rows)
}

func TestAdminSaveReportsErrors(t *testing.T) {
	f := newPagesFixture(t)

	resp, _ := f.do(t, fiber.MethodPost, "/admin/schools", f.admin, url.Values{"name": {"Only Name"}})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	loc, err := url.Parse(resp.Header.Get(fiber.HeaderLocation))
	require.NoError(t, err)
	assert.Equal(t, "/admin/schools", loc.Path)
	assert.Contains(t, loc.Query().Get("error"), "Address is required")
	assert.Contains(t, loc.Query().Get("error"), "Phone is required")
	schools, err := f.registry.Lookup("schools")
	require.NoError(t, err)
	rows, err := schools.Rows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)

	resp, _ = f.do(t, fiber.MethodPost, "/admin/courses", f.admin, url.Values{"name": {"Bio"}, "credits": {"many"}})
	loc, _ = url.Parse(resp.Header.Get(fiber.HeaderLocation))
	assert.Contains(t, loc.Query().Get("error"), "number")

	resp, _ = f.do(t, fiber.MethodGet, "/admin/nope", f.admin, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = f.do(t, fiber.MethodGet, "/admin/schools?edit=00000000-0000-0000-0000-000000000001", f.admin, nil)
	loc, _ = url.Parse(resp.Header.Get(fiber.HeaderLocation))
	assert.Equal(t, "Record not found", loc.Query().Get("error"))
}

func TestAppConfigEndpoint(t *testing.T) {
	f := newPagesFixture(t)
	resp, body := f.do(t, fiber.MethodGet, "/api/public/app-config", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"app_name":"SchoolHub"`)
	assert.Contains(t, body, `"default_theme":"light"`)
}
