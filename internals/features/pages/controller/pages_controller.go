// file: internals/features/pages/controller/pages_controller.go
package controller

import (
	"log"
	"net/url"
	"sort"
	"strings"

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/admin/tables"
	tablesController "schoolhub_backend/internals/features/admin/tables/controller"
	"schoolhub_backend/internals/features/admin/tables/schema"
	"schoolhub_backend/internals/features/pages/view"
	reportService "schoolhub_backend/internals/features/reports/service"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	schoolModel "schoolhub_backend/internals/features/school/schools/model"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	teacherModel "schoolhub_backend/internals/features/school/teachers/model"
	authService "schoolhub_backend/internals/features/users/auth/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
	"schoolhub_backend/internals/stores"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type PagesController struct {
	App          configs.AppConfig
	CookieSecure bool
	View         *view.Renderer
	Stores       *stores.Stores
	Registry     *tables.Registry
	Reports      *reportService.ReportService
	Auth         *authService.AuthService
}

var messages = map[string]string{
	"registered":          "Account created. Please log in.",
	"created":             "Record created.",
	"updated":             "Record updated.",
	"deleted":             "Record deleted.",
	"saved":               "Settings saved.",
	"invalid_credentials": "Invalid credentials",
	"email_taken":         "Email already registered",
	"invalid_input":       "Please check the form: name needs 2 characters, password 6.",
	"signup_failed":       "Sign up failed, please try again.",
	"invalid_settings":    "Unsupported theme or language.",
}

func message(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}

func (pc *PagesController) page(c *fiber.Ctx, title string, data any) view.Page {
	p := view.Page{
		Title:  title,
		Path:   c.Path(),
		App:    pc.App,
		Prefs:  view.ResolvePreferences(c, pc.App),
		Notice: message(c.Query("notice")),
		Error:  message(c.Query("error")),
		Data:   data,
	}
	if s, ok := helperAuth.CurrentSession(c); ok {
		p.User = s
	}
	return p
}

func (pc *PagesController) render(c *fiber.Ctx, name, title string, data any) error {
	return pc.View.Render(c, fiber.StatusOK, name, pc.page(c, title, data))
}

func internalError(c *fiber.Ctx, what string, err error) error {
	log.Printf("[ERROR] %s %s: %v", what, c.Path(), err)
	return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
}

/* ==========================
   PUBLIC
========================== */

func (pc *PagesController) Landing(c *fiber.Ctx) error {
	return pc.render(c, "landing", pc.App.AppName, nil)
}

func (pc *PagesController) Login(c *fiber.Ctx) error {
	return pc.render(c, "login", "Log in", authMiddleware.SafeRedirect(c.Query("redirect"), ""))
}

func (pc *PagesController) Signup(c *fiber.Ctx) error {
	return pc.render(c, "signup", "Sign up", nil)
}

func (pc *PagesController) Unauthorized(c *fiber.Ctx) error {
	return pc.View.Render(c, fiber.StatusForbidden, "unauthorized", pc.page(c, "Unauthorized", nil))
}

// GET /api/public/app-config
func (pc *PagesController) AppConfig(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", pc.App)
}

/* ==========================
   SIGNED-IN PAGES
========================== */

func (pc *PagesController) Dashboard(c *fiber.Ctx) error {
	d, err := pc.Reports.Dashboard(c.UserContext())
	if err != nil {
		return internalError(c, "dashboard", err)
	}
	return pc.render(c, "dashboard", "Dashboard", d)
}

type StudentList struct {
	Filter   reportService.StudentFilter
	Rows     []studentModel.StudentModel
	Summary  reportService.StudentSummary
	Classes  []string
	Statuses []string
}

func (pc *PagesController) Students(c *fiber.Ctx) error {
	var f reportService.StudentFilter
	_ = c.QueryParser(&f)
	rows, err := pc.Stores.Students.List(c.UserContext())
	if err != nil {
		return internalError(c, "students", err)
	}
	return pc.render(c, "students", "Students", StudentList{
		Filter:   f,
		Rows:     reportService.Filter(rows, f.Match),
		Summary:  reportService.SummarizeStudents(rows),
		Classes:  distinct(rows, func(s studentModel.StudentModel) string { return s.Class }),
		Statuses: []string{studentModel.StudentStatusActive, studentModel.StudentStatusInactive, studentModel.StudentStatusGraduated},
	})
}

type TeacherList struct {
	Filter      reportService.TeacherFilter
	Rows        []teacherModel.TeacherModel
	Summary     reportService.TeacherSummary
	Departments []string
	Statuses    []string
}

func (pc *PagesController) Teachers(c *fiber.Ctx) error {
	var f reportService.TeacherFilter
	_ = c.QueryParser(&f)
	rows, err := pc.Stores.Teachers.List(c.UserContext())
	if err != nil {
		return internalError(c, "teachers", err)
	}
	return pc.render(c, "teachers", "Teachers", TeacherList{
		Filter:      f,
		Rows:        reportService.Filter(rows, f.Match),
		Summary:     reportService.SummarizeTeachers(rows),
		Departments: distinct(rows, func(t teacherModel.TeacherModel) string { return t.Department }),
		Statuses:    []string{teacherModel.TeacherStatusActive, teacherModel.TeacherStatusOnLeave, teacherModel.TeacherStatusInactive},
	})
}

type ClassRow struct {
	Class       classModel.ClassModel
	TeacherName string
	Fill        int
}

type ClassList struct {
	Filter   reportService.ClassFilter
	Rows     []ClassRow
	Summary  reportService.ClassSummary
	Grades   []string
	Statuses []string
}

func (pc *PagesController) Classes(c *fiber.Ctx) error {
	var f reportService.ClassFilter
	_ = c.QueryParser(&f)
	ctx := c.UserContext()
	classes, err := pc.Stores.Classes.List(ctx)
	if err != nil {
		return internalError(c, "classes", err)
	}
	teachers, err := pc.Stores.Teachers.List(ctx)
	if err != nil {
		return internalError(c, "classes", err)
	}
	names := make(map[uuid.UUID]string, len(teachers))
	for _, t := range teachers {
		names[t.ID] = t.Name
	}

	rows := make([]ClassRow, 0, len(classes))
	for _, cl := range classes {
		var teacher string
		if cl.TeacherID != nil {
			teacher = names[*cl.TeacherID]
		}
		if f.Match(cl, teacher) {
			rows = append(rows, ClassRow{Class: cl, TeacherName: teacher, Fill: reportService.ClassFill(cl)})
		}
	}
	return pc.render(c, "classes", "Classes", ClassList{
		Filter:  f,
		Rows:    rows,
		Summary: reportService.SummarizeClasses(classes),
		Grades:  distinct(classes, func(cl classModel.ClassModel) string { return cl.Grade }),
		Statuses: []string{classModel.ClassStatusActive, classModel.ClassStatusInactive,
			classModel.ClassStatusCompleted, classModel.ClassStatusCancelled},
	})
}

type SchoolList struct {
	Filter   reportService.SchoolFilter
	Rows     []schoolModel.SchoolModel
	Summary  reportService.SchoolSummary
	Types    []string
	Statuses []string
}

func (pc *PagesController) Schools(c *fiber.Ctx) error {
	var f reportService.SchoolFilter
	_ = c.QueryParser(&f)
	rows, err := pc.Stores.Schools.List(c.UserContext())
	if err != nil {
		return internalError(c, "schools", err)
	}
	return pc.render(c, "schools", "Schools", SchoolList{
		Filter:   f,
		Rows:     reportService.Filter(rows, f.Match),
		Summary:  reportService.SummarizeSchools(rows),
		Types:    []string{schoolModel.SchoolTypePublic, schoolModel.SchoolTypePrivate},
		Statuses: []string{schoolModel.SchoolStatusActive, schoolModel.SchoolStatusInactive},
	})
}

type AttendancePage struct {
	Report    *reportService.AttendanceReport
	Student   *reportService.StudentAttendance
	Students  []studentModel.StudentModel
	StudentID string
}

func (pc *PagesController) Attendance(c *fiber.Ctx) error {
	ctx := c.UserContext()
	report, err := pc.Reports.Attendance(ctx)
	if err != nil {
		return internalError(c, "attendance", err)
	}
	students, err := pc.Stores.Students.List(ctx)
	if err != nil {
		return internalError(c, "attendance", err)
	}
	data := AttendancePage{Report: report, Students: students}

	if raw := c.Query("student"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Redirect("/attendance?error="+url.QueryEscape("invalid student id"), fiber.StatusSeeOther)
		}
		if data.Student, err = pc.Reports.StudentAttendance(ctx, id); err != nil {
			return internalError(c, "attendance", err)
		}
		data.StudentID = id.String()
	}
	return pc.render(c, "attendance", "Attendance", data)
}

type ReportsPage struct {
	Dashboard  *reportService.Dashboard
	Attendance *reportService.AttendanceReport
}

func (pc *PagesController) ReportsPage(c *fiber.Ctx) error {
	ctx := c.UserContext()
	d, err := pc.Reports.Dashboard(ctx)
	if err != nil {
		return internalError(c, "reports", err)
	}
	a, err := pc.Reports.Attendance(ctx)
	if err != nil {
		return internalError(c, "reports", err)
	}
	return pc.render(c, "reports", "Reports", ReportsPage{Dashboard: d, Attendance: a})
}

type SettingsPage struct {
	Themes    []string
	Languages []string
}

func (pc *PagesController) Settings(c *fiber.Ctx) error {
	return pc.render(c, "settings", "Settings", SettingsPage{Themes: configs.Themes, Languages: configs.Languages})
}

// POST /settings
func (pc *PagesController) SaveSettings(c *fiber.Ctx) error {
	var p view.Preferences
	if err := c.BodyParser(&p); err != nil || !p.Valid() {
		return c.Redirect("/settings?error=invalid_settings", fiber.StatusSeeOther)
	}
	view.SavePreferences(c, p, pc.CookieSecure)
	return c.Redirect("/settings?notice=saved", fiber.StatusSeeOther)
}

func (pc *PagesController) Profile(c *fiber.Ctx) error {
	s, ok := helperAuth.CurrentSession(c)
	if !ok {
		return c.Redirect(authMiddleware.LoginRedirect(c.Path()), fiber.StatusSeeOther)
	}
	user, err := pc.Auth.Me(c.UserContext(), s.UserID)
	if errors.Is(err, tables.ErrNotFound) {
		helperAuth.ClearSessionCookie(c, pc.CookieSecure)
		return c.Redirect(authMiddleware.LoginRedirect(c.Path()), fiber.StatusSeeOther)
	}
	if err != nil {
		return internalError(c, "profile", err)
	}
	return pc.render(c, "profile", "Profile", user)
}

/* ==========================
   ADMIN
========================== */

func (pc *PagesController) AdminIndex(c *fiber.Ctx) error {
	all := pc.Registry.All()
	out := make([]schema.Descriptor, 0, len(all))
	for _, t := range all {
		out = append(out, t.Descriptor())
	}
	return pc.render(c, "admin_index", "Admin", out)
}

type AdminTablePage struct {
	Descriptor schema.Descriptor
	Rows       []map[string]any
	Values     map[string]string
	EditID     string
}

// GET /admin/:table[?edit=<id>]
func (pc *PagesController) AdminTable(c *fiber.Ctx) error {
	t, err := pc.Registry.Lookup(c.Params("table"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Table not found")
	}
	rows, err := t.Rows(c.UserContext())
	if err != nil {
		return internalError(c, "admin table", err)
	}
	d := t.Descriptor()

	source := d.Initial
	editID := c.Query("edit")
	if editID != "" {
		source = nil
		for _, r := range rows {
			if r["id"] == editID {
				source = r
				break
			}
		}
		if source == nil {
			return c.Redirect(adminURL(d.Name, "", "error", "Record not found"), fiber.StatusSeeOther)
		}
	}
	values := make(map[string]string, len(d.Fields))
	for _, f := range d.Fields {
		values[f.Name] = FieldValue(f, source[f.Name])
	}
	return pc.render(c, "admin_table", d.Title, AdminTablePage{Descriptor: d, Rows: rows, Values: values, EditID: editID})
}

// POST /admin/:table  creates, or updates when the form carries an id.
func (pc *PagesController) AdminSave(c *fiber.Ctx) error {
	t, err := pc.Registry.Lookup(c.Params("table"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Table not found")
	}
	d := t.Descriptor()
	id := strings.TrimSpace(c.FormValue("id"))

	values, ferrs := FormValues(c, d.Fields)
	if ferrs != nil {
		return c.Redirect(adminURL(d.Name, id, "error", joinFieldErrors(ferrs)), fiber.StatusSeeOther)
	}

	// The JSON API only enforces what the model requires; the form also
	// insists on the fields it marks as required.
	if id == "" {
		if errs := (schema.Form{Fields: d.Fields}).CheckRequired(values); errs != nil {
			return c.Redirect(adminURL(d.Name, "", "error", joinFieldErrors(errs)), fiber.StatusSeeOther)
		}
	}

	notice := "created"
	if id != "" {
		values["id"] = id
		notice = "updated"
		_, err = t.Update(c.UserContext(), values)
	} else {
		_, err = t.Create(c.UserContext(), values)
	}
	if err != nil {
		return c.Redirect(adminURL(d.Name, id, "error", adminError(c, err)), fiber.StatusSeeOther)
	}
	return c.Redirect(adminURL(d.Name, "", "notice", notice), fiber.StatusSeeOther)
}

// POST /admin/:table/delete
func (pc *PagesController) AdminDelete(c *fiber.Ctx) error {
	t, err := pc.Registry.Lookup(c.Params("table"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Table not found")
	}
	if err := t.Delete(c.UserContext(), c.FormValue("id")); err != nil {
		return c.Redirect(adminURL(t.Name(), "", "error", adminError(c, err)), fiber.StatusSeeOther)
	}
	return c.Redirect(adminURL(t.Name(), "", "notice", "deleted"), fiber.StatusSeeOther)
}

func adminError(c *fiber.Ctx, err error) string {
	var verr *tables.ValidationError
	if errors.As(err, &verr) {
		return joinFieldErrors(verr.Fields)
	}
	status, msg := tablesController.Status(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
	}
	return msg
}

func adminURL(table, editID, key, value string) string {
	q := url.Values{key: {value}}
	if editID != "" {
		q.Set("edit", editID)
	}
	return constants.AdminPath + "/" + table + "?" + q.Encode()
}

func joinFieldErrors(fields map[string][]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, strings.Join(fields[k], ", "))
	}
	return strings.Join(parts, "; ")
}

func distinct[T any](rows []T, key func(T) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range rows {
		if k := key(r); k != "" && !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
