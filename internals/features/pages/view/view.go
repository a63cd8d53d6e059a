// file: internals/features/pages/view/view.go
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"schoolhub_backend/internals/configs"
	helperAuth "schoolhub_backend/internals/helpers/auth"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is what every template receives.
type Page struct {
	Title  string
	Path   string
	App    configs.AppConfig
	Prefs  Preferences
	User   *helperAuth.Session
	Notice string
	Error  string
	Data   any
}

// Renderer holds one parsed template set per page, each sharing the layout.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"cell":   Cell,
	"join":   strings.Join,
	"sorted": sortedKeys,
}

func NewRenderer() (*Renderer, error) {
	layout, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, err
	}
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: map[string]*template.Template{}}
	for _, f := range files {
		name := strings.TrimSuffix(path.Base(f), ".html")
		if name == "layout" {
			continue
		}
		t, err := template.Must(layout.Clone()).ParseFS(templateFS, f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// MustRenderer panics on a template error; templates are embedded, so this
// only fails on a broken build.
func MustRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render writes page name inside the layout as text/html.
func (r *Renderer) Render(c *fiber.Ctx, status int, name string, p Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, "unknown page "+name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", p); err != nil {
		log.Printf("[ERROR] render %s: %v", name, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// Cell formats one listing value for display.
func Cell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "Yes"
		}
		return "No"
	case []any:
		parts := make([]string, len(x))
		for i, p := range x {
			parts[i] = Cell(p)
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		raw, err := sonic.Marshal(x)
		if err != nil {
			return ""
		}
		return string(raw)
	}
	return fmt.Sprint(v)
}

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
