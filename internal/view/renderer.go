package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"podlauncher/internal/catalog"
	"podlauncher/internal/model"
)

// FormPage is the name of the form template.
const FormPage = "form.html"

//go:embed templates/*.html
var templateFS embed.FS

// FormData is everything the form page shows for one render pass.
type FormData struct {
	Request      model.LaunchRequest
	Images       []catalog.Image
	AdminDataURL string
	Error        string
	Plan         *model.LaunchPlan
	DownloadURL  string
}

// Renderer renders the embedded HTML templates for echo.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() *Renderer {
	return &Renderer{templates: template.Must(template.ParseFS(templateFS, "templates/*.html"))}
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
