// File: internal/view/view.go
package view

import (
	"embed"
	"html/template"
	"io"

	"annotate-me/internal/form"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// 模板名稱
const (
	LandingPage        = "landing.html"
	LoginPage          = "login.html"
	ForgetPasswordPage = "forget_password.html"
)

// Login 登入頁資料
type Login struct {
	Form     *form.Login
	Accepted bool
	Remember bool
}

// SecretInputType 密碼欄位的 input type
func (l Login) SecretInputType() string {
	if l.Form != nil && l.Form.SecretVisible {
		return "text"
	}
	return "password"
}

// Renderer 以 html/template 實作 echo.Renderer
type Renderer struct {
	templates *template.Template
}

var parseFS = template.ParseFS

// NewRenderer 解析內嵌的所有模板
func NewRenderer() (*Renderer, error) {
	t, err := parseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render 實作 echo.Renderer
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
