// File: internal/handler/pages/pages.go
package pages

import (
	"net/http"

	"annotate-me/internal/view"

	"github.com/labstack/echo/v4"
)

// LandingHandler 首頁
func LandingHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, view.LandingPage, nil)
	}
}

// ForgetPasswordHandler 忘記密碼頁，目前只有說明文字
func ForgetPasswordHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, view.ForgetPasswordPage, nil)
	}
}
