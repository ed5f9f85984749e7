// File: internal/handler/pages/login.go
package pages

import (
	"net/http"

	"annotate-me/internal/audit"
	"annotate-me/internal/credentials"
	"annotate-me/internal/dto"
	"annotate-me/internal/form"
	"annotate-me/internal/model"
	"annotate-me/internal/view"

	"github.com/labstack/echo/v4"
)

// LoginFormHandler 顯示空白登入表單
func LoginFormHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, view.LoginPage, view.Login{Form: form.NewLogin()})
	}
}

// LoginSubmitHandler 處理登入表單送出
// action=toggle 只切換密碼顯示並保留畫面上的錯誤；其他情況驗證欄位，通過回 200，否則回 422 並顯示錯誤
func LoginSubmitHandler(rec audit.Recorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Errorf("無效的表單資料: %v", err))
		}

		f := form.NewLogin()
		f.SecretVisible = req.ShowSecret
		// 欄位名稱固定，不會回傳錯誤
		_ = f.Input(credentials.FieldIdentifier, req.Identifier)
		_ = f.Input(credentials.FieldSecret, req.Secret)
		page := view.Login{Form: f, Remember: req.Remember}

		if req.Action == dto.ActionToggleSecret {
			f.ToggleSecretVisibility()
			if req.IdentifierError {
				_ = f.Restore(credentials.FieldIdentifier)
			}
			if req.SecretError {
				_ = f.Restore(credentials.FieldSecret)
			}
			return c.Render(http.StatusOK, view.LoginPage, page)
		}

		page.Accepted = f.Submit()
		rec.Record(audit.NewAttempt(model.SourceForm, req.Identifier, f.Errors, c.RealIP()))
		if !page.Accepted {
			return c.Render(http.StatusUnprocessableEntity, view.LoginPage, page)
		}
		return c.Render(http.StatusOK, view.LoginPage, page)
	}
}
