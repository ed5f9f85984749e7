// File: internal/handler/auth/validate.go
package auth

import (
	"net/http"

	"annotate-me/internal/audit"
	"annotate-me/internal/credentials"
	"annotate-me/internal/dto"
	"annotate-me/internal/model"

	"github.com/labstack/echo/v4"
)

// ValidateHandler 檢查帳號與密碼格式，不做任何認證
// @Summary     驗證登入欄位
// @Description 依登入表單規則檢查 identifier 與 secret，每個欄位最多回傳一則錯誤訊息
// @Tags        auth
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       request body     dto.LoginRequest true "登入欄位"
// @Success     200     {object} dto.ValidationResponse
// @Failure     400     {object} dto.HTTPError
// @Failure     422     {object} dto.ValidationResponse
// @Failure     429     {object} dto.HTTPError
// @Router      /auth/validate [post]
func ValidateHandler(rec audit.Recorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Errorf("無效的請求資料: %v", err))
		}

		var result credentials.Result
		if err := c.Validate(&req); err != nil {
			r, ok := credentials.ResultFromError(err)
			if !ok {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
			}
			result = r
		}

		rec.Record(audit.NewAttempt(model.SourceAPI, req.Identifier, result, c.RealIP()))

		resp := dto.NewValidationResponse(result)
		if !resp.Valid {
			return c.JSON(http.StatusUnprocessableEntity, resp)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
