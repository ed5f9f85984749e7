// File: internal/dto/login_request.go
package dto

// LoginRequest 登入表單送出的欄位
// 同時支援 form 與 JSON
// swagger:model dto.LoginRequest
type LoginRequest struct {
	Identifier string `form:"identifier" json:"identifier" validate:"login_identifier" example:"john@example.com"`
	Secret     string `form:"secret" json:"secret" validate:"login_secret" example:"Passw0rd!"`
	ShowSecret bool   `form:"show_secret" json:"-" swaggerignore:"true"`
	Remember   bool   `form:"remember" json:"-" swaggerignore:"true"`
	Action     string `form:"action" json:"-" swaggerignore:"true"`

	// 頁面上仍顯示錯誤的欄位；輸入後前端會移除
	IdentifierError bool `form:"identifier_error" json:"-" swaggerignore:"true"`
	SecretError     bool `form:"secret_error" json:"-" swaggerignore:"true"`
}

// ActionToggleSecret 切換密碼顯示，不送出
const ActionToggleSecret = "toggle"
