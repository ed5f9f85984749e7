// File: internal/dto/validation_response.go
package dto

import "annotate-me/internal/credentials"

// ValidationResponse 驗證結果
// swagger:model dto.ValidationResponse
type ValidationResponse struct {
	Valid  bool               `json:"valid" example:"false"`
	Errors credentials.Result `json:"errors"`
}

// NewValidationResponse 由驗證結果組出回應
func NewValidationResponse(r credentials.Result) ValidationResponse {
	return ValidationResponse{Valid: r.Valid(), Errors: r}
}
