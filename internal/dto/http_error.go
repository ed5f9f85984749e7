// File: internal/dto/http_error.go
package dto

import "fmt"

// 固定的錯誤訊息
const (
	MsgTooManyAttempts   = "too many attempts"
	MsgDatabaseUnhealthy = "database unhealthy"
	MsgCacheUnhealthy    = "cache unhealthy"
)

// HTTPError 登入頁與 API 共用的錯誤回應
// swagger:model dto.HTTPError
type HTTPError struct {
	Message string `json:"message" example:"too many attempts"`
}

// Errorf 以格式化字串建立 HTTPError
func Errorf(format string, args ...any) HTTPError {
	return HTTPError{Message: fmt.Sprintf(format, args...)}
}
