// File: internal/credentials/result.go
package credentials

// Field 登入表單欄位名稱
type Field string

const (
	FieldIdentifier Field = "identifier"
	FieldSecret     Field = "secret"
)

// Known 是否為登入表單的欄位
func (f Field) Known() bool {
	return f == FieldIdentifier || f == FieldSecret
}

// Result 各欄位的驗證結果，訊息為空代表該欄位通過
type Result struct {
	Identifier string `json:"identifier,omitempty" example:"Email or Username is required"`
	Secret     string `json:"secret,omitempty" example:"Password is required"`
}

// Valid 兩個欄位皆無錯誤
func (r Result) Valid() bool {
	return r.Identifier == "" && r.Secret == ""
}

// Message 取得指定欄位的錯誤訊息
func (r Result) Message(f Field) string {
	switch f {
	case FieldIdentifier:
		return r.Identifier
	case FieldSecret:
		return r.Secret
	}
	return ""
}

// Clear 清除指定欄位的錯誤訊息
func (r *Result) Clear(f Field) {
	switch f {
	case FieldIdentifier:
		r.Identifier = ""
	case FieldSecret:
		r.Secret = ""
	}
}
