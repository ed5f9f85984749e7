// File: internal/credentials/tags.go
package credentials

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// 結構 tag 名稱，供 DTO 使用
const (
	TagIdentifier = "login_identifier"
	TagSecret     = "login_secret"
)

// RegisterValidations 將登入欄位規則註冊到 go-playground/validator
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation(TagIdentifier, func(fl validator.FieldLevel) bool {
		return ValidateIdentifier(fl.Field().String()) == ""
	}); err != nil {
		return err
	}
	return v.RegisterValidation(TagSecret, func(fl validator.FieldLevel) bool {
		return ValidateSecret(fl.Field().String()) == ""
	})
}

// ResultFromError 將 validator 的錯誤轉回各欄位訊息
// 若錯誤不是來自登入欄位 tag，回傳 false
func ResultFromError(err error) (Result, bool) {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return Result{}, false
	}
	var r Result
	for _, fe := range ves {
		value, _ := fe.Value().(string)
		switch fe.Tag() {
		case TagIdentifier:
			r.Identifier = ValidateIdentifier(value)
		case TagSecret:
			r.Secret = ValidateSecret(value)
		default:
			return Result{}, false
		}
	}
	return r, true
}
