// File: internal/form/login.go
package form

import (
	"errors"

	"annotate-me/internal/credentials"
)

// ErrUnknownField 輸入的欄位不屬於登入表單
var ErrUnknownField = errors.New("unknown login field")

// State 登入表單送出狀態
type State int

const (
	Idle State = iota
	Validating
	Accepted
	Rejected
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Login 登入表單的畫面狀態，每個表單實例各自擁有，不可共用
type Login struct {
	Identifier    string
	Secret        string
	Errors        credentials.Result
	SecretVisible bool

	state State
}

// NewLogin 建立空白表單
func NewLogin() *Login {
	return &Login{}
}

// State 目前送出狀態
func (f *Login) State() State {
	return f.state
}

// Input 更新欄位值，並立即清除該欄位的錯誤 (不重新驗證)
func (f *Login) Input(field credentials.Field, value string) error {
	hadError := f.Errors.Message(field) != ""
	switch field {
	case credentials.FieldIdentifier:
		f.Identifier = value
	case credentials.FieldSecret:
		f.Secret = value
	default:
		return ErrUnknownField
	}
	f.Errors.Clear(field)

	switch {
	case f.state == Accepted:
		f.state = Idle
	case f.state == Rejected && hadError:
		f.state = Idle
	}
	return nil
}

// ToggleSecretVisibility 切換密碼是否明碼顯示，回傳切換後的值
func (f *Login) ToggleSecretVisibility() bool {
	f.SecretVisible = !f.SecretVisible
	return f.SecretVisible
}

// Submit 驗證兩個欄位，全部通過回傳 true
// 每次呼叫都重新驗證，不沿用上一次的結果
func (f *Login) Submit() bool {
	f.state = Validating
	f.Errors = credentials.ValidateCredentials(f.Identifier, f.Secret)
	if f.Errors.Valid() {
		f.state = Accepted
		return true
	}
	f.state = Rejected
	return false
}

// Restore 重新顯示某欄位先前送出時的錯誤 (例如只切換密碼顯示後重畫頁面)
// 訊息依目前的值重新計算，欄位沒有錯誤時不會改變狀態
func (f *Login) Restore(field credentials.Field) error {
	var msg string
	switch field {
	case credentials.FieldIdentifier:
		msg = credentials.ValidateIdentifier(f.Identifier)
		f.Errors.Identifier = msg
	case credentials.FieldSecret:
		msg = credentials.ValidateSecret(f.Secret)
		f.Errors.Secret = msg
	default:
		return ErrUnknownField
	}
	if msg != "" {
		f.state = Rejected
	}
	return nil
}

// Credentials 回傳目前的帳號與密碼
func (f *Login) Credentials() (identifier, secret string) {
	return f.Identifier, f.Secret
}
