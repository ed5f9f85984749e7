// File: internal/model/attempt.go
package model

import "time"

// 送出來源
const (
	SourceForm = "form"
	SourceAPI  = "api"
)

// LoginAttempt 一次登入送出的驗證結果
// 不保存帳號與密碼本身
type LoginAttempt struct {
	ID              int64     `db:"id" json:"id"`
	Source          string    `db:"source" json:"source"`
	IdentifierKind  string    `db:"identifier_kind" json:"identifier_kind"`
	Accepted        bool      `db:"accepted" json:"accepted"`
	IdentifierError string    `db:"identifier_error" json:"identifier_error"`
	SecretError     string    `db:"secret_error" json:"secret_error"`
	RemoteIP        string    `db:"remote_ip" json:"remote_ip"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
