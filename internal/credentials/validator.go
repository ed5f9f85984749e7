// File: internal/credentials/validator.go
package credentials

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"
)

// 各欄位錯誤訊息，前端直接顯示
const (
	MsgIdentifierRequired = "Email or Username is required"
	MsgEmailInvalid       = "Please enter a valid email address"
	MsgUsernameInvalid    = "Username can only contain letters, numbers, hyphens (-), and underscores (_). No spaces allowed."

	MsgSecretRequired  = "Password is required"
	MsgSecretTooShort  = "Password must be at least 8 characters long"
	MsgSecretNoUpper   = "Password must contain at least one uppercase letter"
	MsgSecretNoLower   = "Password must contain at least one lowercase letter"
	MsgSecretNoDigit   = "Password must contain at least one number"
	MsgSecretNoSpecial = "Password must contain at least one special character"
)

// MinSecretLength 密碼最短長度 (以 UTF-16 code unit 計，與瀏覽器 length 一致)
const MinSecretLength = 8

// SpecialChars 密碼可接受的特殊字元
const SpecialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// 空白字元集合與瀏覽器一致：Unicode White_Space 去掉 U+0085，再加上 U+FEFF
const ws = `\s\v\p{Z}\x{FEFF}`

var (
	emailRe    = regexp.MustCompile(`^[^` + ws + `@]+@[^` + ws + `@]+\.[^` + ws + `@]+$`)
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// Kind 帳號欄位的分類
type Kind int

const (
	Missing Kind = iota
	EmailCandidate
	UsernameCandidate
)

func (k Kind) String() string {
	switch k {
	case Missing:
		return "missing"
	case EmailCandidate:
		return "email"
	case UsernameCandidate:
		return "username"
	default:
		return "unknown"
	}
}

func isSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

func blank(s string) bool {
	return strings.TrimFunc(s, isSpace) == ""
}

// ClassifyIdentifier 判斷輸入是 email 還是 username
// 只要含有 @ 就一律視為 email
func ClassifyIdentifier(value string) Kind {
	switch {
	case blank(value):
		return Missing
	case strings.Contains(value, "@"):
		return EmailCandidate
	default:
		return UsernameCandidate
	}
}

// ValidateIdentifier 回傳空字串代表通過，否則回傳第一個不符合的規則訊息
func ValidateIdentifier(value string) string {
	switch ClassifyIdentifier(value) {
	case Missing:
		return MsgIdentifierRequired
	case EmailCandidate:
		if !emailRe.MatchString(value) {
			return MsgEmailInvalid
		}
	case UsernameCandidate:
		if !usernameRe.MatchString(value) {
			return MsgUsernameInvalid
		}
	}
	return ""
}

// ValidateSecret 依序檢查密碼規則，遇到第一個失敗就回傳
func ValidateSecret(value string) string {
	if blank(value) {
		return MsgSecretRequired
	}
	if secretLength(value) < MinSecretLength {
		return MsgSecretTooShort
	}
	if !strings.ContainsFunc(value, inRange('A', 'Z')) {
		return MsgSecretNoUpper
	}
	if !strings.ContainsFunc(value, inRange('a', 'z')) {
		return MsgSecretNoLower
	}
	if !strings.ContainsFunc(value, inRange('0', '9')) {
		return MsgSecretNoDigit
	}
	if !strings.ContainsAny(value, SpecialChars) {
		return MsgSecretNoSpecial
	}
	return ""
}

// secretLength 以 UTF-16 code unit 計算長度，emoji 等 BMP 以外字元算 2
func secretLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

func inRange(lo, hi rune) func(rune) bool {
	return func(r rune) bool { return r >= lo && r <= hi }
}

// ValidateCredentials 兩個欄位各自獨立驗證
func ValidateCredentials(identifier, secret string) Result {
	return Result{
		Identifier: ValidateIdentifier(identifier),
		Secret:     ValidateSecret(secret),
	}
}
