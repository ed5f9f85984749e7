package view

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"strings"
	"testing"

	"annotate-me/internal/credentials"
	"annotate-me/internal/form"

	"github.com/stretchr/testify/require"
)

func render(t *testing.T, name string, data any) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, name, data, nil))
	return buf.String()
}

func TestNewRendererError(t *testing.T) {
	t.Cleanup(func() { parseFS = template.ParseFS })
	parseFS = func(fs.FS, ...string) (*template.Template, error) { return nil, errors.New("parse") }
	_, err := NewRenderer()
	require.Error(t, err)
}

func TestRenderLanding(t *testing.T) {
	out := render(t, LandingPage, nil)
	require.Contains(t, out, "ANNOTATE ME")
	require.Contains(t, out, `href="/login"`)
}

func TestRenderForgetPassword(t *testing.T) {
	out := render(t, ForgetPasswordPage, nil)
	require.Contains(t, out, "Forget password?")
	require.Contains(t, out, `href="/login"`)
}

func TestRenderLogin(t *testing.T) {
	t.Run("empty form", func(t *testing.T) {
		out := render(t, LoginPage, Login{Form: form.NewLogin()})
		require.Contains(t, out, `type="password"`)
		require.Contains(t, out, `href="/forget-password"`)
		require.NotContains(t, out, "error-message")
		require.NotContains(t, out, "login-success")
	})

	t.Run("errors", func(t *testing.T) {
		f := form.NewLogin()
		require.NoError(t, f.Input(credentials.FieldIdentifier, `<b>john doe</b>`))
		require.False(t, f.Submit())
		out := render(t, LoginPage, Login{Form: f})
		require.Contains(t, out, credentials.MsgUsernameInvalid)
		require.Contains(t, out, credentials.MsgSecretRequired)
		require.Contains(t, out, `aria-invalid="true"`)
		require.NotContains(t, out, "<b>john doe</b>")
		require.Contains(t, out, "&lt;b&gt;john doe&lt;/b&gt;")
	})

	t.Run("visible secret", func(t *testing.T) {
		f := form.NewLogin()
		f.ToggleSecretVisibility()
		out := render(t, LoginPage, Login{Form: f, Remember: true})
		require.Contains(t, out, `id="secret" type="text"`)
		require.Contains(t, out, `name="show_secret" value="true"`)
		require.Contains(t, out, "Hide password")
		require.Contains(t, out, " checked")
	})

	t.Run("accepted", func(t *testing.T) {
		out := render(t, LoginPage, Login{Form: form.NewLogin(), Accepted: true})
		require.Contains(t, out, "Login details accepted.")
	})
}

func TestRenderLoginDefaultButtonSubmits(t *testing.T) {
	out := render(t, LoginPage, Login{Form: form.NewLogin()})
	first := strings.Index(out, `type="submit"`)
	require.NotEqual(t, -1, first)
	toggle := strings.Index(out, `value="toggle"`)
	require.Greater(t, toggle, first)

	// 第一個 submit 按鈕決定 Enter 鍵的行為，必須是送出而不是切換
	tag := out[first:]
	tag = tag[:strings.Index(tag, ">")]
	require.Contains(t, tag, `value="submit"`)
}

func TestRenderLoginClearOnInput(t *testing.T) {
	f := form.NewLogin()
	require.NoError(t, f.Input(credentials.FieldIdentifier, "john doe"))
	require.False(t, f.Submit())
	out := render(t, LoginPage, Login{Form: f})

	require.Contains(t, out, `data-field="identifier"`)
	require.Contains(t, out, `data-field="secret"`)
	require.Contains(t, out, `id="identifier-error" class="error-message"`)
	require.Contains(t, out, `id="secret-error" class="error-message"`)
	require.Contains(t, out, `name="identifier_error" value="true"`)
	require.Contains(t, out, `name="secret_error" value="true"`)
	require.Contains(t, out, `addEventListener("input"`)

	clean := render(t, LoginPage, Login{Form: form.NewLogin()})
	require.NotContains(t, clean, `name="identifier_error"`)
	require.NotContains(t, clean, `name="secret_error"`)
}

func TestSecretInputType(t *testing.T) {
	require.Equal(t, "password", Login{}.SecretInputType())
	f := form.NewLogin()
	f.SecretVisible = true
	require.Equal(t, "text", Login{Form: f}.SecretInputType())
}
