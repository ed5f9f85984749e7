package credentials

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

type loginForm struct {
	Identifier string `validate:"login_identifier"`
	Secret     string `validate:"login_secret"`
}

func newValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	require.NoError(t, RegisterValidations(v))
	return v
}

func TestRegisterValidations(t *testing.T) {
	v := newValidator(t)

	require.NoError(t, v.Struct(&loginForm{Identifier: "john@example.com", Secret: "Passw0rd!"}))
	require.Error(t, v.Struct(&loginForm{}))
	require.Error(t, v.Struct(&loginForm{Identifier: "john", Secret: "short"}))
}

func TestResultFromError(t *testing.T) {
	v := newValidator(t)

	r, ok := ResultFromError(v.Struct(&loginForm{Identifier: "john doe", Secret: "short"}))
	require.True(t, ok)
	require.Equal(t, MsgUsernameInvalid, r.Identifier)
	require.Equal(t, MsgSecretTooShort, r.Secret)

	r, ok = ResultFromError(v.Struct(&loginForm{Identifier: "john", Secret: ""}))
	require.True(t, ok)
	require.Empty(t, r.Identifier)
	require.Equal(t, MsgSecretRequired, r.Secret)

	_, ok = ResultFromError(errors.New("boom"))
	require.False(t, ok)
	_, ok = ResultFromError(nil)
	require.False(t, ok)

	type other struct {
		Name string `validate:"required"`
	}
	_, ok = ResultFromError(v.Struct(&other{}))
	require.False(t, ok)
}
