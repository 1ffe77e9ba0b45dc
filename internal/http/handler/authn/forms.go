package authn

import (
	"github.com/DDeenis/url-shortener-frontend/internal/form"
	"github.com/pkg/errors"
)

const (
	errInvalidCredentials = "invalid-credentials"
	errUsernameExist      = "username-exist"
	errPasswordsNotMatch  = "passwords-not-match"
)

type loginForm struct {
	*form.Form
	Username *form.Binding
	Password *form.Binding
}

func newLoginForm() (*loginForm, error) {
	f := form.New(form.Schema{
		"username": form.KindText,
		"password": form.KindText,
	})

	bindings, err := f.RegisterMany(
		form.Registration{Field: "username", Options: form.RegisterOptions{Required: true}},
		form.Registration{Field: "password", Options: form.RegisterOptions{Required: true}},
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &loginForm{
		Form:     f,
		Username: bindings[0],
		Password: bindings[1],
	}, nil
}

type registerForm struct {
	*form.Form
	Username       *form.Binding
	Email          *form.Binding
	Password       *form.Binding
	RepeatPassword *form.Binding
}

func newRegisterForm() (*registerForm, error) {
	f := form.New(form.Schema{
		"username":       form.KindText,
		"email":          form.KindText,
		"password":       form.KindText,
		"repeatPassword": form.KindText,
	})

	bindings, err := f.RegisterMany(
		form.Registration{Field: "username", Options: form.RegisterOptions{
			Required:   true,
			Validators: []form.Validator{form.Max(64)},
		}},
		form.Registration{Field: "email", Options: form.RegisterOptions{
			Required:   true,
			Validators: []form.Validator{form.Email},
		}},
		form.Registration{Field: "password", Options: form.RegisterOptions{
			Required:   true,
			Validators: []form.Validator{form.Min(8)},
		}},
		form.Registration{Field: "repeatPassword", Options: form.RegisterOptions{
			Required:   true,
			Validators: []form.Validator{form.SameAs("password", errPasswordsNotMatch, "Passwords do not match")},
		}},
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &registerForm{
		Form:           f,
		Username:       bindings[0],
		Email:          bindings[1],
		Password:       bindings[2],
		RepeatPassword: bindings[3],
	}, nil
}
