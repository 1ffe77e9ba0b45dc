package profile

import (
	"github.com/DDeenis/url-shortener-frontend/internal/api"
	"github.com/DDeenis/url-shortener-frontend/internal/form"
	"github.com/pkg/errors"
)

const (
	errUsernameExist     = "username-exist"
	errWrongPassword     = "wrong-password"
	errPasswordsSame     = "passwords-same"
	errPasswordsNotMatch = "passwords-not-match"
)

type detailsForm struct {
	*form.Form
	Username *form.Binding
	Email    *form.Binding
}

func newDetailsForm(user *api.User) (*detailsForm, error) {
	f := form.New(
		form.Schema{
			"username": form.KindText,
			"email":    form.KindText,
		},
		form.WithDefaultValues(form.Values{
			"username": user.Username,
			"email":    user.Email,
		}),
	)

	bindings, err := f.RegisterMany(
		form.Registration{Field: "username", Options: form.RegisterOptions{
			Required:   true,
			Validators: []form.Validator{form.Max(64)},
		}},
		form.Registration{Field: "email", Options: form.RegisterOptions{
			Required:   true,
			Validators: []form.Validator{form.Email, form.Max(128)},
		}},
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &detailsForm{
		Form:     f,
		Username: bindings[0],
		Email:    bindings[1],
	}, nil
}

type passwordForm struct {
	*form.Form
	CurrentPassword   *form.Binding
	NewPassword       *form.Binding
	RepeatNewPassword *form.Binding
}

func newPasswordForm() (*passwordForm, error) {
	f := form.New(form.Schema{
		"currentPassword":   form.KindText,
		"newPassword":       form.KindText,
		"repeatNewPassword": form.KindText,
	})

	bindings, err := f.RegisterMany(
		form.Registration{Field: "currentPassword", Options: form.RegisterOptions{
			Required: true,
		}},
		form.Registration{Field: "newPassword", Options: form.RegisterOptions{
			Required:   true,
			Validators: []form.Validator{form.DifferentFrom("currentPassword", errPasswordsSame, "Passwords are the same")},
		}},
		form.Registration{Field: "repeatNewPassword", Options: form.RegisterOptions{
			Required:   true,
			Validators: []form.Validator{form.SameAs("newPassword", errPasswordsNotMatch, "Passwords do not match")},
		}},
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &passwordForm{
		Form:              f,
		CurrentPassword:   bindings[0],
		NewPassword:       bindings[1],
		RepeatNewPassword: bindings[2],
	}, nil
}
