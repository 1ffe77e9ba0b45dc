package component

import (
	"context"
	"net/http"

	"github.com/DDeenis/url-shortener-frontend/internal/api"
	"github.com/DDeenis/url-shortener-frontend/internal/http/authz"
	"github.com/a-h/templ"
)

type NavbarVModel struct {
	User  *api.User
	Links []NavbarLink
}

type NavbarLink struct {
	Label  string
	URL    templ.SafeURL
	Active bool
}

func FillNavbarVModel(ctx context.Context, vmodel *NavbarVModel, r *http.Request) error {
	vmodel.User = User(ctx)

	link := func(key string, path string) NavbarLink {
		return NavbarLink{
			Label:  T(ctx, key),
			URL:    BaseURL(ctx, WithPath(path)),
			Active: MatchPath(ctx, path),
		}
	}

	vmodel.Links = []NavbarLink{link("navbar.shortener", "/")}

	if AssertUser(ctx, authz.IsAuthenticated) {
		vmodel.Links = append(vmodel.Links,
			link("navbar.history", "/history/"),
			link("navbar.profile", "/profile/"),
		)
	}

	return nil
}
