package component

import (
	"context"
	"net/http"

	"github.com/DDeenis/url-shortener-frontend/internal/http/session"
)

type LayoutVModel struct {
	Title   string
	Navbar  NavbarVModel
	Flashes []session.Flash
}

func FillLayoutVModel(ctx context.Context, vmodel *LayoutVModel, r *http.Request) error {
	if vmodel.Title == "" {
		vmodel.Title = T(ctx, "app.title")
	}

	vmodel.Flashes = session.ContextFlashes(ctx)

	if err := FillNavbarVModel(ctx, &vmodel.Navbar, r); err != nil {
		return err
	}

	return nil
}
