package setup

import (
	"context"
	"net/http"
	"net/url"

	"github.com/DDeenis/url-shortener-frontend/internal/config"
	"github.com/DDeenis/url-shortener-frontend/internal/crypto"
	"github.com/DDeenis/url-shortener-frontend/internal/http/session"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

var sessionStores = NewRegistry[sessions.Store]()

var getSessionStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*session.Store, error) {
	keyPairs := make([][]byte, 0)
	if len(conf.HTTP.Session.Keys) == 0 {
		key, err := crypto.RandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate cookie signing key")
		}

		keyPairs = append(keyPairs, key)
	} else {
		for _, k := range conf.HTTP.Session.Keys {
			keyPairs = append(keyPairs, []byte(k))
		}
	}

	options := &sessions.Options{
		Path:     conf.HTTP.Session.Cookie.Path,
		MaxAge:   int(conf.HTTP.Session.Cookie.MaxAge.Seconds()),
		HttpOnly: conf.HTTP.Session.Cookie.HTTPOnly,
		Secure:   conf.HTTP.Session.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	sessionStores.Register("cookie", func(u *url.URL) (sessions.Store, error) {
		store := sessions.NewCookieStore(keyPairs...)
		store.Options = options
		store.MaxAge(options.MaxAge)
		return store, nil
	})

	sessionStores.Register("file", func(u *url.URL) (sessions.Store, error) {
		if err := ensureDirectory(u.Path); err != nil {
			return nil, errors.WithStack(err)
		}

		store := sessions.NewFilesystemStore(u.Path, keyPairs...)
		store.Options = options
		store.MaxAge(options.MaxAge)
		return store, nil
	})

	store, err := sessionStores.From(conf.HTTP.Session.Store)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create session store from '%s'", conf.HTTP.Session.Store)
	}

	return session.NewStore(store, conf.HTTP.Session.Name), nil
})
