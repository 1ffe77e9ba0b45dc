package session

import (
	"encoding/gob"
	"log/slog"
	"net/http"

	"github.com/DDeenis/url-shortener-frontend/internal/api"
	"github.com/DDeenis/url-shortener-frontend/internal/slogx"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

const (
	userAttr    = "u"
	visitorAttr = "v"
)

var ErrNotFound = errors.New("session not found")

func init() {
	gob.Register(&User{})
}

// User is the authenticated user kept in the session along with the cookies
// of its backend session.
type User struct {
	User    api.User
	Cookies []Cookie
}

type Cookie struct {
	Name  string
	Value string
}

func (u *User) HTTPCookies() []*http.Cookie {
	cookies := make([]*http.Cookie, 0, len(u.Cookies))
	for _, c := range u.Cookies {
		cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value})
	}
	return cookies
}

// Store wraps a gorilla session store with typed accessors.
type Store struct {
	store sessions.Store
	name  string
}

func NewStore(store sessions.Store, name string) *Store {
	return &Store{
		store: store,
		name:  name,
	}
}

func (s *Store) User(r *http.Request) (*User, error) {
	sess, err := s.get(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	user, ok := sess.Values[userAttr].(*User)
	if !ok {
		return nil, errors.WithStack(ErrNotFound)
	}

	return user, nil
}

func (s *Store) SaveUser(w http.ResponseWriter, r *http.Request, auth *api.Authentication) error {
	sess, err := s.get(r)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return errors.WithStack(err)
	}

	user := &User{
		User:    *auth.User,
		Cookies: make([]Cookie, 0, len(auth.Cookies)),
	}

	for _, c := range auth.Cookies {
		user.Cookies = append(user.Cookies, Cookie{Name: c.Name, Value: c.Value})
	}

	sess.Values[userAttr] = user

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// UpdateUser applies fn to the session user and saves the session.
func (s *Store) UpdateUser(w http.ResponseWriter, r *http.Request, fn func(user *api.User)) error {
	sess, err := s.get(r)
	if err != nil {
		return errors.WithStack(err)
	}

	user, ok := sess.Values[userAttr].(*User)
	if !ok {
		return errors.WithStack(ErrNotFound)
	}

	fn(&user.User)

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// ClearUser removes the user from the session. The visitor identifier is
// kept.
func (s *Store) ClearUser(w http.ResponseWriter, r *http.Request) error {
	sess, err := s.get(r)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return errors.WithStack(err)
	}

	delete(sess.Values, userAttr)

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Visitor returns the identifier of the browser session, creating it on
// first visit.
func (s *Store) Visitor(w http.ResponseWriter, r *http.Request) (string, error) {
	sess, err := s.get(r)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return "", errors.WithStack(err)
	}

	if visitor, ok := sess.Values[visitorAttr].(string); ok && visitor != "" {
		return visitor, nil
	}

	visitor := xid.New().String()
	sess.Values[visitorAttr] = visitor

	if err := sess.Save(r, w); err != nil {
		return "", errors.WithStack(err)
	}

	return visitor, nil
}

// get returns the session of the request. When the session cookie can not be
// decoded, a new session is returned along with ErrNotFound.
func (s *Store) get(r *http.Request) (*sessions.Session, error) {
	sess, err := s.store.Get(r, s.name)
	if err != nil {
		slog.WarnContext(r.Context(), "could not retrieve session from store", slogx.Error(errors.WithStack(err)))
		return sess, errors.WithStack(ErrNotFound)
	}

	return sess, nil
}
