package url

import (
	"fmt"
	"net/url"
	"path"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

type URL = url.URL

var Parse = url.Parse

func Mutate(u *url.URL, funcs ...MutationFunc) *url.URL {
	cloned := clone(u)

	for _, fn := range funcs {
		fn(cloned)
	}

	return cloned
}

type MutationFunc func(u *url.URL)

func keyValuesToValues(kv []string) url.Values {
	if len(kv)%2 != 0 {
		panic(errors.New("expected pair number of key/values"))
	}

	values := make(url.Values)

	var key string
	for idx := range kv {
		if idx%2 == 0 {
			key = kv[idx]
			continue
		}

		values.Add(key, kv[idx])
	}

	return values
}

func WithValues(kv ...string) MutationFunc {
	values := keyValuesToValues(kv)

	return func(u *url.URL) {
		query := u.Query()

		for k, vv := range values {
			for _, v := range vv {
				query.Add(k, v)
			}
		}

		u.RawQuery = query.Encode()
	}
}

// WithQuery replaces the given query parameters. Empty values remove the
// parameter.
func WithQuery(values url.Values) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()

		for k, vv := range values {
			if len(vv) == 0 || (len(vv) == 1 && vv[0] == "") {
				query.Del(k)
				continue
			}

			query[k] = vv
		}

		u.RawQuery = query.Encode()
	}
}

func WithRawQuery(rawQuery string) MutationFunc {
	return func(u *url.URL) {
		u.RawQuery = rawQuery
	}
}

func WithValuesReset() MutationFunc {
	return func(u *url.URL) {
		u.RawQuery = ""
	}
}

func WithoutValues(kv ...string) MutationFunc {
	toDelete := keyValuesToValues(kv)

	return func(u *url.URL) {
		query := u.Query()

		for keyToDelete, valuesToDelete := range toDelete {
			values, keyExists := query[keyToDelete]
			if !keyExists {
				continue
			}

			for _, d := range valuesToDelete {
				if d == "*" {
					query.Del(keyToDelete)
					break
				}

				query[keyToDelete] = slices.DeleteFunc(values, func(value string) bool {
					return value == d
				})
			}
		}
		u.RawQuery = query.Encode()
	}
}

// WithPath sets the path of the URL. A trailing slash on the last element is
// kept so that mounted sections are addressed without a redirect.
func WithPath(paths ...string) MutationFunc {
	return func(u *url.URL) {
		u.Path = join(paths...)
	}
}

func WithPathf(format string, params ...any) MutationFunc {
	return func(u *url.URL) {
		u.Path = join(fmt.Sprintf(format, params...))
	}
}

func join(paths ...string) string {
	joined := path.Join(paths...)
	if len(paths) > 0 && strings.HasSuffix(paths[len(paths)-1], "/") && !strings.HasSuffix(joined, "/") {
		joined += "/"
	}
	return joined
}

func clone[T any](v *T) *T {
	copy := *v
	return &copy
}
