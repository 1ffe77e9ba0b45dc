package url

import (
	"net/url"
	"testing"
)

func TestMutate(t *testing.T) {
	type testCase struct {
		Name     string
		URL      string
		Funcs    []MutationFunc
		Expected string
	}

	testCases := []testCase{
		{
			Name:     "path",
			URL:      "http://localhost:3000/",
			Funcs:    []MutationFunc{WithPath("/auth", "login")},
			Expected: "http://localhost:3000/auth/login",
		},
		{
			Name:     "path trailing slash",
			URL:      "http://localhost:3000/",
			Funcs:    []MutationFunc{WithPath("/history/")},
			Expected: "http://localhost:3000/history/",
		},
		{
			Name:     "path format",
			URL:      "http://localhost:3000/",
			Funcs:    []MutationFunc{WithPathf("/history/%s/toggle", "abc")},
			Expected: "http://localhost:3000/history/abc/toggle",
		},
		{
			Name:     "values",
			URL:      "http://localhost:3000/?page=1",
			Funcs:    []MutationFunc{WithValues("query", "example")},
			Expected: "http://localhost:3000/?page=1&query=example",
		},
		{
			Name:     "without values",
			URL:      "http://localhost:3000/?page=1&query=example",
			Funcs:    []MutationFunc{WithoutValues("page", "*")},
			Expected: "http://localhost:3000/?query=example",
		},
		{
			Name:     "query replaces and deletes",
			URL:      "http://localhost:3000/history/?page=3&query=example&dateQuery=last7days",
			Funcs:    []MutationFunc{WithQuery(url.Values{"page": {"4"}, "dateQuery": {""}})},
			Expected: "http://localhost:3000/history/?page=4&query=example",
		},
		{
			Name:     "raw query",
			URL:      "http://localhost:3000/history/?page=3",
			Funcs:    []MutationFunc{WithPath("/history/abc/toggle"), WithRawQuery("page=3&query=a")},
			Expected: "http://localhost:3000/history/abc/toggle?page=3&query=a",
		},
		{
			Name:     "values reset",
			URL:      "http://localhost:3000/?link=abc",
			Funcs:    []MutationFunc{WithValuesReset()},
			Expected: "http://localhost:3000/",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			base, err := url.Parse(tc.URL)
			if err != nil {
				t.Fatalf("%+v", err)
			}

			mutated := Mutate(base, tc.Funcs...)

			if e, g := tc.Expected, mutated.String(); e != g {
				t.Errorf("expected '%s', got '%s'", e, g)
			}

			if e, g := tc.URL, base.String(); e != g {
				t.Errorf("expected base url to be left untouched, got '%s'", g)
			}
		})
	}
}
