package history

import (
	"net/url"
	"testing"
)

func TestParsePagination(t *testing.T) {
	type testCase struct {
		Query    string
		Expected pagination
		HasPrev  bool
	}

	testCases := []testCase{
		{Query: "", Expected: pagination{Page: 1, PageSize: 10}},
		{Query: "page=3", Expected: pagination{Page: 3, PageSize: 10}, HasPrev: true},
		{Query: "page=0&pageSize=-1", Expected: pagination{Page: 1, PageSize: 10}},
		{Query: "page=abc&pageSize=25", Expected: pagination{Page: 1, PageSize: 25}},
		{Query: "pageSize=1000", Expected: pagination{Page: 1, PageSize: maxPageSize}},
	}

	for _, tc := range testCases {
		t.Run(tc.Query, func(t *testing.T) {
			query, err := url.ParseQuery(tc.Query)
			if err != nil {
				t.Fatalf("%+v", err)
			}

			p := parsePagination(query, 10)

			if p != tc.Expected {
				t.Errorf("expected %+v, got %+v", tc.Expected, p)
			}

			if p.HasPrev() != tc.HasPrev {
				t.Errorf("expected hasPrev %v, got %v", tc.HasPrev, p.HasPrev())
			}
		})
	}
}
