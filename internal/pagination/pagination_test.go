package pagination

import (
	"errors"
	"net/http/httptest"
	"net/url"
	"testing"

	"matchdate-backend/internal/apperrors"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Params
	}{
		{"defaults", "", Params{Page: 1, PageSize: 10}},
		{"explicit", "page=3&pageSize=25", Params{Page: 3, PageSize: 25}},
		{"page below one clamped", "page=-2", Params{Page: 1, PageSize: 10}},
		{"page size capped", "pageSize=500", Params{Page: 1, PageSize: 50}},
		{"order by passed through", "orderBy=created", Params{Page: 1, PageSize: 10, OrderBy: "created"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("bad query: %v", err)
			}
			got, err := ParseParams(q)
			if err != nil {
				t.Fatalf("ParseParams failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseParams = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseParams_Invalid(t *testing.T) {
	for _, query := range []string{"pageSize=0", "pageSize=-5", "pageSize=abc", "page=abc"} {
		q, _ := url.ParseQuery(query)
		if _, err := ParseParams(q); !errors.Is(err, apperrors.ErrInvalidPageSize) {
			t.Errorf("ParseParams(%q): expected ErrInvalidPageSize, got %v", query, err)
		}
	}
}

func TestParamsOffset(t *testing.T) {
	if got := (Params{Page: 1, PageSize: 10}).Offset(); got != 0 {
		t.Errorf("first page offset = %d, want 0", got)
	}
	if got := (Params{Page: 3, PageSize: 10}).Offset(); got != 20 {
		t.Errorf("third page offset = %d, want 20", got)
	}
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name       string
		params     Params
		totalCount int
		want       Meta
	}{
		{"exact fit", Params{Page: 1, PageSize: 10}, 20, Meta{1, 10, 20, 2}},
		{"partial last page", Params{Page: 1, PageSize: 10}, 21, Meta{1, 10, 21, 3}},
		{"empty result set", Params{Page: 1, PageSize: 10}, 0, Meta{1, 10, 0, 0}},
		{"page past the end keeps true totals", Params{Page: 9, PageSize: 10}, 21, Meta{9, 10, 21, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewMeta(tt.params, tt.totalCount); got != tt.want {
				t.Errorf("NewMeta = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWriteHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteHeader(rec, Meta{CurrentPage: 2, PageSize: 10, TotalCount: 25, TotalPages: 3})

	want := `{"currentPage":2,"pageSize":10,"totalCount":25,"totalPages":3}`
	if got := rec.Header().Get(HeaderName); got != want {
		t.Errorf("%s header = %s, want %s", HeaderName, got, want)
	}
	if got := rec.Header().Get("Access-Control-Expose-Headers"); got != HeaderName {
		t.Errorf("Access-Control-Expose-Headers = %s, want %s", got, HeaderName)
	}
}
