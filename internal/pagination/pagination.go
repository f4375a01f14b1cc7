// Package pagination implements the paging contract shared by every listing
// endpoint: 1-based page numbers, a fixed page-size cap, and out-of-band
// metadata delivered through the Pagination response header.
package pagination

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"matchdate-backend/internal/apperrors"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 50

	// HeaderName is the response header carrying the metadata JSON.
	HeaderName = "Pagination"
)

// Params is the caller-supplied slice of a listing.
type Params struct {
	Page     int
	PageSize int
	OrderBy  string
}

// ParseParams reads page, pageSize and orderBy from a query string, applying
// defaults and the page-size cap. An explicit non-positive pageSize is a
// caller error; a page below 1 is clamped to the first page.
func ParseParams(q url.Values) (Params, error) {
	p := Params{Page: DefaultPage, PageSize: DefaultPageSize, OrderBy: q.Get("orderBy")}

	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Params{}, apperrors.ErrInvalidPageSize
		}
		p.Page = n
	}
	if p.Page < 1 {
		p.Page = 1
	}

	if raw := q.Get("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Params{}, apperrors.ErrInvalidPageSize
		}
		p.PageSize = n
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}

	return p, nil
}

// Offset returns the number of rows to skip for the requested page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Meta describes a page of results. Field names are part of the API contract.
type Meta struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalCount  int `json:"totalCount"`
	TotalPages  int `json:"totalPages"`
}

// NewMeta computes the metadata for a page over totalCount filtered rows.
// TotalPages is ceil(totalCount/pageSize). A page past the end is legal and
// simply pairs an empty item slice with the true totals.
func NewMeta(p Params, totalCount int) Meta {
	return Meta{
		CurrentPage: p.Page,
		PageSize:    p.PageSize,
		TotalCount:  totalCount,
		TotalPages:  (totalCount + p.PageSize - 1) / p.PageSize,
	}
}

// WriteHeader attaches the metadata to the response. The header is exposed
// through CORS so browser clients can read it.
func WriteHeader(w http.ResponseWriter, m Meta) {
	body, err := json.Marshal(m)
	if err != nil {
		return
	}
	w.Header().Set(HeaderName, string(body))
	w.Header().Add("Access-Control-Expose-Headers", HeaderName)
}
