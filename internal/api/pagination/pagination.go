package pagination

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Params are the page window requested by the client.
type Params struct {
	Page     int
	PageSize int
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Params) Limit() int {
	return p.PageSize
}

// FromRequest reads page/page_size query params, clamping to sane values.
func FromRequest(c *gin.Context) Params {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize)))
	if err != nil || size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Params{Page: page, PageSize: size}
}

// Page is the list envelope: total count plus links to the neighbouring
// pages, with the window's rows under results.
type Page struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// NewPage builds the envelope, deriving next/previous URLs from the
// request URL.
func NewPage(c *gin.Context, p Params, count int64, results interface{}) Page {
	page := Page{Count: count, Results: results}

	last := int((count + int64(p.PageSize) - 1) / int64(p.PageSize))
	if p.Page < last {
		page.Next = pageURL(c.Request.URL, p.Page+1)
	}
	if p.Page > 1 {
		page.Previous = pageURL(c.Request.URL, p.Page-1)
	}
	return page
}

func pageURL(u *url.URL, page int) *string {
	copied := *u
	q := copied.Query()
	q.Set("page", strconv.Itoa(page))
	copied.RawQuery = q.Encode()
	s := copied.String()
	return &s
}
