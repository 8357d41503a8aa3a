package pagination

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 6
	MaxLimit     = 100
)

// Params are the limit/offset query parameters of a list request.
type Params struct {
	Limit  int
	Offset int
}

// Page is the count/next/previous envelope of every paginated list.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// FromContext parses limit and offset. Missing or malformed values fall back
// to the defaults; limit is capped at MaxLimit.
func FromContext(c *gin.Context) Params {
	return Parse(c.Query("limit"), c.Query("offset"))
}

func Parse(limitRaw, offsetRaw string) Params {
	p := Params{Limit: DefaultLimit}
	if v, err := strconv.Atoi(limitRaw); err == nil && v > 0 {
		p.Limit = v
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if v, err := strconv.Atoi(offsetRaw); err == nil && v > 0 {
		p.Offset = v
	}
	return p
}

// NewPage wraps results using the request URL for the next/previous links.
func NewPage[T any](c *gin.Context, p Params, count int64, results []T) Page[T] {
	return Build(RequestURL(c), p, count, results)
}

func Build[T any](base *url.URL, p Params, count int64, results []T) Page[T] {
	if results == nil {
		results = []T{}
	}
	page := Page[T]{Count: count, Results: results}

	if int64(p.Offset+p.Limit) < count {
		next := withPage(base, p.Limit, p.Offset+p.Limit)
		page.Next = &next
	}
	if p.Offset > 0 {
		prevOffset := p.Offset - p.Limit
		if prevOffset < 0 {
			prevOffset = 0
		}
		prev := withPage(base, p.Limit, prevOffset)
		page.Previous = &prev
	}
	return page
}

// RequestURL reconstructs the absolute URL of the current request.
func RequestURL(c *gin.Context) *url.URL {
	u := *c.Request.URL
	u.Host = c.Request.Host
	u.Scheme = "http"
	if c.Request.TLS != nil {
		u.Scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		u.Scheme = proto
	}
	return &u
}

func withPage(base *url.URL, limit, offset int) string {
	u := *base
	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	} else {
		q.Del("offset")
	}
	u.RawQuery = q.Encode()
	return u.String()
}
