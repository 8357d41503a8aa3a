package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	assert.Equal(t, Params{Limit: 6, Offset: 0}, Parse("", ""))
	assert.Equal(t, Params{Limit: 10, Offset: 4}, Parse("10", "4"))
	assert.Equal(t, Params{Limit: 6, Offset: 0}, Parse("abc", "-3"))
	assert.Equal(t, Params{Limit: MaxLimit, Offset: 0}, Parse("100000", "0"))
}

func TestBuild_FirstPageHasNext(t *testing.T) {
	base, err := url.Parse("http://example.com/api/recipes?author=3")
	require.NoError(t, err)

	page := Build(base, Params{Limit: 6}, 10, []int{1, 2, 3, 4, 5, 6})

	require.NotNil(t, page.Next)
	assert.Nil(t, page.Previous)
	next, err := url.Parse(*page.Next)
	require.NoError(t, err)
	assert.Equal(t, "6", next.Query().Get("limit"))
	assert.Equal(t, "6", next.Query().Get("offset"))
	assert.Equal(t, "3", next.Query().Get("author"))
}

func TestBuild_LastPage(t *testing.T) {
	base, _ := url.Parse("http://example.com/api/recipes?limit=6&offset=6")

	page := Build(base, Params{Limit: 6, Offset: 6}, 10, []int{7, 8, 9, 10})

	assert.Nil(t, page.Next)
	require.NotNil(t, page.Previous)
	prev, _ := url.Parse(*page.Previous)
	assert.Empty(t, prev.Query().Get("offset"))
}

func TestBuild_EmptyResultsSerializeAsList(t *testing.T) {
	base, _ := url.Parse("http://example.com/api/users")

	page := Build[int](base, Params{Limit: 6}, 0, nil)

	assert.NotNil(t, page.Results)
	assert.Len(t, page.Results, 0)
}
