package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQuery_Defauts(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 0, filter.Offset)
	assert.True(t, filter.WithPagination)
	assert.Empty(t, filter.Search)
}

func TestParseFilterFromQuery_PaginationEtTri(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "25")
	values.Set("page", "3")
	values.Set("search", "latitude")
	values.Set("sort[date_achat]", "DESC")
	values.Set("sort[nom]", "n'importe")
	values.Set("filter[statut]", "Disponible")

	filter := ParseFilterFromQuery(values)

	assert.Equal(t, 25, filter.Limit)
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 50, filter.Offset, "offset dérivé de la page")
	assert.Equal(t, "latitude", filter.Search)
	assert.Equal(t, "desc", filter.Sort["date_achat"])
	assert.NotContains(t, filter.Sort, "nom", "direction inconnue ignorée")
	assert.Equal(t, "Disponible", filter.Filter["statut"])
}

func TestParseFilterFromQuery_LimiteBornee(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "100000")

	filter := ParseFilterFromQuery(values)
	assert.Equal(t, MaxLimit, filter.Limit)
}

func TestParseFilterFromQuery_SansPagination(t *testing.T) {
	values := url.Values{}
	values.Set("withPagination", "false")

	filter := ParseFilterFromQuery(values)
	assert.False(t, filter.WithPagination)
}
