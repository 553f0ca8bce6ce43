package envelope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/hei-admin-console/pkg/errors"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestDecodeListNormalisesPaginationSpellings(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{
			name: "camelCase totals",
			body: `{"success":true,"data":{"items":[{"id":"1","name":"a"}],"pagination":{"page":2,"totalPages":5,"totalItems":42,"limit":10}}}`,
		},
		{
			name: "short spellings",
			body: `{"success":true,"data":{"items":[{"id":"1","name":"a"}],"pagination":{"page":2,"pages":5,"total":42,"size":10}}}`,
		},
		{
			name: "snake_case totals",
			body: `{"success":true,"data":{"items":[{"id":"1","name":"a"}],"pagination":{"page":2,"total_pages":5,"total_items":42,"page_size":10}}}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items, pagination, err := DecodeList[item]([]byte(tc.body))
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, "1", items[0].ID)
			assert.Equal(t, 2, pagination.Page)
			assert.Equal(t, 5, pagination.TotalPages)
			assert.Equal(t, 42, pagination.TotalItems)
			assert.Equal(t, 10, pagination.PageSize)
		})
	}
}

func TestDecodeListDerivesTotalPages(t *testing.T) {
	body := `{"success":true,"data":{"items":[],"pagination":{"page":1,"total":25,"limit":10}}}`
	_, pagination, err := DecodeList[item]([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, 3, pagination.TotalPages)
}

func TestDecodeSurfacesServerMessageVerbatim(t *testing.T) {
	_, err := Decode([]byte(`{"success":false,"error":"course code already exists"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrServer))
	assert.Equal(t, "course code already exists", appErrors.FromError(err).Message)
}

func TestDecodeFallsBackToGenericRejection(t *testing.T) {
	_, err := Decode([]byte(`{"success":false}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrServer))
	assert.NotEmpty(t, appErrors.FromError(err).Message)
}

func TestDecodeMapsMalformedJSONToNetworkError(t *testing.T) {
	_, err := Decode([]byte(`<html>gateway timeout</html>`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNetwork))
}

func TestDecodeIntoUnwrapsData(t *testing.T) {
	var out item
	err := DecodeInto([]byte(`{"success":true,"data":{"id":"9","name":"x"}}`), &out)
	require.NoError(t, err)
	assert.Equal(t, "9", out.ID)
}
