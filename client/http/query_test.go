package http

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listParams struct {
	Blockchain *string    `json:"blockchain,omitempty"`
	RefID      *string    `json:"refId,omitempty"`
	Name       *string    `json:"name,omitempty"`
	IncludeAll *bool      `json:"includeAll,omitempty"`
	From       *time.Time `json:"from,omitempty"`
	Amounts    []string   `json:"amounts,omitempty"`
	PageParams
}

func strPtr(s string) *string { return &s }

func TestFlattenQueryDropsAbsentAndEmpty(t *testing.T) {
	values, err := FlattenQuery(listParams{Blockchain: nil, RefID: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, values)
	assert.Equal(t, "", values.Encode())
}

func TestFlattenQuerySingleValue(t *testing.T) {
	values, err := FlattenQuery(&listParams{Blockchain: strPtr("ETH-SEPOLIA"), RefID: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "blockchain=ETH-SEPOLIA", values.Encode())
}

func TestFlattenQueryEncodesValues(t *testing.T) {
	from := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	pageSize := 25

	values, err := FlattenQuery(listParams{
		Name:       strPtr("ops & treasury"),
		IncludeAll: boolPtr(true),
		From:       &from,
		Amounts:    []string{"1", "", "2.5"},
		PageParams: PageParams{PageAfter: strPtr("c2a3e1b0-0000-4000-8000-000000000001"), PageSize: &pageSize},
	})
	require.NoError(t, err)

	assert.Equal(t, "ops & treasury", values.Get("name"))
	assert.Equal(t, "true", values.Get("includeAll"))
	assert.Equal(t, "2024-01-02T03:04:05Z", values.Get("from"))
	assert.Equal(t, "1,2.5", values.Get("amounts"))
	assert.Equal(t, "25", values.Get("pageSize"))
	assert.Equal(t, "c2a3e1b0-0000-4000-8000-000000000001", values.Get("pageAfter"))
	assert.Empty(t, values.Get("pageBefore"))

	encoded := values.Encode()
	assert.Contains(t, encoded, "name=ops+%26+treasury")

	parsed, err := url.ParseQuery(encoded)
	require.NoError(t, err)
	assert.Equal(t, values, parsed)
}

func TestFlattenQueryInputs(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		values, err := FlattenQuery(nil)
		require.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var p *listParams
		values, err := FlattenQuery(p)
		require.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("string map", func(t *testing.T) {
		values, err := FlattenQuery(map[string]string{"a": "1", "b": ""})
		require.NoError(t, err)
		assert.Equal(t, "a=1", values.Encode())
	})

	t.Run("url values", func(t *testing.T) {
		values, err := FlattenQuery(url.Values{"a": {"1", ""}})
		require.NoError(t, err)
		assert.Equal(t, "a=1", values.Encode())
	})

	t.Run("nested object rejected", func(t *testing.T) {
		_, err := FlattenQuery(struct {
			Inner struct{ A string } `json:"inner"`
		}{})
		assert.Error(t, err)
	})

	t.Run("non-object rejected", func(t *testing.T) {
		_, err := FlattenQuery([]string{"a"})
		assert.Error(t, err)
	})
}

func TestPageParamsCursors(t *testing.T) {
	size := 10
	p := PageParams{PageSize: &size}

	next := p.Next("last-id")
	require.NotNil(t, next.PageAfter)
	assert.Equal(t, "last-id", *next.PageAfter)
	assert.Nil(t, next.PageBefore)
	assert.Equal(t, &size, next.PageSize)

	prev := next.Prev("first-id")
	require.NotNil(t, prev.PageBefore)
	assert.Equal(t, "first-id", *prev.PageBefore)
	assert.Nil(t, prev.PageAfter)
}

func boolPtr(b bool) *bool { return &b }
