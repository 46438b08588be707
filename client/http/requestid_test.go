package http

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDHeader(t *testing.T) {
	var seen []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get(RequestIDHeader))
		_, _ = io.WriteString(w, `{"data":{"x":1}}`)
	})

	t.Run("generated per request", func(t *testing.T) {
		seen = nil
		for i := 0; i < 2; i++ {
			_, err := Execute[payload](context.Background(), client, http.MethodGet, "thing", nil)
			require.NoError(t, err)
		}
		require.Len(t, seen, 2)
		assert.NotEqual(t, seen[0], seen[1])
		_, err := uuid.Parse(seen[0])
		assert.NoError(t, err)
	})

	t.Run("taken from context", func(t *testing.T) {
		seen = nil
		ctx := WithRequestID(context.Background(), "trace-123")
		assert.Equal(t, "trace-123", RequestIDFromContext(ctx))

		_, err := Execute[payload](ctx, client, http.MethodGet, "thing", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"trace-123"}, seen)
	})

	t.Run("request option wins", func(t *testing.T) {
		seen = nil
		ctx := WithRequestID(context.Background(), "trace-123")
		_, err := Execute[payload](ctx, client, http.MethodGet, "thing", nil, WithHeader(RequestIDHeader, "explicit"))
		require.NoError(t, err)
		assert.Equal(t, []string{"explicit"}, seen)
	})

	assert.Empty(t, RequestIDFromContext(context.Background()))
}
