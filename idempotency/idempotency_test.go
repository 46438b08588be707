package idempotency

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyphera/circle-w3s/circleerr"
)

func TestNewKeyIsUUIDv4(t *testing.T) {
	key := NewKey()

	id, err := uuid.Parse(key)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
	assert.Equal(t, uuid.RFC4122, id.Variant())
	assert.NoError(t, Validate(key))
}

func TestNewKeyIsFreshAcrossConcurrentCalls(t *testing.T) {
	const n = 256
	keys := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			keys <- NewKey()
		}()
	}
	wg.Wait()
	close(keys)

	seen := make(map[string]struct{}, n)
	for k := range keys {
		_, dup := seen[k]
		require.False(t, dup, "duplicate key %s", k)
		seen[k] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "canonical v4", key: "5d6e1c4a-8f2b-4c3d-9e7f-0a1b2c3d4e5f", wantErr: false},
		{name: "upper case v4", key: "5D6E1C4A-8F2B-4C3D-9E7F-0A1B2C3D4E5F", wantErr: false},
		{name: "empty", key: "", wantErr: true},
		{name: "garbage", key: "not-a-uuid", wantErr: true},
		{name: "version 1", key: "5d6e1c4a-8f2b-1c3d-9e7f-0a1b2c3d4e5f", wantErr: true},
		{name: "braced form", key: "{5d6e1c4a-8f2b-4c3d-9e7f-0a1b2c3d4e5f}", wantErr: true},
		{name: "urn form", key: "urn:uuid:5d6e1c4a-8f2b-4c3d-9e7f-0a1b2c3d4e5f", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.key)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			var idErr *circleerr.IdentifierError
			require.ErrorAs(t, err, &idErr)
			assert.Equal(t, tc.key, idErr.Value)
		})
	}
}

func TestResolve(t *testing.T) {
	t.Run("fresh key per call without override", func(t *testing.T) {
		first, err := Resolve("")
		require.NoError(t, err)
		second, err := Resolve("")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("override returned unchanged", func(t *testing.T) {
		override := "5d6e1c4a-8f2b-4c3d-9e7f-0a1b2c3d4e5f"
		got, err := Resolve(override)
		require.NoError(t, err)
		assert.Equal(t, override, got)
	})

	t.Run("invalid override rejected", func(t *testing.T) {
		_, err := Resolve("retry-1")
		var idErr *circleerr.IdentifierError
		assert.ErrorAs(t, err, &idErr)
	})
}
