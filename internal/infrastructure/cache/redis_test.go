package cache

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_UnavailableBypasses(t *testing.T) {
	r := &Redis{logger: zerolog.Nop()}
	ctx := context.Background()

	assert.False(t, r.Available())
	assert.ErrorIs(t, r.Ping(ctx), ErrUnavailable)
	assert.ErrorIs(t, r.SetJSON(ctx, "k", map[string]string{"a": "b"}, time.Minute), ErrUnavailable)

	var out map[string]string
	hit, err := r.GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, r.Delete(ctx, "k"))
	assert.NoError(t, r.Close())

	var nilRedis *Redis
	assert.False(t, nilRedis.Available())
}
