package ephemeris

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-jyotish/internal/vedic"
)

type countingProvider struct {
	calls int
}

func (c *countingProvider) PositionAt(_ context.Context, jd float64, _ vedic.Body) (Reading, error) {
	c.calls++
	return Reading{Longitude: jd - 2451545.0}, nil
}

func TestCache_Expires(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	next := &countingProvider{}
	c := NewCache(next, time.Hour)
	c.now = func() time.Time { return now }

	_, err := c.PositionAt(context.Background(), 2451545.0, vedic.Sun)
	require.NoError(t, err)
	_, _ = c.PositionAt(context.Background(), 2451545.0, vedic.Sun)
	assert.Equal(t, 1, next.calls)

	now = now.Add(time.Hour)
	assert.Equal(t, 0, c.Len(), "entry expires exactly at TTL")

	_, _ = c.PositionAt(context.Background(), 2451545.0, vedic.Sun)
	assert.Equal(t, 2, next.calls)
}

func TestCache_KeysByBodyAndInstant(t *testing.T) {
	next := &countingProvider{}
	c := NewCache(next, time.Hour)

	_, _ = c.PositionAt(context.Background(), 2451545.0, vedic.Sun)
	_, _ = c.PositionAt(context.Background(), 2451545.0, vedic.Moon)
	_, _ = c.PositionAt(context.Background(), 2451545.5, vedic.Sun)
	assert.Equal(t, 3, next.calls)
	assert.Equal(t, 3, c.Len())
}
