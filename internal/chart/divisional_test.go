package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-jyotish/internal/config"
	"github.com/tartampluch/go-jyotish/internal/vedic"
)

func TestVarga_Transform(t *testing.T) {
	table := DefaultVargaTable()

	tests := []struct {
		name    string
		divisor int
		lon     float64
		sign    vedic.Sign
		pada    int
	}{
		{"D9 movable Aries 18°", 9, 18.0, vedic.Virgo, 6},
		{"D9 movable starts at itself", 9, 0.5, vedic.Aries, 1},
		{"D9 fixed starts at 9th", 9, 30.5, vedic.Capricorn, 1},
		{"D9 dual starts at 5th", 9, 60.5, vedic.Libra, 1},
		{"D9 last pada of Pisces", 9, 359.9, vedic.Pisces, 9},
		{"D1 is identity", 1, 187.24, vedic.Libra, 1},
		{"D7 odd starts at itself", 7, 0.5, vedic.Aries, 1},
		{"D7 even starts at 7th", 7, 30.5, vedic.Scorpio, 1},
		{"D10 odd runs through", 10, 29.9, vedic.Capricorn, 10},
		{"D10 even starts at 9th", 10, 30.5, vedic.Capricorn, 1},
		{"D12 wraps to the previous sign", 12, 149.99, vedic.Cancer, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := table.Lookup(tt.divisor)
			require.NoError(t, err)
			sign, pada, lon := v.Transform(tt.lon)
			assert.Equal(t, tt.sign, sign)
			assert.Equal(t, tt.pada, pada)
			assert.Equal(t, sign, vedic.SignOf(lon), "divisional longitude lies in the destination sign")
		})
	}
}

func TestVarga_DivisionalLongitude(t *testing.T) {
	v, err := DefaultVargaTable().Lookup(9)
	require.NoError(t, err)

	_, _, lon := v.Transform(18.0)
	assert.InDelta(t, 162.0, lon, 1e-9)

	d1, err := DefaultVargaTable().Lookup(1)
	require.NoError(t, err)
	_, _, lon = d1.Transform(187.24)
	assert.InDelta(t, 187.24, lon, 1e-9)
}

func TestVargaTable_Lookup(t *testing.T) {
	table := DefaultVargaTable()
	assert.Equal(t, []int{1, 7, 9, 10, 12}, table.Divisors())

	_, err := table.Lookup(60)
	assert.ErrorContains(t, err, config.ErrDivision)

	table[3] = Varga{Code: "D3", Divisor: 3, Start: ModalityRule{Movable: 0, Fixed: 4, Dual: 8}}
	v, err := table.Lookup(3)
	require.NoError(t, err)
	sign, _, _ := v.Transform(35)
	assert.Equal(t, vedic.Virgo, sign, "a custom rule plugs into the same transform")
}

func TestDivisional_Chart(t *testing.T) {
	v, err := DefaultVargaTable().Lookup(9)
	require.NoError(t, err)

	asc := newAscendant(18, 0)
	bodies := []BodyPosition{
		{Body: vedic.Sun, SiderealLongitude: 18.5},
		{Body: vedic.Moon, SiderealLongitude: 30.5},
	}

	dc := Divisional(v, asc, bodies)

	assert.Equal(t, "D9", dc.Code)
	assert.Equal(t, 9, dc.Divisor)
	assert.Equal(t, vedic.Virgo, dc.AscendantSign)
	require.Len(t, dc.Positions, 2)
	assert.Equal(t, vedic.Virgo, dc.Positions[0].Sign)
	assert.Equal(t, 1, dc.Positions[0].House)
	assert.Equal(t, vedic.Capricorn, dc.Positions[1].Sign)
	assert.Equal(t, 5, dc.Positions[1].House)
}
