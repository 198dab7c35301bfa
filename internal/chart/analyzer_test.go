package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-jyotish/internal/vedic"
)

func TestClassOf(t *testing.T) {
	for _, h := range []int{1, 4, 7, 10} {
		assert.Equal(t, Angular, ClassOf(h))
	}
	for _, h := range []int{2, 5, 8, 11} {
		assert.Equal(t, Succedent, ClassOf(h))
	}
	for _, h := range []int{3, 6, 9, 12} {
		assert.Equal(t, Cadent, ClassOf(h))
	}
}

func TestAnalyzer_Aspects(t *testing.T) {
	bodies := []BodyPosition{
		{Body: vedic.Sun, SiderealLongitude: 10},
		{Body: vedic.Moon, SiderealLongitude: 190},
		{Body: vedic.Mars, SiderealLongitude: 125},
		{Body: vedic.Rahu, SiderealLongitude: 40},
		{Body: vedic.Ketu, SiderealLongitude: 220},
	}

	got := NewAnalyzer().Aspects(bodies)

	byPair := make(map[[2]vedic.Body]Aspect, len(got))
	for _, a := range got {
		byPair[[2]vedic.Body{a.From, a.To}] = a
	}

	opp, ok := byPair[[2]vedic.Body{vedic.Sun, vedic.Moon}]
	require.True(t, ok)
	assert.Equal(t, "opposition", opp.Kind)
	assert.InDelta(t, 1.0, opp.Strength, 1e-12)

	trine, ok := byPair[[2]vedic.Body{vedic.Sun, vedic.Mars}]
	require.True(t, ok)
	assert.Equal(t, "trine", trine.Kind)
	assert.InDelta(t, 5.0, trine.Orb, 1e-9)
	assert.InDelta(t, 0.375, trine.Strength, 1e-9)

	sextile, ok := byPair[[2]vedic.Body{vedic.Moon, vedic.Mars}]
	require.True(t, ok)
	assert.Equal(t, "sextile", sextile.Kind)
	assert.InDelta(t, 1.0/6, sextile.Strength, 1e-9)

	conj, ok := byPair[[2]vedic.Body{vedic.Sun, vedic.Rahu}]
	assert.False(t, ok, "30° apart is no aspect: %+v", conj)

	_, ok = byPair[[2]vedic.Body{vedic.Rahu, vedic.Ketu}]
	assert.False(t, ok, "the node axis is skipped")
}

func TestGrahaDrishti(t *testing.T) {
	bodies := []BodyPosition{
		{Body: vedic.Sun, House: 12},
		{Body: vedic.Mars, House: 1},
		{Body: vedic.Jupiter, House: 9},
		{Body: vedic.Saturn, House: 10},
		{Body: vedic.Venus, House: 4},
	}

	got := GrahaDrishti(bodies)
	require.Len(t, got, len(bodies))

	want := map[vedic.Body][]int{
		vedic.Sun:     {6},
		vedic.Mars:    {7, 4, 8},
		vedic.Jupiter: {3, 1, 5},
		vedic.Saturn:  {4, 12, 7},
		vedic.Venus:   {10},
	}
	for _, d := range got {
		assert.Equal(t, want[d.Body], d.Houses, d.Body.String())
	}

	assert.ElementsMatch(t, []vedic.Body{vedic.Venus}, got[1].Targets, "Mars sees Venus in the 4th")
	assert.ElementsMatch(t, []vedic.Body{vedic.Mars}, got[2].Targets, "Jupiter sees Mars in the 1st")
	assert.ElementsMatch(t, []vedic.Body{vedic.Venus, vedic.Sun}, got[3].Targets)
}

func TestStrengths(t *testing.T) {
	bodies := []BodyPosition{
		{Body: vedic.Sun, House: 1, Dignity: vedic.Exalted},
		{Body: vedic.Mercury, House: 3, Dignity: vedic.Neutral, Combust: true},
		{Body: vedic.Saturn, House: 2, Dignity: vedic.Debilitated, Retrograde: true},
		{Body: vedic.Venus, House: 6, Dignity: vedic.Debilitated, Combust: true},
		{Body: vedic.Moon, House: 7, Dignity: vedic.OwnSign},
	}
	aspects := []Aspect{{From: vedic.Sun, To: vedic.Moon, Strength: 0.5}}

	got := Strengths(bodies, aspects)
	require.Len(t, got, len(bodies))

	want := []float64{6.5, 1, 2.5, 0, 5.5}
	for i, s := range got {
		assert.InDelta(t, want[i], s.Score, 1e-12, s.Body.String())
	}
	assert.Equal(t, Angular, got[0].HouseClass)
	assert.Equal(t, Cadent, got[1].HouseClass)

	assert.Equal(t, got, Strengths(bodies, aspects), "deterministic")
}
