package chart

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tartampluch/go-jyotish/internal/astro"
	"github.com/tartampluch/go-jyotish/internal/config"
	"github.com/tartampluch/go-jyotish/internal/ephemeris"
	jerrors "github.com/tartampluch/go-jyotish/internal/errors"
	"github.com/tartampluch/go-jyotish/internal/vedic"
)

const opResolve = "PositionResolver.Resolve"

// PositionResolver turns ephemeris readings into sidereal body positions.
type PositionResolver struct {
	Tables   *vedic.Tables
	Provider ephemeris.Provider
	// Timeout bounds each ephemeris call. Zero leaves the caller's deadline alone.
	Timeout time.Duration
}

// Resolve returns the nine bodies in chart order. Ephemeris calls run in
// parallel; Ketu is derived from Rahu.
func (r *PositionResolver) Resolve(ctx context.Context, jd, ayanamsa float64) ([]BodyPosition, error) {
	bodies := vedic.AllBodies()
	readings := make([]ephemeris.Reading, len(bodies))

	g, gctx := errgroup.WithContext(ctx)
	for i, b := range bodies {
		if b == vedic.Ketu {
			continue
		}
		i, b := i, b
		g.Go(func() error {
			rd, err := r.fetch(gctx, jd, b)
			if err != nil {
				return err
			}
			readings[i] = rd
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	positions := make([]BodyPosition, len(bodies))
	for i, b := range bodies {
		if b == vedic.Ketu {
			continue
		}
		rd := readings[i]
		positions[i] = newBodyPosition(r.Tables, b, rd.Longitude, astro.Sidereal(rd.Longitude, ayanamsa), rd.Speed)
	}

	rahu := positions[vedic.Rahu]
	ketu := newBodyPosition(r.Tables, vedic.Ketu,
		astro.Normalize(rahu.TropicalLongitude+180),
		astro.Normalize(rahu.SiderealLongitude+180),
		rahu.Speed)
	ketu.Retrograde = true
	positions[vedic.Ketu] = ketu

	markCombust(r.Tables, positions)
	return positions, nil
}

func (r *PositionResolver) fetch(parent context.Context, jd float64, b vedic.Body) (ephemeris.Reading, error) {
	ctx := parent
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, r.Timeout)
		defer cancel()
	}

	rd, err := r.Provider.PositionAt(ctx, jd, b)
	if err != nil {
		// Cancellation by the caller is not a provider failure.
		if parent.Err() != nil {
			return ephemeris.Reading{}, parent.Err()
		}
		if errors.Is(err, jerrors.ErrEphemerisUnavailable) {
			return ephemeris.Reading{}, err
		}
		return ephemeris.Reading{}, jerrors.Wrap(jerrors.EphemerisUnavailable, opResolve, config.ErrEphemeris, err).
			WithDetails(b.String())
	}
	if !finite(rd.Longitude) || !finite(rd.Speed) {
		return ephemeris.Reading{}, jerrors.New(jerrors.EphemerisUnavailable, opResolve, config.ErrEphemerisRange).
			WithDetails(fmt.Sprintf("%s: %v", b, rd.Longitude))
	}
	rd.Longitude = astro.Normalize(rd.Longitude)
	return rd, nil
}

// markCombust flags bodies within their solar orb. Positions must be in chart order.
func markCombust(tables *vedic.Tables, positions []BodyPosition) {
	sun := positions[vedic.Sun].SiderealLongitude
	for i := range positions {
		orb, ok := tables.CombustOrb(positions[i].Body)
		if !ok {
			continue
		}
		positions[i].Combust = astro.Separation(positions[i].SiderealLongitude, sun) <= orb
	}
}

// AscendantAt computes the sidereal ascendant for an instant and place.
func AscendantAt(jd, latitude, longitude, ayanamsa float64) (Ascendant, error) {
	tropical, err := astro.Ascendant(jd, latitude, longitude)
	if err != nil {
		return Ascendant{}, err
	}
	if math.IsNaN(tropical) {
		return Ascendant{}, jerrors.New(jerrors.AscendantUndefined, "AscendantAt", config.ErrAscendantFinite)
	}
	return newAscendant(tropical, ayanamsa), nil
}
