package astro

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/go-jyotish/internal/config"
	jerrors "github.com/tartampluch/go-jyotish/internal/errors"
)

const opParseInstant = "ParseInstant"

var offsetPattern = regexp.MustCompile(`^([+-])(\d{2}):?(\d{2})$`)

// Instant is a birth moment resolved to UTC and to the Julian Day scale.
type Instant struct {
	UTC       time.Time `json:"utc" yaml:"utc"`
	JulianDay float64   `json:"julianDay" yaml:"julianDay"`
	Zone      string    `json:"zone" yaml:"zone"`
	// OffsetSeconds is the UTC offset in force at the instant.
	OffsetSeconds int      `json:"offsetSeconds" yaml:"offsetSeconds"`
	Warnings      []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// ParseInstant resolves a civil date, time and zone into one UTC instant.
// The zone may be UTC, GMT, Z, a ±HH:MM offset or an IANA zone name.
// A local time skipped by a DST transition fails; a repeated one resolves to
// the earlier instant and records a warning.
func ParseInstant(date, clock, zone string) (Instant, error) {
	d, err := time.Parse(config.DateLayout, strings.TrimSpace(date))
	if err != nil {
		return Instant{}, jerrors.Wrap(jerrors.InvalidTemporalInput, opParseInstant, config.ErrDateFormat, err)
	}
	c, err := parseClock(strings.TrimSpace(clock))
	if err != nil {
		return Instant{}, jerrors.Wrap(jerrors.InvalidTemporalInput, opParseInstant, config.ErrTimeFormat, err)
	}
	loc, err := ResolveZone(zone)
	if err != nil {
		return Instant{}, err
	}

	wall := time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), c.Second(), 0, time.UTC)
	candidates := localCandidates(wall, loc)

	var inst Instant
	switch len(candidates) {
	case 0:
		return Instant{}, jerrors.New(jerrors.InvalidTemporalInput, opParseInstant, config.ErrLocalTimeGap).
			WithDetails(fmt.Sprintf("%s %s %s", date, clock, zone))
	case 1:
		inst.UTC = candidates[0]
	default:
		inst.UTC = candidates[0]
		inst.Warnings = append(inst.Warnings, config.MsgLocalTimeAmbiguous)
	}

	_, inst.OffsetSeconds = inst.UTC.In(loc).Zone()
	inst.UTC = inst.UTC.UTC()
	inst.JulianDay = JulianDay(inst.UTC)
	inst.Zone = strings.TrimSpace(zone)
	return inst, nil
}

// ResolveZone maps a zone identifier to a location without ever defaulting.
func ResolveZone(zone string) (*time.Location, error) {
	z := strings.TrimSpace(zone)
	switch strings.ToUpper(z) {
	case "":
		return nil, jerrors.New(jerrors.InvalidTemporalInput, opParseInstant, config.ErrZoneMissing)
	case "UTC", "GMT", "Z":
		return time.UTC, nil
	case "LOCAL":
		return nil, jerrors.New(jerrors.InvalidTemporalInput, opParseInstant, config.ErrZoneUnknown).WithDetails(z)
	}

	if m := offsetPattern.FindStringSubmatch(z); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes, _ := strconv.Atoi(m[3])
		if hours > config.MaxOffsetHours || minutes >= 60 {
			return nil, jerrors.New(jerrors.InvalidTemporalInput, opParseInstant, config.ErrOffsetRange).WithDetails(z)
		}
		secs := hours*3600 + minutes*60
		if m[1] == "-" {
			secs = -secs
		}
		return time.FixedZone(z, secs), nil
	}

	loc, err := time.LoadLocation(z)
	if err != nil {
		return nil, jerrors.Wrap(jerrors.InvalidTemporalInput, opParseInstant, config.ErrZoneUnknown, err)
	}
	return loc, nil
}

func parseClock(s string) (time.Time, error) {
	if t, err := time.Parse(config.TimeLayoutSeconds, s); err == nil {
		return t, nil
	}
	return time.Parse(config.TimeLayoutMinutes, s)
}

// localCandidates returns every UTC instant, earliest first, whose wall clock
// in loc equals wall. Offsets are sampled a day and a half either side, which
// covers any single DST transition.
func localCandidates(wall time.Time, loc *time.Location) []time.Time {
	offsets := make(map[int]struct{}, 2)
	for _, probe := range []time.Time{wall.Add(-36 * time.Hour), wall, wall.Add(36 * time.Hour)} {
		_, off := probe.In(loc).Zone()
		offsets[off] = struct{}{}
	}

	var out []time.Time
	for off := range offsets {
		u := wall.Add(-time.Duration(off) * time.Second)
		local := u.In(loc)
		if _, got := local.Zone(); got != off {
			continue
		}
		if sameWallClock(local, wall) {
			out = append(out, u)
		}
	}
	slices.SortFunc(out, func(a, b time.Time) int { return a.Compare(b) })
	return out
}

func sameWallClock(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day() &&
		a.Hour() == b.Hour() && a.Minute() == b.Minute() && a.Second() == b.Second()
}
