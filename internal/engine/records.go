package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/pelletier/go-toml/v2"

	"github.com/tartampluch/go-jyotish/internal/chart"
	"github.com/tartampluch/go-jyotish/internal/config"
)

var (
	zoneSuffix = regexp.MustCompile(`(Z|[+-]\d{2}(:?\d{2})?)$`)
	shortZone  = regexp.MustCompile(`^[+-]\d{2}$`)
)

// tomlRecord uses pointers so missing coordinates are not read as 0°.
type tomlRecord struct {
	Name      string   `toml:"name"`
	Date      string   `toml:"date"`
	Time      string   `toml:"time"`
	Zone      string   `toml:"zone"`
	Latitude  *float64 `toml:"latitude"`
	Longitude *float64 `toml:"longitude"`
}

type tomlManifest struct {
	Person []tomlRecord `toml:"person"`
}

// readRecords decodes a vCard or TOML stream into birth inputs. Records
// lacking a birth time, zone or coordinates are skipped; they are never
// completed with guessed values.
func readRecords(r io.Reader) ([]chart.BirthInput, int, error) {
	data, err := io.ReadAll(io.LimitReader(r, config.MaxHTTPResponseSize))
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrSourceRead, err)
	}
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(data, []byte("\ufeff")), " \t\r\n")
	if isVCard(trimmed) {
		return readVCards(trimmed)
	}
	return readTOML(data)
}

func isVCard(data []byte) bool {
	n := len(config.VCardBegin)
	return len(data) >= n && strings.EqualFold(string(data[:n]), config.VCardBegin)
}

func readTOML(data []byte) ([]chart.BirthInput, int, error) {
	var m tomlManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrTOMLParse, err)
	}

	var out []chart.BirthInput
	skipped := 0
	for _, p := range m.Person {
		name := p.Name
		if name == "" {
			name = config.FallbackName
		}
		if p.Latitude == nil || p.Longitude == nil || p.Time == "" || p.Zone == "" || p.Date == "" {
			skipRecord(name, config.ReasonIncomplete)
			skipped++
			continue
		}
		out = append(out, chart.BirthInput{
			Name:      name,
			Date:      p.Date,
			Time:      p.Time,
			Zone:      p.Zone,
			Latitude:  *p.Latitude,
			Longitude: *p.Longitude,
		})
	}
	return out, skipped, nil
}

func readVCards(data []byte) ([]chart.BirthInput, int, error) {
	dec := vcard.NewDecoder(bytes.NewReader(data))

	var out []chart.BirthInput
	skipped := 0
	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			skipped++
			continue
		}

		in, reason := birthFromCard(card)
		if reason != "" {
			skipRecord(in.Name, reason)
			skipped++
			continue
		}
		out = append(out, in)
	}
	return out, skipped, nil
}

// birthFromCard maps FN, BDAY, TZ and GEO. The reason is empty on success.
func birthFromCard(card vcard.Card) (chart.BirthInput, string) {
	in := chart.BirthInput{Name: config.FallbackName}
	if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
		in.Name = fn.Value
	} else if n := card.Get(config.VCardN); n != nil && n.Value != "" {
		in.Name = n.Value
	}

	bday := card.Get(config.VCardBDAY)
	if bday == nil || bday.Value == "" {
		return in, config.ReasonNoBirthday
	}
	date, clock, zone, err := parseBirthday(bday.Value)
	if err != nil {
		return in, config.ReasonNoBirthTime
	}
	in.Date, in.Time = date, clock

	if zone == "" {
		if tz := card.Get(config.VCardTZ); tz != nil {
			zone = normalizeZone(tz.Value)
		}
	}
	if zone == "" {
		return in, config.ReasonNoZone
	}
	in.Zone = zone

	geo := card.Get(config.VCardGEO)
	if geo == nil {
		return in, config.ReasonNoGeo
	}
	lat, lon, err := parseGeo(geo.Value)
	if err != nil {
		return in, config.ReasonNoGeo
	}
	in.Latitude, in.Longitude = lat, lon
	return in, ""
}

// parseBirthday splits a BDAY date-time into civil date, time and an
// optional zone taken from a trailing Z or UTC offset.
func parseBirthday(value string) (date, clock, zone string, err error) {
	value = strings.TrimSpace(value)
	datePart, timePart, ok := strings.Cut(value, "T")
	if !ok || timePart == "" {
		return "", "", "", errors.New(config.ErrBirthTime)
	}

	if m := zoneSuffix.FindString(timePart); m != "" {
		timePart = strings.TrimSuffix(timePart, m)
		zone = normalizeZone(m)
	}

	stamp := datePart + "T" + timePart
	for _, layout := range []string{
		config.DateTimeExtended,
		config.DateTimeExtendedMn,
		config.DateTimeBasic,
		config.DateTimeBasicMin,
	} {
		if t, perr := time.Parse(layout, stamp); perr == nil {
			return t.Format(config.DateLayout), t.Format(config.TimeLayoutSeconds), zone, nil
		}
	}
	return "", "", "", errors.New(config.ErrBirthTime)
}

// normalizeZone maps vCard zone spellings onto what astro.ResolveZone accepts.
func normalizeZone(z string) string {
	z = strings.TrimSpace(z)
	switch {
	case z == "Z":
		return "UTC"
	case shortZone.MatchString(z):
		return z + ":00"
	}
	return z
}

// parseGeo reads "geo:lat,lon[;params]" (vCard 4) or "lat;lon" (vCard 3).
func parseGeo(value string) (lat, lon float64, err error) {
	v := strings.TrimSpace(value)
	var a, b string
	var ok bool
	if rest, found := strings.CutPrefix(strings.ToLower(v), config.GeoURIPrefix); found {
		rest, _, _ = strings.Cut(rest, ";")
		a, b, ok = strings.Cut(rest, ",")
	} else {
		a, b, ok = strings.Cut(v, ";")
	}
	if !ok {
		return 0, 0, fmt.Errorf("%s: %q", config.ErrGeoFormat, value)
	}
	if lat, err = strconv.ParseFloat(strings.TrimSpace(a), 64); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", config.ErrGeoFormat, err)
	}
	if lon, err = strconv.ParseFloat(strings.TrimSpace(b), 64); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", config.ErrGeoFormat, err)
	}
	return lat, lon, nil
}

func skipRecord(name, reason string) {
	slog.Warn(config.MsgSkippedRecord,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyName, name,
		config.LogKeyReason, reason)
}
