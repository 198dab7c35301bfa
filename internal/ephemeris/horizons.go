package ephemeris

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/go-jyotish/internal/astro"
	"github.com/tartampluch/go-jyotish/internal/config"
	jerrors "github.com/tartampluch/go-jyotish/internal/errors"
	"github.com/tartampluch/go-jyotish/internal/vedic"
)

const opHorizons = "Horizons.PositionAt"

// horizonsTargets maps bodies to NAIF identifiers.
var horizonsTargets = map[vedic.Body]string{
	vedic.Sun:     "10",
	vedic.Moon:    "301",
	vedic.Mercury: "199",
	vedic.Venus:   "299",
	vedic.Mars:    "499",
	vedic.Jupiter: "599",
	vedic.Saturn:  "699",
}

// Horizons queries the JPL Horizons API for observer ecliptic longitudes.
// Horizons has no lunar node target, so Rahu is delegated to Nodes.
type Horizons struct {
	BaseURL  string
	Client   *http.Client
	User     string
	Password string
	Nodes    Provider
}

// NewHorizons creates a client for baseURL, or the public endpoint when empty.
func NewHorizons(baseURL string, timeout time.Duration) *Horizons {
	if baseURL == "" {
		baseURL = config.HorizonsURL
	}
	if timeout <= 0 {
		timeout = config.DefaultEphemerisTimeout
	}
	return &Horizons{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

type horizonsResponse struct {
	Result string `json:"result"`
	Error  string `json:"error"`
}

// PositionAt implements Provider. It requests three epochs around jd and
// derives the speed by central difference.
func (h *Horizons) PositionAt(ctx context.Context, jd float64, body vedic.Body) (Reading, error) {
	if body == vedic.Rahu && h.Nodes != nil {
		return h.Nodes.PositionAt(ctx, jd, body)
	}
	target, ok := horizonsTargets[body]
	if !ok {
		return Reading{}, jerrors.New(jerrors.EphemerisUnavailable, opHorizons, config.ErrEphemerisBody).
			WithDetails(body.String())
	}

	step := config.SpeedStepDays
	reqURL, err := h.requestURL(target, []float64{jd - step, jd, jd + step})
	if err != nil {
		return Reading{}, jerrors.Wrap(jerrors.EphemerisUnavailable, opHorizons, config.ErrInvalidURL, err)
	}

	log := slog.With(
		slog.String(config.LogKeyComponent, config.CompEphemeris),
		slog.String(config.LogKeyBody, body.String()),
		slog.Float64(config.LogKeyJD, jd),
	)
	log.Debug(config.MsgHorizonsRequest)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Reading{}, jerrors.Wrap(jerrors.EphemerisUnavailable, opHorizons, config.ErrEphemeris, err)
	}
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)
	if h.User != "" || h.Password != "" {
		req.SetBasicAuth(h.User, h.Password)
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return Reading{}, ctx.Err()
		}
		return Reading{}, jerrors.Wrap(jerrors.EphemerisUnavailable, opHorizons, config.ErrEphemeris, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		log.Warn(config.ErrEphemerisStatus, slog.Int(config.LogKeyStatus, resp.StatusCode))
		return Reading{}, jerrors.New(jerrors.EphemerisUnavailable, opHorizons, config.ErrEphemerisStatus).
			WithDetails(resp.Status)
	}

	var payload horizonsResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, config.MaxHTTPResponseSize)).Decode(&payload); err != nil {
		return Reading{}, jerrors.Wrap(jerrors.EphemerisUnavailable, opHorizons, config.ErrEphemerisPayload, err)
	}
	if payload.Error != "" {
		return Reading{}, jerrors.New(jerrors.EphemerisUnavailable, opHorizons, config.ErrEphemerisPayload).
			WithDetails(payload.Error)
	}

	lons, err := parseEclipticLongitudes(payload.Result)
	if err != nil {
		return Reading{}, jerrors.Wrap(jerrors.EphemerisUnavailable, opHorizons, config.ErrEphemerisPayload, err)
	}
	if len(lons) != 3 {
		return Reading{}, jerrors.New(jerrors.EphemerisUnavailable, opHorizons, config.ErrEphemerisPayload).
			WithDetails(fmt.Sprintf("expected 3 rows, got %d", len(lons)))
	}

	return Reading{
		Longitude: astro.Normalize(lons[1]),
		Speed:     astro.Delta(lons[0], lons[2]) / (2 * step),
	}, nil
}

func (h *Horizons) requestURL(target string, epochs []float64) (string, error) {
	u, err := url.Parse(h.BaseURL)
	if err != nil {
		return "", err
	}
	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return "", fmt.Errorf("%s: %s", config.ErrProtocol, u.Scheme)
	}

	tlist := make([]string, len(epochs))
	for i, e := range epochs {
		tlist[i] = "'" + strconv.FormatFloat(e, 'f', 6, 64) + "'"
	}

	q := u.Query()
	q.Set("format", "json")
	q.Set("COMMAND", "'"+target+"'")
	q.Set("OBJ_DATA", "'NO'")
	q.Set("MAKE_EPHEM", "'YES'")
	q.Set("EPHEM_TYPE", config.HorizonsEphemType)
	q.Set("CENTER", config.HorizonsCenter)
	q.Set("QUANTITIES", config.HorizonsQuantity)
	q.Set("TLIST_TYPE", "'JD'")
	q.Set("TIME_TYPE", "'UT'")
	q.Set("TLIST", strings.Join(tlist, " "))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// parseEclipticLongitudes extracts the ObsEcLon column from the rows between
// $$SOE and $$EOE. Each row ends with longitude and latitude.
func parseEclipticLongitudes(result string) ([]float64, error) {
	var lons []float64
	inTable := false

	sc := bufio.NewScanner(strings.NewReader(result))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == config.HorizonsSOE:
			inTable = true
			continue
		case line == config.HorizonsEOE:
			return lons, nil
		case !inTable || line == "":
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("short ephemeris row %q", line)
		}
		lon, err := strconv.ParseFloat(fields[len(fields)-2], 64)
		if err != nil {
			return nil, fmt.Errorf("ephemeris row %q: %w", line, err)
		}
		lons = append(lons, lon)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("missing %s marker", config.HorizonsEOE)
}
