package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"

	"github.com/tartampluch/go-jyotish/internal/config"
	"github.com/tartampluch/go-jyotish/internal/server"
)

// fixedClock pins "today" for the dasha and calendar commands.
type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

var delhiBirth = []string{
	"--name", "Asha",
	"--date", "1990-05-15",
	"--time", "10:30",
	"--zone", "Asia/Kolkata",
	"--lat", "28.6139",
	"--lon", "77.209",
}

const recordsTOML = `
[[person]]
name = "Asha"
date = "1990-05-15"
time = "10:30"
zone = "Asia/Kolkata"
latitude = 28.6139
longitude = 77.209
`

// runCLI executes the root command against an empty config file so the
// user's own configuration never leaks in.
func runCLI(t *testing.T, stdin string, args ...string) (*cli, string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "go-jyotish.toml")
	require.NoError(t, os.WriteFile(cfg, nil, 0o600))

	var out, errOut bytes.Buffer
	c := newCLI(strings.NewReader(stdin), &out, &errOut)
	c.clock = fixedClock{t: testNow}

	root := newRootCmd(c)
	root.SetArgs(append([]string{"--" + config.FlagConfig, cfg}, args...))
	err := root.ExecuteContext(context.Background())
	return c, out.String(), err
}

func TestVersion(t *testing.T) {
	_, out, err := runCLI(t, "", config.CmdVersion)
	require.NoError(t, err)
	assert.Contains(t, out, config.AppName)
	assert.Contains(t, out, config.Version)
}

func TestChart_JSON(t *testing.T) {
	_, out, err := runCLI(t, "", append([]string{config.CmdChart, "--format", "json"}, delhiBirth...)...)
	require.NoError(t, err)

	var doc struct {
		Name            string            `json:"name"`
		Ayanamsa        float64           `json:"ayanamsa"`
		Bodies          []json.RawMessage `json:"bodies"`
		HouseSystemUsed string            `json:"houseSystemUsed"`
		Divisional      map[string]any    `json:"divisional"`
		Dasha           []json.RawMessage `json:"dasha"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Asha", doc.Name)
	assert.InDelta(t, 23.72, doc.Ayanamsa, 0.01)
	assert.Len(t, doc.Bodies, 9)
	assert.Equal(t, config.HouseWholeSign, doc.HouseSystemUsed)
	assert.Contains(t, doc.Divisional, "9")
	assert.NotEmpty(t, doc.Dasha)
}

func TestChart_YAML(t *testing.T) {
	_, out, err := runCLI(t, "", append([]string{config.CmdChart, "--format", "yaml", "--divisions", "9,10"}, delhiBirth...)...)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "bodies")
	assert.Contains(t, doc, "ascendant")
	divisional, ok := doc["divisional"].(map[string]any)
	if !ok {
		// yaml.v3 decodes integer keys as int.
		raw, _ := doc["divisional"].(map[any]any)
		assert.Len(t, raw, 2)
		return
	}
	assert.Len(t, divisional, 2)
}

func TestChart_Text(t *testing.T) {
	_, out, err := runCLI(t, "", append([]string{config.CmdChart}, delhiBirth...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Asha")
	assert.Contains(t, out, "Ascendant:")
	assert.Contains(t, out, "Ayanamsa:")
	for _, body := range []string{"Sun", "Moon", "Rahu", "Ketu"} {
		assert.Contains(t, out, body)
	}
}

func TestChart_Hindi(t *testing.T) {
	_, out, err := runCLI(t, "", append([]string{config.CmdChart, "--lang", "hi"}, delhiBirth...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "लग्न")
	assert.Contains(t, out, "चंद्र")
}

func TestChart_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing flags", []string{config.CmdChart, "--date", "1990-05-15"}, "required flag"},
		{"bad format", append([]string{config.CmdChart, "--format", "xml"}, delhiBirth...), config.ErrFormat},
		{"bad houses", append([]string{config.CmdChart, "--houses", "koch"}, delhiBirth...), config.ErrHouseSystem},
		{"bad node", append([]string{config.CmdChart, "--node", "wobbly"}, delhiBirth...), config.ErrNodeMode},
		{"bad ephemeris", append([]string{config.CmdChart, "--ephemeris", "vsop"}, delhiBirth...), config.ErrEphemerisMode},
		{"bad depth", append([]string{config.CmdChart, "--depth", "9"}, delhiBirth...), config.ErrDepth},
		{"bad division", append([]string{config.CmdChart, "--divisions", "5"}, delhiBirth...), config.ErrDivision},
		{"bad date", []string{config.CmdChart, "--date", "1990-13-45", "--time", "10:30", "--zone", "UTC", "--lat", "0", "--lon", "0"}, config.ErrDateFormat},
		{"bad latitude", []string{config.CmdChart, "--date", "1990-05-15", "--time", "10:30", "--zone", "UTC", "--lat", "95", "--lon", "0"}, config.ErrLatitudeRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDasha_JSON(t *testing.T) {
	_, out, err := runCLI(t, "", append([]string{config.CmdDasha, "--format", "json", "--at", "2026-10-19"}, delhiBirth...)...)
	require.NoError(t, err)

	var report dashaReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Asha", report.Name)
	require.Len(t, report.Current, config.DefaultDashaDepth)
	require.NotEmpty(t, report.Mahadashas)

	at := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	for _, p := range report.Current {
		assert.False(t, p.Start.After(at))
		assert.True(t, p.End.After(at))
	}
	assert.Equal(t, report.Current[0].Lord, report.Current[2].Path[0])
}

func TestDasha_TextMarksCurrent(t *testing.T) {
	_, out, err := runCLI(t, "", append([]string{config.CmdDasha, "--depth", "2"}, delhiBirth...)...)
	require.NoError(t, err)
	assert.Contains(t, out, config.TextCurrentMark)
	assert.Contains(t, out, "Current period:")
}

func TestDasha_BadAt(t *testing.T) {
	_, _, err := runCLI(t, "", append([]string{config.CmdDasha, "--at", "19/10/2026"}, delhiBirth...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrAtDate)
}

func TestCalendar_LocalSourceToFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "people.toml")
	require.NoError(t, os.WriteFile(src, []byte(recordsTOML), 0o600))
	out := filepath.Join(dir, "dasha.ics")

	_, stdout, err := runCLI(t, "", config.CmdCalendar, "--source", src, "--out", out, "--reminder", "-P1D")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	ics := string(data)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "Mahadasha")
	assert.Contains(t, ics, "Antardasha")
	assert.Contains(t, ics, "TRIGGER:-P1D")
}

func TestCalendar_MissingSource(t *testing.T) {
	_, _, err := runCLI(t, "", config.CmdCalendar)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrLocalPathEmpty)
}

func TestCredentialsSet(t *testing.T) {
	keyring.MockInit()

	c, out, err := runCLI(t, "s3cret\n", config.CmdCredentials, config.CmdSet, "--target", config.TargetEphemeris, "--user", "asha")
	require.NoError(t, err)
	assert.Contains(t, out, config.TargetEphemeris)
	assert.Equal(t, "s3cret", c.secrets.Lookup(config.TargetEphemeris, "asha"))

	_, _, err = runCLI(t, "", config.CmdCredentials, config.CmdSet, "--user", "asha")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrPasswordRead)

	_, _, err = runCLI(t, "x\n", config.CmdCredentials, config.CmdSet, "--target", "mail", "--user", "asha")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrTarget)
}

func TestSyncConfig(t *testing.T) {
	keyring.MockInit()
	c := newCLI(strings.NewReader(""), io.Discard, io.Discard)
	c.settings.Source = config.SourceSettings{Mode: config.SourceModeLocal, Path: "/data/people.vcf", User: "asha"}
	c.settings.Calendar = config.CalendarSettings{Depth: 2, Reminder: "-PT1H"}
	require.NoError(t, c.secrets.Set(config.TargetSource, "asha", "dav"))

	tests := []struct {
		name     string
		source   string
		reminder string
		wantMode string
		wantPath string
		wantURL  string
		wantPass string
		wantRem  string
	}{
		{"configured", "", "", config.SourceModeLocal, "/data/people.vcf", "", "", "-PT1H"},
		{"flag path", "./people.toml", "-P1D", config.SourceModeLocal, "./people.toml", "", "", "-P1D"},
		{"flag url", "HTTPS://dav.example.com/people.vcf", "", config.SourceModeWeb, "/data/people.vcf", "HTTPS://dav.example.com/people.vcf", "dav", "-PT1H"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := c.syncConfig(tt.source, "", tt.reminder)
			assert.Equal(t, tt.wantMode, cfg.Mode)
			assert.Equal(t, tt.wantPath, cfg.LocalPath)
			assert.Equal(t, tt.wantURL, cfg.WebURL)
			assert.Equal(t, tt.wantPass, cfg.WebPass)
			assert.Equal(t, tt.wantRem, cfg.ReminderTrigger)
			assert.Equal(t, 2, cfg.Depth)
		})
	}
}

func TestRefreshLoop_WatchesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "people.toml")
	require.NoError(t, os.WriteFile(path, []byte(recordsTOML), 0o600))

	var syncs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- refreshLoop(ctx, path, 0, func(context.Context) { syncs.Add(1) })
	}()

	require.Eventually(t, func() bool { return syncs.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	// Unrelated files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte(recordsTOML+"\n"), 0o600)
		return syncs.Load() >= 2
	}, 5*time.Second, 2*config.WatchDebounce)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("refresh loop did not stop")
	}
}

func TestSyncFeeds_PublishesBothRoutes(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "people.toml")
	require.NoError(t, os.WriteFile(src, []byte(recordsTOML), 0o600))

	c, _, err := runCLI(t, "", config.CmdVersion)
	require.NoError(t, err)
	c.settings.Calendar.Depth = 1

	calc, err := c.calculator(1)
	require.NoError(t, err)
	srv := server.NewFeedServer("0")
	syncFeeds(context.Background(), c.generator(calc), c.syncConfig(src, "", ""), srv)

	h := srv.Handler()
	for _, route := range []string{config.RouteCalendar, config.RouteCharts} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, route, nil))
		assert.Equal(t, http.StatusOK, w.Code, route)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, config.RouteCharts, nil))
	var entries []struct {
		UID  string `json:"uid"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Asha", entries[0].Name)
	assert.NotEmpty(t, entries[0].UID)
}

func TestSyncFeeds_FailureKeepsInitializing(t *testing.T) {
	c, _, err := runCLI(t, "", config.CmdVersion)
	require.NoError(t, err)

	calc, err := c.calculator(1)
	require.NoError(t, err)
	srv := server.NewFeedServer("0")
	syncFeeds(context.Background(), c.generator(calc), c.syncConfig(filepath.Join(t.TempDir(), "missing.toml"), "", ""), srv)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, config.RouteCalendar, nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
