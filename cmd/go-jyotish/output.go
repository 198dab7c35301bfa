package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tartampluch/go-jyotish/internal/chart"
	"github.com/tartampluch/go-jyotish/internal/config"
	"github.com/tartampluch/go-jyotish/internal/dasha"
	"github.com/tartampluch/go-jyotish/internal/locale"
)

func addFormatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVar(format, config.FlagFormat, config.FormatText, config.FlagDescFormat)
}

// addBirthFlags registers the birth data flags. All but the name are required.
func addBirthFlags(cmd *cobra.Command, in *chart.BirthInput) {
	f := cmd.Flags()
	f.StringVar(&in.Name, config.FlagName, "", config.FlagDescName)
	f.StringVar(&in.Date, config.FlagDate, "", config.FlagDescDate)
	f.StringVar(&in.Time, config.FlagTime, "", config.FlagDescTime)
	f.StringVar(&in.Zone, config.FlagZone, "", config.FlagDescZone)
	f.Float64Var(&in.Latitude, config.FlagLatitude, 0, config.FlagDescLat)
	f.Float64Var(&in.Longitude, config.FlagLongitude, 0, config.FlagDescLon)
	for _, name := range []string{config.FlagDate, config.FlagTime, config.FlagZone, config.FlagLatitude, config.FlagLongitude} {
		_ = cmd.MarkFlagRequired(name)
	}
}

// render writes v as JSON or YAML, or calls text for the text format.
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch strings.ToLower(format) {
	case config.FormatText, "":
		return text(w)
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("%s: %w", config.ErrJSONEncode, err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("%s: %w", config.ErrOutputWrite, err)
		}
		return enc.Close()
	}
	return fmt.Errorf("%s: %q", config.ErrFormat, format)
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, config.FilePermPublic); err != nil {
		return fmt.Errorf("%s: %w", config.ErrOutputWrite, err)
	}
	return nil
}

func degrees(d float64) string {
	return fmt.Sprintf(config.TextDegrees, d)
}

func writeChartText(w io.Writer, tr *locale.Translator, ch *chart.Chart) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if ch.Name != "" {
		fmt.Fprintf(tw, config.TextTitle, ch.Name)
	}
	asc := ch.Ascendant
	fmt.Fprintf(tw, config.TextLabelValue, tr.Msg(config.TKeyLblAscendant),
		fmt.Sprintf(config.TextPlacement, tr.SignName(asc.Sign), degrees(asc.DegreeInSign), tr.NakshatraName(asc.Nakshatra), asc.Pada))
	fmt.Fprintf(tw, config.TextLabelValue, tr.Msg(config.TKeyLblAyanamsa), degrees(ch.Ayanamsa))
	system := string(ch.HouseSystemUsed)
	if ch.HouseFallbackReason != "" {
		system = fmt.Sprintf(config.TextFallback, system, ch.HouseFallbackReason)
	}
	fmt.Fprintf(tw, config.TextLabelValue, tr.Msg(config.TKeyLblHouseSystem), system)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, strings.Join([]string{
		tr.Msg(config.TKeyHdrBody),
		tr.Msg(config.TKeyHdrSign),
		tr.Msg(config.TKeyHdrDegree),
		tr.Msg(config.TKeyHdrNakshatra),
		tr.Msg(config.TKeyHdrHouse),
		tr.Msg(config.TKeyHdrDignity),
		"",
	}, "\t"))
	for _, b := range ch.Bodies {
		var marks []string
		if b.Retrograde {
			marks = append(marks, config.TextFlagMark)
		}
		if b.Combust {
			marks = append(marks, config.TextCombustMark)
		}
		dignity := string(b.Dignity)
		if dignity == "" {
			dignity = config.TextEmptyCell
		}
		fmt.Fprintln(tw, strings.Join([]string{
			tr.BodyName(b.Body),
			tr.SignName(b.Sign),
			degrees(b.DegreeInSign),
			tr.NakshatraName(b.Nakshatra) + " " + strconv.Itoa(b.Pada),
			strconv.Itoa(b.House),
			dignity,
			strings.Join(marks, ""),
		}, "\t"))
	}
	return tw.Flush()
}

// dashaReport is the dasha command's output.
type dashaReport struct {
	Name       string         `json:"name,omitempty" yaml:"name,omitempty"`
	At         time.Time      `json:"at" yaml:"at"`
	Mahadashas []dasha.Period `json:"mahadashas" yaml:"mahadashas"`
	Current    []dasha.Period `json:"current" yaml:"current"`
}

func writeDashaText(w io.Writer, tr *locale.Translator, r dashaReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if r.Name != "" {
		fmt.Fprintf(tw, config.TextTitle, r.Name)
	}

	fmt.Fprintln(tw, strings.Join([]string{tr.Msg(config.TKeyHdrLord), tr.Msg(config.TKeyHdrStart), tr.Msg(config.TKeyHdrEnd), ""}, "\t"))
	for _, p := range r.Mahadashas {
		mark := ""
		if !p.Start.After(r.At) && p.End.After(r.At) {
			mark = config.TextCurrentMark
		}
		fmt.Fprintln(tw, strings.Join([]string{
			tr.BodyName(p.Lord),
			p.Start.Format(time.DateOnly),
			p.End.Format(time.DateOnly),
			mark,
		}, "\t"))
	}

	if n := len(r.Current); n > 0 {
		names := make([]string, n)
		for i, p := range r.Current {
			names[i] = tr.BodyName(p.Lord)
		}
		deepest := r.Current[n-1]
		fmt.Fprintln(tw)
		fmt.Fprintf(tw, config.TextLabelValue, tr.Msg(config.TKeyLblCurrent),
			strings.Join(names, config.PathSeparator)+"  "+
				fmt.Sprintf(config.TextDateRange, deepest.Start.Format(time.DateOnly), deepest.End.Format(time.DateOnly)))
	}
	return tw.Flush()
}
