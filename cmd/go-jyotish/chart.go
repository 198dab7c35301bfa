package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/tartampluch/go-jyotish/internal/chart"
	"github.com/tartampluch/go-jyotish/internal/config"
	"github.com/tartampluch/go-jyotish/internal/dasha"
)

func newChartCmd(c *cli) *cobra.Command {
	var in chart.BirthInput
	var format string

	cmd := &cobra.Command{
		Use:   config.CmdChart,
		Short: config.CmdDescChart,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			calc, err := c.calculator(0)
			if err != nil {
				return err
			}
			ch, err := calc.Compute(cmd.Context(), in)
			if err != nil {
				return err
			}
			return render(c.out, format, ch, func(w io.Writer) error {
				return writeChartText(w, c.tr, ch)
			})
		},
	}
	addBirthFlags(cmd, &in)
	addFormatFlag(cmd, &format)
	return cmd
}

func newDashaCmd(c *cli) *cobra.Command {
	var in chart.BirthInput
	var format, at string

	cmd := &cobra.Command{
		Use:   config.CmdDasha,
		Short: config.CmdDescDasha,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			when := c.clock.Now()
			if at != "" {
				parsed, err := time.ParseInLocation(time.DateOnly, at, time.UTC)
				if err != nil {
					return fmt.Errorf("%s: %w", config.ErrAtDate, err)
				}
				when = parsed
			}

			calc, err := c.calculator(0)
			if err != nil {
				return err
			}
			ch, err := calc.Compute(cmd.Context(), in)
			if err != nil {
				return err
			}

			birth := ch.Birth.UTC
			current, err := calc.Dasha().ActivePeriods(ch.Dasha, birth, when, c.settings.Chart.DashaDepth)
			if err != nil {
				return err
			}
			report := dashaReport{Name: ch.Name, At: when, Current: current}
			for _, n := range ch.Dasha {
				report.Mahadashas = append(report.Mahadashas, dasha.Dated(n, birth))
			}
			return render(c.out, format, report, func(w io.Writer) error {
				return writeDashaText(w, c.tr, report)
			})
		},
	}
	addBirthFlags(cmd, &in)
	addFormatFlag(cmd, &format)
	cmd.Flags().StringVar(&at, config.FlagAt, "", config.FlagDescAt)
	return cmd
}

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdVersion,
		Short: config.CmdDescVersion,
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			printVersion(c.out)
		},
	}
}
