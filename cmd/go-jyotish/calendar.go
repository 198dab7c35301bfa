package main

import (
	"github.com/spf13/cobra"

	"github.com/tartampluch/go-jyotish/internal/config"
)

// sourceFlags are shared by calendar and serve.
type sourceFlags struct {
	source, user, reminder string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.source, config.FlagSource, "", config.FlagDescSource)
	cmd.Flags().StringVar(&f.user, config.FlagUser, "", config.FlagDescUser)
	cmd.Flags().StringVar(&f.reminder, config.FlagReminder, "", config.FlagDescRemind)
}

func newCalendarCmd(c *cli) *cobra.Command {
	var src sourceFlags
	var out string

	cmd := &cobra.Command{
		Use:   config.CmdCalendar,
		Short: config.CmdDescCalendar,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			calc, err := c.calculator(c.settings.Calendar.Depth)
			if err != nil {
				return err
			}
			cfg := c.syncConfig(src.source, src.user, src.reminder)
			ics, _, _, err := c.generator(calc).RunSync(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return writeOutput(c.out, out, ics)
		},
	}
	src.register(cmd)
	cmd.Flags().StringVar(&out, config.FlagOut, "", config.FlagDescOut)
	return cmd
}
