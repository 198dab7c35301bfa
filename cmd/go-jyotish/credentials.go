package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tartampluch/go-jyotish/internal/config"
)

func newCredentialsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.CmdCredentials,
		Short: config.CmdDescCredentials,
	}

	var target, user string
	set := &cobra.Command{
		Use:   config.CmdSet,
		Short: config.CmdDescSet,
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			fmt.Fprint(c.errOut, config.MsgPasswordPrompt)
			sc := bufio.NewScanner(c.in)
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return fmt.Errorf("%s: %w", config.ErrPasswordRead, err)
				}
				return errors.New(config.ErrPasswordRead)
			}
			password := strings.TrimRight(sc.Text(), "\r")
			if err := c.secrets.Set(target, user, password); err != nil {
				return err
			}
			fmt.Fprintf(c.out, config.MsgPasswordStored, target)
			return nil
		},
	}
	set.Flags().StringVar(&target, config.FlagTarget, config.TargetSource, config.FlagDescTarget)
	set.Flags().StringVar(&user, config.FlagUser, "", config.FlagDescUser)
	_ = set.MarkFlagRequired(config.FlagUser)

	cmd.AddCommand(set)
	return cmd
}
