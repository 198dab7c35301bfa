package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tartampluch/go-jyotish/internal/config"
	"github.com/tartampluch/go-jyotish/internal/engine"
	"github.com/tartampluch/go-jyotish/internal/locale"
	"github.com/tartampluch/go-jyotish/internal/secret"
)

// cli carries the state shared by every command.
type cli struct {
	v        *viper.Viper
	settings config.Settings

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	clock   engine.Clock
	secrets *secret.Store
	tr      *locale.Translator

	// logToFile adds the cache-dir log file to the logger.
	logToFile bool
	logCloser io.Closer
}

func newCLI(in io.Reader, out, errOut io.Writer) *cli {
	return &cli{
		v:       viper.New(),
		in:      in,
		out:     out,
		errOut:  errOut,
		clock:   engine.RealClock{},
		secrets: secret.NewStore(),
	}
}

func (c *cli) close() {
	if c.logCloser != nil {
		_ = c.logCloser.Close()
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           config.AppCommand,
		Short:         config.CmdDescRoot,
		Long:          config.CmdDescRootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.initConfig(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String(config.FlagConfig, "", config.FlagDescConfig)
	pf.Bool(config.FlagDebug, false, config.FlagDescDebug)
	pf.String(config.FlagLanguage, config.DefaultLanguage, config.FlagDescLang)
	pf.String(config.FlagHouses, config.HouseWholeSign, config.FlagDescHouses)
	pf.IntSlice(config.FlagDivisions, config.DefaultDivisions, config.FlagDescDivs)
	pf.Int(config.FlagDepth, config.DefaultDashaDepth, config.FlagDescDepth)
	pf.String(config.FlagEphemeris, config.EphemerisAnalytic, config.FlagDescEphem)
	pf.String(config.FlagNode, config.NodeMean, config.FlagDescNode)

	_ = c.v.BindPFlag(config.KeyLanguage, pf.Lookup(config.FlagLanguage))
	_ = c.v.BindPFlag(config.KeyHouseSystem, pf.Lookup(config.FlagHouses))
	_ = c.v.BindPFlag(config.KeyDivisions, pf.Lookup(config.FlagDivisions))
	_ = c.v.BindPFlag(config.KeyDashaDepth, pf.Lookup(config.FlagDepth))
	_ = c.v.BindPFlag(config.KeyEphemerisMode, pf.Lookup(config.FlagEphemeris))
	_ = c.v.BindPFlag(config.KeyEphemerisNode, pf.Lookup(config.FlagNode))

	root.AddCommand(
		newChartCmd(c),
		newDashaCmd(c),
		newCalendarCmd(c),
		newServeCmd(c),
		newCredentialsCmd(c),
		newVersionCmd(c),
	)
	return root
}

// initConfig reads go-jyotish.toml, JYOTISH_* variables and flags into
// c.settings, then sets up logging and the translator.
func (c *cli) initConfig(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString(config.FlagConfig)
	if cfgFile != "" {
		c.v.SetConfigFile(cfgFile)
	} else {
		c.v.SetConfigName(config.ConfigFileName)
		c.v.SetConfigType(config.ConfigFileType)
		c.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			c.v.AddConfigPath(home)
		}
	}
	config.BindEnv(c.v)

	// A missing default config file is fine; an explicit one must exist.
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("%s: %w", config.ErrConfigLoad, err)
		}
	}

	debug, _ := cmd.Flags().GetBool(config.FlagDebug)
	c.logCloser = setupLogging(c.errOut, debug, c.logToFile)
	logStartupInfo()

	settings, err := config.Load(c.v)
	if err != nil {
		return err
	}
	c.settings = settings
	c.tr = locale.New(settings.Language)
	return nil
}
