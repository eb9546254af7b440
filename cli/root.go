package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yuya-isaka/bisection/config"
)

type app struct {
	conf *viper.Viper
	log  *logrus.Logger
}

// Execute is cobra's entry point
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree with its own config and logger.
func NewRootCmd() *cobra.Command {
	a := &app{conf: config.New(), log: logrus.New()}

	rootCmd := &cobra.Command{
		Use:   "bisect",
		Short: "Find insertion points in sorted sequences",
		Long: "Values are read from the arguments after the target, or from stdin " +
			"when there are none. The sequence must already be sorted in the order in use.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.rootPreRunSetup,
	}
	rootCmd.PersistentFlags().String("log", "info", "Change the logging level. Can choose from 'trace', 'debug', 'info', 'warn', 'error', or 'fatal'")
	rootCmd.PersistentFlags().String("config", "", "Config file to read (any format viper understands)")

	rootCmd.AddCommand(a.searchCmd())
	rootCmd.AddCommand(a.insortCmd())
	return rootCmd
}

// rootPreRunSetup is run before every command
func (a *app) rootPreRunSetup(cmd *cobra.Command, args []string) error {
	a.log.SetOutput(cmd.ErrOrStderr())
	_ = a.conf.BindPFlag(config.LoggingLevel, cmd.Flags().Lookup("log"))

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		a.conf.SetConfigFile(path)
		if err := a.conf.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		a.softReadConfig()
	}

	a.initLogger()
	return nil
}

// softReadConfig will not fail. A missing bisect.* file just leaves the defaults.
func (a *app) softReadConfig() {
	a.conf.SetConfigName("bisect")
	a.conf.AddConfigPath(".")
	err := a.conf.ReadInConfig()
	if err != nil {
		a.log.WithError(err).Debugf("failed to load config")
	}
}

func (a *app) initLogger() {
	switch strings.ToLower(a.conf.GetString(config.LoggingLevel)) {
	case "trace":
		a.log.SetLevel(logrus.TraceLevel)
	case "debug":
		a.log.SetLevel(logrus.DebugLevel)
	case "info":
		a.log.SetLevel(logrus.InfoLevel)
	case "warn":
		a.log.SetLevel(logrus.WarnLevel)
	case "error":
		a.log.SetLevel(logrus.ErrorLevel)
	case "fatal":
		a.log.SetLevel(logrus.FatalLevel)
	default:
		a.log.Warnf("unknown log level %q, keeping %s", a.conf.GetString(config.LoggingLevel), a.log.GetLevel())
	}
}
