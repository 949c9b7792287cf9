package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	cwumee "github.com/umee-network/umee-cosmwasm"
	"github.com/umee-network/umee-cosmwasm/umee"
)

type globalFlags struct {
	configPath string
	logLevel   string
	kind       string
}

// app is shared by the subcommands once flags are parsed.
type app struct {
	flags  globalFlags
	cfg    cwumee.Config
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:          "umeebind",
		Short:        "Inspect and build umee custom queries and messages",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&a.flags.configPath, "config", "", "path to a YAML client config")
	cmd.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level, overrides the config")
	cmd.PersistentFlags().StringVar(&a.flags.kind, "kind", "query", "catalog to use: query|msg")

	cmd.AddCommand(
		newVariantsCmd(a),
		newEncodeCmd(a),
		newInspectCmd(a),
		newDemoCmd(a),
	)
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	a.cfg = cwumee.DefaultConfig()
	if a.flags.configPath != "" {
		cfg, err := cwumee.LoadConfig(a.flags.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.flags.logLevel != "" {
		a.cfg.LogLevel = a.flags.logLevel
	}
	lvl, err := a.cfg.Level()
	if err != nil {
		return err
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: noColor()}).
		Level(lvl).
		With().Timestamp().Logger()
	return nil
}

func (a *app) registryKind() (umee.Kind, error) {
	switch a.flags.kind {
	case "query":
		return umee.KindQuery, nil
	case "msg":
		return umee.KindMsg, nil
	default:
		return 0, fmt.Errorf("invalid kind %q, expected query or msg", a.flags.kind)
	}
}

func registry(kind umee.Kind) *umee.Registry {
	if kind == umee.KindMsg {
		return umee.Msgs()
	}
	return umee.Queries()
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}
