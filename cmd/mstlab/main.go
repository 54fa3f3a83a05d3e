// Command mstlab builds undirected weighted graphs and replays minimum
// spanning tree and traversal algorithms on them, step by step.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstlab/config"
	"github.com/katalvlaran/mstlab/observability"
	"github.com/katalvlaran/mstlab/session"
)

var version = "dev"

// app carries state shared by all subcommands.
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string

	cfg *config.Config
	log *zap.Logger
}

func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	if a.log != nil {
		_ = a.log.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "mstlab",
		Short:        "mstlab: graph builder with step-by-step MST and traversal replay",
		Long:         "Build an undirected weighted graph, then run Kruskal, Prim, BFS and DFS on it and inspect every step.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: ./mstlab.yaml or ~/.mstlab/mstlab.yaml)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides config")
	pf.StringVar(&a.logFormat, "log-format", "", "log output format (console, json); overrides config")

	root.AddCommand(
		runCmd(a),
		replCmd(a),
		serveCmd(a),
		exportCmd(a),
		generateCmd(a),
		versionCmd(),
	)

	return root
}

// setup loads configuration (file, MSTLAB_* env, then flags) and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	v := config.New(a.cfgFile)
	root := cmd.Root().PersistentFlags()
	if err := v.BindPFlag("log.level", root.Lookup("log-level")); err != nil {
		return err
	}
	if err := v.BindPFlag("log.format", root.Lookup("log-format")); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	log, err := observability.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.log.Debug("configuration loaded", zap.String("config", v.ConfigFileUsed()),
		zap.String("log_level", cfg.Log.Level), zap.String("listen", cfg.Server.Listen))

	return nil
}

// limits returns the weight range from configuration.
func (a *app) limits() session.Limits {
	return session.Limits{Min: a.cfg.Engine.MinWeight, Max: a.cfg.Engine.MaxWeight}
}

func (a *app) newSession() *session.Session {
	return session.New(session.WithLogger(a.log), session.WithLimits(a.limits()))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print version",
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mstlab %s\n", version)
		},
	}
}
