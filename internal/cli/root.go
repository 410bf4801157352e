// Package cli wires the actorgraph commands: pathfinder, movietraveler and
// linkpredictor.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/actorgraph/core"
	"github.com/katalvlaran/actorgraph/internal/config"
	"github.com/katalvlaran/actorgraph/internal/logging"
	"github.com/katalvlaran/actorgraph/internal/query"
	"github.com/katalvlaran/actorgraph/predict"
	"github.com/katalvlaran/actorgraph/prim_kruskal"
)

// flagKeys maps persistent flags to their viper keys.
var flagKeys = map[string]string{
	"reference-year": "reference_year",
	"top-k":          "top_k",
	"mst-method":     "mst.method",
	"mst-root":       "mst.root",
	"log-level":      "log.level",
	"log-format":     "log.format",
	"metrics-file":   "metrics_file",
	"report-file":    "report_file",
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:   "actorgraph",
		Short: "Actor collaboration graph tools",
		Long: "actorgraph builds a graph of actors linked by shared movies from a TSV of " +
			"(actor, title, year) credits and answers path, spanning forest and collaboration queries.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, v)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .actorgraph.yaml)")
	pf.Int("reference-year", core.DefaultReferenceYear, "year treated as the present by the travel cost")
	pf.Int("top-k", predict.DefaultTopK, "candidates kept per predicted actor")
	pf.String("mst-method", prim_kruskal.MethodKruskal, "spanning forest algorithm: kruskal or prim")
	pf.String("mst-root", "", "first root actor for prim")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "console", "log encoding: console or json")
	pf.String("metrics-file", "", "write Prometheus metrics to this textfile on exit")
	pf.String("report-file", "", "write a YAML run report to this file on exit")
	for flag, key := range flagKeys {
		_ = v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		newPathfinderCmd(v),
		newMovieTravelerCmd(v),
		newLinkPredictorCmd(v),
	)

	return root
}

// initConfig reads the config file and enables env overrides. A missing
// default config file is fine; a missing explicit one is not.
func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".actorgraph")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	config.BindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}

// session loads the configuration and prepares a runner for command.
// The returned cleanup flushes the logger.
func session(v *viper.Viper, command string) (*query.Runner, func(), error) {
	cfg, err := config.LoadFrom(v)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = log.Sync() }
	log.Debug("configuration loaded",
		zap.Int("reference_year", cfg.ReferenceYear),
		zap.Int("top_k", cfg.TopK),
		zap.String("mst_method", cfg.MST.Method),
		zap.String("config_file", v.ConfigFileUsed()),
	)

	return query.NewRunner(cfg, log, command), cleanup, nil
}
