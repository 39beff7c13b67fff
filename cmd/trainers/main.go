package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"luchik.app/trainers/internal/abacus"
	"luchik.app/trainers/internal/config"
	"luchik.app/trainers/internal/generator"
	"luchik.app/trainers/internal/hint"
	"luchik.app/trainers/internal/logging"
	"luchik.app/trainers/internal/ranges"
	"luchik.app/trainers/internal/usecase"
	"luchik.app/trainers/internal/validator"
)

// app is the state shared by every subcommand once the root has run.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "trainers",
		Short: "Drill generators for abacus and mental arithmetic trainers",
		Long: `trainers builds quick-math sequences, abacus flash cards, brothers
drills, Schulte tables and Stroop tests. Run "serve" for the JSON API or
"generate" to print a single session.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Logging.Level = a.logLevel
			}
			logger, err := logging.New(cfg.Logging)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "trainers.yaml", "Path to YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "debug|info|warn|error")

	root.AddCommand(a.serveCmd())
	root.AddCommand(a.generateCmd())
	return root
}

// service wires providers into the use case.
func (a *app) service() *usecase.Service {
	ts := generator.NewTargetSumGenerator()
	ts.MaxTrials = a.cfg.Generator.MaxTrials
	ts.MaxPasses = a.cfg.Generator.MaxPasses
	return usecase.NewService(ranges.New(), generator.NewBeadGenerator(), ts, abacus.New(), hint.NewBrothers(), a.logger)
}

func (a *app) validator() *validator.FieldValidator { return validator.New() }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
