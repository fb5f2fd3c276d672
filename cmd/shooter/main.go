package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/1icebest1/shooter/internal/domain"
	"github.com/1icebest1/shooter/internal/engine"
	"github.com/1icebest1/shooter/internal/render"
	"github.com/1icebest1/shooter/internal/version"
	"github.com/1icebest1/shooter/pkg/logger"
	"github.com/1icebest1/shooter/pkg/worldgen"
	"github.com/armon/go-metrics"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		seed       int64
	)

	rootCmd := &cobra.Command{
		Use:           "shooter",
		Short:         "Top-down survival shooter against endless slimes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(configPath, seed)
		},
	}
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "world seed (0 for random)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(version.String())
		},
	})
	return rootCmd
}

func run(configPath string, seed int64) error {
	// 1. Config and logging
	cfg, err := engine.LoadConfig(configPath)
	if err != nil {
		return err
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	logger.Log.Info("Starting Slime Survival...")
	logger.Log.Info(version.String())

	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("Using random seed: %d", cfg.Seed)
	}
	cfg.Window.Title = version.WindowTitle(cfg.Window.Title)

	// 2. Metrics, dumped to stderr on SIGUSR1
	sink := metrics.NewInmemSink(10*time.Second, time.Minute)
	metrics.DefaultInmemSignal(sink)
	mcfg := metrics.DefaultConfig("shooter")
	mcfg.EnableHostname = false
	if _, err := metrics.NewGlobal(mcfg, sink); err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	// 3. World
	rng := rand.New(rand.NewSource(cfg.Seed))
	gen := worldgen.Generate(worldgen.DefaultConfig(), domain.DefaultCatalog(), rng)

	// 4. Run
	game := engine.NewGame(cfg, gen.World, gen.Items, engine.NewWallClock(), rng)
	if err := render.Run(cfg, game); err != nil {
		return err
	}

	logger.Log.Info("Done.")
	return nil
}
