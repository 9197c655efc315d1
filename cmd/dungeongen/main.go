// Package main is the entry point for dungeongen.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/samdwyer/dungeongen/internal/config"
	"github.com/samdwyer/dungeongen/internal/game"
	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/telemetry"
	"github.com/samdwyer/dungeongen/internal/ui"
)

const defaultConfigPath = "dungeongen.toml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to the TOML config (default "+defaultConfigPath+")")
	seed := flag.Int64("seed", 0, "Seed for generation; overrides the config (0 = config or random)")
	dump := flag.Bool("dump", false, "Print the generated level to stdout and exit")
	flag.Parse()

	// .env is optional; env vars might be set directly
	envErr := godotenv.Load()

	// 1. Load config
	path, optional := *configPath, false
	if path == "" {
		path = os.Getenv("DUNGEONGEN_CONFIG")
	}
	if path == "" {
		path, optional = defaultConfigPath, true
	}
	cfg, err := config.Load(path, optional)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if envErr != nil {
		log.Debug(".env file not loaded", zap.Error(envErr))
	}

	ctx := context.Background()

	// 3. Telemetry
	if cfg.Telemetry.Enabled {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			log.Warn("telemetry setup failed, running without tracing", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Warn("telemetry shutdown", zap.Error(err))
				}
			}()
		}
	}

	defs, err := gamedata.LoadEntities()
	if err != nil {
		return fmt.Errorf("load entity data: %w", err)
	}
	log.Debug("entity data loaded",
		zap.Int("enemy_kinds", gamedata.NewEnemyRegistry(defs.Enemies).Count()),
		zap.Int("pickup_kinds", len(defs.Pickups)))

	levelSeed := cfg.Game.Seed
	if *seed != 0 {
		levelSeed = *seed
	}
	levelSeed = game.ResolveSeed(levelSeed)

	// 4. Dump or view
	if *dump {
		level, err := game.NewLevel(ctx, cfg, defs, levelSeed, log)
		if err != nil {
			return err
		}
		fmt.Print(ui.Glyphs(level))
		fmt.Printf("seed %d\n", levelSeed)
		return nil
	}

	g, err := game.New(cfg, defs, levelSeed, log)
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	return g.Run(ctx)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	// stdout belongs to the map dump and the terminal UI.
	zapCfg.OutputPaths = []string{"stderr"}

	return zapCfg.Build()
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_DUNGEONGEN_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	dataset := os.Getenv("HONEYCOMB_DUNGEONGEN_DATASET")
	if dataset == "" {
		dataset = "dungeongen"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
