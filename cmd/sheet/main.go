// Package main provides the interactive point-buy character sheet builder.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/pointbuy/internal/config"
	"github.com/cory-johannsen/pointbuy/internal/console"
	"github.com/cory-johannsen/pointbuy/internal/game/command"
	"github.com/cory-johannsen/pointbuy/internal/game/dice"
	"github.com/cory-johannsen/pointbuy/internal/game/inventory"
	"github.com/cory-johannsen/pointbuy/internal/game/sheet"
	"github.com/cory-johannsen/pointbuy/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file; empty = defaults and environment only")
	skillsDir := flag.String("skills-dir", "", "path to skill YAML catalog directory (overrides config)")
	traitsDir := flag.String("traits-dir", "", "path to trait YAML catalog directory (overrides config)")
	equipmentDir := flag.String("equipment-dir", "", "path to equipment YAML catalog directory (overrides config)")
	noColor := flag.Bool("no-color", false, "disable ANSI colors")
	seed := flag.Uint64("seed", 0, "seed for reproducible dice rolls; 0 = cryptographic randomness")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	dirs := command.CatalogDirs{
		Skills:    override(*skillsDir, cfg.Content.SkillsDir),
		Traits:    override(*traitsDir, cfg.Content.TraitsDir),
		Equipment: override(*equipmentDir, cfg.Content.EquipmentDir),
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	catalogStart := time.Now()
	catalog, err := command.LoadCatalog(ctx, dirs)
	if err != nil {
		logger.Fatal("loading catalogs", zap.Error(err))
	}
	logger.Info("catalogs loaded",
		zap.Int("skills", len(catalog.Skills)),
		zap.Int("traits", len(catalog.Traits)),
		zap.Int("equipment", len(catalog.Equipment)),
		zap.Duration("elapsed", time.Since(catalogStart)),
	)

	costs, err := cfg.Build.Costs()
	if err != nil {
		logger.Fatal("resolving attribute costs", zap.Error(err))
	}
	sh, err := sheet.New(sheet.Options{TotalPoints: cfg.Build.TotalPoints, Costs: costs}, logger)
	if err != nil {
		logger.Fatal("creating sheet", zap.Error(err))
	}

	src := dice.NewCryptoSource()
	if *seed != 0 {
		src = dice.NewSeededSource(*seed)
		logger.Info("dice seeded", zap.Uint64("seed", *seed))
	}

	build := &command.Context{
		Sheet:     sh,
		Inventory: inventory.NewInventory(),
		Catalog:   catalog,
		Roller:    dice.NewLoggedRoller(src, logger),
	}
	logger.Info("session starting",
		zap.Int("total_points", sh.TotalPoints()),
		zap.Duration("startup", time.Since(start)),
	)

	session := console.NewSession(os.Stdin, os.Stdout, build, logger, !*noColor)
	if err := session.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Fatal("session", zap.Error(err))
	}
	logger.Info("session ended", zap.Int("remaining", sh.Remaining()))
}

func override(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return configValue
}
