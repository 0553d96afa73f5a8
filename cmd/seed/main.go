package main

import (
	"context"
	"flag"
	"log"

	"github.com/GlitchedDuck/Manager-hub/internal/config"
	"github.com/GlitchedDuck/Manager-hub/internal/logger"
	"github.com/GlitchedDuck/Manager-hub/internal/seed"
	"github.com/GlitchedDuck/Manager-hub/internal/service"
	"github.com/GlitchedDuck/Manager-hub/internal/store"
)

func main() {
	configFile := flag.String("config", "etc/config-dev.yaml", "config file")
	force := flag.Bool("force", false, "seed even when records already exist")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	ctx := context.Background()

	gw, err := store.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatal("store open failed: ", err)
	}
	loc, err := cfg.Team.Location()
	if err != nil {
		log.Fatal(err)
	}
	st := service.NewState(gw, service.WithDefaultMembers(cfg.Team.DefaultMembers), service.WithLocation(loc))
	if warnings := st.Load(ctx); len(warnings) > 0 {
		log.Fatalf("%d collections failed to load; refusing to seed over them", len(warnings))
	}

	sum, err := seed.Run(ctx, service.New(st), *force)
	if err != nil {
		log.Fatal(err)
	}
	for kind, n := range sum {
		logger.Info("seeded", "collection", kind, "records", n)
	}
	logger.Info("=== all done ===")
}
