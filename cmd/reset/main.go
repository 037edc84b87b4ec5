package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/osse101/prestige/internal/bootstrap"
	"github.com/osse101/prestige/internal/config"
	"github.com/osse101/prestige/internal/event"
	"github.com/osse101/prestige/internal/session"
)

// reset wipes a player's progress directly against the configured store.
// With -dilation only the dilation layer is reset; otherwise the player is deleted.
func main() {
	playerID := flag.String("player", "", "player id to reset (required)")
	dilationOnly := flag.Bool("dilation", false, "reset dilation progress instead of deleting the player")
	flag.Parse()

	if *playerID == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	bootstrap.SetupLogger(cfg, os.Stderr)

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open progress store: %v", err)
	}
	defer func() { _ = store.Close() }()

	catalog, err := bootstrap.LoadContent(cfg)
	if err != nil {
		log.Fatalf("Failed to load content: %v", err)
	}

	// No subscribers outside the server process.
	svc := session.NewService(store.Progress, event.NewMemoryBus(), catalog, session.Options{})

	if *dilationOnly {
		if _, err := svc.ResetDilation(ctx, *playerID); err != nil {
			log.Fatalf("Failed to reset dilation for %s: %v", *playerID, err)
		}
		log.Printf("Dilation progress for %s reset.\n", *playerID)
		return
	}

	if err := svc.DeletePlayer(ctx, *playerID); err != nil {
		log.Fatalf("Failed to delete %s: %v", *playerID, err)
	}
	log.Printf("Player %s deleted.\n", *playerID)
}
