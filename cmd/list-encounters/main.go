package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/repositories/encounters"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/repositories/saves"
)

func main() {
	showSaves := flag.Bool("saves", false, "also list each encounter's saves")
	flag.Parse()

	ctx := context.Background()

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	// Test connection
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	encounterRepo := encounters.NewRedis(client)
	saveRepo := saves.NewRedis(client)

	list, err := encounterRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list encounters: %v", err)
	}

	fmt.Printf("Found %d encounters:\n", len(list))
	for _, enc := range list {
		current := "-"
		if p := enc.State.Current(); p != nil {
			current = p.Name
		}
		fmt.Printf("  %s: %q in channel %s, round %d, %d participants, turn: %s, updated %s\n",
			enc.ID, enc.Name, enc.ChannelID, enc.State.CurrentRound, len(enc.State.Participants),
			current, enc.UpdatedAt.Format("2006-01-02 15:04"))

		if !*showSaves {
			continue
		}
		encounterSaves, saveErr := saveRepo.ListByEncounter(ctx, enc.ID)
		if saveErr != nil {
			fmt.Printf("    saves: ERROR - %v\n", saveErr)
			continue
		}
		for _, save := range encounterSaves {
			fmt.Printf("    save %s: %q at %s\n", save.ID, save.Name, save.Time().Format("2006-01-02 15:04"))
		}
	}
}
