package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/config"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/events"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/handlers/discord"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/repositories/encounters"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/repositories/saves"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/services"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/telemetry"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	if cfg.Telemetry.Enabled {
		shutdown, telemetryErr := telemetry.Setup(context.Background(), cfg.Telemetry.ServiceName)
		if telemetryErr != nil {
			log.Printf("Failed to set up tracing: %v", telemetryErr)
		} else {
			log.Printf("Tracing enabled as %s", cfg.Telemetry.ServiceName)
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if shutdownErr := shutdown(ctx); shutdownErr != nil {
					log.Printf("Failed to flush traces: %v", shutdownErr)
				}
			}()
		}
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	bus := events.NewBus()
	restSettings := cfg.Rest.RestSettings()
	providerConfig := &services.ProviderConfig{
		EventBus:     bus,
		Tracer:       telemetry.Tracer("encounter"),
		RestSettings: &restSettings,
	}

	if cfg.DND5E.Enabled {
		dndClient, dndErr := dnd5e.New(&dnd5e.Config{
			HttpClient: &http.Client{
				Timeout: cfg.DND5E.Timeout,
			},
		})
		if dndErr != nil {
			log.Fatalf("Failed to create D&D 5e client: %v", dndErr)
		}
		providerConfig.DNDClient = dndClient
	} else {
		log.Println("D&D 5e lookups disabled, /combat monster will be unavailable")
	}

	redisClient := connectRedis(cfg.Redis)
	if redisClient != nil {
		providerConfig.EncounterRepository = encounters.NewRedis(redisClient)
		providerConfig.SaveRepository = saves.NewRedis(redisClient)
		log.Println("Using Redis for persistence")
	} else {
		log.Println("Using in-memory repositories, encounters are lost on restart")
	}

	// Create service provider
	serviceProvider := services.NewProvider(providerConfig)

	// Create Discord handler
	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: serviceProvider,
	})

	discord.NewTurnAnnouncer(dg).Subscribe(bus)

	// Register interaction handler
	dg.AddHandler(discord.RecoverMiddleware("interaction", handler.HandleInteraction))

	// Open connection to Discord
	err = dg.Open()
	if err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		clientErr := dg.Close()
		if clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}

// connectRedis returns a connected client, or nil when Redis is unreachable
func connectRedis(cfg config.RedisConfig) *redis.Client {
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			log.Printf("Failed to parse Redis URL: %v", err)
			return nil
		}
		opts = parsed
		log.Printf("Connecting to Redis at: %s", cfg.URL)
	} else {
		opts = &redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
		log.Printf("Connecting to Redis at: %s", cfg.Addr)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		if closeErr := client.Close(); closeErr != nil {
			log.Printf("Error closing Redis client: %v", closeErr)
		}
		return nil
	}

	log.Println("Successfully connected to Redis")
	return client
}
