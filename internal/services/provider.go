package services

import (
	"github.com/KirkDiggler/dnd-combat-tracker/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/events"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/repositories/encounters"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/repositories/saves"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/services/encounter"
	"go.opentelemetry.io/otel/trace"
)

// Provider holds all service instances
type Provider struct {
	EncounterService encounter.Service
	EventBus         *events.Bus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	DNDClient           dnd5e.Client
	EncounterRepository encounters.Repository
	SaveRepository      saves.Repository
	EventBus            *events.Bus
	Tracer              trace.Tracer
	RestSettings        *combat.RestSettings
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	encounterRepo := cfg.EncounterRepository
	if encounterRepo == nil {
		encounterRepo = encounters.NewInMemoryRepository()
	}

	saveRepo := cfg.SaveRepository
	if saveRepo == nil {
		saveRepo = saves.NewInMemoryRepository()
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	// Lookups repeat across encounters, so monsters are cached per process
	var monsterClient dnd5e.Client
	if cfg.DNDClient != nil {
		monsterClient = dnd5e.NewCachedClient(cfg.DNDClient)
	}

	encounterService := encounter.NewService(&encounter.ServiceConfig{
		Repository:          encounterRepo,
		SaveRepository:      saveRepo,
		MonsterClient:       monsterClient,
		EventBus:            bus,
		Tracer:              cfg.Tracer,
		DefaultRestSettings: cfg.RestSettings,
	})

	return &Provider{
		EncounterService: encounterService,
		EventBus:         bus,
	}
}
