package encounters

//go:generate mockgen -destination=mock/mock_repository.go -package=mockencrepo -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
)

// Repository defines the interface for encounter storage operations
type Repository interface {
	// Create stores a new encounter
	Create(ctx context.Context, encounter *combat.Encounter) error

	// Get retrieves an encounter by ID
	Get(ctx context.Context, id string) (*combat.Encounter, error)

	// Update replaces an existing encounter
	Update(ctx context.Context, encounter *combat.Encounter) error

	// Delete removes an encounter
	Delete(ctx context.Context, id string) error

	// GetByChannel retrieves the encounter running in a Discord channel
	GetByChannel(ctx context.Context, channelID string) (*combat.Encounter, error)

	// List returns every stored encounter
	List(ctx context.Context) ([]*combat.Encounter, error)
}
