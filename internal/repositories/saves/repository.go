package saves

//go:generate mockgen -destination=mock/mock_repository.go -package=mocksaverepo -source=repository.go

import (
	"context"
	"sort"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
)

// Repository stores named snapshots of encounters
type Repository interface {
	// Create stores a new save
	Create(ctx context.Context, save *combat.SaveData) error

	// Get retrieves a save by ID
	Get(ctx context.Context, id string) (*combat.SaveData, error)

	// Delete removes a save
	Delete(ctx context.Context, id string) error

	// ListByEncounter returns the saves taken from an encounter, newest first
	ListByEncounter(ctx context.Context, encounterID string) ([]*combat.SaveData, error)
}

func sortNewestFirst(saves []*combat.SaveData) {
	sort.SliceStable(saves, func(i, j int) bool {
		return saves[i].Timestamp > saves[j].Timestamp
	})
}
