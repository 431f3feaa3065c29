package saves

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	dnderr "github.com/KirkDiggler/dnd-combat-tracker/internal/errors"
)

type inMemoryRepository struct {
	mu    sync.RWMutex
	saves map[string]*combat.SaveData
}

// NewInMemoryRepository creates a new in-memory save repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		saves: make(map[string]*combat.SaveData),
	}
}

func cloneSave(save *combat.SaveData) *combat.SaveData {
	c := *save
	c.CombatState = save.CombatState.Clone()
	c.Templates = append([]*combat.Template(nil), save.Templates...)
	return &c
}

func (r *inMemoryRepository) Create(ctx context.Context, save *combat.SaveData) error {
	if save == nil {
		return dnderr.InvalidArgument("save cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.saves[save.ID]; exists {
		return dnderr.AlreadyExistsf("save with ID %s already exists", save.ID).WithMeta(dnderr.MetaSaveID, save.ID)
	}
	r.saves[save.ID] = cloneSave(save)
	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, id string) (*combat.SaveData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	save, exists := r.saves[id]
	if !exists {
		return nil, dnderr.NotFoundf("save not found: %s", id).WithMeta(dnderr.MetaSaveID, id)
	}
	return cloneSave(save), nil
}

func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.saves[id]; !exists {
		return dnderr.NotFoundf("save not found: %s", id).WithMeta(dnderr.MetaSaveID, id)
	}
	delete(r.saves, id)
	return nil
}

func (r *inMemoryRepository) ListByEncounter(ctx context.Context, encounterID string) ([]*combat.SaveData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*combat.SaveData, 0)
	for _, save := range r.saves {
		if save.EncounterID == encounterID {
			result = append(result, cloneSave(save))
		}
	}
	sortNewestFirst(result)
	return result, nil
}
