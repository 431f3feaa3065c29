package encounters

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/clock"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	dnderr "github.com/KirkDiggler/dnd-combat-tracker/internal/errors"
)

// inMemoryRepository keeps deep copies so callers never share state with the store
type inMemoryRepository struct {
	mu           sync.RWMutex
	encounters   map[string]*combat.Encounter
	byChannel    map[string]string // channelID -> encounter ID
	timeProvider clock.TimeProvider
}

// NewInMemoryRepository creates a new in-memory encounter repository
func NewInMemoryRepository() Repository {
	return NewInMemoryRepositoryWithClock(&clock.RealTimeProvider{})
}

func NewInMemoryRepositoryWithClock(timeProvider clock.TimeProvider) Repository {
	return &inMemoryRepository{
		encounters:   make(map[string]*combat.Encounter),
		byChannel:    make(map[string]string),
		timeProvider: timeProvider,
	}
}

func (r *inMemoryRepository) Create(ctx context.Context, encounter *combat.Encounter) error {
	if encounter == nil {
		return dnderr.InvalidArgument("encounter cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.encounters[encounter.ID]; exists {
		return dnderr.AlreadyExistsf("encounter with ID %s already exists", encounter.ID).WithEncounter(encounter.ID)
	}

	now := r.timeProvider.Now()
	if encounter.CreatedAt.IsZero() {
		encounter.CreatedAt = now
	}
	encounter.UpdatedAt = now

	r.encounters[encounter.ID] = encounter.Clone()
	if encounter.ChannelID != "" {
		r.byChannel[encounter.ChannelID] = encounter.ID
	}

	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, id string) (*combat.Encounter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	encounter, exists := r.encounters[id]
	if !exists {
		return nil, dnderr.NotFoundf("encounter not found: %s", id).WithEncounter(id)
	}

	return encounter.Clone(), nil
}

func (r *inMemoryRepository) Update(ctx context.Context, encounter *combat.Encounter) error {
	if encounter == nil {
		return dnderr.InvalidArgument("encounter cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	old, exists := r.encounters[encounter.ID]
	if !exists {
		return dnderr.NotFoundf("encounter not found: %s", encounter.ID).WithEncounter(encounter.ID)
	}

	if old.ChannelID != encounter.ChannelID {
		if r.byChannel[old.ChannelID] == encounter.ID {
			delete(r.byChannel, old.ChannelID)
		}
		if encounter.ChannelID != "" {
			r.byChannel[encounter.ChannelID] = encounter.ID
		}
	}

	encounter.UpdatedAt = r.timeProvider.Now()
	r.encounters[encounter.ID] = encounter.Clone()
	return nil
}

func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	encounter, exists := r.encounters[id]
	if !exists {
		return dnderr.NotFoundf("encounter not found: %s", id).WithEncounter(id)
	}

	delete(r.encounters, id)
	if r.byChannel[encounter.ChannelID] == id {
		delete(r.byChannel, encounter.ChannelID)
	}

	return nil
}

func (r *inMemoryRepository) GetByChannel(ctx context.Context, channelID string) (*combat.Encounter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byChannel[channelID]
	if !exists {
		return nil, dnderr.NotFoundf("no encounter in channel %s", channelID)
	}
	encounter, exists := r.encounters[id]
	if !exists {
		return nil, dnderr.NotFoundf("no encounter in channel %s", channelID)
	}

	return encounter.Clone(), nil
}

func (r *inMemoryRepository) List(ctx context.Context) ([]*combat.Encounter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*combat.Encounter, 0, len(r.encounters))
	for _, encounter := range r.encounters {
		result = append(result, encounter.Clone())
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}
