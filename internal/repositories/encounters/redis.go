package encounters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/clock"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	dnderr "github.com/KirkDiggler/dnd-combat-tracker/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const allEncountersKey = "encounters"

func encounterKey(id string) string {
	return fmt.Sprintf("encounter:%s", id)
}

func channelKey(channelID string) string {
	return fmt.Sprintf("channel:%s:encounter", channelID)
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider clock.TimeProvider
	ttl          time.Duration
}

// RedisConfig configures the Redis-backed encounter repository
type RedisConfig struct {
	Client       redis.UniversalClient
	TimeProvider clock.TimeProvider
	// TTL expires idle encounters. Zero keeps them forever.
	TTL time.Duration
}

func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, dnderr.InvalidArgument("redis client is required")
	}
	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = &clock.RealTimeProvider{}
	}
	return &redisRepo{
		client:       cfg.Client,
		timeProvider: timeProvider,
		ttl:          cfg.TTL,
	}, nil
}

// NewRedis creates a new Redis-backed encounter repository
func NewRedis(client redis.UniversalClient) Repository {
	repo, err := NewRedisRepository(&RedisConfig{
		Client:       client,
		TimeProvider: &clock.RealTimeProvider{},
	})
	if err != nil {
		// This should never happen with valid configuration
		panic(err)
	}
	return repo
}

func (r *redisRepo) set(ctx context.Context, encounter *combat.Encounter) error {
	data, err := json.Marshal(encounter)
	if err != nil {
		return dnderr.Wrap(err, "failed to marshal encounter")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, encounterKey(encounter.ID), string(data), r.ttl)
	if encounter.ChannelID != "" {
		pipe.Set(ctx, channelKey(encounter.ChannelID), encounter.ID, r.ttl)
	}
	pipe.SAdd(ctx, allEncountersKey, encounter.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to store encounter in Redis").WithEncounter(encounter.ID)
	}
	return nil
}

func (r *redisRepo) exists(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Exists(ctx, encounterKey(id)).Result()
	if err != nil {
		return false, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to check encounter in Redis").WithEncounter(id)
	}
	return n > 0, nil
}

func (r *redisRepo) Create(ctx context.Context, encounter *combat.Encounter) error {
	if encounter == nil {
		return dnderr.InvalidArgument("encounter cannot be nil")
	}

	found, err := r.exists(ctx, encounter.ID)
	if err != nil {
		return err
	}
	if found {
		return dnderr.AlreadyExistsf("encounter with ID %s already exists", encounter.ID).WithEncounter(encounter.ID)
	}

	now := r.timeProvider.Now()
	if encounter.CreatedAt.IsZero() {
		encounter.CreatedAt = now
	}
	encounter.UpdatedAt = now

	return r.set(ctx, encounter)
}

func (r *redisRepo) Get(ctx context.Context, id string) (*combat.Encounter, error) {
	data, err := r.client.Get(ctx, encounterKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("encounter not found: %s", id).WithEncounter(id)
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to get encounter from Redis").WithEncounter(id)
	}

	var encounter combat.Encounter
	if err := json.Unmarshal(data, &encounter); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to unmarshal encounter").WithEncounter(id)
	}
	return &encounter, nil
}

func (r *redisRepo) Update(ctx context.Context, encounter *combat.Encounter) error {
	if encounter == nil {
		return dnderr.InvalidArgument("encounter cannot be nil")
	}

	found, err := r.exists(ctx, encounter.ID)
	if err != nil {
		return err
	}
	if !found {
		return dnderr.NotFoundf("encounter not found: %s", encounter.ID).WithEncounter(encounter.ID)
	}

	encounter.UpdatedAt = r.timeProvider.Now()
	return r.set(ctx, encounter)
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	encounter, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, encounterKey(id))
	if encounter.ChannelID != "" {
		pipe.Del(ctx, channelKey(encounter.ChannelID))
	}
	pipe.SRem(ctx, allEncountersKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to delete encounter from Redis").WithEncounter(id)
	}

	return nil
}

func (r *redisRepo) GetByChannel(ctx context.Context, channelID string) (*combat.Encounter, error) {
	id, err := r.client.Get(ctx, channelKey(channelID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("no encounter in channel %s", channelID)
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to look up channel encounter in Redis")
	}
	return r.Get(ctx, id)
}

func (r *redisRepo) List(ctx context.Context) ([]*combat.Encounter, error) {
	ids, err := r.client.SMembers(ctx, allEncountersKey).Result()
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to list encounters from Redis")
	}

	encounters := make([]*combat.Encounter, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			encounter, err := r.Get(gctx, id)
			if err != nil {
				if dnderr.IsNotFound(err) {
					// Index entry outlived its record (TTL expiry).
					log.Printf("[REDIS] Skipping stale encounter index entry %s", id)
					return nil
				}
				return err
			}
			encounters[i] = encounter
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]*combat.Encounter, 0, len(encounters))
	for _, encounter := range encounters {
		if encounter != nil {
			result = append(result, encounter)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}
