package saves

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	dnderr "github.com/KirkDiggler/dnd-combat-tracker/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func saveKey(id string) string {
	return fmt.Sprintf("save:%s", id)
}

func encounterSavesKey(encounterID string) string {
	return fmt.Sprintf("encounter:%s:saves", encounterID)
}

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a new Redis-backed save repository
func NewRedis(client redis.UniversalClient) Repository {
	return &redisRepo{client: client}
}

func (r *redisRepo) Create(ctx context.Context, save *combat.SaveData) error {
	if save == nil {
		return dnderr.InvalidArgument("save cannot be nil")
	}

	data, err := json.Marshal(save)
	if err != nil {
		return dnderr.Wrap(err, "failed to marshal save")
	}

	created, err := r.client.SetNX(ctx, saveKey(save.ID), string(data), 0).Result()
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to store save in Redis").WithMeta(dnderr.MetaSaveID, save.ID)
	}
	if !created {
		return dnderr.AlreadyExistsf("save with ID %s already exists", save.ID).WithMeta(dnderr.MetaSaveID, save.ID)
	}

	if save.EncounterID != "" {
		if err := r.client.SAdd(ctx, encounterSavesKey(save.EncounterID), save.ID).Err(); err != nil {
			return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to index save in Redis").WithMeta(dnderr.MetaSaveID, save.ID)
		}
	}
	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*combat.SaveData, error) {
	data, err := r.client.Get(ctx, saveKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("save not found: %s", id).WithMeta(dnderr.MetaSaveID, id)
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to get save from Redis").WithMeta(dnderr.MetaSaveID, id)
	}

	save, err := combat.UnmarshalSave(data)
	if err != nil {
		return nil, dnderr.Wrapf(err, "stored save %s is corrupt", id)
	}
	return save, nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	save, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, saveKey(id))
	if save.EncounterID != "" {
		pipe.SRem(ctx, encounterSavesKey(save.EncounterID), id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to delete save from Redis").WithMeta(dnderr.MetaSaveID, id)
	}
	return nil
}

func (r *redisRepo) ListByEncounter(ctx context.Context, encounterID string) ([]*combat.SaveData, error) {
	ids, err := r.client.SMembers(ctx, encounterSavesKey(encounterID)).Result()
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to list saves from Redis").WithEncounter(encounterID)
	}

	saves := make([]*combat.SaveData, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			save, err := r.Get(gctx, id)
			if err != nil {
				if dnderr.IsNotFound(err) {
					log.Printf("[REDIS] Skipping stale save index entry %s for encounter %s", id, encounterID)
					return nil
				}
				return fmt.Errorf("failed to get save %s: %w", id, err)
			}
			saves[i] = save
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]*combat.SaveData, 0, len(saves))
	for _, save := range saves {
		if save != nil {
			result = append(result, save)
		}
	}
	sortNewestFirst(result)
	return result, nil
}
