package dnd5e

import (
	"net/http"

	dnderr "github.com/KirkDiggler/dnd-combat-tracker/internal/errors"
	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
)

// TODO: add context to functions once the upstream client accepts one
type client struct {
	client dnd5e.Interface
}

type Config struct {
	HttpClient *http.Client
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("cfg is required")
	}

	dndClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, err
	}

	return &client{
		client: dndClient,
	}, nil
}

func (c *client) GetMonster(key string) (*Monster, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("monster key is required")
	}

	response, err := c.client.GetMonster(key)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to fetch monster")
	}
	if response == nil {
		return nil, dnderr.NotFoundf("monster not found: %s", key)
	}

	return apiToMonster(response), nil
}

func apiToMonster(input *apiEntities.Monster) *Monster {
	return &Monster{
		Key:             input.Key,
		Name:            input.Name,
		ArmorClass:      int(input.ArmorClass),
		HitPoints:       int(input.HitPoints),
		ChallengeRating: float64(input.ChallengeRating),
		Actions:         apisToMonsterActions(input.MonsterActions),
	}
}

func apisToMonsterActions(input []*apiEntities.MonsterAction) []*MonsterAction {
	actions := make([]*MonsterAction, 0, len(input))
	for _, ma := range input {
		if ma == nil {
			continue
		}
		action := &MonsterAction{
			Name:        ma.Name,
			Description: ma.Description,
			AttackBonus: int(ma.AttackBonus),
		}
		for _, d := range ma.Damage {
			if d == nil || d.DamageDice == "" {
				continue
			}
			action.DamageDice = append(action.DamageDice, d.DamageDice)
		}
		actions = append(actions, action)
	}
	return actions
}
