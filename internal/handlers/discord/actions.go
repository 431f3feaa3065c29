package discord

import (
	"context"
	"strings"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	dnderr "github.com/KirkDiggler/dnd-combat-tracker/internal/errors"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/services/encounter"
	"github.com/bwmarrin/discordgo"
)

func (h *Handler) handleUse(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	return h.run(ctx, req, func(enc *combat.Encounter) (*encounter.CommandResult, error) {
		caster, err := FindParticipant(enc, req.str("caster"))
		if err != nil {
			return nil, err
		}
		action, err := FindAction(caster, req.str("action"))
		if err != nil {
			return nil, err
		}
		targetIDs, err := resolveTargets(enc, action, req.str("targets"))
		if err != nil {
			return nil, err
		}
		customValues, err := customEffectValues(action, req)
		if err != nil {
			return nil, err
		}

		return h.encounters.UseAction(ctx, enc.ID, &encounter.UseActionInput{
			CasterID:     caster.ID,
			ActionID:     action.ID,
			TargetIDs:    targetIDs,
			CustomValues: customValues,
		})
	})
}

// FindAction matches query against the caster's action IDs, then names
// without regard to case
func FindAction(caster *combat.Participant, query string) (*combat.Action, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, dnderr.InvalidArgument("an action is required")
	}
	if action := caster.FindAction(query); action != nil {
		return action, nil
	}

	var matches []*combat.Action
	for _, action := range caster.Actions() {
		if strings.EqualFold(action.Name, query) {
			matches = append(matches, action)
		}
	}

	switch len(matches) {
	case 0:
		return nil, dnderr.NotFoundf("%s has no action named %q", caster.Name, query).
			WithParticipant(caster.ID)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, len(matches))
		for i, a := range matches {
			ids[i] = "`" + a.ID + "`"
		}
		return nil, dnderr.InvalidArgumentf("%s has several actions named %q, use one by id: %s",
			caster.Name, query, strings.Join(ids, ", "))
	}
}

// resolveTargets turns a comma separated list of names or IDs into
// participant IDs, dropping repeats. Single-target actions accept at most
// TargetCount targets.
func resolveTargets(enc *combat.Encounter, action *combat.Action, list string) ([]string, error) {
	var ids []string
	seen := make(map[string]bool)
	for _, query := range strings.Split(list, ",") {
		if strings.TrimSpace(query) == "" {
			continue
		}
		target, err := FindParticipant(enc, query)
		if err != nil {
			return nil, err
		}
		if seen[target.ID] {
			continue
		}
		seen[target.ID] = true
		ids = append(ids, target.ID)
	}

	if len(ids) == 0 {
		return nil, dnderr.InvalidArgument("at least one target is required")
	}
	if !action.IsAreaOfEffect() && action.TargetCount > 0 && len(ids) > action.TargetCount {
		return nil, dnderr.InvalidArgumentf("%s can hit at most %d target(s), got %d",
			action.Name, action.TargetCount, len(ids))
	}
	return ids, nil
}

// customEffectValues applies the amount option to every custom effect
func customEffectValues(action *combat.Action, req *commandRequest) (map[string]int, error) {
	var custom []*combat.Effect
	for _, effect := range action.Effects {
		if effect != nil && effect.Type.IsCustom() {
			custom = append(custom, effect)
		}
	}
	if len(custom) == 0 {
		return nil, nil
	}

	amount, ok := req.lookupInteger("amount")
	if !ok {
		return nil, dnderr.InvalidArgumentf("%s needs an amount for its custom effects", action.Name)
	}
	values := make(map[string]int, len(custom))
	for _, effect := range custom {
		values[effect.ID] = amount
	}
	return values, nil
}
