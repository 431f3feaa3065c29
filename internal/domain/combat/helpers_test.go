package combat_test

import (
	"time"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/clock"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/uuid"
)

var testNow = time.Date(2024, 5, 4, 18, 30, 0, 0, time.UTC)

func newSession(participants ...*combat.Participant) *combat.Session {
	state := combat.NewState()
	state.Participants = participants
	return combat.NewSession(&combat.SessionConfig{
		State:         state,
		UUIDGenerator: uuid.NewSequenceGenerator("id"),
		TimeProvider:  clock.Fixed{At: testNow},
	})
}

func player(id, name string, initiative, hp int) *combat.Participant {
	return combat.NewParticipant(id, name, combat.CharacterTypePlayer, initiative, hp)
}

func npc(id, name string, initiative, hp int) *combat.Participant {
	return combat.NewParticipant(id, name, combat.CharacterTypeNPC, initiative, hp)
}

func boss(id, name string, initiative, taken int) *combat.Participant {
	p := combat.NewParticipant(id, name, combat.CharacterTypeBoss, initiative, 0)
	p.BossDamage().Taken = taken
	return p
}

func damageAction(id, name string, value int) *combat.Action {
	return &combat.Action{
		ID:          id,
		Name:        name,
		Type:        combat.ActionTypeAttack,
		TargetCount: 1,
		Effects: []*combat.Effect{
			{ID: id + "-dmg", Type: combat.EffectDamage, Value: value},
		},
	}
}

func messages(entries []*combat.LogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

func statusNames(p *combat.Participant) []string {
	out := []string{}
	for _, s := range p.Statuses {
		out = append(out, s.Name)
	}
	return out
}
