package dnd5e_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageRoll(t *testing.T) {
	tests := []struct {
		expr string
		want int
	}{
		{"2d6+3", 10},
		{"1d8", 4},
		{"1d10-1", 4},
		{"2d6 + 3", 10},
		{"d6", 3},
		{"5", 5},
		{"1d4-5", 0},
		{"", 0},
		{"banana", 0},
		{"2d", 0},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.want, dnd5e.AverageRoll(tt.expr))
		})
	}
}

func goblin() *dnd5e.Monster {
	return &dnd5e.Monster{
		Key:        "goblin",
		Name:       "Goblin",
		ArmorClass: 15,
		HitPoints:  7,
		Actions: []*dnd5e.MonsterAction{
			{Name: "Scimitar", AttackBonus: 4, DamageDice: []string{"1d6+2"}},
			{Name: "Nimble Escape", Description: "Disengage or Hide as a bonus action."},
		},
	}
}

func TestMonster_ToParticipant(t *testing.T) {
	p := goblin().ToParticipant(uuid.NewSequenceGenerator("fx"), combat.CharacterTypeNPC, 14)

	assert.Equal(t, "Goblin", p.Name)
	assert.Equal(t, combat.CharacterTypeNPC, p.Type)
	assert.Equal(t, 14, p.Initiative)
	assert.Equal(t, 15, p.AC)
	require.NotNil(t, p.HitPoints())
	assert.Equal(t, 7, p.HitPoints().Current)
	assert.Equal(t, 7, p.HitPoints().Max)

	require.Len(t, p.Attacks, 1)
	scimitar := p.Attacks[0]
	assert.Equal(t, "Scimitar", scimitar.Name)
	require.Len(t, scimitar.Effects, 1)
	assert.Equal(t, combat.EffectDamage, scimitar.Effects[0].Type)
	assert.Equal(t, 5, scimitar.Effects[0].Value)
	assert.Equal(t, "fx-1", scimitar.Effects[0].ID)

	require.Len(t, p.Abilities, 1)
	assert.Equal(t, "Nimble Escape", p.Abilities[0].Name)
	assert.Empty(t, p.Abilities[0].Effects)
}

func TestMonster_ToParticipant_Boss(t *testing.T) {
	p := goblin().ToParticipant(uuid.NewSequenceGenerator("fx"), combat.CharacterTypeBoss, 20)

	assert.True(t, p.IsBoss())
	require.NotNil(t, p.BossDamage())
	assert.Equal(t, 0, p.BossDamage().Taken)
}

func TestMonster_ToParticipant_PlayerBecomesNPC(t *testing.T) {
	p := goblin().ToParticipant(uuid.NewSequenceGenerator("fx"), combat.CharacterTypePlayer, 3)

	assert.Equal(t, combat.CharacterTypeNPC, p.Type)
}
