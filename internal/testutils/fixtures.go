package testutils

import (
	"time"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
)

// FixedTime is the clock used across fixtures
var FixedTime = time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)

// CreateTestPlayer creates a player with the given HP pool
func CreateTestPlayer(id, name string, initiative, hp int) *combat.Participant {
	p := combat.NewParticipant(id, name, combat.CharacterTypePlayer, initiative, hp)
	p.MPMax = 10
	p.MPCurr = 10
	return p
}

// CreateTestNPC creates an npc with a single melee attack
func CreateTestNPC(id, name string, initiative, hp, damage int) *combat.Participant {
	p := combat.NewParticipant(id, name, combat.CharacterTypeNPC, initiative, hp)
	p.AddAction(CreateTestAttack(id+"-attack", "Claw", damage))
	return p
}

// CreateTestBoss creates a boss with an area attack
func CreateTestBoss(id, name string, initiative int) *combat.Participant {
	p := combat.NewParticipant(id, name, combat.CharacterTypeBoss, initiative, 0)
	attack := CreateTestAttack(id+"-breath", "Fire Breath", 12)
	attack.TargetCount = combat.UnlimitedTargets
	attack.Cooldown = 3
	p.AddAction(attack)
	return p
}

// CreateTestAttack creates a single-target damage attack
func CreateTestAttack(id, name string, damage int) *combat.Action {
	return &combat.Action{
		ID:          id,
		Name:        name,
		Type:        combat.ActionTypeAttack,
		TargetCount: 1,
		Effects: []*combat.Effect{
			{ID: id + "-dmg", Type: combat.EffectDamage, Value: damage},
		},
	}
}

// CreateTestEncounter creates an encounter with a player, an npc and a boss
func CreateTestEncounter(id, channelID, createdBy string) *combat.Encounter {
	enc := combat.NewEncounter(id, "Test Encounter", channelID, createdBy, FixedTime)
	enc.State.Participants = []*combat.Participant{
		CreateTestPlayer("p1", "Aria", 18, 20),
		CreateTestNPC("n1", "Goblin", 12, 7, 5),
		CreateTestBoss("b1", "Balrog", 15),
	}
	return enc
}
