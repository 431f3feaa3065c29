package dnd5e

import (
	"log"
	"strings"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/dice"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/uuid"
)

// Monster is the part of an API monster the tracker uses
type Monster struct {
	Key             string
	Name            string
	ArmorClass      int
	HitPoints       int
	ChallengeRating float64
	Actions         []*MonsterAction
}

type MonsterAction struct {
	Name        string
	Description string
	AttackBonus int
	// DamageDice holds expressions like "2d6+3"
	DamageDice []string
}

// AverageDamage is the sum of the average roll of every damage expression
func (a *MonsterAction) AverageDamage() int {
	total := 0
	for _, dice := range a.DamageDice {
		total += AverageRoll(dice)
	}
	return total
}

// AverageRoll returns the floored average of a dice expression such as
// "2d6+3", "1d10-1" or a flat "5". Unparseable input averages to 0.
func AverageRoll(expr string) int {
	if strings.TrimSpace(expr) == "" {
		return 0
	}
	e, err := dice.Parse(expr)
	if err != nil {
		log.Printf("Unknown dice format %s", expr)
		return 0
	}
	return e.Average()
}

// ToParticipant builds a participant from the monster. Actions that deal
// damage become attacks with a damage effect at the average roll; the rest
// become abilities carrying only their description. Participant and action
// ids are left empty for the session to assign.
func (m *Monster) ToParticipant(ids uuid.Generator, characterType combat.CharacterType, initiative int) *combat.Participant {
	if characterType != combat.CharacterTypeBoss {
		characterType = combat.CharacterTypeNPC
	}

	p := combat.NewParticipant("", m.Name, characterType, initiative, m.HitPoints)
	if m.ArmorClass > 0 {
		p.AC = m.ArmorClass
	}

	for _, ma := range m.Actions {
		action := &combat.Action{
			Name:        ma.Name,
			Type:        combat.ActionTypeAbility,
			Description: ma.Description,
			Effects:     []*combat.Effect{},
			TargetCount: 1,
		}
		if dmg := ma.AverageDamage(); dmg > 0 {
			action.Type = combat.ActionTypeAttack
			action.Effects = append(action.Effects, &combat.Effect{
				ID:    ids.New(),
				Type:  combat.EffectDamage,
				Value: dmg,
			})
		}
		p.AddAction(action)
	}

	return p
}
