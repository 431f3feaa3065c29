package combat_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_AddParticipant(t *testing.T) {
	session := newSession()
	p := &combat.Participant{
		Name:    "Newcomer",
		Type:    combat.CharacterTypeNPC,
		Vitals:  &combat.HitPoints{Current: 50, Max: 20},
		Attacks: []*combat.Action{{Name: "Claw", Type: combat.ActionTypeAttack}},
	}

	entries := session.AddParticipant(p)

	require.Len(t, session.State().Participants, 1)
	assert.NotEmpty(t, p.ID)
	assert.NotEmpty(t, p.Attacks[0].ID)
	assert.Equal(t, 20, p.HitPoints().Current)
	assert.NotNil(t, p.Statuses)
	assert.Equal(t, []string{"Newcomer joins the combat"}, messages(entries))
}

func TestSession_RemoveParticipant(t *testing.T) {
	session := newSession(
		player("p1", "Aria", 18, 20),
		npc("n1", "Orc", 12, 15),
	)
	session.NextTurn()
	require.Equal(t, 1, session.State().CurrentTurnIndex)

	entries := session.RemoveParticipant("n1")

	assert.Len(t, session.State().Participants, 1)
	assert.Equal(t, 0, session.State().CurrentTurnIndex)
	assert.Equal(t, []string{"Orc leaves the combat"}, messages(entries))
	assert.Nil(t, session.RemoveParticipant("n1"))
}

func TestSession_UpdateParticipant(t *testing.T) {
	orc := npc("n1", "Orc", 12, 15)
	session := newSession(orc)

	replacement := orc.Clone()
	replacement.Name = "Orc Chieftain"
	replacement.Initiative = 20
	require.True(t, session.UpdateParticipant(replacement))

	replacement.Name = "changed after update"
	stored := session.State().Participant("n1")
	assert.Equal(t, "Orc Chieftain", stored.Name)
	assert.Equal(t, 20, stored.Initiative)
	assert.False(t, session.UpdateParticipant(npc("ghost", "Ghost", 1, 1)))
}

func TestSession_ManualEdit(t *testing.T) {
	aria := player("p1", "Aria", 18, 20)
	balrog := boss("b1", "Balrog", 10, 5)
	session := newSession(aria, balrog)

	hpMax, hpCur, mp, ac := 25, 40, -3, 17
	require.True(t, session.ManualEdit("p1", combat.ManualEdit{HPMax: &hpMax, HPCurrent: &hpCur, MPCurrent: &mp, AC: &ac}))

	assert.Equal(t, 25, aria.HitPoints().Max)
	assert.Equal(t, 25, aria.HitPoints().Current)
	assert.Equal(t, 0, aria.MPCurr)
	assert.Equal(t, 17, aria.AC)

	taken := 120
	session.ManualEdit("b1", combat.ManualEdit{DamageTaken: &taken, HPMax: &hpMax})
	assert.Equal(t, 120, balrog.BossDamage().Taken)
	assert.Nil(t, balrog.HitPoints())

	assert.False(t, session.ManualEdit("ghost", combat.ManualEdit{}))
	assert.Empty(t, session.State().EventLog)
}

func TestSession_Statuses(t *testing.T) {
	aria := player("p1", "Aria", 18, 20)
	session := newSession(aria)

	entries := session.AddStatus("p1", "Prone", 0, "", "")
	require.Len(t, aria.Statuses, 1)
	assert.Equal(t, 1, aria.Statuses[0].Duration)
	assert.Equal(t, combat.DurationRounds, aria.Statuses[0].DurationType)
	assert.Equal(t, combat.StatusSourceManual, aria.Statuses[0].Source)
	assert.Equal(t, []string{`Aria gains status "Prone"`}, messages(entries))

	assert.Len(t, session.RemoveStatus("p1", "prone"), 1)
	assert.Nil(t, session.RemoveStatus("p1", "prone"))
	assert.Nil(t, session.AddStatus("ghost", "Prone", 1, combat.DurationRounds, ""))
}

func TestSession_ToggleEquipment(t *testing.T) {
	aria := player("p1", "Aria", 18, 20)
	aria.AC = 14
	aria.Characteristics.Strength = 12
	aria.Equipment = []*combat.Equipment{
		{ID: "e1", Name: "Shield", StatBonuses: map[combat.StatKey]int{combat.StatArmorClass: 2}, IsEquipped: true},
		{ID: "e2", Name: "Belt of Giant Strength", StatBonuses: map[combat.StatKey]int{combat.StatStrength: 4, combat.StatHitPoints: 5}, IsEquipped: false},
	}
	session := newSession(aria)

	assert.Equal(t, 16, aria.EffectiveAC())
	assert.Equal(t, 12, aria.EffectiveCharacteristics().Strength)

	require.True(t, session.ToggleEquipment("p1", "e2"))
	assert.Equal(t, 16, aria.EffectiveCharacteristics().Strength)
	assert.Equal(t, 25, aria.EffectiveHPMax())

	require.True(t, session.ToggleEquipment("p1", "e1"))
	assert.Equal(t, 14, aria.EffectiveAC())
	assert.False(t, session.ToggleEquipment("p1", "missing"))
}

func TestSession_ClearLog(t *testing.T) {
	session := newSession(player("p1", "Aria", 18, 20))
	session.NextTurn()
	require.NotEmpty(t, session.State().EventLog)

	session.ClearLog()
	assert.Empty(t, session.State().EventLog)
	assert.NotNil(t, session.State().EventLog)
}

func TestParticipant_Normalize(t *testing.T) {
	p := &combat.Participant{
		ID:            "p1",
		Type:          combat.CharacterTypeBoss,
		Vitals:        &combat.HitPoints{Current: 5, Max: 10},
		MPMax:         -4,
		MPCurr:        9,
		IsDead:        true,
		IsUnconscious: true,
		DeathSaves:    &combat.DeathSaves{Successes: 9},
	}
	p.Normalize()

	assert.NotNil(t, p.BossDamage())
	assert.Equal(t, 0, p.MPMax)
	assert.Equal(t, 0, p.MPCurr)
	assert.False(t, p.IsUnconscious)
	assert.Nil(t, p.DeathSaves)

	q := &combat.Participant{ID: "q", Type: combat.CharacterTypePlayer, IsUnconscious: true}
	q.Normalize()
	assert.NotNil(t, q.HitPoints())
	assert.Equal(t, &combat.DeathSaves{}, q.DeathSaves)
}
