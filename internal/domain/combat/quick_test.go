package combat_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_QuickDamage(t *testing.T) {
	t.Run("hp never drops below zero", func(t *testing.T) {
		for _, tc := range []struct {
			current, amount, want int
		}{
			{10, 3, 7},
			{10, 10, 0},
			{10, 25, 0},
			{10, 0, 10},
			{10, -5, 10},
		} {
			orc := npc("n1", "Orc", 10, 10)
			orc.HitPoints().Current = tc.current
			session := newSession(orc)
			session.QuickDamage("n1", tc.amount)
			assert.Equal(t, tc.want, orc.HitPoints().Current, "current=%d amount=%d", tc.current, tc.amount)
		}
	})

	t.Run("player at zero goes unconscious", func(t *testing.T) {
		aria := player("p1", "Aria", 10, 10)
		session := newSession(aria)

		entries := session.QuickDamage("p1", 10)

		assert.Equal(t, 0, aria.HitPoints().Current)
		assert.True(t, aria.IsUnconscious)
		assert.False(t, aria.IsDead)
		assert.Equal(t, &combat.DeathSaves{Successes: 0, Failures: 0}, aria.DeathSaves)
		assert.Equal(t, []string{"Aria takes 10 damage", "Aria loses consciousness!"}, messages(entries))
	})

	t.Run("npc at zero dies outright", func(t *testing.T) {
		orc := npc("n1", "Orc", 10, 8)
		session := newSession(orc)

		entries := session.QuickDamage("n1", 8)

		assert.True(t, orc.IsDead)
		assert.False(t, orc.IsUnconscious)
		assert.Nil(t, orc.DeathSaves)
		assert.Equal(t, []string{"Orc takes 8 damage", "Orc dies!"}, messages(entries))
		assert.Equal(t, combat.LogDamage, entries[1].Type)

		entries = session.QuickDamage("n1", 3)
		assert.Equal(t, []string{"Orc takes 3 damage"}, messages(entries), "a dead npc dies only once")
	})

	t.Run("boss accumulates without bound", func(t *testing.T) {
		balrog := boss("b1", "Balrog", 10, 0)
		session := newSession(balrog)

		session.QuickDamage("b1", 300)
		entries := session.QuickDamage("b1", 200)

		assert.Equal(t, 500, balrog.BossDamage().Taken)
		assert.False(t, balrog.IsDead)
		assert.Equal(t, "Balrog takes 200 damage (total: 500)", entries[0].Message)
	})

	t.Run("unknown id is a quiet no-op", func(t *testing.T) {
		session := newSession(npc("n1", "Orc", 10, 8))
		assert.Nil(t, session.QuickDamage("ghost", 5))
		assert.Empty(t, session.State().EventLog)
	})
}

func TestSession_QuickHeal(t *testing.T) {
	aria := player("p1", "Aria", 10, 10)
	aria.HitPoints().Current = 0
	aria.IsUnconscious = true
	balrog := boss("b1", "Balrog", 5, 30)
	wisp := npc("n1", "Wisp", 3, 0)
	session := newSession(aria, balrog, wisp)

	entries := session.QuickHeal("p1", 15)

	assert.Equal(t, 10, aria.HitPoints().Current)
	assert.False(t, aria.IsUnconscious)
	assert.Nil(t, aria.DeathSaves)
	assert.Equal(t, []string{"Aria heals 15 HP", "Aria regains consciousness!"}, messages(entries))

	assert.Nil(t, session.QuickHeal("b1", 10))
	assert.Equal(t, 30, balrog.BossDamage().Taken)
	assert.Nil(t, session.QuickHeal("n1", 10))
}

func TestSession_DeathSaves(t *testing.T) {
	downed := func() *combat.Participant {
		p := player("p1", "Aria", 10, 10)
		p.HitPoints().Current = 0
		p.IsUnconscious = true
		return p
	}

	t.Run("third success revives at one hp", func(t *testing.T) {
		aria := downed()
		aria.DeathSaves = &combat.DeathSaves{Successes: 2}
		session := newSession(aria)

		entries := session.AddDeathSaveSuccess("p1")

		assert.False(t, aria.IsUnconscious)
		assert.Equal(t, 1, aria.HitPoints().Current)
		assert.Nil(t, aria.DeathSaves)
		assert.Equal(t, []string{"Aria stabilizes and regains consciousness!"}, messages(entries))
	})

	t.Run("third failure kills", func(t *testing.T) {
		aria := downed()
		session := newSession(aria)

		session.AddDeathSaveFailure("p1")
		entries := session.AddDeathSaveFailure("p1")
		assert.Equal(t, []string{"Aria fails a death save (2/3)"}, messages(entries))
		session.AddDeathSaveFailure("p1")

		assert.True(t, aria.IsDead)
		assert.False(t, aria.IsUnconscious)
		assert.Nil(t, aria.DeathSaves)
	})

	t.Run("ignored while conscious", func(t *testing.T) {
		aria := player("p1", "Aria", 10, 10)
		session := newSession(aria)
		assert.Nil(t, session.AddDeathSaveSuccess("p1"))
		assert.Nil(t, aria.DeathSaves)
	})

	t.Run("reset", func(t *testing.T) {
		aria := downed()
		aria.DeathSaves = &combat.DeathSaves{Successes: 1, Failures: 2}
		session := newSession(aria)
		require.True(t, session.ResetDeathSaves("p1"))
		assert.Equal(t, &combat.DeathSaves{}, aria.DeathSaves)
	})
}

func TestSession_KillAndResurrect(t *testing.T) {
	aria := player("p1", "Aria", 10, 10)
	aria.HitPoints().Current = 0
	aria.IsUnconscious = true
	aria.DeathSaves = &combat.DeathSaves{Failures: 1}
	balrog := boss("b1", "Balrog", 5, 90)
	session := newSession(aria, balrog)

	session.Kill("p1")
	assert.True(t, aria.IsDead)
	assert.False(t, aria.IsUnconscious)
	assert.Nil(t, aria.DeathSaves)
	assert.Nil(t, session.Kill("p1"), "already dead")

	session.Resurrect("p1")
	assert.False(t, aria.IsDead)
	assert.Equal(t, 1, aria.HitPoints().Current)

	session.Kill("b1")
	session.Resurrect("b1")
	assert.False(t, balrog.IsDead)
	assert.Equal(t, 0, balrog.BossDamage().Taken)
}
