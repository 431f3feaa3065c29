package combat

// Vitals is the health model of a participant. Only *HitPoints and
// *BossDamage implement it; a boss always carries *BossDamage and every
// other type carries *HitPoints.
type Vitals interface {
	isVitals()
	clone() Vitals
}

// HitPoints is a bounded pool. A Max of 0 means the participant has no HP pool.
type HitPoints struct {
	Current int
	Max     int
}

func (*HitPoints) isVitals() {}

func (h *HitPoints) clone() Vitals {
	c := *h
	return &c
}

// BossDamage accumulates damage without bound. Bosses never go unconscious
// or die from damage.
type BossDamage struct {
	Taken int
}

func (*BossDamage) isVitals() {}

func (b *BossDamage) clone() Vitals {
	c := *b
	return &c
}

// HitPoints returns the HP pool, or nil for a boss.
func (p *Participant) HitPoints() *HitPoints {
	hp, _ := p.Vitals.(*HitPoints)
	return hp
}

// BossDamage returns the damage counter, or nil for non-boss participants.
func (p *Participant) BossDamage() *BossDamage {
	bd, _ := p.Vitals.(*BossDamage)
	return bd
}

func (p *Participant) IsBoss() bool {
	return p.Type == CharacterTypeBoss
}

// HasHPPool reports whether the participant tracks bounded hit points.
func (p *Participant) HasHPPool() bool {
	hp := p.HitPoints()
	return hp != nil && hp.Max > 0
}

// DamageOutcome reports the death-state transition a damage application caused
type DamageOutcome int

const (
	DamageNone DamageOutcome = iota
	DamageKnockedOut
	DamageKilled
)

// TakeDamage applies damage through the action path. A player that drops to
// 0 is knocked out; other types stay as they are at 0.
func (p *Participant) TakeDamage(amount int) DamageOutcome {
	amount = nonNegative(amount)
	if bd := p.BossDamage(); bd != nil {
		bd.Taken += amount
		return DamageNone
	}
	hp := p.HitPoints()
	if hp == nil {
		return DamageNone
	}
	hp.Current = nonNegative(hp.Current - amount)
	if hp.Current == 0 && p.Type == CharacterTypePlayer && !p.IsDead && !p.IsUnconscious {
		p.knockOut()
		return DamageKnockedOut
	}
	return DamageNone
}

// TakeQuickDamage applies damage through the quick path, which kills an npc
// at 0 outright.
func (p *Participant) TakeQuickDamage(amount int) DamageOutcome {
	amount = nonNegative(amount)
	if bd := p.BossDamage(); bd != nil {
		bd.Taken += amount
		return DamageNone
	}
	hp := p.HitPoints()
	if hp == nil {
		return DamageNone
	}
	hp.Current = nonNegative(hp.Current - amount)
	if hp.Current > 0 {
		return DamageNone
	}
	switch p.Type {
	case CharacterTypePlayer:
		if !p.IsDead && !p.IsUnconscious {
			p.knockOut()
			return DamageKnockedOut
		}
	case CharacterTypeNPC:
		if !p.IsDead {
			p.die()
			return DamageKilled
		}
	}
	return DamageNone
}

// Heal restores hit points up to Max and returns how many were restored and
// whether the heal brought the participant back to consciousness. Bosses are
// unaffected.
func (p *Participant) Heal(amount int) (restored int, revived bool) {
	hp := p.HitPoints()
	if hp == nil {
		return 0, false
	}
	before := hp.Current
	hp.Current = min(hp.Max, hp.Current+nonNegative(amount))
	if hp.Current < before {
		// Current was above Max before the heal; never reduce on heal.
		hp.Current = before
	}
	if p.IsUnconscious && hp.Current > 0 {
		p.wakeUp()
		revived = true
	}
	return hp.Current - before, revived
}

// RestoreMP raises MPCurr up to MPMax and returns the amount restored.
func (p *Participant) RestoreMP(amount int) int {
	before := p.MPCurr
	p.MPCurr = min(p.MPMax, p.MPCurr+nonNegative(amount))
	if p.MPCurr < before {
		p.MPCurr = before
	}
	return p.MPCurr - before
}

func (p *Participant) knockOut() {
	p.IsUnconscious = true
	p.DeathSaves = &DeathSaves{}
}

func (p *Participant) wakeUp() {
	p.IsUnconscious = false
	p.DeathSaves = nil
}

func (p *Participant) die() {
	p.IsDead = true
	p.IsUnconscious = false
	p.DeathSaves = nil
}
