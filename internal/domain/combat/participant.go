package combat

// Characteristics are the six ability scores
type Characteristics struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

func DefaultCharacteristics() Characteristics {
	return Characteristics{
		Strength:     10,
		Dexterity:    10,
		Constitution: 10,
		Intelligence: 10,
		Wisdom:       10,
		Charisma:     10,
	}
}

const DefaultArmorClass = 10

// Participant is one combatant in the initiative order
type Participant struct {
	ID         string
	Name       string
	Initiative int
	Type       CharacterType
	Vitals     Vitals

	MPMax  int
	MPCurr int
	AC     int

	Characteristics Characteristics
	Skills          []string

	Attacks   []*Action
	Abilities []*Action
	Spells    []*Action

	Statuses  []*Status
	Equipment []*Equipment

	// DeathSaves is non-nil only while the participant is unconscious.
	DeathSaves    *DeathSaves
	IsDead        bool
	IsUnconscious bool
}

// NewParticipant builds a participant with the defaults of its type: full
// HP for players and npcs, a zeroed damage counter for bosses.
func NewParticipant(id, name string, characterType CharacterType, initiative, hpMax int) *Participant {
	p := &Participant{
		ID:              id,
		Name:            name,
		Initiative:      initiative,
		Type:            characterType,
		AC:              DefaultArmorClass,
		Characteristics: DefaultCharacteristics(),
		Skills:          []string{},
		Attacks:         []*Action{},
		Abilities:       []*Action{},
		Spells:          []*Action{},
		Statuses:        []*Status{},
		Equipment:       []*Equipment{},
	}
	if characterType == CharacterTypeBoss {
		p.Vitals = &BossDamage{}
	} else {
		p.Vitals = &HitPoints{Current: hpMax, Max: hpMax}
	}
	return p
}

// Normalize brings the participant back inside its invariants. It is applied
// after loads, imports and manual edits.
func (p *Participant) Normalize() {
	switch {
	case p.Type == CharacterTypeBoss:
		if _, ok := p.Vitals.(*BossDamage); !ok {
			p.Vitals = &BossDamage{}
		}
	default:
		if _, ok := p.Vitals.(*HitPoints); !ok {
			p.Vitals = &HitPoints{}
		}
	}

	switch v := p.Vitals.(type) {
	case *HitPoints:
		v.Max = nonNegative(v.Max)
		v.Current = clamp(v.Current, 0, v.Max)
	case *BossDamage:
		v.Taken = nonNegative(v.Taken)
	}

	p.MPMax = nonNegative(p.MPMax)
	p.MPCurr = clamp(p.MPCurr, 0, p.MPMax)
	p.AC = nonNegative(p.AC)

	for _, action := range p.Actions() {
		action.Cooldown = nonNegative(action.Cooldown)
		action.CurrentCooldown = nonNegative(action.CurrentCooldown)
		if action.Effects == nil {
			action.Effects = []*Effect{}
		}
	}

	switch {
	case p.IsDead:
		p.IsUnconscious = false
		p.DeathSaves = nil
	case p.IsUnconscious:
		if p.DeathSaves == nil {
			p.DeathSaves = &DeathSaves{}
		}
		p.DeathSaves.clamp()
	default:
		p.DeathSaves = nil
	}

	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Attacks == nil {
		p.Attacks = []*Action{}
	}
	if p.Abilities == nil {
		p.Abilities = []*Action{}
	}
	if p.Spells == nil {
		p.Spells = []*Action{}
	}
	if p.Statuses == nil {
		p.Statuses = []*Status{}
	}
	if p.Equipment == nil {
		p.Equipment = []*Equipment{}
	}
}

// Clone returns a deep copy
func (p *Participant) Clone() *Participant {
	if p == nil {
		return nil
	}
	c := *p
	if p.Vitals != nil {
		c.Vitals = p.Vitals.clone()
	}
	c.Skills = append([]string{}, p.Skills...)
	c.Attacks = cloneActions(p.Attacks)
	c.Abilities = cloneActions(p.Abilities)
	c.Spells = cloneActions(p.Spells)
	c.Statuses = make([]*Status, len(p.Statuses))
	for i, s := range p.Statuses {
		sc := *s
		c.Statuses[i] = &sc
	}
	c.Equipment = make([]*Equipment, len(p.Equipment))
	for i, e := range p.Equipment {
		c.Equipment[i] = e.Clone()
	}
	if p.DeathSaves != nil {
		ds := *p.DeathSaves
		c.DeathSaves = &ds
	}
	return &c
}

// DeathSaves counts successes and failures, each within [0,3]
type DeathSaves struct {
	Successes int `json:"successes"`
	Failures  int `json:"failures"`
}

const maxDeathSaves = 3

func (d *DeathSaves) clamp() {
	d.Successes = clamp(d.Successes, 0, maxDeathSaves)
	d.Failures = clamp(d.Failures, 0, maxDeathSaves)
}

type DeathSaveOutcome int

const (
	DeathSaveNone DeathSaveOutcome = iota
	DeathSaveRecorded
	DeathSaveStabilized
	DeathSaveDied
)

// AddDeathSaveSuccess records a success. The third success brings the
// participant back at 1 HP.
func (p *Participant) AddDeathSaveSuccess() DeathSaveOutcome {
	if !p.IsUnconscious || p.IsDead {
		return DeathSaveNone
	}
	if p.DeathSaves == nil {
		p.DeathSaves = &DeathSaves{}
	}
	p.DeathSaves.Successes = min(maxDeathSaves, p.DeathSaves.Successes+1)
	if p.DeathSaves.Successes < maxDeathSaves {
		return DeathSaveRecorded
	}
	if hp := p.HitPoints(); hp != nil {
		hp.Current = min(1, hp.Max)
	}
	p.wakeUp()
	return DeathSaveStabilized
}

// AddDeathSaveFailure records a failure. The third failure kills.
func (p *Participant) AddDeathSaveFailure() DeathSaveOutcome {
	if !p.IsUnconscious || p.IsDead {
		return DeathSaveNone
	}
	if p.DeathSaves == nil {
		p.DeathSaves = &DeathSaves{}
	}
	p.DeathSaves.Failures = min(maxDeathSaves, p.DeathSaves.Failures+1)
	if p.DeathSaves.Failures < maxDeathSaves {
		return DeathSaveRecorded
	}
	p.die()
	return DeathSaveDied
}

// ResetDeathSaves zeroes both counters while unconscious.
func (p *Participant) ResetDeathSaves() bool {
	if !p.IsUnconscious || p.IsDead {
		return false
	}
	p.DeathSaves = &DeathSaves{}
	return true
}

// Kill marks the participant dead regardless of type.
func (p *Participant) Kill() {
	p.die()
}

// Resurrect brings a participant back. Bosses have their damage wiped; others
// come back conscious at 1 HP.
func (p *Participant) Resurrect() {
	p.IsDead = false
	if bd := p.BossDamage(); bd != nil {
		bd.Taken = 0
		return
	}
	p.wakeUp()
	if hp := p.HitPoints(); hp != nil {
		hp.Current = min(1, hp.Max)
	}
}
