package combat

// Equipment is an item whose stat bonuses apply while equipped
type Equipment struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slot        string          `json:"slot,omitempty"`
	Description string          `json:"description,omitempty"`
	StatBonuses map[StatKey]int `json:"statBonuses"`
	IsEquipped  bool            `json:"isEquipped"`
}

func (e *Equipment) Clone() *Equipment {
	if e == nil {
		return nil
	}
	c := *e
	c.StatBonuses = make(map[StatKey]int, len(e.StatBonuses))
	for k, v := range e.StatBonuses {
		c.StatBonuses[k] = v
	}
	return &c
}

// Bonus sums the bonus for key across equipped items
func (p *Participant) Bonus(key StatKey) int {
	total := 0
	for _, e := range p.Equipment {
		if e.IsEquipped {
			total += e.StatBonuses[key]
		}
	}
	return total
}

// EffectiveCharacteristics returns the ability scores with equipment applied
func (p *Participant) EffectiveCharacteristics() Characteristics {
	c := p.Characteristics
	c.Strength += p.Bonus(StatStrength)
	c.Dexterity += p.Bonus(StatDexterity)
	c.Constitution += p.Bonus(StatConstitution)
	c.Intelligence += p.Bonus(StatIntelligence)
	c.Wisdom += p.Bonus(StatWisdom)
	c.Charisma += p.Bonus(StatCharisma)
	return c
}

func (p *Participant) EffectiveAC() int {
	return p.AC + p.Bonus(StatArmorClass)
}

// EffectiveHPMax is the HP ceiling shown to players. Equipment HP bonuses are
// display only and do not change the pool the engine clamps against.
func (p *Participant) EffectiveHPMax() int {
	hp := p.HitPoints()
	if hp == nil {
		return 0
	}
	return hp.Max + p.Bonus(StatHitPoints)
}

// ToggleEquipment flips IsEquipped on the item with the given id
func (p *Participant) ToggleEquipment(id string) bool {
	for _, e := range p.Equipment {
		if e.ID == id {
			e.IsEquipped = !e.IsEquipped
			return true
		}
	}
	return false
}
