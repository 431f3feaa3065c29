package combat

// UnlimitedTargets marks an area action that may hit any number of targets
const UnlimitedTargets = -1

// Action is an attack, ability or spell a participant can use. Cooldowns are
// tracked for display only and never block use.
type Action struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Type            ActionType `json:"type"`
	Cooldown        int        `json:"cooldown"`
	CurrentCooldown int        `json:"currentCooldown"`
	Description     string     `json:"description,omitempty"`
	Effects         []*Effect  `json:"effects"`
	TargetCount     int        `json:"targetCount"`
	// CanRemoveStatus and StatusToRemove are stored for save files only; the
	// resolver removes statuses through removeStatus effects.
	CanRemoveStatus bool   `json:"canRemoveStatus"`
	StatusToRemove  string `json:"statusToRemove,omitempty"`
}

// Effect is one step of an action
type Effect struct {
	ID                 string       `json:"id"`
	Type               EffectType   `json:"type"`
	Value              int          `json:"value,omitempty"`
	StatusName         string       `json:"statusName,omitempty"`
	StatusDuration     int          `json:"statusDuration,omitempty"`
	StatusDurationType DurationType `json:"statusDurationType,omitempty"`
	StatusDescription  string       `json:"statusDescription,omitempty"`
	StatusID           string       `json:"statusId,omitempty"`
}

func (a *Action) Clone() *Action {
	if a == nil {
		return nil
	}
	c := *a
	c.Effects = make([]*Effect, len(a.Effects))
	for i, e := range a.Effects {
		ec := *e
		c.Effects[i] = &ec
	}
	return &c
}

// IsAreaOfEffect reports whether the action hits an unlimited number of targets
func (a *Action) IsAreaOfEffect() bool {
	return a.TargetCount == UnlimitedTargets
}

// OnCooldown is advisory only
func (a *Action) OnCooldown() bool {
	return a.CurrentCooldown > 0
}

func cloneActions(actions []*Action) []*Action {
	out := make([]*Action, len(actions))
	for i, a := range actions {
		out[i] = a.Clone()
	}
	return out
}

// Actions returns attacks, abilities and spells in that order
func (p *Participant) Actions() []*Action {
	all := make([]*Action, 0, len(p.Attacks)+len(p.Abilities)+len(p.Spells))
	all = append(all, p.Attacks...)
	all = append(all, p.Abilities...)
	all = append(all, p.Spells...)
	return all
}

// FindAction looks up one of the participant's own actions by id
func (p *Participant) FindAction(id string) *Action {
	if id == "" {
		return nil
	}
	for _, a := range p.Actions() {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// AddAction files the action under the list matching its type
func (p *Participant) AddAction(action *Action) {
	switch action.Type {
	case ActionTypeSpell:
		p.Spells = append(p.Spells, action)
	case ActionTypeAbility:
		p.Abilities = append(p.Abilities, action)
	default:
		p.Attacks = append(p.Attacks, action)
	}
}

// DecrementCooldowns ticks every cooldown down by one, floored at zero
func (p *Participant) DecrementCooldowns() {
	for _, a := range p.Actions() {
		if a.CurrentCooldown > 0 {
			a.CurrentCooldown--
		}
	}
}

func (p *Participant) ResetCooldowns() {
	for _, a := range p.Actions() {
		a.CurrentCooldown = 0
	}
}
