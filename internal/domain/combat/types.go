package combat

// CharacterType selects the health model and death rules of a participant
type CharacterType string

const (
	CharacterTypePlayer CharacterType = "player"
	CharacterTypeNPC    CharacterType = "npc"
	CharacterTypeBoss   CharacterType = "boss"
)

func (t CharacterType) Valid() bool {
	switch t {
	case CharacterTypePlayer, CharacterTypeNPC, CharacterTypeBoss:
		return true
	}
	return false
}

// DurationType is the clock a status counts down on
type DurationType string

const (
	DurationRounds       DurationType = "rounds"
	DurationTurns        DurationType = "turns"
	DurationUntilRemoved DurationType = "until_removed"
)

func (d DurationType) Valid() bool {
	switch d {
	case DurationRounds, DurationTurns, DurationUntilRemoved:
		return true
	}
	return false
}

type ActionType string

const (
	ActionTypeAttack  ActionType = "attack"
	ActionTypeAbility ActionType = "ability"
	ActionTypeSpell   ActionType = "spell"
)

func (a ActionType) Valid() bool {
	switch a {
	case ActionTypeAttack, ActionTypeAbility, ActionTypeSpell:
		return true
	}
	return false
}

type EffectType string

const (
	EffectDamage       EffectType = "damage"
	EffectHeal         EffectType = "heal"
	EffectRestoreMP    EffectType = "restoreMP"
	EffectAddStatus    EffectType = "addStatus"
	EffectRemoveStatus EffectType = "removeStatus"
	// Custom effects take their magnitude from the caller at resolution time.
	EffectCustomDamage EffectType = "customDamage"
	EffectCustomHeal   EffectType = "customHeal"
)

func (e EffectType) Valid() bool {
	switch e {
	case EffectDamage, EffectHeal, EffectRestoreMP, EffectAddStatus,
		EffectRemoveStatus, EffectCustomDamage, EffectCustomHeal:
		return true
	}
	return false
}

// IsCustom reports whether the effect magnitude is supplied per use
func (e EffectType) IsCustom() bool {
	return e == EffectCustomDamage || e == EffectCustomHeal
}

type LogType string

const (
	LogDamage LogType = "damage"
	LogHeal   LogType = "heal"
	LogStatus LogType = "status"
	LogTurn   LogType = "turn"
	LogRound  LogType = "round"
	LogAction LogType = "action"
	LogRest   LogType = "rest"
)

func (l LogType) Valid() bool {
	switch l {
	case LogDamage, LogHeal, LogStatus, LogTurn, LogRound, LogAction, LogRest:
		return true
	}
	return false
}

// StatKey names a stat an equipment item can modify
type StatKey string

const (
	StatStrength     StatKey = "STR"
	StatDexterity    StatKey = "DEX"
	StatConstitution StatKey = "CON"
	StatIntelligence StatKey = "INT"
	StatWisdom       StatKey = "WIS"
	StatCharisma     StatKey = "CHA"
	StatArmorClass   StatKey = "AC"
	StatHitPoints    StatKey = "HP"
)

// StatKeys lists every stat key in display order
var StatKeys = []StatKey{
	StatStrength, StatDexterity, StatConstitution, StatIntelligence,
	StatWisdom, StatCharisma, StatArmorClass, StatHitPoints,
}

func (k StatKey) Valid() bool {
	for _, key := range StatKeys {
		if key == k {
			return true
		}
	}
	return false
}

// TemplateType classifies a reusable template stored with a save
type TemplateType string

const (
	TemplateCharacter TemplateType = "character"
	TemplateEnemy     TemplateType = "enemy"
	TemplateBoss      TemplateType = "boss"
	TemplateSpell     TemplateType = "spell"
	TemplateAbility   TemplateType = "ability"
	TemplateAttack    TemplateType = "attack"
	TemplateEffect    TemplateType = "effect"
)

func (t TemplateType) Valid() bool {
	switch t {
	case TemplateCharacter, TemplateEnemy, TemplateBoss, TemplateSpell,
		TemplateAbility, TemplateAttack, TemplateEffect:
		return true
	}
	return false
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
