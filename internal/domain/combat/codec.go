package combat

import (
	"encoding/json"
	"strings"

	dnderr "github.com/KirkDiggler/dnd-combat-tracker/internal/errors"
)

// The wire format uses the camelCase keys of files exported by earlier
// versions of the tracker. Decoding fills fields those files may lack:
// characterType falls back to faction, lists default to empty, targetCount
// to 1, status source to "manual", characteristics to 10 and the round to 1.

func validationError(format string, args ...any) error {
	return dnderr.Validationf(format, args...)
}

// MarshalState encodes a combat state.
func MarshalState(state *State) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to marshal combat state")
	}
	return data, nil
}

// UnmarshalState decodes and normalizes a combat state. Any failure carries
// the validation code.
func UnmarshalState(data []byte) (*State, error) {
	state := NewState()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, asValidation(err, "invalid combat state")
	}
	return state, nil
}

// UnmarshalSave decodes a save file.
func UnmarshalSave(data []byte) (*SaveData, error) {
	var save SaveData
	if err := json.Unmarshal(data, &save); err != nil {
		return nil, asValidation(err, "invalid save data")
	}
	return &save, nil
}

func asValidation(err error, message string) error {
	if dnderr.IsValidation(err) {
		return dnderr.Wrap(err, message)
	}
	return dnderr.WrapWithCode(err, dnderr.CodeValidation, message)
}

type participantData struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Initiative      int             `json:"initiative"`
	CharacterType   CharacterType   `json:"characterType,omitempty"`
	Faction         CharacterType   `json:"faction,omitempty"`
	HPMax           *int            `json:"hpMax"`
	HPCurr          *int            `json:"hpCurr"`
	DamageTaken     int             `json:"damageTaken"`
	MPMax           int             `json:"mpMax"`
	MPCurr          int             `json:"mpCurr"`
	AC              int             `json:"ac"`
	Skills          []string        `json:"skills"`
	Characteristics Characteristics `json:"characteristics"`
	Attacks         []*Action       `json:"attacks"`
	Abilities       []*Action       `json:"abilities"`
	Spells          []*Action       `json:"spells"`
	Statuses        []*Status       `json:"statuses"`
	Equipment       []*Equipment    `json:"equipment"`
	DeathSaves      *DeathSaves     `json:"deathSaves,omitempty"`
	IsDead          bool            `json:"isDead"`
	IsUnconscious   bool            `json:"isUnconscious"`
}

func (p *Participant) MarshalJSON() ([]byte, error) {
	data := participantData{
		ID:              p.ID,
		Name:            p.Name,
		Initiative:      p.Initiative,
		CharacterType:   p.Type,
		Faction:         p.Type,
		MPMax:           p.MPMax,
		MPCurr:          p.MPCurr,
		AC:              p.AC,
		Skills:          nonNilSlice(p.Skills),
		Characteristics: p.Characteristics,
		Attacks:         nonNilSlice(p.Attacks),
		Abilities:       nonNilSlice(p.Abilities),
		Spells:          nonNilSlice(p.Spells),
		Statuses:        nonNilSlice(p.Statuses),
		Equipment:       nonNilSlice(p.Equipment),
		DeathSaves:      p.DeathSaves,
		IsDead:          p.IsDead,
		IsUnconscious:   p.IsUnconscious,
	}
	switch v := p.Vitals.(type) {
	case *HitPoints:
		current, hpMax := v.Current, v.Max
		data.HPCurr = &current
		data.HPMax = &hpMax
	case *BossDamage:
		data.DamageTaken = v.Taken
	}
	return json.Marshal(data)
}

func (p *Participant) UnmarshalJSON(raw []byte) error {
	data := participantData{
		AC:              DefaultArmorClass,
		Characteristics: DefaultCharacteristics(),
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}
	if data.ID == "" {
		return validationError("participant %q is missing an id", data.Name)
	}

	characterType := data.CharacterType
	if characterType == "" {
		characterType = data.Faction
	}
	if !characterType.Valid() {
		return dnderr.Validationf("participant %q has unknown character type %q", data.ID, characterType).
			WithParticipant(data.ID).
			WithMeta(dnderr.MetaField, "characterType")
	}

	*p = Participant{
		ID:              data.ID,
		Name:            data.Name,
		Initiative:      data.Initiative,
		Type:            characterType,
		MPMax:           data.MPMax,
		MPCurr:          data.MPCurr,
		AC:              data.AC,
		Characteristics: data.Characteristics,
		Skills:          data.Skills,
		Attacks:         compact(data.Attacks),
		Abilities:       compact(data.Abilities),
		Spells:          compact(data.Spells),
		Statuses:        compact(data.Statuses),
		Equipment:       compact(data.Equipment),
		DeathSaves:      data.DeathSaves,
		IsDead:          data.IsDead,
		IsUnconscious:   data.IsUnconscious,
	}
	if characterType == CharacterTypeBoss {
		p.Vitals = &BossDamage{Taken: data.DamageTaken}
	} else {
		p.Vitals = &HitPoints{Current: deref(data.HPCurr), Max: deref(data.HPMax)}
	}
	p.Normalize()
	return nil
}

func (a *Action) UnmarshalJSON(raw []byte) error {
	type alias Action
	action := alias{TargetCount: 1}
	if err := json.Unmarshal(raw, &action); err != nil {
		return err
	}
	if !action.Type.Valid() {
		return validationError("action %q has unknown type %q", action.ID, action.Type)
	}
	if action.TargetCount == 0 {
		action.TargetCount = 1
	}
	action.Effects = compact(action.Effects)
	*a = Action(action)
	return nil
}

func (e *Effect) UnmarshalJSON(raw []byte) error {
	type alias Effect
	var effect alias
	if err := json.Unmarshal(raw, &effect); err != nil {
		return err
	}
	if !effect.Type.Valid() {
		return validationError("effect %q has unknown type %q", effect.ID, effect.Type)
	}
	if effect.StatusDurationType != "" && !effect.StatusDurationType.Valid() {
		return validationError("effect %q has unknown duration type %q", effect.ID, effect.StatusDurationType)
	}
	*e = Effect(effect)
	return nil
}

func (s *Status) UnmarshalJSON(raw []byte) error {
	type alias Status
	status := alias{Source: StatusSourceManual}
	if err := json.Unmarshal(raw, &status); err != nil {
		return err
	}
	if !status.DurationType.Valid() {
		return validationError("status %q has unknown duration type %q", status.Name, status.DurationType)
	}
	if status.Source == "" {
		status.Source = StatusSourceManual
	}
	*s = Status(status)
	return nil
}

func (e *Equipment) UnmarshalJSON(raw []byte) error {
	type alias Equipment
	equipment := alias{IsEquipped: true}
	if err := json.Unmarshal(raw, &equipment); err != nil {
		return err
	}
	for key := range equipment.StatBonuses {
		if !key.Valid() {
			return validationError("equipment %q has unknown stat %q", equipment.Name, key)
		}
	}
	if equipment.StatBonuses == nil {
		equipment.StatBonuses = map[StatKey]int{}
	}
	*e = Equipment(equipment)
	return nil
}

// legacyDeathLog is a log type some older exports used for death messages.
const legacyDeathLog LogType = "death"

func (l *LogEntry) UnmarshalJSON(raw []byte) error {
	type alias LogEntry
	var entry alias
	if err := json.Unmarshal(raw, &entry); err != nil {
		return err
	}
	if strings.EqualFold(string(entry.Type), string(legacyDeathLog)) {
		entry.Type = LogDamage
	}
	if !entry.Type.Valid() {
		return validationError("log entry %q has unknown type %q", entry.ID, entry.Type)
	}
	*l = LogEntry(entry)
	return nil
}

func (s *State) UnmarshalJSON(raw []byte) error {
	type alias State
	state := alias{CurrentRound: 1}
	if err := json.Unmarshal(raw, &state); err != nil {
		return err
	}
	state.Participants = compact(state.Participants)
	state.EventLog = compact(state.EventLog)
	*s = State(state)
	s.Normalize()
	return nil
}

func (s *State) MarshalJSON() ([]byte, error) {
	type alias State
	out := alias(*s)
	out.Participants = nonNilSlice(out.Participants)
	out.EventLog = nonNilSlice(out.EventLog)
	return json.Marshal(out)
}

// compact drops null elements and turns a missing list into an empty one.
func compact[T any](items []*T) []*T {
	out := make([]*T, 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, item)
		}
	}
	return out
}

func nonNilSlice[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
