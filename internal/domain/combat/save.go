package combat

import (
	"encoding/json"
	"time"
)

// Template is a reusable participant, action or effect definition stored
// alongside a save. Data is kept verbatim.
type Template struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        TemplateType    `json:"type"`
	Data        json.RawMessage `json:"data,omitempty"`
	Description string          `json:"description,omitempty"`
}

// SaveData is a named snapshot of a combat together with its rest settings
// and templates. Timestamp is unix milliseconds.
type SaveData struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Timestamp   int64  `json:"timestamp"`
	// EncounterID links the save to the encounter it was taken from. Files
	// exported by older trackers do not carry it.
	EncounterID  string       `json:"encounterId,omitempty"`
	CombatState  *State       `json:"combatState"`
	Templates    []*Template  `json:"templates,omitempty"`
	RestSettings RestSettings `json:"restSettings"`
}

func (s *SaveData) Time() time.Time {
	return time.UnixMilli(s.Timestamp)
}

// UnmarshalJSON defaults missing rest settings and combat state.
func (s *SaveData) UnmarshalJSON(data []byte) error {
	type alias SaveData
	save := alias{RestSettings: DefaultRestSettings()}
	if err := json.Unmarshal(data, &save); err != nil {
		return err
	}
	if save.CombatState == nil {
		save.CombatState = NewState()
	}
	for _, t := range save.Templates {
		if t != nil && !t.Type.Valid() {
			return validationError("template %q has unknown type %q", t.ID, t.Type)
		}
	}
	*s = SaveData(save)
	return nil
}
