package combat

import (
	"encoding/json"
	"time"
)

// Encounter is a tracked combat bound to a Discord channel
type Encounter struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	ChannelID    string       `json:"channelId"`
	GuildID      string       `json:"guildId,omitempty"`
	CreatedBy    string       `json:"createdBy"` // User ID who created the encounter
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	State        *State       `json:"state"`
	RestSettings RestSettings `json:"restSettings"`
}

// NewEncounter creates an empty encounter at round 1
func NewEncounter(id, name, channelID, createdBy string, now time.Time) *Encounter {
	return &Encounter{
		ID:           id,
		Name:         name,
		ChannelID:    channelID,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
		State:        NewState(),
		RestSettings: DefaultRestSettings(),
	}
}

func (e *Encounter) UnmarshalJSON(data []byte) error {
	type alias Encounter
	enc := alias{RestSettings: DefaultRestSettings()}
	if err := json.Unmarshal(data, &enc); err != nil {
		return err
	}
	if enc.State == nil {
		enc.State = NewState()
	}
	*e = Encounter(enc)
	return nil
}

// Clone returns a deep copy
func (e *Encounter) Clone() *Encounter {
	if e == nil {
		return nil
	}
	c := *e
	c.State = e.State.Clone()
	return &c
}

// Snapshot captures the encounter as a save
func (e *Encounter) Snapshot(id, name, description string, at time.Time) *SaveData {
	return &SaveData{
		ID:           id,
		Name:         name,
		Description:  description,
		Timestamp:    at.UnixMilli(),
		EncounterID:  e.ID,
		CombatState:  e.State.Clone(),
		Templates:    []*Template{},
		RestSettings: e.RestSettings,
	}
}
