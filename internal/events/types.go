package events

import "github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"

// EventType names a tracker event
type EventType string

const (
	EventTypeTurnStarted       EventType = "turn_started"
	EventTypeTurnReverted      EventType = "turn_reverted"
	EventTypeRoundStarted      EventType = "round_started"
	EventTypeActionApplied     EventType = "action_applied"
	EventTypeParticipantDowned EventType = "participant_downed"
	EventTypeParticipantDied   EventType = "participant_died"
	EventTypeRestCompleted     EventType = "rest_completed"
	EventTypeCombatReset       EventType = "combat_reset"
	EventTypeLogCleared        EventType = "log_cleared"
)

// Event is the base interface for all tracker events
type Event interface {
	GetType() EventType
	GetEncounterID() string
	GetChannelID() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type        EventType
	EncounterID string
	ChannelID   string
	// Entries are the log lines the command that raised the event appended.
	Entries   []*combat.LogEntry
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType     { return e.Type }
func (e *BaseEvent) GetEncounterID() string { return e.EncounterID }
func (e *BaseEvent) GetChannelID() string   { return e.ChannelID }
func (e *BaseEvent) IsCancelled() bool      { return e.Cancelled }
func (e *BaseEvent) Cancel()                { e.Cancelled = true }

// TurnStartedEvent fires when NextTurn hands the turn to a participant, and
// as EventTypeTurnReverted when PreviousTurn steps back.
type TurnStartedEvent struct {
	BaseEvent
	Round           int
	ParticipantID   string
	ParticipantName string
}

type RoundStartedEvent struct {
	BaseEvent
	Round int
}

type ActionAppliedEvent struct {
	BaseEvent
	CasterID   string
	ActionName string
	TargetIDs  []string
}

// ParticipantEvent reports a death-state transition. Its type is either
// EventTypeParticipantDowned or EventTypeParticipantDied.
type ParticipantEvent struct {
	BaseEvent
	ParticipantID   string
	ParticipantName string
}

type RestCompletedEvent struct {
	BaseEvent
	Long bool
}

// NewBaseEvent builds the common part of an event
func NewBaseEvent(eventType EventType, encounterID, channelID string, entries []*combat.LogEntry) BaseEvent {
	return BaseEvent{
		Type:        eventType,
		EncounterID: encounterID,
		ChannelID:   channelID,
		Entries:     entries,
	}
}
