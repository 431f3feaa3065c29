package encounter

import (
	"context"
	"log"
	"strings"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	dnderr "github.com/KirkDiggler/dnd-combat-tracker/internal/errors"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/events"
	"go.opentelemetry.io/otel/attribute"
)

// mutation is the working set of one command
type mutation struct {
	encounter *combat.Encounter
	session   *combat.Session
	entries   []*combat.LogEntry
	// dirty marks changes that wrote no log entry
	dirty bool
	// replaced is set when the whole state was swapped out
	replaced    bool
	participant *combat.Participant
	events      []func(base events.BaseEvent) events.Event
}

func (m *mutation) record(entries []*combat.LogEntry) {
	m.entries = append(m.entries, entries...)
}

// emit queues an event to publish once the command is stored
func (m *mutation) emit(eventType events.EventType, build func(base events.BaseEvent) events.Event) {
	m.events = append(m.events, func(base events.BaseEvent) events.Event {
		base.Type = eventType
		return build(base)
	})
}

type lifeState struct {
	unconscious bool
	dead        bool
}

func lifeStates(state *combat.State) map[string]lifeState {
	out := make(map[string]lifeState, len(state.Participants))
	for _, p := range state.Participants {
		out[p.ID] = lifeState{unconscious: p.IsUnconscious, dead: p.IsDead}
	}
	return out
}

// mutate runs fn against the stored encounter under the encounter's lock,
// saves the result when anything changed and then publishes events. Events
// go out after the lock is released so listeners may call back in.
func (s *service) mutate(ctx context.Context, op, encounterID string, fn func(m *mutation) error) (*CommandResult, error) {
	if strings.TrimSpace(encounterID) == "" {
		return nil, dnderr.InvalidArgument("encounter ID is required")
	}

	ctx, span := s.startSpan(ctx, op, encounterID)
	defer span.End()

	m, err := s.runLocked(ctx, encounterID, fn)
	if err != nil {
		return nil, recordError(span, err)
	}

	state := m.encounter.State
	span.SetAttributes(
		attribute.Int("encounter.round", state.CurrentRound),
		attribute.Int("encounter.log_entries", len(m.entries)),
	)

	s.publish(m)

	return &CommandResult{
		Encounter:   m.encounter,
		Entries:     m.entries,
		Participant: m.participant,
	}, nil
}

func (s *service) runLocked(ctx context.Context, encounterID string, fn func(m *mutation) error) (*mutation, error) {
	unlock := s.locks.Lock(encounterID)
	defer unlock()

	encounter, err := s.repository.Get(ctx, encounterID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get encounter '%s'", encounterID)
	}

	before := lifeStates(encounter.State)
	m := &mutation{
		encounter: encounter,
		session: combat.NewSession(&combat.SessionConfig{
			State:         encounter.State,
			UUIDGenerator: s.uuidGenerator,
			TimeProvider:  s.timeProvider,
		}),
	}

	if err := fn(m); err != nil {
		return nil, err
	}

	if len(m.entries) == 0 && !m.dirty {
		return m, nil
	}

	if !m.replaced {
		s.queueLifeEvents(m, before)
	}

	if err := s.repository.Update(ctx, encounter); err != nil {
		return nil, dnderr.Wrap(err, "failed to update encounter")
	}

	return m, nil
}

// queueLifeEvents reports participants that went down or died during the
// command
func (s *service) queueLifeEvents(m *mutation, before map[string]lifeState) {
	for _, p := range m.encounter.State.Participants {
		prev, known := before[p.ID]
		if !known {
			continue
		}
		participant := p
		switch {
		case p.IsDead && !prev.dead:
			m.emit(events.EventTypeParticipantDied, func(base events.BaseEvent) events.Event {
				return &events.ParticipantEvent{BaseEvent: base, ParticipantID: participant.ID, ParticipantName: participant.Name}
			})
		case p.IsUnconscious && !prev.unconscious && !p.IsDead:
			m.emit(events.EventTypeParticipantDowned, func(base events.BaseEvent) events.Event {
				return &events.ParticipantEvent{BaseEvent: base, ParticipantID: participant.ID, ParticipantName: participant.Name}
			})
		}
	}
}

func (s *service) publish(m *mutation) {
	if s.eventBus == nil {
		return
	}
	for _, build := range m.events {
		base := events.NewBaseEvent("", m.encounter.ID, m.encounter.ChannelID, m.entries)
		event := build(base)
		if err := s.eventBus.Emit(event); err != nil {
			log.Printf("[ENCOUNTER] Failed to emit %s for encounter %s: %v", event.GetType(), m.encounter.ID, err)
		}
	}
}

func (s *service) AddParticipant(ctx context.Context, encounterID string, participant *combat.Participant) (*CommandResult, error) {
	if participant == nil {
		return nil, dnderr.InvalidArgument("participant cannot be nil")
	}
	if strings.TrimSpace(participant.Name) == "" {
		return nil, dnderr.InvalidArgument("participant name is required")
	}
	if !participant.Type.Valid() {
		return nil, dnderr.InvalidArgumentf("unknown character type %q", participant.Type)
	}

	return s.mutate(ctx, "AddParticipant", encounterID, func(m *mutation) error {
		p := participant.Clone()
		if p.ID != "" && m.encounter.State.Participant(p.ID) != nil {
			return dnderr.AlreadyExistsf("participant %s already exists", p.ID).
				WithEncounter(encounterID).
				WithParticipant(p.ID)
		}
		m.record(m.session.AddParticipant(p))
		m.participant = p
		return nil
	})
}

func (s *service) RemoveParticipant(ctx context.Context, encounterID, participantID string) (*CommandResult, error) {
	return s.mutate(ctx, "RemoveParticipant", encounterID, func(m *mutation) error {
		m.record(m.session.RemoveParticipant(participantID))
		return nil
	})
}

func (s *service) UpdateParticipant(ctx context.Context, encounterID string, participant *combat.Participant) (*CommandResult, error) {
	if participant == nil {
		return nil, dnderr.InvalidArgument("participant cannot be nil")
	}

	return s.mutate(ctx, "UpdateParticipant", encounterID, func(m *mutation) error {
		m.dirty = m.session.UpdateParticipant(participant)
		return nil
	})
}

func (s *service) ManualEdit(ctx context.Context, encounterID, participantID string, edit combat.ManualEdit) (*CommandResult, error) {
	return s.mutate(ctx, "ManualEdit", encounterID, func(m *mutation) error {
		m.dirty = m.session.ManualEdit(participantID, edit)
		return nil
	})
}

// ImportMonster fetches the monster before taking the encounter lock
func (s *service) ImportMonster(ctx context.Context, input *ImportMonsterInput) (*CommandResult, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.MonsterKey) == "" {
		return nil, dnderr.InvalidArgument("monster key is required")
	}
	if s.monsterClient == nil {
		return nil, dnderr.Unavailable("monster lookup is not configured")
	}

	monster, err := s.monsterClient.GetMonster(strings.ToLower(strings.TrimSpace(input.MonsterKey)))
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get monster '%s'", input.MonsterKey)
	}

	return s.mutate(ctx, "ImportMonster", input.EncounterID, func(m *mutation) error {
		p := monster.ToParticipant(s.uuidGenerator, input.CharacterType, input.Initiative)
		if name := strings.TrimSpace(input.Name); name != "" {
			p.Name = name
		}
		m.record(m.session.AddParticipant(p))
		m.participant = p
		return nil
	})
}

func (s *service) NextTurn(ctx context.Context, encounterID string) (*CommandResult, error) {
	return s.mutate(ctx, "NextTurn", encounterID, func(m *mutation) error {
		state := m.encounter.State
		round := state.CurrentRound

		m.record(m.session.NextTurn())
		if len(m.entries) == 0 {
			return nil
		}

		if state.CurrentRound != round {
			newRound := state.CurrentRound
			m.emit(events.EventTypeRoundStarted, func(base events.BaseEvent) events.Event {
				return &events.RoundStartedEvent{BaseEvent: base, Round: newRound}
			})
		}
		m.emitTurn(events.EventTypeTurnStarted)
		return nil
	})
}

func (s *service) PreviousTurn(ctx context.Context, encounterID string) (*CommandResult, error) {
	return s.mutate(ctx, "PreviousTurn", encounterID, func(m *mutation) error {
		m.record(m.session.PreviousTurn())
		if len(m.entries) > 0 {
			m.emitTurn(events.EventTypeTurnReverted)
		}
		return nil
	})
}

func (m *mutation) emitTurn(eventType events.EventType) {
	current := m.session.Current()
	if current == nil {
		return
	}
	round := m.encounter.State.CurrentRound
	id, name := current.ID, current.Name
	m.emit(eventType, func(base events.BaseEvent) events.Event {
		return &events.TurnStartedEvent{BaseEvent: base, Round: round, ParticipantID: id, ParticipantName: name}
	})
}

func (s *service) ResetCombat(ctx context.Context, encounterID string) (*CommandResult, error) {
	return s.mutate(ctx, "ResetCombat", encounterID, func(m *mutation) error {
		m.record(m.session.ResetCombat())
		m.emit(events.EventTypeCombatReset, func(base events.BaseEvent) events.Event {
			return &base
		})
		return nil
	})
}

func (s *service) ShortRest(ctx context.Context, encounterID string) (*CommandResult, error) {
	return s.rest(ctx, "ShortRest", encounterID, false)
}

func (s *service) LongRest(ctx context.Context, encounterID string) (*CommandResult, error) {
	return s.rest(ctx, "LongRest", encounterID, true)
}

func (s *service) rest(ctx context.Context, op, encounterID string, long bool) (*CommandResult, error) {
	return s.mutate(ctx, op, encounterID, func(m *mutation) error {
		if long {
			m.record(m.session.LongRest(m.encounter.RestSettings))
		} else {
			m.record(m.session.ShortRest(m.encounter.RestSettings))
		}
		m.emit(events.EventTypeRestCompleted, func(base events.BaseEvent) events.Event {
			return &events.RestCompletedEvent{BaseEvent: base, Long: long}
		})
		return nil
	})
}

func (s *service) UpdateRestSettings(ctx context.Context, encounterID string, settings combat.RestSettings) (*CommandResult, error) {
	for _, pct := range []int{
		settings.ShortRest.HPPercent, settings.ShortRest.MPPercent,
		settings.LongRest.HPPercent, settings.LongRest.MPPercent,
	} {
		if pct < 0 || pct > 100 {
			return nil, dnderr.InvalidArgumentf("rest percentages must be between 0 and 100, got %d", pct)
		}
	}

	return s.mutate(ctx, "UpdateRestSettings", encounterID, func(m *mutation) error {
		m.encounter.RestSettings = settings
		m.dirty = true
		return nil
	})
}

func (s *service) ApplyAction(ctx context.Context, encounterID string, input *ApplyActionInput) (*CommandResult, error) {
	if input == nil || input.Action == nil {
		return nil, dnderr.InvalidArgument("action is required")
	}

	return s.mutate(ctx, "ApplyAction", encounterID, func(m *mutation) error {
		m.record(m.session.ApplyAction(input.CasterID, input.Action, input.TargetIDs, input.CustomValues))
		m.emitAction(input.CasterID, input.Action.Name, input.TargetIDs)
		return nil
	})
}

func (s *service) UseAction(ctx context.Context, encounterID string, input *UseActionInput) (*CommandResult, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}

	return s.mutate(ctx, "UseAction", encounterID, func(m *mutation) error {
		caster := m.encounter.State.Participant(input.CasterID)
		if caster == nil {
			return nil
		}
		action := caster.FindAction(input.ActionID)
		if action == nil {
			return dnderr.NotFoundf("%s has no action %s", caster.Name, input.ActionID).
				WithEncounter(encounterID).
				WithParticipant(caster.ID)
		}
		name := action.Name
		m.record(m.session.UseAction(input.CasterID, input.ActionID, input.TargetIDs, input.CustomValues))
		m.emitAction(input.CasterID, name, input.TargetIDs)
		return nil
	})
}

func (m *mutation) emitAction(casterID, actionName string, targetIDs []string) {
	if len(m.entries) == 0 {
		return
	}
	targets := append([]string(nil), targetIDs...)
	m.emit(events.EventTypeActionApplied, func(base events.BaseEvent) events.Event {
		return &events.ActionAppliedEvent{BaseEvent: base, CasterID: casterID, ActionName: actionName, TargetIDs: targets}
	})
}

func (s *service) QuickDamage(ctx context.Context, encounterID, participantID string, amount int) (*CommandResult, error) {
	return s.mutate(ctx, "QuickDamage", encounterID, func(m *mutation) error {
		m.record(m.session.QuickDamage(participantID, amount))
		return nil
	})
}

func (s *service) QuickHeal(ctx context.Context, encounterID, participantID string, amount int) (*CommandResult, error) {
	return s.mutate(ctx, "QuickHeal", encounterID, func(m *mutation) error {
		m.record(m.session.QuickHeal(participantID, amount))
		return nil
	})
}

func (s *service) AddStatus(ctx context.Context, encounterID string, input *AddStatusInput) (*CommandResult, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, dnderr.InvalidArgument("status name is required")
	}
	if input.DurationType != "" && !input.DurationType.Valid() {
		return nil, dnderr.InvalidArgumentf("unknown duration type %q", input.DurationType)
	}

	return s.mutate(ctx, "AddStatus", encounterID, func(m *mutation) error {
		m.record(m.session.AddStatus(input.ParticipantID, strings.TrimSpace(input.Name), input.Duration, input.DurationType, input.Description))
		return nil
	})
}

func (s *service) RemoveStatus(ctx context.Context, encounterID, participantID, name string) (*CommandResult, error) {
	return s.mutate(ctx, "RemoveStatus", encounterID, func(m *mutation) error {
		m.record(m.session.RemoveStatus(participantID, name))
		return nil
	})
}

func (s *service) AddDeathSave(ctx context.Context, encounterID, participantID string, success bool) (*CommandResult, error) {
	return s.mutate(ctx, "AddDeathSave", encounterID, func(m *mutation) error {
		if success {
			m.record(m.session.AddDeathSaveSuccess(participantID))
		} else {
			m.record(m.session.AddDeathSaveFailure(participantID))
		}
		return nil
	})
}

func (s *service) ResetDeathSaves(ctx context.Context, encounterID, participantID string) (*CommandResult, error) {
	return s.mutate(ctx, "ResetDeathSaves", encounterID, func(m *mutation) error {
		m.dirty = m.session.ResetDeathSaves(participantID)
		return nil
	})
}

func (s *service) Kill(ctx context.Context, encounterID, participantID string) (*CommandResult, error) {
	return s.mutate(ctx, "Kill", encounterID, func(m *mutation) error {
		m.record(m.session.Kill(participantID))
		return nil
	})
}

func (s *service) Resurrect(ctx context.Context, encounterID, participantID string) (*CommandResult, error) {
	return s.mutate(ctx, "Resurrect", encounterID, func(m *mutation) error {
		m.record(m.session.Resurrect(participantID))
		return nil
	})
}

func (s *service) ClearLog(ctx context.Context, encounterID string) (*CommandResult, error) {
	return s.mutate(ctx, "ClearLog", encounterID, func(m *mutation) error {
		m.session.ClearLog()
		m.dirty = true
		m.emit(events.EventTypeLogCleared, func(base events.BaseEvent) events.Event {
			return &base
		})
		return nil
	})
}
