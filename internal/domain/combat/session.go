package combat

import (
	"fmt"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/clock"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/uuid"
)

// Session runs tracker commands against one State. It is single-writer and
// does no locking; hosts serialize access.
//
// Commands never fail for gameplay reasons. Unknown participant ids and
// empty orders are quiet no-ops, and each command returns the log entries it
// appended.
type Session struct {
	state        *State
	ids          uuid.Generator
	timeProvider clock.TimeProvider
}

type SessionConfig struct {
	State         *State
	UUIDGenerator uuid.Generator
	TimeProvider  clock.TimeProvider
}

func NewSession(cfg *SessionConfig) *Session {
	if cfg == nil {
		cfg = &SessionConfig{}
	}
	s := &Session{
		state:        cfg.State,
		ids:          cfg.UUIDGenerator,
		timeProvider: cfg.TimeProvider,
	}
	if s.state == nil {
		s.state = NewState()
	}
	if s.ids == nil {
		s.ids = uuid.NewGoogleUUIDGenerator()
	}
	if s.timeProvider == nil {
		s.timeProvider = &clock.RealTimeProvider{}
	}
	s.state.Normalize()
	return s
}

func (s *Session) State() *State {
	return s.state
}

func (s *Session) Current() *Participant {
	return s.state.Current()
}

// record runs fn and returns whatever log entries it appended.
func (s *Session) record(fn func()) []*LogEntry {
	start := len(s.state.EventLog)
	fn()
	if len(s.state.EventLog) <= start {
		return nil
	}
	return append([]*LogEntry(nil), s.state.EventLog[start:]...)
}

func (s *Session) log(kind LogType, format string, args ...any) {
	s.state.EventLog = append(s.state.EventLog, &LogEntry{
		ID:        s.ids.New(),
		Timestamp: s.timeProvider.Now().UnixMilli(),
		Message:   fmt.Sprintf(format, args...),
		Type:      kind,
	})
}

func (s *Session) logExpired(p *Participant, expired []*Status) {
	for _, st := range expired {
		s.log(LogStatus, "%s is no longer affected by %s", p.Name, st.Name)
	}
}

func (s *Session) logOutcome(p *Participant, outcome DamageOutcome) {
	switch outcome {
	case DamageKnockedOut:
		s.log(LogDamage, "%s loses consciousness!", p.Name)
	case DamageKilled:
		s.log(LogDamage, "%s dies!", p.Name)
	}
}

// AddParticipant appends p, assigning an id when it has none.
func (s *Session) AddParticipant(p *Participant) []*LogEntry {
	if p == nil {
		return nil
	}
	return s.record(func() {
		if p.ID == "" {
			p.ID = s.ids.New()
		}
		for _, a := range p.Actions() {
			if a.ID == "" {
				a.ID = s.ids.New()
			}
		}
		p.Normalize()
		s.state.Participants = append(s.state.Participants, p)
		s.log(LogTurn, "%s joins the combat", p.Name)
	})
}

func (s *Session) RemoveParticipant(id string) []*LogEntry {
	for i, p := range s.state.Participants {
		if p.ID != id {
			continue
		}
		return s.record(func() {
			s.state.Participants = append(s.state.Participants[:i:i], s.state.Participants[i+1:]...)
			s.state.clampTurnIndex()
			s.log(LogTurn, "%s leaves the combat", p.Name)
		})
	}
	return nil
}

// UpdateParticipant replaces the participant with the same id by a copy of p.
func (s *Session) UpdateParticipant(p *Participant) bool {
	if p == nil {
		return false
	}
	for i, existing := range s.state.Participants {
		if existing.ID == p.ID {
			replacement := p.Clone()
			replacement.Normalize()
			s.state.Participants[i] = replacement
			return true
		}
	}
	return false
}

// ManualEdit carries direct resource edits. Nil fields are left alone.
type ManualEdit struct {
	HPCurrent       *int
	HPMax           *int
	MPCurrent       *int
	MPMax           *int
	DamageTaken     *int
	AC              *int
	Initiative      *int
	Characteristics *Characteristics
}

// ManualEdit applies raw edits then renormalizes. It writes no log entry.
func (s *Session) ManualEdit(id string, edit ManualEdit) bool {
	p := s.state.Participant(id)
	if p == nil {
		return false
	}
	switch v := p.Vitals.(type) {
	case *HitPoints:
		if edit.HPMax != nil {
			v.Max = *edit.HPMax
		}
		if edit.HPCurrent != nil {
			v.Current = *edit.HPCurrent
		}
	case *BossDamage:
		if edit.DamageTaken != nil {
			v.Taken = *edit.DamageTaken
		}
	}
	if edit.MPMax != nil {
		p.MPMax = *edit.MPMax
	}
	if edit.MPCurrent != nil {
		p.MPCurr = *edit.MPCurrent
	}
	if edit.AC != nil {
		p.AC = *edit.AC
	}
	if edit.Initiative != nil {
		p.Initiative = *edit.Initiative
	}
	if edit.Characteristics != nil {
		p.Characteristics = *edit.Characteristics
	}
	p.Normalize()
	return true
}

// AddStatus adds a manual status to a participant.
func (s *Session) AddStatus(participantID, name string, duration int, durationType DurationType, description string) []*LogEntry {
	p := s.state.Participant(participantID)
	if p == nil || name == "" {
		return nil
	}
	if duration == 0 {
		duration = 1
	}
	if durationType == "" {
		durationType = DurationRounds
	}
	return s.record(func() {
		p.AddStatus(s.ids.New(), name, duration, durationType, description, StatusSourceManual)
		s.log(LogStatus, "%s gains status %q", p.Name, name)
	})
}

// RemoveStatus removes statuses by name. It logs only when something was removed.
func (s *Session) RemoveStatus(participantID, name string) []*LogEntry {
	p := s.state.Participant(participantID)
	if p == nil {
		return nil
	}
	return s.record(func() {
		if p.RemoveStatus(name) > 0 {
			s.log(LogStatus, "%s loses status %q", p.Name, name)
		}
	})
}

func (s *Session) RemoveStatusByID(participantID, statusID string) []*LogEntry {
	p := s.state.Participant(participantID)
	if p == nil {
		return nil
	}
	return s.record(func() {
		if removed := p.RemoveStatusByID(statusID); removed != nil {
			s.log(LogStatus, "%s loses status %q", p.Name, removed.Name)
		}
	})
}

func (s *Session) UpdateStatus(participantID string, status *Status) bool {
	p := s.state.Participant(participantID)
	if p == nil {
		return false
	}
	return p.UpdateStatus(status)
}

func (s *Session) ToggleEquipment(participantID, equipmentID string) bool {
	p := s.state.Participant(participantID)
	if p == nil {
		return false
	}
	return p.ToggleEquipment(equipmentID)
}

// ClearLog empties the event log. It is the only way entries are removed.
func (s *Session) ClearLog() {
	s.state.EventLog = []*LogEntry{}
}
