package combat

import (
	"sort"
	"time"
)

// LogEntry is one line of the event log. Timestamp is unix milliseconds.
type LogEntry struct {
	ID        string  `json:"id"`
	Timestamp int64   `json:"timestamp"`
	Message   string  `json:"message"`
	Type      LogType `json:"type"`
}

func (l *LogEntry) Time() time.Time {
	return time.UnixMilli(l.Timestamp)
}

// State is the whole tracker: who is fighting, whose turn it is, the round
// and the append-only event log.
type State struct {
	Participants     []*Participant `json:"participants"`
	CurrentTurnIndex int            `json:"currentTurnIndex"`
	CurrentRound     int            `json:"currentRound"`
	EventLog         []*LogEntry    `json:"eventLog"`
}

func NewState() *State {
	return &State{
		Participants: []*Participant{},
		CurrentRound: 1,
		EventLog:     []*LogEntry{},
	}
}

// InitiativeOrder returns participants by initiative, highest first. Ties
// keep insertion order.
func (s *State) InitiativeOrder() []*Participant {
	order := append([]*Participant(nil), s.Participants...)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Initiative > order[j].Initiative
	})
	return order
}

// Participant returns the first participant with the given id
func (s *State) Participant(id string) *Participant {
	if id == "" {
		return nil
	}
	for _, p := range s.Participants {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Current returns the participant whose turn it is, nil when empty
func (s *State) Current() *Participant {
	order := s.InitiativeOrder()
	if len(order) == 0 {
		return nil
	}
	return order[clamp(s.CurrentTurnIndex, 0, len(order)-1)]
}

// Normalize brings every participant and the turn bookkeeping back inside
// their invariants.
func (s *State) Normalize() {
	if s.Participants == nil {
		s.Participants = []*Participant{}
	}
	if s.EventLog == nil {
		s.EventLog = []*LogEntry{}
	}
	for _, p := range s.Participants {
		p.Normalize()
	}
	if s.CurrentRound < 1 {
		s.CurrentRound = 1
	}
	s.clampTurnIndex()
}

func (s *State) clampTurnIndex() {
	n := len(s.Participants)
	if n == 0 {
		s.CurrentTurnIndex = 0
		return
	}
	s.CurrentTurnIndex = clamp(s.CurrentTurnIndex, 0, n-1)
}

// Clone returns a deep copy
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	c := &State{
		Participants:     make([]*Participant, len(s.Participants)),
		CurrentTurnIndex: s.CurrentTurnIndex,
		CurrentRound:     s.CurrentRound,
		EventLog:         make([]*LogEntry, len(s.EventLog)),
	}
	for i, p := range s.Participants {
		c.Participants[i] = p.Clone()
	}
	for i, e := range s.EventLog {
		ec := *e
		c.EventLog[i] = &ec
	}
	return c
}
