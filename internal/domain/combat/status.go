package combat

import "strings"

// StatusSourceManual marks statuses added by hand rather than by an action
const StatusSourceManual = "manual"

// Status is a named, optionally timed condition on a participant. Duplicates
// by name are tracked independently.
type Status struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Duration     int          `json:"duration"`
	DurationType DurationType `json:"durationType"`
	Description  string       `json:"description,omitempty"`
	Source       string       `json:"source"`
}

// Temporary reports whether the status ever expires on its own
func (s *Status) Temporary() bool {
	return s.DurationType != DurationUntilRemoved
}

// AddStatus appends a new status and returns it.
func (p *Participant) AddStatus(id, name string, duration int, durationType DurationType, description, source string) *Status {
	if source == "" {
		source = StatusSourceManual
	}
	status := &Status{
		ID:           id,
		Name:         name,
		Duration:     duration,
		DurationType: durationType,
		Description:  description,
		Source:       source,
	}
	p.Statuses = append(p.Statuses, status)
	return status
}

// RemoveStatus removes every status whose name matches case-insensitively
// and returns how many were removed.
func (p *Participant) RemoveStatus(name string) int {
	kept := make([]*Status, 0, len(p.Statuses))
	for _, s := range p.Statuses {
		if strings.EqualFold(s.Name, name) {
			continue
		}
		kept = append(kept, s)
	}
	removed := len(p.Statuses) - len(kept)
	p.Statuses = kept
	return removed
}

func (p *Participant) RemoveStatusByID(id string) *Status {
	for i, s := range p.Statuses {
		if s.ID == id {
			p.Statuses = append(p.Statuses[:i:i], p.Statuses[i+1:]...)
			return s
		}
	}
	return nil
}

// UpdateStatus replaces the status with the same id
func (p *Participant) UpdateStatus(status *Status) bool {
	if status == nil {
		return false
	}
	for i, s := range p.Statuses {
		if s.ID == status.ID {
			updated := *status
			if updated.Source == "" {
				updated.Source = s.Source
			}
			p.Statuses[i] = &updated
			return true
		}
	}
	return false
}

// FindStatus returns the first status matching name case-insensitively
func (p *Participant) FindStatus(name string) *Status {
	for _, s := range p.Statuses {
		if strings.EqualFold(s.Name, name) {
			return s
		}
	}
	return nil
}

// DecayRoundStatuses ticks round-based statuses and returns the ones that expired.
func (p *Participant) DecayRoundStatuses() []*Status {
	return p.decayStatuses(DurationRounds)
}

// DecayTurnStatuses ticks turn-based statuses and returns the ones that expired.
func (p *Participant) DecayTurnStatuses() []*Status {
	return p.decayStatuses(DurationTurns)
}

// decayStatuses decrements statuses of the given kind, then drops every
// temporary status at or below zero whatever its kind.
func (p *Participant) decayStatuses(kind DurationType) []*Status {
	var expired []*Status
	kept := make([]*Status, 0, len(p.Statuses))
	for _, s := range p.Statuses {
		if s.DurationType == kind && s.Duration > 0 {
			s.Duration--
		}
		if s.Temporary() && s.Duration <= 0 {
			expired = append(expired, s)
			continue
		}
		kept = append(kept, s)
	}
	p.Statuses = kept
	return expired
}

// StripTemporaryStatuses keeps only until_removed statuses
func (p *Participant) StripTemporaryStatuses() {
	kept := make([]*Status, 0, len(p.Statuses))
	for _, s := range p.Statuses {
		if !s.Temporary() {
			kept = append(kept, s)
		}
	}
	p.Statuses = kept
}
