package combat

// NextTurn advances to the next participant in initiative order. Wrapping
// past the end starts a new round: round statuses decay and cooldowns tick
// for everyone. The participant whose turn begins then has its turn statuses
// decay, on a wrap as well.
func (s *Session) NextTurn() []*LogEntry {
	order := s.state.InitiativeOrder()
	if len(order) == 0 {
		return nil
	}
	return s.record(func() {
		index := (clamp(s.state.CurrentTurnIndex, 0, len(order)-1) + 1) % len(order)
		s.state.CurrentTurnIndex = index

		if index == 0 {
			s.state.CurrentRound++
			s.log(LogRound, "Round %d begins", s.state.CurrentRound)
			for _, p := range order {
				s.logExpired(p, p.DecayRoundStatuses())
				p.DecrementCooldowns()
			}
		}

		// The browser tracker skipped turn decay on a wrap. Here the first
		// participant of a round loses a turn like everyone else.
		current := order[index]
		s.logExpired(current, current.DecayTurnStatuses())
		s.log(LogTurn, "Turn: %s", current.Name)
	})
}

// PreviousTurn steps back one participant without decaying anything and
// without touching the round counter.
func (s *Session) PreviousTurn() []*LogEntry {
	order := s.state.InitiativeOrder()
	if len(order) == 0 {
		return nil
	}
	return s.record(func() {
		index := clamp(s.state.CurrentTurnIndex, 0, len(order)-1) - 1
		if index < 0 {
			index = len(order) - 1
		}
		s.state.CurrentTurnIndex = index
		s.log(LogTurn, "Return to turn: %s", order[index].Name)
	})
}

// ResetCombat returns to round 1, turn 0. Temporary statuses are stripped
// and cooldowns zeroed. Vitals are untouched.
func (s *Session) ResetCombat() []*LogEntry {
	return s.record(func() {
		s.state.CurrentTurnIndex = 0
		s.state.CurrentRound = 1
		for _, p := range s.state.Participants {
			p.StripTemporaryStatuses()
			p.ResetCooldowns()
		}
		s.log(LogRound, "Combat reset")
	})
}
