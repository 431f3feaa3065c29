package combat

// QuickDamage applies damage outside any action. Unlike ApplyAction, an npc
// reaching 0 here dies outright.
func (s *Session) QuickDamage(id string, amount int) []*LogEntry {
	p := s.state.Participant(id)
	if p == nil {
		return nil
	}
	amount = nonNegative(amount)
	return s.record(func() {
		outcome := p.TakeQuickDamage(amount)
		if bd := p.BossDamage(); bd != nil {
			s.log(LogDamage, "%s takes %d damage (total: %d)", p.Name, amount, bd.Taken)
		} else {
			s.log(LogDamage, "%s takes %d damage", p.Name, amount)
		}
		s.logOutcome(p, outcome)
	})
}

// QuickHeal heals outside any action. Bosses and participants without an HP
// pool are left alone.
func (s *Session) QuickHeal(id string, amount int) []*LogEntry {
	p := s.state.Participant(id)
	if p == nil || !p.HasHPPool() || p.IsBoss() {
		return nil
	}
	amount = nonNegative(amount)
	return s.record(func() {
		_, revived := p.Heal(amount)
		s.log(LogHeal, "%s heals %d HP", p.Name, amount)
		if revived {
			s.log(LogHeal, "%s regains consciousness!", p.Name)
		}
	})
}

func (s *Session) AddDeathSaveSuccess(id string) []*LogEntry {
	p := s.state.Participant(id)
	if p == nil {
		return nil
	}
	return s.record(func() {
		switch p.AddDeathSaveSuccess() {
		case DeathSaveRecorded:
			s.log(LogStatus, "%s succeeds on a death save (%d/3)", p.Name, p.DeathSaves.Successes)
		case DeathSaveStabilized:
			s.log(LogHeal, "%s stabilizes and regains consciousness!", p.Name)
		}
	})
}

func (s *Session) AddDeathSaveFailure(id string) []*LogEntry {
	p := s.state.Participant(id)
	if p == nil {
		return nil
	}
	return s.record(func() {
		switch p.AddDeathSaveFailure() {
		case DeathSaveRecorded:
			s.log(LogStatus, "%s fails a death save (%d/3)", p.Name, p.DeathSaves.Failures)
		case DeathSaveDied:
			s.log(LogDamage, "%s dies!", p.Name)
		}
	})
}

func (s *Session) ResetDeathSaves(id string) bool {
	p := s.state.Participant(id)
	if p == nil {
		return false
	}
	return p.ResetDeathSaves()
}

func (s *Session) Kill(id string) []*LogEntry {
	p := s.state.Participant(id)
	if p == nil || p.IsDead {
		return nil
	}
	return s.record(func() {
		p.Kill()
		s.log(LogDamage, "%s dies!", p.Name)
	})
}

func (s *Session) Resurrect(id string) []*LogEntry {
	p := s.state.Participant(id)
	if p == nil || !p.IsDead {
		return nil
	}
	return s.record(func() {
		p.Resurrect()
		s.log(LogHeal, "%s is resurrected", p.Name)
	})
}
