package combat

// ApplyAction resolves action from casterID against each target in order.
// Duplicate and unknown target ids are skipped. customValues supplies the
// magnitude of custom effects keyed by effect id; missing keys count as 0.
//
// When the action belongs to the caster its cooldown is armed afterwards.
func (s *Session) ApplyAction(casterID string, action *Action, targetIDs []string, customValues map[string]int) []*LogEntry {
	caster := s.state.Participant(casterID)
	if caster == nil || action == nil {
		return nil
	}
	return s.record(func() {
		s.log(LogAction, "%s uses %s", caster.Name, action.Name)

		seen := make(map[string]bool, len(targetIDs))
		for _, id := range targetIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			target := s.state.Participant(id)
			if target == nil {
				continue
			}
			for _, effect := range action.Effects {
				if effect == nil {
					continue
				}
				s.applyEffect(caster, action, effect, target, customValues)
			}
		}

		if own := caster.FindAction(action.ID); own != nil {
			own.CurrentCooldown = own.Cooldown
		}
	})
}

// UseAction resolves one of the caster's own actions by id.
func (s *Session) UseAction(casterID, actionID string, targetIDs []string, customValues map[string]int) []*LogEntry {
	caster := s.state.Participant(casterID)
	if caster == nil {
		return nil
	}
	action := caster.FindAction(actionID)
	if action == nil {
		return nil
	}
	return s.ApplyAction(casterID, action, targetIDs, customValues)
}

func effectAmount(effect *Effect, customValues map[string]int) int {
	if effect.Type.IsCustom() {
		return nonNegative(customValues[effect.ID])
	}
	return nonNegative(effect.Value)
}

func (s *Session) applyEffect(caster *Participant, action *Action, effect *Effect, target *Participant, customValues map[string]int) {
	switch effect.Type {
	case EffectDamage, EffectCustomDamage:
		amount := effectAmount(effect, customValues)
		outcome := target.TakeDamage(amount)
		if bd := target.BossDamage(); bd != nil {
			s.log(LogDamage, "%s takes %d damage from %s's %s (total: %d)", target.Name, amount, caster.Name, action.Name, bd.Taken)
		} else {
			s.log(LogDamage, "%s takes %d damage from %s's %s", target.Name, amount, caster.Name, action.Name)
		}
		s.logOutcome(target, outcome)

	case EffectHeal, EffectCustomHeal:
		restored, revived := target.Heal(effectAmount(effect, customValues))
		s.log(LogHeal, "%s restores %d HP from %s's %s", target.Name, restored, caster.Name, action.Name)
		if revived {
			s.log(LogHeal, "%s regains consciousness!", target.Name)
		}

	case EffectRestoreMP:
		restored := target.RestoreMP(effectAmount(effect, customValues))
		s.log(LogHeal, "%s restores %d MP from %s's %s", target.Name, restored, caster.Name, action.Name)

	case EffectAddStatus:
		if effect.StatusName == "" {
			return
		}
		duration := effect.StatusDuration
		if duration == 0 {
			duration = 1
		}
		durationType := effect.StatusDurationType
		if durationType == "" {
			durationType = DurationRounds
		}
		target.AddStatus(s.ids.New(), effect.StatusName, duration, durationType, effect.StatusDescription, action.Name)
		s.log(LogStatus, "%s gains status %q from %s's %s", target.Name, effect.StatusName, caster.Name, action.Name)

	case EffectRemoveStatus:
		if effect.StatusName == "" {
			return
		}
		if target.RemoveStatus(effect.StatusName) > 0 {
			s.log(LogStatus, "%s loses status %q from %s's %s", target.Name, effect.StatusName, caster.Name, action.Name)
		}
	}
}
