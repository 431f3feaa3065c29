package combat

import "encoding/json"

type RestPercent struct {
	HPPercent int `json:"hpPercent"`
	MPPercent int `json:"mpPercent"`
}

// RestSettings holds the recovery percentages for each rest kind
type RestSettings struct {
	ShortRest RestPercent `json:"shortRest"`
	LongRest  RestPercent `json:"longRest"`
}

func DefaultRestSettings() RestSettings {
	return RestSettings{
		ShortRest: RestPercent{HPPercent: 50, MPPercent: 50},
		LongRest:  RestPercent{HPPercent: 100, MPPercent: 100},
	}
}

// UnmarshalJSON fills fields missing from data with the defaults.
func (r *RestSettings) UnmarshalJSON(data []byte) error {
	type alias RestSettings
	settings := alias(DefaultRestSettings())
	if err := json.Unmarshal(data, &settings); err != nil {
		return err
	}
	*r = RestSettings(settings)
	return nil
}

// percentOf is floor(value * pct / 100)
func percentOf(value, pct int) int {
	n := value * pct
	q := n / 100
	if n%100 != 0 && n < 0 {
		q--
	}
	return q
}

// ShortRest recovers a share of each pool on top of what is left. Bosses and
// participants without an HP pool only recover MP. Death state and statuses
// are untouched.
func (p *Participant) ShortRest(settings RestSettings) {
	if hp := p.HitPoints(); hp != nil && hp.Max > 0 && !p.IsBoss() {
		hp.Current = min(hp.Max, hp.Current+percentOf(hp.Max, settings.ShortRest.HPPercent))
	}
	p.MPCurr = min(p.MPMax, p.MPCurr+percentOf(p.MPMax, settings.ShortRest.MPPercent))
}

// LongRest sets each pool to a share of its maximum, strips temporary
// statuses and brings non-boss participants back from death or
// unconsciousness.
func (p *Participant) LongRest(settings RestSettings) {
	p.MPCurr = percentOf(p.MPMax, settings.LongRest.MPPercent)
	p.StripTemporaryStatuses()
	if p.IsBoss() {
		return
	}
	if hp := p.HitPoints(); hp != nil {
		if hp.Max > 0 {
			hp.Current = percentOf(hp.Max, settings.LongRest.HPPercent)
		} else {
			hp.Current = 0
		}
	}
	p.IsDead = false
	p.IsUnconscious = false
	p.DeathSaves = nil
}

func (s *Session) ShortRest(settings RestSettings) []*LogEntry {
	return s.record(func() {
		for _, p := range s.state.Participants {
			p.ShortRest(settings)
		}
		s.log(LogRest, "Short rest completed (%d%% HP, %d%% MP)", settings.ShortRest.HPPercent, settings.ShortRest.MPPercent)
	})
}

func (s *Session) LongRest(settings RestSettings) []*LogEntry {
	return s.record(func() {
		for _, p := range s.state.Participants {
			p.LongRest(settings)
		}
		s.log(LogRest, "Long rest completed (%d%% HP, %d%% MP)", settings.LongRest.HPPercent, settings.LongRest.MPPercent)
	})
}
