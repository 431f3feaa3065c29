package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	"github.com/bwmarrin/discordgo"
)

const (
	colorCombat = 0x3498db
	colorLog    = 0x95a5a6
	colorSaves  = 0x2ecc71

	// recentLogLines is how many log lines the tracker embed shows
	recentLogLines = 5

	// Discord rejects messages over these lengths
	maxContentLength     = 2000
	maxFieldLength       = 1024
	maxDescriptionLength = 4096
)

// BuildTrackerEmbed renders the initiative order with the current-turn marker
func BuildTrackerEmbed(enc *combat.Encounter) *discordgo.MessageEmbed {
	state := enc.State
	embed := &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("⚔️ %s - Round %d", enc.Name, state.CurrentRound),
		Color:  colorCombat,
		Fields: []*discordgo.MessageEmbedField{},
	}

	order := state.InitiativeOrder()
	if len(order) == 0 {
		embed.Description = "No participants yet. Use `/combat add` or `/combat monster`."
		return embed
	}

	current := state.Current()
	var lines strings.Builder
	for _, p := range order {
		marker := "▫️"
		if current != nil && p.ID == current.ID {
			marker = "▶️"
		}
		lines.WriteString(fmt.Sprintf("%s `%2d` %s\n", marker, p.Initiative, participantLine(p)))
	}
	embed.Description = lines.String()

	if current != nil {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s's turn", current.Name),
		}
	}

	if recent := tail(state.EventLog, recentLogLines); len(recent) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "📜 Recent Events",
			Value: formatRecentEntries(recent, maxFieldLength),
		})
	}

	return embed
}

// BuildLogEmbed renders the last limit log entries
func BuildLogEmbed(enc *combat.Encounter, limit int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📜 %s - Event Log", enc.Name),
		Color: colorLog,
	}
	entries := tail(enc.State.EventLog, limit)
	if len(entries) == 0 {
		embed.Description = "The log is empty."
		return embed
	}
	embed.Description = formatRecentEntries(entries, maxDescriptionLength)
	if hidden := len(enc.State.EventLog) - len(entries); hidden > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d older entries not shown", hidden),
		}
	}
	return embed
}

// BuildSavesEmbed lists an encounter's saves, newest first
func BuildSavesEmbed(enc *combat.Encounter, list []*combat.SaveData) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("💾 %s - Saves", enc.Name),
		Color: colorSaves,
	}
	if len(list) == 0 {
		embed.Description = "No saves yet. Use `/combat save`."
		return embed
	}

	var lines strings.Builder
	for _, save := range list {
		lines.WriteString(fmt.Sprintf("**%s** `%s` <t:%d:R>", save.Name, save.ID, save.Timestamp/1000))
		if save.Description != "" {
			lines.WriteString(" - " + save.Description)
		}
		lines.WriteString("\n")
	}
	embed.Description = lines.String()
	return embed
}

func participantLine(p *combat.Participant) string {
	var b strings.Builder

	switch {
	case p.IsDead:
		b.WriteString(fmt.Sprintf("💀 ~~%s~~", p.Name))
	case p.IsUnconscious:
		b.WriteString(fmt.Sprintf("😵 **%s**", p.Name))
	default:
		b.WriteString(fmt.Sprintf("%s **%s**", healthIndicator(p), p.Name))
	}

	if bd := p.BossDamage(); bd != nil {
		b.WriteString(fmt.Sprintf(" - 💥 %d damage", bd.Taken))
	} else if p.HasHPPool() {
		hp := p.HitPoints()
		b.WriteString(fmt.Sprintf(" - %d/%d HP", hp.Current, p.EffectiveHPMax()))
	}

	if p.MPMax > 0 {
		b.WriteString(fmt.Sprintf(" | %d/%d MP", p.MPCurr, p.MPMax))
	}
	b.WriteString(fmt.Sprintf(" | AC %d", p.EffectiveAC()))

	if p.DeathSaves != nil {
		b.WriteString(fmt.Sprintf(" | saves ✅%d ❌%d", p.DeathSaves.Successes, p.DeathSaves.Failures))
	}

	if len(p.Statuses) > 0 {
		names := make([]string, 0, len(p.Statuses))
		for _, status := range p.Statuses {
			names = append(names, statusLabel(status))
		}
		b.WriteString(" | " + strings.Join(names, ", "))
	}

	return b.String()
}

func statusLabel(s *combat.Status) string {
	switch s.DurationType {
	case combat.DurationRounds:
		return fmt.Sprintf("%s (%d rounds)", s.Name, s.Duration)
	case combat.DurationTurns:
		return fmt.Sprintf("%s (%d turns)", s.Name, s.Duration)
	default:
		return s.Name
	}
}

// healthIndicator picks a colored dot from the remaining HP fraction
func healthIndicator(p *combat.Participant) string {
	if p.IsBoss() {
		return "🐉"
	}
	if !p.HasHPPool() {
		return "⚪"
	}
	hp := p.HitPoints()
	percent := float64(hp.Current) / float64(hp.Max)
	switch {
	case percent > 0.5:
		return "🟢"
	case percent > 0.25:
		return "🟡"
	case hp.Current > 0:
		return "🔴"
	}
	return "💀"
}

func entryLine(entry *combat.LogEntry) string {
	return logIcon(entry.Type) + " " + entry.Message + "\n"
}

// formatEntries renders entries oldest first within limit bytes, cutting the
// newest ones when they do not fit
func formatEntries(entries []*combat.LogEntry, limit int) string {
	var b strings.Builder
	for i, entry := range entries {
		line := entryLine(entry)
		more := fmt.Sprintf("… %d more\n", len(entries)-i)
		if b.Len()+len(line) > limit || (i < len(entries)-1 && b.Len()+len(line)+len(more) > limit) {
			b.WriteString(more)
			break
		}
		b.WriteString(line)
	}
	return b.String()
}

// formatRecentEntries is formatEntries keeping the newest entries instead
func formatRecentEntries(entries []*combat.LogEntry, limit int) string {
	lines := make([]string, 0, len(entries))
	size := 0
	for i := len(entries) - 1; i >= 0; i-- {
		line := entryLine(entries[i])
		earlier := fmt.Sprintf("… %d earlier\n", i+1)
		if size+len(line) > limit || (i > 0 && size+len(line)+len(earlier) > limit) {
			lines = append(lines, earlier)
			break
		}
		lines = append(lines, line)
		size += len(line)
	}

	var b strings.Builder
	for i := len(lines) - 1; i >= 0; i-- {
		b.WriteString(lines[i])
	}
	return b.String()
}

func logIcon(t combat.LogType) string {
	switch t {
	case combat.LogDamage:
		return "🗡️"
	case combat.LogHeal:
		return "💚"
	case combat.LogStatus:
		return "✨"
	case combat.LogTurn:
		return "▶️"
	case combat.LogRound:
		return "🔔"
	case combat.LogRest:
		return "🏕️"
	default:
		return "•"
	}
}

func tail(entries []*combat.LogEntry, n int) []*combat.LogEntry {
	if n <= 0 || len(entries) <= n {
		return entries
	}
	return entries[len(entries)-n:]
}
