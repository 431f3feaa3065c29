package discord

import (
	"fmt"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/events"
	"github.com/bwmarrin/discordgo"
)

// MessageSender posts a plain message to a channel. *discordgo.Session
// satisfies it.
type MessageSender interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// TurnAnnouncer posts turn, round and death announcements to the channel an
// encounter runs in
type TurnAnnouncer struct {
	sender MessageSender
}

// NewTurnAnnouncer creates a new announcer
func NewTurnAnnouncer(sender MessageSender) *TurnAnnouncer {
	if sender == nil {
		panic("message sender is required")
	}
	return &TurnAnnouncer{sender: sender}
}

// Subscribe registers the announcer for every event it renders
func (a *TurnAnnouncer) Subscribe(bus *events.Bus) {
	bus.SubscribeAll(a,
		events.EventTypeRoundStarted,
		events.EventTypeTurnStarted,
		events.EventTypeTurnReverted,
		events.EventTypeParticipantDowned,
		events.EventTypeParticipantDied,
	)
}

func (a *TurnAnnouncer) ID() string { return "discord_turn_announcer" }

// Priority runs the announcer after in-process listeners
func (a *TurnAnnouncer) Priority() int { return 100 }

func (a *TurnAnnouncer) HandleEvent(event events.Event) error {
	if event.GetChannelID() == "" {
		return nil
	}

	message := Announcement(event)
	if message == "" {
		return nil
	}

	if _, err := a.sender.ChannelMessageSend(event.GetChannelID(), message); err != nil {
		return fmt.Errorf("failed to announce %s in channel %s: %w", event.GetType(), event.GetChannelID(), err)
	}
	return nil
}

// Announcement renders an event as a channel message, empty for events that
// are not announced
func Announcement(event events.Event) string {
	switch e := event.(type) {
	case *events.RoundStartedEvent:
		return fmt.Sprintf("🔔 **Round %d** begins!", e.Round)
	case *events.TurnStartedEvent:
		if e.GetType() == events.EventTypeTurnReverted {
			return fmt.Sprintf("⏪ Back to **%s**'s turn.", e.ParticipantName)
		}
		return fmt.Sprintf("▶️ It's **%s**'s turn!", e.ParticipantName)
	case *events.ParticipantEvent:
		if e.GetType() == events.EventTypeParticipantDied {
			return fmt.Sprintf("💀 **%s** has died.", e.ParticipantName)
		}
		return fmt.Sprintf("🩸 **%s** falls unconscious!", e.ParticipantName)
	}
	return ""
}
