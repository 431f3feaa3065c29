package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// fakeResponder records interaction responses
type fakeResponder struct {
	responses  []*discordgo.InteractionResponse
	edits      []*discordgo.WebhookEdit
	followups  []*discordgo.WebhookParams
	respondErr error
}

func (f *fakeResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	if f.respondErr != nil {
		return f.respondErr
	}
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeResponder) InteractionResponseEdit(_ *discordgo.Interaction, edit *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.edits = append(f.edits, edit)
	return &discordgo.Message{}, nil
}

func (f *fakeResponder) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, params *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.followups = append(f.followups, params)
	return &discordgo.Message{}, nil
}

func (f *fakeResponder) last() *discordgo.InteractionResponse {
	if len(f.responses) == 0 {
		return nil
	}
	return f.responses[len(f.responses)-1]
}

// fakeSender records channel messages
type fakeSender struct {
	channels []string
	messages []string
	err      error
}

func (f *fakeSender) ChannelMessageSend(channelID, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.channels = append(f.channels, channelID)
	f.messages = append(f.messages, content)
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

var errDiscordDown = errors.New("discord unavailable")

func commandInteraction(channelID, subcommand string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionApplicationCommand,
			ChannelID: channelID,
			GuildID:   "guild-1",
			Member:    &discordgo.Member{User: &discordgo.User{ID: "dm-1"}},
			Data: discordgo.ApplicationCommandInteractionData{
				Name: commandName,
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Name:    subcommand,
						Type:    discordgo.ApplicationCommandOptionSubCommand,
						Options: opts,
					},
				},
			},
		},
	}
}

func componentInteraction(customID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionMessageComponent,
			ChannelID: "chan-1",
			Member:    &discordgo.Member{User: &discordgo.User{ID: "dm-1"}},
			Data: discordgo.MessageComponentInteractionData{
				CustomID:      customID,
				ComponentType: discordgo.ButtonComponent,
			},
		},
	}
}

func strOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

// intOpt mirrors the gateway payload, which decodes integers as float64
func intOpt(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

func boolOpt(name string, value bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionBoolean,
		Value: value,
	}
}

func attachmentOpt(name, id string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionAttachment,
		Value: id,
	}
}

// withAttachment adds an uploaded file to the interaction's resolved data
func withAttachment(i *discordgo.InteractionCreate, attachment *discordgo.MessageAttachment) *discordgo.InteractionCreate {
	data := i.Data.(discordgo.ApplicationCommandInteractionData)
	data.Resolved = &discordgo.ApplicationCommandInteractionDataResolved{
		Attachments: map[string]*discordgo.MessageAttachment{attachment.ID: attachment},
	}
	i.Data = data
	return i
}
