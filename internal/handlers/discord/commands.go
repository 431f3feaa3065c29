package discord

import (
	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	dnderr "github.com/KirkDiggler/dnd-combat-tracker/internal/errors"
	"github.com/bwmarrin/discordgo"
)

var (
	characterTypeChoices = []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Player", Value: string(combat.CharacterTypePlayer)},
		{Name: "NPC", Value: string(combat.CharacterTypeNPC)},
		{Name: "Boss", Value: string(combat.CharacterTypeBoss)},
	}
	durationTypeChoices = []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Rounds", Value: string(combat.DurationRounds)},
		{Name: "Turns", Value: string(combat.DurationTurns)},
		{Name: "Until removed", Value: string(combat.DurationUntilRemoved)},
	}
)

func targetOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "target",
		Description: "Participant name or id",
		Required:    true,
	}
}

func subcommand(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Name:        name,
		Description: description,
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Options:     options,
	}
}

// Commands returns the slash commands the bot registers
func Commands() []*discordgo.ApplicationCommand {
	minZero := float64(0)
	minOne := float64(1)

	return []*discordgo.ApplicationCommand{
		{
			Name:        commandName,
			Description: "Track initiative, HP and statuses for a combat",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("start", "Start an encounter in this channel",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Encounter name",
					},
				),
				subcommand("end", "End this channel's encounter and delete its saves"),
				subcommand("show", "Show the initiative order"),
				subcommand("next", "Advance to the next turn"),
				subcommand("prev", "Go back to the previous turn"),
				subcommand("reset", "Reset to round 1 and clear temporary statuses"),
				subcommand("add", "Add a participant",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Participant name",
						Required:    true,
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "initiative",
						Description: "Initiative, rolls 1d20 when omitted",
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "hp",
						Description: "Maximum hit points (ignored for bosses)",
						MinValue:    &minZero,
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "type",
						Description: "Participant type (default player)",
						Choices:     characterTypeChoices,
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "mp",
						Description: "Maximum mana points",
						MinValue:    &minZero,
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "ac",
						Description: "Armor class",
						MinValue:    &minZero,
					},
				),
				subcommand("remove", "Remove a participant", targetOption()),
				subcommand("monster", "Add a monster from the D&D 5e API",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "key",
						Description: "Monster key, e.g. goblin",
						Required:    true,
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "initiative",
						Description: "Initiative, rolls 1d20 when omitted",
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "type",
						Description: "NPC or boss (default NPC)",
						Choices:     characterTypeChoices[1:],
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Display name, defaults to the monster's",
					},
				),
				subcommand("use", "Use one of a participant's attacks, abilities or spells",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "caster",
						Description: "Who acts, by name or id",
						Required:    true,
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "action",
						Description: "Action name or id",
						Required:    true,
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "targets",
						Description: "Comma separated names or ids",
						Required:    true,
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "amount",
						Description: "Value for custom damage or heal effects",
						MinValue:    &minZero,
					},
				),
				subcommand("damage", "Deal damage to a participant",
					targetOption(),
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "amount",
						Description: "Damage dealt",
						Required:    true,
						MinValue:    &minZero,
					},
				),
				subcommand("heal", "Heal a participant",
					targetOption(),
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "amount",
						Description: "HP restored",
						Required:    true,
						MinValue:    &minZero,
					},
				),
				subcommand("status-add", "Add a status to a participant",
					targetOption(),
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Status name, e.g. poisoned",
						Required:    true,
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "duration",
						Description: "How many rounds or turns it lasts",
						MinValue:    &minOne,
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "type",
						Description: "What the duration counts (default until removed)",
						Choices:     durationTypeChoices,
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "description",
						Description: "Notes shown with the status",
					},
				),
				subcommand("status-remove", "Remove a status from a participant",
					targetOption(),
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Status name",
						Required:    true,
					},
				),
				subcommand("death-save", "Record a death saving throw",
					targetOption(),
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "success",
						Description: "Whether the save succeeded",
						Required:    true,
					},
				),
				subcommand("kill", "Mark a participant dead", targetOption()),
				subcommand("revive", "Bring a participant back at 1 HP", targetOption()),
				subcommand("rest", "Rest every participant",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "kind",
						Description: "Short or long rest",
						Required:    true,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "Short", Value: "short"},
							{Name: "Long", Value: "long"},
						},
					},
				),
				subcommand("log", "Show the event log",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "lines",
						Description: "How many entries to show",
						MinValue:    &minOne,
					},
				),
				subcommand("clear-log", "Clear the event log"),
				subcommand("save", "Save the encounter",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Save name",
						Required:    true,
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "description",
						Description: "Save notes",
					},
				),
				subcommand("saves", "List this encounter's saves"),
				subcommand("load", "Load a save into this encounter",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "save",
						Description: "Save id",
						Required:    true,
					},
				),
				subcommand("export", "Download a save as JSON",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "save",
						Description: "Save id",
						Required:    true,
					},
				),
				subcommand("import", "Import a save file into this encounter's saves",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionAttachment,
						Name:        "file",
						Description: "Save file exported with /combat export",
						Required:    true,
					},
				),
			},
		},
	}
}

// commandRequest is a subcommand invocation with its options by name
type commandRequest struct {
	interaction *discordgo.InteractionCreate
	options     map[string]*discordgo.ApplicationCommandInteractionDataOption
}

func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

func (r *commandRequest) str(name string) string {
	if opt, ok := r.options[name]; ok {
		return opt.StringValue()
	}
	return ""
}

func (r *commandRequest) integer(name string) int {
	n, _ := r.lookupInteger(name)
	return n
}

func (r *commandRequest) lookupInteger(name string) (int, bool) {
	opt, ok := r.options[name]
	if !ok {
		return 0, false
	}
	return int(opt.IntValue()), true
}

func (r *commandRequest) boolean(name string) bool {
	if opt, ok := r.options[name]; ok {
		return opt.BoolValue()
	}
	return false
}

// attachment resolves an attachment option to the uploaded file
func (r *commandRequest) attachment(name string) (*discordgo.MessageAttachment, error) {
	opt, ok := r.options[name]
	if !ok {
		return nil, dnderr.InvalidArgumentf("a %s attachment is required", name)
	}
	id, _ := opt.Value.(string)

	resolved := r.interaction.ApplicationCommandData().Resolved
	if resolved == nil || resolved.Attachments[id] == nil {
		return nil, dnderr.InvalidArgument("the attachment could not be read, try uploading it again")
	}
	return resolved.Attachments[id], nil
}
