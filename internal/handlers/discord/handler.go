package discord

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/dice"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	dnderr "github.com/KirkDiggler/dnd-combat-tracker/internal/errors"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/services"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/services/encounter"
	"github.com/bwmarrin/discordgo"
)

const (
	commandName     = "combat"
	defaultLogLines = 15

	// maxSaveFileBytes caps save files read from attachments
	maxSaveFileBytes = 1 << 20
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider
	encounters      encounter.Service
	roller          dice.Roller
	httpClient      *http.Client
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
	// Roller rolls initiative when a command omits it
	Roller dice.Roller
	// HTTPClient downloads save files attached to /combat import
	HTTPClient *http.Client
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.ServiceProvider == nil || cfg.ServiceProvider.EncounterService == nil {
		panic("encounter service is required")
	}
	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
		encounters:      cfg.ServiceProvider.EncounterService,
		roller:          roller,
		httpClient:      httpClient,
	}
}

// commandFunc handles one /combat subcommand and returns the reply
type commandFunc func(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error)

func (h *Handler) subcommands() map[string]commandFunc {
	return map[string]commandFunc{
		"start":         h.handleStart,
		"end":           h.handleEnd,
		"show":          h.handleShow,
		"next":          h.handleNext,
		"prev":          h.handlePrev,
		"reset":         h.handleReset,
		"add":           h.handleAdd,
		"remove":        h.handleRemove,
		"monster":       h.handleMonster,
		"damage":        h.handleDamage,
		"heal":          h.handleHeal,
		"status-add":    h.handleStatusAdd,
		"status-remove": h.handleStatusRemove,
		"death-save":    h.handleDeathSave,
		"kill":          h.handleKill,
		"revive":        h.handleRevive,
		"rest":          h.handleRest,
		"log":           h.handleLog,
		"clear-log":     h.handleClearLog,
		"save":          h.handleSave,
		"saves":         h.handleSaves,
		"load":          h.handleLoad,
		"export":        h.handleExport,
		"import":        h.handleImport,
		"use":           h.handleUse,
	}
}

// RegisterCommands registers the /combat slash command with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	_, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, guildID, Commands())
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	return nil
}

// HandleInteraction routes an interaction to the command or button handler
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(s, i)
	}
}

// handleCommand handles slash command interactions
func (h *Handler) handleCommand(s Responder, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != commandName || len(data.Options) == 0 {
		return
	}

	sub := data.Options[0]
	handle, ok := h.subcommands()[sub.Name]
	if !ok {
		respondWithError(s, i, fmt.Sprintf("Unknown subcommand %q", sub.Name))
		return
	}

	req := &commandRequest{
		interaction: i,
		options:     optionMap(sub.Options),
	}

	reply, err := handle(context.Background(), req)
	if err != nil {
		log.Printf("[DISCORD] /%s %s failed in channel %s: %v", commandName, sub.Name, i.ChannelID, err)
		respondWithError(s, i, dnderr.UserMessage(err))
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: reply,
	})
	if err != nil {
		log.Printf("[DISCORD] Failed to respond to /%s %s: %v", commandName, sub.Name, err)
	}
}

// handleComponent handles the tracker message buttons
func (h *Handler) handleComponent(s Responder, i *discordgo.InteractionCreate) {
	state, err := DecodeComponentState(i.MessageComponentData().CustomID)
	if err != nil {
		log.Printf("[DISCORD] Ignoring component: %v", err)
		return
	}

	ctx := context.Background()
	var result *encounter.CommandResult
	switch state.Action {
	case buttonNext:
		result, err = h.encounters.NextTurn(ctx, state.EncounterID)
	case buttonPrev:
		result, err = h.encounters.PreviousTurn(ctx, state.EncounterID)
	case buttonLog:
		var enc *combat.Encounter
		enc, err = h.encounters.GetEncounter(ctx, state.EncounterID)
		if err == nil {
			err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Embeds: []*discordgo.MessageEmbed{BuildLogEmbed(enc, defaultLogLines)},
					Flags:  discordgo.MessageFlagsEphemeral,
				},
			})
			if err != nil {
				log.Printf("[DISCORD] Failed to respond to log button: %v", err)
			}
			return
		}
	default:
		log.Printf("[DISCORD] Unknown combat button action %s", state.Action)
		return
	}
	if err != nil {
		log.Printf("[DISCORD] Button %s failed for encounter %s: %v", state.Action, state.EncounterID, err)
		respondWithError(s, i, dnderr.UserMessage(err))
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: resultReply(result),
	})
	if err != nil {
		log.Printf("[DISCORD] Failed to update tracker message: %v", err)
	}
}

func (h *Handler) handleStart(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	name := req.str("name")
	if name == "" {
		name = "Encounter"
	}

	enc, err := h.encounters.CreateEncounter(ctx, &encounter.CreateEncounterInput{
		ChannelID: req.interaction.ChannelID,
		GuildID:   req.interaction.GuildID,
		Name:      name,
		UserID:    interactionUserID(req.interaction),
	})
	if err != nil {
		return nil, err
	}

	return &discordgo.InteractionResponseData{
		Content:    fmt.Sprintf("⚔️ **%s** has begun! Add combatants with `/combat add` or `/combat monster`.", enc.Name),
		Embeds:     []*discordgo.MessageEmbed{BuildTrackerEmbed(enc)},
		Components: trackerButtons(enc.ID),
	}, nil
}

func (h *Handler) handleEnd(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	enc, err := h.channelEncounter(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := h.encounters.DeleteEncounter(ctx, enc.ID, interactionUserID(req.interaction)); err != nil {
		return nil, err
	}
	return &discordgo.InteractionResponseData{
		Content: fmt.Sprintf("🏁 **%s** has ended after %d rounds.", enc.Name, enc.State.CurrentRound),
	}, nil
}

func (h *Handler) handleShow(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	enc, err := h.channelEncounter(ctx, req)
	if err != nil {
		return nil, err
	}
	return &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{BuildTrackerEmbed(enc)},
		Components: trackerButtons(enc.ID),
	}, nil
}

func (h *Handler) handleNext(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	return h.run(ctx, req, func(enc *combat.Encounter) (*encounter.CommandResult, error) {
		return h.encounters.NextTurn(ctx, enc.ID)
	})
}

func (h *Handler) handlePrev(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	return h.run(ctx, req, func(enc *combat.Encounter) (*encounter.CommandResult, error) {
		return h.encounters.PreviousTurn(ctx, enc.ID)
	})
}

func (h *Handler) handleReset(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	return h.run(ctx, req, func(enc *combat.Encounter) (*encounter.CommandResult, error) {
		return h.encounters.ResetCombat(ctx, enc.ID)
	})
}

func (h *Handler) handleAdd(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	characterType := combat.CharacterType(req.str("type"))
	if characterType == "" {
		characterType = combat.CharacterTypePlayer
	}

	initiative, rolled, err := h.initiative(req)
	if err != nil {
		return nil, err
	}

	p := combat.NewParticipant("", req.str("name"), characterType, initiative, req.integer("hp"))
	if mp := req.integer("mp"); mp > 0 {
		p.MPMax = mp
		p.MPCurr = mp
	}
	if ac, ok := req.lookupInteger("ac"); ok {
		p.AC = ac
	}

	reply, err := h.run(ctx, req, func(enc *combat.Encounter) (*encounter.CommandResult, error) {
		return h.encounters.AddParticipant(ctx, enc.ID, p)
	})
	return withRolledInitiative(reply, err, rolled, initiative)
}

func (h *Handler) handleRemove(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	return h.runOnTarget(ctx, req, func(enc *combat.Encounter, target *combat.Participant) (*encounter.CommandResult, error) {
		return h.encounters.RemoveParticipant(ctx, enc.ID, target.ID)
	})
}

func (h *Handler) handleMonster(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	characterType := combat.CharacterType(req.str("type"))
	if characterType == "" {
		characterType = combat.CharacterTypeNPC
	}

	initiative, rolled, err := h.initiative(req)
	if err != nil {
		return nil, err
	}

	reply, err := h.run(ctx, req, func(enc *combat.Encounter) (*encounter.CommandResult, error) {
		return h.encounters.ImportMonster(ctx, &encounter.ImportMonsterInput{
			EncounterID:   enc.ID,
			MonsterKey:    req.str("key"),
			CharacterType: characterType,
			Initiative:    initiative,
			Name:          req.str("name"),
		})
	})
	return withRolledInitiative(reply, err, rolled, initiative)
}

// initiative reads the initiative option, rolling 1d20 when it is missing
func (h *Handler) initiative(req *commandRequest) (value int, rolled bool, err error) {
	if n, ok := req.lookupInteger("initiative"); ok {
		return n, false, nil
	}
	n, err := dice.RollInitiative(h.roller, 0)
	if err != nil {
		return 0, false, dnderr.Wrap(err, "failed to roll initiative")
	}
	return n, true, nil
}

func withRolledInitiative(reply *discordgo.InteractionResponseData, err error, rolled bool, initiative int) (*discordgo.InteractionResponseData, error) {
	if err != nil || !rolled {
		return reply, err
	}
	reply.Content = fmt.Sprintf("🎲 Rolled initiative: **%d**\n", initiative) + reply.Content
	return reply, nil
}

func (h *Handler) handleDamage(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	return h.runOnTarget(ctx, req, func(enc *combat.Encounter, target *combat.Participant) (*encounter.CommandResult, error) {
		return h.encounters.QuickDamage(ctx, enc.ID, target.ID, req.integer("amount"))
	})
}

func (h *Handler) handleHeal(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	return h.runOnTarget(ctx, req, func(enc *combat.Encounter, target *combat.Participant) (*encounter.CommandResult, error) {
		return h.encounters.QuickHeal(ctx, enc.ID, target.ID, req.integer("amount"))
	})
}

func (h *Handler) handleStatusAdd(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	durationType := combat.DurationType(req.str("type"))
	if durationType == "" {
		durationType = combat.DurationUntilRemoved
	}

	return h.runOnTarget(ctx, req, func(enc *combat.Encounter, target *combat.Participant) (*encounter.CommandResult, error) {
		return h.encounters.AddStatus(ctx, enc.ID, &encounter.AddStatusInput{
			ParticipantID: target.ID,
			Name:          req.str("name"),
			Duration:      req.integer("duration"),
			DurationType:  durationType,
			Description:   req.str("description"),
		})
	})
}

func (h *Handler) handleStatusRemove(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	return h.runOnTarget(ctx, req, func(enc *combat.Encounter, target *combat.Participant) (*encounter.CommandResult, error) {
		return h.encounters.RemoveStatus(ctx, enc.ID, target.ID, req.str("name"))
	})
}

func (h *Handler) handleDeathSave(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	return h.runOnTarget(ctx, req, func(enc *combat.Encounter, target *combat.Participant) (*encounter.CommandResult, error) {
		return h.encounters.AddDeathSave(ctx, enc.ID, target.ID, req.boolean("success"))
	})
}

func (h *Handler) handleKill(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	return h.runOnTarget(ctx, req, func(enc *combat.Encounter, target *combat.Participant) (*encounter.CommandResult, error) {
		return h.encounters.Kill(ctx, enc.ID, target.ID)
	})
}

func (h *Handler) handleRevive(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	return h.runOnTarget(ctx, req, func(enc *combat.Encounter, target *combat.Participant) (*encounter.CommandResult, error) {
		return h.encounters.Resurrect(ctx, enc.ID, target.ID)
	})
}

func (h *Handler) handleRest(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	kind := req.str("kind")
	if kind != "short" && kind != "long" {
		return nil, dnderr.InvalidArgumentf("rest must be short or long, got %q", kind)
	}

	return h.run(ctx, req, func(enc *combat.Encounter) (*encounter.CommandResult, error) {
		if kind == "long" {
			return h.encounters.LongRest(ctx, enc.ID)
		}
		return h.encounters.ShortRest(ctx, enc.ID)
	})
}

func (h *Handler) handleLog(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	enc, err := h.channelEncounter(ctx, req)
	if err != nil {
		return nil, err
	}

	limit := defaultLogLines
	if n, ok := req.lookupInteger("lines"); ok && n > 0 {
		limit = n
	}
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{BuildLogEmbed(enc, limit)},
	}, nil
}

func (h *Handler) handleClearLog(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	return h.run(ctx, req, func(enc *combat.Encounter) (*encounter.CommandResult, error) {
		return h.encounters.ClearLog(ctx, enc.ID)
	})
}

func (h *Handler) handleSave(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	enc, err := h.channelEncounter(ctx, req)
	if err != nil {
		return nil, err
	}

	save, err := h.encounters.SaveSnapshot(ctx, &encounter.SaveSnapshotInput{
		EncounterID: enc.ID,
		Name:        req.str("name"),
		Description: req.str("description"),
	})
	if err != nil {
		return nil, err
	}

	return &discordgo.InteractionResponseData{
		Content: fmt.Sprintf("💾 Saved **%s** as `%s` (round %d, %d participants).",
			save.Name, save.ID, save.CombatState.CurrentRound, len(save.CombatState.Participants)),
	}, nil
}

func (h *Handler) handleSaves(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	enc, err := h.channelEncounter(ctx, req)
	if err != nil {
		return nil, err
	}

	list, err := h.encounters.ListSaves(ctx, enc.ID)
	if err != nil {
		return nil, err
	}
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{BuildSavesEmbed(enc, list)},
		Flags:  discordgo.MessageFlagsEphemeral,
	}, nil
}

func (h *Handler) handleLoad(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	enc, err := h.channelEncounter(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err := h.encounters.LoadSave(ctx, enc.ID, req.str("save"))
	if err != nil {
		return nil, err
	}
	reply := resultReply(result)
	reply.Content = fmt.Sprintf("📂 Loaded save `%s`.", req.str("save"))
	return reply, nil
}

func (h *Handler) handleExport(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	saveID := req.str("save")
	data, err := h.encounters.ExportSave(ctx, saveID)
	if err != nil {
		return nil, err
	}

	return &discordgo.InteractionResponseData{
		Content: fmt.Sprintf("📦 Save `%s`", saveID),
		Files: []*discordgo.File{
			{
				Name:        fmt.Sprintf("combat-save-%s.json", saveID),
				ContentType: "application/json",
				Reader:      bytes.NewReader(data),
			},
		},
		Flags: discordgo.MessageFlagsEphemeral,
	}, nil
}

func (h *Handler) handleImport(ctx context.Context, req *commandRequest) (*discordgo.InteractionResponseData, error) {
	enc, err := h.channelEncounter(ctx, req)
	if err != nil {
		return nil, err
	}

	attachment, err := req.attachment("file")
	if err != nil {
		return nil, err
	}
	data, err := h.download(ctx, attachment)
	if err != nil {
		return nil, err
	}

	save, err := h.encounters.ImportSave(ctx, enc.ID, data)
	if err != nil {
		return nil, err
	}

	return &discordgo.InteractionResponseData{
		Content: fmt.Sprintf("📥 Imported **%s** as `%s` (round %d, %d participants). Use `/combat load` to restore it.",
			save.Name, save.ID, save.CombatState.CurrentRound, len(save.CombatState.Participants)),
	}, nil
}

// download fetches an attached save file
func (h *Handler) download(ctx context.Context, attachment *discordgo.MessageAttachment) ([]byte, error) {
	if attachment.Size > maxSaveFileBytes {
		return nil, dnderr.InvalidArgumentf("%s is too large to be a save file", attachment.Filename)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, attachment.URL, nil)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to build attachment request")
	}
	resp, err := h.httpClient.Do(httpReq)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to download attachment")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("[DISCORD] Failed to close attachment body: %v", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, dnderr.Newf(dnderr.CodeUnavailable, "attachment download returned %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSaveFileBytes+1))
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to read attachment")
	}
	if len(data) > maxSaveFileBytes {
		return nil, dnderr.InvalidArgumentf("%s is too large to be a save file", attachment.Filename)
	}
	return data, nil
}

// run looks up the channel's encounter, applies cmd and renders the result
func (h *Handler) run(ctx context.Context, req *commandRequest, cmd func(*combat.Encounter) (*encounter.CommandResult, error)) (*discordgo.InteractionResponseData, error) {
	enc, err := h.channelEncounter(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err := cmd(enc)
	if err != nil {
		return nil, err
	}
	return resultReply(result), nil
}

// runOnTarget is run for commands aimed at the participant named by the
// target option
func (h *Handler) runOnTarget(ctx context.Context, req *commandRequest, cmd func(*combat.Encounter, *combat.Participant) (*encounter.CommandResult, error)) (*discordgo.InteractionResponseData, error) {
	return h.run(ctx, req, func(enc *combat.Encounter) (*encounter.CommandResult, error) {
		target, err := FindParticipant(enc, req.str("target"))
		if err != nil {
			return nil, err
		}
		return cmd(enc, target)
	})
}

func (h *Handler) channelEncounter(ctx context.Context, req *commandRequest) (*combat.Encounter, error) {
	enc, err := h.encounters.GetByChannel(ctx, req.interaction.ChannelID)
	if err != nil {
		if dnderr.IsNotFound(err) {
			return nil, dnderr.NotFound("No encounter is running in this channel. Use `/combat start` first.")
		}
		return nil, err
	}
	return enc, nil
}

// FindParticipant matches query against participant IDs, then names without
// regard to case. A name shared by several participants must be given as an ID.
func FindParticipant(enc *combat.Encounter, query string) (*combat.Participant, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, dnderr.InvalidArgument("a target is required")
	}

	if p := enc.State.Participant(query); p != nil {
		return p, nil
	}

	var matches []*combat.Participant
	for _, p := range enc.State.InitiativeOrder() {
		if strings.EqualFold(p.Name, query) {
			matches = append(matches, p)
		}
	}

	switch len(matches) {
	case 0:
		return nil, dnderr.NotFoundf("No participant named %q in %s", query, enc.Name).
			WithEncounter(enc.ID)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, len(matches))
		for i, p := range matches {
			ids[i] = "`" + p.ID + "`"
		}
		return nil, dnderr.InvalidArgumentf("Several participants are named %q, target one by id: %s",
			query, strings.Join(ids, ", "))
	}
}

func resultReply(result *encounter.CommandResult) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{BuildTrackerEmbed(result.Encounter)},
		Components: trackerButtons(result.Encounter.ID),
	}
	if len(result.Entries) > 0 {
		data.Content = formatEntries(result.Entries, maxContentLength)
	} else {
		data.Content = "Nothing changed."
	}
	return data
}

func trackerButtons(encounterID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Previous",
					Style:    discordgo.SecondaryButton,
					CustomID: (&ComponentState{Action: buttonPrev, EncounterID: encounterID}).Encode(),
					Emoji:    &discordgo.ComponentEmoji{Name: "⏪"},
				},
				discordgo.Button{
					Label:    "Next Turn",
					Style:    discordgo.PrimaryButton,
					CustomID: (&ComponentState{Action: buttonNext, EncounterID: encounterID}).Encode(),
					Emoji:    &discordgo.ComponentEmoji{Name: "⏩"},
				},
				discordgo.Button{
					Label:    "Log",
					Style:    discordgo.SecondaryButton,
					CustomID: (&ComponentState{Action: buttonLog, EncounterID: encounterID}).Encode(),
					Emoji:    &discordgo.ComponentEmoji{Name: "📜"},
				},
			},
		},
	}
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
