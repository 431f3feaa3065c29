package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=mockencounter -source=service.go

import (
	"context"
	"log"
	"strings"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/clock"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	dnderr "github.com/KirkDiggler/dnd-combat-tracker/internal/errors"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/events"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/repositories/encounters"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/repositories/saves"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/telemetry"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/uuid"
	"go.opentelemetry.io/otel/trace"
)

// Service defines the encounter service interface
type Service interface {
	// CreateEncounter starts tracking a new encounter in a channel
	CreateEncounter(ctx context.Context, input *CreateEncounterInput) (*combat.Encounter, error)

	// GetEncounter retrieves an encounter by ID
	GetEncounter(ctx context.Context, encounterID string) (*combat.Encounter, error)

	// GetByChannel retrieves the encounter running in a channel
	GetByChannel(ctx context.Context, channelID string) (*combat.Encounter, error)

	ListEncounters(ctx context.Context) ([]*combat.Encounter, error)

	// DeleteEncounter removes an encounter and its saves. Only the creator may
	// delete it.
	DeleteEncounter(ctx context.Context, encounterID, userID string) error

	AddParticipant(ctx context.Context, encounterID string, participant *combat.Participant) (*CommandResult, error)
	RemoveParticipant(ctx context.Context, encounterID, participantID string) (*CommandResult, error)
	UpdateParticipant(ctx context.Context, encounterID string, participant *combat.Participant) (*CommandResult, error)
	ManualEdit(ctx context.Context, encounterID, participantID string, edit combat.ManualEdit) (*CommandResult, error)

	// ImportMonster looks a monster up in the D&D 5e API and adds it
	ImportMonster(ctx context.Context, input *ImportMonsterInput) (*CommandResult, error)

	NextTurn(ctx context.Context, encounterID string) (*CommandResult, error)
	PreviousTurn(ctx context.Context, encounterID string) (*CommandResult, error)
	ResetCombat(ctx context.Context, encounterID string) (*CommandResult, error)

	ShortRest(ctx context.Context, encounterID string) (*CommandResult, error)
	LongRest(ctx context.Context, encounterID string) (*CommandResult, error)
	UpdateRestSettings(ctx context.Context, encounterID string, settings combat.RestSettings) (*CommandResult, error)

	ApplyAction(ctx context.Context, encounterID string, input *ApplyActionInput) (*CommandResult, error)

	// UseAction applies one of the caster's own actions by ID
	UseAction(ctx context.Context, encounterID string, input *UseActionInput) (*CommandResult, error)

	QuickDamage(ctx context.Context, encounterID, participantID string, amount int) (*CommandResult, error)
	QuickHeal(ctx context.Context, encounterID, participantID string, amount int) (*CommandResult, error)

	AddStatus(ctx context.Context, encounterID string, input *AddStatusInput) (*CommandResult, error)
	RemoveStatus(ctx context.Context, encounterID, participantID, name string) (*CommandResult, error)

	AddDeathSave(ctx context.Context, encounterID, participantID string, success bool) (*CommandResult, error)
	ResetDeathSaves(ctx context.Context, encounterID, participantID string) (*CommandResult, error)
	Kill(ctx context.Context, encounterID, participantID string) (*CommandResult, error)
	Resurrect(ctx context.Context, encounterID, participantID string) (*CommandResult, error)

	ClearLog(ctx context.Context, encounterID string) (*CommandResult, error)

	// SaveSnapshot stores the encounter's current state as a named save
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) (*combat.SaveData, error)

	// ListSaves returns the saves taken from an encounter, newest first
	ListSaves(ctx context.Context, encounterID string) ([]*combat.SaveData, error)

	// LoadSave replaces the encounter's state and rest settings with a save's
	LoadSave(ctx context.Context, encounterID, saveID string) (*CommandResult, error)

	DeleteSave(ctx context.Context, saveID string) error

	// ExportSave renders a save as a JSON file
	ExportSave(ctx context.Context, saveID string) ([]byte, error)

	// ImportSave stores a save file under a fresh ID, linked to encounterID
	// when one is given
	ImportSave(ctx context.Context, encounterID string, data []byte) (*combat.SaveData, error)
}

// CommandResult is the encounter after a command and the log entries the
// command appended
type CommandResult struct {
	Encounter *combat.Encounter
	Entries   []*combat.LogEntry
	// Participant is set by commands that add a participant
	Participant *combat.Participant
}

// CreateEncounterInput contains data for creating an encounter
type CreateEncounterInput struct {
	ChannelID string
	GuildID   string
	Name      string
	UserID    string
}

// ImportMonsterInput contains data for importing a monster
type ImportMonsterInput struct {
	EncounterID   string
	MonsterKey    string
	CharacterType combat.CharacterType
	Initiative    int
	// Name overrides the monster's name, e.g. "Goblin 2"
	Name string
}

type ApplyActionInput struct {
	CasterID     string
	Action       *combat.Action
	TargetIDs    []string
	CustomValues map[string]int
}

type UseActionInput struct {
	CasterID     string
	ActionID     string
	TargetIDs    []string
	CustomValues map[string]int
}

type AddStatusInput struct {
	ParticipantID string
	Name          string
	Duration      int
	DurationType  combat.DurationType
	Description   string
}

type SaveSnapshotInput struct {
	EncounterID string
	Name        string
	Description string
}

type service struct {
	repository          encounters.Repository
	saveRepository      saves.Repository
	monsterClient       dnd5e.Client
	eventBus            *events.Bus
	uuidGenerator       uuid.Generator
	timeProvider        clock.TimeProvider
	tracer              trace.Tracer
	defaultRestSettings combat.RestSettings
	locks               *keyedMutex
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository     encounters.Repository // Required
	SaveRepository saves.Repository      // Required
	MonsterClient  dnd5e.Client
	EventBus       *events.Bus
	UUIDGenerator  uuid.Generator
	TimeProvider   clock.TimeProvider
	Tracer         trace.Tracer
	// DefaultRestSettings apply to new encounters. Zero means the standard
	// 50/50 short and 100/100 long rest.
	DefaultRestSettings *combat.RestSettings
}

// NewService creates a new encounter service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.SaveRepository == nil {
		panic("save repository is required")
	}

	svc := &service{
		repository:          cfg.Repository,
		saveRepository:      cfg.SaveRepository,
		monsterClient:       cfg.MonsterClient,
		eventBus:            cfg.EventBus,
		uuidGenerator:       cfg.UUIDGenerator,
		timeProvider:        cfg.TimeProvider,
		tracer:              cfg.Tracer,
		defaultRestSettings: combat.DefaultRestSettings(),
		locks:               newKeyedMutex(),
	}

	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.timeProvider == nil {
		svc.timeProvider = &clock.RealTimeProvider{}
	}
	if svc.tracer == nil {
		svc.tracer = telemetry.NoopTracer()
	}
	if cfg.DefaultRestSettings != nil {
		svc.defaultRestSettings = *cfg.DefaultRestSettings
	}

	return svc
}

// CreateEncounter starts tracking a new encounter in a channel
func (s *service) CreateEncounter(ctx context.Context, input *CreateEncounterInput) (*combat.Encounter, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, dnderr.InvalidArgument("encounter name is required")
	}

	ctx, span := s.startSpan(ctx, "CreateEncounter", "")
	defer span.End()

	if input.ChannelID != "" {
		existing, err := s.repository.GetByChannel(ctx, input.ChannelID)
		if err != nil && !dnderr.IsNotFound(err) {
			return nil, recordError(span, dnderr.Wrap(err, "failed to check channel for an encounter"))
		}
		if existing != nil {
			return nil, dnderr.AlreadyExistsf("channel already has an encounter: %s", existing.Name).
				WithEncounter(existing.ID)
		}
	}

	encounter := combat.NewEncounter(
		s.uuidGenerator.New(),
		strings.TrimSpace(input.Name),
		input.ChannelID,
		input.UserID,
		s.timeProvider.Now(),
	)
	encounter.GuildID = input.GuildID
	encounter.RestSettings = s.defaultRestSettings

	if err := s.repository.Create(ctx, encounter); err != nil {
		return nil, recordError(span, dnderr.Wrap(err, "failed to create encounter"))
	}

	log.Printf("[ENCOUNTER] Created encounter %s (%s) in channel %s", encounter.ID, encounter.Name, encounter.ChannelID)
	return encounter, nil
}

// GetEncounter retrieves an encounter by ID
func (s *service) GetEncounter(ctx context.Context, encounterID string) (*combat.Encounter, error) {
	if strings.TrimSpace(encounterID) == "" {
		return nil, dnderr.InvalidArgument("encounter ID is required")
	}

	encounter, err := s.repository.Get(ctx, encounterID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get encounter '%s'", encounterID)
	}

	return encounter, nil
}

func (s *service) GetByChannel(ctx context.Context, channelID string) (*combat.Encounter, error) {
	if strings.TrimSpace(channelID) == "" {
		return nil, dnderr.InvalidArgument("channel ID is required")
	}

	encounter, err := s.repository.GetByChannel(ctx, channelID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get encounter for channel")
	}

	return encounter, nil
}

func (s *service) ListEncounters(ctx context.Context) ([]*combat.Encounter, error) {
	list, err := s.repository.List(ctx)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list encounters")
	}
	return list, nil
}

// DeleteEncounter removes an encounter and its saves
func (s *service) DeleteEncounter(ctx context.Context, encounterID, userID string) error {
	ctx, span := s.startSpan(ctx, "DeleteEncounter", encounterID)
	defer span.End()

	unlock := s.locks.Lock(encounterID)
	defer unlock()

	encounter, err := s.repository.Get(ctx, encounterID)
	if err != nil {
		return recordError(span, dnderr.Wrapf(err, "failed to get encounter '%s'", encounterID))
	}
	if encounter.CreatedBy != "" && encounter.CreatedBy != userID {
		return dnderr.PermissionDenied("only the encounter's creator can delete it").WithEncounter(encounterID)
	}

	if err := s.repository.Delete(ctx, encounterID); err != nil {
		return recordError(span, dnderr.Wrap(err, "failed to delete encounter"))
	}

	saved, err := s.saveRepository.ListByEncounter(ctx, encounterID)
	if err != nil {
		log.Printf("[ENCOUNTER] Failed to list saves of deleted encounter %s: %v", encounterID, err)
		return nil
	}
	for _, save := range saved {
		if err := s.saveRepository.Delete(ctx, save.ID); err != nil {
			log.Printf("[ENCOUNTER] Failed to delete save %s of encounter %s: %v", save.ID, encounterID, err)
		}
	}

	log.Printf("[ENCOUNTER] Deleted encounter %s and %d saves", encounterID, len(saved))
	return nil
}
