package encounter

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	dnderr "github.com/KirkDiggler/dnd-combat-tracker/internal/errors"
)

// SaveSnapshot stores the encounter's current state as a named save
func (s *service) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) (*combat.SaveData, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, dnderr.InvalidArgument("save name is required")
	}

	ctx, span := s.startSpan(ctx, "SaveSnapshot", input.EncounterID)
	defer span.End()

	encounter, err := s.GetEncounter(ctx, input.EncounterID)
	if err != nil {
		return nil, recordError(span, err)
	}

	save := encounter.Snapshot(s.uuidGenerator.New(), strings.TrimSpace(input.Name), input.Description, s.timeProvider.Now())
	if err := s.saveRepository.Create(ctx, save); err != nil {
		return nil, recordError(span, dnderr.Wrap(err, "failed to store save"))
	}

	log.Printf("[ENCOUNTER] Saved encounter %s as %s (%s)", encounter.ID, save.ID, save.Name)
	return save, nil
}

func (s *service) ListSaves(ctx context.Context, encounterID string) ([]*combat.SaveData, error) {
	if strings.TrimSpace(encounterID) == "" {
		return nil, dnderr.InvalidArgument("encounter ID is required")
	}

	list, err := s.saveRepository.ListByEncounter(ctx, encounterID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list saves")
	}
	return list, nil
}

// LoadSave replaces the encounter's state and rest settings with a save's.
// The encounter keeps its ID, name and channel.
func (s *service) LoadSave(ctx context.Context, encounterID, saveID string) (*CommandResult, error) {
	save, err := s.saveRepository.Get(ctx, saveID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get save '%s'", saveID)
	}

	return s.mutate(ctx, "LoadSave", encounterID, func(m *mutation) error {
		state := save.CombatState.Clone()
		state.Normalize()
		m.encounter.State = state
		m.encounter.RestSettings = save.RestSettings
		m.dirty = true
		m.replaced = true
		return nil
	})
}

func (s *service) DeleteSave(ctx context.Context, saveID string) error {
	if err := s.saveRepository.Delete(ctx, saveID); err != nil {
		return dnderr.Wrapf(err, "failed to delete save '%s'", saveID)
	}
	return nil
}

// ExportSave renders a save as an indented JSON file
func (s *service) ExportSave(ctx context.Context, saveID string) ([]byte, error) {
	save, err := s.saveRepository.Get(ctx, saveID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get save '%s'", saveID)
	}

	data, err := json.MarshalIndent(save, "", "  ")
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to encode save")
	}
	return data, nil
}

// ImportSave decodes a save file and stores it under a fresh ID. Malformed
// files fail with a validation error.
func (s *service) ImportSave(ctx context.Context, encounterID string, data []byte) (*combat.SaveData, error) {
	ctx, span := s.startSpan(ctx, "ImportSave", encounterID)
	defer span.End()

	save, err := combat.UnmarshalSave(data)
	if err != nil {
		return nil, recordError(span, err)
	}

	if encounterID != "" {
		if _, err := s.GetEncounter(ctx, encounterID); err != nil {
			return nil, recordError(span, err)
		}
	}

	save.ID = s.uuidGenerator.New()
	save.EncounterID = encounterID
	if save.Timestamp == 0 {
		save.Timestamp = s.timeProvider.Now().UnixMilli()
	}
	if strings.TrimSpace(save.Name) == "" {
		save.Name = "Imported save"
	}

	if err := s.saveRepository.Create(ctx, save); err != nil {
		return nil, recordError(span, dnderr.Wrap(err, "failed to store imported save"))
	}

	log.Printf("[ENCOUNTER] Imported save %s (%d participants)", save.ID, len(save.CombatState.Participants))
	return save, nil
}
