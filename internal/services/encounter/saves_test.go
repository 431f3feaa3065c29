package encounter_test

import (
	"encoding/json"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	dnderr "github.com/KirkDiggler/dnd-combat-tracker/internal/errors"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/services/encounter"
)

func (s *ServiceTestSuite) TestSaveAndLoad() {
	enc := s.startEncounter()

	save, err := s.service.SaveSnapshot(s.ctx, &encounter.SaveSnapshotInput{
		EncounterID: enc.ID,
		Name:        "Before the breath",
	})
	s.Require().NoError(err)
	s.Equal(enc.ID, save.EncounterID)
	s.Len(save.CombatState.Participants, 3)

	_, err = s.service.QuickDamage(s.ctx, enc.ID, "p1", 25)
	s.Require().NoError(err)
	_, err = s.service.NextTurn(s.ctx, enc.ID)
	s.Require().NoError(err)
	s.received = nil

	result, err := s.service.LoadSave(s.ctx, enc.ID, save.ID)
	s.Require().NoError(err)

	p := result.Encounter.State.Participant("p1")
	s.Equal(20, p.HitPoints().Current)
	s.False(p.IsUnconscious)
	s.Equal(0, result.Encounter.State.CurrentTurnIndex)
	s.Equal("chan-1", result.Encounter.ChannelID)
	s.Empty(s.eventTypes())

	list, err := s.service.ListSaves(s.ctx, enc.ID)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("Before the breath", list[0].Name)
}

func (s *ServiceTestSuite) TestSaveSnapshot_Invalid() {
	enc := s.startEncounter()

	_, err := s.service.SaveSnapshot(s.ctx, &encounter.SaveSnapshotInput{EncounterID: enc.ID})
	s.True(dnderr.IsInvalidArgument(err))

	_, err = s.service.SaveSnapshot(s.ctx, &encounter.SaveSnapshotInput{EncounterID: "missing", Name: "x"})
	s.True(dnderr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestExportImportSave() {
	enc := s.startEncounter()
	save, err := s.service.SaveSnapshot(s.ctx, &encounter.SaveSnapshotInput{EncounterID: enc.ID, Name: "Export me"})
	s.Require().NoError(err)

	data, err := s.service.ExportSave(s.ctx, save.ID)
	s.Require().NoError(err)
	s.True(json.Valid(data))

	imported, err := s.service.ImportSave(s.ctx, enc.ID, data)
	s.Require().NoError(err)

	s.NotEqual(save.ID, imported.ID)
	s.Equal("Export me", imported.Name)
	s.Equal(save.Timestamp, imported.Timestamp)
	s.Len(imported.CombatState.Participants, 3)

	list, err := s.service.ListSaves(s.ctx, enc.ID)
	s.Require().NoError(err)
	s.Len(list, 2)
}

func (s *ServiceTestSuite) TestImportSave_LegacyFile() {
	legacy := []byte(`{
		"id": "old",
		"name": "",
		"timestamp": 0,
		"combatState": {
			"participants": [
				{"id": "x", "name": "Orc", "faction": "npc", "initiative": 9, "hpMax": 15, "hpCurr": 15}
			],
			"currentTurnIndex": 0
		}
	}`)

	imported, err := s.service.ImportSave(s.ctx, "", legacy)
	s.Require().NoError(err)

	s.Equal("Imported save", imported.Name)
	s.Empty(imported.EncounterID)
	s.Equal(1, imported.CombatState.CurrentRound)
	s.Equal(combat.DefaultRestSettings(), imported.RestSettings)
	s.NotZero(imported.Timestamp)
	s.Equal(combat.CharacterTypeNPC, imported.CombatState.Participants[0].Type)
}

func (s *ServiceTestSuite) TestImportSave_Malformed() {
	_, err := s.service.ImportSave(s.ctx, "", []byte(`{"combatState": {"participants": [{"name": "No ID"}]}}`))
	s.True(dnderr.IsValidation(err))

	_, err = s.service.ImportSave(s.ctx, "", []byte(`not json`))
	s.True(dnderr.IsValidation(err))
}

func (s *ServiceTestSuite) TestDeleteSave() {
	enc := s.startEncounter()
	save, err := s.service.SaveSnapshot(s.ctx, &encounter.SaveSnapshotInput{EncounterID: enc.ID, Name: "Temp"})
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteSave(s.ctx, save.ID))
	s.True(dnderr.IsNotFound(s.service.DeleteSave(s.ctx, save.ID)))

	_, err = s.service.ExportSave(s.ctx, save.ID)
	s.True(dnderr.IsNotFound(err))
}
