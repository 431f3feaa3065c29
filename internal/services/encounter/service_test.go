package encounter_test

import (
	"context"
	"sync"
	"testing"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/clock"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	dnderr "github.com/KirkDiggler/dnd-combat-tracker/internal/errors"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/events"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/repositories/encounters"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/repositories/saves"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/services/encounter"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/testutils"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/uuid"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type ServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	repo     encounters.Repository
	saveRepo saves.Repository
	bus      *events.Bus
	spans    *tracetest.SpanRecorder
	service  encounter.Service

	mu       sync.Mutex
	received []events.Event
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	timeProvider := clock.Fixed{At: testutils.FixedTime}
	s.repo = encounters.NewInMemoryRepositoryWithClock(timeProvider)
	s.saveRepo = saves.NewInMemoryRepository()
	s.bus = events.NewBus()
	s.spans = tracetest.NewSpanRecorder()
	s.received = nil

	s.bus.SubscribeAll(&events.FuncListener{
		ListenerID: "recorder",
		Handle: func(e events.Event) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.received = append(s.received, e)
			return nil
		},
	},
		events.EventTypeTurnStarted,
		events.EventTypeTurnReverted,
		events.EventTypeRoundStarted,
		events.EventTypeActionApplied,
		events.EventTypeParticipantDowned,
		events.EventTypeParticipantDied,
		events.EventTypeRestCompleted,
		events.EventTypeCombatReset,
		events.EventTypeLogCleared,
	)

	s.service = encounter.NewService(&encounter.ServiceConfig{
		Repository:     s.repo,
		SaveRepository: s.saveRepo,
		EventBus:       s.bus,
		UUIDGenerator:  uuid.NewSequenceGenerator("id"),
		TimeProvider:   timeProvider,
		Tracer:         sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(s.spans)).Tracer("test"),
	})
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

// startEncounter creates an encounter in chan-1 with Aria (18), Balrog (15)
// and a Goblin (12)
func (s *ServiceTestSuite) startEncounter() *combat.Encounter {
	enc, err := s.service.CreateEncounter(s.ctx, &encounter.CreateEncounterInput{
		ChannelID: "chan-1",
		Name:      "Bridge of Khazad-dum",
		UserID:    "dm-1",
	})
	s.Require().NoError(err)

	for _, p := range []*combat.Participant{
		testutils.CreateTestPlayer("p1", "Aria", 18, 20),
		testutils.CreateTestBoss("b1", "Balrog", 15),
		testutils.CreateTestNPC("n1", "Goblin", 12, 7, 5),
	} {
		_, err := s.service.AddParticipant(s.ctx, enc.ID, p)
		s.Require().NoError(err)
	}
	s.received = nil
	return enc
}

func (s *ServiceTestSuite) eventTypes() []events.EventType {
	s.mu.Lock()
	defer s.mu.Unlock()
	types := make([]events.EventType, len(s.received))
	for i, e := range s.received {
		types[i] = e.GetType()
	}
	return types
}

func messages(entries []*combat.LogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

func (s *ServiceTestSuite) TestCreateEncounter() {
	enc, err := s.service.CreateEncounter(s.ctx, &encounter.CreateEncounterInput{
		ChannelID: "chan-1",
		GuildID:   "guild-1",
		Name:      "  Goblin Ambush ",
		UserID:    "dm-1",
	})
	s.Require().NoError(err)

	s.Equal("Goblin Ambush", enc.Name)
	s.Equal("guild-1", enc.GuildID)
	s.Equal(1, enc.State.CurrentRound)
	s.Equal(combat.DefaultRestSettings(), enc.RestSettings)

	got, err := s.service.GetByChannel(s.ctx, "chan-1")
	s.Require().NoError(err)
	s.Equal(enc.ID, got.ID)
}

func (s *ServiceTestSuite) TestCreateEncounter_Invalid() {
	_, err := s.service.CreateEncounter(s.ctx, nil)
	s.True(dnderr.IsInvalidArgument(err))

	_, err = s.service.CreateEncounter(s.ctx, &encounter.CreateEncounterInput{ChannelID: "chan-1", Name: "  "})
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestCreateEncounter_ChannelTaken() {
	s.startEncounter()

	_, err := s.service.CreateEncounter(s.ctx, &encounter.CreateEncounterInput{ChannelID: "chan-1", Name: "Second"})
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *ServiceTestSuite) TestListEncounters() {
	enc := s.startEncounter()

	list, err := s.service.ListEncounters(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(enc.ID, list[0].ID)
	s.Len(list[0].State.Participants, 3)
}

func (s *ServiceTestSuite) TestGetEncounter_NotFound() {
	_, err := s.service.GetEncounter(s.ctx, "missing")
	s.True(dnderr.IsNotFound(err))

	_, err = s.service.NextTurn(s.ctx, "missing")
	s.True(dnderr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestAddParticipant() {
	enc := s.startEncounter()

	result, err := s.service.AddParticipant(s.ctx, enc.ID, &combat.Participant{
		Name: "Legolas",
		Type: combat.CharacterTypePlayer,
	})
	s.Require().NoError(err)

	s.Require().NotNil(result.Participant)
	s.NotEmpty(result.Participant.ID)
	s.Equal([]string{"Legolas joins the combat"}, messages(result.Entries))
	s.Len(result.Encounter.State.Participants, 4)
}

func (s *ServiceTestSuite) TestAddParticipant_Invalid() {
	enc := s.startEncounter()

	_, err := s.service.AddParticipant(s.ctx, enc.ID, nil)
	s.True(dnderr.IsInvalidArgument(err))

	_, err = s.service.AddParticipant(s.ctx, enc.ID, &combat.Participant{Name: "Nobody", Type: "dragon"})
	s.True(dnderr.IsInvalidArgument(err))

	_, err = s.service.AddParticipant(s.ctx, enc.ID, testutils.CreateTestPlayer("p1", "Aria again", 3, 5))
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *ServiceTestSuite) TestNextTurn_WrapsRound() {
	enc := s.startEncounter()

	result, err := s.service.NextTurn(s.ctx, enc.ID)
	s.Require().NoError(err)
	s.Equal([]string{"Turn: Balrog"}, messages(result.Entries))

	_, err = s.service.NextTurn(s.ctx, enc.ID)
	s.Require().NoError(err)

	result, err = s.service.NextTurn(s.ctx, enc.ID)
	s.Require().NoError(err)
	s.Equal([]string{"Round 2 begins", "Turn: Aria"}, messages(result.Entries))
	s.Equal(2, result.Encounter.State.CurrentRound)
	s.Equal(0, result.Encounter.State.CurrentTurnIndex)

	s.Equal([]events.EventType{
		events.EventTypeTurnStarted,
		events.EventTypeTurnStarted,
		events.EventTypeRoundStarted,
		events.EventTypeTurnStarted,
	}, s.eventTypes())

	turn, ok := s.received[3].(*events.TurnStartedEvent)
	s.Require().True(ok)
	s.Equal("p1", turn.ParticipantID)
	s.Equal(2, turn.Round)
	s.Equal("chan-1", turn.GetChannelID())
}

func (s *ServiceTestSuite) TestNextTurn_Persists() {
	enc := s.startEncounter()

	_, err := s.service.NextTurn(s.ctx, enc.ID)
	s.Require().NoError(err)

	stored, err := s.service.GetEncounter(s.ctx, enc.ID)
	s.Require().NoError(err)
	s.Equal(1, stored.State.CurrentTurnIndex)
	s.Equal("Balrog", stored.State.Current().Name)
}

func (s *ServiceTestSuite) TestPreviousTurn() {
	enc := s.startEncounter()

	result, err := s.service.PreviousTurn(s.ctx, enc.ID)
	s.Require().NoError(err)

	s.Equal([]string{"Return to turn: Goblin"}, messages(result.Entries))
	s.Equal(1, result.Encounter.State.CurrentRound)
	s.Equal([]events.EventType{events.EventTypeTurnReverted}, s.eventTypes())
}

func (s *ServiceTestSuite) TestNextTurn_EmptyEncounter() {
	enc, err := s.service.CreateEncounter(s.ctx, &encounter.CreateEncounterInput{ChannelID: "chan-2", Name: "Empty"})
	s.Require().NoError(err)

	result, err := s.service.NextTurn(s.ctx, enc.ID)
	s.Require().NoError(err)

	s.Empty(result.Entries)
	s.Empty(s.eventTypes())
}

func (s *ServiceTestSuite) TestUseAction_AreaAttack() {
	enc := s.startEncounter()

	result, err := s.service.UseAction(s.ctx, enc.ID, &encounter.UseActionInput{
		CasterID:  "b1",
		ActionID:  "b1-breath",
		TargetIDs: []string{"p1", "n1"},
	})
	s.Require().NoError(err)

	s.Equal([]string{
		"Balrog uses Fire Breath",
		"Aria takes 12 damage from Balrog's Fire Breath",
		"Goblin takes 12 damage from Balrog's Fire Breath",
	}, messages(result.Entries))

	state := result.Encounter.State
	s.Equal(8, state.Participant("p1").HitPoints().Current)
	s.Equal(3, state.Participant("b1").FindAction("b1-breath").CurrentCooldown)

	s.Equal([]events.EventType{events.EventTypeActionApplied}, s.eventTypes())
	applied := s.received[0].(*events.ActionAppliedEvent)
	s.Equal("Fire Breath", applied.ActionName)
	s.Equal([]string{"p1", "n1"}, applied.TargetIDs)
	s.Len(applied.Entries, 3)
}

func (s *ServiceTestSuite) TestUseAction_UnknownAction() {
	enc := s.startEncounter()

	_, err := s.service.UseAction(s.ctx, enc.ID, &encounter.UseActionInput{CasterID: "b1", ActionID: "nope"})
	s.True(dnderr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestApplyAction_HealAndStatus() {
	enc := s.startEncounter()
	_, err := s.service.QuickDamage(s.ctx, enc.ID, "p1", 15)
	s.Require().NoError(err)

	result, err := s.service.ApplyAction(s.ctx, enc.ID, &encounter.ApplyActionInput{
		CasterID: "n1",
		Action: &combat.Action{
			Name:        "Healing Word",
			Type:        combat.ActionTypeSpell,
			TargetCount: 1,
			Effects: []*combat.Effect{
				{ID: "e1", Type: combat.EffectCustomHeal},
				{ID: "e2", Type: combat.EffectAddStatus, StatusName: "Blessed", StatusDuration: 2},
			},
		},
		TargetIDs:    []string{"p1"},
		CustomValues: map[string]int{"e1": 4},
	})
	s.Require().NoError(err)

	p := result.Encounter.State.Participant("p1")
	s.Equal(9, p.HitPoints().Current)
	s.Require().NotNil(p.FindStatus("Blessed"))
	s.Equal("Healing Word", p.FindStatus("Blessed").Source)
}

func (s *ServiceTestSuite) TestQuickDamage_DeathEvents() {
	enc := s.startEncounter()

	result, err := s.service.QuickDamage(s.ctx, enc.ID, "n1", 10)
	s.Require().NoError(err)
	s.Equal([]string{"Goblin takes 10 damage", "Goblin dies!"}, messages(result.Entries))

	_, err = s.service.QuickDamage(s.ctx, enc.ID, "p1", 25)
	s.Require().NoError(err)

	s.Equal([]events.EventType{
		events.EventTypeParticipantDied,
		events.EventTypeParticipantDowned,
	}, s.eventTypes())
	downed := s.received[1].(*events.ParticipantEvent)
	s.Equal("Aria", downed.ParticipantName)
}

func (s *ServiceTestSuite) TestQuickDamage_UnknownParticipant() {
	enc := s.startEncounter()

	result, err := s.service.QuickDamage(s.ctx, enc.ID, "ghost", 5)
	s.Require().NoError(err)
	s.Empty(result.Entries)
}

func (s *ServiceTestSuite) TestDeathSaves() {
	enc := s.startEncounter()
	_, err := s.service.QuickDamage(s.ctx, enc.ID, "p1", 20)
	s.Require().NoError(err)

	for i := 0; i < 2; i++ {
		_, err = s.service.AddDeathSave(s.ctx, enc.ID, "p1", true)
		s.Require().NoError(err)
	}
	result, err := s.service.AddDeathSave(s.ctx, enc.ID, "p1", true)
	s.Require().NoError(err)

	s.Equal([]string{"Aria stabilizes and regains consciousness!"}, messages(result.Entries))
	p := result.Encounter.State.Participant("p1")
	s.False(p.IsUnconscious)
	s.Equal(1, p.HitPoints().Current)
}

func (s *ServiceTestSuite) TestKillAndResurrect() {
	enc := s.startEncounter()

	result, err := s.service.Kill(s.ctx, enc.ID, "b1")
	s.Require().NoError(err)
	s.Equal([]string{"Balrog dies!"}, messages(result.Entries))

	result, err = s.service.Resurrect(s.ctx, enc.ID, "b1")
	s.Require().NoError(err)
	s.Equal([]string{"Balrog is resurrected"}, messages(result.Entries))
	s.False(result.Encounter.State.Participant("b1").IsDead)
}

func (s *ServiceTestSuite) TestStatuses() {
	enc := s.startEncounter()

	_, err := s.service.AddStatus(s.ctx, enc.ID, &encounter.AddStatusInput{ParticipantID: "n1", Name: " "})
	s.True(dnderr.IsInvalidArgument(err))

	result, err := s.service.AddStatus(s.ctx, enc.ID, &encounter.AddStatusInput{
		ParticipantID: "n1",
		Name:          "Poisoned",
		Duration:      1,
		DurationType:  combat.DurationTurns,
	})
	s.Require().NoError(err)
	s.Equal([]string{`Goblin gains status "Poisoned"`}, messages(result.Entries))

	result, err = s.service.RemoveStatus(s.ctx, enc.ID, "n1", "poisoned")
	s.Require().NoError(err)
	s.Equal([]string{`Goblin loses status "poisoned"`}, messages(result.Entries))
}

func (s *ServiceTestSuite) TestManualEdit() {
	enc := s.startEncounter()
	initiative := 30

	result, err := s.service.ManualEdit(s.ctx, enc.ID, "n1", combat.ManualEdit{Initiative: &initiative})
	s.Require().NoError(err)
	s.Empty(result.Entries)

	stored, err := s.service.GetEncounter(s.ctx, enc.ID)
	s.Require().NoError(err)
	s.Equal("Goblin", stored.State.InitiativeOrder()[0].Name)
}

func (s *ServiceTestSuite) TestRests() {
	enc := s.startEncounter()
	_, err := s.service.QuickDamage(s.ctx, enc.ID, "p1", 16)
	s.Require().NoError(err)

	result, err := s.service.ShortRest(s.ctx, enc.ID)
	s.Require().NoError(err)
	s.Equal([]string{"Short rest completed (50% HP, 50% MP)"}, messages(result.Entries))
	s.Equal(14, result.Encounter.State.Participant("p1").HitPoints().Current)

	_, err = s.service.UpdateRestSettings(s.ctx, enc.ID, combat.RestSettings{
		ShortRest: combat.RestPercent{HPPercent: 50, MPPercent: 50},
		LongRest:  combat.RestPercent{HPPercent: 75, MPPercent: 100},
	})
	s.Require().NoError(err)

	result, err = s.service.LongRest(s.ctx, enc.ID)
	s.Require().NoError(err)
	s.Equal(15, result.Encounter.State.Participant("p1").HitPoints().Current)

	s.Equal([]events.EventType{events.EventTypeRestCompleted, events.EventTypeRestCompleted}, s.eventTypes())
	s.True(s.received[1].(*events.RestCompletedEvent).Long)
}

func (s *ServiceTestSuite) TestUpdateRestSettings_Invalid() {
	enc := s.startEncounter()

	_, err := s.service.UpdateRestSettings(s.ctx, enc.ID, combat.RestSettings{
		ShortRest: combat.RestPercent{HPPercent: 150},
	})
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestResetAndClearLog() {
	enc := s.startEncounter()
	_, err := s.service.NextTurn(s.ctx, enc.ID)
	s.Require().NoError(err)
	s.received = nil

	result, err := s.service.ResetCombat(s.ctx, enc.ID)
	s.Require().NoError(err)
	s.Equal(0, result.Encounter.State.CurrentTurnIndex)
	s.Equal([]string{"Combat reset"}, messages(result.Entries))

	result, err = s.service.ClearLog(s.ctx, enc.ID)
	s.Require().NoError(err)
	s.Empty(result.Encounter.State.EventLog)

	s.Equal([]events.EventType{events.EventTypeCombatReset, events.EventTypeLogCleared}, s.eventTypes())
}

func (s *ServiceTestSuite) TestDeleteEncounter() {
	enc := s.startEncounter()
	_, err := s.service.SaveSnapshot(s.ctx, &encounter.SaveSnapshotInput{EncounterID: enc.ID, Name: "Start"})
	s.Require().NoError(err)

	err = s.service.DeleteEncounter(s.ctx, enc.ID, "someone-else")
	s.True(dnderr.IsPermissionDenied(err))

	s.Require().NoError(s.service.DeleteEncounter(s.ctx, enc.ID, "dm-1"))

	_, err = s.service.GetEncounter(s.ctx, enc.ID)
	s.True(dnderr.IsNotFound(err))
	list, err := s.saveRepo.ListByEncounter(s.ctx, enc.ID)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *ServiceTestSuite) TestConcurrentCommandsSerialize() {
	enc := s.startEncounter()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.QuickDamage(s.ctx, enc.ID, "b1", 1)
			s.NoError(err)
		}()
	}
	wg.Wait()

	stored, err := s.service.GetEncounter(s.ctx, enc.ID)
	s.Require().NoError(err)
	s.Equal(20, stored.State.Participant("b1").BossDamage().Taken)
}

func (s *ServiceTestSuite) TestCommandsAreTraced() {
	enc := s.startEncounter()

	_, err := s.service.NextTurn(s.ctx, enc.ID)
	s.Require().NoError(err)

	var found bool
	for _, span := range s.spans.Ended() {
		if span.Name() != "encounter.NextTurn" {
			continue
		}
		found = true
		s.Contains(span.Attributes(), attribute.String("encounter.id", enc.ID))
		s.Contains(span.Attributes(), attribute.Int("encounter.round", 1))
	}
	s.True(found, "expected an encounter.NextTurn span")
}
