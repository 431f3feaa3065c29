package saves

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	dnderr "github.com/KirkDiggler/dnd-combat-tracker/internal/errors"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisSaveRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
	taken      time.Time
}

func (s *RedisSaveRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedis(s.mockClient)
	s.taken = time.Date(2024, 6, 1, 21, 0, 0, 0, time.UTC)
}

func (s *RedisSaveRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisSaveRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisSaveRepoTestSuite))
}

func (s *RedisSaveRepoTestSuite) save(id string, at time.Time) *combat.SaveData {
	enc := combat.NewEncounter("enc-1", "Goblin Ambush", "chan-1", "user-1", at)
	enc.State.Participants = []*combat.Participant{
		combat.NewParticipant("p1", "Aria", combat.CharacterTypePlayer, 15, 20),
	}
	return enc.Snapshot(id, "Before the bridge", "", at)
}

func (s *RedisSaveRepoTestSuite) encoded(save *combat.SaveData) string {
	data, err := json.Marshal(save)
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisSaveRepoTestSuite) TestCreate() {
	save := s.save("save-1", s.taken)

	s.mock.ExpectSetNX("save:save-1", s.encoded(save), 0).SetVal(true)
	s.mock.ExpectSAdd("encounter:enc-1:saves", "save-1").SetVal(1)

	s.NoError(s.repo.Create(context.Background(), save))
}

func (s *RedisSaveRepoTestSuite) TestCreate_AlreadyExists() {
	save := s.save("save-1", s.taken)

	s.mock.ExpectSetNX("save:save-1", s.encoded(save), 0).SetVal(false)

	err := s.repo.Create(context.Background(), save)
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *RedisSaveRepoTestSuite) TestCreate_Unlinked() {
	save := s.save("save-1", s.taken)
	save.EncounterID = ""

	s.mock.ExpectSetNX("save:save-1", s.encoded(save), 0).SetVal(true)

	s.NoError(s.repo.Create(context.Background(), save))
}

func (s *RedisSaveRepoTestSuite) TestGet() {
	save := s.save("save-1", s.taken)
	s.mock.ExpectGet("save:save-1").SetVal(s.encoded(save))

	got, err := s.repo.Get(context.Background(), "save-1")
	s.Require().NoError(err)
	s.Equal("Before the bridge", got.Name)
	s.Equal("enc-1", got.EncounterID)
	s.Equal(s.taken.UnixMilli(), got.Timestamp)
	s.Require().Len(got.CombatState.Participants, 1)
	s.Equal("Aria", got.CombatState.Participants[0].Name)
}

func (s *RedisSaveRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("save:missing").RedisNil()

	_, err := s.repo.Get(context.Background(), "missing")
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisSaveRepoTestSuite) TestGet_RedisDown() {
	s.mock.ExpectGet("save:save-1").SetErr(errors.New("connection refused"))

	_, err := s.repo.Get(context.Background(), "save-1")
	s.Equal(dnderr.CodeUnavailable, dnderr.GetCode(err))
}

func (s *RedisSaveRepoTestSuite) TestDelete() {
	save := s.save("save-1", s.taken)
	s.mock.ExpectGet("save:save-1").SetVal(s.encoded(save))
	s.mock.ExpectDel("save:save-1").SetVal(1)
	s.mock.ExpectSRem("encounter:enc-1:saves", "save-1").SetVal(1)

	s.NoError(s.repo.Delete(context.Background(), "save-1"))
}

func (s *RedisSaveRepoTestSuite) TestListByEncounter() {
	older := s.save("save-1", s.taken)

	s.mock.ExpectSMembers("encounter:enc-1:saves").SetVal([]string{"save-1"})
	s.mock.ExpectGet("save:save-1").SetVal(s.encoded(older))

	got, err := s.repo.ListByEncounter(context.Background(), "enc-1")
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("save-1", got[0].ID)
}

func (s *RedisSaveRepoTestSuite) TestListByEncounter_Empty() {
	s.mock.ExpectSMembers("encounter:enc-9:saves").SetVal([]string{})

	got, err := s.repo.ListByEncounter(context.Background(), "enc-9")
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *RedisSaveRepoTestSuite) TestSortNewestFirst() {
	older := s.save("save-1", s.taken)
	newer := s.save("save-2", s.taken.Add(time.Hour))
	list := []*combat.SaveData{older, newer}

	sortNewestFirst(list)

	s.Equal("save-2", list[0].ID)
	s.Equal("save-1", list[1].ID)
}
