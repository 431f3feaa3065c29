package encounters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	mockclock "github.com/KirkDiggler/dnd-combat-tracker/internal/clock/mocks"
	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	dnderr "github.com/KirkDiggler/dnd-combat-tracker/internal/errors"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	mockCtrl     *gomock.Controller
	timeProvider *mockclock.MockTimeProvider
	repo         Repository
	now          time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mockclock.NewMockTimeProvider(s.mockCtrl)
	s.now = time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)

	repo, err := NewRedisRepository(&RedisConfig{
		Client:       s.mockClient,
		TimeProvider: s.timeProvider,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) encounter() *combat.Encounter {
	enc := combat.NewEncounter("enc-1", "Goblin Ambush", "chan-1", "user-1", s.now)
	enc.State.Participants = []*combat.Participant{
		combat.NewParticipant("p1", "Aria", combat.CharacterTypePlayer, 15, 20),
		combat.NewParticipant("b1", "Balrog", combat.CharacterTypeBoss, 12, 0),
	}
	return enc
}

func (s *RedisRepoTestSuite) encoded(enc *combat.Encounter) string {
	data, err := json.Marshal(enc)
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	enc := s.encounter()
	expected := s.encoded(enc)

	s.timeProvider.EXPECT().Now().Return(s.now)
	s.mock.ExpectExists("encounter:enc-1").SetVal(0)
	s.mock.ExpectSet("encounter:enc-1", expected, 0).SetVal("OK")
	s.mock.ExpectSet("channel:chan-1:encounter", "enc-1", 0).SetVal("OK")
	s.mock.ExpectSAdd("encounters", "enc-1").SetVal(1)

	s.NoError(s.repo.Create(ctx, enc))
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	s.mock.ExpectExists("encounter:enc-1").SetVal(1)

	err := s.repo.Create(context.Background(), s.encounter())
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestCreate_RedisDown() {
	s.mock.ExpectExists("encounter:enc-1").SetErr(errors.New("connection refused"))

	err := s.repo.Create(context.Background(), s.encounter())
	s.Error(err)
	s.Equal(dnderr.CodeUnavailable, dnderr.GetCode(err))

	s.True(dnderr.IsInvalidArgument(s.repo.Create(context.Background(), nil)))
}

func (s *RedisRepoTestSuite) TestGet() {
	enc := s.encounter()
	s.mock.ExpectGet("encounter:enc-1").SetVal(s.encoded(enc))

	got, err := s.repo.Get(context.Background(), "enc-1")
	s.Require().NoError(err)
	s.Equal(enc.Name, got.Name)
	s.Equal(enc.State, got.State)
	s.Equal(combat.DefaultRestSettings(), got.RestSettings)
	s.True(enc.CreatedAt.Equal(got.CreatedAt))
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("encounter:missing").RedisNil()

	_, err := s.repo.Get(context.Background(), "missing")
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestUpdate() {
	ctx := context.Background()
	enc := s.encounter()
	enc.State.CurrentRound = 4
	later := s.now.Add(time.Minute)

	updated := *enc
	updated.UpdatedAt = later
	expected := s.encoded(&updated)

	s.timeProvider.EXPECT().Now().Return(later)
	s.mock.ExpectExists("encounter:enc-1").SetVal(1)
	s.mock.ExpectSet("encounter:enc-1", expected, 0).SetVal("OK")
	s.mock.ExpectSet("channel:chan-1:encounter", "enc-1", 0).SetVal("OK")
	s.mock.ExpectSAdd("encounters", "enc-1").SetVal(0)

	s.NoError(s.repo.Update(ctx, enc))
	s.Equal(later, enc.UpdatedAt)
}

func (s *RedisRepoTestSuite) TestUpdate_NotFound() {
	s.mock.ExpectExists("encounter:enc-1").SetVal(0)

	err := s.repo.Update(context.Background(), s.encounter())
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	s.mock.ExpectGet("encounter:enc-1").SetVal(s.encoded(s.encounter()))
	s.mock.ExpectDel("encounter:enc-1").SetVal(1)
	s.mock.ExpectDel("channel:chan-1:encounter").SetVal(1)
	s.mock.ExpectSRem("encounters", "enc-1").SetVal(1)

	s.NoError(s.repo.Delete(context.Background(), "enc-1"))
}

func (s *RedisRepoTestSuite) TestGetByChannel() {
	s.mock.ExpectGet("channel:chan-1:encounter").SetVal("enc-1")
	s.mock.ExpectGet("encounter:enc-1").SetVal(s.encoded(s.encounter()))

	got, err := s.repo.GetByChannel(context.Background(), "chan-1")
	s.Require().NoError(err)
	s.Equal("enc-1", got.ID)

	s.mock.ExpectGet("channel:chan-2:encounter").RedisNil()
	_, err = s.repo.GetByChannel(context.Background(), "chan-2")
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestList() {
	s.mock.ExpectSMembers("encounters").SetVal([]string{"enc-1"})
	s.mock.ExpectGet("encounter:enc-1").SetVal(s.encoded(s.encounter()))

	all, err := s.repo.List(context.Background())
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal("Goblin Ambush", all[0].Name)
}

func (s *RedisRepoTestSuite) TestList_SkipsStaleIndex() {
	s.mock.ExpectSMembers("encounters").SetVal([]string{"gone"})
	s.mock.ExpectGet("encounter:gone").RedisNil()

	all, err := s.repo.List(context.Background())
	s.Require().NoError(err)
	s.Empty(all)
}
