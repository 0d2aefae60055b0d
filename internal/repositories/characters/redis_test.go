package characters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/dnd-dice-bot/internal/entities"
	dnderr "github.com/KirkDiggler/dnd-dice-bot/internal/errors"
	mockcharacters "github.com/KirkDiggler/dnd-dice-bot/internal/repositories/characters/mock"
	mockUUID "github.com/KirkDiggler/dnd-dice-bot/internal/uuid/mocks"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedisMockTestSuite struct {
	suite.Suite
	ctx           context.Context
	mockCtrl      *gomock.Controller
	redisMock     redismock.ClientMock
	uuidGenerator *mockUUID.MockGenerator
	clock         *mockcharacters.MockTimeProvider
	now           time.Time
	repo          *redisRepo
}

func (s *RedisMockTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.uuidGenerator = mockUUID.NewMockGenerator(s.mockCtrl)
	s.clock = mockcharacters.NewMockTimeProvider(s.mockCtrl)
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	client, mock := redismock.NewClientMock()
	s.redisMock = mock
	s.repo = &redisRepo{
		client:        client,
		uuidGenerator: s.uuidGenerator,
		timeProvider:  s.clock,
	}
}

func (s *RedisMockTestSuite) TearDownTest() {
	s.NoError(s.redisMock.ExpectationsWereMet())
	s.mockCtrl.Finish()
}

func TestRedisMockTestSuite(t *testing.T) {
	suite.Run(t, new(RedisMockTestSuite))
}

func (s *RedisMockTestSuite) createTestCharacter() *entities.Character {
	return &entities.Character{
		ID:      "char-1",
		OwnerID: "owner-1",
		Name:    "Tall",
		Active:  true,
		Attributes: []*entities.Attribute{
			entities.NewAttribute("Dexterity", "DEX", 20),
		},
		Throws: []*entities.Throw{
			{Name: "MyThrow", Formula: "1d20 + $DEX"},
		},
	}
}

func (s *RedisMockTestSuite) encode(char *entities.Character) []byte {
	data, err := json.Marshal(toCharacterData(char))
	s.Require().NoError(err)
	return data
}

func (s *RedisMockTestSuite) TestCreate_HappyPath() {
	char := s.createTestCharacter()
	s.clock.EXPECT().Now().Return(s.now)

	expected := char.Clone()
	expected.CreatedAt = s.now
	expected.UpdatedAt = s.now

	s.redisMock.ExpectExists("character:char-1").SetVal(0)
	s.redisMock.ExpectSet("character:char-1", s.encode(expected), 0).SetVal("OK")
	s.redisMock.ExpectSAdd("owner:owner-1:characters", "char-1").SetVal(1)

	s.Require().NoError(s.repo.Create(s.ctx, char))
	s.Equal(s.now, char.CreatedAt)
}

func (s *RedisMockTestSuite) TestCreate_GeneratesID() {
	char := s.createTestCharacter()
	char.ID = ""
	s.uuidGenerator.EXPECT().New().Return("generated-id")
	s.clock.EXPECT().Now().Return(s.now)

	expected := char.Clone()
	expected.ID = "generated-id"
	expected.CreatedAt = s.now
	expected.UpdatedAt = s.now

	s.redisMock.ExpectExists("character:generated-id").SetVal(0)
	s.redisMock.ExpectSet("character:generated-id", s.encode(expected), 0).SetVal("OK")
	s.redisMock.ExpectSAdd("owner:owner-1:characters", "generated-id").SetVal(1)

	s.Require().NoError(s.repo.Create(s.ctx, char))
	s.Equal("generated-id", char.ID)
}

func (s *RedisMockTestSuite) TestCreate_AlreadyExists() {
	s.redisMock.ExpectExists("character:char-1").SetVal(1)

	err := s.repo.Create(s.ctx, s.createTestCharacter())
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *RedisMockTestSuite) TestCreate_RedisDown() {
	s.redisMock.ExpectExists("character:char-1").SetErr(errors.New("connection refused"))

	err := s.repo.Create(s.ctx, s.createTestCharacter())
	s.Equal(dnderr.CodeUnavailable, dnderr.GetCode(err))
}

func (s *RedisMockTestSuite) TestCreate_Validation() {
	s.True(dnderr.IsInvalidArgument(s.repo.Create(s.ctx, nil)))
	s.True(dnderr.IsInvalidArgument(s.repo.Create(s.ctx, &entities.Character{Name: "Tall"})))
	s.True(dnderr.IsInvalidArgument(s.repo.Create(s.ctx, &entities.Character{OwnerID: "owner-1"})))
}

func (s *RedisMockTestSuite) TestGet_HappyPath() {
	char := s.createTestCharacter()
	char.CreatedAt = s.now
	char.UpdatedAt = s.now
	s.redisMock.ExpectGet("character:char-1").SetVal(string(s.encode(char)))

	got, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal(char, got)
}

func (s *RedisMockTestSuite) TestGet_NotFound() {
	s.redisMock.ExpectGet("character:missing").RedisNil()

	_, err := s.repo.Get(s.ctx, "missing")
	s.True(dnderr.IsNotFound(err))
	s.Equal("missing", dnderr.GetMeta(err)["character_id"])
}

func (s *RedisMockTestSuite) TestGetByOwner_SortsAndSkipsVanished() {
	zed := &entities.Character{ID: "c-2", OwnerID: "owner-1", Name: "Zed"}
	alice := &entities.Character{ID: "c-1", OwnerID: "owner-1", Name: "Alice", Active: true}

	s.redisMock.ExpectSMembers("owner:owner-1:characters").SetVal([]string{"c-2", "c-gone", "c-1"})
	s.redisMock.ExpectMGet("character:c-2", "character:c-gone", "character:c-1").
		SetVal([]interface{}{string(s.encode(zed)), nil, string(s.encode(alice))})

	chars, err := s.repo.GetByOwner(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.Require().Len(chars, 2)
	s.Equal("Alice", chars[0].Name)
	s.Equal("Zed", chars[1].Name)
}

func (s *RedisMockTestSuite) TestGetByOwner_Empty() {
	s.redisMock.ExpectSMembers("owner:owner-1:characters").SetVal([]string{})

	chars, err := s.repo.GetByOwner(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.Empty(chars)
}

func (s *RedisMockTestSuite) TestGetActiveByOwner_NoneActive() {
	idle := &entities.Character{ID: "c-1", OwnerID: "owner-1", Name: "Idle"}

	s.redisMock.ExpectSMembers("owner:owner-1:characters").SetVal([]string{"c-1"})
	s.redisMock.ExpectMGet("character:c-1").SetVal([]interface{}{string(s.encode(idle))})

	_, err := s.repo.GetActiveByOwner(s.ctx, "owner-1")
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisMockTestSuite) TestUpdate_PreservesCreatedAt() {
	created := s.now.Add(-time.Hour)
	stored := s.createTestCharacter()
	stored.CreatedAt = created
	stored.UpdatedAt = created

	updated := s.createTestCharacter()
	updated.Active = false
	s.clock.EXPECT().Now().Return(s.now)

	expected := updated.Clone()
	expected.CreatedAt = created
	expected.UpdatedAt = s.now

	s.redisMock.ExpectGet("character:char-1").SetVal(string(s.encode(stored)))
	s.redisMock.ExpectSet("character:char-1", s.encode(expected), 0).SetVal("OK")

	s.Require().NoError(s.repo.Update(s.ctx, updated))
	s.Equal(created, updated.CreatedAt)
}

func (s *RedisMockTestSuite) TestUpdate_MovesOwnerIndex() {
	stored := s.createTestCharacter()
	updated := s.createTestCharacter()
	updated.OwnerID = "owner-2"
	s.clock.EXPECT().Now().Return(s.now)

	expected := updated.Clone()
	expected.UpdatedAt = s.now

	s.redisMock.ExpectGet("character:char-1").SetVal(string(s.encode(stored)))
	s.redisMock.ExpectSet("character:char-1", s.encode(expected), 0).SetVal("OK")
	s.redisMock.ExpectSRem("owner:owner-1:characters", "char-1").SetVal(1)
	s.redisMock.ExpectSAdd("owner:owner-2:characters", "char-1").SetVal(1)

	s.Require().NoError(s.repo.Update(s.ctx, updated))
}

func (s *RedisMockTestSuite) TestUpdate_NotFound() {
	s.redisMock.ExpectGet("character:char-1").RedisNil()

	err := s.repo.Update(s.ctx, s.createTestCharacter())
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisMockTestSuite) TestDelete() {
	stored := s.createTestCharacter()

	s.redisMock.ExpectGet("character:char-1").SetVal(string(s.encode(stored)))
	s.redisMock.ExpectDel("character:char-1").SetVal(1)
	s.redisMock.ExpectSRem("owner:owner-1:characters", "char-1").SetVal(1)

	s.Require().NoError(s.repo.Delete(s.ctx, "char-1"))
}
