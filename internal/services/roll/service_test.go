package roll_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/dnd-dice-bot/internal/clients/dnd5e"
	mockdnd5e "github.com/KirkDiggler/dnd-dice-bot/internal/clients/dnd5e/mock"
	mockdice "github.com/KirkDiggler/dnd-dice-bot/internal/dice/mock"
	"github.com/KirkDiggler/dnd-dice-bot/internal/entities"
	dnderr "github.com/KirkDiggler/dnd-dice-bot/internal/errors"
	"github.com/KirkDiggler/dnd-dice-bot/internal/formula"
	mockrepo "github.com/KirkDiggler/dnd-dice-bot/internal/repositories/characters/mock"
	"github.com/KirkDiggler/dnd-dice-bot/internal/services/roll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type RollServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	ctrl           *gomock.Controller
	mockRepository *mockrepo.MockRepository
	mockDNDClient  *mockdnd5e.MockClient
	roller         *mockdice.ManualMockRoller
	logs           *observer.ObservedLogs
	service        roll.Service
}

func (s *RollServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockRepository = mockrepo.NewMockRepository(s.ctrl)
	s.mockDNDClient = mockdnd5e.NewMockClient(s.ctrl)
	s.roller = mockdice.NewManualMockRoller()

	core, logs := observer.New(zapcore.DebugLevel)
	s.logs = logs

	s.service = roll.NewService(&roll.ServiceConfig{
		Repository: s.mockRepository,
		DNDClient:  s.mockDNDClient,
		Roller:     s.roller,
		Logger:     zap.New(core),
	})
}

func (s *RollServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRollServiceSuite(t *testing.T) {
	suite.Run(t, new(RollServiceTestSuite))
}

func tall() *entities.Character {
	return &entities.Character{
		ID:      "char-1",
		OwnerID: "user-1",
		Name:    "Tall",
		Active:  true,
		Attributes: []*entities.Attribute{
			entities.NewAttribute("Dexterity", "DEX", 20),
			entities.NewAttribute("Constitution", "CON", 14),
		},
		Throws: []*entities.Throw{
			{Name: "MyThrow", Formula: "1d20 + $DEX"},
		},
	}
}

func (s *RollServiceTestSuite) TestRoll_AsActiveCharacter() {
	s.mockRepository.EXPECT().GetActiveByOwner(s.ctx, "user-1").Return(tall(), nil)
	s.roller.SetNextRoll(11)

	out, err := s.service.Roll(s.ctx, &roll.RollInput{UserID: "user-1", DisplayName: "kirk", Formula: "d20 $DEX Stealth"})
	s.Require().NoError(err)

	s.Equal("d20 $DEX Stealth", out.Formula)
	s.Equal(16, out.Outcome.Result)
	s.Equal("Tall", out.Outcome.DisplayName)
	s.Equal("Stealth", out.Outcome.Description)
	s.Equal(1, s.logs.FilterMessage("formula rolled").Len())
}

func (s *RollServiceTestSuite) TestRoll_WithoutCharacter() {
	s.mockRepository.EXPECT().GetActiveByOwner(s.ctx, "user-1").
		Return(nil, dnderr.NotFound("owner 'user-1' has no active character"))
	s.roller.SetNextRoll(11)

	out, err := s.service.Roll(s.ctx, &roll.RollInput{UserID: "user-1", DisplayName: "kirk", Formula: "d20 $DEX"})
	s.Require().NoError(err)

	s.Equal(11, out.Outcome.Result)
	s.Equal("kirk", out.Outcome.DisplayName)
	s.Contains(out.Outcome.Log, "DEX: *no modifier*")
	s.Zero(s.logs.FilterMessage("rolling without character").Len())
}

func (s *RollServiceTestSuite) TestRoll_StoreFailureStillRolls() {
	s.mockRepository.EXPECT().GetActiveByOwner(s.ctx, "user-1").Return(nil, errors.New("redis down"))
	s.roller.SetNextRoll(4)

	out, err := s.service.Roll(s.ctx, &roll.RollInput{UserID: "user-1", DisplayName: "kirk", Formula: "d6"})
	s.Require().NoError(err)
	s.Equal(4, out.Outcome.Result)
	s.Equal(1, s.logs.FilterMessage("rolling without character").Len())
}

func (s *RollServiceTestSuite) TestRoll_InvalidFormula() {
	s.mockRepository.EXPECT().GetActiveByOwner(s.ctx, "user-1").Return(tall(), nil)

	_, err := s.service.Roll(s.ctx, &roll.RollInput{UserID: "user-1", Formula: "hello there"})
	s.ErrorIs(err, formula.ErrInvalidFormula)
	s.True(dnderr.IsValidation(err))
}

func (s *RollServiceTestSuite) TestRollThrow() {
	s.mockRepository.EXPECT().GetActiveByOwner(s.ctx, "user-1").Return(tall(), nil)
	s.roller.SetNextRoll(20)

	out, err := s.service.RollThrow(s.ctx, &roll.RollThrowInput{UserID: "user-1", Name: "MyThrow"})
	s.Require().NoError(err)
	s.Equal("1d20 + $DEX", out.Formula)
	s.Equal(25, out.Outcome.Result)
	s.Contains(out.Outcome.Log, "⚡**20!**")
}

func (s *RollServiceTestSuite) TestRollThrow_Unknown() {
	s.mockRepository.EXPECT().GetActiveByOwner(s.ctx, "user-1").Return(tall(), nil)

	_, err := s.service.RollThrow(s.ctx, &roll.RollThrowInput{UserID: "user-1", Name: "Nope"})
	s.True(dnderr.IsNotFound(err))
}

func (s *RollServiceTestSuite) TestRollThrow_NoCharacter() {
	s.mockRepository.EXPECT().GetActiveByOwner(s.ctx, "user-1").
		Return(nil, dnderr.NotFound("owner 'user-1' has no active character"))

	_, err := s.service.RollThrow(s.ctx, &roll.RollThrowInput{UserID: "user-1", Name: "MyThrow"})
	s.True(dnderr.IsNotFound(err))
}

func (s *RollServiceTestSuite) TestRollHitDie_AddsConstitution() {
	s.mockDNDClient.EXPECT().GetClass("fighter").Return(&dnd5e.Class{Key: "fighter", Name: "Fighter", HitDie: 10}, nil)
	s.mockRepository.EXPECT().GetActiveByOwner(s.ctx, "user-1").Return(tall(), nil)
	s.roller.SetNextRoll(7)

	out, err := s.service.RollHitDie(s.ctx, &roll.RollHitDieInput{UserID: "user-1", ClassKey: "fighter"})
	s.Require().NoError(err)
	s.Equal("1d10 &Constitution Fighter", out.Formula)
	s.Equal(9, out.Outcome.Result)
	s.Equal("Fighter", out.Outcome.Description)
}

func (s *RollServiceTestSuite) TestRollHitDie_WithoutCharacter() {
	s.mockDNDClient.EXPECT().GetClass("blood-hunter").
		Return(&dnd5e.Class{Key: "blood-hunter", Name: "Blood Hunter", HitDie: 10}, nil)
	s.mockRepository.EXPECT().GetActiveByOwner(s.ctx, "user-1").
		Return(nil, dnderr.NotFound("owner 'user-1' has no active character"))
	s.roller.SetNextRoll(3)

	out, err := s.service.RollHitDie(s.ctx, &roll.RollHitDieInput{UserID: "user-1", ClassKey: "blood-hunter"})
	s.Require().NoError(err)
	s.Equal("1d10 Blood_Hunter", out.Formula)
	s.Equal(3, out.Outcome.Result)
}

func (s *RollServiceTestSuite) TestRollHitDie_UnknownClass() {
	s.mockDNDClient.EXPECT().GetClass("bard-ish").Return(nil, dnderr.NotFound("class 'bard-ish' not found"))

	_, err := s.service.RollHitDie(s.ctx, &roll.RollHitDieInput{UserID: "user-1", ClassKey: "bard-ish"})
	s.True(dnderr.IsNotFound(err))
}

func TestShortcut(t *testing.T) {
	assert.Equal(t, "d20", roll.Shortcut(20, ""))
	assert.Equal(t, "d20 + 5 Attack", roll.Shortcut(20, "+ 5 Attack"))
	assert.Equal(t, "d6 2d6", roll.Shortcut(6, " 2d6 "))
}
