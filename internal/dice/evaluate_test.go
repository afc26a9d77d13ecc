package dice

import (
	"testing"

	"github.com/KirkDiggler/scribbler/internal/dice/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EvaluateTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *mocks.MockRoller
}

func (s *EvaluateTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = mocks.NewMockRoller(s.mockCtrl)
}

func (s *EvaluateTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEvaluateTestSuite(t *testing.T) {
	suite.Run(t, new(EvaluateTestSuite))
}

func (s *EvaluateTestSuite) expectRolls(sides int, values ...int) {
	calls := make([]any, len(values))
	for i, value := range values {
		calls[i] = s.mockRoller.EXPECT().Roll(sides).Return(value)
	}
	gomock.InOrder(calls...)
}

func (s *EvaluateTestSuite) TestNormalSumsDiceAndModifier() {
	s.expectRolls(6, 4, 5)

	outcome := Evaluate(s.mockRoller, Spec{Count: 2, Sides: 6, Modifier: 3}, ModeNormal)

	s.Equal(ModeNormal, outcome.Mode)
	s.Equal([]int{4, 5}, outcome.Rolls)
	s.Equal(9, outcome.Sum)
	s.Equal(12, outcome.Total)
	s.Nil(outcome.Advantage)
	s.False(outcome.Ignored())
	s.Equal("2d6+3: [4, 5] +3 = 12", outcome.Description)
}

func (s *EvaluateTestSuite) TestEmptyModeIsNormal() {
	s.expectRolls(20, 11)

	outcome := Evaluate(s.mockRoller, DefaultSpec(), "")

	s.Equal(ModeNormal, outcome.RequestedMode)
	s.Equal(11, outcome.Total)
}

func (s *EvaluateTestSuite) TestUnknownModeIsNormal() {
	s.expectRolls(6, 2, 3)

	outcome := Evaluate(s.mockRoller, Spec{Count: 2, Sides: 6}, Mode("sideways"))

	s.Equal(ModeNormal, outcome.RequestedMode)
	s.Equal(ModeNormal, outcome.Mode)
	s.False(outcome.Ignored())
	s.Equal("2d6: [2, 3] = 5", outcome.Description)
}

func (s *EvaluateTestSuite) TestAdvantageKeepsHigher() {
	s.expectRolls(20, 4, 17)

	outcome := Evaluate(s.mockRoller, Spec{Count: 1, Sides: 20, Modifier: 2}, ModeAdvantage)

	s.Equal(ModeAdvantage, outcome.Mode)
	s.Require().NotNil(outcome.Advantage)
	s.Equal(4, outcome.Advantage.FirstRoll)
	s.Equal(17, outcome.Advantage.SecondRoll)
	s.Equal(17, outcome.Advantage.ChosenRoll)
	s.Equal(4, outcome.Advantage.DiscardedRoll)
	s.Equal(19, outcome.Advantage.Total)
	s.Equal(19, outcome.Total)
	s.Equal("1d20+2 with advantage: [4, 17*] +2 = 19", outcome.Description)
}

func (s *EvaluateTestSuite) TestDisadvantageKeepsLower() {
	s.expectRolls(20, 15, 3)

	outcome := Evaluate(s.mockRoller, Spec{Count: 1, Sides: 20, Modifier: -1}, ModeDisadvantage)

	s.Equal(ModeDisadvantage, outcome.Mode)
	s.Require().NotNil(outcome.Advantage)
	s.Equal(3, outcome.Advantage.ChosenRoll)
	s.Equal(15, outcome.Advantage.DiscardedRoll)
	s.Equal(2, outcome.Total)
	s.Equal("1d20-1 with disadvantage: [15, 3*] -1 = 2", outcome.Description)
}

func (s *EvaluateTestSuite) TestAdvantageTieMarksFirstDie() {
	s.expectRolls(20, 9, 9)

	outcome := Evaluate(s.mockRoller, DefaultSpec(), ModeAdvantage)

	s.Equal(9, outcome.Total)
	s.Equal("1d20 with advantage: [9*, 9] = 9", outcome.Description)
}

func (s *EvaluateTestSuite) TestAdvantageFallsBackToNormal() {
	s.expectRolls(6, 2, 6)

	outcome := Evaluate(s.mockRoller, Spec{Count: 2, Sides: 6}, ModeAdvantage)

	s.Equal(ModeAdvantage, outcome.RequestedMode)
	s.Equal(ModeNormal, outcome.Mode)
	s.True(outcome.Ignored())
	s.Nil(outcome.Advantage)
	s.Equal([]int{2, 6}, outcome.Rolls)
	s.Equal(8, outcome.Total)
	s.Contains(outcome.Description, "advantage ignored")
}

func (s *EvaluateTestSuite) TestDisadvantageOnTwoD20FallsBackToNormal() {
	s.expectRolls(20, 12, 8)

	outcome := Evaluate(s.mockRoller, Spec{Count: 2, Sides: 20, Modifier: 1}, ModeDisadvantage)

	s.Equal(ModeNormal, outcome.Mode)
	s.Equal(21, outcome.Total)
}

func (s *EvaluateTestSuite) TestInvalidSpecRollsNothing() {
	outcome := Evaluate(s.mockRoller, Parse("d0"), ModeNormal)

	s.Empty(outcome.Rolls)
	s.Equal(0, outcome.Total)
}

func TestEvaluateEndToEnd(t *testing.T) {
	roller := New(nil)

	outcome := Evaluate(roller, Parse("4d8"), ModeNormal)
	require.Len(t, outcome.Rolls, 4)
	sum := 0
	for _, value := range outcome.Rolls {
		assert.True(t, value >= 1 && value <= 8)
		sum += value
	}
	assert.Equal(t, sum, outcome.Total)

	outcome = Evaluate(roller, Parse("1d20"), ModeAdvantage)
	require.NotNil(t, outcome.Advantage)
	assert.Len(t, outcome.Rolls, 2)
	assert.Equal(t, max(outcome.Advantage.FirstRoll, outcome.Advantage.SecondRoll), outcome.Advantage.ChosenRoll)
	assert.Equal(t, min(outcome.Advantage.FirstRoll, outcome.Advantage.SecondRoll), outcome.Advantage.DiscardedRoll)
	assert.Equal(t, outcome.Advantage.ChosenRoll, outcome.Total)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeAdvantage, ParseMode("Advantage"))
	assert.Equal(t, ModeAdvantage, ParseMode(" adv "))
	assert.Equal(t, ModeDisadvantage, ParseMode("DIS"))
	assert.Equal(t, ModeNormal, ParseMode(""))
	assert.Equal(t, ModeNormal, ParseMode("sideways"))
}
