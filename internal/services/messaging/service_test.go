package messaging

import (
	"context"
	"fmt"
	"testing"

	"github.com/KirkDiggler/scribbler/internal/dice"
	diceMocks "github.com/KirkDiggler/scribbler/internal/dice/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *diceMocks.MockRoller
	service    Service
	ctx        context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := NewService(&ServiceConfig{DiceRoller: s.mockRoller})
	s.Require().NoError(err)
	s.service = svc
}

func (s *MessagingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestCategories() {
	testCases := []struct {
		name     string
		outcome  *dice.Outcome
		expected ResultCategory
	}{
		{
			name:     "natural 20",
			outcome:  &dice.Outcome{Spec: dice.Spec{Count: 1, Sides: 20, Modifier: 3}, Rolls: []int{20}, Sum: 20, Total: 23},
			expected: CategoryCritical,
		},
		{
			name:     "natural 1",
			outcome:  &dice.Outcome{Spec: dice.DefaultSpec(), Rolls: []int{1}, Sum: 1, Total: 1},
			expected: CategoryFumble,
		},
		{
			name: "discarded 20 under disadvantage",
			outcome: &dice.Outcome{
				Spec:      dice.DefaultSpec(),
				Mode:      dice.ModeDisadvantage,
				Rolls:     []int{20, 7},
				Sum:       7,
				Total:     7,
				Advantage: &dice.AdvantageOutcome{FirstRoll: 20, SecondRoll: 7, ChosenRoll: 7, DiscardedRoll: 20, Total: 7},
			},
			expected: CategoryOrdinary,
		},
		{
			name:     "all sixes",
			outcome:  &dice.Outcome{Spec: dice.Spec{Count: 2, Sides: 6}, Rolls: []int{6, 6}, Sum: 12, Total: 12},
			expected: CategoryMaximum,
		},
		{
			name:     "all ones",
			outcome:  &dice.Outcome{Spec: dice.Spec{Count: 3, Sides: 8}, Rolls: []int{1, 1, 1}, Sum: 3, Total: 3},
			expected: CategoryMinimum,
		},
		{
			name:     "ordinary pool",
			outcome:  &dice.Outcome{Spec: dice.Spec{Count: 2, Sides: 6}, Rolls: []int{2, 5}, Sum: 7, Total: 7},
			expected: CategoryOrdinary,
		},
		{
			name:     "one sided die",
			outcome:  &dice.Outcome{Spec: dice.Spec{Count: 2, Sides: 1}, Rolls: []int{1, 1}, Sum: 2, Total: 2},
			expected: CategoryOrdinary,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockRoller.EXPECT().Roll(len(rollResultMessages[tc.expected])).Return(1)

			output, err := s.service.GetRollResultMessage(s.ctx, &GetRollResultMessageInput{
				RollerName: "Alice",
				Outcome:    tc.outcome,
			})
			s.Require().NoError(err)
			s.Equal(tc.expected, output.Category)
			s.Equal(fmt.Sprintf(rollResultMessages[tc.expected][0], "Alice"), output.Message)
		})
	}
}

func (s *MessagingServiceTestSuite) TestPicksWithRoller() {
	messages := rollResultMessages[CategoryOrdinary]
	s.mockRoller.EXPECT().Roll(len(messages)).Return(len(messages))

	output, err := s.service.GetRollResultMessage(s.ctx, &GetRollResultMessageInput{
		Outcome: &dice.Outcome{Spec: dice.Spec{Count: 2, Sides: 6}, Rolls: []int{2, 5}, Sum: 7},
	})
	s.Require().NoError(err)
	s.Equal(fmt.Sprintf(messages[len(messages)-1], "adventurer"), output.Message)
}

func (s *MessagingServiceTestSuite) TestNilInput() {
	_, err := s.service.GetRollResultMessage(s.ctx, nil)
	s.Error(err)

	_, err = s.service.GetRollResultMessage(s.ctx, &GetRollResultMessageInput{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestMessagesTakeOneName() {
	for category, messages := range rollResultMessages {
		for _, message := range messages {
			formatted := fmt.Sprintf(message, "Alice")
			s.Contains(formatted, "Alice", "category %s", category)
			s.NotContains(formatted, "%!", "category %s", category)
		}
	}
}

func TestNewServiceValidatesConfig(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
	if _, err := NewService(&ServiceConfig{}); err == nil {
		t.Fatal("expected error for nil dice roller")
	}
}
