package roll_log

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/scribbler/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newEntry(scopeID string, i int) *models.RollLogEntry {
	return &models.RollLogEntry{
		ID:            fmt.Sprintf("entry-%d", i),
		ScopeID:       scopeID,
		RollerID:      "roller-id",
		RollerName:    "Roller",
		Notation:      "2d6+3",
		RequestedMode: "normal",
		Mode:          "normal",
		Rolls:         []int{4, 5},
		Modifier:      3,
		Total:         12,
		Description:   "2d6+3: [4, 5] +3 = 12",
		Timestamp:     s.testNow.Add(time.Duration(i) * time.Second),
	}
}

func (s *RedisRepositoryTestSuite) TestAddAndListEntry() {
	entry := s.newEntry("channel-1", 1)

	err := s.repo.AddEntry(s.ctx, &AddEntryInput{Entry: entry})
	s.Require().NoError(err)

	output, err := s.repo.ListEntries(s.ctx, &ListEntriesInput{ScopeID: "channel-1"})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 1)

	got := output.Entries[0]
	s.Equal("entry-1", got.ID)
	s.Equal("channel-1", got.ScopeID)
	s.Equal("Roller", got.RollerName)
	s.Equal("2d6+3", got.Notation)
	s.Equal([]int{4, 5}, got.Rolls)
	s.Equal(3, got.Modifier)
	s.Equal(12, got.Total)
	s.Equal(entry.Timestamp.Unix(), got.Timestamp.Unix())
}

func (s *RedisRepositoryTestSuite) TestListEntriesNewestFirst() {
	for i := 1; i <= 3; i++ {
		s.Require().NoError(s.repo.AddEntry(s.ctx, &AddEntryInput{Entry: s.newEntry("channel-1", i)}))
	}

	output, err := s.repo.ListEntries(s.ctx, &ListEntriesInput{ScopeID: "channel-1"})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 3)
	s.Equal("entry-3", output.Entries[0].ID)
	s.Equal("entry-2", output.Entries[1].ID)
	s.Equal("entry-1", output.Entries[2].ID)
}

func (s *RedisRepositoryTestSuite) TestLogIsCappedAtMaxEntries() {
	for i := 1; i <= MaxEntries+10; i++ {
		s.Require().NoError(s.repo.AddEntry(s.ctx, &AddEntryInput{Entry: s.newEntry("channel-1", i)}))
	}

	output, err := s.repo.ListEntries(s.ctx, &ListEntriesInput{ScopeID: "channel-1"})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, MaxEntries)
	s.Equal(fmt.Sprintf("entry-%d", MaxEntries+10), output.Entries[0].ID)
	s.Equal("entry-11", output.Entries[MaxEntries-1].ID)
}

func (s *RedisRepositoryTestSuite) TestListEntriesLimit() {
	for i := 1; i <= 5; i++ {
		s.Require().NoError(s.repo.AddEntry(s.ctx, &AddEntryInput{Entry: s.newEntry("channel-1", i)}))
	}

	output, err := s.repo.ListEntries(s.ctx, &ListEntriesInput{ScopeID: "channel-1", Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 2)
	s.Equal("entry-5", output.Entries[0].ID)
	s.Equal("entry-4", output.Entries[1].ID)
}

func (s *RedisRepositoryTestSuite) TestScopesAreIsolated() {
	s.Require().NoError(s.repo.AddEntry(s.ctx, &AddEntryInput{Entry: s.newEntry("channel-1", 1)}))
	s.Require().NoError(s.repo.AddEntry(s.ctx, &AddEntryInput{Entry: s.newEntry("channel-2", 2)}))

	output, err := s.repo.ListEntries(s.ctx, &ListEntriesInput{ScopeID: "channel-2"})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 1)
	s.Equal("entry-2", output.Entries[0].ID)
}

func (s *RedisRepositoryTestSuite) TestListEmptyScope() {
	output, err := s.repo.ListEntries(s.ctx, &ListEntriesInput{ScopeID: "nobody-rolled"})
	s.Require().NoError(err)
	s.Empty(output.Entries)
}

func (s *RedisRepositoryTestSuite) TestClearEntries() {
	s.Require().NoError(s.repo.AddEntry(s.ctx, &AddEntryInput{Entry: s.newEntry("channel-1", 1)}))
	s.Require().NoError(s.repo.AddEntry(s.ctx, &AddEntryInput{Entry: s.newEntry("channel-2", 2)}))

	err := s.repo.ClearEntries(s.ctx, &ClearEntriesInput{ScopeID: "channel-1"})
	s.Require().NoError(err)

	output, err := s.repo.ListEntries(s.ctx, &ListEntriesInput{ScopeID: "channel-1"})
	s.Require().NoError(err)
	s.Empty(output.Entries)

	output, err = s.repo.ListEntries(s.ctx, &ListEntriesInput{ScopeID: "channel-2"})
	s.Require().NoError(err)
	s.Len(output.Entries, 1)
}

func (s *RedisRepositoryTestSuite) TestInvalidInput() {
	s.Error(s.repo.AddEntry(s.ctx, nil))
	s.Error(s.repo.AddEntry(s.ctx, &AddEntryInput{}))
	s.Error(s.repo.AddEntry(s.ctx, &AddEntryInput{Entry: &models.RollLogEntry{ScopeID: "channel-1"}}))
	s.Error(s.repo.AddEntry(s.ctx, &AddEntryInput{Entry: &models.RollLogEntry{ID: "entry-1"}}))

	_, err := s.repo.ListEntries(s.ctx, &ListEntriesInput{})
	s.Error(err)

	s.Error(s.repo.ClearEntries(s.ctx, nil))
}

func TestNewRedisValidatesConfig(t *testing.T) {
	_, err := NewRedis(nil)
	if err == nil {
		t.Fatal("expected error for nil config")
	}

	_, err = NewRedis(&Config{})
	if err == nil {
		t.Fatal("expected error for nil client")
	}
}
