package services_test

import (
	"context"
	"testing"

	"github.com/mnjscf/team_ops_app/internal/apperrors"
	"github.com/mnjscf/team_ops_app/internal/core/domain"
	"github.com/mnjscf/team_ops_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAnalysisProvider struct {
	mock.Mock
}

func (m *MockAnalysisProvider) Summarize(ctx context.Context, sample []domain.WorkLogEntry) (domain.AnalysisResult, error) {
	args := m.Called(ctx, sample)
	return args.Get(0).(domain.AnalysisResult), args.Error(1)
}

// blockingProvider parks Summarize until released, so a second Run can be
// attempted while the first is in flight.
type blockingProvider struct {
	started chan struct{}
	release chan struct{}
}

func (p *blockingProvider) Summarize(ctx context.Context, sample []domain.WorkLogEntry) (domain.AnalysisResult, error) {
	close(p.started)
	<-p.release
	return domain.AnalysisResult{Summary: "done"}, nil
}

func makeEntries(n int) []domain.WorkLogEntry {
	entries := make([]domain.WorkLogEntry, n)
	for i := range entries {
		entries[i] = domain.WorkLogEntry{EntryID: string(rune('a' + i))}
	}
	return entries
}

func TestAnalysisService_RunStoresProviderResult(t *testing.T) {
	ctx := context.Background()
	admin := domain.User{UserID: "me", Role: domain.RoleAdmin}

	reader := new(MockWorkLogReader)
	entries := makeEntries(3)
	reader.On("ListVisible", ctx, admin).Return(entries, nil).Once()

	expected := domain.AnalysisResult{
		Summary:          "Steady throughput",
		ProductivityGaps: []string{"Blog cadence dipped"},
		Recommendations:  []string{"Rebalance telecalling shifts"},
	}
	provider := new(MockAnalysisProvider)
	provider.On("Summarize", ctx, entries).Return(expected, nil).Once()

	svc := services.NewAnalysisService(reader, provider)
	require.Nil(t, svc.Last())

	result, err := svc.Run(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, expected, *result)
	assert.Equal(t, expected, *svc.Last())

	provider.AssertExpectations(t)
	reader.AssertExpectations(t)
}

func TestAnalysisService_SampleCappedAtMostRecent(t *testing.T) {
	ctx := context.Background()
	admin := domain.User{UserID: "me", Role: domain.RoleAdmin}

	// The reader returns most-recent-first, so the cap keeps the newest 15.
	entries := makeEntries(20)
	reader := new(MockWorkLogReader)
	reader.On("ListVisible", ctx, admin).Return(entries, nil).Once()

	provider := new(MockAnalysisProvider)
	provider.On("Summarize", ctx, mock.MatchedBy(func(sample []domain.WorkLogEntry) bool {
		return len(sample) == 15 && sample[0].EntryID == entries[0].EntryID
	})).Return(domain.AnalysisResult{Summary: "ok"}, nil).Once()

	svc := services.NewAnalysisService(reader, provider)
	_, err := svc.Run(ctx, admin)
	require.NoError(t, err)
	provider.AssertExpectations(t)
}

func TestAnalysisService_NilProviderYieldsFallback(t *testing.T) {
	ctx := context.Background()
	admin := domain.User{UserID: "me", Role: domain.RoleAdmin}

	reader := new(MockWorkLogReader)
	reader.On("ListVisible", ctx, admin).Return(makeEntries(2), nil).Once()

	svc := services.NewAnalysisService(reader, nil)
	result, err := svc.Run(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.FallbackAnalysisResult(), *result)
	// The fallback still counts as the latest completed run.
	assert.Equal(t, domain.FallbackAnalysisResult(), *svc.Last())
}

func TestAnalysisService_ProviderErrorDegradesToFallback(t *testing.T) {
	ctx := context.Background()
	admin := domain.User{UserID: "me", Role: domain.RoleAdmin}

	reader := new(MockWorkLogReader)
	reader.On("ListVisible", ctx, admin).Return(makeEntries(1), nil).Once()

	provider := new(MockAnalysisProvider)
	provider.On("Summarize", ctx, mock.Anything).
		Return(domain.FallbackAnalysisResult(), assert.AnError).Once()

	svc := services.NewAnalysisService(reader, provider)
	result, err := svc.Run(ctx, admin)
	// The degradation is logged, never surfaced.
	require.NoError(t, err)
	assert.Equal(t, domain.FallbackAnalysisResult(), *result)
}

func TestAnalysisService_RejectsConcurrentRun(t *testing.T) {
	ctx := context.Background()
	admin := domain.User{UserID: "me", Role: domain.RoleAdmin}

	reader := new(MockWorkLogReader)
	reader.On("ListVisible", ctx, admin).Return(makeEntries(1), nil)

	provider := &blockingProvider{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := services.NewAnalysisService(reader, provider)

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Run(ctx, admin)
		firstDone <- err
	}()

	<-provider.started
	_, err := svc.Run(ctx, admin)
	assert.ErrorIs(t, err, apperrors.ErrAnalysisRunning)

	close(provider.release)
	require.NoError(t, <-firstDone)

	// The rejected attempt must not have clobbered the stored result.
	assert.Equal(t, "done", svc.Last().Summary)
}
