package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/spitfire8790/learn2code/internal/domain/progress"
)

// ProgressRepository is a mock for progress.Repository.
type ProgressRepository struct {
	mock.Mock
}

func (m *ProgressRepository) Load(ctx context.Context) (*progress.Record, error) {
	args := m.Called(ctx)
	if rec, ok := args.Get(0).(*progress.Record); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProgressRepository) Save(ctx context.Context, rec *progress.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

// ProgressEventLog is a mock for progress.EventLog.
type ProgressEventLog struct {
	mock.Mock
}

func (m *ProgressEventLog) Append(ctx context.Context, event progress.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *ProgressEventLog) Recent(ctx context.Context, limit int) ([]progress.Event, error) {
	args := m.Called(ctx, limit)
	if events, ok := args.Get(0).([]progress.Event); ok {
		return events, args.Error(1)
	}
	return nil, args.Error(1)
}
