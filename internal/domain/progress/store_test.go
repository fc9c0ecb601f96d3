package progress_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spitfire8790/learn2code/internal/domain/progress"
	"github.com/spitfire8790/learn2code/internal/repository"
	"github.com/spitfire8790/learn2code/internal/repository/mocks"
)

func openStore(t *testing.T, repo *mocks.ProgressRepository, events progress.EventLog) *progress.Store {
	t.Helper()
	return progress.Open(context.Background(), repo, events, nil)
}

func emptyRepo() *mocks.ProgressRepository {
	repo := &mocks.ProgressRepository{}
	repo.On("Load", mock.Anything).Return((*progress.Record)(nil), repository.ErrNotFound)
	return repo
}

func TestStore_StartsEmptyWithoutPriorState(t *testing.T) {
	store := openStore(t, emptyRepo(), nil)

	rec := store.Snapshot()
	require.Empty(t, rec.CompletedIDs())
	require.Empty(t, rec.BookmarkedIDs())
}

func TestStore_CorruptStateStartsEmpty(t *testing.T) {
	repo := &mocks.ProgressRepository{}
	repo.On("Load", mock.Anything).Return((*progress.Record)(nil), repository.ErrCorrupt)

	store := openStore(t, repo, nil)
	require.Empty(t, store.Snapshot().CompletedIDs())
}

func TestStore_HydratesFromRepository(t *testing.T) {
	stored := progress.NewRecord()
	stored.Completed["module-0-1-setup"] = true
	stored.Bookmarked["module-1-1-html"] = true

	repo := &mocks.ProgressRepository{}
	repo.On("Load", mock.Anything).Return(stored, nil)

	store := openStore(t, repo, nil)
	rec := store.Snapshot()
	require.Equal(t, []string{"module-0-1-setup"}, rec.CompletedIDs())
	require.Equal(t, []string{"module-1-1-html"}, rec.BookmarkedIDs())
}

func TestStore_ToggleCompletedIsItsOwnInverse(t *testing.T) {
	ctx := context.Background()
	repo := emptyRepo()
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	store := openStore(t, repo, nil)

	marked, err := store.ToggleCompleted(ctx, "module-0-1-setup")
	require.NoError(t, err)
	require.True(t, marked)
	require.Equal(t, []string{"module-0-1-setup"}, store.Snapshot().CompletedIDs())
	require.Empty(t, store.Snapshot().BookmarkedIDs())

	marked, err = store.ToggleCompleted(ctx, "module-0-1-setup")
	require.NoError(t, err)
	require.False(t, marked)
	require.Empty(t, store.Snapshot().CompletedIDs())
}

func TestStore_TogglesAreIndependent(t *testing.T) {
	ctx := context.Background()
	repo := emptyRepo()
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	store := openStore(t, repo, nil)

	_, err := store.ToggleCompleted(ctx, "module-0-1-setup")
	require.NoError(t, err)
	_, err = store.ToggleBookmark(ctx, "module-0-1-setup")
	require.NoError(t, err)
	_, err = store.ToggleCompleted(ctx, "module-0-1-setup")
	require.NoError(t, err)

	rec := store.Snapshot()
	require.Empty(t, rec.CompletedIDs())
	require.Equal(t, []string{"module-0-1-setup"}, rec.BookmarkedIDs())
}

func TestStore_UnknownIDsTolerated(t *testing.T) {
	ctx := context.Background()
	repo := emptyRepo()
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	store := openStore(t, repo, nil)

	marked, err := store.ToggleCompleted(ctx, "module-from-a-deleted-phase")
	require.NoError(t, err)
	require.True(t, marked)
}

func TestStore_FailedSaveLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	repo := emptyRepo()
	repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))
	store := openStore(t, repo, nil)

	_, err := store.ToggleCompleted(ctx, "module-0-1-setup")
	require.Error(t, err)
	require.Empty(t, store.Snapshot().CompletedIDs())
}

func TestStore_ToggleRecordsEvent(t *testing.T) {
	ctx := context.Background()
	repo := emptyRepo()
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	events := &mocks.ProgressEventLog{}
	events.On("Append", mock.Anything, mock.MatchedBy(func(e progress.Event) bool {
		return e.Kind == progress.EventCompletedToggled &&
			e.ModuleID == "module-0-1-setup" &&
			e.Marked && e.ID != ""
	})).Return(nil).Once()

	store := openStore(t, repo, events)
	_, err := store.ToggleCompleted(ctx, "module-0-1-setup")
	require.NoError(t, err)
	events.AssertExpectations(t)
}

func TestStore_EventLogFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()
	repo := emptyRepo()
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	events := &mocks.ProgressEventLog{}
	events.On("Append", mock.Anything, mock.Anything).Return(errors.New("log closed"))

	store := openStore(t, repo, events)
	marked, err := store.ToggleBookmark(ctx, "module-0-1-setup")
	require.NoError(t, err)
	require.True(t, marked)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	store := openStore(t, emptyRepo(), nil)

	rec := store.Snapshot()
	rec.Completed["mutated-by-caller"] = true
	require.Empty(t, store.Snapshot().CompletedIDs())
}
