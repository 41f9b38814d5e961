package usecase

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

func numberedIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = strconv.Itoa(i + 1)
	}
	return ids
}

// memoryStore backs the repository mock with a map so that repeated calls
// observe earlier writes.
type memoryStore struct {
	mu      sync.Mutex
	records map[string]*domain.CreativeRecord
}

func (s *memoryStore) wire(f *fixture) {
	s.records = make(map[string]*domain.CreativeRecord)
	f.repo.EXPECT().GetMany(mock.Anything, testWorkspace, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, adIDs []string) (map[string]*domain.CreativeRecord, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			out := make(map[string]*domain.CreativeRecord)
			for _, adID := range adIDs {
				if rec, ok := s.records[adID]; ok {
					cp := *rec
					out[adID] = &cp
				}
			}
			return out, nil
		})
	f.repo.EXPECT().Upsert(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, rec *domain.CreativeRecord) (*domain.CreativeRecord, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			cp := *rec
			s.records[rec.AdID] = &cp
			return rec, nil
		}).
		Maybe()
}

func TestFetchCreativesBatchPartialFailure(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()
	ids := numberedIDs(10)
	f.repo.EXPECT().GetMany(mock.Anything, testWorkspace, ids).Return(map[string]*domain.CreativeRecord{}, nil)
	f.platform.EXPECT().BatchGetAds(mock.Anything, testCred, ids).
		RunAndReturn(func(ctx context.Context, cred domain.Credential, adIDs []string) ([]domain.AdResult, error) {
			out, _ := okResults(ctx, cred, adIDs)
			out[4] = domain.AdResult{AdID: "5", Status: 400, Err: &domain.UpstreamError{
				Status: 400, Code: 100, Type: "GraphMethodException", Message: "Unsupported get request",
			}}
			return out, nil
		})
	f.repo.EXPECT().RecordFailure(mock.Anything, testWorkspace, "5", testAccount, mock.Anything).
		Return(&domain.CreativeRecord{AdID: "5", FetchStatus: domain.FetchStatusPending, FetchAttempts: 1}, nil)
	f.expectNoCopies()
	f.expectUpsertEcho()

	res, err := f.svc.FetchCreativesBatch(context.Background(), testIdentity, ids, testAccount)
	require.NoError(t, err)
	assert.Len(t, res.Records, 9)
	assert.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors["5"], "Unsupported get request")
	assert.NotContains(t, res.Records, "5")
	assert.Equal(t, 9, res.FetchedCount)
	assert.Equal(t, 0, res.CachedCount)
	for adID, rec := range res.Records {
		assert.Equal(t, adID, rec.AdID)
		assert.Equal(t, "Title "+adID, *rec.Title)
	}
}

func TestFetchCreativesBatchServesAndUpgradesProvisional(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()
	fresh := storedRecord("1", domain.QualityHD, 1)
	provisional := storedRecord("2", domain.QualityLow, 1)
	f.repo.EXPECT().GetMany(mock.Anything, testWorkspace, []string{"1", "2"}).
		Return(map[string]*domain.CreativeRecord{"1": fresh, "2": provisional}, nil)
	f.platform.EXPECT().BatchGetAds(mock.Anything, testCred, []string{"2"}).RunAndReturn(okResults)
	f.expectNoCopies()
	f.expectUpsertEcho()

	res, err := f.svc.FetchCreativesBatch(context.Background(), testIdentity, []string{"1", "2"}, testAccount)
	require.NoError(t, err)
	assert.Same(t, fresh, res.Records["1"])
	assert.NotSame(t, provisional, res.Records["2"])
	assert.Equal(t, 2, res.Records["2"].FetchAttempts)
	assert.Equal(t, 1, res.CachedCount)
	assert.Equal(t, 1, res.FetchedCount)
	assert.Empty(t, res.Errors)
}

func TestFetchCreativesBatchKeepsProvisionalOnChunkFailure(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()
	provisional := storedRecord("2", domain.QualityLow, 1)
	f.repo.EXPECT().GetMany(mock.Anything, testWorkspace, []string{"2"}).
		Return(map[string]*domain.CreativeRecord{"2": provisional}, nil)
	f.platform.EXPECT().BatchGetAds(mock.Anything, testCred, []string{"2"}).Return(nil, errors.New("i/o timeout"))

	res, err := f.svc.FetchCreativesBatch(context.Background(), testIdentity, []string{"2"}, testAccount)
	require.NoError(t, err)
	assert.Same(t, provisional, res.Records["2"])
	assert.Contains(t, res.Errors["2"], "batch request failed")
	assert.Equal(t, 1, res.CachedCount)
	assert.Equal(t, 0, res.FetchedCount)
}

func TestFetchCreativesBatchIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()
	var store memoryStore
	store.wire(f)
	ids := numberedIDs(5)
	f.platform.EXPECT().BatchGetAds(mock.Anything, testCred, ids).RunAndReturn(okResults).Once()
	f.expectNoCopies()

	first, err := f.svc.FetchCreativesBatch(context.Background(), testIdentity, ids, testAccount)
	require.NoError(t, err)
	assert.Equal(t, 5, first.FetchedCount)

	second, err := f.svc.FetchCreativesBatch(context.Background(), testIdentity, ids, testAccount)
	require.NoError(t, err)
	assert.Equal(t, 0, second.FetchedCount)
	assert.Equal(t, 5, second.CachedCount)
	for _, adID := range ids {
		assert.Equal(t, 1, second.Records[adID].FetchAttempts, adID)
	}
}

func TestFetchCreativesBatchNormalizesIDs(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()
	f.repo.EXPECT().GetMany(mock.Anything, testWorkspace, []string{"1", "2"}).Return(nil, nil)
	f.platform.EXPECT().BatchGetAds(mock.Anything, testCred, []string{"1", "2"}).RunAndReturn(okResults)
	f.expectNoCopies()
	f.expectUpsertEcho()

	res, err := f.svc.FetchCreativesBatch(context.Background(), testIdentity, []string{"1", "1", "", "bad/id", "2"}, testAccount)
	require.NoError(t, err)
	assert.Len(t, res.Records, 2)
	assert.Equal(t, port.ErrInvalidAdID.Error(), res.Errors["bad/id"])
	assert.Equal(t, port.ErrInvalidAdID.Error(), res.Errors[""])
	assert.Equal(t, 2, res.FetchedCount)
}

func TestFetchCreativesBatchKeysByLiteralID(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()

	input := []string{" 7 ", "7 ", "\t7"}
	res, err := f.svc.FetchCreativesBatch(context.Background(), testIdentity, input, testAccount)
	require.NoError(t, err)
	assert.Empty(t, res.Records)
	for _, adID := range input {
		_, inRecords := res.Records[adID]
		_, inErrors := res.Errors[adID]
		assert.True(t, inRecords || inErrors, "id %q missing from both maps", adID)
	}
	assert.Len(t, res.Errors, len(input))
}

func TestFetchCreativesBatchEmpty(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()

	res, err := f.svc.FetchCreativesBatch(context.Background(), testIdentity, nil, testAccount)
	require.NoError(t, err)
	assert.Empty(t, res.Records)
	assert.Empty(t, res.Errors)
	assert.Zero(t, res.CachedCount+res.FetchedCount)
}

func TestFetchCreativesBatchDegradesOnStoreReadFailure(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()
	f.repo.EXPECT().GetMany(mock.Anything, testWorkspace, []string{"1"}).Return(nil, errors.New("pool closed"))
	f.platform.EXPECT().BatchGetAds(mock.Anything, testCred, []string{"1"}).RunAndReturn(okResults)
	f.expectNoCopies()
	f.expectUpsertEcho()

	res, err := f.svc.FetchCreativesBatch(context.Background(), testIdentity, []string{"1"}, testAccount)
	require.NoError(t, err)
	assert.Equal(t, 1, res.FetchedCount)
}

func TestFetchCreativesBatchChunksWithPacing(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()
	ids := numberedIDs(120)
	f.repo.EXPECT().GetMany(mock.Anything, testWorkspace, ids).Return(nil, nil)

	var mu sync.Mutex
	var sizes []int
	f.platform.EXPECT().BatchGetAds(mock.Anything, testCred, mock.Anything).
		RunAndReturn(func(ctx context.Context, cred domain.Credential, adIDs []string) ([]domain.AdResult, error) {
			mu.Lock()
			sizes = append(sizes, len(adIDs))
			mu.Unlock()
			return okResults(ctx, cred, adIDs)
		}).
		Times(3)
	f.expectNoCopies()
	f.expectUpsertEcho()

	res, err := f.svc.FetchCreativesBatch(context.Background(), testIdentity, ids, testAccount)
	require.NoError(t, err)
	assert.Equal(t, []int{50, 50, 20}, sizes)
	assert.Equal(t, []time.Duration{time.Second, time.Second}, f.sleeps)
	assert.Len(t, res.Records, 120)
	assert.Equal(t, 120, res.FetchedCount)
}

func TestFetchCreativesBatchChunkFailureIsIsolated(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()
	ids := numberedIDs(60)
	f.repo.EXPECT().GetMany(mock.Anything, testWorkspace, ids).Return(nil, nil)
	f.platform.EXPECT().BatchGetAds(mock.Anything, testCred, ids[:50]).Return(nil, errors.New("i/o timeout")).Once()
	f.platform.EXPECT().BatchGetAds(mock.Anything, testCred, ids[50:]).RunAndReturn(okResults).Once()
	f.expectNoCopies()
	f.expectUpsertEcho()

	res, err := f.svc.FetchCreativesBatch(context.Background(), testIdentity, ids, testAccount)
	require.NoError(t, err)
	assert.Len(t, res.Errors, 50)
	assert.Len(t, res.Records, 10)
	assert.Contains(t, res.Errors["1"], "batch request failed")
	assert.Contains(t, res.Records, "60")
	for _, adID := range ids {
		_, hasRecord := res.Records[adID]
		_, hasError := res.Errors[adID]
		assert.True(t, hasRecord != hasError, adID)
	}
}

func TestFetchCreativesBatchStopsWhenCancelled(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()
	ids := numberedIDs(60)
	f.repo.EXPECT().GetMany(mock.Anything, testWorkspace, ids).Return(nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.platform.EXPECT().BatchGetAds(mock.Anything, testCred, ids[:50]).
		RunAndReturn(func(ctx context.Context, cred domain.Credential, adIDs []string) ([]domain.AdResult, error) {
			cancel()
			return okResults(ctx, cred, adIDs)
		}).
		Once()
	f.expectNoCopies()
	f.expectUpsertEcho()

	res, err := f.svc.FetchCreativesBatch(ctx, testIdentity, ids, testAccount)
	require.NoError(t, err)
	assert.Len(t, res.Records, 50)
	assert.Len(t, res.Errors, 10)
	assert.Contains(t, res.Errors["51"], "not attempted")
}

func TestFetchCreativesBatchSharedHashLookedUpOnce(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()
	ids := numberedIDs(3)
	f.repo.EXPECT().GetMany(mock.Anything, testWorkspace, ids).Return(nil, nil)
	f.platform.EXPECT().BatchGetAds(mock.Anything, testCred, ids).
		RunAndReturn(func(_ context.Context, _ domain.Credential, adIDs []string) ([]domain.AdResult, error) {
			out := make([]domain.AdResult, 0, len(adIDs))
			for _, adID := range adIDs {
				out = append(out, domain.AdResult{AdID: adID, Status: 200, Ad: &domain.Ad{
					ID:       adID,
					Creative: &domain.AdCreative{ImageHash: "shared", Title: "Shared " + adID},
				}})
			}
			return out, nil
		})
	f.platform.EXPECT().ImagesByHash(mock.Anything, testCred, testAccount, []string{"shared"}).
		Return(map[string]domain.ImageAsset{
			"shared": {Hash: "shared", PermalinkURL: "https://cdn.example/shared.jpg", Width: 1200, Height: 1200},
		}, nil).
		Once()
	f.expectNoCopies()
	f.expectUpsertEcho()

	res, err := f.svc.FetchCreativesBatch(context.Background(), testIdentity, ids, testAccount)
	require.NoError(t, err)
	require.Len(t, res.Records, 3)
	for _, rec := range res.Records {
		assert.Equal(t, "https://cdn.example/shared.jpg", *rec.ImageURL)
		assert.Equal(t, domain.QualitySD, rec.Quality)
	}
}

func TestChunkIDs(t *testing.T) {
	assert.Empty(t, chunkIDs(nil, 50))
	chunks := chunkIDs(numberedIDs(101), 50)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 50)
	assert.Len(t, chunks[2], 1)
	assert.Equal(t, "101", chunks[2][0])
}
