package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
	"adpulse/internal/core/port/mocks"
)

const testAccount = "act_1"

var (
	testNow       = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	testUser      = uuid.MustParse("8f14e45f-ceea-467a-9f2b-6c1b0e0c2a11")
	testWorkspace = uuid.MustParse("2c9a7d5e-41b3-4c8e-9f0a-7d2e6b1c3f44")
	testCred      = domain.Credential{WorkspaceID: testWorkspace, AccountID: testAccount, AccessToken: "token"}
	testIdentity  = port.Identity{UserID: testUser}
)

type fixture struct {
	repo      *mocks.MockCreativeRepository
	directory *mocks.MockWorkspaceDirectory
	platform  *mocks.MockAdPlatform
	assets    *mocks.MockAssetCache
	publisher *mocks.MockRefreshPublisher
	svc       *CreativeUseCase

	mu     sync.Mutex
	sleeps []time.Duration
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		repo:      mocks.NewMockCreativeRepository(t),
		directory: mocks.NewMockWorkspaceDirectory(t),
		platform:  mocks.NewMockAdPlatform(t),
		assets:    mocks.NewMockAssetCache(t),
		publisher: mocks.NewMockRefreshPublisher(t),
	}
	f.svc = NewCreativeUseCase(f.repo, f.directory, f.platform, f.assets, Options{
		PacingDelay: time.Second,
		Logger:      discardLogger(),
		Publisher:   f.publisher,
		Now:         func() time.Time { return testNow },
	})
	f.svc.sleep = func(ctx context.Context, d time.Duration) error {
		f.mu.Lock()
		f.sleeps = append(f.sleeps, d)
		f.mu.Unlock()
		return ctx.Err()
	}
	return f
}

func (f *fixture) expectAuthorized() {
	f.directory.EXPECT().WorkspaceForUser(mock.Anything, testUser).
		Return(&domain.Workspace{ID: testWorkspace, Name: "Acme"}, nil)
	cred := testCred
	f.directory.EXPECT().Credential(mock.Anything, testWorkspace, testAccount).Return(&cred, nil)
}

// expectUpsertEcho stores records as given, as the database would on first
// insert.
func (f *fixture) expectUpsertEcho() {
	f.repo.EXPECT().Upsert(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, rec *domain.CreativeRecord) (*domain.CreativeRecord, error) {
			stored := *rec
			stored.ID = 1
			return &stored, nil
		}).
		Maybe()
}

func (f *fixture) expectNoCopies() {
	f.assets.EXPECT().Cache(mock.Anything, mock.Anything, testWorkspace, mock.Anything).
		Return(domain.CachedAssets{}).
		Maybe()
}

func imageAd(adID string) *domain.Ad {
	return &domain.Ad{ID: adID, AccountID: testAccount, Creative: &domain.AdCreative{
		ID:       "c_" + adID,
		Title:    "Title " + adID,
		ImageURL: "https://cdn.example/" + adID + ".jpg",
	}}
}

func okResults(_ context.Context, _ domain.Credential, adIDs []string) ([]domain.AdResult, error) {
	out := make([]domain.AdResult, 0, len(adIDs))
	for _, adID := range adIDs {
		out = append(out, domain.AdResult{AdID: adID, Status: 200, Ad: imageAd(adID)})
	}
	return out, nil
}

func TestFetchCreativeServesStoredRecord(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()
	prior := storedRecord("1", domain.QualityHD, 1)
	f.repo.EXPECT().Get(mock.Anything, testWorkspace, "1").Return(prior, nil)

	res, err := f.svc.FetchCreative(context.Background(), testIdentity, "1", testAccount, false)
	require.NoError(t, err)
	assert.True(t, res.Cached)
	assert.Same(t, prior, res.Creative)
}

func TestFetchCreativeFetchesMissingRecord(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()
	f.repo.EXPECT().Get(mock.Anything, testWorkspace, "1").Return(nil, nil)
	f.platform.EXPECT().GetAd(mock.Anything, testCred, "1").Return(imageAd("1"), nil)

	expires := testNow.Add(7 * 24 * time.Hour)
	size := int64(2048)
	f.assets.EXPECT().Cache(mock.Anything, mock.Anything, testWorkspace, "1").
		Return(domain.CachedAssets{
			ImageURL:  strPtr("https://bucket.example/creatives/ws/1/image.jpg"),
			ExpiresAt: &expires,
			SizeBytes: &size,
		})
	f.expectUpsertEcho()

	res, err := f.svc.FetchCreative(context.Background(), testIdentity, "1", testAccount, false)
	require.NoError(t, err)
	assert.False(t, res.Cached)
	rec := res.Creative
	assert.Equal(t, "https://bucket.example/creatives/ws/1/image.jpg", *rec.CachedImageURL)
	assert.Equal(t, expires, *rec.CacheExpiresAt)
	assert.Equal(t, int64(2048), *rec.CachedSizeBytes)
	assert.Equal(t, 1, rec.FetchAttempts)
	assert.Equal(t, domain.FetchStatusSuccess, rec.FetchStatus)
	assert.Equal(t, domain.ProvenanceCreativeImageURL, rec.Extra.Provenance)
}

func TestFetchCreativeForceRefresh(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()
	f.repo.EXPECT().Get(mock.Anything, testWorkspace, "1").Return(storedRecord("1", domain.QualityHD, 1), nil)
	f.platform.EXPECT().GetAd(mock.Anything, testCred, "1").Return(imageAd("1"), nil)
	f.expectNoCopies()
	f.expectUpsertEcho()

	res, err := f.svc.FetchCreative(context.Background(), testIdentity, "1", testAccount, true)
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.Equal(t, 2, res.Creative.FetchAttempts)
}

func TestFetchCreativeFallsBackToProvisionalRecord(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()
	prior := storedRecord("1", domain.QualityLow, 1)
	f.repo.EXPECT().Get(mock.Anything, testWorkspace, "1").Return(prior, nil)
	f.platform.EXPECT().GetAd(mock.Anything, testCred, "1").Return(nil, errors.New("connection reset by peer"))

	res, err := f.svc.FetchCreative(context.Background(), testIdentity, "1", testAccount, false)
	require.NoError(t, err)
	assert.True(t, res.Cached)
	assert.Same(t, prior, res.Creative)
}

func TestFetchCreativeTransportErrorWithoutRecord(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()
	f.repo.EXPECT().Get(mock.Anything, testWorkspace, "1").Return(nil, nil)
	f.platform.EXPECT().GetAd(mock.Anything, testCred, "1").Return(nil, errors.New("i/o timeout"))

	_, err := f.svc.FetchCreative(context.Background(), testIdentity, "1", testAccount, false)
	assert.ErrorIs(t, err, port.ErrUpstreamUnavailable)
}

func TestFetchCreativeUpstreamErrorCountsAttempt(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()
	f.repo.EXPECT().Get(mock.Anything, testWorkspace, "1").Return(nil, nil)
	upErr := &domain.UpstreamError{Status: 400, Code: 100, Type: "GraphMethodException", Message: "Unsupported get request"}
	f.platform.EXPECT().GetAd(mock.Anything, testCred, "1").Return(nil, upErr)
	f.repo.EXPECT().RecordFailure(mock.Anything, testWorkspace, "1", testAccount, upErr.Error()).
		Return(&domain.CreativeRecord{AdID: "1", FetchStatus: domain.FetchStatusPending, FetchAttempts: 1}, nil)

	res, err := f.svc.FetchCreative(context.Background(), testIdentity, "1", testAccount, false)
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.Equal(t, 1, res.Creative.FetchAttempts)
	assert.Equal(t, domain.FetchStatusPending, res.Creative.FetchStatus)
}

func TestFetchCreativeKeepsDataOnEmptyResponse(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()
	prior := storedRecord("1", domain.QualityLow, 1)
	f.repo.EXPECT().Get(mock.Anything, testWorkspace, "1").Return(prior, nil)
	f.platform.EXPECT().GetAd(mock.Anything, testCred, "1").Return(&domain.Ad{ID: "1"}, nil)

	kept := *prior
	kept.FetchAttempts = 2
	f.repo.EXPECT().RecordFailure(mock.Anything, testWorkspace, "1", testAccount, errNoUsableData).Return(&kept, nil)

	res, err := f.svc.FetchCreative(context.Background(), testIdentity, "1", testAccount, false)
	require.NoError(t, err)
	assert.Equal(t, *prior.ImageURL, *res.Creative.ImageURL)
	assert.Equal(t, *prior.Title, *res.Creative.Title)
	assert.Equal(t, 2, res.Creative.FetchAttempts)
}

func TestFetchCreativePersistsWithoutDurableCopy(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()
	f.repo.EXPECT().Get(mock.Anything, testWorkspace, "1").Return(nil, nil)
	f.platform.EXPECT().GetAd(mock.Anything, testCred, "1").Return(imageAd("1"), nil)
	f.expectNoCopies()

	var persisted *domain.CreativeRecord
	f.repo.EXPECT().Upsert(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, rec *domain.CreativeRecord) (*domain.CreativeRecord, error) {
			persisted = rec
			return rec, nil
		})

	res, err := f.svc.FetchCreative(context.Background(), testIdentity, "1", testAccount, false)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Nil(t, persisted.CachedImageURL)
	assert.Nil(t, persisted.CacheExpiresAt)
	assert.Equal(t, "https://cdn.example/1.jpg", *res.Creative.ImageURL)
}

func TestFetchCreativeRejectsMalformedID(t *testing.T) {
	f := newFixture(t)

	for _, adID := range []string{"", "  ", "../etc", "1?fields=x"} {
		_, err := f.svc.FetchCreative(context.Background(), testIdentity, adID, testAccount, false)
		assert.ErrorIs(t, err, port.ErrInvalidAdID, adID)
	}
}

func TestAuthorization(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.FetchCreative(context.Background(), port.Identity{}, "1", testAccount, false)
		assert.ErrorIs(t, err, port.ErrWorkspaceNotFound)
	})

	t.Run("no workspace", func(t *testing.T) {
		f := newFixture(t)
		f.directory.EXPECT().WorkspaceForUser(mock.Anything, testUser).Return(nil, nil)
		_, err := f.svc.FetchCreativesBatch(context.Background(), testIdentity, []string{"1"}, testAccount)
		assert.ErrorIs(t, err, port.ErrWorkspaceNotFound)
	})

	t.Run("no credential", func(t *testing.T) {
		f := newFixture(t)
		f.directory.EXPECT().WorkspaceForUser(mock.Anything, testUser).Return(&domain.Workspace{ID: testWorkspace}, nil)
		f.directory.EXPECT().Credential(mock.Anything, testWorkspace, testAccount).Return(nil, nil)
		_, err := f.svc.FetchCreativesBatch(context.Background(), testIdentity, []string{"1"}, testAccount)
		assert.ErrorIs(t, err, port.ErrCredentialUnavailable)
	})

	t.Run("expired credential", func(t *testing.T) {
		f := newFixture(t)
		expired := testNow.Add(-time.Minute)
		f.directory.EXPECT().WorkspaceForUser(mock.Anything, testUser).Return(&domain.Workspace{ID: testWorkspace}, nil)
		f.directory.EXPECT().Credential(mock.Anything, testWorkspace, testAccount).
			Return(&domain.Credential{AccessToken: "token", ExpiresAt: &expired}, nil)
		_, err := f.svc.FetchCreative(context.Background(), testIdentity, "1", testAccount, false)
		assert.ErrorIs(t, err, port.ErrCredentialUnavailable)
	})

	t.Run("missing account", func(t *testing.T) {
		f := newFixture(t)
		f.directory.EXPECT().WorkspaceForUser(mock.Anything, testUser).Return(&domain.Workspace{ID: testWorkspace}, nil)
		_, err := f.svc.FetchCreativesBatch(context.Background(), testIdentity, []string{"1"}, " ")
		assert.ErrorIs(t, err, port.ErrCredentialUnavailable)
	})
}

func TestRefreshCreativesForcesFetch(t *testing.T) {
	f := newFixture(t)
	f.directory.EXPECT().WorkspaceByID(mock.Anything, testWorkspace).Return(&domain.Workspace{ID: testWorkspace}, nil)
	cred := testCred
	f.directory.EXPECT().Credential(mock.Anything, testWorkspace, testAccount).Return(&cred, nil)
	prior := storedRecord("1", domain.QualityHD, 1)
	f.repo.EXPECT().GetMany(mock.Anything, testWorkspace, []string{"1"}).
		Return(map[string]*domain.CreativeRecord{"1": prior}, nil)
	f.platform.EXPECT().BatchGetAds(mock.Anything, testCred, []string{"1"}).RunAndReturn(okResults)
	f.expectNoCopies()
	f.expectUpsertEcho()

	res, err := f.svc.RefreshCreatives(context.Background(), domain.RefreshJob{
		JobID:       uuid.New(),
		WorkspaceID: testWorkspace,
		AccountID:   testAccount,
		AdIDs:       []string{"1"},
		Force:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.FetchedCount)
	assert.Equal(t, 0, res.CachedCount)
	assert.Equal(t, 2, res.Records["1"].FetchAttempts)
}

func TestRefreshCreativesUnknownWorkspace(t *testing.T) {
	f := newFixture(t)
	f.directory.EXPECT().WorkspaceByID(mock.Anything, testWorkspace).Return(nil, nil)

	_, err := f.svc.RefreshCreatives(context.Background(), domain.RefreshJob{WorkspaceID: testWorkspace, AccountID: testAccount})
	assert.ErrorIs(t, err, port.ErrWorkspaceNotFound)
}

func TestScheduleRefresh(t *testing.T) {
	f := newFixture(t)
	f.expectAuthorized()
	f.publisher.EXPECT().
		PublishRefresh(mock.Anything, mock.MatchedBy(func(job domain.RefreshJob) bool {
			return job.WorkspaceID == testWorkspace &&
				job.AccountID == testAccount &&
				assert.ObjectsAreEqual([]string{"1", "2"}, job.AdIDs) &&
				job.Force &&
				job.JobID != uuid.Nil
		})).
		Return(nil)

	job, err := f.svc.ScheduleRefresh(context.Background(), testIdentity, []string{"1", " 2 ", "1", "bad id"}, testAccount, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, job.AdIDs)
	assert.Equal(t, testNow, job.RequestedAt)
}

func TestScheduleRefreshFailures(t *testing.T) {
	t.Run("no publisher", func(t *testing.T) {
		f := newFixture(t)
		svc := NewCreativeUseCase(f.repo, f.directory, f.platform, f.assets, Options{Logger: discardLogger()})
		_, err := svc.ScheduleRefresh(context.Background(), testIdentity, []string{"1"}, testAccount, false)
		assert.ErrorIs(t, err, port.ErrRefreshUnavailable)
	})

	t.Run("no valid ids", func(t *testing.T) {
		f := newFixture(t)
		f.expectAuthorized()
		_, err := f.svc.ScheduleRefresh(context.Background(), testIdentity, []string{"", "a/b"}, testAccount, false)
		assert.ErrorIs(t, err, port.ErrInvalidAdID)
	})

	t.Run("broker down", func(t *testing.T) {
		f := newFixture(t)
		f.expectAuthorized()
		f.publisher.EXPECT().PublishRefresh(mock.Anything, mock.Anything).Return(errors.New("channel closed"))
		_, err := f.svc.ScheduleRefresh(context.Background(), testIdentity, []string{"1"}, testAccount, false)
		assert.ErrorIs(t, err, port.ErrRefreshUnavailable)
	})
}

func TestApplyCache(t *testing.T) {
	live := testNow.Add(time.Hour)
	prior := storedRecord("1", domain.QualityLow, 1)
	prior.CachedImageURL = strPtr("https://bucket.example/old/image.jpg")
	prior.CachedThumbnailURL = strPtr("https://bucket.example/old/thumbnail.jpg")
	prior.CacheExpiresAt = &live

	t.Run("keeps live prior copy", func(t *testing.T) {
		rec := storedRecord("1", domain.QualityLow, 2)
		applyCache(rec, domain.CachedAssets{}, prior, testNow)
		assert.Equal(t, *prior.CachedImageURL, *rec.CachedImageURL)
		assert.Equal(t, *prior.CachedThumbnailURL, *rec.CachedThumbnailURL)
		assert.Equal(t, live, *rec.CacheExpiresAt)
	})

	t.Run("drops expired prior copy", func(t *testing.T) {
		rec := storedRecord("1", domain.QualityLow, 2)
		applyCache(rec, domain.CachedAssets{}, prior, live.Add(time.Minute))
		assert.Nil(t, rec.CachedImageURL)
		assert.Nil(t, rec.CachedThumbnailURL)
	})

	t.Run("probed dimensions grade unknown quality", func(t *testing.T) {
		rec := storedRecord("1", domain.QualityUnknown, 1)
		w, h := 1920, 1080
		expires := testNow.Add(time.Hour)
		applyCache(rec, domain.CachedAssets{
			ImageURL:  strPtr("https://bucket.example/new/image.jpg"),
			ExpiresAt: &expires,
			Width:     &w,
			Height:    &h,
		}, nil, testNow)
		assert.Equal(t, domain.QualityHD, rec.Quality)
		assert.Equal(t, *rec.ImageURL, *rec.ImageURLHD)
		assert.Equal(t, 1920, *rec.ImageWidth)
	})
}
