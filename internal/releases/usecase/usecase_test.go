package usecase

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amankumarsingh77/reelfetch/internal/config"
	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/amankumarsingh77/reelfetch/internal/releases"
	"github.com/amankumarsingh77/reelfetch/pkg/httpErrors"
	"github.com/amankumarsingh77/reelfetch/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearch struct {
	releases []*models.Release
	err      error
	calls    int32
	delay    time.Duration
}

func (f *fakeSearch) SearchByIMDb(_ context.Context, _ string) ([]*models.Release, error) {
	atomic.AddInt32(&f.calls, 1)
	time.Sleep(f.delay)
	return f.releases, f.err
}

// gatedSearch blocks until release is closed or its context ends.
type gatedSearch struct {
	started chan struct{}
	release chan struct{}
	calls   int32
}

func (g *gatedSearch) SearchByIMDb(ctx context.Context, _ string) ([]*models.Release, error) {
	if atomic.AddInt32(&g.calls, 1) == 1 {
		close(g.started)
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-g.release:
		return sampleReleases(), nil
	}
}

type memoryCache struct {
	mu    sync.Mutex
	items map[string][]*models.Release
}

func (m *memoryCache) GetReleases(_ context.Context, key string) ([]*models.Release, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[key], nil
}

func (m *memoryCache) SetReleases(_ context.Context, key string, _ time.Duration, list []*models.Release) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = list
	return nil
}

type fakeTitles struct {
	imdb map[int64]string
}

func (f *fakeTitles) GetDetails(_ context.Context, id int64) (*models.TitleDetails, error) {
	return &models.TitleDetails{ID: id, IMDbID: f.imdb[id]}, nil
}

func (f *fakeTitles) ResolveIMDbID(_ context.Context, id int64) (string, error) {
	if v, ok := f.imdb[id]; ok {
		return v, nil
	}
	return "", httpErrors.NewNotFoundError("title not found")
}

func sampleReleases() []*models.Release {
	return []*models.Release{
		{ID: "b", Title: "Movie.720p.WEB-DL.x264", Quality: "720p", Source: "WEB-DL", Codec: "x264", Size: 2 * gib},
		{ID: "a", Title: "Movie.1080p.BluRay.x265", Quality: "1080p", Source: "BluRay", Codec: "x265", Size: 5 * gib},
	}
}

func newUC(search releases.SearchRepository) (releases.UseCase, *memoryCache) {
	cache := &memoryCache{items: map[string][]*models.Release{}}
	cfg := &config.Config{Redis: config.RedisConfig{ReleaseCacheTTL: time.Minute}}
	return NewReleasesUseCase(cfg, search, cache, &fakeTitles{imdb: map[int64]string{603: "tt0133093"}}, logger.NewNopLogger()), cache
}

func TestChooseAuto(t *testing.T) {
	uc, _ := newUC(&fakeSearch{releases: sampleReleases()})
	r, err := uc.Choose(context.Background(), "tt0133093", ModeAuto, "", "1080p")
	require.NoError(t, err)
	assert.Equal(t, "a", r.ID)
}

func TestChooseManual(t *testing.T) {
	uc, _ := newUC(&fakeSearch{releases: sampleReleases()})
	r, err := uc.Choose(context.Background(), "tt0133093", ModeManual, "b", "")
	require.NoError(t, err)
	assert.Equal(t, "b", r.ID)

	_, err = uc.Choose(context.Background(), "tt0133093", ModeManual, "missing", "")
	assert.Equal(t, http.StatusNotFound, httpErrors.ParseErrors(err).Status())
}

func TestChooseNoReleases(t *testing.T) {
	uc, _ := newUC(&fakeSearch{releases: []*models.Release{}})
	_, err := uc.Choose(context.Background(), "tt0133093", ModeAuto, "", "")
	assert.Equal(t, http.StatusNotFound, httpErrors.ParseErrors(err).Status())
}

func TestSearchFailureIsUpstream(t *testing.T) {
	uc, _ := newUC(&fakeSearch{err: errors.New("timeout")})
	_, err := uc.Search(context.Background(), "tt0133093")
	restErr := httpErrors.ParseErrors(err)
	assert.Equal(t, http.StatusBadGateway, restErr.Status())
	assert.Equal(t, httpErrors.CodeInternal, restErr.Code())
}

func TestSearchCollapsesAndCaches(t *testing.T) {
	search := &fakeSearch{releases: sampleReleases(), delay: 50 * time.Millisecond}
	uc, cache := newUC(search)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Search(context.Background(), "tt0133093")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, atomic.LoadInt32(&search.calls), int32(8))
	assert.NotEmpty(t, cache.items["releases:tt0133093"])

	before := atomic.LoadInt32(&search.calls)
	_, err := uc.Search(context.Background(), "tt0133093")
	require.NoError(t, err)
	assert.Equal(t, before, atomic.LoadInt32(&search.calls))
}

func TestSearchSurvivesFirstCallerCancel(t *testing.T) {
	search := &gatedSearch{started: make(chan struct{}), release: make(chan struct{})}
	uc, cache := newUC(search)

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := uc.Search(ctxA, "tt0133093")
		errA <- err
	}()
	<-search.started

	type result struct {
		list []*models.Release
		err  error
	}
	resB := make(chan result, 1)
	go func() {
		list, err := uc.Search(context.Background(), "tt0133093")
		resB <- result{list, err}
	}()

	cancelA()
	assert.ErrorIs(t, <-errA, context.Canceled)

	close(search.release)
	b := <-resB
	require.NoError(t, b.err)
	assert.Len(t, b.list, 2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&search.calls))
	assert.NotEmpty(t, cache.items["releases:tt0133093"])
}

func TestListForTitle(t *testing.T) {
	uc, _ := newUC(&fakeSearch{releases: sampleReleases()})

	list, err := uc.ListForTitle(context.Background(), 603, "720p")
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "b", list.Releases[0].ID)
	assert.Equal(t, 100+25+8, list.Releases[0].Score)

	_, err = uc.ListForTitle(context.Background(), 603, "8K")
	assert.Equal(t, http.StatusBadRequest, httpErrors.ParseErrors(err).Status())

	_, err = uc.ListForTitle(context.Background(), 999, "")
	assert.Equal(t, http.StatusNotFound, httpErrors.ParseErrors(err).Status())
}
