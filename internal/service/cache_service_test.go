package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/ecollege-api/internal/dto"
	appErrors "github.com/noah-isme/ecollege-api/pkg/errors"
)

type memCacheRepo struct {
	items       map[string][]byte
	ttls        map[string]time.Duration
	counters    map[string]int64
	invalidated int
}

func newMemCacheRepo() *memCacheRepo {
	return &memCacheRepo{items: map[string][]byte{}, ttls: map[string]time.Duration{}, counters: map[string]int64{}}
}

func (m *memCacheRepo) Counter(ctx context.Context, key string) (int64, error) {
	return m.counters[key], nil
}

func (m *memCacheRepo) Incr(ctx context.Context, key string) (int64, error) {
	m.counters[key]++
	return m.counters[key], nil
}

func (m *memCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := m.items[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.items[key] = raw
	m.ttls[key] = ttl
	return nil
}

func (m *memCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	m.invalidated++
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range m.items {
		if strings.HasPrefix(k, prefix) {
			delete(m.items, k)
		}
	}
	return nil
}

func TestNilCacheServiceIsNoop(t *testing.T) {
	var svc *CacheService
	var dest map[string]string
	assert.False(t, svc.Enabled())
	assert.False(t, svc.Get(context.Background(), "k", &dest))
	svc.Set(context.Background(), "k", "v")
	svc.InvalidateAll(context.Background())
}

func TestDisabledCacheServiceSkipsBackend(t *testing.T) {
	repo := newMemCacheRepo()
	svc := NewCacheService(repo, nil, time.Minute, nil, false)
	svc.Set(context.Background(), "k", "v")
	assert.Empty(t, repo.items)
}

func TestCacheServiceUsesDefaultTTL(t *testing.T) {
	repo := newMemCacheRepo()
	svc := NewCacheService(repo, NewMetricsService(), 0, nil, true)
	svc.Set(context.Background(), "k", "v")

	var got string
	require.True(t, svc.Get(context.Background(), "k", &got))
	assert.Equal(t, "v", got)
	assert.Equal(t, 5*time.Minute, repo.ttls["k"])
}

func TestViewsAreCachedAndWritesInvalidate(t *testing.T) {
	ctx := context.Background()
	repo := newMemCacheRepo()
	cacheSvc := NewCacheService(repo, nil, time.Minute, nil, true)
	svc := newServices(cacheSvc)

	law, err := svc.faculties.Create(ctx, dto.CreateFacultyRequest{Name: "Law", Dean: "A", Email: "a@x.com"})
	require.NoError(t, err)
	_, err = svc.faculties.Get(ctx, law.ID)
	require.NoError(t, err)
	require.Contains(t, repo.items, cacheSvc.Key(ctx, viewKey("faculties", law.ID)))

	// Mutate the store behind the cache; the cached view is still served.
	f := svc.store.faculties[law.ID]
	f.Dean = "stale"
	svc.store.faculties[law.ID] = f
	view, err := svc.faculties.Get(ctx, law.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", view.Dean)

	_, err = svc.departments.Create(ctx, dto.CreateDepartmentRequest{Name: "Tax", Head: "B", Email: "b@x.com", FacultyID: law.ID})
	require.NoError(t, err)
	assert.Empty(t, repo.items)

	view, err = svc.faculties.Get(ctx, law.ID)
	require.NoError(t, err)
	assert.Equal(t, "stale", view.Dean)
	assert.Len(t, view.Departments, 1)
}

func TestCacheKeysFollowGeneration(t *testing.T) {
	ctx := context.Background()
	repo := newMemCacheRepo()
	svc := NewCacheService(repo, NewMetricsService(), time.Minute, nil, true)

	assert.Equal(t, "ecollege:view:0:faculties:list", svc.Key(ctx, listKey("faculties")))
	svc.InvalidateAll(ctx)
	assert.Equal(t, "ecollege:view:1:faculties:list", svc.Key(ctx, listKey("faculties")))
	assert.Equal(t, int64(1), repo.counters[GenerationKey])

	var disabled *CacheService
	assert.Empty(t, disabled.Key(ctx, listKey("faculties")))
}

func TestWriteDuringReadDoesNotCacheStaleView(t *testing.T) {
	ctx := context.Background()
	repo := newMemCacheRepo()
	svc := newServices(NewCacheService(repo, nil, time.Minute, nil, true))

	law, err := svc.faculties.Create(ctx, dto.CreateFacultyRequest{Name: "Law", Dean: "A", Email: "a@x.com"})
	require.NoError(t, err)

	// A write lands between the list read and its cache store.
	svc.store.afterFacultyList = func() {
		current, err := svc.faculties.Find(ctx, law.ID)
		require.NoError(t, err)
		_, err = svc.faculties.Update(ctx, current, dto.UpdateFacultyRequest{Dean: strPtr("Z")})
		require.NoError(t, err)
	}
	first, err := svc.faculties.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "A", first[0].Dean)

	second, err := svc.faculties.List(ctx)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Z", second[0].Dean)
}
