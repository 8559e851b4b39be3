package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"portal-api/internal/domain/lca"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(ps []lca.Posting) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

const fallbackIDPrefix = "8c6f2b1e-3d1a-4f57-9a0e-1b2c3d4e5f"

func TestLCAQuery_FallbackWhenLiveReadFails(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection refused")}
	cache := newFakeCache()
	uc := NewLCAQueryUsecase(repo, cache, nil)

	res := uc.ListPostings(context.Background(), LCAListParams{Page: 2, Limit: 2})

	want := []string{fallbackIDPrefix + "02", fallbackIDPrefix + "01"}
	if diff := cmp.Diff(want, ids(res.Postings)); diff != "" {
		t.Fatalf("page 2 mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, lca.Pagination{Page: 2, Limit: 2, Total: 4, TotalPages: 2}, res.Pagination)
	assert.Equal(t, 0, cache.sets, "fallback results are not cached")
}

func TestLCAQuery_DemoModeWithoutRepository(t *testing.T) {
	uc := NewLCAQueryUsecase(nil, nil, nil)

	res := uc.ListPostings(context.Background(), LCAListParams{Status: "pending"})
	assert.Empty(t, res.Postings, "non-admin never sees pending postings")

	res = uc.ListPostings(context.Background(), LCAListParams{Status: "pending", Admin: true})
	require.Len(t, res.Postings, 1)
	assert.Equal(t, lca.StatusPending, res.Postings[0].Status)
}

func TestLCAQuery_NonAdminOnlySeesCertified(t *testing.T) {
	uc := NewLCAQueryUsecase(&fakeRepo{items: lca.FallbackPostings()}, nil, nil)

	for _, st := range []string{"", "pending", "withdrawn", "expired", "certified"} {
		res := uc.ListPostings(context.Background(), LCAListParams{Status: st, Limit: 100})
		for _, p := range res.Postings {
			assert.Equal(t, lca.StatusCertified, p.Status, "status filter %q", st)
		}
	}
}

func TestLCAQuery_CachesLiveResults(t *testing.T) {
	repo := &fakeRepo{items: lca.FallbackPostings()}
	cache := newFakeCache()
	uc := NewLCAQueryUsecase(repo, cache, nil)

	first := uc.ListPostings(context.Background(), LCAListParams{Search: "sap"})
	second := uc.ListPostings(context.Background(), LCAListParams{Search: "SAP"})

	assert.Equal(t, 1, repo.listCalls, "second call served from cache")
	assert.Equal(t, first, second)
	assert.Equal(t, 3, first.Pagination.Total)
}

func TestLCAQuery_DropsUnreadableCacheEntry(t *testing.T) {
	repo := &fakeRepo{items: lca.FallbackPostings()}
	cache := newFakeCache()
	key := LCAListCacheKey(lca.Filter{CertifiedOnly: true}, 1, 10)
	cache.data[key] = []byte(`{"postings":`)
	uc := NewLCAQueryUsecase(repo, cache, nil)

	res := uc.ListPostings(context.Background(), LCAListParams{})
	assert.Equal(t, 4, res.Pagination.Total)
	assert.Equal(t, 1, repo.listCalls)
	assert.Equal(t, []string{key}, cache.deleted)
	assert.Equal(t, res, cache.data[key], "fresh result written back")
}

func TestIsCorruptCacheEntry(t *testing.T) {
	var out LCAListResult
	assert.True(t, isCorruptCacheEntry(json.Unmarshal([]byte(`{"postings":`), &out)))
	assert.True(t, isCorruptCacheEntry(json.Unmarshal([]byte(`{"postings":"x"}`), &out)))
	assert.False(t, isCorruptCacheEntry(errors.New("dial tcp: connection refused")))
	assert.False(t, isCorruptCacheEntry(nil))
}

func TestLCAQuery_AdminAndPublicUseDistinctCacheKeys(t *testing.T) {
	f := lca.Filter{}
	pub := LCAListCacheKey(lca.Filter{CertifiedOnly: true}, 1, 10)
	adm := LCAListCacheKey(f, 1, 10)
	assert.NotEqual(t, pub, adm)
	assert.Regexp(t, `^lca:list:[0-9a-f]{64}$`, pub)
	assert.Equal(t, LCAListCacheKey(lca.Filter{Search: " Cloud "}, 0, 0), LCAListCacheKey(lca.Filter{Search: "cloud"}, 1, 10))
}

func TestLCAQuery_GetPosting(t *testing.T) {
	uc := NewLCAQueryUsecase(nil, nil, nil)
	ctx := context.Background()

	p, err := uc.GetPosting(ctx, fallbackIDPrefix+"01", false)
	require.NoError(t, err)
	assert.Equal(t, "SAP Ariba Functional Consultant", p.JobTitle)

	_, err = uc.GetPosting(ctx, fallbackIDPrefix+"04", false)
	assert.ErrorIs(t, err, ErrNotFound, "pending posting hidden from public")

	p, err = uc.GetPosting(ctx, fallbackIDPrefix+"04", true)
	require.NoError(t, err)
	assert.Equal(t, lca.StatusPending, p.Status)

	_, err = uc.GetPosting(ctx, "missing", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLCAQuery_GetPosting_LiveNotFoundIsAuthoritative(t *testing.T) {
	uc := NewLCAQueryUsecase(&fakeRepo{}, nil, nil)
	_, err := uc.GetPosting(context.Background(), fallbackIDPrefix+"01", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLCAQuery_GetPosting_FallsBackOnError(t *testing.T) {
	uc := NewLCAQueryUsecase(&fakeRepo{getErr: errors.New("timeout")}, nil, nil)
	p, err := uc.GetPosting(context.Background(), fallbackIDPrefix+"03", false)
	require.NoError(t, err)
	assert.Equal(t, lca.VisaE3, p.VisaType)
	assert.True(t, p.CreatedAt.Before(time.Now()))
}
