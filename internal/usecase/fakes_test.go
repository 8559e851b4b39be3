package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"portal-api/internal/domain/lca"
	"portal-api/internal/infrastructure/storage"
	"portal-api/internal/repository"
)

func errPostingNotFound() error { return repository.ErrPostingNotFound }

type fakeRepo struct {
	mu sync.Mutex

	items     []lca.Posting
	listErr   error
	getErr    error
	insertErr error
	updateErr error

	listCalls int
	inserted  []lca.Posting
}

func (r *fakeRepo) ListPostings(_ context.Context, f lca.Filter, limit, offset int) ([]lca.Posting, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	all := lca.Apply(r.items, f)
	if offset >= len(all) {
		return []lca.Posting{}, len(all), nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], len(all), nil
}

func (r *fakeRepo) GetPosting(_ context.Context, id string) (lca.Posting, error) {
	if r.getErr != nil {
		return lca.Posting{}, r.getErr
	}
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return lca.Posting{}, errPostingNotFound()
}

func (r *fakeRepo) InsertPosting(_ context.Context, p lca.Posting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, p)
	return nil
}

func (r *fakeRepo) UpdatePostingStatus(_ context.Context, id string, status lca.Status) (lca.Posting, error) {
	if r.updateErr != nil {
		return lca.Posting{}, r.updateErr
	}
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Status = status
			return r.items[i], nil
		}
	}
	return lca.Posting{}, errPostingNotFound()
}

type fakeCache struct {
	mu       sync.Mutex
	data     map[string]any
	sets     int
	patterns []string
	deleted  []string
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string]any{}} }

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return false, nil
	}
	if raw, ok := v.([]byte); ok {
		if err := json.Unmarshal(raw, out); err != nil {
			return false, err
		}
		return true, nil
	}
	if res, ok := v.(LCAListResult); ok {
		*(out.(*LCAListResult)) = res
	}
	return true, nil
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.sets++
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, key)
	delete(c.data, key)
	return nil
}

func (c *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.patterns = append(c.patterns, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

type fakeSink struct {
	events []lca.Event
}

func (s *fakeSink) PublishPostingEvent(_ context.Context, evt lca.Event) error {
	s.events = append(s.events, evt)
	return nil
}

type fakeArchiver struct {
	postings []lca.Posting
	docs     []storage.Document
	err      error
}

func (a *fakeArchiver) ArchivePosting(_ context.Context, p lca.Posting) error {
	a.postings = append(a.postings, p)
	return a.err
}

func (a *fakeArchiver) ArchiveDocument(_ context.Context, id string, doc storage.Document) (string, error) {
	a.docs = append(a.docs, doc)
	return storage.DocumentKey(id, doc.Filename), a.err
}
