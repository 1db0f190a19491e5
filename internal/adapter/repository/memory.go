package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"resume-builder/internal/errs"
	"resume-builder/internal/model"
)

// MemoryRepo is an in-memory Resumes implementation used when no database
// is configured, and by tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	resumes map[int]model.Resume
	nextID  int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{resumes: make(map[int]model.Resume), nextID: 1}
}

func (r *MemoryRepo) Create(ctx context.Context, res model.Resume) (model.Resume, error) {
	if err := ctx.Err(); err != nil {
		return model.Resume{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	res.ID = r.nextID
	r.nextID++
	now := time.Now().UTC()
	res.CreatedAt = now
	res.UpdatedAt = now
	r.resumes[res.ID] = res
	return res, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id int) (model.Resume, error) {
	if err := ctx.Err(); err != nil {
		return model.Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.resumes[id]
	if !ok {
		return model.Resume{}, errs.ErrNotFound
	}
	return res, nil
}

func (r *MemoryRepo) GetByShareID(ctx context.Context, shareID string) (model.Resume, error) {
	if err := ctx.Err(); err != nil {
		return model.Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, res := range r.resumes {
		if res.ShareID == shareID {
			return res, nil
		}
	}
	return model.Resume{}, errs.ErrNotFound
}

func (r *MemoryRepo) List(ctx context.Context) ([]model.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Resume, 0, len(r.resumes))
	for _, res := range r.resumes {
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, res model.Resume) (model.Resume, error) {
	if err := ctx.Err(); err != nil {
		return model.Resume{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.resumes[res.ID]
	if !ok {
		return model.Resume{}, errs.ErrNotFound
	}
	// identity and creation metadata are immutable
	res.ShareID = existing.ShareID
	res.CreatedAt = existing.CreatedAt
	res.UpdatedAt = time.Now().UTC()
	r.resumes[res.ID] = res
	return res, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resumes[id]; !ok {
		return false, nil
	}
	delete(r.resumes, id)
	return true, nil
}
