package storage

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	mod "github.com/mi-raf/memo-blog/internal/models"
)

const (
	STARTCAP = 128
)

type (
	PostRepository interface {
		Add(ctx context.Context, post *mod.PostDTO) (int64, error)
		GetAll(ctx context.Context, offset int64, limit int) ([]*mod.PostDTO, error)
		Get(ctx context.Context, id int64) (*mod.PostDTO, error)
		Count(ctx context.Context) (int, error)
	}

	PostConfig struct {
		Capacity int
	}

	// InMemoryPostRepository keeps posts in insertion order. Posts are only
	// ever appended; ids start at 1 and equal the position in the slice plus one.
	InMemoryPostRepository struct {
		posts []*mod.PostDTO
		m     sync.RWMutex
		idGen int64
	}
)

func NewPostRepositoryProvider(cfg *PostConfig) PostRepository {
	c := cfg.Capacity
	if c <= 0 {
		c = STARTCAP
	}
	log.Debug().Int("capacity", c).Msg("init in-memory post repository")
	return &InMemoryPostRepository{posts: make([]*mod.PostDTO, 0, c), idGen: 1}
}

func NewInMemoryPostRepository() *InMemoryPostRepository {
	return &InMemoryPostRepository{posts: make([]*mod.PostDTO, 0, STARTCAP), idGen: 1}
}

func (r *InMemoryPostRepository) Add(ctx context.Context, post *mod.PostDTO) (int64, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	r.m.Lock()
	defer r.m.Unlock()
	p := *post
	p.Id = r.idGen
	r.idGen++
	r.posts = append(r.posts, &p)
	post.Id = p.Id
	log.Debug().Int64("id", p.Id).Msg("post added")
	return p.Id, nil
}

func (r *InMemoryPostRepository) GetAll(ctx context.Context, offset int64, limit int) ([]*mod.PostDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.m.RLock()
	defer r.m.RUnlock()
	start, end := window(len(r.posts), offset, limit)
	p := make([]*mod.PostDTO, 0, end-start)
	for _, post := range r.posts[start:end] {
		c := *post
		p = append(p, &c)
	}
	return p, nil
}

func (r *InMemoryPostRepository) Get(ctx context.Context, id int64) (*mod.PostDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.m.RLock()
	defer r.m.RUnlock()
	if id < 1 || id > int64(len(r.posts)) {
		return nil, nil
	}
	p := *r.posts[id-1]
	return &p, nil
}

func (r *InMemoryPostRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.m.RLock()
	defer r.m.RUnlock()
	return len(r.posts), nil
}

// window clamps offset and limit to [0, n]. A non-positive limit selects
// everything after offset.
func window(n int, offset int64, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(n) {
		offset = int64(n)
	}
	start := int(offset)
	end := n
	if limit > 0 && limit < n-start {
		end = start + limit
	}
	return start, end
}
