package filler

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mi-raf/memo-blog/internal/metrics"
	mod "github.com/mi-raf/memo-blog/internal/models"
)

const DefaultArchiveSize = 5000

type (
	ArchiveConfig struct {
		Size int
	}

	// Archive is a batch of filler articles built on first use and never
	// rebuilt for the lifetime of the value.
	Archive struct {
		g     *Generator
		size  int
		once  sync.Once
		items []mod.ArticleDTO
	}
)

func NewArchive(g *Generator, cfg *ArchiveConfig) *Archive {
	size := cfg.Size
	if size < 0 {
		size = 0
	}
	return &Archive{g: g, size: size}
}

func (a *Archive) load() []mod.ArticleDTO {
	a.once.Do(func() {
		start := time.Now()
		a.items = a.g.GenerateBatch(a.size)
		metrics.ArchiveSize.Set(float64(len(a.items)))
		log.Debug().Int("size", a.size).Dur("duration", time.Since(start)).Msg("archive generated")
	})
	return a.items
}

// Items returns the whole archive. Callers must not modify the result.
func (a *Archive) Items() []mod.ArticleDTO {
	return a.load()
}

func (a *Archive) Len() int {
	return len(a.load())
}

// Page returns a copy of the articles in [offset, offset+limit). A
// non-positive limit selects everything after offset.
func (a *Archive) Page(offset, limit int) []mod.ArticleDTO {
	items := a.load()
	if offset < 0 {
		offset = 0
	}
	if offset > len(items) {
		offset = len(items)
	}
	end := len(items)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	out := make([]mod.ArticleDTO, end-offset)
	copy(out, items[offset:end])
	return out
}
