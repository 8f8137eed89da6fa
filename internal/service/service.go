package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mi-raf/memo-blog/internal/filler"
	"github.com/mi-raf/memo-blog/internal/i18n"
	"github.com/mi-raf/memo-blog/internal/metrics"
	"github.com/mi-raf/memo-blog/internal/models"
	"github.com/mi-raf/memo-blog/internal/storage"
)

var (
	ErrDatabase            = errors.New("database error")
	ErrNotFound            = errors.New("not found")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

type (
	Config struct {
		DefaultLanguage string
	}

	// PostService is the application session: the post collection, the
	// filler archive and the active UI language.
	PostService struct {
		r       storage.PostRepository
		archive *filler.Archive
		tr      *i18n.Translator

		m    sync.RWMutex
		lang string
	}
)

func NewPostService(r storage.PostRepository, a *filler.Archive, tr *i18n.Translator, cfg *Config) (*PostService, error) {
	lang := cfg.DefaultLanguage
	if lang == "" {
		lang = i18n.DefaultCode
	}
	if !i18n.Supported(lang) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	return &PostService{r: r, archive: a, tr: tr, lang: lang}, nil
}

// AddPost trims both fields and appends a post. Blank input is ignored
// silently: the result is nil with a nil error and nothing is stored.
func (s *PostService) AddPost(ctx context.Context, header, text string) (*models.PostDTO, error) {
	header = strings.TrimSpace(header)
	text = strings.TrimSpace(text)
	if header == "" || text == "" {
		metrics.PostsRejected.Inc()
		return nil, nil
	}

	p := &models.PostDTO{Header: header, Text: text, Time: time.Now().UTC()}
	id, err := s.r.Add(ctx, p)
	if err != nil {
		log.Error().Err(err).Msg("can not add post")
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	p.Id = id
	metrics.PostsAdded.Inc()
	return p, nil
}

func (s *PostService) Posts(ctx context.Context, offset int64, limit int) ([]*models.PostDTO, int, error) {
	posts, err := s.r.GetAll(ctx, offset, limit)
	if err != nil {
		log.Error().Err(err).Msg("can not get posts")
		return nil, 0, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	total, err := s.r.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("can not count posts")
		return nil, 0, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	return posts, total, nil
}

func (s *PostService) Post(ctx context.Context, id int64) (*models.PostDTO, error) {
	p, err := s.r.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("can not get post")
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	if p == nil {
		return nil, fmt.Errorf("post %d: %w", id, ErrNotFound)
	}
	return p, nil
}

// Clear leaves the collection untouched and reports its size.
func (s *PostService) Clear(ctx context.Context) (int, error) {
	log.Debug().Msg("clear requested, no action bound")
	n, err := s.r.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	return n, nil
}

func (s *PostService) Archive(offset, limit int) []models.ArticleDTO {
	return s.archive.Page(offset, limit)
}

func (s *PostService) ArchiveLen() int {
	return s.archive.Len()
}

func (s *PostService) SetLanguage(code string) error {
	if !i18n.Supported(code) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	s.m.Lock()
	prev := s.lang
	s.lang = code
	s.m.Unlock()
	log.Debug().Str("from", prev).Str("to", code).Msg("language changed")
	return nil
}

func (s *PostService) Language() string {
	s.m.RLock()
	defer s.m.RUnlock()
	return s.lang
}

func (s *PostService) Label(key string) string {
	lang := s.Language()
	metrics.LabelLookups.WithLabelValues(lang).Inc()
	return s.tr.Label(key, lang)
}

// Labels returns the label table for code, or for the active language
// when code is empty.
func (s *PostService) Labels(code string) (string, map[string]string, error) {
	if code == "" {
		code = s.Language()
	} else if !i18n.Supported(code) {
		return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	metrics.LabelLookups.WithLabelValues(code).Inc()
	return code, s.tr.Labels(code), nil
}
