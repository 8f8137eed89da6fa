package filler

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v7"

	mod "github.com/mi-raf/memo-blog/internal/models"
)

// MaxPhraseLen bounds the generated text in runes.
const MaxPhraseLen = 160

// maxAttempts guards against an empty draw from the word lists.
const maxAttempts = 8

type (
	Config struct {
		Seed uint64
	}

	Generator struct {
		m sync.Mutex
		f *gofakeit.Faker
	}
)

// NewGenerator returns a generator. A zero seed draws a random one.
func NewGenerator(cfg *Config) *Generator {
	return &Generator{f: gofakeit.New(cfg.Seed)}
}

// Generate returns one filler article with a non-empty header and text.
func (g *Generator) Generate() mod.ArticleDTO {
	g.m.Lock()
	defer g.m.Unlock()
	return mod.ArticleDTO{
		Header: g.draw(g.f.HackerAbbreviation, mod.HeaderMaxLen, "API"),
		Text:   g.draw(g.f.HackerPhrase, MaxPhraseLen, "parse the virtual bus"),
	}
}

// GenerateBatch returns exactly n articles in generation order.
func (g *Generator) GenerateBatch(n int) []mod.ArticleDTO {
	if n <= 0 {
		return []mod.ArticleDTO{}
	}
	out := make([]mod.ArticleDTO, n)
	for i := range out {
		out[i] = g.Generate()
	}
	return out
}

func (g *Generator) draw(src func() string, max int, fallback string) string {
	for i := 0; i < maxAttempts; i++ {
		if s := clean(src(), max); s != "" {
			return s
		}
	}
	return fallback
}

// clean strips control characters, collapses whitespace and truncates to max
// runes on a word boundary when one is available.
func clean(s string, max int) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)[:max]
	cut := string(r)
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut)
}
