package i18n_test

import (
	"testing"

	"github.com/mi-raf/memo-blog/internal/i18n"
	"github.com/stretchr/testify/suite"
)

type TranslatorTestSuite struct {
	suite.Suite
	t *i18n.Translator
}

func (s *TranslatorTestSuite) SetupSuite() {
	var err error
	s.t, err = i18n.NewTranslator()
	s.Require().NoError(err)
}

func (s *TranslatorTestSuite) TestRussian() {
	// when
	labels := s.t.Labels("ru")

	// then
	s.Equal(map[string]string{
		i18n.KeyHeader: "Заголовок",
		i18n.KeyText:   "Текст",
		i18n.KeyAdd:    "Добавить",
		i18n.KeyClear:  "Очистить",
	}, labels)
}

func (s *TranslatorTestSuite) TestEveryCodeHasEveryKey() {
	for _, code := range i18n.Codes() {
		for _, key := range i18n.Keys() {
			l := s.t.Label(key, code)
			s.NotEmpty(l)
			s.NotEqual(key, l, "%s/%s", code, key)
		}
	}
}

func (s *TranslatorTestSuite) TestLanguagesDiffer() {
	s.Equal("Add", s.t.Label(i18n.KeyAdd, "en"))
	s.Equal("Ekle", s.t.Label(i18n.KeyAdd, "tr"))
	s.Equal("Əlavə et", s.t.Label(i18n.KeyAdd, "az"))
}

func (s *TranslatorTestSuite) TestMissingKeyReturnsKey() {
	s.Equal("SUBMIT", s.t.Label("SUBMIT", "ru"))
	s.Equal("SUBMIT", s.t.Label("SUBMIT", "en"))
	s.Equal("A%d", s.t.Label("A%d", "ru"))
	s.Equal("100%", s.t.Label("100%", "tr"))
}

func (s *TranslatorTestSuite) TestUnknownCodeUsesDefault() {
	s.Equal("Header", s.t.Label(i18n.KeyHeader, "de"))
	s.Equal("Header", s.t.Label(i18n.KeyHeader, ""))
}

func (s *TranslatorTestSuite) TestSupported() {
	s.ElementsMatch([]string{"az", "en", "ru", "tr"}, i18n.Codes())
	s.True(i18n.Supported("tr"))
	s.False(i18n.Supported("TR"))
	s.False(i18n.Supported("fr"))
}

func TestTranslatorTestSuite(t *testing.T) {
	suite.Run(t, new(TranslatorTestSuite))
}
