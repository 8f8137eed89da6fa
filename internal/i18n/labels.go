// Package i18n holds the static label tables for the UI languages.
package i18n

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	KeyHeader = "HEADER"
	KeyText   = "TEXT"
	KeyAdd    = "ADD"
	KeyClear  = "CLEAR"

	DefaultCode = "en"
)

var keys = []string{KeyHeader, KeyText, KeyAdd, KeyClear}

var codes = []string{"az", "en", "ru", "tr"}

var tables = map[string]map[string]string{
	"az": {KeyHeader: "Başlıq", KeyText: "Mətn", KeyAdd: "Əlavə et", KeyClear: "Təmizlə"},
	"en": {KeyHeader: "Header", KeyText: "Text", KeyAdd: "Add", KeyClear: "Clear"},
	"ru": {KeyHeader: "Заголовок", KeyText: "Текст", KeyAdd: "Добавить", KeyClear: "Очистить"},
	"tr": {KeyHeader: "Başlık", KeyText: "Metin", KeyAdd: "Ekle", KeyClear: "Temizle"},
}

type Translator struct {
	printers map[string]*message.Printer
}

// NewTranslator builds a catalog from the static tables.
func NewTranslator() (*Translator, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	printers := make(map[string]*message.Printer, len(codes))
	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("parse language %s: %w", code, err)
		}
		for key, msg := range tables[code] {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("set %s/%s: %w", code, key, err)
			}
		}
		printers[code] = message.NewPrinter(tag, message.Catalog(b))
	}
	log.Debug().Strs("languages", codes).Msg("translation catalog loaded")
	return &Translator{printers: printers}, nil
}

func Codes() []string {
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}

func Keys() []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

func Supported(code string) bool {
	_, ok := tables[code]
	return ok
}

// Label resolves key for code. Unknown codes use the default table; a key
// missing from the table falls back to English and then to the key itself.
func (t *Translator) Label(key, code string) string {
	if !Supported(code) {
		code = DefaultCode
	}
	if s, ok := t.lookup(key, code); ok {
		return s
	}
	if code != DefaultCode {
		if s, ok := t.lookup(key, DefaultCode); ok {
			return s
		}
	}
	return key
}

func (t *Translator) Labels(code string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[k] = t.Label(k, code)
	}
	return out
}

// lookup reports false when the table has no message for key. Keys never
// reach the printer as a format string unless they are known.
func (t *Translator) lookup(key, code string) (string, bool) {
	if _, ok := tables[code][key]; !ok {
		return "", false
	}
	return t.printers[code].Sprintf(key), true
}
