package renderer

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is loaded when no language is selected
const DefaultLanguage = "en"

// ErrUnknownLanguage is returned when no catalogue exists for a language
var ErrUnknownLanguage = errors.New("unknown language")

//go:embed locales/*.po
var locales embed.FS

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet's non-constant format string check quiet,
// since keys are looked up dynamically from markup.
var dynamicGet = gotext.Get

func init() {
	_ = SetLanguage(DefaultLanguage)
}

// Languages lists the embedded catalogues, sorted
func Languages() []string {
	entries, err := fs.ReadDir(locales, "locales")
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		if name := e.Name(); strings.HasSuffix(name, ".po") {
			langs = append(langs, strings.TrimSuffix(name, ".po"))
		}
	}
	sort.Strings(langs)
	return langs
}

// SetLanguage switches translations to the embedded catalogue for lang
func SetLanguage(lang string) error {
	data, err := locales.ReadFile(path.Join("locales", lang+".po"))
	if err != nil {
		return fmt.Errorf("%w: %q (have %s)", ErrUnknownLanguage, lang, strings.Join(Languages(), ", "))
	}

	po := gotext.NewPo()
	po.Parse(data)
	dynamicGet = po.Get
	return nil
}

// T translates key, formatting it with vars when given
func T(key string, vars ...any) string {
	return dynamicGet(key, vars...)
}
