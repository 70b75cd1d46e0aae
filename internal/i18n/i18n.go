// Package i18n handles localized user-facing strings.
//
// Messages live in a single embedded en-GB bundle and use ICU placeholders
// ({file}) and plurals. The user's locale is still resolved so that a locale
// file dropped next to it is picked up without code changes.
package i18n

import (
	"embed"
	"fmt"
	"os"
	"strings"
	"sync"

	goLocale "github.com/jeandeaual/go-locale"
	i18nLib "github.com/kaptinlin/go-i18n"
	"golang.org/x/text/language"
)

// TestModeEnv makes T return the key and its arguments instead of a translation.
const TestModeEnv = "GREETSYNC_TEST"

const (
	defaultLocale = "en-GB"
	bundleGlob    = "lang/*.json"
)

//go:embed lang/*.json
var langFS embed.FS

type LocaleProvider interface {
	GetLocales() ([]string, error)
}

type DefaultLocaleProvider struct{}

func (provider DefaultLocaleProvider) GetLocales() ([]string, error) {
	return goLocale.GetLocales()
}

type TData map[string]interface{}

type Tvars struct {
	Count int
	Data  *TData
}

// translator serialises lookups; the go-i18n localizer caches parsed messages without locking.
type translator struct {
	mu        sync.Mutex
	localizer *i18nLib.Localizer
}

var (
	localeProvider LocaleProvider = DefaultLocaleProvider{}

	stateMu    sync.Mutex
	active     *translator
	activeOnce = &sync.Once{}
)

func newTranslator(locales []string) *translator {
	bundle := i18nLib.NewBundle(
		i18nLib.WithDefaultLocale(defaultLocale),
		i18nLib.WithLocales(defaultLocale),
	)
	if err := bundle.LoadFS(langFS, bundleGlob); err != nil {
		panic(err)
	}
	return &translator{localizer: bundle.NewLocalizer(locales...)}
}

func (tr *translator) get(key string, vars i18nLib.Vars) string {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if vars == nil {
		return tr.localizer.Get(key)
	}
	return tr.localizer.Get(key, vars)
}

func current() *translator {
	stateMu.Lock()
	once := activeOnce
	stateMu.Unlock()

	once.Do(func() {
		tr := newTranslator(buildLocalizerLocales(getUserLocales()))
		stateMu.Lock()
		active = tr
		stateMu.Unlock()
	})

	stateMu.Lock()
	defer stateMu.Unlock()
	return active
}

// ResetForTesting drops the cached translator so the next T call re-reads the locale.
func ResetForTesting() {
	stateMu.Lock()
	defer stateMu.Unlock()
	active = nil
	activeOnce = &sync.Once{}
}

func T(key string, args ...Tvars) string {
	if _, present := os.LookupEnv(TestModeEnv); present {
		return formatKeyAndArgs(key, args...)
	}
	if len(args) > 1 {
		panic("Too many arguments")
	}
	if len(args) == 0 {
		return current().get(key, nil)
	}

	vars := i18nLib.Vars{"count": args[0].Count}
	if args[0].Data != nil {
		for name, value := range *args[0].Data {
			vars[name] = value
		}
	}
	return current().get(key, vars)
}

func getUserLocales() []string {
	if envLocale, present := os.LookupEnv("LANG"); present {
		return []string{envLocale}
	}

	detected, err := localeProvider.GetLocales()
	if err != nil {
		return []string{language.English.String()}
	}
	return detected
}

func formatKeyAndArgs(key string, args ...Tvars) string {
	var sb strings.Builder
	sb.WriteString(key)
	for i, arg := range args {
		fmt.Fprintf(&sb, ", Arg %d: {Count: %d, Data: %v}", i+1, arg.Count, arg.Data)
	}
	return sb.String()
}

// buildLocalizerLocales turns raw OS locale names (en_GB.UTF-8, de_DE) into BCP 47 tags,
// each followed by its base language, without duplicates.
func buildLocalizerLocales(rawLocales []string) []string {
	locales := make([]string, 0, len(rawLocales)*2)
	seen := make(map[string]bool, len(rawLocales)*2)
	add := func(locale string) {
		if locale != "" && !seen[locale] {
			seen[locale] = true
			locales = append(locales, locale)
		}
	}

	for _, raw := range rawLocales {
		name, _, _ := strings.Cut(raw, ".")
		if name == "" {
			continue
		}
		tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
		if err != nil {
			continue
		}
		add(tag.String())
		if base, confidence := tag.Base(); confidence != language.No {
			add(base.String())
		}
	}
	return locales
}
