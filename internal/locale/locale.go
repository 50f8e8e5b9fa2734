// Package locale provides the translated strings for user facing output.
//
// Translations live in embedded JSON files under locales/, one per language,
// keyed by message id. Every file carries the complete key set so switching
// languages never loses a message. English is the fallback for everything.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"shelf/internal/errors"
	"shelf/internal/log"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLanguage is used when detection fails or a translation is missing.
const DefaultLanguage = "en"

// Manager resolves message ids to strings in one language.
type Manager struct {
	lang     string
	messages map[string]string
	fallback map[string]string
}

// NewManager loads the translations for lang. An empty lang means detect the
// system language and silently fall back to English when no translations
// exist for it. An explicitly requested language that is not shipped is an
// error.
func NewManager(lang string) (*Manager, error) {
	fallback, err := load(DefaultLanguage)
	if err != nil {
		return nil, errors.Wrap(err, "loading built in translations")
	}

	explicit := lang != ""
	if !explicit {
		lang = Detect()
	}
	if lang = normalize(lang); lang == "" {
		lang = DefaultLanguage
	}

	if lang == DefaultLanguage {
		return &Manager{lang: lang, messages: fallback, fallback: fallback}, nil
	}

	messages, err := load(lang)
	if err != nil {
		if explicit {
			return nil, errors.NewConfigError("unsupported language", lang, errors.InvalidLanguage, err)
		}
		log.Debug("No translations for %q, falling back to %s", lang, DefaultLanguage)
		return &Manager{lang: DefaultLanguage, messages: fallback, fallback: fallback}, nil
	}
	return &Manager{lang: lang, messages: messages, fallback: fallback}, nil
}

// Language returns the language code the manager resolved to.
func (m *Manager) Language() string {
	return m.lang
}

// Name returns the language's own name for itself.
func (m *Manager) Name() string {
	return m.Get("_lang_name_")
}

// Get returns the message for key, formatted with args. A key missing from
// the active language falls back to English, and failing that the key itself
// is returned so the output stays usable.
func (m *Manager) Get(key string, args ...any) string {
	msg, ok := m.messages[key]
	if !ok {
		msg, ok = m.fallback[key]
	}
	if !ok {
		log.Warn("No translation for key %q", key)
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Available returns the shipped language codes, sorted.
func Available() []string {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil
	}

	var langs []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".json") {
			langs = append(langs, strings.TrimSuffix(name, ".json"))
		}
	}
	sort.Strings(langs)
	return langs
}

func load(lang string) (map[string]string, error) {
	data, err := localeFS.ReadFile("locales/" + lang + ".json")
	if err != nil {
		return nil, err
	}

	var messages map[string]string
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, errors.Wrapf(err, "invalid translation file for %s", lang)
	}
	return messages, nil
}
