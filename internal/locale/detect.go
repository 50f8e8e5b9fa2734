package locale

import (
	"strings"

	golocale "github.com/jeandeaual/go-locale"

	"shelf/internal/log"
)

// Detect returns the language code of the system locale, or DefaultLanguage
// when it cannot be determined.
func Detect() string {
	sysLocale, err := golocale.GetLocale()
	if err != nil || sysLocale == "" {
		log.Debug("Could not detect system locale: %v", err)
		return DefaultLanguage
	}
	if lang := normalize(sysLocale); lang != "" {
		return lang
	}
	return DefaultLanguage
}

// normalize reduces a locale identifier like "en_US.UTF-8" or "tr-TR" to the
// bare language code.
func normalize(identifier string) string {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	for _, sep := range []string{".", "_", "-"} {
		if idx := strings.Index(identifier, sep); idx >= 0 {
			identifier = identifier[:idx]
		}
	}
	return identifier
}
