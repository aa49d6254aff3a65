// Package i18n holds the display languages of the tracking page, the
// translation catalog and the locale-aware date and time formatting.
//
// The language is always passed explicitly; there is no package-level
// "current language".
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported display language.
type Language string

const (
	// Arabic renders right-to-left with Arabic-Indic digits (ar-EG).
	Arabic Language = "ar"
	// English renders left-to-right (en-US).
	English Language = "en"
)

// DefaultLanguage is used when nothing else selects a language.
const DefaultLanguage = Arabic

var supported = []Language{Arabic, English}

var matcher = language.NewMatcher([]language.Tag{language.Arabic, language.English})

// Parse returns the language for a code such as "ar", "EN" or "en-US".
func Parse(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return "", false
	}
	base, _, _ := strings.Cut(code, "-")
	for _, l := range supported {
		if string(l) == base {
			return l, true
		}
	}
	return "", false
}

// Negotiate picks a language from an Accept-Language header value.
// It returns fallback when the header is empty, malformed or matches nothing.
func Negotiate(acceptLanguage string, fallback Language) Language {
	if strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return supported[index]
}

// Toggle returns the other supported language.
func (l Language) Toggle() Language {
	if l == Arabic {
		return English
	}
	return Arabic
}

// Dir returns the HTML text direction.
func (l Language) Dir() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

// Locale returns the BCP 47 locale used for formatting.
func (l Language) Locale() string {
	if l == Arabic {
		return "ar-EG"
	}
	return "en-US"
}

// IsRTL reports whether the language is written right-to-left.
func (l Language) IsRTL() bool {
	return l.Dir() == "rtl"
}
