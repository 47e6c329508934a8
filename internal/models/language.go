package models

import "golang.org/x/text/language"

// DefaultLanguage is used for new stores and unrecognized language codes.
const DefaultLanguage = "id"

// supportedLanguages lists the ledger languages in matcher priority order.
var supportedLanguages = []string{"id", "en"}

var languageMatcher = language.NewMatcher([]language.Tag{
	language.Indonesian,
	language.English,
})

// SupportedLanguage reports whether code is an exact supported language code.
func SupportedLanguage(code string) bool {
	for _, lang := range supportedLanguages {
		if code == lang {
			return true
		}
	}
	return false
}

// NormalizeLanguage coerces a language code to a supported one. Exact codes
// pass through, regional variants ("en-US") match their base language, and
// anything unrecognized falls back to DefaultLanguage.
func NormalizeLanguage(code string) string {
	if SupportedLanguage(code) {
		return code
	}

	tag, err := language.Parse(code)
	if err != nil {
		return DefaultLanguage
	}
	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return DefaultLanguage
	}
	return supportedLanguages[index]
}
