// Package i18n resolves language tags and message printers for user-facing
// campaign text.
//
// Catalog keys are the English source strings used by the domain packages,
// so a printer for an unsupported tag falls back to English text unchanged.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{
	language.English,
	language.Italian,
}

var tagMatcher = language.NewMatcher(supportedTags)

// SupportedTags returns the list of supported language tags.
func SupportedTags() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// DefaultTag returns the default language tag.
func DefaultTag() language.Tag {
	return language.English
}

// ParseTag matches a BCP 47 value against the supported tags.
// The bool is false when the value is malformed or has no close match.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	_, index, confidence := tagMatcher.Match(parsed)
	if confidence == language.No {
		return language.Tag{}, false
	}
	return supportedTags[index], true
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// PrinterFor returns a printer for a locale string, falling back to the
// default tag when the locale is unsupported.
func PrinterFor(locale string) *message.Printer {
	tag, ok := ParseTag(locale)
	if !ok {
		tag = DefaultTag()
	}
	return Printer(tag)
}

// Translate renders each catalog key through p.
func Translate(p *message.Printer, keys []string) []string {
	if len(keys) == 0 {
		return nil
	}
	out := make([]string, len(keys))
	for i, key := range keys {
		out[i] = p.Sprintf(key)
	}
	return out
}
