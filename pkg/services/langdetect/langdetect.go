// Package langdetect classifies chat input as English or Urdu by character set.
package langdetect

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language is a detected input language.
type Language uint8

const (
	Unknown Language = iota
	English
	Urdu
)

// Urdu is written in the Arabic block.
const (
	arabicLo = 0x0600
	arabicHi = 0x06FF
)

var names = display.English.Languages()

// Tag returns the BCP 47 tag of the language, und for Unknown.
func (z Language) Tag() language.Tag {
	switch z {
	case English:
		return language.English
	case Urdu:
		return language.Urdu
	}
	return language.Und
}

// Name returns the English display name, as shown on the chat surface.
func (z Language) Name() string {
	if z == Unknown {
		return "Unknown"
	}
	return names.Name(z.Tag())
}

// Code returns the short language code used by translation backends.
func (z Language) Code() string {
	return z.Tag().String()
}

// Either script may carry basic punctuation; a hyphen, quotes and
// underscores only make sense on the Latin side.
var validPattern = regexp.MustCompile(`^[\w\s.,!?'"-]+$|^[\x{0600}-\x{06FF}\s.,!?]+$`)

// Validate reports whether text is non-blank and stays within one of the
// two accepted character sets. Input mixing Latin and Arabic letters fails
// both alternatives.
func Validate(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	return validPattern.MatchString(text)
}

// Detect classifies text by code points. Any Arabic-block character marks
// the whole input as Urdu, a Latin letter as English, anything else is
// Unknown.
func Detect(text string) Language {
	for _, r := range text {
		if r >= arabicLo && r <= arabicHi {
			return Urdu
		}
	}
	for _, r := range text {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return English
		}
	}
	return Unknown
}
