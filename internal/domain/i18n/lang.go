package i18n

import (
	"errors"
	"strings"
)

// Lang is a supported UI language.
type Lang string

// Supported languages.
const (
	FR Lang = "fr"
	EN Lang = "en"
)

// Default is the language a new page session starts in.
const Default = FR

// Supported lists every language in display order.
var Supported = []Lang{FR, EN}

// ErrUnsupported is returned by Parse for anything outside {fr, en}.
var ErrUnsupported = errors.New("unsupported language")

// Parse returns the Lang for a tag such as "fr", "EN" or "fr-CA".
// PRE: none
// POST: returns a supported Lang or ErrUnsupported
func Parse(tag string) (Lang, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	switch Lang(tag) {
	case FR:
		return FR, nil
	case EN:
		return EN, nil
	}
	return "", ErrUnsupported
}

// String implements fmt.Stringer.
func (l Lang) String() string { return string(l) }

// Valid reports whether l is one of the supported languages.
func (l Lang) Valid() bool {
	return l == FR || l == EN
}

// Other returns the language a toggle switches to.
func (l Lang) Other() Lang {
	if l == EN {
		return FR
	}
	return EN
}
