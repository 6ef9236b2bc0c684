// Package content holds the conference copy shown on the public site.
package content

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"colloque/internal/domain/i18n"
)

//go:embed default.json
var defaultJSON []byte

// ErrIncomplete is returned when a catalog lacks the conference name in either language.
var ErrIncomplete = errors.New("content needs a conference name in French and English")

// Text is a string in both site languages.
type Text struct {
	FR string `json:"fr"`
	EN string `json:"en"`
}

// In returns the text for lang, falling back to French when the English copy is missing.
func (t Text) In(lang i18n.Lang) string {
	if lang == i18n.EN && t.EN != "" {
		return t.EN
	}
	return t.FR
}

// Hero is the banner under the header.
type Hero struct {
	Title       Text   `json:"title"`
	Subtitle    Text   `json:"subtitle"`
	RegisterURL string `json:"register_url"`
}

// Speaker is an invited speaker. Bio is markdown.
type Speaker struct {
	Name        string `json:"name"`
	Affiliation Text   `json:"affiliation"`
	Bio         Text   `json:"bio"`
	Photo       string `json:"photo"`
}

// Image is one gallery picture.
type Image struct {
	Src string `json:"src"`
	Alt Text   `json:"alt"`
}

// Partner is a sponsoring institution.
type Partner struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Logo string `json:"logo"`
}

// Contact holds the organisers' public details.
type Contact struct {
	Email   string `json:"email"`
	Address Text   `json:"address"`
}

// Site is the full content catalog. About is markdown.
type Site struct {
	Name      Text      `json:"name"`
	Tagline   Text      `json:"tagline"`
	Dates     Text      `json:"dates"`
	Venue     Text      `json:"venue"`
	Hero      Hero      `json:"hero"`
	About     Text      `json:"about"`
	Speakers  []Speaker `json:"speakers"`
	Gallery   []Image   `json:"gallery"`
	Partners  []Partner `json:"partners"`
	Contact   Contact   `json:"contact"`
	Organiser string    `json:"organiser"`
}

// Validate checks the catalog has what every page needs.
func (s *Site) Validate() error {
	if s.Name.FR == "" || s.Name.EN == "" {
		return ErrIncomplete
	}
	return nil
}

// Parse decodes and validates a JSON catalog.
func Parse(data []byte) (*Site, error) {
	var s Site
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Default returns the embedded catalog.
func Default() *Site {
	s, err := Parse(defaultJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded content is invalid: %v", err))
	}
	return s
}

// LoadFile reads a catalog from disk.
func LoadFile(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	return Parse(data)
}
