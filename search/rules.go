package search

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Rules holds the tunable deny-lists used by the sanitizer and the
// admissibility filter. They are data, not code: deployments can override the
// defaults from a YAML file without touching the scoring or filtering logic.
type Rules struct {
	// NoisePhrases are regex fragments matched case-insensitively as whole
	// tokens, e.g. stock-status words and promo-day labels from OCR'd menus.
	NoisePhrases []string `yaml:"noise_phrases"`
	// BannedNames are normalized dish names that are really section headers.
	BannedNames []string `yaml:"banned_names"`
	// HeaderPrefixes flag short names starting with a category word.
	HeaderPrefixes []string `yaml:"header_prefixes"`
	// BannedPrefixes reject a name regardless of its length.
	BannedPrefixes []string `yaml:"banned_prefixes"`
	// MaxHeaderLength is the normalized-name length under which a
	// HeaderPrefixes match counts as a category header.
	MaxHeaderLength int `yaml:"max_header_length"`

	noiseRes []*regexp.Regexp
	banned   map[string]bool
}

// DefaultRules returns the deny-lists tuned for the Dutch menu corpus.
func DefaultRules() *Rules {
	r := &Rules{
		NoisePhrases: []string{
			`uitverkocht`,
			`0\s+op\s+voorraad`,
			`op\s+voorraad`,
			`kies`,
			`maandag\s*pizza\s*dag`,
			`woensdag\s*pizza\s*dag`,
			`nieuw:?`,
			`populair|populaire producten`,
		},
		BannedNames: []string{
			"pizza", "pizzas", "pizze",
			"pizza s", // catches pizza's after punctuation removal
			"pizza s 30cm", "pizza s 30 cm", "pizza s medium",
			"pizza s met vlees", "nieuw pizza s",
			"calzone", "calzones",
			"pasta",
			"dranken",
			"featured items",
			"populaire producten",
			"our starters antipasti",
			"pizze pizza s",
		},
		HeaderPrefixes:  []string{"pizza", "pizzas", "pizze", "calzone", "calzones", "pasta", "dranken"},
		BannedPrefixes:  []string{"pizza s"},
		MaxHeaderLength: 24,
	}
	if err := r.compile(); err != nil {
		// default patterns are constants; a failure here is a programming defect
		panic(err)
	}
	return r
}

// LoadRules reads a Rules override from a YAML file.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r := &Rules{}
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	if r.MaxHeaderLength == 0 {
		r.MaxHeaderLength = 24
	}
	if err := r.compile(); err != nil {
		return nil, fmt.Errorf("compiling rules file %s: %w", path, err)
	}
	return r, nil
}

func (r *Rules) compile() error {
	r.noiseRes = make([]*regexp.Regexp, 0, len(r.NoisePhrases))
	for _, p := range r.NoisePhrases {
		re, err := regexp.Compile(`(?i)\b(?:` + p + `)\b`)
		if err != nil {
			return fmt.Errorf("bad noise pattern %q: %w", p, err)
		}
		r.noiseRes = append(r.noiseRes, re)
	}
	r.banned = make(map[string]bool, len(r.BannedNames))
	for _, n := range r.BannedNames {
		r.banned[Normalize(n)] = true
	}
	return nil
}
