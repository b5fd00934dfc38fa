// Package deck loads the items shown by the carousel from YAML files.
package deck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoItems is returned for decks without any item.
var ErrNoItems = errors.New("deck has no items")

// Item is one card of the deck.
type Item struct {
	Title string   `yaml:"title"`
	Body  string   `yaml:"body"`
	Tags  []string `yaml:"tags"`
}

// Deck is an ordered, immutable list of items.
type Deck struct {
	Title string `yaml:"title"`
	Items []Item `yaml:"items"`

	// Path is the absolute path the deck was loaded from, empty for decks
	// parsed from memory.
	Path string `yaml:"-"`
}

// Len returns the number of items.
func (d *Deck) Len() int {
	return len(d.Items)
}

// Load reads and parses the deck file at path.
func Load(path string) (*Deck, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(abs), err)
	}
	d.Path = abs
	return d, nil
}

// Parse decodes a YAML deck. Item text is trimmed; an item needs a title or
// a body.
func Parse(data []byte) (*Deck, error) {
	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}
	if len(d.Items) == 0 {
		return nil, ErrNoItems
	}
	d.Title = strings.TrimSpace(d.Title)
	for i := range d.Items {
		item := &d.Items[i]
		item.Title = strings.TrimSpace(item.Title)
		item.Body = strings.TrimSpace(item.Body)
		if item.Title == "" && item.Body == "" {
			return nil, fmt.Errorf("item %d: needs a title or a body", i+1)
		}
	}
	return &d, nil
}

// FromStrings builds a deck with one titled item per string.
func FromStrings(titles ...string) *Deck {
	d := &Deck{Items: make([]Item, len(titles))}
	for i, t := range titles {
		d.Items[i] = Item{Title: t}
	}
	return d
}
