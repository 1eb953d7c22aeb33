// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package quotes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// GeneralTopic is the fallback bucket every catalog must carry
const GeneralTopic = "general"

var (
	ErrMissingGeneral = errors.New("catalog has no general topic")
	ErrEmptyTopic     = errors.New("topic has no quotes")
	ErrEmptyTopicName = errors.New("topic name is blank")
	ErrDuplicateTopic = errors.New("duplicate topic")
)

// Topic is one named bucket of quotes, as read from YAML or the database
type Topic struct {
	Name   string   `yaml:"name" json:"name"`
	Quotes []string `yaml:"quotes" json:"quotes"`
}

// Catalog maps normalized topic names to their quotes.
// It is immutable once built; share it freely across goroutines.
type Catalog struct {
	order  []string
	topics map[string][]string
}

// NewCatalog validates topics and copies them into a Catalog.
// Topic order is preserved for listing.
func NewCatalog(topics []Topic) (*Catalog, error) {
	c := &Catalog{
		order:  make([]string, 0, len(topics)),
		topics: make(map[string][]string, len(topics)),
	}

	for i, t := range topics {
		name := Normalize(t.Name)
		if name == "" {
			return nil, fmt.Errorf("topic #%d: %w", i, ErrEmptyTopicName)
		}
		if _, exists := c.topics[name]; exists {
			return nil, fmt.Errorf("%q: %w", name, ErrDuplicateTopic)
		}
		if len(t.Quotes) == 0 {
			return nil, fmt.Errorf("%q: %w", name, ErrEmptyTopic)
		}

		c.order = append(c.order, name)
		c.topics[name] = append([]string(nil), t.Quotes...)
	}

	if _, ok := c.topics[GeneralTopic]; !ok {
		return nil, ErrMissingGeneral
	}

	return c, nil
}

// Normalize trims surrounding whitespace and lowercases a topic
func Normalize(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}

// Topics returns topic names in catalog order
func (c *Catalog) Topics() []string {
	return append([]string(nil), c.order...)
}

// Has reports whether the catalog holds the topic (after normalization)
func (c *Catalog) Has(topic string) bool {
	_, ok := c.topics[Normalize(topic)]
	return ok
}

// Quotes returns a copy of the quotes for a topic
func (c *Catalog) Quotes(topic string) ([]string, bool) {
	list, ok := c.topics[Normalize(topic)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), list...), true
}

// Count returns the number of quotes stored under a topic, or 0
func (c *Catalog) Count(topic string) int {
	return len(c.topics[Normalize(topic)])
}

// Resolve applies the lookup policy: an exact, normalized match wins,
// anything else (including blank) goes to the general bucket.
// fallback is true only when a non-blank topic was not found.
// The returned slice is shared with the catalog and must not be modified.
func (c *Catalog) Resolve(topic string) (name string, list []string, fallback bool) {
	name = Normalize(topic)
	if name != "" {
		if found, ok := c.topics[name]; ok {
			return name, found, false
		}
	}
	return GeneralTopic, c.topics[GeneralTopic], name != ""
}

// TopicList returns the catalog contents as Topic values, in order.
// Used when seeding another store from this catalog.
func (c *Catalog) TopicList() []Topic {
	return lo.Map(c.order, func(name string, _ int) Topic {
		return Topic{Name: name, Quotes: append([]string(nil), c.topics[name]...)}
	})
}
