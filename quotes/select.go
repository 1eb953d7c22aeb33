// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package quotes

import (
	"math/rand/v2"
)

// MaxSelection is the most quotes a single selection returns
const MaxSelection = 3

// RandomIndex draws an index uniformly from [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomIndex interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

// DefaultRandom returns a RandomIndex backed by the math/rand/v2 global
// source, which is safe for concurrent use.
func DefaultRandom() RandomIndex {
	return globalRandom{}
}

// Selection is the result of one pick
type Selection struct {
	Requested string   // topic as supplied by the caller
	Topic     string   // bucket the quotes were drawn from
	Fallback  bool     // Requested was non-blank but unknown
	Quotes    []string // min(MaxSelection, len(bucket)) entries
}

// Shuffle returns a Fisher–Yates permutation of a copy of list
func Shuffle(list []string, rnd RandomIndex) []string {
	out := append([]string(nil), list...)
	for i := len(out) - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Select returns up to MaxSelection quotes for topic, in shuffled order.
// Unknown or blank topics draw from the general bucket.
func Select(topic string, catalog *Catalog, rnd RandomIndex) []string {
	_, list, _ := catalog.Resolve(topic)
	shuffled := Shuffle(list, rnd)
	return shuffled[:min(MaxSelection, len(shuffled))]
}

// Selector binds a catalog to a randomness source
type Selector struct {
	catalog *Catalog
	rnd     RandomIndex
}

// NewSelector creates a Selector. A nil rnd uses DefaultRandom.
func NewSelector(catalog *Catalog, rnd RandomIndex) *Selector {
	if rnd == nil {
		rnd = DefaultRandom()
	}
	return &Selector{catalog: catalog, rnd: rnd}
}

// Catalog returns the catalog the selector draws from
func (s *Selector) Catalog() *Catalog {
	return s.catalog
}

// Select picks quotes for topic and reports which bucket was used
func (s *Selector) Select(topic string) Selection {
	name, _, fallback := s.catalog.Resolve(topic)
	return Selection{
		Requested: topic,
		Topic:     name,
		Fallback:  fallback,
		Quotes:    Select(topic, s.catalog, s.rnd),
	}
}
