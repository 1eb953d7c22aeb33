// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package quotes holds the quote catalog and the random selection logic.

# Catalog

A Catalog maps topic names to lists of quotes. Names are normalized
(trimmed, lowercased) and every catalog must contain a non-empty
"general" topic, which is the fallback bucket:

	catalog, err := quotes.NewCatalog([]quotes.Topic{
		{Name: "general", Quotes: []string{"Keep going."}},
	})

The built-in catalog is embedded from catalog.yaml:

	catalog := quotes.Default()

# Selection

Select normalizes the topic, resolves it (exact match or "general"),
shuffles a copy of the list with Fisher–Yates and returns the first
MaxSelection entries:

	picked := quotes.Select(" Happy ", catalog, quotes.DefaultRandom())

Pass a seeded *rand.Rand from math/rand/v2 for reproducible output.
*/
package quotes
