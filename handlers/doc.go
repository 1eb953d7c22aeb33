// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Quote server.

QuoteHandler wraps a quotes.Selector:

	quoteHandler := handlers.NewQuoteHandler(quotes.NewSelector(catalog, nil))

# JSON API

	GET  /topics         → ListTopics
	GET  /quotes?topic=X → GetQuotes
	POST /quotes         → PostQuotes ({"topic": "X"}, empty body allowed)

Selections report the bucket used. When a non-blank topic is unknown the
general bucket is used and "fallback" is true.

# Page

	GET /          → Page (picker only)
	GET /?topic=X  → Page with up to three quote cards

The page is a plain GET form, so it works without JavaScript.
*/
package handlers
