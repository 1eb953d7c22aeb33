// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-quote/cliparse"
	"github.com/danielhkuo/quickly-quote/handlers"
	"github.com/danielhkuo/quickly-quote/middleware"
	"github.com/danielhkuo/quickly-quote/quotes"
)

// NewRouter builds the route table and wraps it in CORS
func NewRouter(selector *quotes.Selector, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	quoteHandler := handlers.NewQuoteHandler(selector)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// JSON API
	mux.HandleFunc("GET /topics", middleware.WithLogging(quoteHandler.ListTopics))
	mux.HandleFunc("GET /quotes", middleware.WithLogging(quoteHandler.GetQuotes))
	mux.HandleFunc("POST /quotes", middleware.WithLogging(quoteHandler.PostQuotes))

	// HTML page; {$} keeps it from matching every unknown path
	mux.HandleFunc("GET /{$}", middleware.WithLogging(quoteHandler.Page))

	return middleware.CORS(cfg.CORSOrigin, mux)
}
