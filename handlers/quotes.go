// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/samber/lo"

	"github.com/danielhkuo/quickly-quote/middleware"
	"github.com/danielhkuo/quickly-quote/models"
	"github.com/danielhkuo/quickly-quote/quotes"
)

type QuoteHandler struct {
	selector *quotes.Selector
}

func NewQuoteHandler(selector *quotes.Selector) *QuoteHandler {
	return &QuoteHandler{selector: selector}
}

// ListTopics handles GET /topics
// Returns every topic in catalog order with its quote count
func (h *QuoteHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	catalog := h.selector.Catalog()

	middleware.JSONResponse(w, http.StatusOK, models.TopicsResponse{
		Topics: lo.Map(catalog.Topics(), func(name string, _ int) models.TopicSummary {
			return models.TopicSummary{Name: name, Count: catalog.Count(name)}
		}),
		Default: quotes.GeneralTopic,
	})
}

// GetQuotes handles GET /quotes?topic=...
// A missing or unknown topic selects from the general bucket
func (h *QuoteHandler) GetQuotes(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r.URL.Query().Get("topic"))
}

// PostQuotes handles POST /quotes
// Body {"topic": "..."}; an empty body means no topic
func (h *QuoteHandler) PostQuotes(w http.ResponseWriter, r *http.Request) {
	var req models.SelectQuotesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.respond(w, req.Topic)
}

func (h *QuoteHandler) respond(w http.ResponseWriter, topic string) {
	sel := h.selector.Select(topic)

	if sel.Fallback {
		slog.Info("unknown topic, using general", "requested", topic)
	}

	middleware.JSONResponse(w, http.StatusOK, models.SelectQuotesResponse{
		Requested: sel.Requested,
		Topic:     sel.Topic,
		Fallback:  sel.Fallback,
		Quotes:    sel.Quotes,
	})
}
