// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-quote/middleware"
	"github.com/danielhkuo/quickly-quote/quotes"
)

//go:embed page.html
var pageHTML string

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"title": titleCase,
}).Parse(pageHTML))

type pageData struct {
	Topics    []string
	Selected  string
	Selection *quotes.Selection
}

// titleCase upper-cases the first letter, e.g. "happy" -> "Happy"
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Page handles GET /
// Renders the topic picker. Submitting the form (any ?topic= value,
// including empty) renders a fresh selection below it.
func (h *QuoteHandler) Page(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	data := pageData{
		Topics:   h.selector.Catalog().Topics(),
		Selected: quotes.Normalize(query.Get("topic")),
	}
	if query.Has("topic") {
		sel := h.selector.Select(query.Get("topic"))
		data.Selection = &sel
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		slog.Error("failed to render page", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
