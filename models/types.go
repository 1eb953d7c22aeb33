// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type SelectQuotesRequest struct {
	Topic string `json:"topic"`
}

// Response types

type TopicSummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type TopicsResponse struct {
	Topics  []TopicSummary `json:"topics"`
	Default string         `json:"default"`
}

// Fallback is true when a non-blank topic was unknown and the
// general bucket was used instead
type SelectQuotesResponse struct {
	Requested string   `json:"requested"`
	Topic     string   `json:"topic"`
	Fallback  bool     `json:"fallback"`
	Quotes    []string `json:"quotes"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
