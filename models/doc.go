// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

  - SelectQuotesRequest: topic

# Response Types

  - TopicsResponse: topics (name, count), default
  - SelectQuotesResponse: requested, topic, fallback, quotes
  - ErrorResponse: error, message
*/
package models
