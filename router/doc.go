// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Quote server.

# Route Registration

NewRouter creates the route table, wrapped in CORS:

	handler := router.NewRouter(quotes.NewSelector(catalog, nil), cfg)

# Endpoints

	GET  /health  - Liveness check ("OK")
	GET  /        - HTML topic picker; ?topic= renders a selection
	GET  /topics  - Topics with quote counts
	GET  /quotes  - Selection for ?topic=
	POST /quotes  - Selection for {"topic": "..."}

All routes except /health are wrapped with middleware.WithLogging.
Routes use Go 1.22+ method patterns, so a wrong method returns 405.
*/
package router
