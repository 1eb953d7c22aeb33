// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

	mux.HandleFunc("GET /quotes", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Every log line carries a request_id, which is also
returned in the X-Request-ID response header.

# CORS

	handler := middleware.CORS(cfg.CORSOrigin, mux)

Preflight OPTIONS requests are answered with 204 and never reach mux.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, resp)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
	err := middleware.ParseJSONBody(r, &req)
*/
package middleware
