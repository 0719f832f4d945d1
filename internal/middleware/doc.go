// Package middleware provides HTTP middleware for the member registry API.
//
// The middleware package contains reusable components for request
// identification, logging, panic recovery, CORS, compression, rate
// limiting, metrics, and tracing. Handlers are composed with Chain:
//
//	handler := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	    middleware.CORS(cfg.AllowedOrigins),
//	    middleware.Tracing,
//	    middleware.Metrics(mux),
//	    middleware.RateLimit(limiter),
//	    middleware.Compress,
//	)
//
// # Rate Limiting
//
// RateLimit keeps a token bucket per client IP and answers 429 with a
// Retry-After header when a bucket runs dry.
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
