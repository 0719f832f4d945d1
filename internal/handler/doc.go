// Package handler provides HTTP request handlers for the member registry.
//
// The handler layer is a thin adapter: it decodes JSON, parses path and
// query parameters, delegates to the service, and maps the service's typed
// errors to RFC 9457 Problem Details responses. No registration rules live
// here.
//
// # Handler Pattern
//
//   - Constructor function (NewMemberHandler) accepts the service dependency
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped in error_mapper.go
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: Single resource with optional HATEOAS links
//   - WriteCollection: Paginated list of resources
//   - WriteJSON: Raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// # Example Usage
//
//	memberHandler := NewMemberHandler(memberService)
//	mux.HandleFunc("POST /v1/members", memberHandler.Create)
//	mux.HandleFunc("GET /v1/members/{memberId}", memberHandler.Get)
package handler
