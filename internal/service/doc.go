// Package service implements the business logic layer for the member registry.
//
// The service package owns the registration rules: field normalization,
// email and phone uniqueness, and pagination bounds. It is the only layer
// allowed to decide which of the four taxonomy errors a failure becomes.
//
// # Service Pattern
//
//   - Constructor function (NewMemberService) accepts a config struct with
//     the store dependency
//   - Methods implement business operations with validation up front
//   - Context is passed through for cancellation and request-scoped values
//
// # Error Handling
//
// Every error returned by a service method is one of four typed errors,
// checked with errors.As:
//
//	var cErr *service.ConflictError
//	if errors.As(err, &cErr) {
//	    // cErr.Field names the colliding field
//	}
//
// Storage causes never cross the service boundary in client-visible form;
// they travel inside StorageError for logging only.
//
// # Example Usage
//
//	svc := NewMemberService(MemberServiceConfig{Repo: memberRepository})
//	member, err := svc.Create(ctx, &model.CreateMemberRequest{
//	    Name:  "Budi Santoso",
//	    Email: "budi@example.com",
//	})
package service
