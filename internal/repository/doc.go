// Package repository implements the data access layer for the members API.
//
// The repository package contains all database operations using GORM.
// The MemberStore interface is the contract the service layer consumes;
// MemberRepository is its production implementation.
//
// # Repository Pattern
//
// The repository follows a consistent pattern:
//
//   - Constructor function (NewMemberRepository) accepts a *gorm.DB handle
//   - Methods implement specific data operations (Create, GetByID, Update, Delete, etc.)
//   - Lookups return (nil, nil) for missing rows; only real failures are errors
//   - Driver errors are translated via the database package before they escape
//
// # Transactions
//
// Transact runs a callback against a store bound to a single transaction:
//
//	err := repo.Transact(ctx, func(tx repository.MemberStore) error {
//	    if err := tx.Create(ctx, member); err != nil {
//	        return err
//	    }
//	    return nil
//	})
//
// Returning an error from the callback rolls everything back.
//
// # Example Usage
//
//	repo := NewMemberRepository(db)
//	member, err := repo.GetByID(ctx, 42)
//	if err != nil {
//	    return err
//	}
//	if member == nil {
//	    // Handle not found
//	}
package repository
