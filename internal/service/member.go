package service

import (
	"context"
	"errors"

	"github.com/jogjadev/members-api/internal/database"
	"github.com/jogjadev/members-api/internal/model"
	"github.com/jogjadev/members-api/internal/repository"
)

// MemberService implements member registration and lookup rules: field
// normalization, email and phone uniqueness, and the closed error set
// defined in errors.go.
type MemberService struct {
	repo repository.MemberStore
}

// MemberServiceConfig holds the dependencies for MemberService
type MemberServiceConfig struct {
	Repo repository.MemberStore
}

// NewMemberService creates a new member service
func NewMemberService(cfg MemberServiceConfig) *MemberService {
	return &MemberService{repo: cfg.Repo}
}

// Create validates and registers a new member. Uniqueness is pre-checked
// inside the insert transaction; a duplicate that still slips through (a
// concurrent writer) is resolved to a ConflictError afterwards.
func (s *MemberService) Create(ctx context.Context, req *model.CreateMemberRequest) (*model.Member, error) {
	normalized, fieldErrs := req.Normalize()
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	var created *model.Member
	err := s.repo.Transact(ctx, func(tx repository.MemberStore) error {
		existing, err := tx.GetByEmail(ctx, normalized.Email)
		if err != nil {
			return &StorageError{Op: "create member", Err: err}
		}
		if existing != nil {
			return &ConflictError{Field: "email", Value: normalized.Email}
		}

		if normalized.Phone != nil {
			existing, err := tx.GetByPhone(ctx, *normalized.Phone)
			if err != nil {
				return &StorageError{Op: "create member", Err: err}
			}
			if existing != nil {
				return &ConflictError{Field: "phone", Value: *normalized.Phone}
			}
		}

		member := &model.Member{
			Name:  normalized.Name,
			Email: normalized.Email,
			Phone: normalized.Phone,
		}
		if err := tx.Create(ctx, member); err != nil {
			return err
		}
		created = member
		return nil
	})
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, s.resolveDuplicate(ctx, normalized.Email, normalized.Phone, 0)
		}
		return nil, wrapStorage("create member", err)
	}
	return created, nil
}

// GetByID returns the member with the given ID.
func (s *MemberService) GetByID(ctx context.Context, id int64) (*model.Member, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, &StorageError{Op: "get member", Err: err}
	}
	if member == nil {
		return nil, &NotFoundError{ID: id}
	}
	return member, nil
}

// List returns members ordered by ID. Negative skip is treated as zero and
// limit is clamped to [1, MaxListLimit]. An empty store yields an empty
// slice, never an error.
func (s *MemberService) List(ctx context.Context, skip, limit int) ([]*model.Member, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = model.DefaultListLimit
	}
	if limit > model.MaxListLimit {
		limit = model.MaxListLimit
	}

	members, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, &StorageError{Op: "list members", Err: err}
	}
	return members, nil
}

// Update applies a partial update. Existence is checked before validation
// results are applied; email and phone uniqueness are re-checked only when
// the normalized value differs from what the member already has.
func (s *MemberService) Update(ctx context.Context, id int64, req *model.UpdateMemberRequest) (*model.Member, error) {
	patch, fieldErrs := req.Normalize()
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	var updated *model.Member
	err := s.repo.Transact(ctx, func(tx repository.MemberStore) error {
		current, err := tx.GetByID(ctx, id)
		if err != nil {
			return &StorageError{Op: "update member", Err: err}
		}
		if current == nil {
			return &NotFoundError{ID: id}
		}

		updates := map[string]interface{}{}
		if patch.Name != nil {
			updates["name"] = *patch.Name
		}
		if patch.Email != nil {
			if *patch.Email != current.Email {
				other, err := tx.GetByEmail(ctx, *patch.Email)
				if err != nil {
					return &StorageError{Op: "update member", Err: err}
				}
				if other != nil && other.ID != id {
					return &ConflictError{Field: "email", Value: *patch.Email}
				}
			}
			updates["email"] = *patch.Email
		}
		if patch.PhoneSet {
			if patch.Phone != nil && (current.Phone == nil || *current.Phone != *patch.Phone) {
				other, err := tx.GetByPhone(ctx, *patch.Phone)
				if err != nil {
					return &StorageError{Op: "update member", Err: err}
				}
				if other != nil && other.ID != id {
					return &ConflictError{Field: "phone", Value: *patch.Phone}
				}
			}
			updates["phone"] = patch.Phone
		}

		member, err := tx.Update(ctx, id, updates)
		if err != nil {
			return err
		}
		updated = member
		return nil
	})
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			var email string
			if patch.Email != nil {
				email = *patch.Email
			}
			var phone *string
			if patch.PhoneSet {
				phone = patch.Phone
			}
			return nil, s.resolveDuplicate(ctx, email, phone, id)
		}
		if errors.Is(err, database.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, wrapStorage("update member", err)
	}
	return updated, nil
}

// Delete removes a member. Deleting an absent member yields NotFoundError,
// so repeated deletes of the same ID fail the same way.
func (s *MemberService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return &NotFoundError{ID: id}
		}
		return &StorageError{Op: "delete member", Err: err}
	}
	return nil
}

// resolveDuplicate turns an insert- or update-time unique violation into a
// ConflictError naming the colliding field. The driver error does not say
// which index fired, so the store is re-queried outside the rolled-back
// transaction. excludeID skips the member being updated.
func (s *MemberService) resolveDuplicate(ctx context.Context, email string, phone *string, excludeID int64) error {
	if email != "" {
		other, err := s.repo.GetByEmail(ctx, email)
		if err != nil {
			return &StorageError{Op: "resolve duplicate", Err: err}
		}
		if other != nil && other.ID != excludeID {
			return &ConflictError{Field: "email", Value: email}
		}
	}
	if phone != nil {
		other, err := s.repo.GetByPhone(ctx, *phone)
		if err != nil {
			return &StorageError{Op: "resolve duplicate", Err: err}
		}
		if other != nil && other.ID != excludeID {
			return &ConflictError{Field: "phone", Value: *phone}
		}
	}

	// The colliding row vanished between rollback and re-query. Report the
	// most likely field rather than a storage failure.
	if phone != nil {
		return &ConflictError{Field: "phone", Value: *phone}
	}
	return &ConflictError{Field: "email", Value: email}
}

// wrapStorage keeps taxonomy errors from inside a transaction intact and
// wraps anything else as a storage failure.
func wrapStorage(op string, err error) error {
	var (
		vErr *ValidationError
		cErr *ConflictError
		nErr *NotFoundError
		sErr *StorageError
	)
	if errors.As(err, &vErr) || errors.As(err, &cErr) || errors.As(err, &nErr) || errors.As(err, &sErr) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
