package service

import (
	"fmt"

	"github.com/jogjadev/members-api/internal/model"
)

// Centralized service layer errors.
// Every failure a service method can return is one of the four types below,
// so handlers map them exhaustively with errors.As and never see a driver
// error directly.

// ValidationError reports member fields that failed normalization.
type ValidationError struct {
	Fields []model.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid member data"
	}
	return fmt.Sprintf("invalid %s: %s", e.Fields[0].Field, e.Fields[0].Message)
}

// ConflictError reports a uniqueness violation on email or phone. Value is
// the normalized form that collided.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("member with %s %q already exists", e.Field, e.Value)
}

// NotFoundError reports a member ID with no corresponding record.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("member %d not found", e.ID)
}

// StorageError wraps an unexpected persistence failure. The cause is for
// logs only; clients get a generic response.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
