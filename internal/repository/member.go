package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jogjadev/members-api/internal/database"
	"github.com/jogjadev/members-api/internal/model"
)

// MemberStore is the data-access contract consumed by the service layer.
// It lives here rather than in the service package because Transact hands
// callers a transaction-bound store of the same type.
type MemberStore interface {
	Create(ctx context.Context, member *model.Member) error
	GetByID(ctx context.Context, id int64) (*model.Member, error)
	GetByEmail(ctx context.Context, email string) (*model.Member, error)
	GetByPhone(ctx context.Context, phone string) (*model.Member, error)
	List(ctx context.Context, offset, limit int) ([]*model.Member, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (*model.Member, error)
	Delete(ctx context.Context, id int64) error
	Transact(ctx context.Context, fn func(tx MemberStore) error) error
}

// MemberRepository handles member data access
type MemberRepository struct {
	db *gorm.DB
}

var _ MemberStore = (*MemberRepository)(nil)

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Transact runs fn against a repository bound to a single transaction.
// Returning an error from fn rolls everything back.
func (r *MemberRepository) Transact(ctx context.Context, fn func(tx MemberStore) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&MemberRepository{db: tx})
	})
}

// Create inserts a new member and fills in the assigned ID.
func (r *MemberRepository) Create(ctx context.Context, member *model.Member) error {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		if translated := database.Translate(err); translated == database.ErrDuplicate {
			return fmt.Errorf("%w: member already exists", database.ErrDuplicate)
		}
		return fmt.Errorf("create member: %w", err)
	}
	return nil
}

// GetByID retrieves a member by ID. Returns (nil, nil) when absent.
func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*model.Member, error) {
	var member model.Member
	err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error
	if err != nil {
		if database.Translate(err) == database.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("get member by id: %w", err)
	}
	return &member, nil
}

// GetByEmail retrieves a member by normalized email. Returns (nil, nil) when absent.
func (r *MemberRepository) GetByEmail(ctx context.Context, email string) (*model.Member, error) {
	var member model.Member
	err := r.db.WithContext(ctx).First(&member, "email = ?", email).Error
	if err != nil {
		if database.Translate(err) == database.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("get member by email: %w", err)
	}
	return &member, nil
}

// GetByPhone retrieves a member by stored phone string. Returns (nil, nil) when absent.
func (r *MemberRepository) GetByPhone(ctx context.Context, phone string) (*model.Member, error) {
	var member model.Member
	err := r.db.WithContext(ctx).First(&member, "phone = ?", phone).Error
	if err != nil {
		if database.Translate(err) == database.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("get member by phone: %w", err)
	}
	return &member, nil
}

// List returns members ordered by ID, skipping offset rows and returning at
// most limit. An empty store yields an empty slice, not an error.
func (r *MemberRepository) List(ctx context.Context, offset, limit int) ([]*model.Member, error) {
	members := make([]*model.Member, 0, limit)
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

// Update applies the given column updates and returns the fresh row.
// A nil value in the map clears the column. An empty map just re-reads.
func (r *MemberRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*model.Member, error) {
	if len(updates) > 0 {
		err := r.db.WithContext(ctx).
			Model(&model.Member{}).
			Where("id = ?", id).
			Updates(updates).Error
		if err != nil {
			if translated := database.Translate(err); translated == database.ErrDuplicate {
				return nil, fmt.Errorf("%w: member already exists", database.ErrDuplicate)
			}
			return nil, fmt.Errorf("update member: %w", err)
		}
	}

	member, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, fmt.Errorf("update member: %w", database.ErrNotFound)
	}
	return member, nil
}

// Delete removes a member by ID. Deleting an absent member returns ErrNotFound.
func (r *MemberRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Member{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete member: %w", database.ErrNotFound)
	}
	return nil
}
