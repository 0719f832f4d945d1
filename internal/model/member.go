package model

import "time"

// Field limits for member data. Lengths are measured after trimming.
const (
	MinNameLength  = 2
	MaxNameLength  = 100
	MaxEmailLength = 254
	MaxPhoneLength = 20
	MinPhoneDigits = 8
	MaxPhoneDigits = 15
)

// List pagination bounds.
const (
	DefaultListLimit = 100
	MaxListLimit     = 100
)

// Member represents a registered community member.
//
// Email and phone are stored in normalized form and are unique across the
// registry. Phone is optional; members without one carry NULL, which the
// unique index ignores.
type Member struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"size:254;not null;uniqueIndex"`
	Phone     *string   `json:"phone,omitempty" gorm:"size:20;uniqueIndex"`
	CreatedOn time.Time `json:"created_on" gorm:"autoCreateTime"`
	UpdatedOn time.Time `json:"updated_on" gorm:"autoUpdateTime"`
}

// TableName overrides GORM's pluralization to keep the table name stable.
func (Member) TableName() string {
	return "members"
}

// CreateMemberRequest is the payload for registering a member.
type CreateMemberRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// Normalize validates every field and returns the normalized values.
// All fields are checked so a single response can name every problem.
func (r *CreateMemberRequest) Normalize() (CreateMemberRequest, []FieldError) {
	var (
		out  CreateMemberRequest
		errs []FieldError
	)

	name, err := NormalizeName(r.Name)
	if err != nil {
		errs = append(errs, FieldError{Field: "name", Message: err.Error()})
	} else {
		out.Name = name
	}

	email, err := NormalizeEmail(r.Email)
	if err != nil {
		errs = append(errs, FieldError{Field: "email", Message: err.Error()})
	} else {
		out.Email = email
	}

	phone, err := NormalizePhone(r.Phone)
	if err != nil {
		errs = append(errs, FieldError{Field: "phone", Message: err.Error()})
	} else {
		out.Phone = phone
	}

	if len(errs) > 0 {
		return CreateMemberRequest{}, errs
	}
	return out, nil
}

// UpdateMemberRequest is the payload for a partial member update.
// Absent fields are left untouched.
type UpdateMemberRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// MemberPatch holds the normalized subset of fields supplied in an update.
//
// PhoneSet distinguishes "phone absent from the patch" from "phone cleared":
// a supplied phone that trims to empty normalizes to nil and clears the
// stored value.
type MemberPatch struct {
	Name     *string
	Email    *string
	Phone    *string
	PhoneSet bool
}

// IsEmpty reports whether the patch touches no fields.
func (p MemberPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && !p.PhoneSet
}

// Normalize validates the supplied fields and returns the normalized patch.
func (r *UpdateMemberRequest) Normalize() (MemberPatch, []FieldError) {
	var (
		patch MemberPatch
		errs  []FieldError
	)

	if r.Name != nil {
		name, err := NormalizeName(*r.Name)
		if err != nil {
			errs = append(errs, FieldError{Field: "name", Message: err.Error()})
		} else {
			patch.Name = &name
		}
	}

	if r.Email != nil {
		email, err := NormalizeEmail(*r.Email)
		if err != nil {
			errs = append(errs, FieldError{Field: "email", Message: err.Error()})
		} else {
			patch.Email = &email
		}
	}

	if r.Phone != nil {
		phone, err := NormalizePhone(r.Phone)
		if err != nil {
			errs = append(errs, FieldError{Field: "phone", Message: err.Error()})
		} else {
			patch.Phone = phone
			patch.PhoneSet = true
		}
	}

	if len(errs) > 0 {
		return MemberPatch{}, errs
	}
	return patch, nil
}
