package domain

import (
	"time"
)

// Account is a single end-user's credential and profile record.
//
// VerificationCode is present only while the account has never completed
// email verification. ResetCode and ResetCodeExpiresAt are always set and
// cleared together; the fields are absent from the document (not null) when
// no reset is pending.
type Account struct {
	ID                 interface{} `bson:"_id,omitempty" json:"-"`
	UserID             int64       `bson:"userId" json:"id"`
	Login              string      `bson:"login" json:"login"`
	Email              string      `bson:"email" json:"email"`
	PasswordHash       string      `bson:"passwordHash" json:"-"`
	FirstName          string      `bson:"firstName" json:"firstName"`
	LastName           string      `bson:"lastName" json:"lastName"`
	Verified           bool        `bson:"verified" json:"verified"`
	VerificationCode   string      `bson:"verificationCode,omitempty" json:"-"`
	ResetCode          string      `bson:"resetCode,omitempty" json:"-"`
	ResetCodeExpiresAt *time.Time  `bson:"resetCodeExpiresAt,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// ResetPending reports whether an unexpired password reset is open at now.
func (a *Account) ResetPending(now time.Time) bool {
	return a.ResetCode != "" && a.ResetCodeExpiresAt != nil && a.ResetCodeExpiresAt.After(now)
}
