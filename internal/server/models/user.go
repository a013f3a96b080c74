// Package models defines server-side data models persisted in the database.
package models

import (
	"time"
)

// Gender is the enumerated gender of a user as stored (0, 1 or 2).
type Gender int

const (
	GenderFemale Gender = iota
	GenderMale
	GenderUnspecified
)

// Valid reports whether g is one of the known values.
func (g Gender) Valid() bool {
	return g >= GenderFemale && g <= GenderUnspecified
}

func (g Gender) String() string {
	switch g {
	case GenderFemale:
		return "female"
	case GenderMale:
		return "male"
	case GenderUnspecified:
		return "unspecified"
	default:
		return "invalid"
	}
}

// User is the single persisted entity.
//
// RevokedOn and RevokedBy are set together by a soft delete and cleared
// together by a restore; a user with RevokedOn == nil is active.
// Empty CreatedBy, ModifiedBy and RevokedBy strings mean "not set".
type User struct {
	ID           string
	Login        string
	PasswordHash string
	Name         string
	Gender       Gender
	Birthday     *time.Time
	Admin        bool

	CreatedOn  time.Time
	CreatedBy  string
	ModifiedOn *time.Time
	ModifiedBy string
	RevokedOn  *time.Time
	RevokedBy  string
}

// IsActive reports whether the user has not been revoked.
func (u *User) IsActive() bool {
	return u.RevokedOn == nil
}

// Clone returns a deep copy, so stores can hand out records without sharing
// the time pointers.
func (u *User) Clone() *User {
	c := *u
	c.Birthday = cloneTime(u.Birthday)
	c.ModifiedOn = cloneTime(u.ModifiedOn)
	c.RevokedOn = cloneTime(u.RevokedOn)
	return &c
}

// UserPatch lists field changes for a single update. Nil fields are left
// untouched.
type UserPatch struct {
	Login        *string
	PasswordHash *string
	Name         *string
	Gender       *Gender
	Birthday     *time.Time
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Login == nil && p.PasswordHash == nil && p.Name == nil && p.Gender == nil && p.Birthday == nil
}

// Apply writes the patched fields into u.
func (p UserPatch) Apply(u *User) {
	if p.Login != nil {
		u.Login = *p.Login
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Gender != nil {
		u.Gender = *p.Gender
	}
	if p.Birthday != nil {
		u.Birthday = cloneTime(p.Birthday)
	}
}

// BirthdayCutoff returns the latest birth date of someone who is at least
// age full years old on asOf. Only the calendar date of asOf is used. A Feb 29
// asOf maps to Feb 28 in a non-leap target year.
func BirthdayCutoff(asOf time.Time, age int) time.Time {
	y, m, d := asOf.Date()
	cutoff := time.Date(y-age, m, d, 0, 0, 0, 0, time.UTC)
	if cutoff.Month() != m {
		// last day of the intended month
		cutoff = time.Date(y-age, m+1, 0, 0, 0, 0, 0, time.UTC)
	}
	return cutoff
}

// DateOnly drops the clock part of t, keeping its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
