package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MembershipLevel is a user's membership tier. It is the single source of
// truth for the tier concept; DTOs and database rows convert at the boundary.
type MembershipLevel string

const (
	MembershipClassic MembershipLevel = "CLASSIC"
	MembershipGold    MembershipLevel = "GOLD"
	MembershipDiamond MembershipLevel = "DIAMOND"
)

// String returns the string representation of the membership level
func (m MembershipLevel) String() string {
	return string(m)
}

// IsValid reports whether m is one of the known tiers.
func (m MembershipLevel) IsValid() bool {
	switch m {
	case MembershipClassic, MembershipGold, MembershipDiamond:
		return true
	}
	return false
}

// DiscountRate returns the booking discount rate for the tier:
// CLASSIC 0.00, GOLD 0.10, DIAMOND 0.20.
func (m MembershipLevel) DiscountRate() decimal.Decimal {
	switch m {
	case MembershipGold:
		return decimal.NewFromFloat(0.10)
	case MembershipDiamond:
		return decimal.NewFromFloat(0.20)
	default:
		return decimal.Zero
	}
}

// Role identifies a user's access level
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents a registered hotel guest
type User struct {
	ID              string
	Username        string
	Email           string
	PasswordHash    string
	MembershipLevel MembershipLevel
	Role            Role
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin reports whether the user has admin privileges
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
