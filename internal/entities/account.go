// Package entities contains core business entities.
package entities

import (
	"strings"
	"time"
)

// Account is a persisted user identity created by sign-in or lazy recipient resolution.
type Account struct {
	ID             string
	Email          string
	Name           string
	Image          *string
	LinkedRosterID *string
	IsAdmin        bool
	CreatedAt      time.Time
}

// IsLinked reports whether the account is bridged to a roster member.
func (a Account) IsLinked() bool {
	return a.LinkedRosterID != nil && *a.LinkedRosterID != ""
}

// NewAccount describes an account to be inserted.
type NewAccount struct {
	Email          string
	Name           string
	Image          *string
	LinkedRosterID *string
}

// Addressable is one selectable entry of the recipient picker.
// DisplayID is an account ID for accounts and a roster ID for roster-only members.
type Addressable struct {
	DisplayID  string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Image      *string `json:"image,omitempty"`
	RosterID   *string `json:"teamMemberId,omitempty"`
	Department *string `json:"department,omitempty"`
}

// SyncResult is the outcome of linking an account to the roster at sign-in.
type SyncResult struct {
	Account      Account
	Linked       bool
	RosterMember *RosterMember
}

// IsDeliverable reports whether s looks like an email address rather than a roster placeholder.
func IsDeliverable(s string) bool {
	return strings.Contains(s, "@")
}
