// Package entities contains core business entities.
package entities

import "time"

// MaxRecipients bounds the number of recipient references in one kudos.
const MaxRecipients = 3

// Kudos is one act of recognition.
type Kudos struct {
	ID         string
	Value      string
	Message    string
	Sender     Account
	CreatedAt  time.Time
	EmailSent  bool
	Recipients []KudosRecipient
	// Unresolved lists recipient references dropped at creation. It is not persisted.
	Unresolved []string
}

// KudosRecipient links a kudos record to one recipient account.
type KudosRecipient struct {
	KudosID   string
	Account   Account
	CreatedAt time.Time
}

// KudosRequest is the validated-shape input of kudos creation.
type KudosRequest struct {
	SenderID      string
	RecipientRefs []string
	ValueID       string
	Message       string
}

// NewKudos is the write model handed to the store; RecipientIDs is an ordered set.
type NewKudos struct {
	SenderID     string
	Value        string
	Message      string
	RecipientIDs []string
}

// Resolution is the outcome of mapping recipient references to account IDs.
type Resolution struct {
	AccountIDs []string
	Unresolved []string
}

// KudosPage is one page of kudos sent by a user.
type KudosPage struct {
	Kudos []Kudos
	Total int64
}
