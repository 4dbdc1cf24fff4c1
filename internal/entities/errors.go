// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidRecipientCount signals a recipient list outside 1..MaxRecipients.
	ErrInvalidRecipientCount = errors.New("please select 1-3 recipients")
	// ErrUnknownValue signals a value tag missing from the catalog.
	ErrUnknownValue = errors.New("invalid value")
	// ErrRecipientNotFound signals that no recipient reference could be resolved.
	ErrRecipientNotFound = errors.New("recipient not found")
	// ErrAccountNotFound is returned when an account does not exist.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountExists signals an email uniqueness conflict on account creation.
	ErrAccountExists = errors.New("account exists")
	// ErrRosterAlreadyLinked signals that another account already carries the roster ID.
	ErrRosterAlreadyLinked = errors.New("roster member already linked")
	// ErrKudosNotFound signals a missing kudos record.
	ErrKudosNotFound = errors.New("kudos not found")
	// ErrUnauthorized signals a missing or invalid session.
	ErrUnauthorized = errors.New("unauthorized")
)
