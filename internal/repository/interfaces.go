// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"radya-hi5/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// AccountInterface exposes account-related operations.
type AccountInterface interface {
	GetAccount(ctx context.Context, accountID string) (*entities.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*entities.Account, error)
	GetAccountByRosterID(ctx context.Context, rosterID string) (*entities.Account, error)
	// CreateAccount returns entities.ErrAccountExists when the email is taken.
	CreateAccount(ctx context.Context, acc entities.NewAccount) (*entities.Account, error)
	// LinkRoster sets linked_roster_id only when it is unset; it returns the current row.
	// entities.ErrRosterAlreadyLinked is returned when another account carries rosterID.
	LinkRoster(ctx context.Context, accountID, rosterID string) (*entities.Account, error)
	// FillName sets the name only when it is empty.
	FillName(ctx context.Context, accountID, name string) (*entities.Account, error)
	// ExistingAccountIDs returns the subset of ids that exist.
	ExistingAccountIDs(ctx context.Context, ids []string) (map[string]struct{}, error)
	ListAccounts(ctx context.Context) ([]entities.Account, error)
}

// KudosInterface exposes kudos-related operations.
type KudosInterface interface {
	// CreateKudos writes the record and all recipient links in one transaction.
	CreateKudos(ctx context.Context, k entities.NewKudos) (*entities.Kudos, error)
	MarkEmailSent(ctx context.Context, kudosID string) error
	ListSentKudos(ctx context.Context, senderID string, limit, offset int) (entities.KudosPage, error)
}

// StatsInterface exposes aggregated statistics operations.
type StatsInterface interface {
	Dashboard(ctx context.Context, window entities.StatsWindow) (entities.Dashboard, error)
}
