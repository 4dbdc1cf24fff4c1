package usecase

import (
	"context"

	"radya-hi5/internal/entities"
)

// AccountUsecaseInterface abstracts account and roster-link operations.
type AccountUsecaseInterface interface {
	Account(ctx context.Context, accountID string) (*entities.Account, error)
	SignIn(ctx context.Context, email, name string, image *string) (*entities.SyncResult, error)
	SyncAccount(ctx context.Context, accountID string) (*entities.SyncResult, error)
	ListAddressable(ctx context.Context, excludeAccountID string) ([]entities.Addressable, error)
}

// KudosUsecaseInterface abstracts kudos-related operations.
type KudosUsecaseInterface interface {
	Resolve(ctx context.Context, refs []string, senderID string) (entities.Resolution, error)
	CreateKudos(ctx context.Context, req entities.KudosRequest) (*entities.Kudos, error)
	ListSentKudos(ctx context.Context, senderID string, limit, offset int) (entities.KudosPage, error)
	Values() []entities.ValueTag
}

// StatsUsecaseInterface abstracts statistics operations.
type StatsUsecaseInterface interface {
	Dashboard(ctx context.Context, weeks int) (entities.Dashboard, error)
}
