package usecase

import (
	"context"

	"radya-hi5/internal/notifier"
	"radya-hi5/internal/repository"
	"radya-hi5/internal/roster"
	"radya-hi5/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AccountUsecaseInterface
	KudosUsecaseInterface
	StatsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	dir *roster.Directory,
	catalog *roster.Catalog,
	mailer notifier.Notifier,
	opts domain.Options,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, dir, catalog, mailer, opts)
}
