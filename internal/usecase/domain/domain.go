// Package domain contains application services orchestrating domain logic.
package domain

import (
	"context"
	"time"

	"radya-hi5/internal/notifier"
	"radya-hi5/internal/repository"
	"radya-hi5/internal/roster"

	"go.uber.org/zap"
)

const (
	defaultMessageMaxLen   = 500
	defaultMailConcurrency = 3
	defaultMailTimeout     = 10 * time.Second
)

// Options tunes validation bounds and notification fan-out.
type Options struct {
	Timeout         time.Duration
	MessageMaxLen   int
	MailTimeout     time.Duration
	MailConcurrency int
	AppURL          string
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	roster  *roster.Directory
	catalog *roster.Catalog
	mailer  notifier.Notifier
	opts    Options
	now     func() time.Time
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	dir *roster.Directory,
	catalog *roster.Catalog,
	mailer notifier.Notifier,
	opts Options,
) *Usecase {
	if opts.MessageMaxLen <= 0 {
		opts.MessageMaxLen = defaultMessageMaxLen
	}
	if opts.MailConcurrency <= 0 {
		opts.MailConcurrency = defaultMailConcurrency
	}
	if opts.MailTimeout <= 0 {
		opts.MailTimeout = defaultMailTimeout
	}
	return &Usecase{
		ctx:     ctx,
		log:     log.Named("usecase"),
		repo:    repo,
		roster:  dir,
		catalog: catalog,
		mailer:  mailer,
		opts:    opts,
		now:     time.Now,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
