package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"radya-hi5/internal/entities"
)

// Account returns the account behind a session.
func (u *Usecase) Account(ctx context.Context, accountID string) (*entities.Account, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	if accountID == "" {
		return nil, fmt.Errorf("%w: account id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetAccount(ctx, accountID)
}

// SignIn gets or creates the account for email and links it to the roster.
func (u *Usecase) SignIn(ctx context.Context, email, name string, image *string) (*entities.SyncResult, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	email = strings.TrimSpace(email)
	if !entities.IsDeliverable(email) {
		return nil, fmt.Errorf("%w: a valid email is required", entities.ErrInvalidArgument)
	}

	acc, err := u.repo.GetAccountByEmail(ctx, email)
	if errors.Is(err, entities.ErrAccountNotFound) {
		acc, err = u.repo.CreateAccount(ctx, entities.NewAccount{Email: email, Name: name, Image: image})
		if errors.Is(err, entities.ErrAccountExists) {
			acc, err = u.repo.GetAccountByEmail(ctx, email)
		} else if err == nil {
			u.log.Infow("account created at sign-in", "account_id", acc.ID)
		}
	}
	if err != nil {
		return nil, err
	}
	return u.sync(ctx, acc)
}

// SyncAccount links an account to the roster member sharing its email.
func (u *Usecase) SyncAccount(ctx context.Context, accountID string) (*entities.SyncResult, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	acc, err := u.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return u.sync(ctx, acc)
}

func (u *Usecase) sync(ctx context.Context, acc *entities.Account) (*entities.SyncResult, error) {
	member, ok := u.roster.ByEmail(acc.Email)
	if !ok {
		return u.syncResult(acc), nil
	}

	if !acc.IsLinked() {
		linked, err := u.repo.LinkRoster(ctx, acc.ID, member.ID)
		switch {
		case err == nil:
			acc = linked
			u.log.Infow("account linked to roster", "account_id", acc.ID, "roster_id", member.ID)
		case errors.Is(err, entities.ErrRosterAlreadyLinked):
			u.log.Warnw("roster member linked elsewhere", "account_id", acc.ID, "roster_id", member.ID)
		default:
			return nil, err
		}
	}
	if acc.Name == "" {
		named, err := u.repo.FillName(ctx, acc.ID, member.Name)
		if err != nil {
			return nil, err
		}
		acc = named
	}

	return u.syncResult(acc), nil
}

func (u *Usecase) syncResult(acc *entities.Account) *entities.SyncResult {
	res := &entities.SyncResult{Account: *acc, Linked: acc.IsLinked()}
	if res.Linked {
		if m, ok := u.roster.ByID(*acc.LinkedRosterID); ok {
			res.RosterMember = &m
		}
	}
	return res
}
