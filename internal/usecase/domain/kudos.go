package domain

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"radya-hi5/internal/entities"
	"radya-hi5/internal/notifier"

	"golang.org/x/sync/errgroup"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// CreateKudos validates the request, resolves recipients, stores the kudos and
// notifies recipients. Notification failures never fail the call.
func (u *Usecase) CreateKudos(ctx context.Context, req entities.KudosRequest) (*entities.Kudos, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	value, message, err := u.validateKudos(req)
	if err != nil {
		return nil, err
	}

	res, err := u.resolve(ctx, req.RecipientRefs, req.SenderID)
	if err != nil {
		return nil, err
	}

	k, err := u.repo.CreateKudos(ctx, entities.NewKudos{
		SenderID:     req.SenderID,
		Value:        value.ID,
		Message:      message,
		RecipientIDs: uniqueOrdered(res.AccountIDs),
	})
	if err != nil {
		return nil, err
	}
	k.Unresolved = res.Unresolved
	u.log.Infow("kudos create", "kudos_id", k.ID, "sender_id", k.Sender.ID, "recipients", len(k.Recipients), "value", k.Value)

	if u.notify(ctx, k, value) {
		if err := u.repo.MarkEmailSent(context.WithoutCancel(ctx), k.ID); err != nil {
			u.log.Errorw("mark email sent", "kudos_id", k.ID, "err", err)
		} else {
			k.EmailSent = true
		}
	}
	return k, nil
}

// ListSentKudos pages through kudos sent by senderID, newest first.
func (u *Usecase) ListSentKudos(ctx context.Context, senderID string, limit, offset int) (entities.KudosPage, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	if senderID == "" {
		return entities.KudosPage{}, fmt.Errorf("%w: sender is required", entities.ErrInvalidArgument)
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		return entities.KudosPage{}, fmt.Errorf("%w: offset must not be negative", entities.ErrInvalidArgument)
	}
	return u.repo.ListSentKudos(ctx, senderID, limit, offset)
}

// Values returns the value tag catalog.
func (u *Usecase) Values() []entities.ValueTag {
	return u.catalog.All()
}

func (u *Usecase) validateKudos(req entities.KudosRequest) (entities.ValueTag, string, error) {
	if req.SenderID == "" {
		return entities.ValueTag{}, "", entities.ErrUnauthorized
	}
	if err := checkRecipientCount(req.RecipientRefs); err != nil {
		return entities.ValueTag{}, "", err
	}
	if strings.TrimSpace(req.ValueID) == "" {
		return entities.ValueTag{}, "", fmt.Errorf("%w: please select a value", entities.ErrInvalidArgument)
	}
	value, ok := u.catalog.Get(req.ValueID)
	if !ok {
		return entities.ValueTag{}, "", fmt.Errorf("%w: %w", entities.ErrInvalidArgument, entities.ErrUnknownValue)
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return entities.ValueTag{}, "", fmt.Errorf("%w: please provide a message", entities.ErrInvalidArgument)
	}
	if utf8.RuneCountInString(message) > u.opts.MessageMaxLen {
		return entities.ValueTag{}, "", fmt.Errorf("%w: message must be at most %d characters", entities.ErrInvalidArgument, u.opts.MessageMaxLen)
	}
	return value, message, nil
}

// notify mails every recipient with a known address and reports whether no send failed.
func (u *Usecase) notify(ctx context.Context, k *entities.Kudos, value entities.ValueTag) bool {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.opts.MailTimeout)
	defer cancel()

	var g errgroup.Group
	g.SetLimit(u.opts.MailConcurrency)
	for _, r := range k.Recipients {
		acc := r.Account
		addr, ok := u.roster.DeliveryAddress(acc.Email, acc.LinkedRosterID)
		if !ok {
			u.log.Warnw("no delivery address", "kudos_id", k.ID, "account_id", acc.ID)
			continue
		}
		g.Go(func() error {
			msg, err := notifier.RenderKudos(notifier.KudosMail{
				To:            addr,
				RecipientName: acc.Name,
				SenderName:    k.Sender.Name,
				Value:         value,
				Message:       k.Message,
				AppURL:        u.opts.AppURL,
				CreatedAt:     k.CreatedAt,
			})
			if err == nil {
				err = u.mailer.Send(ctx, msg)
			}
			if err != nil {
				u.log.Errorw("kudos email failed", "kudos_id", k.ID, "account_id", acc.ID, "err", err)
				return err
			}
			return nil
		})
	}
	return g.Wait() == nil
}

func uniqueOrdered(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
