package domain

import (
	"context"
	"errors"
	"fmt"

	"radya-hi5/internal/entities"
)

// Resolve maps recipient references to account IDs, creating accounts for roster
// members that have never signed in. Unknown account references are reported in
// Unresolved; the call fails only when nothing resolves.
func (u *Usecase) Resolve(ctx context.Context, refs []string, senderID string) (entities.Resolution, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	return u.resolve(ctx, refs, senderID)
}

func (u *Usecase) resolve(ctx context.Context, refs []string, senderID string) (entities.Resolution, error) {
	if err := checkRecipientCount(refs); err != nil {
		return entities.Resolution{}, err
	}

	resolved := make([]string, len(refs))
	var accountRefs []string
	for i, ref := range refs {
		member, ok := u.roster.ByID(ref)
		if !ok {
			accountRefs = append(accountRefs, ref)
			continue
		}
		acc, err := u.accountForMember(ctx, member)
		if err != nil {
			return entities.Resolution{}, fmt.Errorf("resolve roster ref %s: %w", ref, err)
		}
		resolved[i] = acc.ID
	}

	var existing map[string]struct{}
	if len(accountRefs) > 0 {
		var err error
		existing, err = u.repo.ExistingAccountIDs(ctx, accountRefs)
		if err != nil {
			return entities.Resolution{}, fmt.Errorf("lookup account refs: %w", err)
		}
	}

	res := entities.Resolution{AccountIDs: make([]string, 0, len(refs))}
	for i, ref := range refs {
		if resolved[i] != "" {
			res.AccountIDs = append(res.AccountIDs, resolved[i])
			continue
		}
		if _, ok := existing[ref]; ok {
			res.AccountIDs = append(res.AccountIDs, ref)
			continue
		}
		res.Unresolved = append(res.Unresolved, ref)
	}

	if len(res.Unresolved) > 0 {
		u.log.Warnw("recipient refs dropped", "sender_id", senderID, "unresolved", res.Unresolved)
	}
	if len(res.AccountIDs) == 0 {
		return res, fmt.Errorf("%w: no recipient could be resolved", entities.ErrRecipientNotFound)
	}
	return res, nil
}

// accountForMember returns the account holding the member's email, creating and
// linking it when needed. The unique email constraint is the only race guard.
func (u *Usecase) accountForMember(ctx context.Context, member entities.RosterMember) (*entities.Account, error) {
	acc, err := u.repo.GetAccountByEmail(ctx, member.Email)
	switch {
	case err == nil:
		return u.ensureLinked(ctx, acc, member.ID), nil
	case !errors.Is(err, entities.ErrAccountNotFound):
		return nil, err
	}

	rosterID := member.ID
	acc, err = u.repo.CreateAccount(ctx, entities.NewAccount{
		Email:          member.Email,
		Name:           member.Name,
		LinkedRosterID: &rosterID,
	})
	switch {
	case err == nil:
		u.log.Infow("account created for roster member", "roster_id", member.ID, "account_id", acc.ID)
		return acc, nil
	case errors.Is(err, entities.ErrAccountExists):
		acc, err = u.repo.GetAccountByEmail(ctx, member.Email)
		if err != nil {
			return nil, err
		}
		return u.ensureLinked(ctx, acc, member.ID), nil
	case errors.Is(err, entities.ErrRosterAlreadyLinked):
		// the roster ID already belongs to an account under another email
		return u.repo.GetAccountByRosterID(ctx, member.ID)
	default:
		return nil, err
	}
}

// ensureLinked sets the one-time roster link. A lost race is logged and ignored.
func (u *Usecase) ensureLinked(ctx context.Context, acc *entities.Account, rosterID string) *entities.Account {
	if acc.IsLinked() {
		return acc
	}
	linked, err := u.repo.LinkRoster(ctx, acc.ID, rosterID)
	if err != nil {
		u.log.Warnw("roster link skipped", "account_id", acc.ID, "roster_id", rosterID, "err", err)
		return acc
	}
	return linked
}

func checkRecipientCount(refs []string) error {
	if len(refs) == 0 || len(refs) > entities.MaxRecipients {
		return fmt.Errorf("%w: %w", entities.ErrInvalidArgument, entities.ErrInvalidRecipientCount)
	}
	return nil
}
