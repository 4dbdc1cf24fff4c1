package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"radya-hi5/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `a.id::text, a.email, a.name, a.image, a.linked_roster_id, a.is_admin, a.created_at`

const (
	selectAccountByIDQuery     = `SELECT ` + accountColumns + ` FROM accounts a WHERE a.id = $1`
	selectAccountByEmailQuery  = `SELECT ` + accountColumns + ` FROM accounts a WHERE a.email = $1`
	selectAccountByRosterQuery = `SELECT ` + accountColumns + ` FROM accounts a WHERE a.linked_roster_id = $1`
	selectAccountsQuery        = `SELECT ` + accountColumns + ` FROM accounts a ORDER BY a.name, a.id`
	insertAccountQuery         = `
WITH a AS (
    INSERT INTO accounts(email, name, image, linked_roster_id)
    VALUES ($1, $2, $3, $4)
    RETURNING *
)
SELECT ` + accountColumns + ` FROM a`
	linkRosterQuery = `
WITH a AS (
    UPDATE accounts SET linked_roster_id = $2
    WHERE id = $1 AND linked_roster_id IS NULL
    RETURNING *
)
SELECT ` + accountColumns + ` FROM a`
	fillNameQuery = `
WITH a AS (
    UPDATE accounts SET name = $2
    WHERE id = $1 AND name = ''
    RETURNING *
)
SELECT ` + accountColumns + ` FROM a`
	existingAccountIDsQuery = `SELECT id::text FROM accounts WHERE id = ANY($1::uuid[])`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner, dst *entities.Account) error {
	return row.Scan(&dst.ID, &dst.Email, &dst.Name, &dst.Image, &dst.LinkedRosterID, &dst.IsAdmin, &dst.CreatedAt)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GetAccount fetches an account by ID. Malformed IDs are reported as not found.
func (p *Postgres) GetAccount(ctx context.Context, accountID string) (*entities.Account, error) {
	if _, err := uuid.Parse(accountID); err != nil {
		return nil, entities.ErrAccountNotFound
	}
	return p.queryAccount(ctx, p.db, selectAccountByIDQuery, accountID)
}

// GetAccountByEmail fetches an account by its unique email.
func (p *Postgres) GetAccountByEmail(ctx context.Context, email string) (*entities.Account, error) {
	return p.queryAccount(ctx, p.db, selectAccountByEmailQuery, normalizeEmail(email))
}

// GetAccountByRosterID fetches the account bridged to a roster member.
func (p *Postgres) GetAccountByRosterID(ctx context.Context, rosterID string) (*entities.Account, error) {
	return p.queryAccount(ctx, p.db, selectAccountByRosterQuery, rosterID)
}

// CreateAccount inserts a non-admin account.
func (p *Postgres) CreateAccount(ctx context.Context, acc entities.NewAccount) (*entities.Account, error) {
	var a entities.Account
	err := scanAccount(p.db.QueryRow(ctx, insertAccountQuery,
		normalizeEmail(acc.Email), strings.TrimSpace(acc.Name), acc.Image, acc.LinkedRosterID), &a)
	if err != nil {
		if mapped := uniqueConflict(err); mapped != nil {
			return nil, mapped
		}
		p.log.Errorw("failed to insert account", "error", err, "email", acc.Email)
		return nil, fmt.Errorf("insert account: %w", err)
	}

	p.log.Infow("account created", "account_id", a.ID, "linked_roster_id", a.LinkedRosterID)
	return &a, nil
}

// LinkRoster bridges an account to a roster member once.
func (p *Postgres) LinkRoster(ctx context.Context, accountID, rosterID string) (*entities.Account, error) {
	var a entities.Account
	err := scanAccount(p.db.QueryRow(ctx, linkRosterQuery, accountID, rosterID), &a)
	switch {
	case err == nil:
		p.log.Infow("account linked to roster", "account_id", accountID, "roster_id", rosterID)
		return &a, nil
	case errors.Is(err, pgx.ErrNoRows):
		// already linked, or missing
		return p.GetAccount(ctx, accountID)
	}
	if mapped := uniqueConflict(err); mapped != nil {
		return nil, mapped
	}
	return nil, fmt.Errorf("link roster: %w", err)
}

// FillName sets the account name when it is still empty.
func (p *Postgres) FillName(ctx context.Context, accountID, name string) (*entities.Account, error) {
	var a entities.Account
	err := scanAccount(p.db.QueryRow(ctx, fillNameQuery, accountID, strings.TrimSpace(name)), &a)
	if errors.Is(err, pgx.ErrNoRows) {
		return p.GetAccount(ctx, accountID)
	}
	if err != nil {
		return nil, fmt.Errorf("fill name: %w", err)
	}
	return &a, nil
}

// ExistingAccountIDs returns which of ids exist. Malformed IDs are skipped.
func (p *Postgres) ExistingAccountIDs(ctx context.Context, ids []string) (map[string]struct{}, error) {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err == nil {
			valid = append(valid, id)
		}
	}

	found := make(map[string]struct{}, len(valid))
	if len(valid) == 0 {
		return found, nil
	}

	rows, err := p.db.Query(ctx, existingAccountIDsQuery, valid)
	if err != nil {
		return nil, fmt.Errorf("select account ids: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan account id: %w", err)
		}
		found[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account ids: %w", err)
	}
	return found, nil
}

// ListAccounts returns every account ordered by name.
func (p *Postgres) ListAccounts(ctx context.Context) ([]entities.Account, error) {
	rows, err := p.db.Query(ctx, selectAccountsQuery)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]entities.Account, 0)
	for rows.Next() {
		var a entities.Account
		if err := scanAccount(rows, &a); err != nil {
			p.log.Errorw("failed to scan account", "error", err)
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return accounts, nil
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (p *Postgres) queryAccount(ctx context.Context, q querier, query string, arg any) (*entities.Account, error) {
	var a entities.Account
	if err := scanAccount(q.QueryRow(ctx, query, arg), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}
