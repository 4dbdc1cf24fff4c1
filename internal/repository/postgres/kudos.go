package postgres

import (
	"context"
	"fmt"

	"radya-hi5/internal/entities"

	"github.com/jackc/pgx/v5"
)

const senderColumns = `s.id::text, s.email, s.name, s.image, s.linked_roster_id, s.is_admin, s.created_at`

const (
	insertKudosQuery     = `INSERT INTO kudos(value, message, sender_id) VALUES ($1, $2, $3) RETURNING id::text, created_at`
	insertRecipientQuery = `INSERT INTO kudos_recipients(kudos_id, account_id, position) VALUES ($1, $2, $3)`
	markEmailSentQuery   = `UPDATE kudos SET email_sent = true WHERE id = $1`
	countSentKudosQuery  = `SELECT COUNT(*) FROM kudos WHERE sender_id = $1`
	selectSentKudosQuery = `
SELECT k.id::text, k.value, k.message, k.email_sent, k.created_at, ` + senderColumns + `
FROM kudos k
JOIN accounts s ON s.id = k.sender_id
WHERE k.sender_id = $1
ORDER BY k.created_at DESC, k.id
LIMIT $2 OFFSET $3`
	selectRecipientsQuery = `
SELECT r.kudos_id::text, r.created_at, ` + accountColumns + `
FROM kudos_recipients r
JOIN accounts a ON a.id = r.account_id
WHERE r.kudos_id = ANY($1::uuid[])
ORDER BY r.created_at, r.position`
)

// CreateKudos writes the kudos row and its recipient links in one transaction.
func (p *Postgres) CreateKudos(ctx context.Context, k entities.NewKudos) (*entities.Kudos, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res := entities.Kudos{Value: k.Value, Message: k.Message}
	if err := tx.QueryRow(ctx, insertKudosQuery, k.Value, k.Message, k.SenderID).Scan(&res.ID, &res.CreatedAt); err != nil {
		p.log.Errorw("failed to insert kudos", "error", err, "sender_id", k.SenderID)
		return nil, fmt.Errorf("insert kudos: %w", err)
	}

	for i, accountID := range k.RecipientIDs {
		if _, err := tx.Exec(ctx, insertRecipientQuery, res.ID, accountID, i); err != nil {
			p.log.Errorw("failed to insert recipient", "error", err, "kudos_id", res.ID, "account_id", accountID)
			return nil, fmt.Errorf("insert recipient: %w", err)
		}
	}

	sender, err := p.queryAccount(ctx, tx, selectAccountByIDQuery, k.SenderID)
	if err != nil {
		return nil, fmt.Errorf("load sender: %w", err)
	}
	res.Sender = *sender

	recipients, err := p.readRecipients(ctx, tx, []string{res.ID})
	if err != nil {
		return nil, err
	}
	res.Recipients = recipients[res.ID]

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("kudos created", "kudos_id", res.ID, "sender_id", k.SenderID, "recipients", k.RecipientIDs)
	return &res, nil
}

// MarkEmailSent flips the email_sent flag.
func (p *Postgres) MarkEmailSent(ctx context.Context, kudosID string) error {
	tag, err := p.db.Exec(ctx, markEmailSentQuery, kudosID)
	if err != nil {
		return fmt.Errorf("mark email sent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrKudosNotFound
	}
	return nil
}

// ListSentKudos returns a page of kudos sent by senderID, newest first.
func (p *Postgres) ListSentKudos(ctx context.Context, senderID string, limit, offset int) (entities.KudosPage, error) {
	page := entities.KudosPage{Kudos: make([]entities.Kudos, 0)}

	if err := p.db.QueryRow(ctx, countSentKudosQuery, senderID).Scan(&page.Total); err != nil {
		return page, fmt.Errorf("count kudos: %w", err)
	}
	if page.Total == 0 {
		return page, nil
	}

	rows, err := p.db.Query(ctx, selectSentKudosQuery, senderID, limit, offset)
	if err != nil {
		return page, fmt.Errorf("select kudos: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0, limit)
	for rows.Next() {
		var k entities.Kudos
		s := &k.Sender
		if err := rows.Scan(&k.ID, &k.Value, &k.Message, &k.EmailSent, &k.CreatedAt,
			&s.ID, &s.Email, &s.Name, &s.Image, &s.LinkedRosterID, &s.IsAdmin, &s.CreatedAt); err != nil {
			p.log.Errorw("failed to scan kudos", "error", err, "sender_id", senderID)
			return page, fmt.Errorf("scan kudos: %w", err)
		}
		page.Kudos = append(page.Kudos, k)
		ids = append(ids, k.ID)
	}
	if err := rows.Err(); err != nil {
		return page, fmt.Errorf("iterate kudos: %w", err)
	}

	if len(ids) == 0 {
		return page, nil
	}
	recipients, err := p.readRecipients(ctx, p.db, ids)
	if err != nil {
		return page, err
	}
	for i := range page.Kudos {
		page.Kudos[i].Recipients = recipients[page.Kudos[i].ID]
	}

	return page, nil
}

type rowsQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (p *Postgres) readRecipients(ctx context.Context, q rowsQuerier, kudosIDs []string) (map[string][]entities.KudosRecipient, error) {
	rows, err := q.Query(ctx, selectRecipientsQuery, kudosIDs)
	if err != nil {
		p.log.Errorw("failed to select recipients", "error", err)
		return nil, fmt.Errorf("select recipients: %w", err)
	}
	defer rows.Close()

	res := make(map[string][]entities.KudosRecipient, len(kudosIDs))
	for rows.Next() {
		var r entities.KudosRecipient
		a := &r.Account
		if err := rows.Scan(&r.KudosID, &r.CreatedAt,
			&a.ID, &a.Email, &a.Name, &a.Image, &a.LinkedRosterID, &a.IsAdmin, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recipient: %w", err)
		}
		res[r.KudosID] = append(res[r.KudosID], r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipients: %w", err)
	}
	return res, nil
}
