package postgres

import (
	"context"
	"fmt"

	"radya-hi5/internal/entities"
)

const (
	mostReceivedQuery = `
SELECT ` + accountColumns + `, COUNT(*) AS cnt
FROM kudos_recipients r
JOIN accounts a ON a.id = r.account_id
WHERE r.created_at >= $1
GROUP BY a.id
ORDER BY cnt DESC, a.name
LIMIT $2`
	mostGivenQuery = `
SELECT ` + accountColumns + `, COUNT(*) AS cnt
FROM kudos k
JOIN accounts a ON a.id = k.sender_id
WHERE k.created_at >= $1
GROUP BY a.id
ORDER BY cnt DESC, a.name
LIMIT $2`
	mostValuesQuery = `
SELECT value, COUNT(*) AS cnt
FROM kudos
WHERE created_at >= $1
GROUP BY value
ORDER BY cnt DESC, value
LIMIT $2`
	kudosSinceQuery   = `SELECT COUNT(*) FROM kudos WHERE created_at >= $1`
	kudosOverallQuery = `SELECT COUNT(*) FROM kudos`
	accountStatsQuery = `SELECT COUNT(*), COUNT(linked_roster_id) FROM accounts`
)

// Dashboard returns the admin leaderboards for the window.
func (p *Postgres) Dashboard(ctx context.Context, window entities.StatsWindow) (entities.Dashboard, error) {
	res := entities.Dashboard{}

	var err error
	if res.MostReceived, err = p.accountLeaderboard(ctx, mostReceivedQuery, window); err != nil {
		return res, fmt.Errorf("most received: %w", err)
	}
	if res.MostGiven, err = p.accountLeaderboard(ctx, mostGivenQuery, window); err != nil {
		return res, fmt.Errorf("most given: %w", err)
	}

	rows, err := p.db.Query(ctx, mostValuesQuery, window.Since, window.TopLimit)
	if err != nil {
		return res, fmt.Errorf("most values: %w", err)
	}
	defer rows.Close()
	res.MostValues = make([]entities.ValueCount, 0)
	for rows.Next() {
		var v entities.ValueCount
		if err := rows.Scan(&v.Value, &v.Count); err != nil {
			return res, fmt.Errorf("scan value stat: %w", err)
		}
		res.MostValues = append(res.MostValues, v)
	}
	if err := rows.Err(); err != nil {
		return res, fmt.Errorf("iterate value stat: %w", err)
	}

	if err := p.db.QueryRow(ctx, kudosSinceQuery, window.WeekAgo).Scan(&res.TotalKudosWeek); err != nil {
		return res, fmt.Errorf("count weekly kudos: %w", err)
	}
	if err := p.db.QueryRow(ctx, kudosOverallQuery).Scan(&res.TotalKudosOverall); err != nil {
		return res, fmt.Errorf("count kudos: %w", err)
	}
	if err := p.db.QueryRow(ctx, accountStatsQuery).Scan(&res.Accounts.Total, &res.Accounts.Linked); err != nil {
		return res, fmt.Errorf("count accounts: %w", err)
	}
	res.Accounts.Unlinked = res.Accounts.Total - res.Accounts.Linked

	return res, nil
}

func (p *Postgres) accountLeaderboard(ctx context.Context, query string, window entities.StatsWindow) ([]entities.AccountCount, error) {
	rows, err := p.db.Query(ctx, query, window.Since, window.TopLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]entities.AccountCount, 0)
	for rows.Next() {
		var s entities.AccountCount
		a := &s.Account
		if err := rows.Scan(&a.ID, &a.Email, &a.Name, &a.Image, &a.LinkedRosterID, &a.IsAdmin, &a.CreatedAt, &s.Count); err != nil {
			return nil, fmt.Errorf("scan account stat: %w", err)
		}
		res = append(res, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account stat: %w", err)
	}
	return res, nil
}
