package domain

import (
	"context"
	"fmt"
	"time"

	"radya-hi5/internal/entities"
)

const (
	defaultStatsWeeks = 4
	maxStatsWeeks     = 520
	statsTopLimit     = 10
	week              = 7 * 24 * time.Hour
)

// Dashboard returns admin leaderboards over the last weeks weeks.
// Zero weeks selects the default window.
func (u *Usecase) Dashboard(ctx context.Context, weeks int) (entities.Dashboard, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	if weeks == 0 {
		weeks = defaultStatsWeeks
	}
	if weeks < 1 || weeks > maxStatsWeeks {
		return entities.Dashboard{}, fmt.Errorf("%w: weeks must be between 1 and %d", entities.ErrInvalidArgument, maxStatsWeeks)
	}

	now := u.now()
	dash, err := u.repo.Dashboard(ctx, entities.StatsWindow{
		Since:    now.Add(-time.Duration(weeks) * week),
		WeekAgo:  now.Add(-week),
		TopLimit: statsTopLimit,
	})
	if err != nil {
		return entities.Dashboard{}, err
	}
	dash.Weeks = weeks
	return dash, nil
}
