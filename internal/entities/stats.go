// Package entities contains core business entities.
package entities

import "time"

// AccountCount is a leaderboard row keyed by account.
type AccountCount struct {
	Account Account
	Count   int64
}

// ValueCount is a leaderboard row keyed by value tag.
type ValueCount struct {
	Value string
	Count int64
}

// AccountStats summarises roster linkage of accounts.
type AccountStats struct {
	Total    int64
	Linked   int64
	Unlinked int64
}

// StatsWindow bounds dashboard queries.
type StatsWindow struct {
	Since    time.Time
	WeekAgo  time.Time
	TopLimit int
}

// Dashboard aggregates admin leaderboards over a time window.
type Dashboard struct {
	Weeks             int
	MostReceived      []AccountCount
	MostGiven         []AccountCount
	MostValues        []ValueCount
	TotalKudosWeek    int64
	TotalKudosOverall int64
	Accounts          AccountStats
}
